package textmeasure

import (
	"math"
	"strconv"
	"testing"
)

type measurer interface {
	Measure(text string, size float64) (width, height float64)
}

func TestMonotonicWidth(t *testing.T) {
	vgm, err := NewVG("Helvetica")
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range []measurer{vgm, GoRegular(), Approximate{}} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			w1, h1 := m.Measure("1", 12)
			w3, _ := m.Measure("100", 12)
			w0, _ := m.Measure("", 12)
			if w0 != 0 {
				t.Errorf("empty text has width %g", w0)
			}
			if !(w1 > 0 && w3 > w1) {
				t.Errorf("widths %g and %g not increasing", w1, w3)
			}
			if !(h1 > 0) {
				t.Errorf("height %g", h1)
			}
			w24, h24 := m.Measure("100", 24)
			if math.Abs(w24-2*w3) > 1 || h24 <= h1 {
				t.Errorf("size 24: %gx%g, size 12: %gx%g", w24, h24, w3, h1)
			}
		})
	}
}

func TestUnknownVGFont(t *testing.T) {
	if _, err := NewVG("No-Such-Font"); err == nil {
		t.Error("expected error for unknown font")
	}
}

func TestApproximate(t *testing.T) {
	w, h := Approximate{}.Measure("abcde", 10)
	if w != 30 || h != 12 {
		t.Errorf("got %gx%g, want 30x12", w, h)
	}
}
