package geom

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var parseColorTests = []struct {
	in   string
	want color.Color
}{
	{"#636efa", color.NRGBA{0x63, 0x6e, 0xfa, 0xff}},
	{"#444", color.NRGBA{0x44, 0x44, 0x44, 0xff}},
	{"#ff000080", color.NRGBA{0xff, 0, 0, 0x80}},
	{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 0xff}},
	{"rgba(10,20,30,0.5)", color.NRGBA{10, 20, 30, 128}},
	{"White", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	{"steelblue", color.RGBA{0x46, 0x82, 0xb4, 0xff}},
	{"transparent", color.Transparent},
}

func TestParseColor(t *testing.T) {
	for _, tc := range parseColorTests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %#v, want %#v", tc.in, got, tc.want)
		}
	}

	for _, s := range []string{"#12", "#gggggg", "rgb(1,2)", "rgb(a,b,c)", "blurple", ""} {
		if c, err := ParseColor(s); err == nil {
			t.Errorf("%q: got %v, want error", s, c)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	red := color.NRGBA{0xff, 0, 0, 0xff}
	if c, ok := withAlpha(red, 1); !ok || c != red {
		t.Errorf("opaque: %v, %t", c, ok)
	}
	c, ok := withAlpha(red, 0.5)
	if !ok {
		t.Fatal("half transparent red not drawable")
	}
	if r, _, _, a := c.RGBA(); a < 0x7f00 || a > 0x8000 || r != a {
		t.Errorf("half transparent red: %v", c)
	}
	for _, c := range []color.Color{nil, color.Transparent} {
		if _, ok := withAlpha(c, 1); ok {
			t.Errorf("%v is drawable", c)
		}
	}
	if _, ok := withAlpha(red, 0); ok {
		t.Error("alpha 0 is drawable")
	}
}

func TestClipRect(t *testing.T) {
	limit := vg.Rectangle{Min: vg.Point{X: 10, Y: 10}, Max: vg.Point{X: 100, Y: 50}}
	r := clipRect(vg.Rectangle{Min: vg.Point{X: 120, Y: 0}, Max: vg.Point{X: 50, Y: 70}}, limit)
	want := vg.Rectangle{Min: vg.Point{X: 50, Y: 10}, Max: vg.Point{X: 100, Y: 50}}
	if r != want {
		t.Errorf("got %v, want %v", r, want)
	}
}

func TestGlyph(t *testing.T) {
	if _, ok := Glyph("square", 3).(draw.SquareGlyph); !ok {
		t.Error("square is no square")
	}
	if Glyph("hexagram", 0) == nil || Glyph("hexagram", 7) == nil {
		t.Error("no fallback glyph")
	}
}

func TestDashes(t *testing.T) {
	if d := Dashes("solid", 2); d != nil {
		t.Errorf("solid: %v", d)
	}
	if d := Dashes("dash", 2); len(d) != 2 || d[0] != 8 || d[1] != 4 {
		t.Errorf("dash: %v", d)
	}
	if d := Dashes("dashdot", 0.5); len(d) != 4 || d[2] != 1 {
		t.Errorf("thin dashdot: %v", d)
	}
}
