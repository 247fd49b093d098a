package plotlayout

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/vdobler/plotlayout/data"
)

func points(n int) []interface{} {
	xs := make([]interface{}, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

var scatterModeTests = []struct {
	m              data.Map
	markers, lines bool
}{
	{data.Map{"type": "scatter", "x": points(20)}, true, true},
	{data.Map{"type": "scattergl", "x": points(21)}, false, true},
	{data.Map{"type": "scatter", "x": points(3), "mode": "markers"}, true, false},
	{data.Map{"type": "scatter", "x": points(3), "mode": "text+lines"}, false, true},
	{data.Map{"type": "scatter", "x": points(3), "mode": "none"}, false, false},
}

func TestScatterModes(t *testing.T) {
	for i, tc := range scatterModeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			tr, err := newTrace(i, tc.m)
			if err != nil {
				t.Fatal(err)
			}
			s, ok := tr.(*Scatter)
			if !ok {
				t.Fatalf("got %T", tr)
			}
			if markers, lines := s.Modes(); markers != tc.markers || lines != tc.lines {
				t.Errorf("mode %q: markers %t, lines %t", s.Mode, markers, lines)
			}
		})
	}
}

func TestMarkerRadius(t *testing.T) {
	tr, err := newTrace(0, data.Map{
		"type": "scatter", "x": points(3),
		"marker": data.Map{"size": []interface{}{10.0, 20.0, 40.0}, "sizeref": 2.0, "sizemode": "area"},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := tr.(*Scatter)
	if r := s.Radius(1); !equal64(r, math.Sqrt(10/math.Pi)) {
		t.Errorf("area radius %g", r)
	}

	tr, err = newTrace(0, data.Map{"type": "scatter", "x": points(3), "marker": data.Map{"size": 8.0}})
	if err != nil {
		t.Fatal(err)
	}
	if r := tr.(*Scatter).Radius(2); r != 4 {
		t.Errorf("diameter radius %g", r)
	}
}

func TestTraceAxisReference(t *testing.T) {
	tr, err := newTrace(0, data.Map{"type": "scatter", "xaxis": "x3", "yaxis": "y2"})
	if err != nil {
		t.Fatal(err)
	}
	if b := tr.Base(); b.XAxis != (AxisID{'x', 3}) || b.YAxis != (AxisID{'y', 2}) {
		t.Errorf("axes %v %v", b.XAxis, b.YAxis)
	}

	var cerr *ConfigurationError
	if _, err := newTrace(0, data.Map{"type": "scatter", "xaxis": "y2"}); !errors.As(err, &cerr) || !errors.Is(err, ErrUnknownReference) {
		t.Errorf("x trace on y axis: %v", err)
	}
}

func TestCountRange(t *testing.T) {
	h := &Histogram{TraceBase: TraceBase{Y: []float64{0, 2, 5, 0}}, Binned: true}
	if got := h.CountRange(false); got != (Interval{0, 5}) {
		t.Errorf("linear count range %v", got)
	}
	if got := h.CountRange(true); got != (Interval{2, 5}) {
		t.Errorf("log count range %v", got)
	}
	if got := h.Extent('y'); got != (Interval{0, 5}) {
		t.Errorf("extent %v", got)
	}
	h.Y = []float64{0, 0}
	if got := h.CountRange(true); !got.IsEmpty() {
		t.Errorf("no positive counts: %v", got)
	}
}
