package plotlayout

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

var mapTests = []struct {
	id     string
	typ    AxisType
	r      Interval
	values []float64
	want   []float64
}{
	{"x", Linear, Interval{0, 10}, []float64{0, 5, 10}, []float64{80, 400, 720}},
	{"y", Linear, Interval{0, 10}, []float64{0, 5, 10}, []float64{520, 310, 100}},
	{"x", Linear, Interval{10, 0}, []float64{0, 10}, []float64{720, 80}},
	{"y", Log, Interval{0, 2}, []float64{1, 10, 100}, []float64{520, 310, 100}},
	{"x", Linear, Interval{0, 10}, []float64{-5, 15}, []float64{-240, 1040}},
}

func TestMapValues(t *testing.T) {
	for i, tc := range mapTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ax := testAxis(tc.id, tc.typ, tc.r)
			var got []float64
			var err error
			if ax.Horizontal() {
				got, err = MapX(tc.values, ax, testGeometry, false)
			} else {
				got, err = MapY(tc.values, ax, testGeometry, false)
			}
			if err != nil {
				t.Fatal(err)
			}
			for j := range got {
				if !equal64(got[j], tc.want[j]) {
					t.Errorf("%g: got %g, want %g", tc.values[j], got[j], tc.want[j])
				}
			}
		})
	}
}

func TestMapMonotonic(t *testing.T) {
	x := testAxis("x", Linear, Interval{-3, 7})
	values := []float64{-10, -3, -1, 0, 0.5, 2, 7, 100}
	px, err := MapX(values, x, testGeometry, false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(px); i++ {
		if px[i] <= px[i-1] {
			t.Errorf("x not increasing at %g: %g <= %g", values[i], px[i], px[i-1])
		}
	}

	y := testAxis("y", Linear, Interval{-3, 7})
	py, err := MapY(values, y, testGeometry, false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(py); i++ {
		if py[i] >= py[i-1] {
			t.Errorf("y not decreasing at %g: %g >= %g", values[i], py[i], py[i-1])
		}
	}
}

func TestMapErrors(t *testing.T) {
	x := testAxis("x", Linear, Interval{3, 3})
	if _, err := MapX([]float64{3}, x, testGeometry, false); !errors.Is(err, ErrZeroSpan) {
		t.Errorf("zero span: got error %v", err)
	}

	l := testAxis("x", Log, Interval{0, 2})
	if _, err := MapX([]float64{-1}, l, testGeometry, false); !errors.Is(err, ErrNonPositiveLog) {
		t.Errorf("log of -1: got error %v", err)
	}

	// Raw values are already in range space.
	px, err := MapX([]float64{-1}, l, testGeometry, true)
	if err != nil || !equal64(px[0], 80-320) {
		t.Errorf("raw -1: got %v, %v", px, err)
	}

	y := testAxis("y", Linear, Interval{0, 1})
	if _, err := MapX([]float64{0}, y, testGeometry, false); err == nil {
		t.Error("MapX accepted a vertical axis")
	}
}

func TestMapNaN(t *testing.T) {
	x := testAxis("x", Linear, Interval{0, 10})
	px, err := MapX([]float64{1, math.NaN(), 2}, x, testGeometry, false)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(px[1]) || math.IsNaN(px[0]) || math.IsNaN(px[2]) {
		t.Errorf("got %v", px)
	}
}

func TestSubplotRect(t *testing.T) {
	x := testAxis("x", Linear, Interval{0, 1})
	x.Domain = Interval{0.5, 1}
	y := testAxis("y", Linear, Interval{0, 1})
	y.Domain = Interval{0, 0.5}
	min, max := Subplot{X: x, Y: y}.Rect(testGeometry)
	if min != (Point{400, 310}) || max != (Point{720, 520}) {
		t.Errorf("rect %v %v", min, max)
	}

	p, err := Subplot{X: x, Y: y}.MapXY(1, 1, testGeometry)
	if err != nil {
		t.Fatal(err)
	}
	if p != (Point{720, 310}) {
		t.Errorf("MapXY(1, 1) = %v", p)
	}
}
