package plotlayout

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

var linearMapTests = []struct {
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{10, 20, 10, 20, 12, 12},
	{10, 20, 100, 200, 12, 120},
	{3, 5, 0, 1, 3, 0},
	{3, 5, 0, 1, 4, 0.5},
	{3, 5, 0, 1, 5, 1},
	{0, 10, 500, 100, 0, 500}, // pixel y runs downwards
	{0, 10, 500, 100, 10, 100},
	{10, 0, 0, 100, 10, 0}, // reversed range
	{10, 0, 0, 100, 2.5, 75},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

func TestLinearMap(t *testing.T) {
	for i, tc := range linearMapTests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			if got := LinearMap(from, to, tc.x); !equal64(got, tc.want) {
				t.Errorf("LinearMap(%v,%v,%f) = %f, want %f",
					from, to, tc.x, got, tc.want)
			}
		})
	}
}

func TestLog10Trans(t *testing.T) {
	for _, x := range []float64{0.001, 1, 2, 100, 12345} {
		y, err := Log10Trans.Trans(x)
		if err != nil {
			t.Fatalf("Log10Trans.Trans(%g): %v", x, err)
		}
		if back := Log10Trans.Inverse(y); math.Abs(back-x) > 1e-9*x {
			t.Errorf("Inverse(Trans(%g)) = %g", x, back)
		}
	}
	if y, err := Log10Trans.Trans(math.NaN()); err != nil || !math.IsNaN(y) {
		t.Errorf("NaN should pass through, got %g, %v", y, err)
	}
	for _, x := range []float64{0, -1} {
		if _, err := Log10Trans.Trans(x); !errors.Is(err, ErrNonPositiveLog) {
			t.Errorf("Log10Trans.Trans(%g) error = %v", x, err)
		}
	}
}
