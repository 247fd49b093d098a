package plotlayout

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var intervalUnionTests = []struct {
	a, b, want Interval
}{
	{Interval{1, 2}, Interval{3, 4}, Interval{1, 4}},
	{Interval{5, 1}, Interval{3, 4}, Interval{1, 5}},
	{EmptyRange, Interval{3, 4}, Interval{3, 4}},
	{EmptyRange, EmptyRange, EmptyRange},
}

func TestIntervalUnion(t *testing.T) {
	for i, tc := range intervalUnionTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.a.Union(tc.b); !got.Equal(tc.want) {
				t.Errorf("%v union %v = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIntervalDirection(t *testing.T) {
	r := Interval{10, 0}
	if !r.Reversed() {
		t.Errorf("%v should be reversed", r)
	}
	if got := r.Ordered(); !got.Equal(Interval{0, 10}) {
		t.Errorf("Ordered = %v", got)
	}
	if !r.Contains(3) || r.Contains(11) {
		t.Errorf("Contains broken for %v", r)
	}
	if got := r.Span(); got != -10 {
		t.Errorf("Span = %g", got)
	}
}
