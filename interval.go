package plotlayout

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined.
//
// Used as an axis range, Min is the value at the start of the axis and
// Max the value at its end; a reversed axis has Min > Max.
type Interval struct {
	Min, Max float64
}

// EmptyRange is the range of an axis without any contributing trace.
var EmptyRange = unsetInterval()

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// IsEmpty reports whether one of the edges of i is unset.
func (i Interval) IsEmpty() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Union returns the smallest ordered interval covering i and j.
// Empty intervals do not contribute.
func (i Interval) Union(j Interval) Interval {
	u := unsetInterval()
	if !i.IsEmpty() {
		u.Update(i.Min, i.Max)
	}
	if !j.IsEmpty() {
		u.Update(j.Min, j.Max)
	}
	return u
}

// Equal reports whether i and j have the same edges; NaN equals NaN.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

// Span is the signed extent Max-Min.
func (i Interval) Span() float64 { return i.Max - i.Min }

// Reversed reports whether i runs from a larger to a smaller value.
func (i Interval) Reversed() bool { return i.Min > i.Max }

// Ordered returns i with Min <= Max.
func (i Interval) Ordered() Interval {
	if i.Reversed() {
		return Interval{i.Max, i.Min}
	}
	return i
}

// Flip returns i with its edges swapped.
func (i Interval) Flip() Interval { return Interval{i.Max, i.Min} }

// Contains reports whether x lies in i, irrespective of its direction.
func (i Interval) Contains(x float64) bool {
	o := i.Ordered()
	return x >= o.Min && x <= o.Max
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
