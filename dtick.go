package plotlayout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vdobler/plotlayout/data"
)

// DTickKind distinguishes plain numeric tick steps from the tagged ones.
type DTickKind int

const (
	NumericStep   DTickKind = iota // step in range space
	MonthStep                      // "M<n>": n months, date axes
	LogLinearStep                  // "L<f>": linear step f in value space on a log axis
	LogDecadeStep                  // "D1" or "D2": sub-decade digit sets on a log axis
)

// DTick is the spacing between consecutive ticks.
type DTick struct {
	Kind DTickKind
	Step float64
}

// NumericDTick returns a plain numeric step.
func NumericDTick(step float64) DTick { return DTick{Kind: NumericStep, Step: step} }

// Digit sets of the sub-decade log ticks. D1 puts a tick on every digit,
// D2 only on 1, 2 and 5.
var logDigits = map[float64][]float64{
	1: {1, 2, 3, 4, 5, 6, 7, 8, 9},
	2: {1, 2, 5},
}

// ParseDTick parses a tagged tick step: "M<n>", "L<f>", "D1" or "D2".
// Anything else is a configuration error.
func ParseDTick(s string) (DTick, error) {
	bad := func() (DTick, error) {
		return DTick{}, configError("dtick", s, ErrUnknownDTick)
	}
	if len(s) < 2 {
		return bad()
	}
	num, err := strconv.ParseFloat(s[1:], 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) || num <= 0 {
		return bad()
	}
	switch s[0] {
	case 'M':
		if num != math.Trunc(num) {
			return bad()
		}
		return DTick{Kind: MonthStep, Step: num}, nil
	case 'L':
		return DTick{Kind: LogLinearStep, Step: num}, nil
	case 'D':
		if _, ok := logDigits[num]; !ok {
			return bad()
		}
		return DTick{Kind: LogDecadeStep, Step: num}, nil
	}
	return bad()
}

// dtickFrom converts a dtick attribute, a number or a tagged string.
func dtickFrom(v interface{}) (DTick, error) {
	if x, ok := data.ToFloat(v); ok {
		if !(x > 0) || math.IsInf(x, 0) {
			return DTick{}, configError("dtick", v, fmt.Errorf("step must be positive"))
		}
		return NumericDTick(x), nil
	}
	if s, ok := v.(string); ok {
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			return dtickFrom(x)
		}
		return ParseDTick(s)
	}
	return DTick{}, configError("dtick", v, ErrUnknownDTick)
}

// IsNumeric reports whether d is a plain numeric step.
func (d DTick) IsNumeric() bool { return d.Kind == NumericStep }

func (d DTick) String() string {
	num := strconv.FormatFloat(d.Step, 'g', -1, 64)
	switch d.Kind {
	case NumericStep:
		return num
	case MonthStep:
		return "M" + num
	case LogLinearStep:
		return "L" + num
	case LogDecadeStep:
		return "D" + num
	}
	return "?" + num
}
