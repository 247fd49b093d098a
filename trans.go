// Axis Transformations
//
// Data values are first transformed into range space (identity for linear,
// date and category axes, log10 for log axes) and then mapped linearly
// onto pixels.
package plotlayout

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles the mapping from data values into range space
// together with its inverse and a Ticker working in data space. The
// Ticker places the minor ticks; major ticks follow the axis' own rules.
type Transformation struct {
	Name    string
	Trans   func(x float64) (float64, error)
	Inverse func(y float64) float64
	Ticker  plot.Ticker
}

// IdentityTrans does not transform at all.
var IdentityTrans = Transformation{
	Name:    "Identity",
	Trans:   func(x float64) (float64, error) { return x, nil },
	Inverse: func(y float64) float64 { return y },
	Ticker:  plot.DefaultTicks{},
}

// Log10Trans maps positive values to their decimal logarithm. NaN stays NaN,
// values <= 0 are an error.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(x float64) (float64, error) {
		if math.IsNaN(x) {
			return x, nil
		}
		if x <= 0 {
			return math.NaN(), fmt.Errorf("%w: %g", ErrNonPositiveLog, x)
		}
		return math.Log10(x), nil
	},
	Inverse: func(y float64) float64 { return math.Pow(10, y) },
	Ticker:  plot.LogTicks{},
}

// LinearMap maps x from the interval from onto the interval to. The
// direction of both intervals is honoured.
func LinearMap(from, to Interval, x float64) float64 {
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}
