package plotlayout

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// PushMargin is the overflow report of one decoration.
//
// L, R, T and B are the decoration's left, right, top and bottom edge as
// fractions of the plot area computed with the base margins; L < 0 means
// it sticks out on the left, R > 1 on the right, T < 0 at the top and
// B > 1 at the bottom.
//
// Decorations placed relative to the plot area in paper coordinates also
// report their anchor: X is the horizontal paper position, XL and XR the
// pixel extent left and right of it. Y, YT and YB are the vertical
// counterparts with Y measured upwards.
type PushMargin struct {
	L, R, T, B float64

	HasX      bool
	X, XL, XR float64

	HasY      bool
	Y, YT, YB float64
}

// Overflows reports whether p needs more room on any side.
func (p PushMargin) Overflows() bool {
	return p.L < 0 || p.R > 1 || p.T < 0 || p.B > 1
}

// ResolveMargins grows current so that every decoration in pushes fits
// into the chart of the given size. Anchored decorations are placed
// cfg.PushPadding pixels from the edge, the others get the cruder
// cfg.ApproximatePadding. Margins never shrink.
//
// A chart too small for current itself fails with ErrZeroSpan; margins
// which only grow past the chart size fail with ErrMarginDivergence.
func ResolveMargins(pushes map[string]PushMargin, base, current Margin, width, height float64, cfg RenderConfig) (Margin, error) {
	if !current.Fits(width, height) {
		return current, fmt.Errorf("margins %v leave no plot area in %gx%g: %w", current, width, height, ErrZeroSpan)
	}
	pad, approx := cfg.PushPadding, cfg.ApproximatePadding
	m := current

	keys := make([]string, 0, len(pushes))
	for k := range pushes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	grow := func(cur *float64, v float64) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > *cur {
			*cur = v
		}
	}

	// Sides of decorations solved jointly are skipped below.
	var solved [4]string
	if cfg.JointMargins {
		if j, ok := jointMargins(pushes, keys, width, pad, false); ok {
			grow(&m.L, j.lo)
			grow(&m.R, j.hi)
			solved[0], solved[1] = j.first, j.second
		}
		if j, ok := jointMargins(pushes, keys, height, pad, true); ok {
			grow(&m.T, j.lo)
			grow(&m.B, j.hi)
			solved[2], solved[3] = j.first, j.second
		}
	}

	for _, k := range keys {
		p := pushes[k]
		if p.L < 0 && k != solved[0] {
			grow(&m.L, leftMargin(p, base, width, pad, approx))
		}
		if p.R > 1 && k != solved[1] {
			grow(&m.R, rightMargin(p, base, width, pad, approx))
		}
		if p.T < 0 && k != solved[2] {
			grow(&m.T, topMargin(p, base, height, pad, approx))
		}
		if p.B > 1 && k != solved[3] {
			grow(&m.B, bottomMargin(p, base, height, pad, approx))
		}
	}

	if !m.Fits(width, height) {
		return m, fmt.Errorf("grown margins %v leave no plot area in %gx%g: %w", m, width, height, ErrMarginDivergence)
	}
	return m, nil
}

func leftMargin(p PushMargin, base Margin, width, pad, approx float64) float64 {
	if p.HasX && p.X != 1 {
		return (p.X*(width-base.R) - pad - p.XL) / (p.X - 1)
	}
	return (approx - (width-base.R)*p.L) / (1 - p.L)
}

func rightMargin(p PushMargin, base Margin, width, pad, approx float64) float64 {
	if p.HasX && p.X != 0 {
		return ((p.X-1)*(width-base.L) + pad + p.XR) / p.X
	}
	return (approx + (width-base.L)*(p.R-1)) / p.R
}

func topMargin(p PushMargin, base Margin, height, pad, approx float64) float64 {
	if p.HasY && p.Y != 0 {
		return ((p.Y-1)*(height-base.B) + pad + p.YT) / p.Y
	}
	return (approx - (height-base.B)*p.T) / (1 - p.T)
}

func bottomMargin(p PushMargin, base Margin, height, pad, approx float64) float64 {
	if p.HasY && p.Y != 1 {
		return (p.Y*(height-base.T) - pad - p.YB) / (p.Y - 1)
	}
	return (approx + (height-base.T)*(p.B-1)) / p.B
}

type jointSolution struct {
	lo, hi        float64
	first, second string // keys of the decorations at the start and the end
}

// jointMargins solves both margins of one dimension together when one
// anchored decoration overflows at the start and a different one at the
// end. The decorations with the deepest overflow are used.
//
// Horizontally, with l and r unknown, the left edge of the first and the
// right edge of the second decoration must keep pad pixels distance:
//
//	l + x1*(w-l-r) - xl1 = pad
//	l + x2*(w-l-r) + xr2 = w - pad
//
// Vertically y runs upwards and t, b are unknown:
//
//	t + (1-y1)*(h-t-b) - yt1 = pad
//	t + (1-y2)*(h-t-b) + yb2 = h - pad
func jointMargins(pushes map[string]PushMargin, keys []string, size, pad float64, vertical bool) (jointSolution, bool) {
	var sol jointSolution
	var first, second *PushMargin
	for _, k := range keys {
		p := pushes[k]
		if vertical {
			if !p.HasY {
				continue
			}
			if p.T < 0 && (first == nil || p.T < first.T) {
				first, sol.first = &p, k
			}
			if p.B > 1 && (second == nil || p.B > second.B) {
				second, sol.second = &p, k
			}
			continue
		}
		if !p.HasX {
			continue
		}
		if p.L < 0 && (first == nil || p.L < first.L) {
			first, sol.first = &p, k
		}
		if p.R > 1 && (second == nil || p.R > second.R) {
			second, sol.second = &p, k
		}
	}
	if first == nil || second == nil || sol.first == sol.second {
		return sol, false
	}

	var a *mat.Dense
	var b *mat.VecDense
	if vertical {
		y1, y2 := first.Y, second.Y
		a = mat.NewDense(2, 2, []float64{y1, -(1 - y1), y2, -(1 - y2)})
		b = mat.NewVecDense(2, []float64{
			pad + first.YT - (1-y1)*size,
			size - pad - second.YB - (1-y2)*size,
		})
	} else {
		x1, x2 := first.X, second.X
		a = mat.NewDense(2, 2, []float64{1 - x1, -x1, 1 - x2, -x2})
		b = mat.NewVecDense(2, []float64{
			pad + first.XL - x1*size,
			size - pad - second.XR - x2*size,
		})
	}
	if math.Abs(mat.Det(a)) < 1e-12 {
		return sol, false
	}
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return sol, false
	}
	sol.lo, sol.hi = x.AtVec(0), x.AtVec(1)
	return sol, true
}
