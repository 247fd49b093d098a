package plotlayout

import (
	"fmt"
	"math"
)

// Point is a position in pixels; Y grows downwards.
type Point struct {
	X, Y float64
}

// Geometry is the pixel size of the chart together with its current
// margins.
type Geometry struct {
	Width, Height float64
	Margin        Margin
}

// PlotWidth is the width of the plot area.
func (g Geometry) PlotWidth() float64 { return g.Width - g.Margin.L - g.Margin.R }

// PlotHeight is the height of the plot area.
func (g Geometry) PlotHeight() float64 { return g.Height - g.Margin.T - g.Margin.B }

// Span returns the pixel coordinates of the start and the end of the
// domain of ax. Vertical spans run upwards, i.e. Min > Max.
func (g Geometry) Span(ax *Axis) Interval {
	d := ax.Domain
	if ax.Horizontal() {
		w := g.PlotWidth()
		return Interval{d.Min*w + g.Margin.L, d.Max*w + g.Margin.L}
	}
	h := g.PlotHeight()
	return Interval{g.Height - g.Margin.B - d.Min*h, g.Height - g.Margin.B - d.Max*h}
}

// Length is the pixel length of ax.
func (g Geometry) Length(ax *Axis) float64 { return math.Abs(g.Span(ax).Span()) }

// AxisLine returns the cross coordinate of the axis line of ax: a pixel y
// for x axes and a pixel x for y axes.
func (g Geometry) AxisLine(ax *Axis) float64 {
	if ax.Horizontal() {
		return g.Height - g.Margin.B - ax.State.Position*g.PlotHeight()
	}
	return g.Margin.L + ax.State.Position*g.PlotWidth() + ax.State.Shift
}

// MapX maps values onto pixel x coordinates of the horizontal axis ax.
// Unless raw is set the values are data values and get transformed into
// range space first. NaN maps to NaN.
func MapX(values []float64, ax *Axis, g Geometry, raw bool) ([]float64, error) {
	if !ax.Horizontal() {
		return nil, fmt.Errorf("MapX on vertical axis %s", ax.ID)
	}
	return mapValues(values, ax, g, raw)
}

// MapY is the vertical counterpart of MapX.
func MapY(values []float64, ax *Axis, g Geometry, raw bool) ([]float64, error) {
	if ax.Horizontal() {
		return nil, fmt.Errorf("MapY on horizontal axis %s", ax.ID)
	}
	return mapValues(values, ax, g, raw)
}

func mapValues(values []float64, ax *Axis, g Geometry, raw bool) ([]float64, error) {
	from := ax.State.Range
	if from.IsEmpty() || from.Span() == 0 {
		return nil, fmt.Errorf("%s: range %v: %w", ax.ID, from, ErrZeroSpan)
	}
	to := g.Span(ax)
	trans := ax.Transformation()
	out := make([]float64, len(values))
	for i, v := range values {
		if !raw {
			var err error
			if v, err = trans.Trans(v); err != nil {
				return nil, fmt.Errorf("%s: %w", ax.ID, err)
			}
		}
		out[i] = LinearMap(from, to, v)
	}
	return out, nil
}

// Subplot is a pair of x and y axis which share a plot area.
type Subplot struct {
	X, Y *Axis
}

// MapXY maps the data coordinate (x,y) to a pixel position.
func (s Subplot) MapXY(x, y float64, g Geometry) (Point, error) {
	xs, err := MapX([]float64{x}, s.X, g, false)
	if err != nil {
		return Point{}, err
	}
	ys, err := MapY([]float64{y}, s.Y, g, false)
	if err != nil {
		return Point{}, err
	}
	return Point{xs[0], ys[0]}, nil
}

// Rect returns the top left and bottom right corner of the plot area of s.
func (s Subplot) Rect(g Geometry) (min, max Point) {
	xs, ys := g.Span(s.X).Ordered(), g.Span(s.Y).Ordered()
	return Point{xs.Min, ys.Min}, Point{xs.Max, ys.Max}
}
