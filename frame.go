package plotlayout

import "gonum.org/v1/plot"

// A Frame is the complete pixel layout of a chart: what a renderer needs
// to draw it. Pixel coordinates have their origin in the top left corner
// of the chart with y growing downwards.
type Frame struct {
	Width, Height float64
	Margin        Margin
	Passes        int // layout passes run until the margins settled

	PaperColor string
	PlotColor  string

	Subplots    []SubplotFrame
	Axes        []AxisFrame
	Traces      []TraceFrame
	Decorations []DecorationFrame
}

// Label is a line of text drawn centred into Box, rotated by Rotation
// degrees counter clockwise around the box centre.
type Label struct {
	Text     string
	Box      Box
	Size     float64
	Rotation float64
	Color    string
}

// SubplotFrame is the background rectangle of an axis pair.
type SubplotFrame struct {
	X, Y AxisID
	Box  Box
}

// AxisFrame is an axis with its line, ticks and grid in pixels.
type AxisFrame struct {
	ID    AxisID
	Type  AxisType
	Range Interval // padded range in range space

	// Line is the pixel position of the axis line across the axis
	// direction, Span its extent along it.
	Line float64
	Span Interval
	Side string // "bottom" or "top" for x, "left" or "right" for y axes

	// Ticks are the major ticks with Value the pixel position along the
	// axis. Minor ticks have no labels.
	Ticks    []plot.Tick
	Values   []float64 // major tick values in data space
	Labels   []Label
	TickLen  float64 // signed: positive for outside ticks, 0 if none
	Grid     Interval // cross extent of grid lines, empty without grid
	ShowLine bool

	Minor     []plot.Tick
	MinorLen  float64  // signed like TickLen
	MinorGrid Interval // like Grid for the minor ticks

	LineColor string
	GridColor string
}

// TraceFrame is a trace mapped to pixels.
type TraceFrame struct {
	Index int
	Type  string
	Name  string
	Color string
	X, Y  AxisID // the subplot the trace is drawn in

	// Points holds one pixel position per data point; NaN coordinates
	// stay NaN. Radii are the marker radii if markers are drawn.
	Points  []Point
	Radii   []float64
	Markers bool
	Symbol  string

	// Segments are the polylines of a trace drawn with lines, split at
	// points with NaN coordinates.
	Segments  [][]Point
	LineWidth float64
	Dash      string

	// Bars are the histogram bins, four corners each: bottom left, top
	// left, top right and bottom right.
	Bars [][4]Point

	Opacity float64
}

// DecorationFrame is a placed decoration.
type DecorationFrame struct {
	ID   string // e.g. "legend", "xaxis.title", "annotations[0]"
	Kind string // "legend", "title", "annotation" or "menu"
	Box  Box

	Background string
	Border     string

	Labels  []Label
	Entries []LegendEntry
}

// Decoration returns the decoration with the given id or nil.
func (f *Frame) Decoration(id string) *DecorationFrame {
	for i := range f.Decorations {
		if f.Decorations[i].ID == id {
			return &f.Decorations[i]
		}
	}
	return nil
}

// Axis returns the frame of the axis id or nil.
func (f *Frame) Axis(id AxisID) *AxisFrame {
	for i := range f.Axes {
		if f.Axes[i].ID == id {
			return &f.Axes[i]
		}
	}
	return nil
}
