package plotlayout

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/vdobler/plotlayout/data"
)

// Trace is one series of a figure. The set of implementations is closed:
// *Scatter and *Histogram.
type Trace interface {
	// Base returns the fields common to all traces.
	Base() *TraceBase

	// Extent returns the extent of the trace's coordinates along the
	// given axis letter in data space.
	Extent(letter byte) Interval

	isTrace()
}

// Marker styles the points of a scatter trace.
type Marker struct {
	Size     float64   // scalar size in pixels
	Sizes    []float64 // per point sizes, divided by SizeRef
	SizeRef  float64
	SizeMode string // "diameter" or "area"
	Color    string
	Symbol   string
}

// Line styles the connecting lines of a scatter trace.
type Line struct {
	Width float64
	Color string
	Dash  string
}

// TraceBase holds the fields shared by all trace types.
type TraceBase struct {
	Index int
	Type  string
	Name  string

	// Visible is the persistent visibility from the specification.
	// UIVisible is the transient state toggled by legend clicks.
	Visible   bool
	UIVisible bool

	ShowLegend  bool
	LegendGroup string
	Opacity     float64

	XAxis, YAxis AxisID

	// RawX and RawY are the coordinates as given; X and Y are their
	// normalized numeric form: timestamps for dates and ordinal indices
	// for categories.
	RawX, RawY []interface{}
	X, Y       []float64

	Marker Marker
	Line   Line
	Color  string // resolved default color from the colorway
}

func (b *TraceBase) Base() *TraceBase { return b }

// Shown reports whether the trace is drawn and contributes to autorange.
func (b *TraceBase) Shown() bool { return b.Visible && b.UIVisible }

// Extent implements Trace.
func (b *TraceBase) Extent(letter byte) Interval {
	xs := b.X
	if letter == 'y' {
		xs = b.Y
	}
	min, max, ok := data.Extent(xs)
	if !ok {
		return EmptyRange
	}
	return Interval{min, max}
}

func (b *TraceBase) coords(letter byte) *[]float64 {
	if letter == 'y' {
		return &b.Y
	}
	return &b.X
}

func (b *TraceBase) raw(letter byte) []interface{} {
	if letter == 'y' {
		return b.RawY
	}
	return b.RawX
}

// Scatter draws points, lines or both.
type Scatter struct {
	TraceBase
	Mode string
}

func (*Scatter) isTrace() {}

// Modes reports whether markers and lines are drawn.
func (s *Scatter) Modes() (markers, lines bool) {
	if s.Mode == "none" {
		return false, false
	}
	for _, m := range splitPlus(s.Mode) {
		switch m {
		case "markers":
			markers = true
		case "lines":
			lines = true
		}
	}
	return markers, lines
}

// Radius returns the marker radius of point i in pixels.
func (s *Scatter) Radius(i int) float64 {
	m := s.Marker
	size := m.Size
	if i < len(m.Sizes) {
		size = m.Sizes[i]
		if m.SizeRef > 0 {
			size /= m.SizeRef
		}
	}
	if m.SizeMode == "area" {
		return math.Sqrt(size / math.Pi)
	}
	return size / 2
}

// Histogram counts the values of X in bins of equal width.
type Histogram struct {
	TraceBase

	// Binned is set once X holds the bin edges and Y the counts.
	Binned bool
}

func (*Histogram) isTrace() {}

// Extent implements Trace. The count axis always includes zero.
func (h *Histogram) Extent(letter byte) Interval {
	if letter == 'y' {
		return h.CountRange(false)
	}
	return h.TraceBase.Extent(letter)
}

// CountRange returns the extent of the bin counts. Bars start at 0 on
// linear axes, so 0 is included; log axes get the range of the positive
// counts only.
func (h *Histogram) CountRange(log bool) Interval {
	r := EmptyRange
	for _, c := range h.Y {
		if !log || c > 0 {
			r.Update(c)
		}
	}
	if !log && !r.IsEmpty() {
		r.Update(0)
	}
	return r
}

// Bin replaces the raw values in X by bin edges and stores the counts in
// Y. The number of bins is the square root of the number of samples, the
// bin width is rounded to one significant figure and the first edge is a
// multiple of the width. Bins are half-open [e_i, e_i+1). Binning an
// already binned histogram does nothing.
func (h *Histogram) Bin() {
	if h.Binned {
		return
	}
	h.Binned = true
	min, max, ok := data.Extent(h.X)
	if !ok {
		h.X, h.Y = nil, nil
		return
	}

	nbins := math.Sqrt(float64(len(h.X)))
	width := roundSF((max-min)/nbins, 1)
	if !(width > 0) || math.IsInf(width, 0) {
		width = 1
	}
	start := width * math.Floor(min/width)
	n := int(math.Ceil((max + width - start) / width))
	var edges []float64
	for i := 0; i < n; i++ {
		e := start + float64(i)*width
		if e >= max+width {
			break
		}
		edges = append(edges, e)
	}
	if last := edges[len(edges)-1]; last <= max {
		// Keep the maximum inside the last half-open bin.
		edges = append(edges, last+width)
	}

	hist := stats.NewLinearHist(edges[0], edges[len(edges)-1], len(edges)-1)
	for _, x := range h.X {
		if !math.IsNaN(x) {
			hist.Add(x)
		}
	}
	_, counts, _ := hist.Counts()
	y := make([]float64, len(counts))
	for i, c := range counts {
		y[i] = float64(c)
	}
	h.X, h.Y = edges, y
}

// binCategories counts the category indices in X, one unit wide bin per
// category centred on its index.
func (h *Histogram) binCategories(n int) {
	h.Binned = true
	edges := make([]float64, n+1)
	counts := make([]float64, n)
	for i := range edges {
		edges[i] = float64(i) - 0.5
	}
	for _, x := range h.X {
		if i := int(math.Round(x)); !math.IsNaN(x) && i >= 0 && i < n {
			counts[i]++
		}
	}
	h.X, h.Y = edges, counts
}

// roundSF rounds x to sf significant figures, ties to even.
func roundSF(x float64, sf int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	decimals := sf - 1 - int(math.Floor(math.Log10(math.Abs(x))))
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*p) / p
}

// newTrace builds the trace at index i from its merged specification.
func newTrace(i int, m data.Map) (Trace, error) {
	attr := func(a string) string { return fmt.Sprintf("data[%d].%s", i, a) }

	typ := data.String(m, "type", "scatter")
	b := TraceBase{
		Index:       i,
		Type:        typ,
		Name:        data.String(m, "name", fmt.Sprintf("trace %d", i)),
		Visible:     true,
		ShowLegend:  data.Bool(m, "showlegend", true),
		LegendGroup: data.String(m, "legendgroup", ""),
		Opacity:     data.Float(m, "opacity", 1),
	}
	switch v := m["visible"].(type) {
	case bool:
		b.Visible = v
		b.UIVisible = v
	case string:
		if v != "legendonly" {
			return nil, configError(attr("visible"), v, ErrUnknownAction)
		}
		b.UIVisible = false
	default:
		b.UIVisible = true
	}
	if v, ok := m["_visible"].(bool); ok {
		b.UIVisible = v
	}

	var err error
	if b.XAxis, err = ParseAxisID(data.String(m, "xaxis", "x")); err != nil || b.XAxis.Letter != 'x' {
		return nil, configError(attr("xaxis"), m["xaxis"], ErrUnknownReference)
	}
	if b.YAxis, err = ParseAxisID(data.String(m, "yaxis", "y")); err != nil || b.YAxis.Letter != 'y' {
		return nil, configError(attr("yaxis"), m["yaxis"], ErrUnknownReference)
	}
	b.RawX, _ = data.List(m, "x")
	b.RawY, _ = data.List(m, "y")

	marker := data.Sub(m, "marker")
	b.Marker = Marker{
		Size:     6,
		SizeRef:  data.Float(marker, "sizeref", 1),
		SizeMode: data.String(marker, "sizemode", "diameter"),
		Color:    data.String(marker, "color", ""),
		Symbol:   data.String(marker, "symbol", "circle"),
	}
	if sizes, ok := data.List(marker, "size"); ok {
		b.Marker.Sizes = data.Floats(sizes)
	} else {
		b.Marker.Size = data.Float(marker, "size", 6)
	}
	line := data.Sub(m, "line")
	b.Line = Line{
		Width: data.Float(line, "width", 2),
		Color: data.String(line, "color", ""),
		Dash:  data.String(line, "dash", "solid"),
	}

	switch typ {
	case "scatter", "scattergl":
		s := &Scatter{TraceBase: b, Mode: data.String(m, "mode", "")}
		if s.Mode == "" {
			s.Mode = "lines"
			if n := max(len(b.RawX), len(b.RawY)); n <= 20 {
				s.Mode = "lines+markers"
			}
		}
		return s, nil
	case "histogram":
		return &Histogram{TraceBase: b, Binned: data.Bool(m, "binned", false)}, nil
	}
	return nil, configError(attr("type"), typ, ErrUnknownTraceType)
}

func splitPlus(s string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '+' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return parts
}
