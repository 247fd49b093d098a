package plotlayout

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"

	"github.com/vdobler/plotlayout/data"
	"github.com/vdobler/plotlayout/textmeasure"
)

// A Chart lays out a figure specification for varying sizes and keeps the
// interaction state of legend and menus. A Chart is not safe for
// concurrent use.
type Chart struct {
	cfg RenderConfig
	fig *Figure
}

// NewChart builds a chart from spec. Zero fields of cfg which have no
// sensible zero value are taken from DefaultRenderConfig.
func NewChart(spec data.Map, cfg RenderConfig) (*Chart, error) {
	def := DefaultRenderConfig()
	if cfg.Measurer == nil {
		cfg.Measurer = textmeasure.GoRegular()
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.MinTickSpacingX <= 0 {
		cfg.MinTickSpacingX = def.MinTickSpacingX
	}
	if cfg.MinTickSpacingY <= 0 {
		cfg.MinTickSpacingY = def.MinTickSpacingY
	}
	if cfg.PushPadding <= 0 {
		cfg.PushPadding = def.PushPadding
	}
	if cfg.ApproximatePadding <= 0 {
		cfg.ApproximatePadding = def.ApproximatePadding
	}
	if cfg.MaxLayoutPasses < 1 {
		cfg.MaxLayoutPasses = def.MaxLayoutPasses
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	c := &Chart{cfg: cfg}
	if err := c.Update(spec); err != nil {
		return nil, err
	}
	return c, nil
}

// Figure returns the current figure.
func (c *Chart) Figure() *Figure { return c.fig }

// Spec returns the current specification including the interaction state
// (the "_visible" flags of the traces, the active menu buttons).
func (c *Chart) Spec() data.Map { return c.fig.Spec }

// Update replaces the figure by one built from spec and resolves its
// ranges.
func (c *Chart) Update(spec data.Map) error {
	fig, err := New(spec, c.cfg)
	if err != nil {
		return err
	}
	if err := fig.ResolveRanges(c.cfg); err != nil {
		return err
	}
	c.fig = fig
	c.cfg.logger().Info("chart updated", "traces", len(fig.Traces), "axes", len(fig.Layout.Axes))
	return nil
}

// Draw lays out the chart for the given pixel size. Every pass computes
// the ticks for the current axis lengths, places the decorations and
// grows the margins for the decorations sticking out of the plot area,
// until the margins change by at most cfg.Tolerance.
func (c *Chart) Draw(width, height float64) (*Frame, error) {
	if !(width > 0 && height > 0) {
		return nil, fmt.Errorf("invalid chart size %gx%g", width, height)
	}
	cfg, l := c.cfg, c.fig.Layout
	log := cfg.logger()
	if !l.Margin.Fits(width, height) {
		return nil, fmt.Errorf("margins %v leave no plot area in %gx%g: %w", l.Margin, width, height, ErrZeroSpan)
	}

	g := Geometry{Width: width, Height: height, Margin: l.Margin}
	var decs []*decoration
	passes, converged := 0, false
	for passes < cfg.MaxLayoutPasses {
		passes++
		if err := c.layoutTicks(g); err != nil {
			return nil, err
		}
		var err error
		if decs, err = c.fig.decorations(cfg, g); err != nil {
			return nil, err
		}
		if !l.AutoExpand {
			converged = true
			break
		}

		pushes := make(map[string]PushMargin)
		for _, d := range decs {
			if d.push {
				pushes[d.id] = d.place.Push(d.w, d.h, width, height, l.Margin)
			}
		}
		m, err := ResolveMargins(pushes, l.Margin, g.Margin, width, height, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Debug {
			log.Debug("layout pass", "pass", passes, "margin", m.String(), "decorations", len(decs))
		}
		if marginDelta(m, g.Margin) <= cfg.Tolerance {
			converged = true
			break
		}
		g.Margin = m
	}
	if !converged {
		return nil, fmt.Errorf("after %d passes at %gx%g: %w", passes, width, height, ErrMarginDivergence)
	}

	fr := &Frame{
		Width:      width,
		Height:     height,
		Margin:     g.Margin,
		Passes:     passes,
		PaperColor: l.PaperColor,
		PlotColor:  l.PlotColor,
	}
	for _, sp := range c.fig.Subplots() {
		if sp.X.Empty() || sp.Y.Empty() {
			continue
		}
		min, max := sp.Rect(g)
		fr.Subplots = append(fr.Subplots, SubplotFrame{X: sp.X.ID, Y: sp.Y.ID, Box: Box{min, max}})
	}
	for _, ax := range l.Axes {
		if ax.Empty() {
			continue
		}
		af, err := c.axisFrame(ax, g)
		if err != nil {
			return nil, err
		}
		fr.Axes = append(fr.Axes, af)
	}
	for _, t := range c.fig.Traces {
		tf, ok, err := traceFrame(t, l, g)
		if err != nil {
			return nil, err
		}
		if ok {
			fr.Traces = append(fr.Traces, tf)
		}
	}
	for _, d := range decs {
		fr.Decorations = append(fr.Decorations, d.frame(g))
	}
	return fr, nil
}

func marginDelta(a, b Margin) float64 {
	return math.Max(
		math.Max(math.Abs(a.L-b.L), math.Abs(a.R-b.R)),
		math.Max(math.Abs(a.T-b.T), math.Abs(a.B-b.B)),
	)
}

// layoutTicks recomputes the ticks of all axes for the axis lengths under
// g and stacks free axes with autoshift.
func (c *Chart) layoutTicks(g Geometry) error {
	l := c.fig.Layout
	for _, ax := range l.Axes {
		t := l.Ticks(ax.ID)
		if t == nil {
			continue
		}
		t.Length = g.Length(ax)
		if _, err := t.Calculate(); err != nil {
			return err
		}
	}
	c.autoshift()
	return nil
}

// autoshift moves free y axes with autoshift which share position and
// side outwards, each by the width of the previous axis' tick labels.
func (c *Chart) autoshift() {
	l := c.fig.Layout
	type slot struct {
		pos  float64
		side string
	}
	offset := make(map[slot]float64)
	for _, ax := range l.Axes {
		if !ax.ID.Vertical() || !ax.Free() || ax.Empty() {
			continue
		}
		ax.State.Shift = ax.Shift
		if !ax.Autoshift {
			continue
		}
		s := slot{ax.State.Position, ax.Side}
		sign := -1.0
		if ax.Side == "right" {
			sign = 1
		}
		ax.State.Shift += sign * offset[s]
		offset[s] += c.tickLabelWidth(ax) + ax.TickLen + legendSpacing
	}
}

func (c *Chart) tickFont(ax *Axis) Font {
	f := c.fig.Layout.Font
	if ax.TickFontSize > 0 {
		f.Size = ax.TickFontSize
	}
	return f
}

func (c *Chart) tickLabelWidth(ax *Axis) float64 {
	if !ax.ShowTickLabels {
		return 0
	}
	font := c.tickFont(ax)
	w := 0.0
	for _, t := range ax.State.TickText {
		tw, _ := c.cfg.Measurer.Measure(t, font.Size)
		w = math.Max(w, tw)
	}
	return w
}

// axisFrame maps the ticks of ax into pixels and places its labels next
// to the axis line: below or above x axes, left or right of y axes.
func (c *Chart) axisFrame(ax *Axis, g Geometry) (AxisFrame, error) {
	st := ax.State
	af := AxisFrame{
		ID:        ax.ID,
		Type:      ax.ResolvedType,
		Range:     st.Range,
		Line:      g.AxisLine(ax),
		Span:      g.Span(ax),
		Side:      ax.Side,
		Values:    st.TickVals,
		ShowLine:  ax.ShowLine,
		LineColor: ax.LineColor,
		GridColor: ax.GridColor,
		Grid:      EmptyRange,
		MinorGrid: EmptyRange,
	}
	tk := c.fig.Layout.Ticks(ax.ID)
	if tk == nil {
		return af, nil
	}
	marks, err := pixelTicks(tk.Marks(), ax, g)
	if err != nil {
		return af, err
	}
	af.Ticks = marks
	switch ax.Ticks {
	case "outside":
		af.TickLen = ax.TickLen
	case "inside":
		af.TickLen = -ax.TickLen
	}
	cross := EmptyRange
	if other := c.fig.Layout.Axis(st.GridWith); other != nil && !other.Empty() {
		cross = g.Span(other).Ordered()
	}
	if ax.ShowGrid {
		af.Grid = cross
	}

	if ax.Minor.Shown() {
		pos, err := tk.MinorTicks()
		if err != nil {
			return af, err
		}
		minor := make([]plot.Tick, len(pos))
		for i, p := range pos {
			minor[i].Value = p
		}
		if af.Minor, err = pixelTicks(minor, ax, g); err != nil {
			return af, err
		}
		switch ax.Minor.Ticks {
		case "outside":
			af.MinorLen = ax.Minor.TickLen
		case "inside":
			af.MinorLen = -ax.Minor.TickLen
		}
		if ax.Minor.ShowGrid {
			af.MinorGrid = cross
		}
	}
	if !ax.ShowTickLabels {
		return af, nil
	}

	font := c.tickFont(ax)
	out := math.Max(af.TickLen, 0)
	for _, m := range marks {
		p := m.Value
		lbl := textLabel(c.cfg.Measurer, m.Label, font)
		w, h := lbl.Box.Width(), lbl.Box.Height()
		var at Point
		switch {
		case ax.Horizontal() && ax.Side == "top":
			at = Point{p - w/2, af.Line - out - h}
		case ax.Horizontal():
			at = Point{p - w/2, af.Line + out}
		case ax.Side == "right":
			at = Point{af.Line + out, p - h/2}
		default:
			at = Point{af.Line - out - w, p - h/2}
		}
		lbl.Box = lbl.Box.Translate(at)
		af.Labels = append(af.Labels, lbl)
	}
	return af, nil
}

// pixelTicks maps the tick values from range space into pixels.
func pixelTicks(marks []plot.Tick, ax *Axis, g Geometry) ([]plot.Tick, error) {
	pos := make([]float64, len(marks))
	for i, m := range marks {
		pos[i] = m.Value
	}
	pix, err := mapValues(pos, ax, g, true)
	if err != nil {
		return nil, err
	}
	out := make([]plot.Tick, len(marks))
	for i, m := range marks {
		out[i] = plot.Tick{Value: pix[i], Label: m.Label}
	}
	return out, nil
}

// traceFrame maps a shown trace into pixels. Traces which are hidden or
// whose axes have no range yield ok == false.
func traceFrame(t Trace, l *Layout, g Geometry) (tf TraceFrame, ok bool, err error) {
	b := t.Base()
	sp := Subplot{X: l.Axis(b.XAxis), Y: l.Axis(b.YAxis)}
	if !b.Shown() || sp.X.Empty() || sp.Y.Empty() {
		return tf, false, nil
	}
	tf = TraceFrame{
		Index:     b.Index,
		Type:      b.Type,
		Name:      b.Name,
		Color:     b.Color,
		X:         b.XAxis,
		Y:         b.YAxis,
		Opacity:   b.Opacity,
		LineWidth: b.Line.Width,
		Dash:      b.Line.Dash,
	}

	switch t := t.(type) {
	case *Scatter:
		xs, err := MapX(t.X, sp.X, g, false)
		if err != nil {
			return tf, false, fmt.Errorf("data[%d]: %w", b.Index, err)
		}
		ys, err := MapY(t.Y, sp.Y, g, false)
		if err != nil {
			return tf, false, fmt.Errorf("data[%d]: %w", b.Index, err)
		}
		markers, lines := t.Modes()
		switch {
		case lines && t.Line.Color != "":
			tf.Color = t.Line.Color
		case t.Marker.Color != "":
			tf.Color = t.Marker.Color
		}
		n := len(xs)
		if len(ys) < n {
			n = len(ys)
		}
		tf.Points = make([]Point, n)
		var seg []Point
		for i := 0; i < n; i++ {
			p := Point{xs[i], ys[i]}
			tf.Points[i] = p
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				if len(seg) > 0 && lines {
					tf.Segments = append(tf.Segments, seg)
				}
				seg = nil
				continue
			}
			seg = append(seg, p)
		}
		if len(seg) > 0 && lines {
			tf.Segments = append(tf.Segments, seg)
		}
		if markers {
			tf.Markers = true
			tf.Symbol = t.Marker.Symbol
			tf.Radii = make([]float64, n)
			for i := range tf.Radii {
				tf.Radii[i] = t.Radius(i)
			}
		}

	case *Histogram:
		if len(t.X) < 2 {
			return tf, true, nil
		}
		xs, err := MapX(t.X, sp.X, g, false)
		if err != nil {
			return tf, false, fmt.Errorf("data[%d]: %w", b.Index, err)
		}
		// Bars grow from 0, or from the bottom of the range on log axes
		// where empty bins stay flat.
		counts := append([]float64{0}, t.Y...)
		if sp.Y.ResolvedType == Log {
			counts[0] = math.Pow(10, sp.Y.State.Range.Ordered().Min)
			for i, c := range counts[1:] {
				if !(c > 0) {
					counts[i+1] = counts[0]
				}
			}
		}
		ys, err := MapY(counts, sp.Y, g, false)
		if err != nil {
			return tf, false, fmt.Errorf("data[%d]: %w", b.Index, err)
		}
		base := ys[0]
		for i := 0; i+1 < len(xs) && i+1 < len(ys); i++ {
			top := ys[i+1]
			tf.Bars = append(tf.Bars, [4]Point{
				{xs[i], base}, {xs[i], top}, {xs[i+1], top}, {xs[i+1], base},
			})
		}
	}
	return tf, true, nil
}

// LegendClick applies a click on the legend entry of trace index: one
// click runs legend.itemclick, two run legend.itemdoubleclick. The
// resulting visibility is stored in the specification and the figure is
// rebuilt.
func (c *Chart) LegendClick(index, clicks int) error {
	if index < 0 || index >= len(c.fig.Traces) {
		return configError("data", index, ErrUnknownReference)
	}
	action, err := c.fig.Layout.Legend.Action(clicks)
	if err != nil {
		return err
	}
	spec, err := data.Clone(c.fig.Spec)
	if err != nil {
		return err
	}
	// The action runs on the live traces; their flags are restored once
	// copied into spec so a failing Update leaves the chart as it was.
	visible := make([]bool, len(c.fig.Traces))
	for i, t := range c.fig.Traces {
		visible[i] = t.Base().UIVisible
	}
	ApplyLegendAction(c.fig.Traces, index, action)
	traces := data.Maps(spec, "data")
	for i, t := range c.fig.Traces {
		if i < len(traces) {
			traces[i]["_visible"] = t.Base().UIVisible
		}
		t.Base().UIVisible = visible[i]
	}
	return c.Update(spec)
}

// SelectMenuButton presses button of update menu menu and rebuilds the
// figure.
func (c *Chart) SelectMenuButton(menu, button int) error {
	menus := c.fig.Layout.UpdateMenus
	if menu < 0 || menu >= len(menus) {
		return configError("updatemenus", menu, ErrUnknownReference)
	}
	spec, err := data.Clone(c.fig.Spec)
	if err != nil {
		return err
	}
	if err := menus[menu].apply(button, spec); err != nil {
		return err
	}
	return c.Update(spec)
}

// ToggleMenu opens or closes the dropdown menu.
func (c *Chart) ToggleMenu(menu int) error {
	menus := c.fig.Layout.UpdateMenus
	if menu < 0 || menu >= len(menus) {
		return configError("updatemenus", menu, ErrUnknownReference)
	}
	spec, err := data.Clone(c.fig.Spec)
	if err != nil {
		return err
	}
	list, _ := data.List(data.Sub(spec, "layout"), "updatemenus")
	if menu < len(list) {
		if mm, ok := list[menu].(map[string]interface{}); ok {
			mm["_open"] = !menus[menu].Open
		}
	}
	return c.Update(spec)
}
