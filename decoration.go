package plotlayout

import (
	"fmt"
	"math"

	"github.com/vdobler/plotlayout/data"
)

// Box is an axis aligned pixel rectangle.
type Box struct {
	Min, Max Point
}

func (b Box) Width() float64  { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Translate moves b by p.
func (b Box) Translate(p Point) Box {
	return Box{Point{b.Min.X + p.X, b.Min.Y + p.Y}, Point{b.Max.X + p.X, b.Max.Y + p.Y}}
}

// Placement positions a decoration. X and Y are fractions of the plot
// area (XRef "paper") or of the whole chart (XRef "container") with Y
// running upwards. The anchors select which point of the decoration's box
// sits at (X,Y); the offsets shift it by pixels, YOffset downwards.
type Placement struct {
	X, Y             float64
	XRef, YRef       string
	XAnchor, YAnchor string
	XOffset, YOffset float64
}

func parsePlacement(m data.Map, attr string, def Placement) (Placement, error) {
	p := Placement{
		X:       data.Float(m, "x", def.X),
		Y:       data.Float(m, "y", def.Y),
		XRef:    data.String(m, "xref", def.XRef),
		YRef:    data.String(m, "yref", def.YRef),
		XAnchor: data.String(m, "xanchor", def.XAnchor),
		YAnchor: data.String(m, "yanchor", def.YAnchor),
		XOffset: data.Float(m, "xoffset", def.XOffset),
		YOffset: data.Float(m, "yoffset", def.YOffset),
	}
	return p, p.validate(attr)
}

// validate checks the references and resolves "auto" anchors.
func (p *Placement) validate(attr string) error {
	for _, r := range []struct{ name, v string }{{"xref", p.XRef}, {"yref", p.YRef}} {
		if r.v != "paper" && r.v != "container" {
			return configError(attr+"."+r.name, r.v, ErrUnknownReference)
		}
	}
	switch p.XAnchor {
	case "left", "center", "right":
	case "auto":
		p.XAnchor = autoAnchor(p.X, "left", "center", "right")
	default:
		return configError(attr+".xanchor", p.XAnchor, ErrUnknownReference)
	}
	switch p.YAnchor {
	case "top", "middle", "bottom":
	case "auto":
		p.YAnchor = autoAnchor(p.Y, "bottom", "middle", "top")
	default:
		return configError(attr+".yanchor", p.YAnchor, ErrUnknownReference)
	}
	return nil
}

// autoAnchor picks the anchor for position v: low below 1/3, high above
// 2/3 and mid in between.
func autoAnchor(v float64, low, mid, high string) string {
	switch {
	case v > 2.0/3:
		return high
	case v < 1.0/3:
		return low
	}
	return mid
}

// origin returns the top left corner of a w×h box placed by p in a chart
// of the given size and margins.
func (p Placement) origin(w, h, width, height float64, m Margin) Point {
	x := m.L + p.X*(width-m.L-m.R)
	if p.XRef == "container" {
		x = p.X * width
	}
	y := m.T + (1-p.Y)*(height-m.T-m.B)
	if p.YRef == "container" {
		y = (1 - p.Y) * height
	}
	x += p.XOffset
	y += p.YOffset

	switch p.XAnchor {
	case "center":
		x -= w / 2
	case "right":
		x -= w
	}
	switch p.YAnchor {
	case "middle":
		y -= h / 2
	case "bottom":
		y -= h
	}
	return Point{x, y}
}

// Locate returns the pixel box of a w×h decoration under the current
// margins of g.
func (p Placement) Locate(w, h float64, g Geometry) Box {
	o := p.origin(w, h, g.Width, g.Height, g.Margin)
	return Box{o, Point{o.X + w, o.Y + h}}
}

// Push reports how far a w×h decoration reaches beyond the plot area
// spanned by the base margins.
func (p Placement) Push(w, h, width, height float64, base Margin) PushMargin {
	o := p.origin(w, h, width, height, base)
	pw := width - base.L - base.R
	ph := height - base.T - base.B
	pm := PushMargin{
		L: (o.X - base.L) / pw,
		R: (o.X + w - base.L) / pw,
		T: (o.Y - base.T) / ph,
		B: (o.Y + h - base.T) / ph,
	}
	if p.XRef == "paper" {
		pm.HasX, pm.X = true, p.X
		switch p.XAnchor {
		case "left":
			pm.XL, pm.XR = 0, w
		case "right":
			pm.XL, pm.XR = w, 0
		default:
			pm.XL, pm.XR = w/2, w/2
		}
		pm.XL -= p.XOffset
		pm.XR += p.XOffset
	}
	if p.YRef == "paper" {
		pm.HasY, pm.Y = true, p.Y
		switch p.YAnchor {
		case "top":
			pm.YT, pm.YB = 0, h
		case "bottom":
			pm.YT, pm.YB = h, 0
		default:
			pm.YT, pm.YB = h/2, h/2
		}
		pm.YT -= p.YOffset
		pm.YB += p.YOffset
	}
	return pm
}

// ----------------------------------------------------------------------------
// Decorations

// decoration is one placed text element of a layout pass. Its labels and
// entries are relative to the top left corner of its box.
type decoration struct {
	id, kind string
	place    Placement
	w, h     float64
	push     bool // takes part in margin growth

	background, border string
	labels             []Label
	entries            []LegendEntry
}

// frame places d under the margins of g.
func (d *decoration) frame(g Geometry) DecorationFrame {
	box := d.place.Locate(d.w, d.h, g)
	df := DecorationFrame{
		ID:         d.id,
		Kind:       d.kind,
		Box:        box,
		Background: d.background,
		Border:     d.border,
	}
	for _, l := range d.labels {
		l.Box = l.Box.Translate(box.Min)
		df.Labels = append(df.Labels, l)
	}
	for _, e := range d.entries {
		e.Icon = e.Icon.Translate(box.Min)
		e.Label.Box = e.Label.Box.Translate(box.Min)
		df.Entries = append(df.Entries, e)
	}
	return df
}

// decorations builds all decorations of the figure for the current tick
// labels and margins. Menus come first, then the legend, axis titles and
// annotations.
func (f *Figure) decorations(cfg RenderConfig, g Geometry) ([]*decoration, error) {
	l := f.Layout
	m := cfg.Measurer
	var decs []*decoration
	for _, u := range l.UpdateMenus {
		decs = append(decs, u.decoration(m))
	}
	if d := l.Legend.decoration(f, m); d != nil {
		decs = append(decs, d)
	}
	for _, ax := range l.Axes {
		if d := axisTitle(ax, l.Font, m); d != nil {
			decs = append(decs, d)
		}
	}
	for _, a := range l.Annotations {
		d, err := a.decoration(l, m, g)
		if err != nil {
			return nil, err
		}
		decs = append(decs, d)
	}
	return decs, nil
}

// textLabel measures text and returns a label at the origin.
func textLabel(m TextMeasurer, text string, font Font) Label {
	w, h := m.Measure(text, font.Size)
	return Label{Text: text, Box: Box{Max: Point{w, h}}, Size: font.Size, Color: font.Color}
}

// ----------------------------------------------------------------------------
// Axis titles

// axisTitle places the title of ax beside its tick labels. X titles are
// centred on the domain below (side bottom) or above the axis line, y
// titles are rotated and placed left or right of the widest tick label.
func axisTitle(ax *Axis, font Font, m TextMeasurer) *decoration {
	if ax.Title.Text == "" || ax.Empty() {
		return nil
	}
	if ax.Title.FontSize > 0 {
		font.Size = ax.Title.FontSize
	}
	tickSize := font.Size
	if ax.TickFontSize > 0 {
		tickSize = ax.TickFontSize
	}
	ticklen := 0.0
	if ax.Ticks == "outside" {
		ticklen = ax.TickLen
	}

	lbl := textLabel(m, ax.Title.Text, font)
	w, h := lbl.Box.Width(), lbl.Box.Height()
	d := &decoration{id: ax.ID.Name() + ".title", kind: "title", push: true}
	center := (ax.Domain.Min + ax.Domain.Max) / 2

	if ax.Horizontal() {
		extra := 0.0
		if ax.ShowTickLabels {
			_, extra = m.Measure("0", tickSize)
		}
		off := ax.Title.Standoff + ticklen + extra
		d.place = Placement{X: center, Y: ax.State.Position, XRef: "paper", YRef: "paper",
			XAnchor: "center", YAnchor: "top", YOffset: off}
		if ax.Side == "top" {
			d.place.YAnchor, d.place.YOffset = "bottom", -off
		}
		d.w, d.h = w, h
		d.labels = []Label{lbl}
		return d
	}

	extra := 0.0
	if ax.ShowTickLabels {
		for _, t := range ax.State.TickText {
			if tw, _ := m.Measure(t, tickSize); tw > extra {
				extra = tw
			}
		}
	}
	off := ax.Title.Standoff + ticklen + extra
	d.place = Placement{X: ax.State.Position, Y: center, XRef: "paper", YRef: "paper",
		XAnchor: "right", YAnchor: "middle", XOffset: -off + ax.State.Shift}
	if ax.Side == "right" {
		d.place.XAnchor, d.place.XOffset = "left", off+ax.State.Shift
	}
	d.w, d.h = h, w
	lbl.Box = Box{Max: Point{h, w}}
	lbl.Rotation = 90
	d.labels = []Label{lbl}
	return d
}

// ----------------------------------------------------------------------------
// Annotations

// Annotation is a free text placed in paper, container or data
// coordinates.
type Annotation struct {
	Text      string
	Font      Font
	TextAngle float64 // degrees, clockwise
	Place     Placement

	// XAxis and YAxis are set when the position is given in data
	// coordinates of an axis.
	XAxis, YAxis string

	index int
}

func newAnnotation(i int, m data.Map, font Font) (*Annotation, error) {
	attr := fmt.Sprintf("annotations[%d]", i)
	a := &Annotation{
		Text:      data.String(m, "text", ""),
		Font:      fontFrom(data.Sub(m, "font"), font),
		TextAngle: data.Float(m, "textangle", 0),
		index:     i,
	}
	pm := data.Map{}
	for k, v := range m {
		pm[k] = v
	}
	for _, ref := range []struct {
		key  string
		axis *string
	}{{"xref", &a.XAxis}, {"yref", &a.YAxis}} {
		r := data.String(m, ref.key, "paper")
		if r == "paper" || r == "container" {
			continue
		}
		id, err := ParseAxisID(r)
		if err != nil || (ref.key == "xref") != (id.Letter == 'x') {
			return nil, configError(attr+"."+ref.key, r, ErrUnknownReference)
		}
		*ref.axis = id.Ref()
		pm[ref.key] = "paper"
	}
	pm["xoffset"] = data.Float(m, "xshift", 0)
	pm["yoffset"] = -data.Float(m, "yshift", 0)

	p, err := parsePlacement(pm, attr, Placement{
		X: 0.5, Y: 0.5, XRef: "paper", YRef: "paper", XAnchor: "auto", YAnchor: "auto",
	})
	if err != nil {
		return nil, err
	}
	if a.XAxis != "" && data.String(m, "xanchor", "auto") == "auto" {
		p.XAnchor = "center"
	}
	if a.YAxis != "" && data.String(m, "yanchor", "auto") == "auto" {
		p.YAnchor = "middle"
	}
	a.Place = p
	return a, nil
}

// decoration places a. Positions in data coordinates are converted into
// paper fractions under the margins of g; such annotations follow the
// data and never push the margins.
func (a *Annotation) decoration(l *Layout, m TextMeasurer, g Geometry) (*decoration, error) {
	lbl := textLabel(m, a.Text, a.Font)
	w, h := lbl.Box.Width(), lbl.Box.Height()
	rad := a.TextAngle * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	bw, bh := w*cos+h*sin, w*sin+h*cos

	d := &decoration{
		id:    fmt.Sprintf("annotations[%d]", a.index),
		kind:  "annotation",
		place: a.Place,
		w:     bw,
		h:     bh,
		push:  a.XAxis == "" && a.YAxis == "",
	}
	if a.XAxis != "" {
		ax, err := l.AxisRef(a.XAxis)
		if err != nil {
			return nil, err
		}
		if !ax.Empty() {
			px, err := MapX([]float64{a.Place.X}, ax, g, false)
			if err != nil {
				return nil, err
			}
			d.place.X = (px[0] - g.Margin.L) / g.PlotWidth()
		}
	}
	if a.YAxis != "" {
		ax, err := l.AxisRef(a.YAxis)
		if err != nil {
			return nil, err
		}
		if !ax.Empty() {
			py, err := MapY([]float64{a.Place.Y}, ax, g, false)
			if err != nil {
				return nil, err
			}
			d.place.Y = (g.Height - g.Margin.B - py[0]) / g.PlotHeight()
		}
	}

	lbl.Box = Box{Point{(bw - w) / 2, (bh - h) / 2}, Point{(bw + w) / 2, (bh + h) / 2}}
	lbl.Rotation = -a.TextAngle
	d.labels = []Label{lbl}
	return d, nil
}
