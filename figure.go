package plotlayout

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/vdobler/plotlayout/data"
)

// Margin is the space in pixels between the chart edges and the plot area.
type Margin struct {
	L, R, T, B float64
}

func (m Margin) String() string {
	return fmt.Sprintf("l=%.1f r=%.1f t=%.1f b=%.1f", m.L, m.R, m.T, m.B)
}

// Fits reports whether m leaves a plot area in a chart of the given size.
func (m Margin) Fits(width, height float64) bool {
	return m.L+m.R < width && m.T+m.B < height
}

// Layout is the non-trace part of a figure.
type Layout struct {
	Axes []*Axis // sorted: x axes before y axes, by index

	Margin     Margin // base margin from the specification
	AutoExpand bool   // decorations may grow the margins

	Font        Font
	PaperColor  string
	PlotColor   string
	Colorway    []string
	Legend      *Legend
	Annotations []*Annotation
	UpdateMenus []*UpdateMenu

	axes  map[AxisID]*Axis
	ticks map[AxisID]*Ticks
}

// Font describes the font of a text element.
type Font struct {
	Family string
	Size   float64
	Color  string
}

func fontFrom(m data.Map, def Font) Font {
	return Font{
		Family: data.String(m, "family", def.Family),
		Size:   data.Float(m, "size", def.Size),
		Color:  data.String(m, "color", def.Color),
	}
}

// Axis returns the axis with the given id or nil.
func (l *Layout) Axis(id AxisID) *Axis { return l.axes[id] }

// AxisRef resolves a reference like "x2" or "yaxis" to an axis of l.
func (l *Layout) AxisRef(ref string) (*Axis, error) {
	id, err := ParseAxisID(ref)
	if err != nil {
		return nil, err
	}
	ax := l.axes[id]
	if ax == nil {
		return nil, fmt.Errorf("%w: no axis %s", ErrUnknownReference, id)
	}
	return ax, nil
}

// Ticks returns the tick generator bound to the axis id.
func (l *Layout) Ticks(id AxisID) *Ticks { return l.ticks[id] }

// Figure is the typed form of a figure specification.
type Figure struct {
	Traces []Trace
	Layout *Layout

	// Spec is the specification with all defaults merged in, binned
	// histograms and the resolved axis types written back. Building a
	// new Figure from Spec yields the same figure.
	Spec data.Map
}

// Subplots returns the distinct axis pairs used by the traces.
func (f *Figure) Subplots() []Subplot {
	seen := make(map[[2]AxisID]bool)
	var subs []Subplot
	for _, t := range f.Traces {
		b := t.Base()
		key := [2]AxisID{b.XAxis, b.YAxis}
		if seen[key] {
			continue
		}
		seen[key] = true
		subs = append(subs, Subplot{X: f.Layout.Axis(b.XAxis), Y: f.Layout.Axis(b.YAxis)})
	}
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].X.ID != subs[j].X.ID {
			return subs[i].X.ID.less(subs[j].X.ID)
		}
		return subs[i].Y.ID.less(subs[j].Y.ID)
	})
	return subs
}

// TracesOn returns the traces referencing ax in figure order.
func (f *Figure) TracesOn(ax *Axis) []Trace {
	var out []Trace
	for _, t := range f.Traces {
		b := t.Base()
		if b.XAxis == ax.ID || b.YAxis == ax.ID {
			out = append(out, t)
		}
	}
	return out
}

// New builds a figure from a specification of the form
//
//	{"data": [trace, ...], "layout": {...}}
//
// Defaults are merged in, axis types inferred, coordinates normalized and
// histograms binned. The specification itself is not modified.
func New(spec data.Map, cfg RenderConfig) (*Figure, error) {
	log := cfg.logger()
	rng := rand.New(rand.NewSource(cfg.Seed))

	layoutSpec, err := data.UpdateDict(layoutDefaults(), data.Sub(spec, "layout"))
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	f := &Figure{}
	var traceSpecs []interface{}
	for i, tm := range data.Maps(spec, "data") {
		merged, err := data.UpdateDict(traceDefaults(data.String(tm, "type", "scatter")), tm)
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}
		tr, err := newTrace(i, merged)
		if err != nil {
			return nil, err
		}
		f.Traces = append(f.Traces, tr)
		traceSpecs = append(traceSpecs, merged)
	}

	l, err := newLayout(layoutSpec, f.Traces)
	if err != nil {
		return nil, err
	}
	f.Layout = l

	for _, ax := range l.Axes {
		if err := f.resolveType(ax, rng); err != nil {
			return nil, err
		}
		layoutSpec[ax.ID.Name()].(data.Map)["_type"] = ax.ResolvedType.String()
	}
	for _, ax := range l.Axes {
		if err := f.normalize(ax); err != nil {
			return nil, err
		}
		if ax.ResolvedType.Categorical() {
			layoutSpec[ax.ID.Name()].(data.Map)["categoryarray"] = toList(ax.Categories)
		}
	}

	for i, t := range f.Traces {
		b := t.Base()
		b.Color = l.Colorway[i%len(l.Colorway)]
		h, ok := t.(*Histogram)
		if !ok {
			continue
		}
		if !h.Binned {
			if l.Axis(h.XAxis).ResolvedType.Categorical() {
				h.binCategories(len(l.Axis(h.XAxis).Categories))
			} else {
				h.Bin()
			}
		}
		ts := traceSpecs[i].(data.Map)
		ts["x"], ts["y"], ts["binned"] = floatList(h.X), floatList(h.Y), true
	}

	f.Spec = data.Map{"data": traceSpecs, "layout": layoutSpec}
	log.Debug("figure built", "traces", len(f.Traces), "axes", len(l.Axes))
	return f, nil
}

func newLayout(m data.Map, traces []Trace) (*Layout, error) {
	margin := data.Sub(m, "margin")
	l := &Layout{
		Margin: Margin{
			L: data.Float(margin, "l", 80),
			R: data.Float(margin, "r", 80),
			T: data.Float(margin, "t", 100),
			B: data.Float(margin, "b", 80),
		},
		AutoExpand: data.Bool(margin, "autoexpand", true),
		Font:       fontFrom(data.Sub(m, "font"), Font{Size: 12, Color: "#444"}),
		PaperColor: data.String(m, "paper_bgcolor", "white"),
		PlotColor:  data.String(m, "plot_bgcolor", "#E5ECF6"),
		axes:       make(map[AxisID]*Axis),
		ticks:      make(map[AxisID]*Ticks),
	}
	if cw, ok := data.List(m, "colorway"); ok && len(cw) > 0 {
		for _, c := range cw {
			l.Colorway = append(l.Colorway, fmt.Sprint(c))
		}
	} else {
		l.Colorway = Colorway
	}

	ids := map[AxisID]bool{{'x', 1}: true, {'y', 1}: true}
	for _, t := range traces {
		ids[t.Base().XAxis] = true
		ids[t.Base().YAxis] = true
	}
	for k := range m {
		if !strings.HasPrefix(k, "xaxis") && !strings.HasPrefix(k, "yaxis") {
			continue
		}
		id, err := ParseAxisID(k)
		if err != nil {
			return nil, configError(k, m[k], err)
		}
		ids[id] = true
	}
	for id := range ids {
		am, err := data.UpdateDict(axisDefaults(id.Letter), data.Sub(m, id.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		m[id.Name()] = am
		ax, err := newAxis(id, am)
		if err != nil {
			return nil, err
		}
		l.axes[id] = ax
		l.Axes = append(l.Axes, ax)
	}
	sort.Slice(l.Axes, func(i, j int) bool { return l.Axes[i].ID.less(l.Axes[j].ID) })

	var err error
	if l.Legend, err = newLegend(data.Sub(m, "legend"), l.Font); err != nil {
		return nil, err
	}
	for i, am := range data.Maps(m, "annotations") {
		a, err := newAnnotation(i, am, l.Font)
		if err != nil {
			return nil, err
		}
		l.Annotations = append(l.Annotations, a)
	}
	for i, um := range data.Maps(m, "updatemenus") {
		u, err := newUpdateMenu(i, um, l.Font)
		if err != nil {
			return nil, err
		}
		l.UpdateMenus = append(l.UpdateMenus, u)
	}
	return l, nil
}

// resolveType sets the resolved type of ax: the declared type, a type
// recorded by an earlier build, or the type detected from the first trace
// drawn on the axis.
func (f *Figure) resolveType(ax *Axis, rng *rand.Rand) error {
	if ax.Type != AutoType {
		ax.ResolvedType = ax.Type
		return nil
	}
	if ax.ResolvedType != AutoType {
		return nil
	}
	ax.ResolvedType = Linear
	for _, t := range f.TracesOn(ax) {
		raw := t.Base().raw(ax.ID.Letter)
		if raw == nil {
			continue
		}
		ax.ResolvedType = DetectAxisType(raw, rng)
		break
	}
	return nil
}

// normalize converts the raw coordinates of all traces on ax into numbers.
func (f *Figure) normalize(ax *Axis) error {
	letter := ax.ID.Letter
	traces := f.TracesOn(ax)

	if ax.ResolvedType.Categorical() {
		var all []interface{}
		var counts []int
		for _, t := range traces {
			vals := t.Base().raw(letter)
			if h, ok := t.(*Histogram); ok && h.Binned {
				vals = nil
			}
			if ax.ResolvedType == MultiCategory {
				vals = multiCategoryNames(vals)
			}
			all = append(all, vals...)
			counts = append(counts, len(vals))
		}
		cats, idx, err := data.Categories(ax.Categories, all, ax.CategoryOrder)
		if err != nil {
			return configError(ax.ID.Name()+".categoryorder", ax.CategoryOrder, err)
		}
		ax.Categories = cats
		for i, t := range traces {
			b := t.Base()
			if h, ok := t.(*Histogram); ok && h.Binned {
				*b.coords(letter) = data.Floats(b.raw(letter))
				continue
			}
			*b.coords(letter) = idx[:counts[i]:counts[i]]
			idx = idx[counts[i]:]
		}
		return nil
	}

	for _, t := range traces {
		b := t.Base()
		raw := b.raw(letter)
		switch ax.ResolvedType {
		case Date:
			*b.coords(letter) = data.Timestamps(raw)
		default:
			*b.coords(letter) = data.Floats(raw)
		}
	}
	return nil
}

// multiCategoryNames joins the levels of a multicategory coordinate
// [[level0...], [level1...]] into one name per point.
func multiCategoryNames(levels []interface{}) []interface{} {
	var rows [][]interface{}
	n := -1
	for _, lv := range levels {
		s, ok := data.AsSlice(lv)
		if !ok {
			s = []interface{}{lv}
		}
		rows = append(rows, s)
		if n < 0 || len(s) < n {
			n = len(s)
		}
	}
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		parts := make([]string, len(rows))
		for j, r := range rows {
			parts[j] = fmt.Sprint(r[i])
		}
		out = append(out, strings.Join(parts, " / "))
	}
	return out
}

func floatList(xs []float64) []interface{} {
	out := make([]interface{}, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
