package plotlayout

import (
	"math"

	"github.com/vdobler/plotlayout/data"
)

// Legend layout constants in pixels.
const (
	legendSpacing = 4 // between rows and between icon and text
)

// Legend lists the scatter traces and toggles their visibility on click.
type Legend struct {
	Visible     bool
	Orientation string // "v" or "h"
	Place       Placement

	Font       Font
	Title      string
	TitleFont  Font
	BGColor    string
	Border     string
	ItemWidth  float64
	ItemClick  string
	ItemDouble string
}

func newLegend(m data.Map, font Font) (*Legend, error) {
	const attr = "legend"
	lg := &Legend{
		Visible:     data.Bool(m, "visible", true),
		Orientation: data.String(m, "orientation", "v"),
		Font:        fontFrom(data.Sub(m, "font"), font),
		Title:       data.String(data.Sub(m, "title"), "text", ""),
		BGColor:     data.String(m, "bgcolor", "white"),
		Border:      data.String(m, "bordercolor", "#444"),
		ItemWidth:   data.Float(m, "itemwidth", 30),
		ItemClick:   data.String(m, "itemclick", "toggle"),
		ItemDouble:  data.String(m, "itemdoubleclick", "toggleothers"),
	}
	lg.TitleFont = fontFrom(data.Sub(data.Sub(m, "title"), "font"), lg.Font)
	if lg.Orientation != "v" && lg.Orientation != "h" {
		return nil, configError(attr+".orientation", lg.Orientation, ErrUnknownAction)
	}
	for _, a := range []struct{ name, v string }{
		{"itemclick", lg.ItemClick}, {"itemdoubleclick", lg.ItemDouble},
	} {
		if _, err := parseLegendAction(a.v); err != nil {
			return nil, configError(attr+"."+a.name, a.v, err)
		}
	}

	def := Placement{XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "auto"}
	switch data.String(m, "xref", "paper") {
	case "paper":
		def.X = 1.02
	case "container":
		def.X = 1
	}
	if lg.Orientation == "h" {
		def.X = 0
	}
	def.Y = 1
	if lg.Orientation == "h" && data.String(m, "yref", "paper") == "paper" {
		def.Y = -0.1
	}
	p, err := parsePlacement(m, attr, def)
	if err != nil {
		return nil, err
	}
	lg.Place = p
	return lg, nil
}

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Trace  int
	Name   string
	Color  string
	Hidden bool // the trace is toggled off

	Markers, Lines bool
	Symbol         string
	Radius         float64
	LineWidth      float64

	Icon  Box
	Label Label
}

// Entries returns the legend entries of f: the visible scatter traces
// which are shown in the legend.
func (lg *Legend) Entries(f *Figure) []LegendEntry {
	var entries []LegendEntry
	for _, t := range f.Traces {
		s, ok := t.(*Scatter)
		if !ok || !s.Visible || !s.ShowLegend {
			continue
		}
		e := LegendEntry{
			Trace:     s.Index,
			Name:      s.Name,
			Color:     s.Color,
			Hidden:    !s.UIVisible,
			Symbol:    s.Marker.Symbol,
			LineWidth: s.Line.Width,
		}
		e.Markers, e.Lines = s.Modes()
		if s.Marker.Color != "" {
			e.Color = s.Marker.Color
		} else if s.Line.Color != "" {
			e.Color = s.Line.Color
		}
		e.Radius = 4
		if len(s.Marker.Sizes) == 0 {
			e.Radius = s.Radius(0)
		}
		entries = append(entries, e)
	}
	return entries
}

// decoration lays out the legend. Vertical legends stack the entries,
// horizontal ones put them into one row. Legends with fewer than two
// entries are not drawn.
func (lg *Legend) decoration(f *Figure, m TextMeasurer) *decoration {
	if lg == nil || !lg.Visible {
		return nil
	}
	entries := lg.Entries(f)
	if len(entries) < 2 {
		return nil
	}
	d := &decoration{
		id:         "legend",
		kind:       "legend",
		place:      lg.Place,
		push:       true,
		background: lg.BGColor,
		border:     lg.Border,
	}

	var x, y float64
	if lg.Title != "" {
		t := textLabel(m, lg.Title, lg.TitleFont)
		d.labels = append(d.labels, t)
		d.w = t.Box.Width()
		y = t.Box.Height() + legendSpacing
		if lg.Orientation == "h" {
			x, y = t.Box.Width()+2*legendSpacing, 0
		}
	}
	rowHeight := 0.0
	for i, e := range entries {
		lbl := textLabel(m, e.Name, lg.Font)
		h := math.Max(lbl.Box.Height(), 2*e.Radius)
		e.Icon = Box{Point{x, y}, Point{x + lg.ItemWidth, y + h}}
		lx := x + lg.ItemWidth + legendSpacing
		ly := y + (h-lbl.Box.Height())/2
		lbl.Box = lbl.Box.Translate(Point{lx, ly})
		e.Label = lbl
		entries[i] = e

		right := lbl.Box.Max.X
		d.w = math.Max(d.w, right)
		rowHeight = math.Max(rowHeight, h)
		if lg.Orientation == "h" {
			x = right + 2*legendSpacing
			d.h = math.Max(d.h, y+h)
		} else {
			y += h + legendSpacing
			d.h = y - legendSpacing
		}
	}
	if lg.Orientation == "h" {
		d.h = math.Max(d.h, rowHeight)
	}
	d.entries = entries
	return d
}

// ----------------------------------------------------------------------------
// Click actions

// LegendAction is what a click on a legend entry does.
type LegendAction int

const (
	// ActionToggle flips the visibility of the clicked trace.
	ActionToggle LegendAction = iota
	// ActionToggleOthers shows only the clicked trace.
	ActionToggleOthers
	// ActionNone ignores the click.
	ActionNone
)

func parseLegendAction(s string) (LegendAction, error) {
	switch s {
	case "toggle":
		return ActionToggle, nil
	case "toggleothers":
		return ActionToggleOthers, nil
	case "none", "false":
		return ActionNone, nil
	}
	return ActionNone, ErrUnknownAction
}

// Action returns the action for a click with the given count: one for a
// single click, two for a double click.
func (lg *Legend) Action(clicks int) (LegendAction, error) {
	s := lg.ItemClick
	attr := "legend.itemclick"
	if clicks == 2 {
		s, attr = lg.ItemDouble, "legend.itemdoubleclick"
	} else if clicks != 1 {
		return ActionNone, configError("clicks", clicks, ErrUnknownAction)
	}
	a, err := parseLegendAction(s)
	if err != nil {
		return ActionNone, configError(attr, s, err)
	}
	return a, nil
}

// ApplyLegendAction changes the transient visibility of the traces after a
// click on the entry of trace index. All traces of the clicked trace's
// legend group act together.
func ApplyLegendAction(traces []Trace, index int, action LegendAction) {
	if index < 0 || index >= len(traces) {
		return
	}
	clicked := traces[index].Base()
	group := []*TraceBase{clicked}
	if clicked.LegendGroup != "" {
		group = group[:0]
		for _, t := range traces {
			if b := t.Base(); b.LegendGroup == clicked.LegendGroup {
				group = append(group, b)
			}
		}
	}

	switch action {
	case ActionToggle:
		for _, b := range group {
			b.UIVisible = !b.UIVisible
		}
	case ActionToggleOthers:
		for _, t := range traces {
			t.Base().UIVisible = !clicked.Visible
		}
		for _, b := range group {
			b.UIVisible = b.Visible
		}
	}
}
