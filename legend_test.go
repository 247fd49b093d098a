package plotlayout

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vdobler/plotlayout/data"
	"github.com/vdobler/plotlayout/textmeasure"
)

func testConfig() RenderConfig {
	cfg := DefaultRenderConfig()
	cfg.Measurer = textmeasure.Approximate{}
	return cfg
}

// scatterSpec returns a scatter trace with the given x values and their
// indices as y values.
func scatterSpec(name string, x ...float64) data.Map {
	y := make([]float64, len(x))
	for i := range y {
		y[i] = float64(i)
	}
	return xySpec(name, x, y)
}

func xySpec(name string, x, y []float64) data.Map {
	xs := make([]interface{}, len(x))
	ys := make([]interface{}, len(y))
	for i := range x {
		xs[i] = x[i]
	}
	for i := range y {
		ys[i] = y[i]
	}
	return data.Map{"type": "scatter", "name": name, "x": xs, "y": ys}
}

func figureSpec(layout data.Map, traces ...data.Map) data.Map {
	list := make([]interface{}, len(traces))
	for i, t := range traces {
		list[i] = t
	}
	if layout == nil {
		layout = data.Map{}
	}
	return data.Map{"data": list, "layout": layout}
}

func TestNewLegendDefaults(t *testing.T) {
	for _, tc := range []struct {
		m                data.Map
		x, y             float64
		xanchor, yanchor string
	}{
		{data.Map{}, 1.02, 1, "left", "top"},
		{data.Map{"orientation": "h"}, 0, -0.1, "left", "bottom"},
		{data.Map{"y": 0.5}, 1.02, 0.5, "left", "middle"},
		{data.Map{"xref": "container"}, 1, 1, "left", "top"},
	} {
		lg, err := newLegend(data.MustUpdateDict(data.Sub(layoutDefaults(), "legend"), tc.m), Font{Size: 12})
		if err != nil {
			t.Fatalf("%v: %v", tc.m, err)
		}
		p := lg.Place
		if p.X != tc.x || p.Y != tc.y || p.XAnchor != tc.xanchor || p.YAnchor != tc.yanchor {
			t.Errorf("%v: got %+v", tc.m, p)
		}
	}

	for _, m := range []data.Map{{"orientation": "d"}, {"xref": "x"}, {"itemclick": "explode"}} {
		_, err := newLegend(m, Font{})
		var ce *ConfigurationError
		if !errors.As(err, &ce) {
			t.Errorf("%v: got error %v", m, err)
		}
	}
}

func TestLegendEntries(t *testing.T) {
	hidden := scatterSpec("hidden", 1, 2)
	hidden["visible"] = false
	nolegend := scatterSpec("nolegend", 1, 2)
	nolegend["showlegend"] = false
	only := scatterSpec("only", 1, 2)
	only["visible"] = "legendonly"
	hist := data.Map{"type": "histogram", "x": []interface{}{1.0, 2.0, 2.0}}

	f, err := New(figureSpec(nil, scatterSpec("a", 1, 2), hidden, nolegend, only, hist), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	entries := f.Layout.Legend.Entries(f)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if want := []string{"a", "only"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("entries %q, want %q", names, want)
	}
	if entries[0].Hidden || !entries[1].Hidden {
		t.Errorf("hidden flags %v %v", entries[0].Hidden, entries[1].Hidden)
	}
	if !entries[0].Markers || !entries[0].Lines || entries[0].Radius != 3 {
		t.Errorf("entry %+v", entries[0])
	}
}

func TestLegendNeedsTwoEntries(t *testing.T) {
	cfg := testConfig()
	f, err := New(figureSpec(nil, scatterSpec("a", 1, 2)), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := f.Layout.Legend.decoration(f, cfg.Measurer); d != nil {
		t.Errorf("legend with one entry: %+v", d)
	}

	f, err = New(figureSpec(nil, scatterSpec("a", 1, 2), scatterSpec("bb", 1, 2)), cfg)
	if err != nil {
		t.Fatal(err)
	}
	d := f.Layout.Legend.decoration(f, cfg.Measurer)
	if d == nil {
		t.Fatal("no legend")
	}
	// Rows of 14.4 pixels: the line height of size 12 text.
	if !equal64(d.w, 30+4+2*0.6*12) || !equal64(d.h, 2*14.4+4) {
		t.Errorf("legend size %gx%g", d.w, d.h)
	}
	if e := d.entries[1]; !equal64(e.Icon.Min.Y, 18.4) || !equal64(e.Label.Box.Min.X, 34) {
		t.Errorf("second entry %+v", e)
	}
}

func legendTraces(groups ...string) []Trace {
	traces := make([]Trace, len(groups))
	for i, g := range groups {
		traces[i] = &Scatter{TraceBase: TraceBase{Index: i, Visible: true, UIVisible: true, LegendGroup: g}}
	}
	return traces
}

func shown(traces []Trace) []bool {
	out := make([]bool, len(traces))
	for i, t := range traces {
		out[i] = t.Base().UIVisible
	}
	return out
}

func TestApplyLegendAction(t *testing.T) {
	traces := legendTraces("", "", "")
	ApplyLegendAction(traces, 1, ActionToggle)
	if got, want := shown(traces), []bool{true, false, true}; !reflect.DeepEqual(got, want) {
		t.Errorf("toggle: %v, want %v", got, want)
	}
	ApplyLegendAction(traces, 1, ActionToggle)
	if got, want := shown(traces), []bool{true, true, true}; !reflect.DeepEqual(got, want) {
		t.Errorf("toggle twice: %v, want %v", got, want)
	}

	ApplyLegendAction(traces, 2, ActionToggleOthers)
	if got, want := shown(traces), []bool{false, false, true}; !reflect.DeepEqual(got, want) {
		t.Errorf("toggleothers: %v, want %v", got, want)
	}

	ApplyLegendAction(traces, 0, ActionNone)
	if got, want := shown(traces), []bool{false, false, true}; !reflect.DeepEqual(got, want) {
		t.Errorf("none: %v, want %v", got, want)
	}

	grouped := legendTraces("g", "", "g", "")
	ApplyLegendAction(grouped, 0, ActionToggle)
	if got, want := shown(grouped), []bool{false, true, false, true}; !reflect.DeepEqual(got, want) {
		t.Errorf("group toggle: %v, want %v", got, want)
	}
	grouped = legendTraces("g", "", "g", "")
	ApplyLegendAction(grouped, 2, ActionToggleOthers)
	if got, want := shown(grouped), []bool{true, false, true, false}; !reflect.DeepEqual(got, want) {
		t.Errorf("group toggleothers: %v, want %v", got, want)
	}
}

func TestLegendAction(t *testing.T) {
	lg := &Legend{ItemClick: "toggle", ItemDouble: "toggleothers"}
	if a, err := lg.Action(1); err != nil || a != ActionToggle {
		t.Errorf("single click: %v, %v", a, err)
	}
	if a, err := lg.Action(2); err != nil || a != ActionToggleOthers {
		t.Errorf("double click: %v, %v", a, err)
	}
	if _, err := lg.Action(3); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("triple click: %v", err)
	}
	lg.ItemClick = "explode"
	var ce *ConfigurationError
	if _, err := lg.Action(1); !errors.As(err, &ce) || ce.Attr != "legend.itemclick" {
		t.Errorf("unknown action: %v", err)
	}
}
