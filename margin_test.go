package plotlayout

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

var testBase = Margin{L: 80, R: 80, T: 100, B: 80}

var fallbackMarginTests = []struct {
	push PushMargin
	want Margin
}{
	{PushMargin{L: 0.1, R: 1.2, T: 0.1, B: 0.9}, Margin{L: 80, R: 145, T: 100, B: 80}},
	{PushMargin{L: -0.1, R: 0.5, T: 0.1, B: 0.9}, Margin{L: 102 / 1.1, R: 80, T: 100, B: 80}},
	{PushMargin{L: -0.01, R: 0.5, T: 0.1, B: 0.9}, testBase}, // fits without growth
	{PushMargin{L: 0.1, R: 0.5, T: -0.2, B: 0.9}, Margin{L: 80, R: 80, T: 134 / 1.2, B: 80}},
	{PushMargin{L: 0.1, R: 0.5, T: 0.1, B: 1.3}, Margin{L: 80, R: 80, T: 100, B: 180 / 1.3}},
}

func TestResolveMarginsFallback(t *testing.T) {
	cfg := DefaultRenderConfig()
	for i, tc := range fallbackMarginTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			pushes := map[string]PushMargin{"d": tc.push}
			got, err := ResolveMargins(pushes, testBase, testBase, 800, 600, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if marginDelta(got, tc.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// An anchored decoration ends up exactly PushPadding pixels from the chart
// edge once the grown margin is applied.
var anchoredMarginTests = []struct {
	place Placement
	w, h  float64
	edge  func(b Box) float64 // distance of the overflowing edge to the chart edge
}{
	{
		Placement{X: 1.02, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "top"},
		100, 50, func(b Box) float64 { return 800 - b.Max.X },
	},
	{
		Placement{X: -0.1, Y: 0.5, XRef: "paper", YRef: "paper", XAnchor: "right", YAnchor: "middle"},
		60, 20, func(b Box) float64 { return b.Min.X },
	},
	{
		Placement{X: 0.5, Y: 1.2, XRef: "paper", YRef: "paper", XAnchor: "center", YAnchor: "bottom"},
		60, 40, func(b Box) float64 { return b.Min.Y },
	},
	{
		Placement{X: 0.5, Y: -0.2, XRef: "paper", YRef: "paper", XAnchor: "center", YAnchor: "top"},
		60, 40, func(b Box) float64 { return 600 - b.Max.Y },
	},
	{
		Placement{X: 1, Y: 0.5, XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "middle", XOffset: 20},
		50, 20, func(b Box) float64 { return 800 - b.Max.X },
	},
}

func TestResolveMarginsAnchored(t *testing.T) {
	cfg := DefaultRenderConfig()
	for i, tc := range anchoredMarginTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			push := tc.place.Push(tc.w, tc.h, 800, 600, testBase)
			if !push.Overflows() {
				t.Fatalf("%+v does not overflow", push)
			}
			m, err := ResolveMargins(map[string]PushMargin{"d": push}, testBase, testBase, 800, 600, cfg)
			if err != nil {
				t.Fatal(err)
			}
			box := tc.place.Locate(tc.w, tc.h, Geometry{Width: 800, Height: 600, Margin: m})
			if d := tc.edge(box); math.Abs(d-cfg.PushPadding) > 1e-9 {
				t.Errorf("margin %v: decoration %v is %g from the edge", m, box, d)
			}
		})
	}
}

func TestResolveMarginsRightFormula(t *testing.T) {
	p := Placement{X: 1.02, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "top"}
	push := p.Push(100, 50, 800, 600, testBase)
	m, err := ResolveMargins(map[string]PushMargin{"legend": push}, testBase, testBase, 800, 600, DefaultRenderConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := (0.02*720 + 12 + 100) / 1.02
	if !equal64(m.R, want) {
		t.Errorf("right margin %g, want %g", m.R, want)
	}
}

func TestResolveMarginsMonotonic(t *testing.T) {
	cfg := DefaultRenderConfig()
	current := Margin{L: 150, R: 200, T: 150, B: 150}
	pushes := map[string]PushMargin{
		"a": {L: -0.01, R: 1.01, T: -0.01, B: 1.01},
		"b": {L: 0.2, R: 0.8, T: 0.2, B: 0.8},
	}
	got, err := ResolveMargins(pushes, testBase, current, 800, 600, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != current {
		t.Errorf("margins shrank from %v to %v", current, got)
	}

	// Growth with more overflow never yields smaller margins.
	prev := testBase
	for _, r := range []float64{1.05, 1.1, 1.3, 1.6} {
		got, err := ResolveMargins(map[string]PushMargin{"d": {R: r}}, testBase, testBase, 800, 600, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if got.R < prev.R {
			t.Errorf("R=%g: right margin %g smaller than %g", r, got.R, prev.R)
		}
		prev = got
	}
}

func TestResolveMarginsNoPlotArea(t *testing.T) {
	pushes := map[string]PushMargin{"d": {R: 2, HasX: true, X: 1.5, XR: 1000}}
	_, err := ResolveMargins(pushes, testBase, testBase, 800, 600, DefaultRenderConfig())
	if !errors.Is(err, ErrMarginDivergence) {
		t.Errorf("got error %v", err)
	}
}

func TestResolveMarginsSmallChart(t *testing.T) {
	_, err := ResolveMargins(nil, testBase, testBase, 150, 300, DefaultRenderConfig())
	if !errors.Is(err, ErrZeroSpan) || errors.Is(err, ErrMarginDivergence) {
		t.Errorf("got error %v", err)
	}
}

func TestJointMargins(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.JointMargins = true
	legend := Placement{X: 1.02, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "top"}
	menu := Placement{X: -0.05, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "right", YAnchor: "top"}
	pushes := map[string]PushMargin{
		"legend": legend.Push(100, 50, 800, 600, testBase),
		"menu":   menu.Push(60, 20, 800, 600, testBase),
	}
	m, err := ResolveMargins(pushes, testBase, Margin{}, 800, 600, cfg)
	if err != nil {
		t.Fatal(err)
	}
	g := Geometry{Width: 800, Height: 600, Margin: m}
	if d := 800 - legend.Locate(100, 50, g).Max.X; !equal64(d, 12) {
		t.Errorf("legend %g from the right edge, margin %v", d, m)
	}
	if d := menu.Locate(60, 20, g).Min.X; !equal64(d, 12) {
		t.Errorf("menu %g from the left edge, margin %v", d, m)
	}
}
