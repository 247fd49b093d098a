package plotlayout

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vdobler/plotlayout/data"
	"github.com/vdobler/plotlayout/textmeasure"
)

var testGeometry = Geometry{Width: 800, Height: 600, Margin: testBase}

var locateTests = []struct {
	place Placement
	want  Box
}{
	{
		Placement{X: 0, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "top"},
		Box{Point{80, 100}, Point{120, 120}},
	},
	{
		Placement{X: 1, Y: 0, XRef: "paper", YRef: "paper", XAnchor: "right", YAnchor: "bottom"},
		Box{Point{680, 500}, Point{720, 520}},
	},
	{
		Placement{X: 0.5, Y: 0.5, XRef: "paper", YRef: "paper", XAnchor: "center", YAnchor: "middle"},
		Box{Point{380, 300}, Point{420, 320}},
	},
	{
		Placement{X: 0.5, Y: 1, XRef: "container", YRef: "container", XAnchor: "center", YAnchor: "top"},
		Box{Point{380, 0}, Point{420, 20}},
	},
	{
		Placement{X: 0, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "top", XOffset: 5, YOffset: -10},
		Box{Point{85, 90}, Point{125, 110}},
	},
}

func TestPlacementLocate(t *testing.T) {
	for i, tc := range locateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.place.Locate(40, 20, testGeometry); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPlacementPush(t *testing.T) {
	p := Placement{X: 1, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "left", YAnchor: "bottom", XOffset: 10, YOffset: -5}
	pm := p.Push(40, 20, 800, 600, testBase)
	if !pm.HasX || !pm.HasY || pm.X != 1 || pm.Y != 1 {
		t.Fatalf("anchors missing in %+v", pm)
	}
	if pm.XL != -10 || pm.XR != 50 {
		t.Errorf("XL, XR = %g, %g, want -10, 50", pm.XL, pm.XR)
	}
	if pm.YT != 25 || pm.YB != -5 {
		t.Errorf("YT, YB = %g, %g, want 25, -5", pm.YT, pm.YB)
	}
	// Box from x=730 to 770 and y=75 to 95 with a plot area of 640x420 at (80,100).
	if !equal64(pm.L, 650.0/640) || !equal64(pm.R, 690.0/640) || !equal64(pm.T, -25.0/420) || !equal64(pm.B, -5.0/420) {
		t.Errorf("fractions %+v", pm)
	}

	c := Placement{X: 1, Y: 1, XRef: "container", YRef: "container", XAnchor: "right", YAnchor: "top"}
	if pm := c.Push(40, 20, 800, 600, testBase); pm.HasX || pm.HasY {
		t.Errorf("container placement reports anchors: %+v", pm)
	}
}

func TestParsePlacement(t *testing.T) {
	def := Placement{X: 0.5, Y: 0.5, XRef: "paper", YRef: "paper", XAnchor: "auto", YAnchor: "auto"}
	for _, tc := range []struct {
		y    float64
		want string
	}{{0.9, "top"}, {0.5, "middle"}, {0.1, "bottom"}} {
		p, err := parsePlacement(data.Map{"y": tc.y}, "legend", def)
		if err != nil {
			t.Fatal(err)
		}
		if p.YAnchor != tc.want || p.XAnchor != "center" {
			t.Errorf("y=%g: anchors %s/%s", tc.y, p.XAnchor, p.YAnchor)
		}
	}

	for _, m := range []data.Map{{"xref": "x"}, {"yref": "page"}, {"xanchor": "middle"}, {"yanchor": "center"}} {
		_, err := parsePlacement(m, "legend", def)
		var ce *ConfigurationError
		if !errors.As(err, &ce) || !errors.Is(err, ErrUnknownReference) {
			t.Errorf("%v: got error %v", m, err)
		}
	}
}

func TestAxisTitle(t *testing.T) {
	m := textmeasure.Approximate{}
	font := Font{Size: 10}

	x := testAxis("x", Linear, Interval{0, 1})
	x.Title = AxisTitle{Text: "time", Standoff: 15}
	x.Ticks, x.TickLen, x.ShowTickLabels = "outside", 5, true
	d := axisTitle(x, font, m)
	if d == nil {
		t.Fatal("no title decoration")
	}
	if d.place.YAnchor != "top" || d.place.YOffset != 15+5+12 || d.place.X != 0.5 {
		t.Errorf("x title placement %+v", d.place)
	}
	if d.w != 24 || d.h != 12 {
		t.Errorf("x title size %gx%g", d.w, d.h)
	}

	y := testAxis("y", Linear, Interval{0, 1})
	y.Title = AxisTitle{Text: "count", Standoff: 10}
	y.ShowTickLabels = true
	y.State.TickText = []string{"0", "1000"}
	d = axisTitle(y, font, m)
	if d.place.XAnchor != "right" || d.place.XOffset != -(10+24) {
		t.Errorf("y title placement %+v", d.place)
	}
	if d.w != 12 || d.h != 30 || d.labels[0].Rotation != 90 {
		t.Errorf("y title %gx%g rotated %g", d.w, d.h, d.labels[0].Rotation)
	}

	y.Side = "right"
	if d = axisTitle(y, font, m); d.place.XAnchor != "left" || d.place.XOffset != 34 {
		t.Errorf("right y title placement %+v", d.place)
	}

	y.Title.Text = ""
	if d = axisTitle(y, font, m); d != nil {
		t.Errorf("untitled axis has title %+v", d)
	}
}

func TestAnnotation(t *testing.T) {
	a, err := newAnnotation(0, data.Map{"text": "peak", "x": 5.0, "y": 1.0, "xref": "x", "yref": "paper"}, Font{Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	if a.XAxis != "x" || a.YAxis != "" || a.Place.XAnchor != "center" {
		t.Errorf("annotation %+v", a)
	}

	x := testAxis("x", Linear, Interval{0, 10})
	l := &Layout{axes: map[AxisID]*Axis{x.ID: x}}
	d, err := a.decoration(l, textmeasure.Approximate{}, testGeometry)
	if err != nil {
		t.Fatal(err)
	}
	if d.push {
		t.Error("data referenced annotation pushes the margins")
	}
	if box := d.frame(testGeometry).Box; !equal64((box.Min.X+box.Max.X)/2, 400) {
		t.Errorf("annotation box %v not centred on x=5", box)
	}

	if _, err := newAnnotation(1, data.Map{"xref": "y2"}, Font{}); !errors.Is(err, ErrUnknownReference) {
		t.Errorf("xref y2: got error %v", err)
	}
}

func TestAnnotationRotation(t *testing.T) {
	a, err := newAnnotation(0, data.Map{"text": "abcde", "textangle": 90.0}, Font{Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	d, err := a.decoration(nil, textmeasure.Approximate{}, testGeometry)
	if err != nil {
		t.Fatal(err)
	}
	if !equal64(d.w, 12) || !equal64(d.h, 30) {
		t.Errorf("rotated box %gx%g, want 12x30", d.w, d.h)
	}
	if !d.push {
		t.Error("paper annotation does not push")
	}
}
