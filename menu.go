package plotlayout

import (
	"fmt"
	"math"

	"github.com/vdobler/plotlayout/data"
)

// Padding of menu buttons around their label in pixels.
const (
	buttonPadX = 8
	buttonPadY = 4
)

// MenuButton is one button of an update menu.
type MenuButton struct {
	Label  string
	Method string
	Args   []data.Map
}

// UpdateMenu is a dropdown or a group of buttons which restyle the
// figure when pressed.
type UpdateMenu struct {
	Type      string // "dropdown" or "buttons"
	Direction string // "down", "up", "left" or "right"
	Active    int
	Open      bool // a dropdown shows its buttons
	Place     Placement
	Font      Font
	BGColor   string
	Border    string
	Buttons   []MenuButton

	index int
}

func newUpdateMenu(i int, m data.Map, font Font) (*UpdateMenu, error) {
	attr := fmt.Sprintf("updatemenus[%d]", i)
	u := &UpdateMenu{
		Type:      data.String(m, "type", "dropdown"),
		Direction: data.String(m, "direction", "down"),
		Active:    data.Int(m, "active", 0),
		Open:      data.Bool(m, "_open", false),
		Font:      fontFrom(data.Sub(m, "font"), font),
		BGColor:   data.String(m, "bgcolor", "transparent"),
		Border:    data.String(m, "bordercolor", "#BEC8D9"),
		index:     i,
	}
	if u.Type != "dropdown" && u.Type != "buttons" {
		return nil, configError(attr+".type", u.Type, ErrUnknownAction)
	}
	switch u.Direction {
	case "down", "up", "left", "right":
	default:
		return nil, configError(attr+".direction", u.Direction, ErrUnknownAction)
	}
	p, err := parsePlacement(m, attr, Placement{
		X: -0.05, Y: 1, XRef: "paper", YRef: "paper", XAnchor: "right", YAnchor: "top",
	})
	if err != nil {
		return nil, err
	}
	u.Place = p

	for j, bm := range data.Maps(m, "buttons") {
		b := MenuButton{
			Label:  data.String(bm, "label", ""),
			Method: data.String(bm, "method", "restyle"),
		}
		args, _ := data.List(bm, "args")
		for _, a := range args {
			am, ok := a.(map[string]interface{})
			if !ok {
				return nil, configError(fmt.Sprintf("%s.buttons[%d].args", attr, j), a, ErrUnknownAction)
			}
			b.Args = append(b.Args, am)
		}
		u.Buttons = append(u.Buttons, b)
	}
	if u.Active < 0 || u.Active >= len(u.Buttons) {
		u.Active = 0
	}
	return u, nil
}

// decoration lays out the buttons of u. A closed dropdown shows only its
// header button labelled with the active button; buttons of an open
// dropdown follow below the header. All buttons of a menu are as wide as
// the widest label.
func (u *UpdateMenu) decoration(m TextMeasurer) *decoration {
	d := &decoration{
		id:         fmt.Sprintf("updatemenus[%d]", u.index),
		kind:       "menu",
		place:      u.Place,
		push:       true,
		background: u.BGColor,
		border:     u.Border,
	}
	labels := make([]Label, len(u.Buttons))
	bw, bh := 0.0, 0.0
	for i, b := range u.Buttons {
		labels[i] = textLabel(m, b.Label, u.Font)
		bw = math.Max(bw, labels[i].Box.Width()+2*buttonPadX)
		bh = math.Max(bh, labels[i].Box.Height()+2*buttonPadY)
	}
	if len(labels) == 0 {
		return d
	}

	var shown []Label
	horizontal := u.Direction == "left" || u.Direction == "right"
	if u.Type == "dropdown" {
		horizontal = false
		header := labels[u.Active]
		shown = append(shown, header)
		if u.Open {
			shown = append(shown, labels...)
		}
	} else {
		shown = labels
	}
	for i, l := range shown {
		var at Point
		if horizontal {
			at.X = float64(i) * bw
		} else {
			at.Y = float64(i) * bh
		}
		// The label box is the whole button.
		l.Box = Box{at, Point{at.X + bw, at.Y + bh}}
		d.labels = append(d.labels, l)
	}
	d.w, d.h = bw, bh*float64(len(shown))
	if horizontal {
		d.w, d.h = bw*float64(len(shown)), bh
	}
	return d
}

// apply merges the args of button into the figure specification spec.
// Only the "update" method is supported: every arg map is merged into the
// layout, and list values as long as the trace list are spread over the
// traces, element i going to trace i.
func (u *UpdateMenu) apply(button int, spec data.Map) error {
	attr := fmt.Sprintf("updatemenus[%d].buttons[%d]", u.index, button)
	if button < 0 || button >= len(u.Buttons) {
		return configError(attr, button, ErrUnknownReference)
	}
	b := u.Buttons[button]
	if b.Method != "update" {
		return configError(attr+".method", b.Method, ErrNotImplemented)
	}

	layout := data.Sub(spec, "layout")
	traces := data.Maps(spec, "data")
	for _, arg := range b.Args {
		merged, err := data.UpdateDict(layout, arg)
		if err != nil {
			return fmt.Errorf("%s: %w", attr, err)
		}
		layout = merged
		for k, v := range arg {
			list, ok := data.AsSlice(v)
			if !ok || len(list) != len(traces) || len(traces) == 0 {
				continue
			}
			for i, t := range traces {
				t[k] = list[i]
			}
		}
	}
	spec["layout"] = layout
	if menus, ok := data.List(layout, "updatemenus"); ok && u.index < len(menus) {
		if mm, ok := menus[u.index].(map[string]interface{}); ok {
			mm["active"] = button
			mm["_open"] = false
		}
	}
	return nil
}
