package geom

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ParseColor parses a CSS color as used in figure specifications:
// "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)", "rgba(r, g, b, a)" with
// a in [0,1], the SVG color names and "transparent".
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent":
		return color.Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("geom: unknown color %q", s)
}

func parseHex(h string) (color.Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("geom: bad hex color #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("geom: bad hex color #%s: %w", h, err)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func parseRGB(s string) (color.Color, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return nil, fmt.Errorf("geom: bad color %q", s)
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("geom: bad color %q", s)
	}
	var c [4]uint8
	c[3] = 0xff
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("geom: bad color %q: %w", s, err)
		}
		if i == 3 {
			v *= 255
		}
		c[i] = uint8(math.Max(0, math.Min(255, math.Round(v))))
	}
	return color.NRGBA{c[0], c[1], c[2], c[3]}, nil
}

// withAlpha scales the opacity of col by alpha. Colors which end up fully
// transparent are reported as not drawable.
func withAlpha(col color.Color, alpha float64) (color.Color, bool) {
	if col == nil || alpha <= 0 || math.IsNaN(alpha) {
		return col, false
	}
	r, g, b, a := col.RGBA()
	if a == 0 {
		return col, false
	}
	if alpha >= 1 {
		return col, true
	}
	// Back from premultiplied to straight alpha.
	return color.NRGBA64{
		uint16(r * 0xffff / a),
		uint16(g * 0xffff / a),
		uint16(b * 0xffff / a),
		uint16(float64(a) * alpha),
	}, true
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to limit. The returned rectangle is in the
// canonical form and may be empty.
func clipRect(rect, limit vg.Rectangle) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit = CanonicRectangle(limit)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect
}

// Glyph returns the glyph drawer for a marker symbol name. Unknown symbols
// get one of plotutil's default shapes picked by n.
func Glyph(symbol string, n int) draw.GlyphDrawer {
	switch symbol {
	case "circle":
		return draw.CircleGlyph{}
	case "circle-open":
		return draw.RingGlyph{}
	case "square":
		return draw.SquareGlyph{}
	case "square-open":
		return draw.BoxGlyph{}
	case "triangle-up":
		return draw.PyramidGlyph{}
	case "triangle-up-open":
		return draw.TriangleGlyph{}
	case "cross":
		return draw.PlusGlyph{}
	case "x":
		return draw.CrossGlyph{}
	}
	return plotutil.Shape(n)
}

// Dashes returns the dash pattern of a line dash name for lines of the
// given width.
func Dashes(dash string, width vg.Length) []vg.Length {
	w := width
	if w < 1 {
		w = 1
	}
	switch dash {
	case "", "solid":
		return nil
	case "dot":
		return []vg.Length{w, 2 * w}
	case "dash":
		return []vg.Length{4 * w, 2 * w}
	case "longdash":
		return []vg.Length{8 * w, 3 * w}
	case "dashdot":
		return []vg.Length{4 * w, 2 * w, w, 2 * w}
	case "longdashdot":
		return []vg.Length{8 * w, 3 * w, w, 3 * w}
	}
	return nil
}
