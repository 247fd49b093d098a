// Package geom draws a laid out chart onto a vg canvas.
//
// A plotlayout.Frame contains everything in pixels with the origin in the
// top left corner and y growing downwards; vg canvases have their origin
// in the bottom left corner. Draw flips the y axis and draws one pixel as
// one vg.Length unit.
//
// The frame is drawn in layers: paper and plot backgrounds, grid lines,
// traces, axes with ticks and labels and finally the decorations (legend,
// axis titles, annotations and menus).
package geom

import (
	"errors"
	"image/color"
	"math"

	"github.com/vdobler/plotlayout"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Draw draws fr onto c using sty for everything fr does not specify.
// Unparsable colors are replaced by the style's defaults; the returned
// error lists them together with fonts which could not be loaded.
func Draw(c draw.Canvas, fr *plotlayout.Frame, sty Style) error {
	p := &painter{c: c, fr: fr, sty: sty, fonts: make(map[float64]vg.Font)}

	p.fill(p.rect(plotlayout.Box{Max: plotlayout.Point{X: fr.Width, Y: fr.Height}}), p.color(fr.PaperColor, sty.Paper))
	bg := p.color(fr.PlotColor, sty.Plot)
	for _, sp := range fr.Subplots {
		p.fill(p.rect(sp.Box), bg)
	}
	for i := range fr.Axes {
		p.grid(&fr.Axes[i])
	}
	for i := range fr.Traces {
		p.trace(&fr.Traces[i])
	}
	for i := range fr.Axes {
		p.axis(&fr.Axes[i])
	}
	for i := range fr.Decorations {
		p.decoration(&fr.Decorations[i])
	}
	return errors.Join(p.errs...)
}

type painter struct {
	c     draw.Canvas
	fr    *plotlayout.Frame
	sty   Style
	fonts map[float64]vg.Font
	errs  []error
}

// pt converts a frame pixel position into a canvas point.
func (p *painter) pt(q plotlayout.Point) vg.Point {
	return vg.Point{
		X: p.c.Min.X + vg.Length(q.X),
		Y: p.c.Min.Y + vg.Length(p.fr.Height-q.Y),
	}
}

func (p *painter) rect(b plotlayout.Box) vg.Rectangle {
	return CanonicRectangle(vg.Rectangle{Min: p.pt(b.Min), Max: p.pt(b.Max)})
}

func (p *painter) color(s string, def color.Color) color.Color {
	if s == "" {
		return def
	}
	c, err := ParseColor(s)
	if err != nil {
		p.errs = append(p.errs, err)
		return def
	}
	return c
}

func (p *painter) font(size float64) (vg.Font, bool) {
	if f, ok := p.fonts[size]; ok {
		return f, true
	}
	f, err := vg.MakeFont(p.sty.FontName, vg.Length(size))
	if err != nil {
		p.errs = append(p.errs, err)
		return f, false
	}
	p.fonts[size] = f
	return f, true
}

func (p *painter) fill(r vg.Rectangle, col color.Color) {
	if _, ok := withAlpha(col, 1); !ok {
		return
	}
	p.c.SetColor(col)
	p.c.Fill(r.Path())
}

func (p *painter) stroke(r vg.Rectangle, sty draw.LineStyle) {
	if sty.Color == nil || sty.Width <= 0 {
		return
	}
	p.c.SetColor(sty.Color)
	p.c.SetLineWidth(sty.Width)
	p.c.SetLineDash(sty.Dashes, sty.DashOffs)
	p.c.Stroke(r.Path())
}

func (p *painter) text(l plotlayout.Label, alpha float64) {
	if l.Text == "" {
		return
	}
	font, ok := p.font(l.Size)
	if !ok {
		return
	}
	sty := p.sty.Text
	col, ok := withAlpha(p.color(l.Color, sty.Color), alpha)
	if !ok {
		return
	}
	sty.Color = col
	sty.Font = font
	sty.Rotation = l.Rotation * math.Pi / 180
	center := plotlayout.Point{
		X: (l.Box.Min.X + l.Box.Max.X) / 2,
		Y: (l.Box.Min.Y + l.Box.Max.Y) / 2,
	}
	p.c.FillText(sty, p.pt(center), l.Text)
}

// subplot returns a canvas restricted to the plot area of the x and y
// axis pair.
func (p *painter) subplot(x, y plotlayout.AxisID) (draw.Canvas, bool) {
	for _, sp := range p.fr.Subplots {
		if sp.X == x && sp.Y == y {
			c := p.c
			c.Rectangle = p.rect(sp.Box)
			return c, true
		}
	}
	return p.c, false
}

// ----------------------------------------------------------------------------
// Axes

func (p *painter) grid(ax *plotlayout.AxisFrame) {
	p.gridLines(ax, ax.Minor, ax.MinorGrid, p.sty.MinorGrid)
	p.gridLines(ax, ax.Ticks, ax.Grid, p.sty.Grid)
}

func (p *painter) gridLines(ax *plotlayout.AxisFrame, ticks []plot.Tick, across plotlayout.Interval, sty draw.LineStyle) {
	if across.IsEmpty() {
		return
	}
	sty.Color = p.color(ax.GridColor, sty.Color)
	for _, t := range ticks {
		a, b := p.cross(ax, t.Value, across.Min), p.cross(ax, t.Value, across.Max)
		p.c.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
	}
}

// cross returns the canvas point at pixel position along on the axis and
// across it.
func (p *painter) cross(ax *plotlayout.AxisFrame, along, across float64) vg.Point {
	if ax.ID.Vertical() {
		return p.pt(plotlayout.Point{X: across, Y: along})
	}
	return p.pt(plotlayout.Point{X: along, Y: across})
}

func (p *painter) axis(ax *plotlayout.AxisFrame) {
	if ax.ShowLine {
		sty := p.sty.AxisLine
		sty.Color = p.color(ax.LineColor, sty.Color)
		a, b := p.cross(ax, ax.Span.Min, ax.Line), p.cross(ax, ax.Span.Max, ax.Line)
		p.c.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
	}

	p.tickMarks(ax, ax.Minor, ax.MinorLen, p.sty.MinorTick)
	p.tickMarks(ax, ax.Ticks, ax.TickLen, p.sty.Tick)

	for _, l := range ax.Labels {
		p.text(l, 1)
	}
}

// tickMarks draws ticks of length n; positive lengths point away from
// the plot area.
func (p *painter) tickMarks(ax *plotlayout.AxisFrame, ticks []plot.Tick, n float64, sty draw.LineStyle) {
	if n == 0 {
		return
	}
	sty.Color = p.color(ax.LineColor, sty.Color)
	end := ax.Line + n
	if ax.Side == "top" || ax.Side == "left" {
		end = ax.Line - n
	}
	for _, t := range ticks {
		a, b := p.cross(ax, t.Value, ax.Line), p.cross(ax, t.Value, end)
		p.c.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
	}
}

// ----------------------------------------------------------------------------
// Traces

func (p *painter) trace(tf *plotlayout.TraceFrame) {
	c, ok := p.subplot(tf.X, tf.Y)
	if !ok {
		return
	}
	opacity := tf.Opacity
	if opacity == 0 {
		opacity = 1
	}

	if len(tf.Bars) > 0 {
		fill, ok := withAlpha(p.color(tf.Color, p.sty.Bar.Fill), opacity)
		for _, bar := range tf.Bars {
			r := clipRect(vg.Rectangle{Min: p.pt(bar[0]), Max: p.pt(bar[2])}, c.Rectangle)
			if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
				continue
			}
			if ok {
				p.fill(r, fill)
			}
			p.stroke(r, p.sty.Bar.Border)
		}
		return
	}

	col, ok := withAlpha(p.color(tf.Color, p.sty.Line.Color), opacity)
	if !ok {
		return
	}
	if len(tf.Segments) > 0 {
		sty := p.sty.Line
		sty.Color = col
		if tf.LineWidth > 0 {
			sty.Width = vg.Length(tf.LineWidth)
		}
		sty.Dashes = Dashes(tf.Dash, sty.Width)
		lines := make([][]vg.Point, len(tf.Segments))
		for i, seg := range tf.Segments {
			lines[i] = make([]vg.Point, len(seg))
			for j, q := range seg {
				lines[i][j] = p.pt(q)
			}
		}
		c.StrokeLines(sty, c.ClipLinesXY(lines...)...)
	}
	if !tf.Markers {
		return
	}
	glyph := p.sty.Marker
	glyph.Color = col
	glyph.Shape = Glyph(tf.Symbol, tf.Index)
	for i, q := range tf.Points {
		if math.IsNaN(q.X) || math.IsNaN(q.Y) {
			continue
		}
		pt := p.pt(q)
		if !c.Contains(pt) {
			continue
		}
		if i < len(tf.Radii) {
			glyph.Radius = vg.Length(tf.Radii[i])
		}
		if glyph.Radius <= 0 {
			continue
		}
		c.DrawGlyph(glyph, pt)
	}
}

// ----------------------------------------------------------------------------
// Decorations

func (p *painter) decoration(d *plotlayout.DecorationFrame) {
	r := p.rect(d.Box)
	switch d.Kind {
	case "legend":
		p.fill(r, p.color(d.Background, p.sty.Paper))
		border := p.sty.Legend.Border
		border.Color = p.color(d.Border, border.Color)
		p.stroke(r, border)
		for _, e := range d.Entries {
			p.legendEntry(e)
		}
	case "menu":
		bg := p.color(d.Background, p.sty.Menu.Background)
		if _, ok := withAlpha(bg, 1); !ok {
			bg = p.sty.Menu.Background
		}
		border := p.sty.Menu.Border
		border.Color = p.color(d.Border, border.Color)
		for _, l := range d.Labels {
			br := p.rect(l.Box)
			p.fill(br, bg)
			p.stroke(br, border)
		}
	default:
		p.fill(r, p.color(d.Background, color.Transparent))
	}
	for _, l := range d.Labels {
		p.text(l, 1)
	}
}

func (p *painter) legendEntry(e plotlayout.LegendEntry) {
	alpha := 1.0
	if e.Hidden {
		alpha = p.sty.Legend.HiddenAlpha
	}
	col, ok := withAlpha(p.color(e.Color, p.sty.Line.Color), alpha)
	if ok {
		icon := p.rect(e.Icon)
		mid := (icon.Min.Y + icon.Max.Y) / 2
		if e.Lines {
			sty := p.sty.Line
			sty.Color = col
			if e.LineWidth > 0 {
				sty.Width = vg.Length(e.LineWidth)
			}
			p.c.StrokeLine2(sty, icon.Min.X, mid, icon.Max.X, mid)
		}
		if e.Markers && e.Radius > 0 {
			glyph := p.sty.Marker
			glyph.Color = col
			glyph.Radius = vg.Length(e.Radius)
			glyph.Shape = Glyph(e.Symbol, e.Trace)
			p.c.DrawGlyph(glyph, vg.Point{X: (icon.Min.X + icon.Max.X) / 2, Y: mid})
		}
	}
	p.text(e.Label, alpha)
}
