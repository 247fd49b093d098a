package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Frame is drawn where the frame itself carries no
// color or size: it provides the fallbacks for unset or unparsable colors
// and the line widths of axes, ticks and grid.
type Style struct {
	// FontName is the vg font used for all text. Text provides color and
	// alignment of labels; font, size and rotation are taken from the
	// labels.
	FontName string
	Text     draw.TextStyle

	Paper color.Color
	Plot  color.Color

	Grid      draw.LineStyle
	MinorGrid draw.LineStyle
	AxisLine  draw.LineStyle
	Tick      draw.LineStyle
	MinorTick draw.LineStyle

	// Line and Marker are the defaults for scatter traces.
	Line   draw.LineStyle
	Marker draw.GlyphStyle
	Bar    BoxStyle

	Legend struct {
		// HiddenAlpha is the opacity of entries of toggled off traces.
		HiddenAlpha float64
		Border      draw.LineStyle
	}
	Menu struct {
		Background color.Color
		Border     draw.LineStyle
	}
}

// BoxStyle combines a line style for the border with a fill color for
// the interior of a rectangle.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// DefaultStyle returns a Style which mimics the look of plotly's default
// template.
func DefaultStyle() Style {
	grey := color.RGBA{0x44, 0x44, 0x44, 0xff}

	s := Style{}
	s.FontName = "Helvetica"
	s.Text.Color = grey
	s.Text.XAlign = draw.XCenter
	s.Text.YAlign = draw.YCenter
	s.Paper = color.White
	s.Plot = color.RGBA{0xe5, 0xec, 0xf6, 0xff}

	s.Grid.Color = color.White
	s.Grid.Width = vg.Length(1)
	s.MinorGrid.Color = color.RGBA{0xf2, 0xf5, 0xfa, 0xff}
	s.MinorGrid.Width = vg.Length(0.5)
	s.AxisLine.Color = grey
	s.AxisLine.Width = vg.Length(1)
	s.Tick.Color = grey
	s.Tick.Width = vg.Length(1)
	s.MinorTick.Color = grey
	s.MinorTick.Width = vg.Length(0.5)

	s.Line.Color = color.RGBA{0x63, 0x6e, 0xfa, 0xff}
	s.Line.Width = vg.Length(2)
	s.Marker.Color = s.Line.Color
	s.Marker.Radius = vg.Length(3)
	s.Marker.Shape = draw.CircleGlyph{}

	s.Bar.Fill = s.Line.Color
	s.Bar.Border.Color = color.White
	s.Bar.Border.Width = vg.Length(0.5)

	s.Legend.HiddenAlpha = 0.5
	s.Legend.Border.Color = grey
	s.Legend.Border.Width = 0

	s.Menu.Background = color.RGBA{0xf4, 0xfa, 0xff, 0xff}
	s.Menu.Border.Color = color.RGBA{0xbe, 0xc8, 0xd9, 0xff}
	s.Menu.Border.Width = vg.Length(1)

	return s
}
