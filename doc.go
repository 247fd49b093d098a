// Package plotlayout lays out plotly style figures: it turns a loosely typed
// figure specification into pixel positions for axes, ticks, traces and
// decorations at a given chart size.
//
// It does not draw anything itself; package geom renders the resulting
// Frame onto a gonum.org/v1/plot/vg canvas.
//
// Figure Specifications
//
// A specification is a nested map as produced by encoding/json:
//
//	{"data": [trace, ...], "layout": {...}}
//
// Traces of type "scatter" and "histogram" are supported. Missing
// attributes are taken from built-in defaults. Axes are referenced as x,
// x2, ... and y, y2, ... from traces and as xaxis, xaxis2, ... in the
// layout.
//
// Axes
//
// The type of an axis ("linear", "log", "date", "category" or
// "multicategory") is either declared or detected from the first trace
// drawn on the axis. Ranges are the union of the data of all visible
// traces on an axis and its matching axes, padded by 1/16 of their span
// on each side. Tick spacing follows plotly's auto tick rules: the tick
// count derives from the axis length in pixels.
//
// Layout
//
// Chart.Draw repeats three steps until the margins settle:
//   - compute the ticks for the current axis lengths,
//   - place the decorations (legend, axis titles, annotations, menus),
//   - grow the margins for decorations sticking out of the plot area.
//
// Margins only grow. Every decoration reports its overflow relative to the
// base margins from the layout, so the second pass normally reproduces the
// margins of the first.
//
// Interaction
//
// Clicks on legend entries and update menu buttons change the
// specification (the "_visible" flag of traces, the "active" button of a
// menu) and rebuild the figure.
package plotlayout
