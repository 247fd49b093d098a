package plotlayout

import (
	"log/slog"
)

// TextMeasurer reports the extent of a single line of text in pixels.
// Implementations live in package textmeasure.
type TextMeasurer interface {
	Measure(text string, size float64) (width, height float64)
}

// A RenderConfig controls how a Chart lays out its figure. The zero value
// is not useful; start from DefaultRenderConfig.
type RenderConfig struct {
	// Measurer sizes tick labels, legend entries, titles and buttons.
	Measurer TextMeasurer

	// Logger overrides the package logger if non-nil. Debug enables
	// dumps of the axis state after every pipeline stage.
	Logger *slog.Logger
	Debug  bool

	// Seed of the random source used to subsample long series during
	// axis type detection.
	Seed int64

	FontSize        float64 // default font size of all text
	MinTickSpacingX float64 // pixels between automatic x ticks
	MinTickSpacingY float64 // pixels between automatic y ticks

	// PushPadding is the gap kept between an anchored decoration and the
	// edge of the chart; ApproximatePadding is used for decorations
	// without anchor data.
	PushPadding        float64
	ApproximatePadding float64

	// MaxLayoutPasses bounds the tick, decoration and margin iteration.
	// Tolerance is the margin change in pixels regarded as converged.
	MaxLayoutPasses int
	Tolerance       float64

	// JointMargins solves the left/right and top/bottom margins together
	// when decorations overflow on both sides.
	JointMargins bool
}

// DefaultRenderConfig returns a RenderConfig which mimics the browser
// rendering of the figure schema. The measurer is left nil; NewChart
// falls back to an OpenType measurer with the Go Regular font.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Seed:               1,
		FontSize:           12,
		MinTickSpacingX:    MinTickSpacingX,
		MinTickSpacingY:    MinTickSpacingY,
		PushPadding:        12,
		ApproximatePadding: 30,
		MaxLayoutPasses:    3,
		Tolerance:          0.5,
	}
}

func (cfg RenderConfig) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return Logger()
}
