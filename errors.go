package plotlayout

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented marks documented but unsupported configurations,
	// e.g. month based date ticks.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownDTick indicates a tick step with an unrecognized tag.
	ErrUnknownDTick = errors.New("unknown dtick")

	// ErrUnknownTraceType indicates a trace type outside scatter and histogram.
	ErrUnknownTraceType = errors.New("unknown trace type")

	// ErrUnknownReference indicates an unknown xref, yref or axis reference.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrUnknownAction indicates an unknown legend click or menu action.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNonPositiveLog is returned when a value <= 0 is placed on a log axis.
	ErrNonPositiveLog = errors.New("non-positive value on log axis")

	// ErrZeroSpan is returned when mapping onto an axis whose range has no extent.
	ErrZeroSpan = errors.New("axis range has zero span")

	// ErrTooManyTicks is returned if tick generation does not terminate
	// within a sane number of steps.
	ErrTooManyTicks = errors.New("too many ticks")

	// ErrMarginDivergence is returned if automatic margins do not settle
	// within the configured number of layout passes.
	ErrMarginDivergence = errors.New("margins did not converge")
)

// ConfigurationError reports an unsupported or unrecognized attribute of
// the figure specification. Such errors are never retried: the engine does
// not guess a default.
type ConfigurationError struct {
	Attr  string      // attribute path, e.g. "xaxis2.dtick"
	Value interface{} // offending value
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s=%v: %v", e.Attr, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(attr string, value interface{}, err error) *ConfigurationError {
	return &ConfigurationError{Attr: attr, Value: value, Err: err}
}
