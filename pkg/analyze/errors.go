package analyze

import "errors"

// Stage failures are sentinel errors so callers can discriminate with
// errors.Is. A profile that trips any of these is skipped, never fatal
// to a batch run.
var (
	// ErrInsufficientData means too few samples for a required window or fit.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrFitFailed means a numeric fit produced a degenerate or unsolvable model.
	ErrFitFailed = errors.New("fit failed")

	// ErrNoIntersection means a zero-slope line cannot cross the plateau height.
	ErrNoIntersection = errors.New("no intersection")

	// ErrMissingInput means an upstream stage produced no usable value.
	ErrMissingInput = errors.New("missing input")
)
