package lightcurve

import "errors"

var (
	ErrEmptyCurve        = errors.New("lightcurve: curve has no points")
	ErrNoPositiveFlux    = errors.New("lightcurve: curve has no positive flux")
	ErrUnsortedTimes     = errors.New("lightcurve: observation times must be non-decreasing")
	ErrTooFewPoints      = errors.New("lightcurve: at least two points required")
	ErrInvalidSampleStep = errors.New("lightcurve: sample step must be positive")
)
