package stats

import "errors"

var (
	ErrResLenMismatch        = errors.New("predicted and actual have different lengths")
	ErrTooFewObservations    = errors.New("too few observations")
	ErrInvalidWindow         = errors.New("window must be at least 1")
	ErrInvalidPeriod         = errors.New("period must be at least 2")
	ErrUnknownCriterion      = errors.New("unknown information criterion")
	ErrNonPositiveParameters = errors.New("number of parameters must be positive")
)
