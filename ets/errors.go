package ets

import "errors"

var (
	ErrUnknownKind     = errors.New("unknown exponential smoothing kind")
	ErrInvalidPeriod   = errors.New("seasonal kinds need a period of at least 2")
	ErrInvalidIter     = errors.New("iterations must be positive")
	ErrNoKinds         = errors.New("no kinds to search")
	ErrNoData          = errors.New("no data to fit")
	ErrInsufficientObs = errors.New("too few observations for kind")
	ErrNotFitted       = errors.New("model must be fit before prediction")
	ErrInvalidSteps    = errors.New("steps must be at least 1")
	ErrNoViableKind    = errors.New("no viable exponential smoothing kind")
	ErrNonFiniteError  = errors.New("one step errors are not finite")
)
