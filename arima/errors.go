package arima

import "errors"

var (
	ErrNoOptions         = errors.New("no arima options")
	ErrInvalidOrder      = errors.New("arima orders must be non-negative")
	ErrInvalidSeason     = errors.New("seasonal terms need a period of at least 2")
	ErrInsufficientData  = errors.New("insufficient data for the requested order")
	ErrNonStationary     = errors.New("autoregressive coefficients are not stationary")
	ErrNonInvertible     = errors.New("moving average coefficients are not invertible")
	ErrNotFitted         = errors.New("model must be fit before prediction")
	ErrInvalidSteps      = errors.New("steps must be at least 1")
	ErrNoViableCandidate = errors.New("no viable arima candidate")
)
