package timeseries

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is the root of every error caused by how a call was made. These are detectable
	// before calling and never depend on the numeric content of the data.
	ErrUsage = errors.New("usage error")

	// ErrDomain is the root of every error caused by data that makes a computation impossible
	ErrDomain = errors.New("domain error")
)

var (
	ErrNoFrequency        = fmt.Errorf("series has no frequency, %w", ErrUsage)
	ErrNegativeFrequency  = fmt.Errorf("frequency must not be negative, %w", ErrUsage)
	ErrUnknownMethod      = fmt.Errorf("unknown forecast method, %w", ErrUsage)
	ErrInvalidSteps       = fmt.Errorf("steps must be at least 1, %w", ErrUsage)
	ErrInvalidOrder       = fmt.Errorf("trend order must not be negative, %w", ErrUsage)
	ErrInsufficientPoints = fmt.Errorf("fewer points than trend coefficients, %w", ErrUsage)
	ErrDuplicateTimestamp = fmt.Errorf("duplicate timestamp, %w", ErrUsage)
	ErrLengthMismatch     = fmt.Errorf("timestamps and values have different lengths, %w", ErrUsage)
	ErrNotFitted          = fmt.Errorf("forecaster has not been fit, %w", ErrUsage)
	ErrNilSeries          = fmt.Errorf("nil series, %w", ErrUsage)

	ErrEmptySeries       = fmt.Errorf("cannot forecast an empty series, %w", ErrDomain)
	ErrNoInterval        = fmt.Errorf("series needs at least two points to infer an interval, %w", ErrDomain)
	ErrNonFiniteForecast = fmt.Errorf("forecast produced non finite values, %w", ErrDomain)
)
