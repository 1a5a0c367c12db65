package ets

import (
	"fmt"

	"github.com/aouyang1/go-timeseries/stats"
)

// DefaultIterations bounds the Nelder-Mead search for the smoothing parameters
const DefaultIterations = 500

// Options configures exponential smoothing fits
type Options struct {
	// Period is the seasonal period. Values below 2 disable the seasonal kinds.
	Period int `json:"period"`

	// Iterations is the maximum number of optimizer iterations per fit
	Iterations int `json:"iterations"`

	// Kinds are the candidates considered by Auto
	Kinds []Kind `json:"kinds"`

	// Criterion ranks the candidate models, lowest wins
	Criterion stats.Criterion `json:"criterion"`
}

// NewDefaultOptions searches every kind with no seasonality ranked by AICc
func NewDefaultOptions() *Options {
	return &Options{
		Iterations: DefaultIterations,
		Kinds:      AllKinds(),
		Criterion:  stats.AICc,
	}
}

// Validate substitutes defaults for nil options and rejects invalid settings
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.Period < 0 {
		return nil, fmt.Errorf("period of %d, %w", o.Period, ErrInvalidPeriod)
	}
	if o.Iterations < 1 {
		return nil, fmt.Errorf("got %d, %w", o.Iterations, ErrInvalidIter)
	}
	if len(o.Kinds) == 0 {
		return nil, ErrNoKinds
	}
	for _, k := range o.Kinds {
		if err := k.Validate(); err != nil {
			return nil, err
		}
	}
	if err := o.Criterion.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
