package arima

import (
	"fmt"

	"github.com/aouyang1/go-timeseries/stats"
)

const (
	DefaultMaxP  = 2
	DefaultMaxD  = 2
	DefaultMaxQ  = 2
	DefaultMaxSP = 1
	DefaultMaxSD = 1
)

// Options bounds the automatic order search
type Options struct {
	MaxP  int `json:"max_p"`
	MaxD  int `json:"max_d"`
	MaxQ  int `json:"max_q"`
	MaxSP int `json:"max_seasonal_p"`
	MaxSD int `json:"max_seasonal_d"`

	// Period is the seasonal period. Values below 2 disable seasonal terms.
	Period int `json:"period"`

	// Criterion ranks the candidate models, lowest wins
	Criterion stats.Criterion `json:"criterion"`
}

// NewDefaultOptions returns the default search bounds ranked by AICc with no seasonality
func NewDefaultOptions() *Options {
	return &Options{
		MaxP:      DefaultMaxP,
		MaxD:      DefaultMaxD,
		MaxQ:      DefaultMaxQ,
		MaxSP:     DefaultMaxSP,
		MaxSD:     DefaultMaxSD,
		Criterion: stats.AICc,
	}
}

// Validate substitutes defaults for nil options and rejects negative bounds
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.MaxP < 0 || o.MaxD < 0 || o.MaxQ < 0 || o.MaxSP < 0 || o.MaxSD < 0 || o.Period < 0 {
		return nil, fmt.Errorf("negative search bound, %w", ErrInvalidOrder)
	}
	if err := o.Criterion.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
