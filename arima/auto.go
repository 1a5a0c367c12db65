package arima

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-timeseries/stats"
)

// minTestObservations is the shortest series a stationarity or seasonality test is trusted on.
// Shorter series stop differencing.
const minTestObservations = 10

// Auto selects an ARIMA order for a series and forecasts with the selected model.
//
// The seasonal differencing order is 1 when the seasonal strength of the series reaches
// stats.SeasonalStrengthThreshold, the regular differencing order is the number of differences
// after which the KPSS test no longer rejects level stationarity, and the remaining orders are
// searched exhaustively within the option bounds keeping the lowest information criterion.
type Auto struct {
	opt  *Options
	best *Model
}

// NewAuto returns an automatic ARIMA selector. nil options use the defaults.
func NewAuto(opt *Options) (*Auto, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Auto{opt: opt}, nil
}

// Model returns the selected model or nil before a successful Fit
func (a *Auto) Model() *Model {
	return a.best
}

// Fit selects and fits the best model for y
func (a *Auto) Fit(y []float64) error {
	a.best = nil
	if len(y) == 0 {
		return fmt.Errorf("no observations, %w", ErrInsufficientData)
	}

	period := 0
	if a.opt.Period >= 2 && len(y) >= 2*a.opt.Period {
		period = a.opt.Period
	} else if a.opt.Period >= 2 {
		slog.Debug("seasonal arima terms disabled, series shorter than two cycles",
			"points", len(y), "period", a.opt.Period)
	}

	sd := 0
	if period > 0 && a.opt.MaxSD > 0 {
		strength, err := stats.SeasonalStrength(y, period)
		if err != nil {
			slog.Debug("unable to measure seasonal strength", "error", err)
		} else if strength >= stats.SeasonalStrengthThreshold {
			sd = 1
		}
	}

	d := selectDifferencing(y, a.opt.MaxD, period, sd)

	maxSP := 0
	if period > 0 {
		maxSP = a.opt.MaxSP
	}

	var (
		best      *Model
		bestScore float64
	)
	for p := 0; p <= a.opt.MaxP; p++ {
		for q := 0; q <= a.opt.MaxQ; q++ {
			for sp := 0; sp <= maxSP; sp++ {
				order := Order{P: p, D: d, Q: q, SP: sp, SD: sd}
				if order.Seasonal() {
					order.M = period
				}
				m, err := fitOrder(order, y)
				if err != nil {
					slog.Debug("skipping arima candidate", "order", order.String(), "error", err)
					continue
				}
				score := m.Criteria().Value(a.opt.Criterion)
				if best == nil || score < bestScore {
					best, bestScore = m, score
				}
			}
		}
	}

	if best == nil {
		m, err := fallback(y, d, sd, period)
		if err != nil {
			return err
		}
		best = m
	}

	slog.Debug("selected arima model", "order", best.Order().String(),
		a.opt.Criterion.String(), best.Criteria().Value(a.opt.Criterion))
	a.best = best
	return nil
}

// Predict forecasts steps values past the end of the fitted series
func (a *Auto) Predict(steps int) ([]float64, error) {
	if a.best == nil {
		return nil, ErrNotFitted
	}
	return a.best.Predict(steps)
}

func fitOrder(order Order, y []float64) (*Model, error) {
	m, err := New(order)
	if err != nil {
		return nil, err
	}
	if err := m.Fit(y); err != nil {
		return nil, err
	}
	return m, nil
}

// fallback walks down the differencing orders with no autoregressive or moving average terms
// until one fits.
func fallback(y []float64, d, sd, period int) (*Model, error) {
	for curSD := sd; curSD >= 0; curSD-- {
		for curD := d; curD >= 0; curD-- {
			order := Order{D: curD, SD: curSD}
			if curSD > 0 {
				order.M = period
			}
			m, err := fitOrder(order, y)
			if err == nil {
				slog.Debug("no arima candidate fit, falling back", "order", order.String())
				return m, nil
			}
			if !errors.Is(err, ErrInsufficientData) {
				return nil, err
			}
		}
	}
	return nil, ErrNoViableCandidate
}

// selectDifferencing counts the differences needed for the KPSS test to accept level
// stationarity after sd seasonal differences.
func selectDifferencing(y []float64, maxD, period, sd int) int {
	cur := y
	for i := 0; i < sd; i++ {
		cur = difference(cur, period)
	}

	d := 0
	for d < maxD {
		if len(cur) < minTestObservations {
			break
		}
		res, err := stats.KPSS(cur)
		if err != nil || res.Stationary {
			break
		}
		cur = difference(cur, 1)
		d++
	}
	return d
}
