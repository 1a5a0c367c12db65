package ets

import (
	"log/slog"
)

// Auto fits every viable kind from the options and keeps the one with the lowest information
// criterion. Seasonal kinds are skipped when the period is below 2 or the series holds fewer than
// two full cycles.
type Auto struct {
	opt  *Options
	best *Model
}

// NewAuto returns an automatic exponential smoothing selector. nil options use the defaults.
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

// Fit selects and fits the best kind for y
func (a *Auto) Fit(y []float64) error {
	a.best = nil
	if len(y) == 0 {
		return ErrNoData
	}

	var (
		best      *Model
		bestScore float64
	)
	for _, kind := range a.opt.Kinds {
		if kind.HasSeason() {
			if a.opt.Period < 2 {
				slog.Debug("skipping seasonal kind, no period", "kind", kind.String())
				continue
			}
			if len(y) < kind.MinObservations(a.opt.Period) {
				slog.Debug("skipping seasonal kind, series shorter than two cycles",
					"kind", kind.String(), "points", len(y), "period", a.opt.Period)
				continue
			}
		}
		if len(y) < kind.MinObservations(a.opt.Period) {
			continue
		}

		m, err := New(kind, a.opt)
		if err != nil {
			return err
		}
		if err := m.Fit(y); err != nil {
			slog.Debug("skipping exponential smoothing candidate", "kind", kind.String(), "error", err)
			continue
		}
		score := m.Criteria().Value(a.opt.Criterion)
		if best == nil || score < bestScore {
			best, bestScore = m, score
		}
	}
	if best == nil {
		return ErrNoViableKind
	}

	slog.Debug("selected exponential smoothing model", "kind", best.Kind().String(),
		"alpha", best.Params().Alpha, "beta", best.Params().Beta, "gamma", best.Params().Gamma)
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
