// Package ets fits additive exponential smoothing models and selects among them by information
// criterion.
package ets

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/aouyang1/go-timeseries/stats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const (
	initAlpha = 0.3
	initBeta  = 0.1
	initGamma = 0.1
)

// Params are the smoothing parameters, each in (0, 1). Unused parameters are zero.
type Params struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta,omitempty"`
	Gamma float64 `json:"gamma,omitempty"`
}

// State holds the level, trend and seasonal components
type State struct {
	Level  float64   `json:"level"`
	Trend  float64   `json:"trend,omitempty"`
	Season []float64 `json:"season,omitempty"`
}

func (s State) clone() State {
	c := s
	c.Season = append([]float64(nil), s.Season...)
	return c
}

// Model is an exponential smoothing model of a single kind
type Model struct {
	kind       Kind
	period     int
	iterations int

	params Params
	init   State
	final  State
	n      int

	fitted []float64
	ic     stats.InformationCriteria
	sse    float64

	trained bool
}

// New returns an unfitted model of the given kind. Only Period and Iterations are read from the
// options.
func New(kind Kind, opt *Options) (*Model, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if kind.HasSeason() && opt.Period < 2 {
		return nil, fmt.Errorf("%s with period %d, %w", kind, opt.Period, ErrInvalidPeriod)
	}
	m := &Model{
		kind:       kind,
		iterations: opt.Iterations,
	}
	if kind.HasSeason() {
		m.period = opt.Period
	}
	return m, nil
}

// Kind returns the model kind
func (m *Model) Kind() Kind {
	return m.kind
}

// Params returns the fitted smoothing parameters
func (m *Model) Params() Params {
	return m.params
}

// Initial returns the initial state the filter started from
func (m *Model) Initial() State {
	return m.init.clone()
}

// Final returns the state after the last observation
func (m *Model) Final() State {
	return m.final.clone()
}

// Criteria returns the log likelihood and information criteria of the fit
func (m *Model) Criteria() stats.InformationCriteria {
	return m.ic
}

// Fitted returns the in-sample one step predictions
func (m *Model) Fitted() []float64 {
	return append([]float64(nil), m.fitted...)
}

// numParams counts the smoothing parameters
func (m *Model) numParams() int {
	k := 1
	if m.kind.HasTrend() {
		k++
	}
	if m.kind.HasSeason() {
		k++
	}
	return k
}

// numStates counts the free initial states, the seasonal states being constrained to sum to zero
func (m *Model) numStates() int {
	k := 1
	if m.kind.HasTrend() {
		k++
	}
	if m.kind.HasSeason() {
		k += m.period - 1
	}
	return k
}

// Fit initializes the states heuristically from the start of y and then chooses the smoothing
// parameters that minimize the one step squared error with Nelder-Mead. The parameters are
// optimized on the logit scale so every candidate stays inside (0, 1).
func (m *Model) Fit(y []float64) error {
	m.trained = false
	n := len(y)
	if n == 0 {
		return ErrNoData
	}
	if minObs := m.kind.MinObservations(m.period); n < minObs {
		return fmt.Errorf("%s needs %d observations, got %d, %w", m.kind, minObs, n, ErrInsufficientObs)
	}

	m.init = m.initialState(y)

	x0 := []float64{logit(initAlpha)}
	if m.kind.HasTrend() {
		x0 = append(x0, logit(initBeta))
	}
	if m.kind.HasSeason() {
		x0 = append(x0, logit(initGamma))
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			sse, _ := m.filter(y, m.toParams(x), nil)
			if math.IsNaN(sse) || math.IsInf(sse, 0) {
				return math.MaxFloat64
			}
			return sse
		},
	}
	settings := &optimize.Settings{MajorIterations: m.iterations}

	best := x0
	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	switch {
	case res != nil:
		if err != nil {
			slog.Debug("smoothing parameter search stopped early", "kind", m.kind.String(), "error", err)
		}
		best = res.X
	case err != nil:
		slog.Debug("smoothing parameter search failed, using initial parameters", "kind", m.kind.String(), "error", err)
	}

	m.params = m.toParams(best)
	m.fitted = make([]float64, n)
	sse, final := m.filter(y, m.params, m.fitted)
	if math.IsNaN(sse) || math.IsInf(sse, 0) {
		return fmt.Errorf("%s, %w", m.kind, ErrNonFiniteError)
	}
	m.sse = sse
	m.final = final
	m.n = n

	ic, err := stats.NewInformationCriteria(sse, n, m.numParams()+m.numStates()+1)
	if err != nil {
		return fmt.Errorf("unable to compute information criteria, %w", err)
	}
	m.ic = ic
	m.trained = true
	return nil
}

// initialState places the level one step before the first observation so the first one step
// prediction lines up with y[0] when the series follows the model exactly.
func (m *Model) initialState(y []float64) State {
	var s State
	if !m.kind.HasSeason() {
		s.Level = y[0]
		if m.kind.HasTrend() {
			s.Trend = y[1] - y[0]
			s.Level -= s.Trend
		}
		return s
	}

	p := m.period
	first := stat.Mean(y[:p], nil)
	if m.kind.HasTrend() {
		second := stat.Mean(y[p:2*p], nil)
		s.Trend = (second - first) / float64(p)
	}
	// first cycle mean sits at (p-1)/2, the level starts at -1
	s.Level = first - s.Trend*float64(p+1)/2
	s.Season = make([]float64, p)
	for i := 0; i < p; i++ {
		s.Season[i] = y[i] - (s.Level + float64(i+1)*s.Trend)
	}
	return s
}

// filter runs the smoothing recursions over y and returns the sum of squared one step errors and
// the final state. fitted receives the one step predictions when non nil.
func (m *Model) filter(y []float64, params Params, fitted []float64) (float64, State) {
	s := m.init.clone()
	sse := 0.0
	for t, obs := range y {
		season := 0.0
		si := 0
		if m.kind.HasSeason() {
			si = t % m.period
			season = s.Season[si]
		}
		pred := s.Level + s.Trend + season
		if fitted != nil {
			fitted[t] = pred
		}
		e := obs - pred
		sse += e * e

		prevLevel := s.Level
		s.Level = params.Alpha*(obs-season) + (1-params.Alpha)*(s.Level+s.Trend)
		if m.kind.HasTrend() {
			s.Trend = params.Beta*(s.Level-prevLevel) + (1-params.Beta)*s.Trend
		}
		if m.kind.HasSeason() {
			s.Season[si] = params.Gamma*(obs-s.Level) + (1-params.Gamma)*season
		}
	}
	return sse, s
}

func (m *Model) toParams(x []float64) Params {
	p := Params{Alpha: logistic(x[0])}
	i := 1
	if m.kind.HasTrend() {
		p.Beta = logistic(x[i])
		i++
	}
	if m.kind.HasSeason() {
		p.Gamma = logistic(x[i])
	}
	return p
}

// Predict forecasts level + h*trend + season[(n+h-1) mod period] for h in 1..steps
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.trained {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d, %w", steps, ErrInvalidSteps)
	}
	res := make([]float64, steps)
	for h := 1; h <= steps; h++ {
		v := m.final.Level + float64(h)*m.final.Trend
		if m.kind.HasSeason() {
			v += m.final.Season[(m.n+h-1)%m.period]
		}
		res[h-1] = v
	}
	return res, nil
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}
