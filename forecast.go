package timeseries

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/aouyang1/go-timeseries/arima"
	"github.com/aouyang1/go-timeseries/ets"
	"github.com/aouyang1/go-timeseries/stats"
	"github.com/aouyang1/go-timeseries/timedataset"
)

// Method selects the model family used to forecast
type Method int

const (
	// MethodLinear extends a least squares line through the history
	MethodLinear Method = iota
	// MethodARIMA forecasts with an automatically selected seasonal ARIMA model
	MethodARIMA
	// MethodETS forecasts with an automatically selected additive exponential smoothing model
	MethodETS
)

func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodARIMA:
		return "arima"
	case MethodETS:
		return "ets"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps "linear", "arima" or "ets" to a Method ignoring case
func ParseMethod(name string) (Method, error) {
	for _, m := range []Method{MethodLinear, MethodARIMA, MethodETS} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%q, %w", name, ErrUnknownMethod)
}

// Validate rejects methods outside of the defined set
func (m Method) Validate() error {
	if m < MethodLinear || m > MethodETS {
		return fmt.Errorf("%d, %w", int(m), ErrUnknownMethod)
	}
	return nil
}

// Model is a univariate forecasting model over evenly spaced values
type Model interface {
	Fit(y []float64) error
	Predict(steps int) ([]float64, error)
}

var (
	_ Model = (*arima.Auto)(nil)
	_ Model = (*ets.Auto)(nil)
	_ Model = (*linearTrend)(nil)
)

// ForecastOptions configures the model families. A zero Period in either is replaced by the
// frequency of the series being fit.
type ForecastOptions struct {
	ARIMA *arima.Options `json:"arima"`
	ETS   *ets.Options   `json:"ets"`
}

// NewDefaultForecastOptions returns the default options of every model family
func NewDefaultForecastOptions() *ForecastOptions {
	return &ForecastOptions{
		ARIMA: arima.NewDefaultOptions(),
		ETS:   ets.NewDefaultOptions(),
	}
}

// Validate substitutes defaults for nil options and validates each model family
func (o *ForecastOptions) Validate() (*ForecastOptions, error) {
	if o == nil {
		return NewDefaultForecastOptions(), nil
	}
	res := &ForecastOptions{}

	aopt, err := o.ARIMA.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid arima options, %w", err)
	}
	res.ARIMA = aopt

	eopt, err := o.ETS.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid exponential smoothing options, %w", err)
	}
	res.ETS = eopt
	return res, nil
}

// Forecaster fits a model of the chosen method to a Series and extends it into the future.
// Predicted timestamps continue from the last observation spaced by the interval between the first
// two observations. A Forecaster is not safe for concurrent use.
type Forecaster struct {
	method Method
	opt    *ForecastOptions

	model    Model
	history  *Series
	interval int64
}

// NewForecaster returns an unfitted forecaster. The method is validated immediately.
func NewForecaster(method Method, opt *ForecastOptions) (*Forecaster, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Forecaster{method: method, opt: opt}, nil
}

// Method returns the model family of the forecaster
func (f *Forecaster) Method() Method {
	return f.method
}

// Fit trains the model on the full history of s. The series needs at least two observations so
// that the forecast interval is defined.
func (f *Forecaster) Fit(s *Series) error {
	f.model, f.history, f.interval = nil, nil, 0

	if s == nil {
		return ErrNilSeries
	}
	if s.Len() == 0 {
		return ErrEmptySeries
	}
	interval, ok := s.Interval()
	if !ok {
		return fmt.Errorf("got %d point, %w", s.Len(), ErrNoInterval)
	}
	if modal, err := timedataset.Timestamps(s.x).EstimateInterval(); err == nil && modal != interval {
		slog.Warn("series is unevenly spaced, forecasting with the first interval",
			"first_interval_ms", interval, "common_interval_ms", modal)
	}

	model, err := f.newModel(s, interval)
	if err != nil {
		return err
	}
	if err := model.Fit(s.y); err != nil {
		return fmt.Errorf("unable to fit %s model, %w", f.method, err)
	}

	f.model, f.history, f.interval = model, s, interval
	return nil
}

func (f *Forecaster) newModel(s *Series, interval int64) (Model, error) {
	freq, _ := s.Frequency()
	switch f.method {
	case MethodARIMA:
		opt := *f.opt.ARIMA
		if opt.Period == 0 {
			opt.Period = freq
		}
		return arima.NewAuto(&opt)
	case MethodETS:
		opt := *f.opt.ETS
		if opt.Period == 0 {
			opt.Period = freq
		}
		return ets.NewAuto(&opt)
	default:
		return newLinearTrend(s.x, interval), nil
	}
}

// Predict forecasts steps values past the end of the fitted history
func (f *Forecaster) Predict(steps int) (*Series, error) {
	if f.model == nil {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d, %w", steps, ErrInvalidSteps)
	}

	y, err := f.model.Predict(steps)
	if err != nil {
		return nil, fmt.Errorf("unable to predict with %s model, %w", f.method, err)
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("step %d is %v, %w", i+1, v, ErrNonFiniteForecast)
		}
	}

	last := f.history.x[len(f.history.x)-1]
	x := make([]int64, steps)
	for k := range x {
		x[k] = last + int64(k+1)*f.interval
	}
	return &Series{x: x, y: y, frequency: f.history.frequency}, nil
}

// Model summarizes the fitted model
func (f *Forecaster) Model() (ForecastModel, error) {
	if f.model == nil {
		return ForecastModel{}, ErrNotFitted
	}

	fm := ForecastModel{
		Method:       f.method.String(),
		TrainEndTime: timedataset.Timestamps(f.history.x).EndTime().UTC(),
		IntervalMS:   f.interval,
	}

	var fitted []float64
	switch m := f.model.(type) {
	case *arima.Auto:
		best := m.Model()
		fm.Specification = best.Order().String()
		fm.Parameters = arimaParameters(best.Coefficients())
		fm.Criteria = newCriteria(best.Criteria())
		fitted = best.Fitted()
	case *ets.Auto:
		best := m.Model()
		fm.Specification = best.Kind().String()
		fm.Parameters = etsParameters(best.Kind(), best.Params())
		fm.Criteria = newCriteria(best.Criteria())
		fitted = best.Fitted()
	case *linearTrend:
		fm.Specification = "y = intercept + slope*x"
		coef := m.poly.Coefficients()
		fm.Parameters = []Parameter{
			{Name: "intercept", Value: coef[0]},
			{Name: "slope", Value: m.poly.Slope()},
		}
		fitted = m.fitted()
		sse := 0.0
		for i, v := range fitted {
			sse += math.Pow(f.history.y[i]-v, 2)
		}
		if ic, err := stats.NewInformationCriteria(sse, len(fitted), 3); err == nil {
			fm.Criteria = newCriteria(ic)
		}
	}

	scores, err := stats.NewScores(fitted, f.history.y)
	if err != nil {
		return ForecastModel{}, fmt.Errorf("unable to score in sample fit, %w", err)
	}
	fm.Scores = scores
	return fm, nil
}

func arimaParameters(coef arima.Coefficients) []Parameter {
	params := []Parameter{{Name: "intercept", Value: coef.Intercept}}
	for i, v := range coef.AR {
		params = append(params, Parameter{Name: fmt.Sprintf("ar%d", i+1), Value: v})
	}
	for i, v := range coef.SAR {
		params = append(params, Parameter{Name: fmt.Sprintf("sar%d", i+1), Value: v})
	}
	for i, v := range coef.MA {
		params = append(params, Parameter{Name: fmt.Sprintf("ma%d", i+1), Value: v})
	}
	return params
}

func etsParameters(kind ets.Kind, p ets.Params) []Parameter {
	params := []Parameter{{Name: "alpha", Value: p.Alpha}}
	if kind.HasTrend() {
		params = append(params, Parameter{Name: "beta", Value: p.Beta})
	}
	if kind.HasSeason() {
		params = append(params, Parameter{Name: "gamma", Value: p.Gamma})
	}
	return params
}

// Forecast fits a forecaster of the given method with default options on s and predicts steps
// values. The method is checked first, then the data and then steps.
func (s *Series) Forecast(steps int, method Method) (*Series, error) {
	f, err := NewForecaster(method, nil)
	if err != nil {
		return nil, err
	}
	if err := f.Fit(s); err != nil {
		return nil, err
	}
	return f.Predict(steps)
}
