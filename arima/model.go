// Package arima fits seasonal ARIMA models by conditional least squares and selects their order
// automatically.
package arima

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-timeseries/linearmodel"
	mat_ "github.com/aouyang1/go-timeseries/mat"
	"github.com/aouyang1/go-timeseries/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// unitRootTolerance rejects coefficient sums that reach one up to rounding.
const unitRootTolerance = 1e-8

// Coefficients are the estimated parameters of a fitted model
type Coefficients struct {
	Intercept float64   `json:"intercept"`
	AR        []float64 `json:"ar,omitempty"`
	SAR       []float64 `json:"seasonal_ar,omitempty"`
	MA        []float64 `json:"ma,omitempty"`
}

// Model is an ARIMA model of a fixed order
type Model struct {
	order Order
	coef  Coefficients

	lags   []int
	stages [][]float64

	// w is the fully differenced series and e the conditional residuals aligned with it
	w      []float64
	e      []float64
	start  int
	sigma2 float64
	ic     stats.InformationCriteria
	fitted bool
}

// New returns an unfitted model of the given order
func New(order Order) (*Model, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return &Model{order: order, lags: order.lags()}, nil
}

// Order returns the model specification
func (m *Model) Order() Order {
	return m.order
}

// Coefficients returns a copy of the fitted parameters
func (m *Model) Coefficients() Coefficients {
	return Coefficients{
		Intercept: m.coef.Intercept,
		AR:        append([]float64(nil), m.coef.AR...),
		SAR:       append([]float64(nil), m.coef.SAR...),
		MA:        append([]float64(nil), m.coef.MA...),
	}
}

// Criteria returns the log likelihood and information criteria of the fit
func (m *Model) Criteria() stats.InformationCriteria {
	return m.ic
}

// Variance returns the residual variance of the fit
func (m *Model) Variance() float64 {
	return m.sigma2
}

// numCoef counts the estimated mean parameters
func (m *Model) numCoef() int {
	k := m.order.P + m.order.SP + m.order.Q
	if m.order.hasConstant() {
		k++
	}
	return k
}

// Fit estimates the coefficients on y by the Hannan-Rissanen procedure. Moving average orders
// first fit a long autoregression whose residuals stand in for the unobserved innovations, then
// every coefficient is estimated in one least squares regression on lagged values and lagged
// innovations. Residuals are then recomputed recursively conditional on zero pre-sample
// innovations.
func (m *Model) Fit(y []float64) error {
	m.fitted = false
	if len(y) == 0 {
		return fmt.Errorf("no observations, %w", ErrInsufficientData)
	}

	history := make([]float64, len(y))
	copy(history, y)
	m.stages = differenceStages(history, m.lags)
	m.w = m.stages[len(m.stages)-1]
	nw := len(m.w)
	if nw == 0 {
		return fmt.Errorf("%d observations for %s, %w", len(y), m.order, ErrInsufficientData)
	}

	p, sp, q, period := m.order.P, m.order.SP, m.order.Q, m.order.M
	arStart := max(p, sp*period)

	var innovations []float64
	regStart := arStart
	if q > 0 {
		longOrder := min(max(p, q)+2, (nw-2)/2)
		if longOrder < 1 {
			return fmt.Errorf("%d differenced observations for %s, %w", nw, m.order, ErrInsufficientData)
		}
		var err error
		innovations, err = longAR(m.w, longOrder)
		if err != nil {
			return err
		}
		regStart = max(arStart, longOrder+q)
	}

	rows := nw - regStart
	if rows < 1 || rows < m.numCoef() {
		return fmt.Errorf("%d usable rows for %d coefficients of %s, %w", max(rows, 0), m.numCoef(), m.order, ErrInsufficientData)
	}

	if err := m.regress(regStart, innovations); err != nil {
		return err
	}

	if !withinUnitBound(m.coef.AR, m.coef.SAR) {
		return fmt.Errorf("%s, %w", m.order, ErrNonStationary)
	}
	if !withinUnitBound(m.coef.MA) {
		return fmt.Errorf("%s, %w", m.order, ErrNonInvertible)
	}

	m.start = arStart
	m.e = make([]float64, nw)
	for t := arStart; t < nw; t++ {
		m.e[t] = m.w[t] - m.predictAt(m.w, m.e, t)
	}

	resid := m.e[arStart:]
	sse := floats.Dot(resid, resid)
	m.sigma2 = sse / float64(len(resid))
	ic, err := stats.NewInformationCriteria(sse, len(resid), m.numCoef()+1)
	if err != nil {
		return fmt.Errorf("unable to compute information criteria, %w", err)
	}
	m.ic = ic
	m.fitted = true
	return nil
}

// regress estimates the coefficients by least squares on rows start through len(w)-1.
func (m *Model) regress(start int, innovations []float64) error {
	p, sp, q, period := m.order.P, m.order.SP, m.order.Q, m.order.M
	nw := len(m.w)
	nReg := p + sp + q

	coef := Coefficients{
		AR:  make([]float64, p),
		SAR: make([]float64, sp),
		MA:  make([]float64, q),
	}

	if nReg == 0 {
		if m.order.hasConstant() {
			coef.Intercept = stat.Mean(m.w[start:], nil)
		}
		m.coef = coef
		return nil
	}

	design := make([][]float64, 0, nw-start)
	for t := start; t < nw; t++ {
		row := make([]float64, 0, nReg)
		for i := 1; i <= p; i++ {
			row = append(row, m.w[t-i])
		}
		for j := 1; j <= sp; j++ {
			row = append(row, m.w[t-j*period])
		}
		for j := 1; j <= q; j++ {
			row = append(row, innovations[t-j])
		}
		design = append(design, row)
	}

	x, err := mat_.NewDenseFromArray(design)
	if err != nil {
		return err
	}
	target, err := mat_.NewColumn(m.w[start:])
	if err != nil {
		return err
	}
	ols, err := linearmodel.NewOLSRegression(&linearmodel.OLSOptions{FitIntercept: m.order.hasConstant()})
	if err != nil {
		return err
	}
	if err := ols.Fit(x, target); err != nil {
		return fmt.Errorf("unable to fit %s, %w", m.order, err)
	}

	c := ols.Coef()
	coef.Intercept = ols.Intercept()
	copy(coef.AR, c[:p])
	copy(coef.SAR, c[p:p+sp])
	copy(coef.MA, c[p+sp:])
	m.coef = coef
	return nil
}

// predictAt is the one step prediction of w[t] given w and e before t.
func (m *Model) predictAt(w, e []float64, t int) float64 {
	pred := m.coef.Intercept
	for i, phi := range m.coef.AR {
		pred += phi * w[t-i-1]
	}
	for j, phi := range m.coef.SAR {
		pred += phi * w[t-(j+1)*m.order.M]
	}
	for j, theta := range m.coef.MA {
		if t-j-1 >= 0 {
			pred += theta * e[t-j-1]
		}
	}
	return pred
}

// Predict forecasts the next steps values of the original series. Future innovations are zero.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d, %w", steps, ErrInvalidSteps)
	}

	nw := len(m.w)
	w := make([]float64, nw, nw+steps)
	copy(w, m.w)
	e := make([]float64, nw+steps)
	copy(e, m.e)

	for t := nw; t < nw+steps; t++ {
		w = append(w, m.predictAt(w, e, t))
	}
	return integrate(w[nw:], m.stages, m.lags), nil
}

// Residuals returns the conditional residuals aligned with the original series. Positions
// consumed by differencing or by the autoregressive start up are NaN.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	n := len(m.stages[0])
	offset := n - len(m.w)
	res := make([]float64, n)
	for i := range res {
		res[i] = math.NaN()
	}
	for t := m.start; t < len(m.e); t++ {
		res[t+offset] = m.e[t]
	}
	return res
}

// Fitted returns the in-sample one step predictions of the original series with NaN where no
// residual is defined.
func (m *Model) Fitted() []float64 {
	if !m.fitted {
		return nil
	}
	y := m.stages[0]
	res := m.Residuals()
	for i := range res {
		if !math.IsNaN(res[i]) {
			res[i] = y[i] - res[i]
		}
	}
	return res
}

// longAR fits an autoregression of the given order with a constant and returns its residuals
// aligned with w, zero for the first order positions.
func longAR(w []float64, order int) ([]float64, error) {
	design := make([][]float64, 0, len(w)-order)
	for t := order; t < len(w); t++ {
		row := make([]float64, order)
		for i := 1; i <= order; i++ {
			row[i-1] = w[t-i]
		}
		design = append(design, row)
	}
	x, err := mat_.NewDenseFromArray(design)
	if err != nil {
		return nil, err
	}
	target, err := mat_.NewColumn(w[order:])
	if err != nil {
		return nil, err
	}
	ols, err := linearmodel.NewOLSRegression(nil)
	if err != nil {
		return nil, err
	}
	if err := ols.Fit(x, target); err != nil {
		return nil, fmt.Errorf("unable to fit long autoregression of order %d, %w", order, err)
	}
	pred, err := ols.Predict(x)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(w))
	for t := order; t < len(w); t++ {
		res[t] = w[t] - pred[t-order]
	}
	return res, nil
}

// withinUnitBound reports whether the absolute coefficients sum to less than one. This bounds
// every root of the lag polynomial outside the unit circle, so it implies stationarity of an
// autoregression and invertibility of a moving average. It is conservative: some stationary
// fits such as AR coefficients (1.2, -0.5) are rejected and the search moves on to other orders.
func withinUnitBound(coefs ...[]float64) bool {
	var sum float64
	for _, c := range coefs {
		sum += sumAbs(c)
	}
	return sum < 1-unitRootTolerance
}

func sumAbs(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += math.Abs(v)
	}
	return sum
}
