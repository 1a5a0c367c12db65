package timeseries

import (
	"fmt"

	"github.com/aouyang1/go-timeseries/linearmodel"
)

// linearTrend extends a straight line fit over the timestamps of the history
type linearTrend struct {
	x        []float64
	interval int64
	poly     *linearmodel.Polynomial
}

func newLinearTrend(x []int64, interval int64) *linearTrend {
	xf := make([]float64, len(x))
	for i, v := range x {
		xf[i] = float64(v)
	}
	return &linearTrend{x: xf, interval: interval}
}

func (l *linearTrend) Fit(y []float64) error {
	if len(y) != len(l.x) {
		return fmt.Errorf("%d timestamps and %d values, %w", len(l.x), len(y), ErrLengthMismatch)
	}
	poly, err := linearmodel.NewPolynomial(int(Linear))
	if err != nil {
		return err
	}
	if err := poly.Fit(l.x, y); err != nil {
		return fmt.Errorf("unable to fit linear trend, %w", err)
	}
	l.poly = poly
	return nil
}

func (l *linearTrend) Predict(steps int) ([]float64, error) {
	if l.poly == nil {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d, %w", steps, ErrInvalidSteps)
	}
	last := l.x[len(l.x)-1]
	future := make([]float64, steps)
	for k := range future {
		future[k] = last + float64(int64(k+1)*l.interval)
	}
	return l.poly.Predict(future)
}

func (l *linearTrend) fitted() []float64 {
	if l.poly == nil {
		return nil
	}
	res, err := l.poly.Predict(l.x)
	if err != nil {
		return nil
	}
	return res
}
