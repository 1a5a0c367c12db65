package linearmodel

import (
	"fmt"
	"math"

	mat_ "github.com/aouyang1/go-timeseries/mat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PolynomialFeatures returns the row major design matrix [u, u^2, ..., u^order] without the
// constant column, which is added by the regression.
func PolynomialFeatures(u []float64, order int) [][]float64 {
	data := make([][]float64, len(u))
	for i, val := range u {
		row := make([]float64, order)
		pow := 1.0
		for j := 0; j < order; j++ {
			pow *= val
			row[j] = pow
		}
		data[i] = row
	}
	return data
}

// Polynomial fits y = b0 + b1*u + ... + bk*u^k by least squares where u is x rescaled onto
// [-1, 1]. The rescaling keeps the Vandermonde matrix well conditioned for large x such as
// millisecond timestamps.
type Polynomial struct {
	order  int
	center float64
	scale  float64

	intercept float64
	coef      []float64
	trained   bool
}

// NewPolynomial returns an untrained polynomial regression of the given order. Order 0 is the
// constant (mean) fit.
func NewPolynomial(order int) (*Polynomial, error) {
	if order < 0 {
		return nil, fmt.Errorf("order %d, %w", order, ErrNegativeOrder)
	}
	return &Polynomial{order: order}, nil
}

// MinObservations is the smallest number of points that determines a polynomial of the given
// order.
func MinObservations(order int) int {
	return order + 1
}

// Order returns the polynomial degree.
func (p *Polynomial) Order() int {
	return p.order
}

// Fit estimates the polynomial coefficients from x and y which must be of equal length.
func (p *Polynomial) Fit(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has %d points and y has %d, %w", len(x), len(y), ErrTargetLenMismatch)
	}
	if len(x) == 0 {
		return ErrNoObservations
	}
	if len(x) < MinObservations(p.order) {
		return fmt.Errorf("%d observations for order %d, %w", len(x), p.order, ErrUnderdetermined)
	}

	minX, maxX := floats.Min(x), floats.Max(x)
	p.center = (maxX + minX) / 2.0
	p.scale = (maxX - minX) / 2.0
	if p.scale == 0 {
		p.scale = 1.0
	}

	if p.order == 0 {
		p.intercept = stat.Mean(y, nil)
		p.coef = nil
		p.trained = true
		return nil
	}

	features, err := mat_.NewDenseFromArray(PolynomialFeatures(p.rescale(x), p.order))
	if err != nil {
		return err
	}
	target, err := mat_.NewColumn(y)
	if err != nil {
		return err
	}

	ols, err := NewOLSRegression(NewDefaultOLSOptions())
	if err != nil {
		return err
	}
	if err := ols.Fit(features, target); err != nil {
		return fmt.Errorf("unable to fit polynomial of order %d, %w", p.order, err)
	}
	p.intercept = ols.Intercept()
	p.coef = ols.Coef()
	p.trained = true
	return nil
}

// Predict evaluates the fitted polynomial at every x.
func (p *Polynomial) Predict(x []float64) ([]float64, error) {
	if !p.trained {
		return nil, ErrUntrained
	}
	u := p.rescale(x)
	res := make([]float64, len(u))
	for i, val := range u {
		// horner
		acc := 0.0
		for j := len(p.coef) - 1; j >= 0; j-- {
			acc = (acc + p.coef[j]) * val
		}
		res[i] = acc + p.intercept
	}
	return res, nil
}

// Coefficients returns the intercept followed by the coefficients of u, u^2, ... in the
// rescaled basis.
func (p *Polynomial) Coefficients() []float64 {
	c := make([]float64, 0, len(p.coef)+1)
	c = append(c, p.intercept)
	return append(c, p.coef...)
}

// Slope returns dy/dx of a linear fit in the original units of x. It is NaN for other orders.
func (p *Polynomial) Slope() float64 {
	if p.order != 1 || len(p.coef) != 1 {
		return math.NaN()
	}
	return p.coef[0] / p.scale
}

func (p *Polynomial) rescale(x []float64) []float64 {
	u := make([]float64, len(x))
	for i, val := range x {
		u[i] = (val - p.center) / p.scale
	}
	return u
}
