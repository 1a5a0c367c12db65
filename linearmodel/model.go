// Package linearmodel contains the least squares regressions used to estimate polynomial trends
// and autoregressive coefficients.
package linearmodel

import "gonum.org/v1/gonum/mat"

// Model is a linear regression that can be fit against a design matrix and a target column.
type Model interface {
	Fit(x, y mat.Matrix) error
	Predict(x mat.Matrix) ([]float64, error)
	Score(x, y mat.Matrix) (float64, error)
	Intercept() float64
	Coef() []float64
}

var _ Model = (*OLSRegression)(nil)
