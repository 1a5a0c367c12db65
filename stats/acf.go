package stats

import (
	"gonum.org/v1/gonum/stat"
)

// ACF returns the sample autocorrelation of y for lags 0 through maxLag. maxLag is capped at
// len(y)-1. A constant series has no defined autocorrelation and returns nil.
func ACF(y []float64, maxLag int) []float64 {
	n := len(y)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(y, nil)
	denom := 0.0
	for _, v := range y {
		denom += (v - mean) * (v - mean)
	}
	if denom == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (y[i] - mean) * (y[i-k] - mean)
		}
		acf[k] = sum / denom
	}
	return acf
}
