package stats

import (
	"fmt"
	"math"
)

// CenteredMovingAverage returns the centered moving average of y with the given window. An odd
// window averages the window points equally. An even window uses the 2 x window average which
// gives half weight to the two outermost points so the average stays centered on an observation.
// Positions without a full window are NaN.
func CenteredMovingAverage(y []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("window of %d, %w", window, ErrInvalidWindow)
	}
	n := len(y)
	res := make([]float64, n)
	for i := range res {
		res[i] = math.NaN()
	}

	half := window / 2
	for i := half; i < n-half; i++ {
		var sum float64
		if window%2 == 0 {
			sum = 0.5*y[i-half] + 0.5*y[i+half]
			for j := i - half + 1; j < i+half; j++ {
				sum += y[j]
			}
		} else {
			for j := i - half; j <= i+half; j++ {
				sum += y[j]
			}
		}
		res[i] = sum / float64(window)
	}
	return res, nil
}
