package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// SeasonalStrengthThreshold is the strength at or above which a series is treated as seasonal
// when choosing the seasonal differencing order.
const SeasonalStrengthThreshold = 0.64

// SeasonalStrength measures how much of the detrended variance of y is explained by a fixed
// additive pattern with the given period, 1 - Var(remainder)/Var(seasonal + remainder),
// clamped to [0, 1]. The trend is the centered moving average of width period and only
// positions with a full window take part. At least two full cycles are required.
func SeasonalStrength(y []float64, period int) (float64, error) {
	if period < 2 {
		return 0, fmt.Errorf("period of %d, %w", period, ErrInvalidPeriod)
	}
	if len(y) < 2*period {
		return 0, fmt.Errorf("seasonal strength needs %d observations, got %d, %w", 2*period, len(y), ErrTooFewObservations)
	}

	trend, err := CenteredMovingAverage(y, period)
	if err != nil {
		return 0, err
	}

	sums := make([]float64, period)
	counts := make([]float64, period)
	detrended := make([]float64, 0, len(y))
	phases := make([]int, 0, len(y))
	for i, t := range trend {
		if math.IsNaN(t) {
			continue
		}
		d := y[i] - t
		detrended = append(detrended, d)
		phases = append(phases, i%period)
		sums[i%period] += d
		counts[i%period]++
	}

	pattern := make([]float64, period)
	for i := range pattern {
		if counts[i] > 0 {
			pattern[i] = sums[i] / counts[i]
		}
	}
	center := stat.Mean(pattern, nil)

	remainder := make([]float64, len(detrended))
	for i, d := range detrended {
		remainder[i] = d - (pattern[phases[i]] - center)
	}

	total := stat.Variance(detrended, nil)
	if total == 0 || math.IsNaN(total) {
		return 0, nil
	}
	strength := 1 - stat.Variance(remainder, nil)/total
	return math.Max(0, math.Min(1, strength)), nil
}
