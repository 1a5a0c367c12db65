package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KPSSCritical5Pct is the 5% critical value of the level stationarity KPSS statistic.
const KPSSCritical5Pct = 0.463

// minKPSSObservations is the smallest sample the KPSS statistic is computed on.
const minKPSSObservations = 3

// KPSSResult is the outcome of a level stationarity test
type KPSSResult struct {
	Statistic  float64 `json:"statistic"`
	Lags       int     `json:"lags"`
	Stationary bool    `json:"stationary"`
}

// KPSS runs the Kwiatkowski-Phillips-Schmidt-Shin test for level stationarity. The null
// hypothesis is stationarity so the series is reported stationary unless the statistic exceeds
// the 5% critical value. The long run variance uses Bartlett weights with
// ceil(12*(n/100)^0.25) lags capped at n-1. A series with no variance is stationary.
func KPSS(y []float64) (*KPSSResult, error) {
	n := len(y)
	if n < minKPSSObservations {
		return nil, fmt.Errorf("kpss needs %d observations, got %d, %w", minKPSSObservations, n, ErrTooFewObservations)
	}

	lags := int(math.Ceil(12 * math.Pow(float64(n)/100.0, 0.25)))
	if lags > n-1 {
		lags = n - 1
	}

	mean := stat.Mean(y, nil)
	res := make([]float64, n)
	copy(res, y)
	floats.AddConst(-mean, res)

	s2 := floats.Dot(res, res) / float64(n)
	for l := 1; l <= lags; l++ {
		cov := floats.Dot(res[l:], res[:n-l]) / float64(n)
		weight := 1.0 - float64(l)/float64(lags+1)
		s2 += 2 * weight * cov
	}

	if s2 <= 1e-12*(1+mean*mean) {
		return &KPSSResult{Lags: lags, Stationary: true}, nil
	}

	cumSum := make([]float64, n)
	floats.CumSum(cumSum, res)
	eta := floats.Dot(cumSum, cumSum)
	statistic := eta / (float64(n) * float64(n) * s2)

	return &KPSSResult{
		Statistic:  statistic,
		Lags:       lags,
		Stationary: statistic <= KPSSCritical5Pct,
	}, nil
}
