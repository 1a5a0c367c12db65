// Package decompose splits a series into trend, seasonal and residual components with classical
// additive decomposition.
package decompose

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/aouyang1/go-timeseries/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoOptions     = errors.New("no decomposition options")
	ErrInvalidPeriod = errors.New("period must be at least 1")
	ErrNoData        = errors.New("no data to decompose")
)

// Options configures an additive decomposition
type Options struct {
	// Period is the number of observations in one seasonal cycle
	Period int `json:"period"`

	// Periodic estimates the seasonal pattern from the per-phase median of complete cycles
	// instead of the per-phase mean of every observation
	Periodic bool `json:"periodic"`
}

// Validate checks that the period is usable
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return nil, ErrNoOptions
	}
	if o.Period < 1 {
		return nil, fmt.Errorf("period of %d, %w", o.Period, ErrInvalidPeriod)
	}
	return o, nil
}

// Components holds the decomposition of a series where Trend + Seasonal + Residual reproduces
// the input at every position
type Components struct {
	Trend    []float64 `json:"trend"`
	Seasonal []float64 `json:"seasonal"`
	Residual []float64 `json:"residual"`
}

// Additive decomposes y into trend, seasonal and residual components.
//
// The trend is the centered moving average of width Period. Positions at the edges without a full
// window take the nearest defined trend value, and a series shorter than the window gets its mean
// as the trend everywhere. The seasonal pattern is estimated per phase from the detrended values,
// centered to sum to zero over a cycle and repeated across the series. Series shorter than two
// cycles decompose without error but the result carries little information.
func Additive(y []float64, opt *Options) (*Components, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	n := len(y)
	if n == 0 {
		return nil, ErrNoData
	}
	if n < 2*opt.Period {
		slog.Debug("decomposing series shorter than two cycles", "points", n, "period", opt.Period)
	}

	trend, first, last, err := movingTrend(y, opt.Period)
	if err != nil {
		return nil, err
	}

	detrended := make([]float64, n)
	floats.SubTo(detrended, y, trend)

	var pattern []float64
	if opt.Periodic {
		pattern = medianPattern(detrended, opt.Period)
	} else {
		pattern = meanPattern(detrended, opt.Period, first, last)
	}
	floats.AddConst(-stat.Mean(pattern, nil), pattern)

	seasonal := make([]float64, n)
	for i := range seasonal {
		seasonal[i] = pattern[i%opt.Period]
	}

	residual := make([]float64, n)
	floats.SubTo(residual, detrended, seasonal)

	return &Components{
		Trend:    trend,
		Seasonal: seasonal,
		Residual: residual,
	}, nil
}

// Trend returns the centered moving average of y with the edges filled by the nearest defined
// value. If no position has a full window the mean of y is returned at every position.
func Trend(y []float64, period int) ([]float64, error) {
	trend, _, _, err := movingTrend(y, period)
	return trend, err
}

// movingTrend also returns the first and last positions with a full window, both -1 when there
// are none.
func movingTrend(y []float64, period int) ([]float64, int, int, error) {
	if len(y) == 0 {
		return nil, -1, -1, ErrNoData
	}
	trend, err := stats.CenteredMovingAverage(y, period)
	if err != nil {
		return nil, -1, -1, fmt.Errorf("unable to compute moving average, %w", err)
	}

	first, last := -1, -1
	for i, t := range trend {
		if math.IsNaN(t) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	if first < 0 {
		mean := stat.Mean(y, nil)
		for i := range trend {
			trend[i] = mean
		}
		return trend, first, last, nil
	}

	for i := 0; i < first; i++ {
		trend[i] = trend[first]
	}
	for i := last + 1; i < len(trend); i++ {
		trend[i] = trend[last]
	}
	return trend, first, last, nil
}

// meanPattern averages each phase over [first, last], the positions whose trend was estimated
// from a full window. A phase with no such position, or a negative first, uses every position of
// that phase.
func meanPattern(detrended []float64, period, first, last int) []float64 {
	sums := make([]float64, period)
	counts := make([]float64, period)
	if first >= 0 {
		for i := first; i <= last; i++ {
			sums[i%period] += detrended[i]
			counts[i%period]++
		}
	}
	for phase := range sums {
		if counts[phase] > 0 {
			sums[phase] /= counts[phase]
			continue
		}
		var n float64
		for i := phase; i < len(detrended); i += period {
			sums[phase] += detrended[i]
			n++
		}
		if n > 0 {
			sums[phase] /= n
		}
	}
	return sums
}

// medianPattern uses only the complete cycles unless there are none.
func medianPattern(detrended []float64, period int) []float64 {
	usable := (len(detrended) / period) * period
	if usable == 0 {
		usable = len(detrended)
	}

	phases := make([][]float64, period)
	for i := 0; i < usable; i++ {
		phases[i%period] = append(phases[i%period], detrended[i])
	}

	pattern := make([]float64, period)
	for i, vals := range phases {
		pattern[i] = median(vals)
	}
	return pattern
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
