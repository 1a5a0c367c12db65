package timeseries

import (
	"time"

	"github.com/aouyang1/go-timeseries/event"
	"github.com/aouyang1/go-timeseries/stats"
	"github.com/aouyang1/go-timeseries/timedataset"
	"github.com/rickar/cal/v2"
)

// HolidayMask flags the observations that fall on the observed date of any of the holidays, with
// the day widened by durBefore and durAfter. Dates are evaluated in UTC. Masked observations can be
// dropped or adjusted before fitting.
func (s *Series) HolidayMask(durBefore, durAfter time.Duration, hols ...*cal.Holiday) []bool {
	if s.Len() == 0 {
		return []bool{}
	}
	// widened so holidays just outside the series still mask through their buffers
	ts := timedataset.Timestamps(s.x)
	start := ts.StartTime().UTC().Truncate(24 * time.Hour).Add(-24*time.Hour - durAfter)
	end := ts.EndTime().UTC().Add(durBefore)

	var events []event.Event
	for _, hol := range hols {
		events = append(events, event.Holiday(hol, start, end, durBefore, durAfter)...)
	}
	return event.Mask(s.x, events)
}

// Autocorrelation returns the sample autocorrelation of the values for lags 0 through maxLag,
// capped at Len()-1. It is nil for a constant or empty series.
func (s *Series) Autocorrelation(maxLag int) []float64 {
	return stats.ACF(s.y, maxLag)
}

// Outliers returns the indices of the values on or beyond the Tukey fences built from the lower and
// upper percentiles widened by tukey times their range
func (s *Series) Outliers(lower, upper, tukey float64) []int {
	return stats.DetectOutliers(s.y, lower, upper, tukey)
}
