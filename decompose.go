package timeseries

import (
	"fmt"

	"github.com/aouyang1/go-timeseries/decompose"
)

// Names of the components in a decomposition Group
const (
	KeyTrend    = "trend"
	KeySeasonal = "seasonal"
	KeyResidual = "residual"
)

// Decompose splits the series into trend, seasonal and residual components that sum to the
// original values, using the series frequency as the seasonal period. periodic estimates the
// seasonal pattern from the per-phase median of complete cycles instead of the per-phase mean.
//
// The result holds the keys "trend", "seasonal" and "residual" in that order, each sharing the
// timestamps of s. Decomposing a series shorter than two cycles succeeds but is not meaningful.
func (s *Series) Decompose(periodic bool) (*Group, error) {
	freq, ok := s.Frequency()
	if !ok {
		return nil, ErrNoFrequency
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("nothing to decompose, %w", ErrEmptySeries)
	}

	comps, err := decompose.Additive(s.y, &decompose.Options{Period: freq, Periodic: periodic})
	if err != nil {
		return nil, fmt.Errorf("unable to decompose series, %w", err)
	}

	return NewGroup(
		Item{Name: KeyTrend, Series: s.derive(comps.Trend)},
		Item{Name: KeySeasonal, Series: s.derive(comps.Seasonal)},
		Item{Name: KeyResidual, Series: s.derive(comps.Residual)},
	), nil
}
