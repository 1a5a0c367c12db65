package decompose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(pattern []float64, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = pattern[i%len(pattern)]
	}
	return res
}

func TestOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt *Options
		err error
	}{
		"nil":         {nil, ErrNoOptions},
		"zero period": {&Options{Period: 0}, ErrInvalidPeriod},
		"valid":       {&Options{Period: 4, Periodic: true}, nil},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.opt, opt)
		})
	}
}

func TestAdditive(t *testing.T) {
	tol := 1e-9

	linearSeasonal := make([]float64, 12)
	for i := range linearSeasonal {
		linearSeasonal[i] = 2*float64(i) + []float64{3, -1, -2}[i%3]
	}

	testData := map[string]struct {
		y        []float64
		opt      *Options
		trend    []float64
		seasonal []float64
		residual []float64
		err      error
	}{
		"alternating period 2": {
			y:        []float64{100, 200, 100, 200, 100},
			opt:      &Options{Period: 2},
			trend:    []float64{150, 150, 150, 150, 150},
			seasonal: []float64{-50, 50, -50, 50, -50},
			residual: []float64{0, 0, 0, 0, 0},
		},
		"alternating period 2 periodic": {
			y:        []float64{100, 200, 100, 200, 100},
			opt:      &Options{Period: 2, Periodic: true},
			trend:    []float64{150, 150, 150, 150, 150},
			seasonal: []float64{-50, 50, -50, 50, -50},
			residual: []float64{0, 0, 0, 0, 0},
		},
		"linear with period 3": {
			y:        linearSeasonal,
			opt:      &Options{Period: 3},
			trend:    []float64{2, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 20},
			seasonal: repeat([]float64{3, -1, -2}, 12),
			residual: []float64{-2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		},
		"linear with period 3 periodic": {
			y:        linearSeasonal,
			opt:      &Options{Period: 3, Periodic: true},
			trend:    []float64{2, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 20},
			seasonal: repeat([]float64{3, -1, -2}, 12),
			residual: []float64{-2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		},
		"shorter than window": {
			y:        []float64{1, 5, 3},
			opt:      &Options{Period: 4},
			trend:    []float64{3, 3, 3},
			seasonal: []float64{-2, 2, 0},
		},
		"period 1": {
			y:        []float64{1, 4, 2},
			opt:      &Options{Period: 1},
			trend:    []float64{1, 4, 2},
			seasonal: []float64{0, 0, 0},
			residual: []float64{0, 0, 0},
		},
		"empty": {
			opt: &Options{Period: 2},
			err: ErrNoData,
		},
		"invalid period": {
			y:   []float64{1, 2},
			opt: &Options{Period: -1},
			err: ErrInvalidPeriod,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Additive(td.y, td.opt)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			assert.InDeltaSlice(t, td.trend, res.Trend, tol)
			assert.InDeltaSlice(t, td.seasonal, res.Seasonal, tol)
			if td.residual != nil {
				assert.InDeltaSlice(t, td.residual, res.Residual, tol)
			}

			for i := range td.y {
				assert.InDelta(t, td.y[i], res.Trend[i]+res.Seasonal[i]+res.Residual[i], tol)
			}
		})
	}
}

func TestAdditiveModesAgree(t *testing.T) {
	tol := 1e-9
	pattern := []float64{5, -1, -3, -1}

	y := make([]float64, 16)
	for i := range y {
		y[i] = 2*float64(i) + pattern[i%4]
	}

	mean, err := Additive(y, &Options{Period: 4})
	require.Nil(t, err)
	periodic, err := Additive(y, &Options{Period: 4, Periodic: true})
	require.Nil(t, err)

	assert.InDeltaSlice(t, repeat(pattern, 16), mean.Seasonal, tol)
	assert.InDeltaSlice(t, mean.Seasonal, periodic.Seasonal, tol)

	// positions with a full moving average window
	for i := 2; i < 14; i++ {
		assert.InDelta(t, 0.0, mean.Residual[i], tol)
	}
}

func TestMeanPatternPhaseWithoutWindow(t *testing.T) {
	// only position 1 has a full window so phase 0 falls back to every position
	res := meanPattern([]float64{1, 4, 3}, 2, 1, 1)
	assert.InDeltaSlice(t, []float64{2, 4}, res, 1e-9)

	res = meanPattern([]float64{1, 4, 3}, 2, -1, -1)
	assert.InDeltaSlice(t, []float64{2, 4}, res, 1e-9)
}

func TestTrendNoData(t *testing.T) {
	_, err := Trend(nil, 3)
	assert.ErrorIs(t, err, ErrNoData)
}
