package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNaNSlice(t *testing.T, expected, actual []float64, tol float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "index %d expected NaN, got %f", i, actual[i])
			continue
		}
		assert.InDelta(t, expected[i], actual[i], tol, "index %d", i)
	}
}

func TestScores(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  *Scores
		err       error
	}{
		"perfect": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  &Scores{MSE: 0, MAPE: 0, R2: 1},
		},
		"offset": {
			predicted: []float64{2, 3, 4},
			actual:    []float64{1, 2, 4},
			expected:  &Scores{MSE: 2.0 / 3.0, MAPE: 1.5 / 3.0, R2: 1 - 2.0/(14.0/3.0)},
		},
		"skip nan": {
			predicted: []float64{1, math.NaN(), 3},
			actual:    []float64{1, 2, 3},
			expected:  &Scores{MSE: 0, MAPE: 0, R2: 1},
		},
		"length mismatch": {
			predicted: []float64{1, 2},
			actual:    []float64{1, 2, 3},
			err:       ErrResLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := NewScores(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected.MSE, res.MSE, 1e-9)
			assert.InDelta(t, td.expected.MAPE, res.MAPE, 1e-9)
			assert.InDelta(t, td.expected.R2, res.R2, 1e-9)
		})
	}
}

func TestACF(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		maxLag   int
		expected []float64
	}{
		"linear": {
			y:        []float64{1, 2, 3, 4, 5},
			maxLag:   2,
			expected: []float64{1, 0.4, -0.1},
		},
		"capped lag": {
			y:        []float64{1, 3},
			maxLag:   5,
			expected: []float64{1, -0.5},
		},
		"constant": {
			y:      []float64{2, 2, 2},
			maxLag: 1,
		},
		"empty": {
			maxLag: 1,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := ACF(td.y, td.maxLag)
			if td.expected == nil {
				assert.Nil(t, res)
				return
			}
			assert.InDeltaSlice(t, td.expected, res, 1e-9)
		})
	}
}

func TestKPSS(t *testing.T) {
	alternating := make([]float64, 100)
	ramp := make([]float64, 100)
	constant := make([]float64, 20)
	for i := range alternating {
		alternating[i] = 1
		if i%2 == 1 {
			alternating[i] = -1
		}
		ramp[i] = float64(i)
	}
	for i := range constant {
		constant[i] = 7
	}

	testData := map[string]struct {
		y          []float64
		statistic  float64
		stationary bool
		err        error
	}{
		"alternating": {y: alternating, statistic: 0.065, stationary: true},
		"ramp":        {y: ramp, statistic: 0.883048, stationary: false},
		"constant":    {y: constant, statistic: 0, stationary: true},
		"too few":     {y: []float64{1, 2}, err: ErrTooFewObservations},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := KPSS(td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.statistic, res.Statistic, 1e-5)
			assert.Equal(t, td.stationary, res.Stationary)
		})
	}
}

func TestCenteredMovingAverage(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		y        []float64
		window   int
		expected []float64
		err      error
	}{
		"odd window": {
			y:        []float64{1, 2, 3, 4, 5},
			window:   3,
			expected: []float64{nan, 2, 3, 4, nan},
		},
		"even window": {
			y:        []float64{100, 200, 100, 200, 100},
			window:   2,
			expected: []float64{nan, 150, 150, 150, nan},
		},
		"even window linear": {
			y:        []float64{0, 1, 2, 3, 4, 5, 6, 7},
			window:   4,
			expected: []float64{nan, nan, 2, 3, 4, 5, nan, nan},
		},
		"window longer than series": {
			y:        []float64{1, 2},
			window:   4,
			expected: []float64{nan, nan},
		},
		"identity": {
			y:        []float64{1, 5},
			window:   1,
			expected: []float64{1, 5},
		},
		"invalid window": {
			y:      []float64{1, 2},
			window: 0,
			err:    ErrInvalidWindow,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := CenteredMovingAverage(td.y, td.window)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assertNaNSlice(t, td.expected, res, 1e-9)
		})
	}
}

func TestSeasonalStrength(t *testing.T) {
	wave := make([]float64, 40)
	line := make([]float64, 40)
	pattern := []float64{0, 10, 0, -10}
	for i := range wave {
		wave[i] = pattern[i%4] + 0.5*float64(i)
		line[i] = 3 * float64(i)
	}

	strength, err := SeasonalStrength(wave, 4)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, strength, 1e-9)
	assert.GreaterOrEqual(t, strength, SeasonalStrengthThreshold)

	strength, err = SeasonalStrength(line, 4)
	require.Nil(t, err)
	assert.Equal(t, 0.0, strength)

	_, err = SeasonalStrength(wave[:7], 4)
	assert.ErrorIs(t, err, ErrTooFewObservations)

	_, err = SeasonalStrength(wave, 1)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestInformationCriteria(t *testing.T) {
	ic, err := NewInformationCriteria(4, 4, 2)
	require.Nil(t, err)
	assert.InDelta(t, -5.675754, ic.LogLik, 1e-6)
	assert.InDelta(t, 15.351508, ic.AIC, 1e-6)
	assert.InDelta(t, 27.351508, ic.AICc, 1e-6)
	assert.InDelta(t, 14.124097, ic.BIC, 1e-6)
	assert.Equal(t, ic.AIC, ic.Value(AIC))
	assert.Equal(t, ic.BIC, ic.Value(BIC))
	assert.Equal(t, ic.AICc, ic.Value(AICc))

	ic, err = NewInformationCriteria(4, 3, 2)
	require.Nil(t, err)
	assert.True(t, math.IsInf(ic.AICc, 1))

	ic, err = NewInformationCriteria(0, 10, 1)
	require.Nil(t, err)
	assert.False(t, math.IsInf(ic.LogLik, 0))

	_, err = NewInformationCriteria(1, 0, 1)
	assert.ErrorIs(t, err, ErrTooFewObservations)

	_, err = NewInformationCriteria(1, 5, 0)
	assert.ErrorIs(t, err, ErrNonPositiveParameters)
}

func TestParseCriterion(t *testing.T) {
	testData := map[string]struct {
		name     string
		expected Criterion
		err      error
	}{
		"aicc":    {name: "AICc", expected: AICc},
		"aic":     {name: "aic", expected: AIC},
		"bic":     {name: "BIC", expected: BIC},
		"unknown": {name: "hqic", err: ErrUnknownCriterion},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			c, err := ParseCriterion(td.name)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, c)
			assert.Nil(t, c.Validate())
		})
	}
	assert.ErrorIs(t, Criterion(42).Validate(), ErrUnknownCriterion)
}

func TestDetectOutliers(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		expected []int
	}{
		"single spike": {
			y:        []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100},
			expected: []int{9},
		},
		"no outliers": {
			y:        []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			expected: nil,
		},
		"constant": {
			y:        []float64{3, 3, 3},
			expected: nil,
		},
		"empty": {},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := DetectOutliers(td.y, 0.25, 0.75, 1.5)
			assert.Equal(t, td.expected, res)
		})
	}
}
