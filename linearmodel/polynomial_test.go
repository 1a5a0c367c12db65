package linearmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomialFeatures(t *testing.T) {
	res := PolynomialFeatures([]float64{-1, 0.5, 2}, 3)
	expected := [][]float64{
		{-1, 1, -1},
		{0.5, 0.25, 0.125},
		{2, 4, 8},
	}
	assert.Equal(t, expected, res)
}

func TestPolynomial(t *testing.T) {
	tol := 1e-6
	testData := map[string]struct {
		order    int
		x        []float64
		y        []float64
		xPred    []float64
		expected []float64
		err      error
	}{
		"constant": {
			order:    0,
			x:        []float64{1, 2, 3},
			y:        []float64{32, 55, 40},
			xPred:    []float64{1, 2, 3},
			expected: []float64{42.333333, 42.333333, 42.333333},
		},
		"linear": {
			order:    1,
			x:        []float64{1, 2, 3},
			y:        []float64{32, 55, 40},
			xPred:    []float64{1, 2, 3, 4},
			expected: []float64{38.333333, 42.333333, 46.333333, 50.333333},
		},
		"quadratic exact": {
			order:    2,
			x:        []float64{0, 1, 2, 3, 4},
			y:        []float64{0, 1, 4, 9, 16},
			xPred:    []float64{5, -1},
			expected: []float64{25, 1},
		},
		"cubic exact": {
			order:    3,
			x:        []float64{-2, -1, 0, 1, 2, 3},
			y:        []float64{-8, -1, 0, 1, 8, 27},
			xPred:    []float64{4},
			expected: []float64{64},
		},
		"millisecond timestamps": {
			order:    1,
			x:        []float64{1.7e12, 1.7e12 + 6e4, 1.7e12 + 12e4, 1.7e12 + 18e4},
			y:        []float64{3, 5, 7, 9},
			xPred:    []float64{1.7e12 + 24e4},
			expected: []float64{11},
		},
		"too few points": {
			order: 2,
			x:     []float64{1, 2},
			y:     []float64{1, 2},
			err:   ErrUnderdetermined,
		},
		"no points": {
			order: 1,
			err:   ErrNoObservations,
		},
		"length mismatch": {
			order: 1,
			x:     []float64{1, 2, 3},
			y:     []float64{1, 2},
			err:   ErrTargetLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			p, err := NewPolynomial(td.order)
			require.Nil(t, err)

			err = p.Fit(td.x, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			res, err := p.Predict(td.xPred)
			require.Nil(t, err)
			assert.InDeltaSlice(t, td.expected, res, tol)
			assert.Len(t, p.Coefficients(), td.order+1)
		})
	}
}

func TestPolynomialSlope(t *testing.T) {
	p, err := NewPolynomial(1)
	require.Nil(t, err)
	require.Nil(t, p.Fit([]float64{1000, 2000, 3000}, []float64{1, 3, 5}))
	assert.InDelta(t, 0.002, p.Slope(), 1e-12)

	q, err := NewPolynomial(2)
	require.Nil(t, err)
	assert.True(t, math.IsNaN(q.Slope()))
}

func TestPolynomialErrors(t *testing.T) {
	_, err := NewPolynomial(-1)
	assert.ErrorIs(t, err, ErrNegativeOrder)

	p, err := NewPolynomial(1)
	require.Nil(t, err)
	_, err = p.Predict([]float64{1})
	assert.ErrorIs(t, err, ErrUntrained)
}
