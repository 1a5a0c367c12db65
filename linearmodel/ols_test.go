package linearmodel

import (
	"testing"

	mat_ "github.com/aouyang1/go-timeseries/mat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestOLSOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *OLSOptions
		err      error
		expected *OLSOptions
	}{
		"nil": {nil, nil, NewDefaultOLSOptions()},
		"valid": {
			&OLSOptions{
				FitIntercept: false,
			}, nil,
			&OLSOptions{
				FitIntercept: false,
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestOLSRegression(t *testing.T) {
	tol := 1e-5
	testData := map[string]struct {
		x         [][]float64
		y         []float64
		opt       *OLSOptions
		intercept float64
		coef      []float64
		err       error
	}{
		"ols model intercept": {
			x: [][]float64{
				{0, 0},
				{3, 5},
				{9, 20},
				{12, 6},
				{15, 10},
			},
			y:         []float64{2, 31, 109, 62, 87},
			intercept: 2.0,
			coef:      []float64{3.0, 4.0},
		},
		"ols model no intercept": {
			x: [][]float64{
				{1, 0, 0},
				{1, 3, 5},
				{1, 9, 20},
				{1, 12, 6},
				{1, 15, 10},
			},
			y: []float64{2, 31, 109, 62, 87},
			opt: &OLSOptions{
				FitIntercept: false,
			},
			intercept: 0.0,
			coef:      []float64{2.0, 3.0, 4.0},
		},
		"collinear features": {
			x: [][]float64{
				{1, 2},
				{2, 4},
				{3, 6},
				{4, 8},
			},
			y:   []float64{1, 2, 3, 4},
			err: ErrRankDeficient,
		},
		"underdetermined": {
			x: [][]float64{
				{1, 3},
				{2, 5},
			},
			y:   []float64{1, 2},
			err: ErrUnderdetermined,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			x, err := mat_.NewDenseFromArray(td.x)
			require.Nil(t, err)

			y := mat.NewDense(len(td.y), 1, td.y)

			model, err := NewOLSRegression(td.opt)
			require.Nil(t, err)

			err = model.Fit(x, y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			assert.InDelta(t, td.intercept, model.Intercept(), tol)
			assert.InDeltaSlice(t, td.coef, model.Coef(), tol)

			score, err := model.Score(x, y)
			require.Nil(t, err)
			assert.InDelta(t, 1.0, score, tol)

			pred, err := model.Predict(x)
			require.Nil(t, err)
			assert.InDeltaSlice(t, td.y, pred, tol)
		})
	}
}

func TestOLSRegressionErrors(t *testing.T) {
	model, err := NewOLSRegression(nil)
	require.Nil(t, err)

	x := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err = model.Predict(x)
	assert.ErrorIs(t, err, ErrUntrained)

	assert.ErrorIs(t, model.Fit(nil, x), ErrNoTrainingMatrix)
	assert.ErrorIs(t, model.Fit(x, nil), ErrNoTargetMatrix)
	assert.ErrorIs(t, model.Fit(x, mat.NewDense(2, 1, []float64{1, 2})), ErrTargetLenMismatch)

	require.Nil(t, model.Fit(x, mat.NewDense(3, 1, []float64{2, 4, 6})))
	_, err = model.Predict(mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)

	_, err = model.Predict(nil)
	assert.ErrorIs(t, err, ErrNoDesignMatrix)
}

func BenchmarkOLSRegression(b *testing.B) {
	nObs, nFeat := 1000, 20
	data := make([][]float64, nObs)
	target := make([]float64, nObs)
	for i := range nObs {
		row := make([]float64, nFeat)
		for j := range nFeat {
			row[j] = float64((i*(j+3))%17) + float64(j)*0.1
		}
		data[i] = row
		target[i] = float64(i % 13)
	}
	x, err := mat_.NewDenseFromArray(data)
	if err != nil {
		b.Fatal(err)
	}
	y := mat.NewDense(nObs, 1, target)

	for b.Loop() {
		model, err := NewOLSRegression(nil)
		if err != nil {
			b.Error(err)
			continue
		}
		if err := model.Fit(x, y); err != nil {
			b.Error(err)
			continue
		}
	}
}
