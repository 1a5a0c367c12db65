// Package mat holds small helpers for building gonum dense matrices from the row oriented
// slices used throughout the regression and forecasting code.
package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmptyArray  = errors.New("array has no rows or columns")
	ErrColMismatch = errors.New("column size mismatch")
)

// NewDenseFromArray flattens a row major 2D slice into a gonum Dense matrix. Every row must
// have the same number of columns.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if m == 0 || n <= 0 {
		return nil, ErrEmptyArray
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewColumn returns an m x 1 matrix holding a copy of y.
func NewColumn(y []float64) (*mat.Dense, error) {
	if len(y) == 0 {
		return nil, ErrEmptyArray
	}
	data := make([]float64, len(y))
	copy(data, y)
	return mat.NewDense(len(y), 1, data), nil
}
