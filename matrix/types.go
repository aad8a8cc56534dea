// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface consumed by estimators.
// Concrete storage lives in dense.go; interop with gonum lives in gonum.go.
package matrix

// Matrix represents a two-dimensional array of float64 values.
// Estimators accept this interface so callers may pass *Dense, a gonum-backed
// adapter, or any custom implementation.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows (samples).
	Rows() int

	// Cols returns the number of columns (features).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
