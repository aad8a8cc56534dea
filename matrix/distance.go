// SPDX-License-Identifier: MIT

// Package matrix - pairwise Euclidean distances and row-wise argmin.
//
// Purpose:
//   - Build the m×n distance matrix between query rows and reference rows.
//   - Reduce each row to the index of its minimum, first occurrence on ties.
//
// Numeric policy:
//   - Distances are computed from coordinate differences with gonum's scaled
//     L2 accumulation (floats.Distance, L=2), never from the expanded
//     ‖a‖² + ‖b‖² − 2·a·b form. Exact duplicates are at distance 0.
//   - The output Dense carries validateNaNInf=false: distances between
//     finite points near the float64 limit may overflow to +Inf.
//
// Determinism:
//   - Fixed loop order (i over queries, j over references); identical inputs
//     produce bit-identical outputs.

package matrix

import "gonum.org/v1/gonum/floats"

const (
	ctxPairwise = "PairwiseEuclidean"
	ctxArgMin   = "ArgMinRows"
)

// PairwiseEuclidean returns D with D[i][j] = ‖a_i − b_j‖₂.
//
// Implementation:
//   - Stage 1: validate both operands (NotNil → NonEmpty) and a.Cols()==b.Cols().
//   - Stage 2: obtain row-major storage (no copy for *Dense inputs).
//   - Stage 3: fill D in row-major order using floats.Distance(·,·,2).
//
// Inputs:
//   - a: m×d query matrix.
//   - b: n×d reference matrix.
//
// Returns:
//   - *Dense of shape m×n.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (wrapped).
//
// Complexity:
//   - Time O(m·n·d), Space O(m·n).
func PairwiseEuclidean(a, b Matrix) (*Dense, error) {
	for _, x := range [2]Matrix{a, b} {
		if err := ValidateNotNil(x); err != nil {
			return nil, validatorErrorf(ctxPairwise, err)
		}
		if err := ValidateNonEmpty(x); err != nil {
			return nil, validatorErrorf(ctxPairwise, err)
		}
	}
	if err := ValidateCols(a, b.Cols()); err != nil {
		return nil, validatorErrorf(ctxPairwise, err)
	}

	da, err := denseOf(a)
	if err != nil {
		return nil, validatorErrorf(ctxPairwise, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, validatorErrorf(ctxPairwise, err)
	}

	out, err := NewDense(da.r, db.r, WithNoValidateNaNInf())
	if err != nil {
		return nil, validatorErrorf(ctxPairwise, err)
	}

	var i, j int
	for i = 0; i < da.r; i++ {
		ai := da.rowView(i)
		base := i * out.c
		for j = 0; j < db.r; j++ {
			out.data[base+j] = floats.Distance(ai, db.rowView(j), 2)
		}
	}

	return out, nil
}

// ArgMinRows returns, for every row of d, the column index of its minimum
// value and that value.
//
// Behavior highlights:
//   - Exact ties resolve to the lowest column index (floats.MinIdx returns
//     the first minimum).
//
// Errors:
//   - ErrNilMatrix when d is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func ArgMinRows(d *Dense) (idx []int, minima []float64, err error) {
	if d == nil {
		return nil, nil, validatorErrorf(ctxArgMin, ErrNilMatrix)
	}

	idx = make([]int, d.r)
	minima = make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		row := d.rowView(i)
		k := floats.MinIdx(row)
		idx[i] = k
		minima[i] = row[k]
	}

	return idx, minima, nil
}

// denseOf exposes row-major storage for m without copying when possible.
// The result must be treated as read-only.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return ToDense(m)
}
