// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// FromMat copies any mat.Matrix into a Dense so gonum users can hand their
// data to estimators unchanged; ToMat goes the other way for downstream
// linear algebra. Both copy: neither side observes later writes to the other.

package matrix

import "gonum.org/v1/gonum/mat"

const ctxFromMat = "FromMat"

// FromMat copies src into a new Dense, enforcing the numeric policy.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrInvalidDimensions for empty (0×0) gonum matrices.
//   - ErrNaNInf (wrapped with coordinates) under the default policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromMat(src mat.Matrix, opts ...Option) (*Dense, error) {
	if d, ok := src.(*mat.Dense); src == nil || (ok && d == nil) {
		return nil, validatorErrorf(ctxFromMat, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, validatorErrorf(ctxFromMat, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v := src.At(i, j)
			if out.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromMat, i, j, ErrNaNInf)
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}

// ToMat returns a *mat.Dense holding a copy of m's values.
// Complexity: O(r*c).
func (m *Dense) ToMat() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
