// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and estimators minimal by delegating shape/nil/finite checks here.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only the error path allocates.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → NonEmpty → Finite).
//  - Each validator states what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row and one column.
// Assumes m is not nil.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidDimensions)
	}

	return nil
}

// ValidateCols ensures m has exactly want columns.
// Assumes m is not nil.
// Complexity: O(1).
func ValidateCols(m Matrix, want int) error {
	if m.Cols() != want {
		return validatorErrorf(fmt.Sprintf("ValidateCols: got %d, want %d", m.Cols(), want), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of m is finite.
//
// Implementation: Assumes m is non-nil; scans in row-major order and reports
// the first offending coordinate. Index errors from At are propagated.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for off, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", off/d.c, off%d.c), ErrNaNInf)
			}
		}

		return nil
	}

	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateArray is the composite check used before any estimator consumes m:
// NotNil → NonEmpty → Finite.
// Complexity: O(r*c).
func ValidateArray(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}

	return ValidateFinite(m)
}
