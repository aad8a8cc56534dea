// SPDX-License-Identifier: MIT
// Package: estimator
//
// Purpose:
//  - Local precondition checks run by every estimator before touching data.
//  - Each check maps a matrix-level sentinel to the estimator taxonomy:
//      nil / empty / ragged / NaN / Inf      → ErrInvalidInput
//      label count ≠ rows, column mismatch   → ErrShapeMismatch
//      continuous labels                     → ErrInvalidTargetType
//
// Determinism & Performance:
//  - Pure; CheckArray is O(r*c), target checks are O(n) plus O(n log n) for
//    UniqueLabels.

package estimator

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/katalvlaran/nearest/matrix"
)

// CheckArray validates a feature matrix: non-nil, at least 1×1, all finite.
// Complexity: O(r*c).
func CheckArray(X matrix.Matrix) error {
	if err := matrix.ValidateArray(X); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

// CheckXY validates a labeled set: CheckArray(X), then len(y) == X.Rows().
// Complexity: O(r*c).
func CheckXY[L any](X matrix.Matrix, y []L) error {
	if err := CheckArray(X); err != nil {
		return err
	}
	if len(y) != X.Rows() {
		return fmt.Errorf("%w: %d labels for %d samples", ErrShapeMismatch, len(y), X.Rows())
	}

	return nil
}

// CheckFeatures validates a query matrix against the fitted feature count.
// Complexity: O(r*c).
func CheckFeatures(X matrix.Matrix, nFeatures int) error {
	if err := CheckArray(X); err != nil {
		return err
	}
	if err := matrix.ValidateCols(X, nFeatures); err != nil {
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}

	return nil
}

// CheckClassificationTargets rejects label sets that describe a regression
// target rather than discrete classes.
//
// Behavior highlights:
//   - Labels whose kind is float32/float64 (including named float types) must
//     be finite and integral; 0.5 or NaN make the target continuous.
//   - Integer, string and other ordered kinds are always discrete.
//   - An empty label set is rejected as ErrShapeMismatch.
//
// Complexity: O(n).
func CheckClassificationTargets[L cmp.Ordered](y []L) error {
	if len(y) == 0 {
		return fmt.Errorf("%w: empty target", ErrShapeMismatch)
	}
	for i, label := range y {
		v := reflect.ValueOf(label)
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
				return fmt.Errorf("%w: continuous label %v at index %d", ErrInvalidTargetType, f, i)
			}
		}
	}

	return nil
}

// UniqueLabels returns the distinct labels of y in ascending order.
// The input is not modified.
// Complexity: O(n log n).
func UniqueLabels[L cmp.Ordered](y []L) []L {
	out := slices.Clone(y)
	slices.Sort(out)

	return slices.Compact(out)
}
