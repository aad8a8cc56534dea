// SPDX-License-Identifier: MIT
// Package estimator: sentinel error set shared by every estimator.
// Checks wrap these sentinels together with the underlying matrix cause
// ("%w: %w"), so errors.Is matches both the estimator-level kind and the
// precise matrix condition. No estimator logs or panics on user input.

package estimator

import "errors"

var (
	// ErrNotFitted is returned when Predict/Score run before a successful Fit.
	ErrNotFitted = errors.New("estimator: not fitted")

	// ErrShapeMismatch indicates a row/column inconsistency: labels vs rows at
	// Fit/Score, or query columns vs the fitted feature count.
	ErrShapeMismatch = errors.New("estimator: shape mismatch")

	// ErrInvalidTargetType indicates labels that are not a discrete
	// classification target (e.g. continuous floats).
	ErrInvalidTargetType = errors.New("estimator: invalid target type")

	// ErrInvalidInput indicates a nil, empty, ragged or non-finite feature matrix.
	ErrInvalidInput = errors.New("estimator: invalid input")
)
