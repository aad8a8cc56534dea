// SPDX-License-Identifier: MIT

package estimator

import "github.com/katalvlaran/nearest/matrix"

// Classifier is the supervised classification contract shared by estimators
// and consumed by model-selection utilities.
//
//   - Fit stores or learns from a labeled training set; a second Fit replaces it.
//   - Predict returns one label per query row.
//   - Score returns the mean accuracy of Predict(X) against y, in [0,1].
//
// Implementations must make Predict and Score read-only so they are safe for
// concurrent use once Fit has returned.
type Classifier[L comparable] interface {
	Fit(X matrix.Matrix, y []L) error
	Predict(X matrix.Matrix) ([]L, error)
	Score(X matrix.Matrix, y []L) (float64, error)
}
