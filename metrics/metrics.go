// Package metrics scores predictions against known labels.
package metrics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates that no samples were supplied.
	ErrEmpty = errors.New("metrics: empty input")

	// ErrLengthMismatch indicates yTrue and yPred differ in length.
	ErrLengthMismatch = errors.New("metrics: length mismatch")
)

// Accuracy returns the fraction of positions where yPred equals yTrue.
// The result lies in [0,1].
//
// Complexity: O(n).
func Accuracy[L comparable](yTrue, yPred []L) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, fmt.Errorf("Accuracy: %d true vs %d predicted: %w", len(yTrue), len(yPred), ErrLengthMismatch)
	}
	if len(yTrue) == 0 {
		return 0, fmt.Errorf("Accuracy: %w", ErrEmpty)
	}

	matches := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			matches++
		}
	}

	return float64(matches) / float64(len(yTrue)), nil
}
