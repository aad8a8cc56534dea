package metrics_test

import (
	"testing"

	"github.com/katalvlaran/nearest/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccuracy covers perfect, partial and zero agreement.
func TestAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []int
		yPred []int
		want  float64
	}{
		{"all match", []int{0, 1, 1}, []int{0, 1, 1}, 1.0},
		{"none match", []int{0, 1}, []int{1, 0}, 0.0},
		{"half match", []int{0, 1, 2, 3}, []int{0, 1, 0, 0}, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := metrics.Accuracy(tc.yTrue, tc.yPred)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestAccuracy_Strings checks that any comparable label type is accepted.
func TestAccuracy_Strings(t *testing.T) {
	got, err := metrics.Accuracy([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, got, 1e-12)
}

// TestAccuracy_Errors verifies the sentinel errors.
func TestAccuracy_Errors(t *testing.T) {
	_, err := metrics.Accuracy([]int{1, 2}, []int{1})
	assert.ErrorIs(t, err, metrics.ErrLengthMismatch)

	_, err = metrics.Accuracy([]int{}, []int{})
	assert.ErrorIs(t, err, metrics.ErrEmpty)
}
