package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nearest/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairwiseEuclidean_Values checks shape and known distances (3-4-5 triangle).
func TestPairwiseEuclidean_Values(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {3, 4}, {1, 1}})
	b, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {3, 0}})

	d, err := matrix.PairwiseEuclidean(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 2, d.Cols())

	want := [][]float64{
		{0, 3},
		{5, 4},
		{math.Sqrt2, math.Sqrt(5)},
	}
	for i := range want {
		for j := range want[i] {
			got, err := d.At(i, j)
			require.NoError(t, err)
			assert.InDeltaf(t, want[i][j], got, 1e-12, "D[%d][%d]", i, j)
		}
	}
}

// TestPairwiseEuclidean_SelfIsExactZero ensures a point's distance to itself
// is exactly 0, even for large magnitudes where the expanded dot-product
// form would cancel badly.
func TestPairwiseEuclidean_SelfIsExactZero(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{1e154, -3e153, 7.25}, {0.1, 0.2, 0.3}})

	d, err := matrix.PairwiseEuclidean(a, a)
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		v, _ := d.At(i, i)
		assert.Zero(t, v)
	}
}

// TestPairwiseEuclidean_GenericInput mixes a generic Matrix with a Dense.
func TestPairwiseEuclidean_GenericInput(t *testing.T) {
	g := gridMatrix{r: 1, c: 2, f: func(_, j int) float64 { return float64(j) }}
	b, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {0, 0}})

	d, err := matrix.PairwiseEuclidean(g, b)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1]\n", d.String())
}

// TestPairwiseEuclidean_Errors covers nil, empty and column mismatch.
func TestPairwiseEuclidean_Errors(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(2, 3)

	_, err := matrix.PairwiseEuclidean(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.PairwiseEuclidean(a, gridMatrix{r: 0, c: 2})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.PairwiseEuclidean(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestArgMinRows checks first-occurrence tie-breaking and reported minima.
func TestArgMinRows(t *testing.T) {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{3, 1, 1, 2},
		{0, 0, 0, 0},
		{9, 8, 7, 6},
	})

	idx, minima, err := matrix.ArgMinRows(d)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3}, idx)
	assert.Equal(t, []float64{1, 0, 6}, minima)

	_, _, err = matrix.ArgMinRows(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
