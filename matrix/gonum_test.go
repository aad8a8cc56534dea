package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nearest/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFromMat copies a gonum matrix and keeps the copy independent.
func TestFromMat(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	d, err := matrix.FromMat(src)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", d.String())

	src.Set(0, 0, 100)
	v, _ := d.At(0, 0)
	assert.Equal(t, 1.0, v)

	// Transposed views are read through the mat.Matrix interface.
	tr, err := matrix.FromMat(src.T())
	require.NoError(t, err)
	assert.Equal(t, "[100, 3]\n[2, 4]\n", tr.String())
}

// TestFromMat_Errors covers nil, typed nil and NaN ingestion.
func TestFromMat_Errors(t *testing.T) {
	_, err := matrix.FromMat(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *mat.Dense
	_, err = matrix.FromMat(nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad := mat.NewDense(1, 2, []float64{0, math.NaN()})
	_, err = matrix.FromMat(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromMat(bad, matrix.WithNoValidateNaNInf())
	assert.NoError(t, err)
}

// TestToMat round-trips through gonum.
func TestToMat(t *testing.T) {
	d, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	m := d.ToMat()
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))

	m.Set(1, 2, -1)
	v, _ := d.At(1, 2)
	assert.Equal(t, 6.0, v, "ToMat must copy")

	back, err := matrix.FromMat(d.ToMat())
	require.NoError(t, err)
	assert.Equal(t, d.String(), back.String())
}
