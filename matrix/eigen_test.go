package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantompay1/EVA/matrix"
	"github.com/phantompay1/EVA/numeric"
)

func TestEigenvalues_SymmetricKnown(t *testing.T) {
	e := matrix.NewEngine()

	// [[4,1],[1,4]] has eigenvalues 5 and 3
	m := mustDense(t, [][]float64{{4, 1}, {1, 4}})
	vals, err := e.Eigenvalues(m)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, 5.0, vals[0], 1e-8)
	assert.InDelta(t, 3.0, vals[1], 1e-8)
}

func TestEigenvalues_Diagonal(t *testing.T) {
	e := matrix.NewEngine()

	m := mustDense(t, [][]float64{{2, 0, 0}, {0, 7, 0}, {0, 0, 1}})
	vals, err := e.Eigenvalues(m)
	require.NoError(t, err)

	// Sorted descending regardless of storage order
	require.True(t, numeric.ApproxEqual(numeric.Vector{7, 2, 1}, vals, 1e-8))
}

func TestEigenvalues_NonSymmetric(t *testing.T) {
	e := matrix.NewEngine()

	// Upper triangular: eigenvalues are the diagonal
	m := mustDense(t, [][]float64{{1, 2}, {0, 3}})
	vals, err := e.Eigenvalues(m)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, 3.0, vals[0], 1e-6)
	assert.InDelta(t, 1.0, vals[1], 1e-6)
}

func TestEigenvalues_NonSquare(t *testing.T) {
	e := matrix.NewEngine()

	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := e.Eigenvalues(m)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}
