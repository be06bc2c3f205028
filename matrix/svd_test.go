package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantompay1/EVA/matrix"
)

func TestSVD_DiagonalKnown(t *testing.T) {
	e := matrix.NewEngine()

	m := mustDense(t, [][]float64{{3, 0}, {0, 2}})
	res, err := e.SVD(m)
	require.NoError(t, err)

	// Singular values descend
	require.Len(t, res.S, 2)
	assert.InDelta(t, 3.0, res.S[0], 1e-9)
	assert.InDelta(t, 2.0, res.S[1], 1e-9)
}

func TestSVD_Reconstruction(t *testing.T) {
	e := matrix.NewEngine()

	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}) // tall 3x2
	res, err := e.SVD(m)
	require.NoError(t, err)
	require.Equal(t, 3, res.U.Rows())
	require.Equal(t, 2, res.V.Rows())
	require.Len(t, res.S, 2)

	// m[i][j] == Σ_k U[i][k]·S[k]·V[j][k]
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			var sum float64
			for k := range res.S {
				sum += res.U.UnsafeAt(i, k) * res.S[k] * res.V.UnsafeAt(j, k)
			}
			assert.InDelta(t, m.UnsafeAt(i, j), sum, 1e-8)
		}
	}
}

func TestSVD_WideInput(t *testing.T) {
	e := matrix.NewEngine()

	// Wide matrices are handled by transposing internally
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	res, err := e.SVD(m)
	require.NoError(t, err)
	require.Equal(t, 2, res.U.Rows())
	require.Equal(t, 3, res.V.Rows())
	require.Len(t, res.S, 2)
	require.GreaterOrEqual(t, res.S[0], res.S[1])
}

func TestConditionNumber(t *testing.T) {
	e := matrix.NewEngine()

	// Identity is perfectly conditioned
	m := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	k, err := e.ConditionNumber(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, k, 1e-9)

	// diag(10, 1) has condition number 10
	d := mustDense(t, [][]float64{{10, 0}, {0, 1}})
	k, err = e.ConditionNumber(d)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, k, 1e-8)

	// Rank-deficient input is infinitely conditioned
	s := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	k, err = e.ConditionNumber(s)
	require.NoError(t, err)
	require.True(t, math.IsInf(k, 1))
}
