package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantompay1/EVA/matrix"
	"github.com/phantompay1/EVA/numeric"
)

func TestDeterminant(t *testing.T) {
	e := matrix.NewEngine()

	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	det, err := e.Determinant(m)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, det, 1e-12)

	// Permutation-heavy case: pivoting must keep the sign right
	p := mustDense(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	det, err = e.Determinant(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, det, 1e-12)

	// Singular matrix has determinant zero, not an error
	s := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	det, err = e.Determinant(s)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, det, 1e-12)
}

func TestSolve_Known(t *testing.T) {
	e := matrix.NewEngine()

	// 2x + 0y = 2, 0x + 4y = 8 → x=1, y=2
	m := mustDense(t, [][]float64{{2, 0}, {0, 4}})
	x, err := e.Solve(m, numeric.Vector{2, 8})
	require.NoError(t, err)
	require.True(t, numeric.ApproxEqual(numeric.Vector{1, 2}, x, 1e-9))
}

func TestSolve_PivotingRequired(t *testing.T) {
	e := matrix.NewEngine()

	// Zero leading pivot forces a row swap
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	x, err := e.Solve(m, numeric.Vector{3, 5})
	require.NoError(t, err)
	require.True(t, numeric.ApproxEqual(numeric.Vector{5, 3}, x, 1e-9))
}

func TestSolve_Errors(t *testing.T) {
	e := matrix.NewEngine()

	// Singular system
	s := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	_, err := e.Solve(s, numeric.Vector{1, 1})
	require.ErrorIs(t, err, numeric.ErrSingular)

	// Non-square matrices cannot be factored
	r := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = e.Solve(r, numeric.Vector{1, 1})
	require.ErrorIs(t, err, numeric.ErrSingular)

	// Right-hand side length must match
	m := mustDense(t, [][]float64{{2, 0}, {0, 4}})
	_, err = e.Solve(m, numeric.Vector{1, 2, 3})
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}

func TestInverse_RoundTrip(t *testing.T) {
	e := matrix.NewEngine()

	m := mustDense(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := e.Inverse(m)
	require.NoError(t, err)

	// A·A⁻¹ ≈ I within 1e-9
	prod, err := e.Multiply(m, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, prod.UnsafeAt(i, j), 1e-9)
		}
	}
}

func TestInverse_Errors(t *testing.T) {
	e := matrix.NewEngine()

	s := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	_, err := e.Inverse(s)
	require.ErrorIs(t, err, numeric.ErrSingular)

	r := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = e.Inverse(r)
	require.ErrorIs(t, err, numeric.ErrSingular)
}
