package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phantompay1/EVA/matrix"
	"github.com/phantompay1/EVA/numeric"
)

func mustDense(t *testing.T, rows [][]float64) *numeric.Dense {
	t.Helper()
	m, err := numeric.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestMultiply_Known(t *testing.T) {
	e := matrix.NewEngine()

	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	out, err := e.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, out.ToRows())
}

func TestMultiply_Identity(t *testing.T) {
	e := matrix.NewEngine()

	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	i2, err := numeric.Identity(2)
	require.NoError(t, err)

	out, err := e.Multiply(i2, a)
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), out.ToRows())
}

func TestMultiply_Rectangular(t *testing.T) {
	e := matrix.NewEngine()

	a := mustDense(t, [][]float64{{1, 2, 3}}) // 1x3
	b := mustDense(t, [][]float64{{1}, {2}, {3}})

	out, err := e.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{14}}, out.ToRows())
}

func TestMultiply_DimensionMismatch(t *testing.T) {
	e := matrix.NewEngine()

	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	_, err := e.Multiply(a, b)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)

	_, err = e.ParallelMultiply(a, b)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}

// Sequential and parallel products must agree bit for bit: both walk
// each dot product in the same ascending order, so not even the last
// ulp may differ.
func TestParallelMultiply_BitEqual(t *testing.T) {
	e := matrix.NewEngine(matrix.WithWorkers(4))

	a, err := numeric.NewDense(17, 23)
	require.NoError(t, err)
	b, err := numeric.NewDense(23, 11)
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			a.UnsafeSet(i, j, 0.1*float64(i*31+j*17+1))
		}
	}
	for i := 0; i < b.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			b.UnsafeSet(i, j, 0.01*float64(i*7-j*13+5))
		}
	}

	seq, err := e.Multiply(a, b)
	require.NoError(t, err)
	par, err := e.ParallelMultiply(a, b)
	require.NoError(t, err)

	require.Equal(t, seq.ToRows(), par.ToRows())
}

func TestTranspose(t *testing.T) {
	e := matrix.NewEngine()

	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	mt, err := e.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt.ToRows())

	// Double transpose restores the original exactly
	back, err := e.Transpose(mt)
	require.NoError(t, err)
	require.Equal(t, m.ToRows(), back.ToRows())
}
