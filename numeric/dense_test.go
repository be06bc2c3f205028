package numeric_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phantompay1/EVA/numeric"
)

func TestNewDense_ShapeValidation(t *testing.T) {
	// Any non-positive dimension is rejected
	_, err := numeric.NewDense(0, 3)
	require.ErrorIs(t, err, numeric.ErrBadShape)

	_, err = numeric.NewDense(3, -1)
	require.ErrorIs(t, err, numeric.ErrBadShape)

	m, err := numeric.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	// Fresh matrices are zero-filled
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := numeric.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	// Ragged input is a shape error
	_, err = numeric.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, numeric.ErrBadShape)

	// Empty input is a shape error
	_, err = numeric.NewDenseFromRows(nil)
	require.ErrorIs(t, err, numeric.ErrBadShape)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := numeric.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 7))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	// Out-of-range indices in every direction
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, numeric.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, numeric.ErrOutOfRange)
	require.True(t, errors.Is(m.Set(-1, 0, 0), numeric.ErrOutOfRange))
}

func TestDense_CloneIndependence(t *testing.T) {
	m, err := numeric.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	// Mutating the clone must not touch the original
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestIdentity(t *testing.T) {
	i3, err := numeric.Identity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, i3.ToRows())

	_, err = numeric.Identity(0)
	require.ErrorIs(t, err, numeric.ErrBadShape)
}

func TestVector_Basics(t *testing.T) {
	v := numeric.Vector{3, 4}
	require.Equal(t, 5.0, numeric.Norm2(v))

	require.Equal(t, 11.0, numeric.Dot(numeric.Vector{1, 2}, numeric.Vector{3, 4}))

	// Power is mean squared amplitude
	require.Equal(t, 12.5, numeric.Power(v))

	clone := numeric.CloneVector(v)
	clone[0] = -1
	require.Equal(t, 3.0, v[0])
}

func TestApproxEqual(t *testing.T) {
	a := numeric.Vector{1, 2, 3}
	b := numeric.Vector{1, 2, 3 + 1e-12}
	require.True(t, numeric.ApproxEqual(a, b, 1e-9))
	require.False(t, numeric.ApproxEqual(a, b, 1e-15))
	// Length mismatch is never equal
	require.False(t, numeric.ApproxEqual(a, a[:2], 1))
}
