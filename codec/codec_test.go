package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phantompay1/EVA/codec"
	"github.com/phantompay1/EVA/numeric"
)

func TestParseMatrix_BareRows(t *testing.T) {
	m, err := codec.ParseMatrix(`[[1, 2], [3, 4]]`)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
}

func TestParseMatrix_Keyed(t *testing.T) {
	m, err := codec.ParseMatrix(`{"rows": [[5, 6], [7, 8]]}`)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 6}, {7, 8}}, m.ToRows())
}

func TestParseMatrix_Malformed(t *testing.T) {
	for _, data := range []string{
		`not json`,
		`123`,
		`[[1, 2], [3]]`, // ragged
		`[]`,
		`{"rows": []}`,
	} {
		_, err := codec.ParseMatrix(data)
		require.ErrorIs(t, err, numeric.ErrInvalidParameter, "payload %q", data)
	}
}

func TestParseVector(t *testing.T) {
	v, err := codec.ParseVector(`[1.5, -2, 3]`)
	require.NoError(t, err)
	require.True(t, numeric.ApproxEqual(numeric.Vector{1.5, -2, 3}, v, 0))

	_, err = codec.ParseVector(`{"nope": 1}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)

	_, err = codec.ParseVector(`[]`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}

func TestParseMatrixPair(t *testing.T) {
	a, b, err := codec.ParseMatrixPair(`{"a": [[1]], "b": [[2]]}`)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, a.ToRows())
	require.Equal(t, [][]float64{{2}}, b.ToRows())

	// Both operands are mandatory
	_, _, err = codec.ParseMatrixPair(`{"a": [[1]]}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}

func TestParseLinearSystem(t *testing.T) {
	m, v, err := codec.ParseLinearSystem(`{"a": [[2, 0], [0, 4]], "b": [2, 8]}`)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.True(t, numeric.ApproxEqual(numeric.Vector{2, 8}, v, 0))

	_, _, err = codec.ParseLinearSystem(`{"a": [[1]]}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}

func TestParseVectorPair(t *testing.T) {
	sig, noise, err := codec.ParseVectorPair(`{"signal": [1, 2], "noise": [0.1]}`, "signal", "noise")
	require.NoError(t, err)
	require.Len(t, sig, 2)
	require.Len(t, noise, 1)

	_, _, err = codec.ParseVectorPair(`{"signal": [1, 2]}`, "signal", "kernel")
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}

func TestSpectrum_RoundTrip(t *testing.T) {
	in := []complex128{1 + 2i, -3, 0.5i}
	s := codec.MarshalSpectrum(in)
	require.Equal(t, []float64{1, -3, 0}, s.Re)
	require.Equal(t, []float64{2, 0, 0.5}, s.Im)

	raw, err := codec.Marshal(s)
	require.NoError(t, err)

	back, err := codec.ParseSpectrum(raw)
	require.NoError(t, err)
	require.Equal(t, in, back)
}

func TestParseSpectrum_Errors(t *testing.T) {
	// Re and Im must be the same length
	_, err := codec.ParseSpectrum(`{"re": [1, 2], "im": [0]}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)

	// Both components are mandatory
	_, err = codec.ParseSpectrum(`{"re": [1, 2]}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}

func TestParseOptimizationSpec(t *testing.T) {
	spec, err := codec.ParseOptimizationSpec(`{"objective": "sphere", "x0": [5, 5], "learning_rate": 0.05}`)
	require.NoError(t, err)
	assert.Equal(t, "sphere", spec.Objective)
	assert.Equal(t, []float64{5, 5}, spec.X0)
	assert.Equal(t, 0.05, spec.LearningRate)
	// Omitted fields keep their zero values; callers apply defaults
	assert.Zero(t, spec.MaxIter)

	_, err = codec.ParseOptimizationSpec(`{"x0": [1]}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}

func TestParseODESpec(t *testing.T) {
	spec, err := codec.ParseODESpec(`{"ode": "decay", "y0": 1, "t0": 0, "tf": 1, "steps": 100}`)
	require.NoError(t, err)
	assert.Equal(t, "decay", spec.ODE)
	assert.Equal(t, 100, spec.Steps)

	_, err = codec.ParseODESpec(`{"y0": 1}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}

func TestParseQuadratureSpec(t *testing.T) {
	spec, err := codec.ParseQuadratureSpec(`{"integrand": "square", "a": 0, "b": 1, "intervals": 100}`)
	require.NoError(t, err)
	assert.Equal(t, "square", spec.Integrand)
	assert.Equal(t, 100, spec.Intervals)

	_, err = codec.ParseQuadratureSpec(`{"a": 0}`)
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}
