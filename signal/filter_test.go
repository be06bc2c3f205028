package signal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phantompay1/EVA/numeric"
	"github.com/phantompay1/EVA/signal"
)

// alternator is the fastest signal representable at the sample rate.
func alternator(n int) numeric.Vector {
	x := make(numeric.Vector, n)
	for i := range x {
		x[i] = 1 - 2*float64(i%2)
	}
	return x
}

func TestApplyFilter_LowpassAttenuatesHighFrequency(t *testing.T) {
	e := signal.NewEngine()

	x := alternator(256)
	out, err := e.ApplyFilter(x, signal.Lowpass, signal.FilterParams{Cutoff: 0.05})
	require.NoError(t, err)
	require.Len(t, out, len(x))

	// A tight lowpass all but kills the Nyquist-rate alternation
	require.Less(t, numeric.Power(out), 0.1*numeric.Power(x))
}

func TestApplyFilter_LowpassPassesDC(t *testing.T) {
	e := signal.NewEngine()

	x := make(numeric.Vector, 256)
	for i := range x {
		x[i] = 3
	}
	out, err := e.ApplyFilter(x, signal.Lowpass, signal.FilterParams{Cutoff: 0.25})
	require.NoError(t, err)

	// After settling, the constant level passes through
	require.InDelta(t, 3.0, out[len(out)-1], 0.05)
}

func TestApplyFilter_HighpassKillsDC(t *testing.T) {
	e := signal.NewEngine()

	x := make(numeric.Vector, 256)
	for i := range x {
		x[i] = 5
	}
	out, err := e.ApplyFilter(x, signal.Highpass, signal.FilterParams{Cutoff: 0.1})
	require.NoError(t, err)

	// The constant component decays toward zero
	require.Less(t, math.Abs(out[len(out)-1]), 0.05)
}

func TestApplyFilter_BandpassValidation(t *testing.T) {
	e := signal.NewEngine()
	x := alternator(16)

	// Band edges must be ordered and inside (0, 0.5]
	_, err := e.ApplyFilter(x, signal.Bandpass, signal.FilterParams{Low: 0.3, High: 0.1})
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)

	_, err = e.ApplyFilter(x, signal.Bandpass, signal.FilterParams{Low: 0, High: 0.2})
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)

	out, err := e.ApplyFilter(x, signal.Bandpass, signal.FilterParams{Low: 0.05, High: 0.3})
	require.NoError(t, err)
	require.Len(t, out, len(x))
}

func TestApplyFilter_Errors(t *testing.T) {
	e := signal.NewEngine()

	_, err := e.ApplyFilter(nil, signal.Lowpass, signal.FilterParams{Cutoff: 0.1})
	require.ErrorIs(t, err, numeric.ErrEmptySequence)

	_, err = e.ApplyFilter(alternator(8), signal.Lowpass, signal.FilterParams{Cutoff: 0.7})
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)

	_, err = e.ApplyFilter(alternator(8), signal.FilterType("notch"), signal.FilterParams{Cutoff: 0.1})
	require.ErrorIs(t, err, numeric.ErrInvalidParameter)
}
