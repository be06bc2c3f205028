// Package signal: recursive single-pole filters. Cutoffs are normalized
// to the sample rate, so valid values live in (0, 0.5]; the bandpass is
// the cascade highpass(low) → lowpass(high).
package signal

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// FilterParams carries the cutoff frequencies for ApplyFilter.
// Lowpass reads Cutoff, highpass reads Cutoff, bandpass reads Low and High.
type FilterParams struct {
	Cutoff float64 // normalized cutoff for lowpass/highpass
	Low    float64 // lower band edge for bandpass
	High   float64 // upper band edge for bandpass
}

// ApplyFilter dispatches to the lowpass/highpass/bandpass sub-routine
// selected by ft.
// Stage 1 (Validate): non-empty signal, known filter type, cutoffs in
// (0, 0.5], Low < High for bandpass.
// Stage 2 (Execute): run the recursion(s).
// Returns ErrInvalidParameter for unknown types or out-of-range cutoffs.
// Complexity: O(n) time, O(n) memory.
func (e *Engine) ApplyFilter(x numeric.Vector, ft FilterType, p FilterParams) (numeric.Vector, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("ApplyFilter: %w", numeric.ErrEmptySequence)
	}

	switch ft {
	case Lowpass:
		if !validCutoff(p.Cutoff) {
			return nil, fmt.Errorf("ApplyFilter: lowpass cutoff %g: %w", p.Cutoff, numeric.ErrInvalidParameter)
		}
		return lowpass(x, p.Cutoff), nil

	case Highpass:
		if !validCutoff(p.Cutoff) {
			return nil, fmt.Errorf("ApplyFilter: highpass cutoff %g: %w", p.Cutoff, numeric.ErrInvalidParameter)
		}
		return highpass(x, p.Cutoff), nil

	case Bandpass:
		if !validCutoff(p.Low) || !validCutoff(p.High) || p.Low >= p.High {
			return nil, fmt.Errorf("ApplyFilter: bandpass band [%g,%g]: %w", p.Low, p.High, numeric.ErrInvalidParameter)
		}
		return lowpass(highpass(x, p.Low), p.High), nil

	default:
		return nil, fmt.Errorf("ApplyFilter: unknown filter type %q: %w", ft, numeric.ErrInvalidParameter)
	}
}

// validCutoff reports whether fc is a usable normalized frequency.
func validCutoff(fc float64) bool {
	return !math.IsNaN(fc) && fc > 0 && fc <= 0.5
}

// lowpass runs the single-pole recursion y[i] = y[i-1] + α(x[i] − y[i-1])
// with α derived from the normalized cutoff.
func lowpass(x numeric.Vector, fc float64) numeric.Vector {
	omega := 2 * math.Pi * fc
	alpha := omega / (omega + 1)

	out := make(numeric.Vector, len(x))
	out[0] = alpha * x[0]
	for i := 1; i < len(x); i++ {
		out[i] = out[i-1] + alpha*(x[i]-out[i-1])
	}

	return out
}

// highpass runs the complementary recursion
// y[i] = α(y[i-1] + x[i] − x[i-1]).
func highpass(x numeric.Vector, fc float64) numeric.Vector {
	omega := 2 * math.Pi * fc
	alpha := 1 / (omega + 1)

	out := make(numeric.Vector, len(x))
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = alpha * (out[i-1] + x[i] - x[i-1])
	}

	return out
}
