// Package signal: convolution, spectral denoising, resampling and SNR.
package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/phantompay1/EVA/numeric"
)

// Convolve returns the full linear convolution of a and b, length
// len(a)+len(b)-1.
// Returns ErrEmptySequence when either input is empty.
// Complexity: O(n·m) time, O(n+m) memory.
func (e *Engine) Convolve(a, b numeric.Vector) (numeric.Vector, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("Convolve: %w", numeric.ErrEmptySequence)
	}

	out := make(numeric.Vector, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j] // accumulate the outer product diagonal
		}
	}

	return out, nil
}

// Denoise soft-thresholds the signal in the transform domain: spectral
// components with magnitude below threshold are zeroed, the rest are
// shrunk toward zero by threshold. The result is the inverse transform.
// Stage 1 (Validate): non-empty signal, threshold ≥ 0.
// Stage 2 (Execute): FFT → shrink magnitudes → IFFT.
// Complexity: O(n log n).
func (e *Engine) Denoise(x numeric.Vector, threshold float64) (numeric.Vector, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Denoise: %w", numeric.ErrEmptySequence)
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, fmt.Errorf("Denoise: threshold %g: %w", threshold, numeric.ErrInvalidParameter)
	}

	spectrum, err := e.FFT(x)
	if err != nil {
		return nil, fmt.Errorf("Denoise: %w", err)
	}
	for i, c := range spectrum {
		mag := cmplx.Abs(c)
		if mag <= threshold {
			spectrum[i] = 0
			continue
		}
		spectrum[i] = c * complex((mag-threshold)/mag, 0) // shrink, keep phase
	}

	out, err := e.IFFT(spectrum)
	if err != nil {
		return nil, fmt.Errorf("Denoise: %w", err)
	}

	return out, nil
}

// Resample changes the length of x by factor using linear interpolation:
// the output has round(len(x)·factor) samples (at least one) spanning
// the same time interval.
// Returns ErrInvalidParameter unless factor > 0.
// Complexity: O(n·factor) time and memory.
func (e *Engine) Resample(x numeric.Vector, factor float64) (numeric.Vector, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Resample: %w", numeric.ErrEmptySequence)
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return nil, fmt.Errorf("Resample: factor %g: %w", factor, numeric.ErrInvalidParameter)
	}

	outLen := int(math.Round(float64(len(x)) * factor))
	if outLen < 1 {
		outLen = 1
	}
	out := make(numeric.Vector, outLen)
	if outLen == 1 {
		out[0] = x[0]
		return out, nil
	}

	// Map output index i onto the source axis and interpolate neighbors.
	step := float64(len(x)-1) / float64(outLen-1)
	for i := 0; i < outLen; i++ {
		pos := float64(i) * step
		lo := int(pos)
		if lo >= len(x)-1 {
			out[i] = x[len(x)-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = x[lo]*(1-frac) + x[lo+1]*frac
	}

	return out, nil
}

// SNR returns the signal-to-noise ratio 10·log10(P_signal/P_noise) in
// decibels, where P is mean squared amplitude.
// Returns ErrEmptySequence for empty inputs and ErrInvalidParameter for
// silent (zero-power) noise, where the ratio is undefined.
// Complexity: O(n+m).
func (e *Engine) SNR(sig, noise numeric.Vector) (float64, error) {
	if len(sig) == 0 || len(noise) == 0 {
		return 0, fmt.Errorf("SNR: %w", numeric.ErrEmptySequence)
	}
	noisePower := numeric.Power(noise)
	if noisePower == 0 {
		return 0, fmt.Errorf("SNR: zero noise power: %w", numeric.ErrInvalidParameter)
	}

	return 10 * math.Log10(numeric.Power(sig)/noisePower), nil
}
