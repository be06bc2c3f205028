// Package signal implements the EVA digital signal processing engine:
// discrete Fourier transforms, recursive filters, convolution, spectral
// denoising, resampling and signal-to-noise measurement over float64
// sample vectors.
//
// 🚀 What is the signal engine?
//
//	Everything behind the `signal_*` request family:
//	  • FFT / IFFT — radix-2 Cooley–Tukey with a Bluestein fallback, so
//	    round-tripping holds for every input length, not just powers of two
//	  • ApplyFilter — lowpass / highpass / bandpass single-pole recursions
//	  • Convolve — full linear convolution, len(a)+len(b)-1 output
//	  • Denoise — soft thresholding of spectral magnitudes
//	  • Resample — linear interpolation by a positive factor
//	  • SNR — power ratio in decibels
//
// ✨ Conventions:
//
//   - Signals are numeric.Vector ([]float64); spectra are []complex128
//     of the same length as the input (full, redundant spectrum — slice
//     the non-redundant half yourself if that is what you need).
//   - Cutoff frequencies are normalized to the sample rate: (0, 0.5].
//   - Invalid selectors and out-of-range parameters return
//     numeric.ErrInvalidParameter; empty inputs return ErrEmptySequence.
package signal
