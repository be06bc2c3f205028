// Package signal: discrete Fourier transform. Power-of-two lengths run
// the iterative radix-2 Cooley–Tukey kernel; every other length goes
// through Bluestein's chirp-z reformulation, which reduces an arbitrary
// length-n DFT to a power-of-two cyclic convolution. The forward
// transform is unscaled; the inverse divides by n, so IFFT(FFT(x))
// reconstructs x within floating-point tolerance for any length.
package signal

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/phantompay1/EVA/numeric"
)

// FFT returns the full discrete Fourier spectrum of x.
// Output length equals input length; callers needing only the
// non-redundant half must slice explicitly.
// Returns ErrEmptySequence for empty input.
// Complexity: O(n log n) time, O(n) memory.
func (e *Engine) FFT(x numeric.Vector) ([]complex128, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("FFT: %w", numeric.ErrEmptySequence)
	}

	buf := make([]complex128, len(x))
	for i, v := range x {
		buf[i] = complex(v, 0)
	}

	return dft(buf, false), nil
}

// IFFT returns the inverse transform of spectrum as a real vector,
// discarding residual imaginary parts (which are rounding noise for
// spectra of real signals).
// Complexity: O(n log n) time, O(n) memory.
func (e *Engine) IFFT(spectrum []complex128) (numeric.Vector, error) {
	if len(spectrum) == 0 {
		return nil, fmt.Errorf("IFFT: %w", numeric.ErrEmptySequence)
	}

	buf := make([]complex128, len(spectrum))
	copy(buf, spectrum)
	out := dft(buf, true)

	x := make(numeric.Vector, len(out))
	for i, v := range out {
		x[i] = real(v)
	}

	return x, nil
}

// dft dispatches between the radix-2 kernel and Bluestein; inverse
// applies the 1/n scale.
func dft(x []complex128, inverse bool) []complex128 {
	n := len(x)
	var out []complex128
	if n&(n-1) == 0 {
		out = fftPow2(x, inverse)
	} else {
		out = bluestein(x, inverse)
	}
	if inverse {
		scale := complex(1/float64(n), 0)
		for i := range out {
			out[i] *= scale
		}
	}

	return out
}

// fftPow2 is the iterative radix-2 Cooley–Tukey transform, unscaled.
// len(x) must be a power of two. The input slice is consumed as scratch.
// Complexity: O(n log n).
func fftPow2(x []complex128, inverse bool) []complex128 {
	n := len(x)
	if n == 1 {
		return []complex128{x[0]}
	}

	// Stage 1: bit-reversal permutation
	shift := 64 - uint(bits.Len(uint(n-1)))
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[bits.Reverse64(uint64(i))>>shift] = x[i]
	}

	// Stage 2: butterflies, doubling the span each pass
	sign := -1.0 // forward transform uses e^{-2πik/n}
	if inverse {
		sign = 1.0
	}
	for span := 2; span <= n; span <<= 1 {
		half := span >> 1
		root := cmplx.Exp(complex(0, sign*2*math.Pi/float64(span)))
		for start := 0; start < n; start += span {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				u := out[start+k]
				v := out[start+k+half] * w
				out[start+k] = u + v
				out[start+k+half] = u - v
				w *= root
			}
		}
	}

	return out
}

// bluestein computes an arbitrary-length DFT as a cyclic convolution of
// chirp-modulated sequences, carried by fftPow2 at a padded power-of-two
// length ≥ 2n-1. Unscaled, like fftPow2.
// Complexity: O(n log n).
func bluestein(x []complex128, inverse bool) []complex128 {
	n := len(x)
	sign := -1.0
	if inverse {
		sign = 1.0
	}

	// Chirp table: w[k] = e^{sign·iπk²/n}; k² mod 2n keeps the argument bounded.
	w := make([]complex128, n)
	for k := 0; k < n; k++ {
		kk := (int64(k) * int64(k)) % int64(2*n)
		w[k] = cmplx.Exp(complex(0, sign*math.Pi*float64(kk)/float64(n)))
	}

	// Padded convolution length
	m := 1
	for m < 2*n-1 {
		m <<= 1
	}

	a := make([]complex128, m)
	b := make([]complex128, m)
	for k := 0; k < n; k++ {
		a[k] = x[k] * w[k]
		b[k] = cmplx.Conj(w[k])
	}
	for k := 1; k < n; k++ {
		b[m-k] = cmplx.Conj(w[k]) // mirror for cyclic convolution
	}

	// Convolve via the power-of-two kernel
	fa := fftPow2(a, false)
	fb := fftPow2(b, false)
	for i := 0; i < m; i++ {
		fa[i] *= fb[i]
	}
	conv := fftPow2(fa, true)
	invM := complex(1/float64(m), 0)

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		out[k] = conv[k] * invM * w[k]
	}

	return out
}
