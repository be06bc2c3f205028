// Package vision: Gaussian blur with a separable kernel and
// clamp-to-edge borders.
package vision

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// GaussianBlur convolves img with a normalized Gaussian kernel of radius
// ceil(3σ), applied as two separable 1-D passes (rows then columns).
// Returns ErrInvalidParameter unless sigma > 0.
// Complexity: O(r·c·radius) time, O(r·c) memory.
func (e *Engine) GaussianBlur(img *numeric.Dense, sigma float64) (*numeric.Dense, error) {
	if math.IsNaN(sigma) || sigma <= 0 {
		return nil, fmt.Errorf("GaussianBlur: sigma %g: %w", sigma, numeric.ErrInvalidParameter)
	}

	kernel := gaussianKernel(sigma)
	rows, cols := img.Rows(), img.Cols()
	radius := len(kernel) / 2

	// Horizontal pass
	tmp, err := numeric.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("GaussianBlur: %w", err)
	}
	var i, j, k int
	var sum float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = -radius; k <= radius; k++ {
				sum += kernel[k+radius] * img.UnsafeAt(i, clamp(j+k, cols))
			}
			tmp.UnsafeSet(i, j, sum)
		}
	}

	// Vertical pass
	out, err := numeric.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("GaussianBlur: %w", err)
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = -radius; k <= radius; k++ {
				sum += kernel[k+radius] * tmp.UnsafeAt(clamp(i+k, rows), j)
			}
			out.UnsafeSet(i, j, sum)
		}
	}

	return out, nil
}

// gaussianKernel builds the normalized 1-D kernel of radius ceil(3σ).
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)

	var total float64
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = v
		total += v
	}
	for i := range kernel {
		kernel[i] /= total // normalize so the kernel sums to one
	}

	return kernel
}

// clamp restricts idx to [0, n).
func clamp(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}

	return idx
}
