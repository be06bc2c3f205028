// Package vision: deterministic feature descriptors and Harris corner
// detection. Same image in, same output out — no randomness anywhere.
package vision

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// Corner is a detected corner location in row/column image coordinates.
type Corner struct {
	Row int
	Col int
}

// ExtractFeatures returns a FeatureBins-long gradient-orientation
// histogram descriptor: each pixel votes its gradient magnitude into the
// bucket covering its gradient direction, and the histogram is
// L1-normalized so descriptors of differently sized images compare.
// Complexity: O(r·c) time, O(FeatureBins) memory.
func (e *Engine) ExtractFeatures(img *numeric.Dense) (numeric.Vector, error) {
	mag, dir, err := sobelGradients(img)
	if err != nil {
		return nil, fmt.Errorf("ExtractFeatures: %w", err)
	}

	hist := make(numeric.Vector, FeatureBins)
	binWidth := 2 * math.Pi / FeatureBins

	var i, j, bin int
	var total float64
	for i = 0; i < img.Rows(); i++ {
		for j = 0; j < img.Cols(); j++ {
			// Shift direction from [-π, π) into [0, 2π) before bucketing.
			bin = int((dir.UnsafeAt(i, j) + math.Pi) / binWidth)
			if bin >= FeatureBins {
				bin = FeatureBins - 1
			}
			hist[bin] += mag.UnsafeAt(i, j)
			total += mag.UnsafeAt(i, j)
		}
	}
	if total > 0 {
		for i = range hist {
			hist[i] /= total
		}
	}

	return hist, nil
}

// DetectCorners runs the Harris detector with the documented constants
// (window 3×3, k = HarrisK) and returns candidate pixels whose response
// exceeds threshold and is a local maximum, in row-major scan order.
// A threshold ≤ 0 uses DefaultCornerThreshold.
// Complexity: O(r·c) time.
func (e *Engine) DetectCorners(img *numeric.Dense, threshold float64) ([]Corner, error) {
	if threshold <= 0 {
		threshold = DefaultCornerThreshold
	}
	rows, cols := img.Rows(), img.Cols()

	// Stage 1: gradients
	gx, gy, err := rawGradients(img)
	if err != nil {
		return nil, fmt.Errorf("DetectCorners: %w", err)
	}

	// Stage 2: Harris response per pixel over a 3×3 window
	resp, err := numeric.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("DetectCorners: %w", err)
	}
	var (
		i, j, wi, wj  int
		sxx, syy, sxy float64
		x, y          float64
		det, trace    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sxx, syy, sxy = 0, 0, 0
			for wi = -1; wi <= 1; wi++ {
				for wj = -1; wj <= 1; wj++ {
					x = gx.UnsafeAt(clamp(i+wi, rows), clamp(j+wj, cols))
					y = gy.UnsafeAt(clamp(i+wi, rows), clamp(j+wj, cols))
					sxx += x * x
					syy += y * y
					sxy += x * y
				}
			}
			det = sxx*syy - sxy*sxy
			trace = sxx + syy
			resp.UnsafeSet(i, j, det-HarrisK*trace*trace)
		}
	}

	// Stage 3: threshold + 3×3 non-maximum suppression, scan order fixed
	var corners []Corner
	var r float64
	var isMax bool
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			r = resp.UnsafeAt(i, j)
			if r < threshold {
				continue
			}
			isMax = true
			for wi = -1; wi <= 1 && isMax; wi++ {
				for wj = -1; wj <= 1; wj++ {
					if wi == 0 && wj == 0 {
						continue
					}
					if resp.UnsafeAt(clamp(i+wi, rows), clamp(j+wj, cols)) > r {
						isMax = false
						break
					}
				}
			}
			if isMax {
				corners = append(corners, Corner{Row: i, Col: j})
			}
		}
	}

	return corners, nil
}

// rawGradients computes unsmoothed central-difference gradients, the
// cheap input the Harris window sums over.
func rawGradients(img *numeric.Dense) (gx, gy *numeric.Dense, err error) {
	rows, cols := img.Rows(), img.Cols()
	gx, err = numeric.NewDense(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	gy, err = numeric.NewDense(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			gx.UnsafeSet(i, j, (img.UnsafeAt(i, clamp(j+1, cols))-img.UnsafeAt(i, clamp(j-1, cols)))/2)
			gy.UnsafeSet(i, j, (img.UnsafeAt(clamp(i+1, rows), j)-img.UnsafeAt(clamp(i-1, rows), j))/2)
		}
	}

	return gx, gy, nil
}
