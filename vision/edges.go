// Package vision: edge detection. Sobel yields raw gradient magnitude;
// Canny chains blur → gradients → non-maximum suppression → hysteresis.
package vision

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// EdgeDetection returns an edge map of img using the given method.
// Sobel produces gradient magnitudes; Canny produces a binary map with
// edge pixels set to 255.
// Returns ErrInvalidParameter for an unknown method or when
// low ≥ high / negative thresholds are supplied for Canny.
// Complexity: O(r·c) beyond the blur.
func (e *Engine) EdgeDetection(img *numeric.Dense, method EdgeMethod, low, high float64) (*numeric.Dense, error) {
	switch method {
	case Sobel:
		mag, _, err := sobelGradients(img)
		if err != nil {
			return nil, fmt.Errorf("EdgeDetection: %w", err)
		}
		return mag, nil

	case Canny:
		if low < 0 || high <= low {
			return nil, fmt.Errorf("EdgeDetection: canny thresholds [%g,%g]: %w", low, high, numeric.ErrInvalidParameter)
		}
		return e.canny(img, low, high)

	default:
		return nil, fmt.Errorf("EdgeDetection: unknown method %q: %w", method, numeric.ErrInvalidParameter)
	}
}

// sobelGradients computes per-pixel gradient magnitude and direction
// using the 3×3 Sobel operators with clamp-to-edge sampling.
func sobelGradients(img *numeric.Dense) (mag, dir *numeric.Dense, err error) {
	rows, cols := img.Rows(), img.Cols()
	mag, err = numeric.NewDense(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	dir, err = numeric.NewDense(rows, cols)
	if err != nil {
		return nil, nil, err
	}

	// Sobel kernels, unrolled over the 3×3 neighborhood.
	var i, j int
	var p00, p01, p02, p10, p12, p20, p21, p22 float64
	var gx, gy float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			p00 = img.UnsafeAt(clamp(i-1, rows), clamp(j-1, cols))
			p01 = img.UnsafeAt(clamp(i-1, rows), j)
			p02 = img.UnsafeAt(clamp(i-1, rows), clamp(j+1, cols))
			p10 = img.UnsafeAt(i, clamp(j-1, cols))
			p12 = img.UnsafeAt(i, clamp(j+1, cols))
			p20 = img.UnsafeAt(clamp(i+1, rows), clamp(j-1, cols))
			p21 = img.UnsafeAt(clamp(i+1, rows), j)
			p22 = img.UnsafeAt(clamp(i+1, rows), clamp(j+1, cols))

			gx = (p02 + 2*p12 + p22) - (p00 + 2*p10 + p20)
			gy = (p20 + 2*p21 + p22) - (p00 + 2*p01 + p02)

			mag.UnsafeSet(i, j, math.Hypot(gx, gy))
			dir.UnsafeSet(i, j, math.Atan2(gy, gx))
		}
	}

	return mag, dir, nil
}

// canny runs the full pipeline on a lightly smoothed image.
func (e *Engine) canny(img *numeric.Dense, low, high float64) (*numeric.Dense, error) {
	// Stage 1: smooth with a fixed sigma so gradients are stable
	smoothed, err := e.GaussianBlur(img, 1.0)
	if err != nil {
		return nil, fmt.Errorf("canny: %w", err)
	}
	mag, dir, err := sobelGradients(smoothed)
	if err != nil {
		return nil, fmt.Errorf("canny: %w", err)
	}

	rows, cols := img.Rows(), img.Cols()

	// Stage 2: non-maximum suppression along the gradient direction
	thin, err := numeric.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("canny: %w", err)
	}
	var i, j int
	var angle, m, n1, n2 float64
	var di, dj int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m = mag.UnsafeAt(i, j)
			if m == 0 {
				continue
			}
			// Quantize the direction into one of four neighbor axes
			angle = dir.UnsafeAt(i, j) * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}
			switch {
			case angle < 22.5 || angle >= 157.5:
				di, dj = 0, 1 // horizontal gradient
			case angle < 67.5:
				di, dj = 1, 1 // diagonal
			case angle < 112.5:
				di, dj = 1, 0 // vertical
			default:
				di, dj = 1, -1 // anti-diagonal
			}
			n1 = mag.UnsafeAt(clamp(i+di, rows), clamp(j+dj, cols))
			n2 = mag.UnsafeAt(clamp(i-di, rows), clamp(j-dj, cols))
			if m >= n1 && m >= n2 {
				thin.UnsafeSet(i, j, m) // local maximum survives
			}
		}
	}

	// Stage 3: hysteresis — strong pixels seed a flood fill that keeps
	// connected weak pixels and discards the rest.
	const (
		weak   = 1.0
		strong = 255.0
	)
	out, err := numeric.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("canny: %w", err)
	}
	stack := make([][2]int, 0, rows*cols/8)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m = thin.UnsafeAt(i, j)
			if m >= high {
				out.UnsafeSet(i, j, strong)
				stack = append(stack, [2]int{i, j})
			} else if m >= low {
				out.UnsafeSet(i, j, weak)
			}
		}
	}
	var top [2]int
	var ni, nj int
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for di = -1; di <= 1; di++ {
			for dj = -1; dj <= 1; dj++ {
				ni, nj = top[0]+di, top[1]+dj
				if ni < 0 || ni >= rows || nj < 0 || nj >= cols {
					continue
				}
				if out.UnsafeAt(ni, nj) == weak {
					out.UnsafeSet(ni, nj, strong) // promote connected weak pixel
					stack = append(stack, [2]int{ni, nj})
				}
			}
		}
	}
	// Drop weak pixels that were never promoted
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out.UnsafeAt(i, j) == weak {
				out.UnsafeSet(i, j, 0)
			}
		}
	}

	return out, nil
}
