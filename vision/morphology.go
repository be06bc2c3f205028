// Package vision: grayscale morphology on a fixed 3×3 square structuring
// element. Open and Close are compositions of Erode and Dilate.
package vision

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// Morphology applies op to img.
// Returns ErrInvalidParameter for an unknown operation.
// Complexity: O(r·c) per pass; Open/Close run two passes.
func (e *Engine) Morphology(img *numeric.Dense, op MorphOp) (*numeric.Dense, error) {
	switch op {
	case Erode:
		return neighborhoodExtreme(img, true)
	case Dilate:
		return neighborhoodExtreme(img, false)
	case Open:
		eroded, err := neighborhoodExtreme(img, true)
		if err != nil {
			return nil, fmt.Errorf("Morphology: %w", err)
		}
		return neighborhoodExtreme(eroded, false)
	case Close:
		dilated, err := neighborhoodExtreme(img, false)
		if err != nil {
			return nil, fmt.Errorf("Morphology: %w", err)
		}
		return neighborhoodExtreme(dilated, true)
	default:
		return nil, fmt.Errorf("Morphology: unknown operation %q: %w", op, numeric.ErrInvalidParameter)
	}
}

// neighborhoodExtreme takes the 3×3 neighborhood minimum (erode) or
// maximum (dilate) at every pixel, clamping at the borders.
func neighborhoodExtreme(img *numeric.Dense, min bool) (*numeric.Dense, error) {
	rows, cols := img.Rows(), img.Cols()
	out, err := numeric.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		i, j, di, dj int
		extreme, v   float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if min {
				extreme = math.Inf(1)
			} else {
				extreme = math.Inf(-1)
			}
			for di = -1; di <= 1; di++ {
				for dj = -1; dj <= 1; dj++ {
					v = img.UnsafeAt(clamp(i+di, rows), clamp(j+dj, cols))
					if (min && v < extreme) || (!min && v > extreme) {
						extreme = v
					}
				}
			}
			out.UnsafeSet(i, j, extreme)
		}
	}

	return out, nil
}
