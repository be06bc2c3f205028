// Package vision: bilinear image resizing.
package vision

import (
	"fmt"

	"github.com/phantompay1/EVA/numeric"
)

// Resize scales img to height×width using bilinear interpolation.
// Returns ErrInvalidParameter unless both target dimensions are positive.
// Complexity: O(height·width) time and memory.
func (e *Engine) Resize(img *numeric.Dense, width, height int) (*numeric.Dense, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Resize: target %dx%d: %w", height, width, numeric.ErrInvalidParameter)
	}

	out, err := numeric.NewDense(height, width)
	if err != nil {
		return nil, fmt.Errorf("Resize: %w", err)
	}

	srcRows, srcCols := img.Rows(), img.Cols()
	// Degenerate single-pixel axes map onto source index 0.
	var rowStep, colStep float64
	if height > 1 {
		rowStep = float64(srcRows-1) / float64(height-1)
	}
	if width > 1 {
		colStep = float64(srcCols-1) / float64(width-1)
	}

	var (
		i, j, r0, c0   int
		fr, fc, sr, sc float64
		v00, v01       float64
		v10, v11       float64
	)
	for i = 0; i < height; i++ {
		sr = float64(i) * rowStep
		r0 = int(sr)
		if r0 >= srcRows-1 {
			r0 = srcRows - 1
		}
		fr = sr - float64(r0)
		for j = 0; j < width; j++ {
			sc = float64(j) * colStep
			c0 = int(sc)
			if c0 >= srcCols-1 {
				c0 = srcCols - 1
			}
			fc = sc - float64(c0)

			// Fetch the 2×2 neighborhood, clamped at the far edges.
			v00 = img.UnsafeAt(r0, c0)
			v01 = img.UnsafeAt(r0, clamp(c0+1, srcCols))
			v10 = img.UnsafeAt(clamp(r0+1, srcRows), c0)
			v11 = img.UnsafeAt(clamp(r0+1, srcRows), clamp(c0+1, srcCols))

			out.UnsafeSet(i, j,
				v00*(1-fr)*(1-fc)+v01*(1-fr)*fc+v10*fr*(1-fc)+v11*fr*fc)
		}
	}

	return out, nil
}
