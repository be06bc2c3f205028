// Package vision: image similarity via zero-mean normalized
// cross-correlation, mapped from [-1, 1] into [0, 1].
package vision

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// Similarity returns a score in [0, 1]: 1 for perfectly correlated
// images (including any image against itself), 0.5 for uncorrelated, 0
// for perfectly anti-correlated. Two constant images compare as 1 when
// equal and 0.5 otherwise, since correlation is undefined there.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(r·c).
func (e *Engine) Similarity(a, b *numeric.Dense) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("Similarity: %dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), numeric.ErrDimensionMismatch)
	}

	n := float64(a.Rows() * a.Cols())

	// Means
	var meanA, meanB float64
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			meanA += a.UnsafeAt(i, j)
			meanB += b.UnsafeAt(i, j)
		}
	}
	meanA /= n
	meanB /= n

	// Zero-mean correlation moments
	var cross, varA, varB, da, db float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			da = a.UnsafeAt(i, j) - meanA
			db = b.UnsafeAt(i, j) - meanB
			cross += da * db
			varA += da * da
			varB += db * db
		}
	}

	// Degenerate flat images: identical content scores 1, otherwise the
	// correlation carries no information and we report the midpoint.
	if varA == 0 || varB == 0 {
		if equalDense(a, b) {
			return 1, nil
		}
		return 0.5, nil
	}

	ncc := cross / math.Sqrt(varA*varB)

	return (ncc + 1) / 2, nil
}

// equalDense reports exact elementwise equality.
func equalDense(a, b *numeric.Dense) bool {
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if a.UnsafeAt(i, j) != b.UnsafeAt(i, j) {
				return false
			}
		}
	}

	return true
}
