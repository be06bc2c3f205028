// Package optimize: composite Simpson's rule quadrature.
package optimize

import (
	"fmt"

	"github.com/phantompay1/EVA/numeric"
)

// IntegrateSimpson approximates ∫ₐᵇ f(x) dx with the composite Simpson
// rule over the given number of intervals.
// Returns ErrInvalidParameter unless intervals is even and ≥ 2.
// A constant integrand integrates exactly (up to floating rounding).
// Complexity: O(intervals) evaluations of f.
func (e *Engine) IntegrateSimpson(f Integrand, a, b float64, intervals int) (float64, error) {
	if intervals < 2 || intervals%2 != 0 {
		return 0, fmt.Errorf("IntegrateSimpson: intervals %d must be even and >= 2: %w",
			intervals, numeric.ErrInvalidParameter)
	}

	h := (b - a) / float64(intervals)
	sum := f(a) + f(b)
	for i := 1; i < intervals; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x) // odd nodes carry weight 4
		} else {
			sum += 2 * f(x) // interior even nodes carry weight 2
		}
	}

	return sum * h / 3, nil
}
