// Package optimize: fixed-step explicit ODE integration. The scheme is
// classical fourth-order Runge–Kutta (RK4), chosen over forward Euler
// for its O(h⁴) local accuracy at the same API shape.
package optimize

import (
	"fmt"

	"github.com/phantompay1/EVA/numeric"
)

// SolveODE integrates y' = f(t, y) from t0 to tf in steps equal
// increments and returns the sampled trajectory, steps+1 values
// including y(t0) = y0.
// Returns ErrInvalidParameter for a non-positive step count or a
// degenerate interval (tf == t0); integrating backwards (tf < t0) is
// legal, the step is simply negative.
// Complexity: O(steps) with four f evaluations per step.
func (e *Engine) SolveODE(f ODEFunc, y0, t0, tf float64, steps int) (numeric.Vector, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("SolveODE: steps %d: %w", steps, numeric.ErrInvalidParameter)
	}
	if tf == t0 {
		return nil, fmt.Errorf("SolveODE: empty interval [%g,%g]: %w", t0, tf, numeric.ErrInvalidParameter)
	}

	h := (tf - t0) / float64(steps)
	trajectory := make(numeric.Vector, steps+1)
	trajectory[0] = y0

	var (
		t, y           float64
		k1, k2, k3, k4 float64
	)
	y = y0
	for i := 0; i < steps; i++ {
		t = t0 + float64(i)*h
		k1 = f(t, y)
		k2 = f(t+h/2, y+h*k1/2)
		k3 = f(t+h/2, y+h*k2/2)
		k4 = f(t+h, y+h*k3)
		y += h * (k1 + 2*k2 + 2*k3 + k4) / 6
		trajectory[i+1] = y
	}

	return trajectory, nil
}
