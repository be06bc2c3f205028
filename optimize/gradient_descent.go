// Package optimize: gradient descent with a fixed learning rate.
package optimize

import (
	"fmt"

	"github.com/phantompay1/EVA/numeric"
)

// GradientDescent minimizes f starting from x0 with a fixed learning
// rate. When grad is nil the gradient is estimated by central finite
// differences.
// State machine: Init → Iterate → {Converged | MaxIterationsReached}.
// Converged means the step norm fell below DefaultConvergenceEps before
// the iteration budget ran out; ConvergenceError reports the final step
// norm either way.
// Returns ErrEmptySequence for an empty start point and
// ErrInvalidParameter for a non-positive learning rate or budget.
// Complexity: O(maxIter·dim) gradient evaluations.
func (e *Engine) GradientDescent(f Objective, grad Gradient, x0 numeric.Vector, learningRate float64, maxIter int) (*Result, error) {
	// Stage 1: Validate
	if len(x0) == 0 {
		return nil, fmt.Errorf("GradientDescent: %w", numeric.ErrEmptySequence)
	}
	if learningRate <= 0 {
		return nil, fmt.Errorf("GradientDescent: learning rate %g: %w", learningRate, numeric.ErrInvalidParameter)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("GradientDescent: max iterations %d: %w", maxIter, numeric.ErrInvalidParameter)
	}
	if grad == nil {
		grad = func(x numeric.Vector) numeric.Vector { return NumericGradient(f, x) }
	}

	// Stage 2: Iterate
	x := numeric.CloneVector(x0)
	step := make(numeric.Vector, len(x))
	var (
		iter     int
		g        numeric.Vector
		stepNorm float64
	)
	for iter = 0; iter < maxIter; iter++ {
		g = grad(x)
		for i := range x {
			step[i] = learningRate * g[i]
			x[i] -= step[i]
		}
		stepNorm = numeric.Norm2(step)
		if stepNorm < DefaultConvergenceEps {
			// Stage 3a: Converged
			return &Result{
				OptimalSolution:  x,
				OptimalValue:     f(x),
				Iterations:       iter + 1,
				Converged:        true,
				ConvergenceError: stepNorm,
			}, nil
		}
	}

	// Stage 3b: MaxIterationsReached
	return &Result{
		OptimalSolution:  x,
		OptimalValue:     f(x),
		Iterations:       maxIter,
		Converged:        false,
		ConvergenceError: stepNorm,
	}, nil
}
