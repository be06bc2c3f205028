// Package optimize: simulated annealing with geometric cooling and
// Metropolis acceptance.
package optimize

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// SimulatedAnnealing minimizes f starting from x0. Each iteration
// perturbs the current point with Gaussian noise scaled by the current
// temperature, accepts improvements unconditionally and worse candidates
// with the Metropolis probability exp(-Δ/T), then cools geometrically
// (T *= coolingRate). The schedule terminates when T falls below
// TemperatureFloor; Converged reports whether the floor was reached.
// Returns ErrEmptySequence for an empty start point and
// ErrInvalidParameter for a non-positive initial temperature or a
// cooling rate outside (0, 1).
// Complexity: O(iterations·dim) objective evaluations; the iteration
// count is log(T0/floor)/log(1/coolingRate).
func (e *Engine) SimulatedAnnealing(f Objective, x0 numeric.Vector, initialTemp, coolingRate float64) (*Result, error) {
	// Stage 1: Validate
	if len(x0) == 0 {
		return nil, fmt.Errorf("SimulatedAnnealing: %w", numeric.ErrEmptySequence)
	}
	if math.IsNaN(initialTemp) || initialTemp <= 0 {
		return nil, fmt.Errorf("SimulatedAnnealing: initial temperature %g: %w", initialTemp, numeric.ErrInvalidParameter)
	}
	if math.IsNaN(coolingRate) || coolingRate <= 0 || coolingRate >= 1 {
		return nil, fmt.Errorf("SimulatedAnnealing: cooling rate %g: %w", coolingRate, numeric.ErrInvalidParameter)
	}

	// Stage 2: Init
	rng := e.rng()
	current := numeric.CloneVector(x0)
	currentVal := f(current)
	best := numeric.CloneVector(current)
	bestVal := currentVal
	candidate := make(numeric.Vector, len(x0))

	// Stage 3: Iterate until the temperature floor
	var (
		temp       = initialTemp
		iterations int
		delta      float64
		stepScale  float64
	)
	for temp > TemperatureFloor {
		iterations++
		// Perturbation magnitude shrinks with the temperature so the
		// walk narrows as the schedule cools.
		stepScale = math.Sqrt(temp / initialTemp)
		for i := range candidate {
			candidate[i] = current[i] + rng.NormFloat64()*stepScale
		}
		delta = f(candidate) - currentVal

		// Metropolis criterion
		if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
			copy(current, candidate)
			currentVal += delta
			if currentVal < bestVal {
				copy(best, current)
				bestVal = currentVal
			}
		}
		temp *= coolingRate // geometric decay
	}

	// Stage 4: Finalize — the floor was reached, the schedule converged
	return &Result{
		OptimalSolution:  best,
		OptimalValue:     bestVal,
		Iterations:       iterations,
		Converged:        true,
		ConvergenceError: temp,
	}, nil
}
