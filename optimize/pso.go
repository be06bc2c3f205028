// Package optimize: particle swarm optimization with the standard
// constriction coefficients (inertia 0.7298, cognitive = social =
// 1.49618) and a global-best topology.
package optimize

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// ParticleSwarm minimizes f over a dims-dimensional search space.
// Particles start uniformly in [-PSOInitSpan, PSOInitSpan]^dims with
// zero velocity; each generation updates velocities with the inertia +
// cognitive + social rule, moves the particles, and refreshes personal
// and global bests. The run terminates at maxIter generations or earlier
// when the global best has not improved for PSOPlateauWindow consecutive
// generations (the fitness plateau), which counts as convergence.
// Returns ErrInvalidParameter for non-positive dims, particle count, or
// iteration budget.
// Complexity: O(maxIter·particles·dim).
func (e *Engine) ParticleSwarm(f Objective, dims, particles, maxIter int) (*Result, error) {
	// Stage 1: Validate
	if dims <= 0 {
		return nil, fmt.Errorf("ParticleSwarm: dims %d: %w", dims, numeric.ErrInvalidParameter)
	}
	if particles <= 0 {
		return nil, fmt.Errorf("ParticleSwarm: particles %d: %w", particles, numeric.ErrInvalidParameter)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("ParticleSwarm: max iterations %d: %w", maxIter, numeric.ErrInvalidParameter)
	}

	// Stage 2: Init swarm
	rng := e.rng()
	pos := make([]numeric.Vector, particles)
	vel := make([]numeric.Vector, particles)
	pBest := make([]numeric.Vector, particles)
	pBestVal := make([]float64, particles)

	gBest := make(numeric.Vector, dims)
	gBestVal := math.Inf(1)

	for p := 0; p < particles; p++ {
		pos[p] = make(numeric.Vector, dims)
		vel[p] = make(numeric.Vector, dims)
		for d := 0; d < dims; d++ {
			pos[p][d] = (rng.Float64()*2 - 1) * PSOInitSpan
		}
		pBest[p] = numeric.CloneVector(pos[p])
		pBestVal[p] = f(pos[p])
		if pBestVal[p] < gBestVal {
			gBestVal = pBestVal[p]
			copy(gBest, pos[p])
		}
	}

	// Stage 3: Iterate generations
	var (
		gen, p, d int
		r1, r2    float64
		val       float64
		stall     int // generations since the global best improved
		lastBest  = gBestVal
	)
	for gen = 0; gen < maxIter; gen++ {
		for p = 0; p < particles; p++ {
			for d = 0; d < dims; d++ {
				r1 = rng.Float64()
				r2 = rng.Float64()
				vel[p][d] = PSOInertia*vel[p][d] +
					PSOCognitive*r1*(pBest[p][d]-pos[p][d]) +
					PSOSocial*r2*(gBest[d]-pos[p][d])
				pos[p][d] += vel[p][d]
			}
			val = f(pos[p])
			if val < pBestVal[p] {
				pBestVal[p] = val
				copy(pBest[p], pos[p])
				if val < gBestVal {
					gBestVal = val
					copy(gBest, pos[p])
				}
			}
		}

		// Fitness plateau detection
		if gBestVal < lastBest {
			lastBest = gBestVal
			stall = 0
		} else {
			stall++
			if stall >= PSOPlateauWindow {
				return &Result{
					OptimalSolution:  gBest,
					OptimalValue:     gBestVal,
					Iterations:       gen + 1,
					Converged:        true,
					ConvergenceError: 0,
				}, nil
			}
		}
	}

	// Stage 4: MaxIterationsReached
	return &Result{
		OptimalSolution:  gBest,
		OptimalValue:     gBestVal,
		Iterations:       maxIter,
		Converged:        false,
		ConvergenceError: gBestVal - lastBest,
	}, nil
}
