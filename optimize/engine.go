// Package optimize: Engine construction, shared Result shape, documented
// algorithm constants, capabilities.
package optimize

import (
	"math/rand"

	"github.com/phantompay1/EVA/numeric"
)

// Documented algorithm constants (single source of truth).
const (
	// DefaultConvergenceEps terminates gradient descent when the step
	// norm falls below it.
	DefaultConvergenceEps = 1e-8

	// DefaultLearningRate and DefaultMaxIterations are the gradient
	// descent defaults when the request supplies none.
	DefaultLearningRate  = 0.01
	DefaultMaxIterations = 1000

	// Annealing defaults: initial temperature, geometric cooling factor,
	// and the floor at which the schedule terminates.
	DefaultInitialTemperature = 100.0
	DefaultCoolingRate        = 0.95
	TemperatureFloor          = 1e-8

	// Particle swarm constants: standard constriction coefficients, the
	// default swarm size, and the stall window for the fitness plateau
	// cutoff.
	PSOInertia       = 0.7298
	PSOCognitive     = 1.49618
	PSOSocial        = 1.49618
	DefaultParticles = 30
	PSOPlateauWindow = 50
	PSOInitSpan      = 10.0 // particles start uniformly in [-span, span]^dims
	DefaultSeed      = 1
)

// Result is the common outcome shape of every minimizer: the best point
// found, its objective value, the iterations spent, whether the run
// converged before exhausting its budget, and the final convergence
// measure (step norm, temperature, or best-value delta, per algorithm).
type Result struct {
	OptimalSolution  numeric.Vector
	OptimalValue     float64
	Iterations       int
	Converged        bool
	ConvergenceError float64
}

// Engine exposes the optimization operation set. The stored seed feeds a
// fresh generator per stochastic call, so a single Engine is both
// reproducible and safe for concurrent use.
type Engine struct {
	seed int64
}

// Option mutates Engine configuration at construction time.
type Option func(*Engine)

// WithSeed fixes the pseudo-random seed used by SimulatedAnnealing and
// ParticleSwarm.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// NewEngine constructs an optimization Engine with documented defaults.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{seed: DefaultSeed}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// rng returns a fresh deterministic generator for one stochastic run.
func (e *Engine) rng() *rand.Rand {
	return rand.New(rand.NewSource(e.seed))
}

// Capabilities returns the fixed, ordered capability list the
// optimization engine advertises. Order and content are part of the
// dispatch contract.
func Capabilities() []string {
	return []string{
		"gradient_descent",
		"simulated_annealing",
		"particle_swarm_optimization",
		"numerical_integration",
		"ode_solving",
		"nonlinear_optimization",
	}
}
