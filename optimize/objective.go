// Package optimize: objective function capability types, the
// finite-difference gradient fallback, and the named objectives the
// dispatch payload can refer to by string.
package optimize

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// Objective evaluates the function being minimized at x.
type Objective func(x numeric.Vector) float64

// Gradient evaluates the analytic gradient of an Objective at x.
// When no Gradient is supplied, minimizers fall back to finite
// differences via NumericGradient.
type Gradient func(x numeric.Vector) numeric.Vector

// ODEFunc is the right-hand side y' = f(t, y) of a first-order ODE.
type ODEFunc func(t, y float64) float64

// Integrand is a scalar function of one variable for quadrature.
type Integrand func(x float64) float64

// FiniteDiffStep is the central-difference step used by NumericGradient.
const FiniteDiffStep = 1e-7

// NumericGradient estimates ∇f at x by central differences.
// Complexity: 2·dim objective evaluations.
func NumericGradient(f Objective, x numeric.Vector) numeric.Vector {
	grad := make(numeric.Vector, len(x))
	probe := numeric.CloneVector(x)
	for i := range x {
		probe[i] = x[i] + FiniteDiffStep
		fPlus := f(probe)
		probe[i] = x[i] - FiniteDiffStep
		fMinus := f(probe)
		probe[i] = x[i] // restore before the next coordinate
		grad[i] = (fPlus - fMinus) / (2 * FiniteDiffStep)
	}

	return grad
}

// ByName resolves the named objectives a string payload can request.
// Library callers pass func values directly; the registry exists because
// callables cannot cross a text payload boundary.
// Returns ErrInvalidParameter for unknown names.
func ByName(name string) (Objective, error) {
	switch name {
	case "sphere":
		// f(x) = Σ xᵢ², global minimum 0 at the origin.
		return func(x numeric.Vector) float64 {
			var sum float64
			for _, v := range x {
				sum += v * v
			}
			return sum
		}, nil

	case "rosenbrock":
		// Classic banana valley, global minimum 0 at (1, ..., 1).
		return func(x numeric.Vector) float64 {
			var sum float64
			for i := 0; i+1 < len(x); i++ {
				a := x[i+1] - x[i]*x[i]
				b := 1 - x[i]
				sum += 100*a*a + b*b
			}
			return sum
		}, nil

	case "rastrigin":
		// Highly multimodal; global minimum 0 at the origin.
		return func(x numeric.Vector) float64 {
			sum := 10 * float64(len(x))
			for _, v := range x {
				sum += v*v - 10*math.Cos(2*math.Pi*v)
			}
			return sum
		}, nil

	default:
		return nil, fmt.Errorf("ByName: unknown objective %q: %w", name, numeric.ErrInvalidParameter)
	}
}
