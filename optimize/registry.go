// Package optimize: named ODE right-hand sides and integrands for
// requests arriving as text payloads. Like ByName, these registries
// exist only because func values cannot cross the dispatch boundary;
// library callers pass their own funcs.
package optimize

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// ODEByName resolves a named ODE right-hand side.
// Returns ErrInvalidParameter for unknown names.
func ODEByName(name string) (ODEFunc, error) {
	switch name {
	case "decay":
		// y' = -y: exponential decay, y(t) = y0·e^{-t}.
		return func(_, y float64) float64 { return -y }, nil
	case "growth":
		// y' = y: exponential growth.
		return func(_, y float64) float64 { return y }, nil
	case "logistic":
		// y' = y(1-y): logistic curve saturating at 1.
		return func(_, y float64) float64 { return y * (1 - y) }, nil
	default:
		return nil, fmt.Errorf("ODEByName: unknown ode %q: %w", name, numeric.ErrInvalidParameter)
	}
}

// IntegrandByName resolves a named integrand, scaled by scale (a scale
// of 0 is treated as 1 so omitted payload fields keep the plain shape).
// Returns ErrInvalidParameter for unknown names.
func IntegrandByName(name string, scale float64) (Integrand, error) {
	if scale == 0 {
		scale = 1
	}
	switch name {
	case "constant":
		c := scale
		return func(_ float64) float64 { return c }, nil
	case "linear":
		c := scale
		return func(x float64) float64 { return c * x }, nil
	case "square":
		c := scale
		return func(x float64) float64 { return c * x * x }, nil
	case "sin":
		c := scale
		return func(x float64) float64 { return c * math.Sin(x) }, nil
	case "exp":
		c := scale
		return func(x float64) float64 { return c * math.Exp(x) }, nil
	default:
		return nil, fmt.Errorf("IntegrandByName: unknown integrand %q: %w", name, numeric.ErrInvalidParameter)
	}
}
