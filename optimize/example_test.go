package optimize_test

import (
	"fmt"

	"github.com/phantompay1/EVA/numeric"
	"github.com/phantompay1/EVA/optimize"
)

// ExampleEngine_GradientDescent demonstrates minimizing a quadratic.
func ExampleEngine_GradientDescent() {
	e := optimize.NewEngine()

	f := func(x numeric.Vector) float64 { return (x[0] - 3) * (x[0] - 3) }
	res, _ := e.GradientDescent(f, nil, numeric.Vector{0}, 0.1, 1000)

	fmt.Printf("x ≈ %.3f, converged: %v\n", res.OptimalSolution[0], res.Converged)
	// Output:
	// x ≈ 3.000, converged: true
}

// ExampleEngine_IntegrateSimpson demonstrates composite quadrature.
func ExampleEngine_IntegrateSimpson() {
	e := optimize.NewEngine()

	square := func(x float64) float64 { return x * x }
	v, _ := e.IntegrateSimpson(square, 0, 1, 100)

	fmt.Printf("∫x² dx over [0,1] ≈ %.4f\n", v)
	// Output:
	// ∫x² dx over [0,1] ≈ 0.3333
}
