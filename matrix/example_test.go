package matrix_test

import (
	"fmt"

	"github.com/phantompay1/EVA/matrix"
	"github.com/phantompay1/EVA/numeric"
)

// ExampleEngine_Solve demonstrates solving a small linear system.
func ExampleEngine_Solve() {
	e := matrix.NewEngine()

	// 2x + y = 5
	//  x + 3y = 10
	a, _ := numeric.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
	x, _ := e.Solve(a, numeric.Vector{5, 10})

	fmt.Printf("x = %.2f, y = %.2f\n", x[0], x[1])
	// Output:
	// x = 1.00, y = 3.00
}

// ExampleEngine_Determinant demonstrates the LU-based determinant.
func ExampleEngine_Determinant() {
	e := matrix.NewEngine()

	m, _ := numeric.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	det, _ := e.Determinant(m)

	fmt.Printf("det = %.0f\n", det)
	// Output:
	// det = -2
}
