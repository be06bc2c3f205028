// Package matrix: LU factorization with partial pivoting and the
// operations built on it — determinant, linear solve, inversion.
package matrix

import (
	"fmt"
	"math"

	"github.com/phantompay1/EVA/numeric"
)

// luFactor performs Doolittle LU decomposition with partial (row)
// pivoting on a square matrix m.
// Stage 1 (Validate): m must be square.
// Stage 2 (Prepare): clone m into compact storage (L below diagonal with
// implicit unit diagonal, U on and above), identity permutation.
// Stage 3 (Execute): for each column pick the largest pivot, swap rows,
// eliminate below.
// Returns the compact factors, the row permutation, and the permutation
// sign (+1/-1). A zero pivot column is left in place; callers detect
// singularity through the determinant.
// Complexity: O(n³) time, O(n²) memory.
func luFactor(m *numeric.Dense) (lu *numeric.Dense, perm []int, sign float64, err error) {
	n, cols := m.Rows(), m.Cols()
	if n != cols {
		return nil, nil, 0, fmt.Errorf("luFactor: non-square %dx%d: %w", n, cols, numeric.ErrNonSquare)
	}

	lu = m.Clone()
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1.0

	var (
		col, row, k  int     // loop indices
		pivotRow     int     // row holding the largest pivot candidate
		pivot, cand  float64 // pivot magnitudes
		pivotVal     float64 // actual pivot value
		factor, uVal float64 // elimination temporaries
	)
	for col = 0; col < n; col++ {
		// Select the largest-magnitude pivot in this column
		pivotRow, pivot = col, math.Abs(lu.UnsafeAt(col, col))
		for row = col + 1; row < n; row++ {
			if cand = math.Abs(lu.UnsafeAt(row, col)); cand > pivot {
				pivotRow, pivot = row, cand
			}
		}
		// Swap rows when a better pivot was found
		if pivotRow != col {
			for k = 0; k < n; k++ {
				a, b := lu.UnsafeAt(col, k), lu.UnsafeAt(pivotRow, k)
				lu.UnsafeSet(col, k, b)
				lu.UnsafeSet(pivotRow, k, a)
			}
			perm[col], perm[pivotRow] = perm[pivotRow], perm[col]
			sign = -sign // each swap flips the determinant sign
		}

		pivotVal = lu.UnsafeAt(col, col)
		if pivotVal == 0 {
			continue // singular column; determinant will be zero
		}
		// Eliminate entries below the pivot
		for row = col + 1; row < n; row++ {
			factor = lu.UnsafeAt(row, col) / pivotVal
			lu.UnsafeSet(row, col, factor) // store L multiplier in place
			for k = col + 1; k < n; k++ {
				uVal = lu.UnsafeAt(row, k) - factor*lu.UnsafeAt(col, k)
				lu.UnsafeSet(row, k, uVal)
			}
		}
	}

	return lu, perm, sign, nil
}

// Determinant returns det(m) via pivoted LU as sign·∏U[i][i].
// Returns ErrNonSquare for rectangular input.
// Complexity: O(n³) time, O(n²) memory.
func (e *Engine) Determinant(m *numeric.Dense) (float64, error) {
	lu, _, sign, err := luFactor(m)
	if err != nil {
		return 0, fmt.Errorf("Determinant: %w", err)
	}

	det := sign
	for i := 0; i < m.Rows(); i++ {
		det *= lu.UnsafeAt(i, i) // product of U's diagonal
	}

	return det, nil
}

// luSolve solves L·U·x = Pb for one right-hand side using the compact
// factors produced by luFactor. Scratch slices y and x are caller-owned
// so Inverse can reuse them per column.
func luSolve(lu *numeric.Dense, perm []int, b, y, x []float64) {
	n := lu.Rows()
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L·y = Pb (unit diagonal L)
	for i = 0; i < n; i++ {
		sum = b[perm[i]]
		for k = 0; k < i; k++ {
			sum -= lu.UnsafeAt(i, k) * y[k]
		}
		y[i] = sum
	}
	// Backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= lu.UnsafeAt(i, k) * x[k]
		}
		x[i] = sum / lu.UnsafeAt(i, i)
	}
}

// Solve returns x such that m·x = b within numerical tolerance.
// Stage 1 (Validate): b length must equal m.Rows (ErrDimensionMismatch);
// m must be square and well-conditioned in the inverse sense — a
// near-zero determinant yields ErrSingular.
// Stage 2 (Decompose): pivoted LU.
// Stage 3 (Execute): forward/backward substitution.
// Complexity: O(n³) time, O(n²) memory.
func (e *Engine) Solve(m *numeric.Dense, b numeric.Vector) (numeric.Vector, error) {
	if len(b) != m.Rows() {
		return nil, fmt.Errorf("Solve: rhs length %d for %dx%d system: %w",
			len(b), m.Rows(), m.Cols(), numeric.ErrDimensionMismatch)
	}
	lu, perm, sign, err := luFactor(m)
	if err != nil {
		// Non-square input cannot be inverted; report it as singular,
		// mirroring the Inverse contract.
		return nil, fmt.Errorf("Solve: non-square %dx%d: %w", m.Rows(), m.Cols(), numeric.ErrSingular)
	}
	if singularFactors(lu, sign) {
		return nil, fmt.Errorf("Solve: %w", numeric.ErrSingular)
	}

	n := m.Rows()
	y := make([]float64, n)
	x := make([]float64, n)
	luSolve(lu, perm, b, y, x)

	return x, nil
}

// Inverse returns m⁻¹, or ErrSingular when m is not square or its
// determinant is within SingularEpsilon of zero.
// Blueprint:
//
//	Stage 1 (Decompose): pivoted LU, singularity check via determinant.
//	Stage 2 (Execute): solve L·U·x = Pe_i for every basis column e_i.
//	Stage 3 (Finalize): assemble columns into the inverse.
//
// Complexity: O(n³) time, O(n²) memory.
func (e *Engine) Inverse(m *numeric.Dense) (*numeric.Dense, error) {
	lu, perm, sign, err := luFactor(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", m.Rows(), m.Cols(), numeric.ErrSingular)
	}
	if singularFactors(lu, sign) {
		return nil, fmt.Errorf("Inverse: %w", numeric.ErrSingular)
	}

	n := m.Rows()
	inv, err := numeric.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Scratch reused across columns
	eCol := make([]float64, n)
	y := make([]float64, n)
	x := make([]float64, n)

	var col, i int
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			eCol[i] = 0
		}
		eCol[col] = 1.0
		luSolve(lu, perm, eCol, y, x)
		for i = 0; i < n; i++ {
			inv.UnsafeSet(i, col, x[i]) // write solution as column col
		}
	}

	return inv, nil
}

// singularFactors reports whether the compact LU factors describe a
// matrix whose determinant magnitude falls below SingularEpsilon.
func singularFactors(lu *numeric.Dense, sign float64) bool {
	det := sign
	for i := 0; i < lu.Rows(); i++ {
		det *= lu.UnsafeAt(i, i)
	}

	return math.Abs(det) < numeric.SingularEpsilon
}
