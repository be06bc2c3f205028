// Package matrix implements the EVA dense linear-algebra engine:
// multiplication (sequential and row-parallel), transposition, inversion,
// determinants, linear solves, eigenvalue and singular-value decompositions.
//
// 🚀 What is the matrix engine?
//
//	The numeric workhorse behind every `matrix_*` request:
//	  • Multiply / ParallelMultiply — identical results, bit for bit
//	  • Transpose, Determinant, ConditionNumber
//	  • Inverse & Solve — LU with partial pivoting, singularity guarded
//	  • Eigenvalues — Jacobi sweeps (symmetric), QR iteration (general)
//	  • SVD — one-sided Jacobi, feeds the condition number
//
// ✨ Guarantees:
//
//   - Inputs are never mutated; every operation allocates its result.
//   - ParallelMultiply partitions whole output rows across workers and
//     keeps the per-cell accumulation order of Multiply, so the two are
//     exactly equal on IEEE-754 doubles.
//   - All failures are sentinel errors from the numeric package,
//     matchable with errors.Is.
//
// ⚙️ Usage:
//
//	eng := matrix.NewEngine(matrix.WithWorkers(8))
//	c, err := eng.ParallelMultiply(a, b)
//
// Complexity is documented per operation; the decompositions are O(n³).
package matrix
