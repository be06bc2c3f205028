// Package numeric: sentinel error set shared by all EVA engines.
// Every engine MUST return these sentinels (wrapped with context via
// fmt.Errorf("Op: ...: %w", ErrX) at the call boundary) and tests MUST
// check them via errors.Is. Engines never panic on user input; panics
// are reserved for programmer errors in private helpers.
package numeric

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// shape/index -> dimension mismatch -> singularity -> parameter validation.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("numeric: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("numeric: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or elementwise ops on unequal shapes.
	ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("numeric: matrix is not square")

	// ErrSingular is returned when inversion or a linear solve meets a matrix
	// whose determinant is within epsilon of zero.
	ErrSingular = errors.New("numeric: singular matrix")

	// ErrInvalidParameter covers out-of-range numeric parameters, unknown
	// filter/method/operation selectors, and malformed payloads.
	ErrInvalidParameter = errors.New("numeric: invalid parameter")

	// ErrEigenFailed indicates that an iterative eigen/SVD routine failed to
	// converge under the configured tolerance and sweep budget.
	ErrEigenFailed = errors.New("numeric: decomposition did not converge")

	// ErrEmptySequence indicates an empty signal or vector where at least one
	// sample is required.
	ErrEmptySequence = errors.New("numeric: input sequence must be non-empty")
)
