// Package matrix: Engine construction and functional options.
package matrix

import "runtime"

// Tolerances and iteration budgets (single source of truth).
const (
	// DefaultEigenTol is the off-diagonal convergence threshold for Jacobi
	// sweeps and the subdiagonal threshold for QR iteration.
	DefaultEigenTol = 1e-10

	// DefaultEigenSweeps caps Jacobi sweeps / QR iterations.
	DefaultEigenSweeps = 200

	// DefaultSVDTol is the column-orthogonality threshold for one-sided
	// Jacobi SVD.
	DefaultSVDTol = 1e-12
)

// Engine exposes the dense linear-algebra operation set.
// It holds no per-request state; a single Engine is safe for concurrent
// use from multiple goroutines.
type Engine struct {
	workers int // upper bound on goroutines used by parallel operations
}

// Option mutates Engine configuration at construction time.
type Option func(*Engine)

// WithWorkers caps the number of goroutines parallel operations may spawn.
// Values < 1 fall back to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// NewEngine constructs an Engine with documented defaults applied first
// and options last-writer-wins, matching the package option discipline.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Workers reports the configured parallel worker cap.
func (e *Engine) Workers() int { return e.workers }

// Capabilities returns the fixed, ordered capability list the matrix
// engine advertises. Order and content are part of the dispatch contract.
func Capabilities() []string {
	return []string{
		"matrix_multiplication",
		"matrix_transpose",
		"matrix_inversion",
		"eigenvalue_decomposition",
		"svd_decomposition",
		"linear_system_solving",
		"parallel_matrix_operations",
	}
}
