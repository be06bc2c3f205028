// Package matrix: multiplication (sequential and row-parallel) and
// transposition over numeric.Dense values.
package matrix

import (
	"fmt"
	"sync"

	"github.com/phantompay1/EVA/numeric"
)

// mulRow computes one output row of a×b into dst.
// The accumulation order (k ascending per output cell) is the single
// source of truth for both Multiply and ParallelMultiply; keeping it in
// one helper is what makes the two paths bit-identical.
func mulRow(a, b, dst *numeric.Dense, row int) {
	var (
		j, k int
		sum  float64
	)
	for j = 0; j < b.Cols(); j++ {
		sum = 0
		for k = 0; k < a.Cols(); k++ { // fixed ascending-k order
			sum += a.UnsafeAt(row, k) * b.UnsafeAt(k, j)
		}
		dst.UnsafeSet(row, j, sum)
	}
}

// Multiply returns a×b using standard triple-loop dot-product semantics.
// Stage 1 (Validate): a.Cols must equal b.Rows.
// Stage 2 (Prepare): allocate a.Rows×b.Cols result.
// Stage 3 (Execute): one dot product per output cell.
// Returns ErrDimensionMismatch on incompatible shapes.
// Complexity: O(r·c·k) time, O(r·c) memory.
func (e *Engine) Multiply(a, b *numeric.Dense) (*numeric.Dense, error) {
	// Validate inner dimensions
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Multiply: %dx%d by %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), numeric.ErrDimensionMismatch)
	}

	out, err := numeric.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	for i := 0; i < a.Rows(); i++ {
		mulRow(a, b, out, i)
	}

	return out, nil
}

// ParallelMultiply returns a×b computed by a bounded set of worker
// goroutines, each owning whole output rows. A single dot product is
// never split across workers, so the result is exactly equal to
// Multiply on the same inputs.
// Stage 1 (Validate): a.Cols must equal b.Rows.
// Stage 2 (Prepare): allocate result, derive worker count and chunk size.
// Stage 3 (Execute): fan out contiguous row ranges, join before returning.
// Complexity: O(r·c·k) work split across min(workers, r) goroutines.
func (e *Engine) ParallelMultiply(a, b *numeric.Dense) (*numeric.Dense, error) {
	// Validate inner dimensions
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("ParallelMultiply: %dx%d by %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), numeric.ErrDimensionMismatch)
	}

	out, err := numeric.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("ParallelMultiply: %w", err)
	}

	// Bound workers by row count; small inputs run on fewer goroutines.
	workers := e.workers
	if workers > a.Rows() {
		workers = a.Rows()
	}
	chunk := (a.Rows() + workers - 1) / workers // rows per worker, ceiling

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > a.Rows() {
			hi = a.Rows()
		}
		if lo >= hi {
			break // fewer useful chunks than workers
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				mulRow(a, b, out, i) // worker owns rows [lo,hi) exclusively
			}
		}(lo, hi)
	}
	wg.Wait() // parallelism never escapes the call boundary

	return out, nil
}

// Transpose returns the transpose of m: result[j][i] = m[i][j].
// Complexity: O(r·c) time and memory.
func (e *Engine) Transpose(m *numeric.Dense) (*numeric.Dense, error) {
	out, err := numeric.NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.UnsafeSet(j, i, m.UnsafeAt(i, j))
		}
	}

	return out, nil
}
