// Package numeric: Dense is a concrete row-major matrix of float64 values,
// storing elements in a flat slice for performance and cache friendliness.
package numeric

import (
	"fmt"
	"strings"
)

// Numeric policy defaults (single source of truth).
const (
	// DefaultEpsilon is the non-negative tolerance used by approximate
	// equality checks across the engines.
	DefaultEpsilon = 1e-9

	// SingularEpsilon is the |det| threshold below which inversion and
	// linear solves report ErrSingular.
	SingularEpsilon = 1e-12
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	// Return initialized Dense over a fresh flat slice
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a slice of equal-length rows.
// Stage 1 (Validate): at least one row, all rows equal non-zero length.
// Stage 2 (Execute): copy rows into flat storage.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: empty input: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		// Reject ragged input
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0 // set diagonal ones
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows exports the matrix as a freshly allocated slice of rows.
// Complexity: O(r*c) time and memory.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// SameShape reports whether m and other have identical dimensions.
// Complexity: O(1).
func (m *Dense) SameShape(other *Dense) bool {
	return m.r == other.r && m.c == other.c
}

// at reads without bounds checks; callers guarantee valid indices.
// Kept private so the public surface stays fail-safe.
func (m *Dense) at(row, col int) float64 { return m.data[row*m.c+col] }

// set writes without bounds checks; callers guarantee valid indices.
func (m *Dense) set(row, col int, v float64) { m.data[row*m.c+col] = v }

// UnsafeAt reads (row, col) without bounds checking.
// Engines on hot loops use it after validating shapes once up front.
func (m *Dense) UnsafeAt(row, col int) float64 { return m.at(row, col) }

// UnsafeSet writes (row, col) without bounds checking.
func (m *Dense) UnsafeSet(row, col int, v float64) { m.set(row, col, v) }

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
