// Package matrix: singular value decomposition by one-sided Jacobi
// (Hestenes) rotations, and the condition number derived from it.
package matrix

import (
	"fmt"
	"math"
	"sort"

	"github.com/phantompay1/EVA/numeric"
)

// SVDResult holds a thin decomposition m = U·diag(S)·Vᵀ, sufficient to
// reconstruct m and to compute its condition number.
// U is m.Rows()×k, V is m.Cols()×k, S has k = min(rows, cols) entries in
// descending order.
type SVDResult struct {
	U *numeric.Dense
	S numeric.Vector
	V *numeric.Dense
}

// SVD computes the thin singular value decomposition of m.
// Blueprint:
//
//	Stage 1 (Orient): work on m or mᵀ so rows ≥ cols; swap U/V back at the end.
//	Stage 2 (Execute): Hestenes one-sided Jacobi — rotate column pairs of
//	the working copy (and of V) until all pairs are orthogonal within tol.
//	Stage 3 (Finalize): singular values are column norms; normalize columns
//	into U; sort everything descending by σ.
//
// Returns ErrEigenFailed when sweeps are exhausted before convergence.
// Complexity: O(sweeps·r·c²) time, O(r·c) memory.
func (e *Engine) SVD(m *numeric.Dense) (*SVDResult, error) {
	// Stage 1: Orient so the working matrix is tall
	transposed := m.Rows() < m.Cols()
	work := m.Clone()
	if transposed {
		t, err := e.Transpose(m)
		if err != nil {
			return nil, fmt.Errorf("SVD: %w", err)
		}
		work = t
	}
	rows, cols := work.Rows(), work.Cols()

	V, err := numeric.Identity(cols)
	if err != nil {
		return nil, fmt.Errorf("SVD: %w", err)
	}

	// Stage 2: One-sided Jacobi sweeps
	var (
		sweep, p, q, i       int
		alpha, beta, gamma   float64
		zeta, t, c, s        float64
		ap, aq, vp, vq       float64
		converged            bool
		orthogonalityBudget  = DefaultSVDTol
		maxSweeps            = DefaultEigenSweeps
		pairRotatedThisSweep bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		pairRotatedThisSweep = false
		for p = 0; p < cols-1; p++ {
			for q = p + 1; q < cols; q++ {
				// Column moments
				alpha, beta, gamma = 0, 0, 0
				for i = 0; i < rows; i++ {
					ap = work.UnsafeAt(i, p)
					aq = work.UnsafeAt(i, q)
					alpha += ap * ap
					beta += aq * aq
					gamma += ap * aq
				}
				if math.Abs(gamma) <= orthogonalityBudget*math.Sqrt(alpha*beta) {
					continue // already orthogonal
				}
				pairRotatedThisSweep = true

				// Rotation angle orthogonalizing columns p and q
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1.0/(math.Abs(zeta)+math.Sqrt(zeta*zeta+1)), zeta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// Rotate the working columns
				for i = 0; i < rows; i++ {
					ap = work.UnsafeAt(i, p)
					aq = work.UnsafeAt(i, q)
					work.UnsafeSet(i, p, c*ap-s*aq)
					work.UnsafeSet(i, q, s*ap+c*aq)
				}
				// Accumulate the rotation into V
				for i = 0; i < cols; i++ {
					vp = V.UnsafeAt(i, p)
					vq = V.UnsafeAt(i, q)
					V.UnsafeSet(i, p, c*vp-s*vq)
					V.UnsafeSet(i, q, s*vp+c*vq)
				}
			}
		}
		if !pairRotatedThisSweep {
			converged = true
			break
		}
	}
	if !converged {
		return nil, fmt.Errorf("SVD: %w", numeric.ErrEigenFailed)
	}

	// Stage 3: Extract singular values and left vectors
	S := make(numeric.Vector, cols)
	U, err := numeric.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("SVD: %w", err)
	}
	var norm float64
	for p = 0; p < cols; p++ {
		norm = 0
		for i = 0; i < rows; i++ {
			ap = work.UnsafeAt(i, p)
			norm += ap * ap
		}
		norm = math.Sqrt(norm)
		S[p] = norm
		if norm > 0 {
			for i = 0; i < rows; i++ {
				U.UnsafeSet(i, p, work.UnsafeAt(i, p)/norm)
			}
		}
	}

	// Sort columns by descending singular value for a canonical result.
	order := make([]int, cols)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return S[order[a]] > S[order[b]] })

	sortedS := make(numeric.Vector, cols)
	sortedU, _ := numeric.NewDense(rows, cols)
	sortedV, _ := numeric.NewDense(cols, cols)
	for p = 0; p < cols; p++ {
		src := order[p]
		sortedS[p] = S[src]
		for i = 0; i < rows; i++ {
			sortedU.UnsafeSet(i, p, U.UnsafeAt(i, src))
		}
		for i = 0; i < cols; i++ {
			sortedV.UnsafeSet(i, p, V.UnsafeAt(i, src))
		}
	}

	if transposed {
		// m = (Uᵗ·S·Vᵗᵀ)ᵀ ⇒ swap the roles of U and V.
		return &SVDResult{U: sortedV, S: sortedS, V: sortedU}, nil
	}

	return &SVDResult{U: sortedU, S: sortedS, V: sortedV}, nil
}

// ConditionNumber returns σmax/σmin of m via SVD.
// A zero smallest singular value yields +Inf rather than an error, since
// the ratio is well-defined in the extended reals.
// Complexity: dominated by SVD.
func (e *Engine) ConditionNumber(m *numeric.Dense) (float64, error) {
	dec, err := e.SVD(m)
	if err != nil {
		return 0, fmt.Errorf("ConditionNumber: %w", err)
	}
	sMax := dec.S[0]            // descending order
	sMin := dec.S[len(dec.S)-1] // smallest singular value
	if sMin == 0 {
		return math.Inf(1), nil
	}

	return sMax / sMin, nil
}
