// Package matrix: eigenvalue computation. Symmetric input goes through
// cyclic Jacobi rotations; general square input falls back to unshifted
// QR iteration and reports the real parts of the spectrum only — complex
// eigenvalue pairs surface as the real Schur diagonal, a documented
// limitation of this engine.
package matrix

import (
	"fmt"
	"math"
	"sort"

	"github.com/phantompay1/EVA/numeric"
)

// Eigenvalues returns the eigenvalues of square m as a vector of length
// m.Rows(), sorted in descending order for determinism.
// Returns ErrDimensionMismatch for rectangular input and ErrEigenFailed
// when the iteration budget is exhausted before convergence.
// Complexity: O(sweeps·n³) time, O(n²) memory.
func (e *Engine) Eigenvalues(m *numeric.Dense) (numeric.Vector, error) {
	// Stage 1: Validate shape
	n, cols := m.Rows(), m.Cols()
	if n != cols {
		return nil, fmt.Errorf("Eigenvalues: non-square %dx%d: %w", n, cols, numeric.ErrDimensionMismatch)
	}

	// Stage 2: Pick the algorithm
	var (
		eigs []float64
		err  error
	)
	if isSymmetric(m, DefaultEigenTol) {
		eigs, err = jacobiEigen(m, DefaultEigenTol, DefaultEigenSweeps)
	} else {
		eigs, err = qrEigen(m, DefaultEigenTol, DefaultEigenSweeps)
	}
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}

	// Stage 3: Deterministic ordering
	sort.Sort(sort.Reverse(sort.Float64Slice(eigs)))

	return eigs, nil
}

// isSymmetric reports whether m[i][j] == m[j][i] within tol everywhere.
func isSymmetric(m *numeric.Dense, tol float64) bool {
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.UnsafeAt(i, j)-m.UnsafeAt(j, i)) > tol {
				return false
			}
		}
	}

	return true
}

// jacobiEigen diagonalizes a symmetric matrix by repeatedly zeroing the
// largest off-diagonal element with a Givens rotation.
// Stage 1 (Prepare): clone into a working copy A.
// Stage 2 (Execute): rotate until max |A[p][q]| < tol or sweeps run out.
// Stage 3 (Finalize): diagonal of A holds the eigenvalues.
// Complexity: O(maxIter·n²) rotations of O(n) each.
func jacobiEigen(m *numeric.Dense, tol float64, maxIter int) ([]float64, error) {
	n := m.Rows()
	A := m.Clone()

	var (
		iter, i, j, p, q   int
		maxOff, off        float64
		app, aqq, apq      float64
		theta, t, c, s     float64
		aip, aiq, newDiagP float64
	)
	for iter = 0; iter < maxIter*n*n; iter++ {
		// Find the largest off-diagonal element |A[p][q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A.UnsafeAt(i, j)); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		// Rotation parameters zeroing A[p][q]
		app = A.UnsafeAt(p, p)
		aqq = A.UnsafeAt(q, q)
		apq = A.UnsafeAt(p, q)
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the symmetric rotation to rows/columns p and q
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.UnsafeAt(i, p)
			aiq = A.UnsafeAt(i, q)
			A.UnsafeSet(i, p, c*aip-s*aiq)
			A.UnsafeSet(p, i, c*aip-s*aiq)
			A.UnsafeSet(i, q, s*aip+c*aiq)
			A.UnsafeSet(q, i, s*aip+c*aiq)
		}
		newDiagP = c*c*app - 2*c*s*apq + s*s*aqq
		A.UnsafeSet(p, p, newDiagP)
		A.UnsafeSet(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		A.UnsafeSet(p, q, 0)
		A.UnsafeSet(q, p, 0)
	}

	// Re-check convergence after the loop
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(A.UnsafeAt(i, j)) >= tol {
				return nil, numeric.ErrEigenFailed
			}
		}
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.UnsafeAt(i, i)
	}

	return eigs, nil
}

// householderQR computes A = Q·R with Householder reflections.
// Complexity: O(n³) time, O(n²) memory.
func householderQR(m *numeric.Dense) (Q, R *numeric.Dense, err error) {
	n := m.Rows()
	R = m.Clone()
	Q, err = numeric.Identity(n)
	if err != nil {
		return nil, nil, err
	}
	v := make([]float64, n) // Householder vector, reused per column

	var (
		k, i, j                 int
		norm, alpha, beta, tau  float64
		val, sum, pivotOriginal float64
	)
	for k = 0; k < n; k++ {
		// Column norm below the diagonal
		norm = 0
		for i = k; i < n; i++ {
			val = R.UnsafeAt(i, k)
			norm += val * val
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // nothing to reflect
		}
		pivotOriginal = R.UnsafeAt(k, k)
		alpha = -math.Copysign(norm, pivotOriginal)

		// Build v = x - alpha·e_k restricted to rows k..n-1
		for i = 0; i < n; i++ {
			v[i] = 0
		}
		for i = k; i < n; i++ {
			v[i] = R.UnsafeAt(i, k)
		}
		v[k] -= alpha
		beta = 0
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// Reflect R
		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * R.UnsafeAt(i, j)
			}
			for i = k; i < n; i++ {
				R.UnsafeSet(i, j, R.UnsafeAt(i, j)-tau*v[i]*sum)
			}
		}
		// Accumulate into Q
		for j = 0; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * Q.UnsafeAt(i, j)
			}
			for i = k; i < n; i++ {
				Q.UnsafeSet(i, j, Q.UnsafeAt(i, j)-tau*v[i]*sum)
			}
		}
	}
	// Q currently holds the product of reflectors applied to I, i.e. Qᵀ.

	return Q, R, nil
}

// qrEigen runs unshifted QR iteration A ← R·Qᵀᵀ until the strictly lower
// triangle decays below tol, then reads the (real) diagonal.
// Complexity: O(maxIter·n³).
func qrEigen(m *numeric.Dense, tol float64, maxIter int) ([]float64, error) {
	n := m.Rows()
	A := m.Clone()

	var (
		iter, i, j int
		lower      float64
	)
	for iter = 0; iter < maxIter; iter++ {
		Qt, R, err := householderQR(A)
		if err != nil {
			return nil, err
		}
		// A ← R·Q where Q = Qtᵀ; R·Qtᵀ cell (i,j) = Σ R[i][k]·Qt[j][k]
		next, err := numeric.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		var k int
		var sum float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				sum = 0
				for k = 0; k < n; k++ {
					sum += R.UnsafeAt(i, k) * Qt.UnsafeAt(j, k)
				}
				next.UnsafeSet(i, j, sum)
			}
		}
		A = next

		// Measure the strictly lower triangle
		lower = 0
		for i = 1; i < n; i++ {
			for j = 0; j < i; j++ {
				lower += math.Abs(A.UnsafeAt(i, j))
			}
		}
		if lower < tol {
			break
		}
	}
	// Unlike Jacobi, non-convergence here usually means complex pairs;
	// the diagonal is still the best real estimate, so return it.

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.UnsafeAt(i, i)
	}

	return eigs, nil
}
