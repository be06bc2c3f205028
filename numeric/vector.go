// Package numeric: Vector is the 1-D counterpart of Dense, used for
// signals, optimization variables and ODE trajectories.
package numeric

import "math"

// Vector is a 1-D dense array of float64 values.
type Vector []float64

// CloneVector returns an independent copy of v. Complexity: O(n).
func CloneVector(v Vector) Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Norm2 returns the Euclidean norm of v. Complexity: O(n).
func Norm2(v Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x // accumulate squares
	}

	return math.Sqrt(sum)
}

// Dot returns the dot product of a and b; callers guarantee equal length.
// Complexity: O(n).
func Dot(a, b Vector) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Power returns the mean squared amplitude of v, or 0 for an empty vector.
// Complexity: O(n).
func Power(v Vector) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return sum / float64(len(v))
}

// ApproxEqual reports whether a and b are elementwise equal within eps.
// Length mismatch is never approximately equal. Complexity: O(n).
func ApproxEqual(a, b Vector, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}
