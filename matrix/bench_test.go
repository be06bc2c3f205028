// Package matrix_test provides benchmarks for the linear-algebra engine,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/phantompay1/EVA/matrix"
	"github.com/phantompay1/EVA/numeric"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *numeric.Dense
	sinkF float64
)

// benchDense builds an n×n matrix filled from a fixed seed.
func benchDense(b *testing.B, n int, seed int64) *numeric.Dense {
	b.Helper()
	m, err := numeric.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.UnsafeSet(i, j, rng.Float64()*2-1)
		}
	}
	return m
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	e := matrix.NewEngine()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			B := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := e.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkParallelMultiply(b *testing.B) {
	b.ReportAllocs()
	e := matrix.NewEngine()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			B := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := e.ParallelMultiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	e := matrix.NewEngine()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 97)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := e.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
