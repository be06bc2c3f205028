// Package signal_test provides benchmarks for the DSP engine, using
// deterministic random fill for input signals.
package signal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/phantompay1/EVA/numeric"
	"github.com/phantompay1/EVA/signal"
)

// sinks to defeat dead-code elimination
var (
	sinkC []complex128
	sinkV numeric.Vector
)

// benchSignal builds an n-sample signal filled from a fixed seed.
func benchSignal(n int, seed int64) numeric.Vector {
	rng := rand.New(rand.NewSource(seed))
	x := make(numeric.Vector, n)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}
	return x
}

func BenchmarkFFT(b *testing.B) {
	b.ReportAllocs()
	e := signal.NewEngine()
	// 4096 is a pure radix-2 run; 4095 forces the chirp-z path
	for _, n := range []int{1024, 4095, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchSignal(n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := e.FFT(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = s
			}
		})
	}
}

func BenchmarkConvolve(b *testing.B) {
	b.ReportAllocs()
	e := signal.NewEngine()
	for _, n := range []int{256, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchSignal(n, 1337)
			k := benchSignal(64, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := e.Convolve(x, k)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = out
			}
		})
	}
}
