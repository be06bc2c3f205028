package signal_test

import (
	"fmt"

	"github.com/phantompay1/EVA/numeric"
	"github.com/phantompay1/EVA/signal"
)

// ExampleEngine_Convolve demonstrates full discrete convolution.
func ExampleEngine_Convolve() {
	e := signal.NewEngine()

	out, _ := e.Convolve(numeric.Vector{1, 2}, numeric.Vector{3, 4})
	fmt.Println(out)
	// Output:
	// [3 10 8]
}

// ExampleEngine_SNR demonstrates the decibel signal-to-noise ratio.
func ExampleEngine_SNR() {
	e := signal.NewEngine()

	sig := numeric.Vector{1, 1, 1, 1}
	noise := numeric.Vector{0.1, 0.1, 0.1, 0.1}
	snr, _ := e.SNR(sig, noise)

	fmt.Printf("%.0f dB\n", snr)
	// Output:
	// 20 dB
}
