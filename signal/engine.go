// Package signal: Engine construction, filter selectors, capabilities.
package signal

// FilterType selects an ApplyFilter sub-routine. The set is closed;
// anything else is rejected with ErrInvalidParameter at the boundary.
type FilterType string

const (
	// Lowpass attenuates components above the cutoff frequency.
	Lowpass FilterType = "lowpass"
	// Highpass attenuates components below the cutoff frequency.
	Highpass FilterType = "highpass"
	// Bandpass keeps components between the low and high cutoffs.
	Bandpass FilterType = "bandpass"
)

// Engine exposes the signal-processing operation set. It is stateless
// and safe for concurrent use.
type Engine struct{}

// NewEngine constructs a signal Engine.
func NewEngine() *Engine { return &Engine{} }

// Capabilities returns the fixed, ordered capability list the signal
// engine advertises. Order and content are part of the dispatch contract.
func Capabilities() []string {
	return []string{
		"digital_filtering",
		"fft_transform",
		"signal_convolution",
		"noise_reduction",
		"signal_resampling",
		"spectral_analysis",
	}
}
