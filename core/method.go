// Package core: the closed method set. The request's method string is
// parsed exactly once, here, into a Method tag; everything downstream
// switches over tags. This keeps the original routing contract —
// prefixes matrix_/signal_/vision_/optimize_ in that priority order,
// exact matches health_check and get_capabilities — without stringly
// control flow inside the engines.
package core

import "errors"

// ErrUnknownMethod indicates the dispatcher cannot route the request.
// The response error message keeps the original wording
// "Unknown method: <method>".
var ErrUnknownMethod = errors.New("core: unknown method")

// Method is one routable operation.
type Method int

// The full method set, grouped by owning engine.
const (
	MethodUnknown Method = iota

	MatrixMultiply
	MatrixParallelMultiply
	MatrixTranspose
	MatrixInverse
	MatrixEigenvalues
	MatrixDeterminant
	MatrixConditionNumber
	MatrixSolve
	MatrixSVD

	SignalFFT
	SignalIFFT
	SignalFilter
	SignalConvolve
	SignalDenoise
	SignalResample
	SignalSNR

	VisionGaussianBlur
	VisionEdgeDetection
	VisionResize
	VisionExtractFeatures
	VisionDetectCorners
	VisionMorphology
	VisionSimilarity

	OptimizeGradientDescent
	OptimizeSimulatedAnnealing
	OptimizePSO
	OptimizeSolveODE
	OptimizeIntegrateSimpson

	HealthCheck
	GetCapabilities
)

// methodNames maps wire names to tags; the table is the single source
// of truth for the closed set.
var methodNames = map[string]Method{
	"matrix_multiply":              MatrixMultiply,
	"matrix_parallel_multiply":     MatrixParallelMultiply,
	"matrix_transpose":             MatrixTranspose,
	"matrix_inverse":               MatrixInverse,
	"matrix_eigenvalues":           MatrixEigenvalues,
	"matrix_determinant":           MatrixDeterminant,
	"matrix_condition_number":      MatrixConditionNumber,
	"matrix_solve":                 MatrixSolve,
	"matrix_svd":                   MatrixSVD,
	"signal_fft":                   SignalFFT,
	"signal_ifft":                  SignalIFFT,
	"signal_filter":                SignalFilter,
	"signal_convolve":              SignalConvolve,
	"signal_denoise":               SignalDenoise,
	"signal_resample":              SignalResample,
	"signal_snr":                   SignalSNR,
	"vision_gaussian_blur":         VisionGaussianBlur,
	"vision_edge_detection":        VisionEdgeDetection,
	"vision_resize":                VisionResize,
	"vision_extract_features":      VisionExtractFeatures,
	"vision_detect_corners":        VisionDetectCorners,
	"vision_morphology":            VisionMorphology,
	"vision_similarity":            VisionSimilarity,
	"optimize_gradient_descent":    OptimizeGradientDescent,
	"optimize_simulated_annealing": OptimizeSimulatedAnnealing,
	"optimize_pso":                 OptimizePSO,
	"optimize_solve_ode":           OptimizeSolveODE,
	"optimize_integrate_simpson":   OptimizeIntegrateSimpson,
	"health_check":                 HealthCheck,
	"get_capabilities":             GetCapabilities,
}

// ParseMethod resolves a wire method name into its tag.
// Returns ErrUnknownMethod for anything outside the closed set.
func ParseMethod(name string) (Method, error) {
	if m, ok := methodNames[name]; ok {
		return m, nil
	}

	return MethodUnknown, ErrUnknownMethod
}

// EngineLabel returns the metrics label of the engine owning m.
func (m Method) EngineLabel() string {
	switch {
	case m >= MatrixMultiply && m <= MatrixSVD:
		return "matrix"
	case m >= SignalFFT && m <= SignalSNR:
		return "signal"
	case m >= VisionGaussianBlur && m <= VisionSimilarity:
		return "vision"
	case m >= OptimizeGradientDescent && m <= OptimizeIntegrateSimpson:
		return "optimization"
	default:
		return "core"
	}
}
