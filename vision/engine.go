// Package vision: Engine construction, operation selectors, documented
// algorithm constants, capabilities.
package vision

// EdgeMethod selects the EdgeDetection algorithm.
type EdgeMethod string

const (
	// Sobel returns raw gradient magnitude.
	Sobel EdgeMethod = "sobel"
	// Canny adds non-maximum suppression and hysteresis thresholding.
	Canny EdgeMethod = "canny"
)

// MorphOp selects the morphological operation.
type MorphOp string

const (
	// Erode takes the neighborhood minimum.
	Erode MorphOp = "erode"
	// Dilate takes the neighborhood maximum.
	Dilate MorphOp = "dilate"
	// Open is erosion followed by dilation.
	Open MorphOp = "open"
	// Close is dilation followed by erosion.
	Close MorphOp = "close"
)

// Documented algorithm constants (single source of truth).
const (
	// DefaultCannyLow and DefaultCannyHigh are the hysteresis thresholds
	// used when the request supplies none, matching the engine's canny
	// defaults for 8-bit intensity ranges.
	DefaultCannyLow  = 50.0
	DefaultCannyHigh = 150.0

	// HarrisK is the Harris corner response trace coefficient.
	HarrisK = 0.04

	// DefaultCornerThreshold is the minimum Harris response for a pixel
	// to qualify as a corner candidate.
	DefaultCornerThreshold = 1e4

	// FeatureBins is the number of orientation-histogram buckets in
	// ExtractFeatures descriptors.
	FeatureBins = 8
)

// Engine exposes the image-processing operation set. It is stateless and
// safe for concurrent use.
type Engine struct{}

// NewEngine constructs a vision Engine.
func NewEngine() *Engine { return &Engine{} }

// Capabilities returns the fixed, ordered capability list the vision
// engine advertises. Order and content are part of the dispatch contract.
func Capabilities() []string {
	return []string{
		"edge_detection",
		"feature_extraction",
		"image_filtering",
		"morphological_operations",
		"corner_detection",
		"image_similarity",
	}
}
