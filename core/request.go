// Package core: request and response value types crossing the dispatch
// boundary.
package core

// Metadata keys every response carries.
const (
	// MetaProcessingTime is the wall-clock dispatch duration in
	// milliseconds, formatted as a decimal string.
	MetaProcessingTime = "processing_time"

	// MetaLanguage is the engine-language tag; this core always reports
	// LanguageTag.
	MetaLanguage = "language"

	// LanguageTag identifies this engine implementation in metadata.
	LanguageTag = "go"
)

// ProcessingRequest is the single input shape of the dispatcher.
// Method drives routing; Data is the opaque payload the selected engine
// parses; Options carries named string parameters; RequestID is an
// opaque correlation token (filled with a fresh UUID when blank).
// A request is consumed once and never mutated.
type ProcessingRequest struct {
	Method    string            `json:"method"`
	Data      string            `json:"data"`
	Options   map[string]string `json:"options,omitempty"`
	RequestID string            `json:"request_id"`
}

// ProcessingResponse is the single output shape of the dispatcher,
// constructed fresh per request. Error is non-empty iff Success is
// false; Result is empty on failure (no partial results). Metadata is
// always populated with at least MetaProcessingTime and MetaLanguage.
type ProcessingResponse struct {
	RequestID string            `json:"request_id"`
	Success   bool              `json:"success"`
	Result    string            `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
	Metadata  map[string]string `json:"metadata"`
}
