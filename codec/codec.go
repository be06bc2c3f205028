// Package codec is the one documented payload encoding of the EVA core:
// JSON. Matrices travel as a 2-D array (`[[1,2],[3,4]]`) or wrapped as
// `{"rows": [[...]]}`; vectors as a plain array; spectra as parallel
// `re`/`im` arrays; two-operand requests as an object with named keys.
// Malformed payloads are reported as numeric.ErrInvalidParameter so the
// dispatcher can fold parse failures into the standard error response.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/phantompay1/EVA/numeric"
)

// ParseMatrix decodes a matrix payload in either accepted shape.
// Ragged rows and empty input are rejected with ErrInvalidParameter.
func ParseMatrix(data string) (*numeric.Dense, error) {
	// Bare 2-D array form first
	var rows [][]float64
	if err := json.Unmarshal([]byte(data), &rows); err == nil {
		return denseFromRows(rows)
	}

	// Wrapped form {"rows": [[...]]}
	var wrapped struct {
		Rows [][]float64 `json:"rows"`
	}
	if err := json.Unmarshal([]byte(data), &wrapped); err != nil || wrapped.Rows == nil {
		return nil, fmt.Errorf("ParseMatrix: malformed payload: %w", numeric.ErrInvalidParameter)
	}

	return denseFromRows(wrapped.Rows)
}

// denseFromRows converts decoded rows, translating shape errors into the
// parameter-error domain of the dispatch boundary.
func denseFromRows(rows [][]float64) (*numeric.Dense, error) {
	m, err := numeric.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %v: %w", err, numeric.ErrInvalidParameter)
	}

	return m, nil
}

// ParseVector decodes a plain JSON array of numbers.
func ParseVector(data string) (numeric.Vector, error) {
	var v []float64
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("ParseVector: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("ParseVector: empty vector: %w", numeric.ErrInvalidParameter)
	}

	return v, nil
}

// ParseMatrixPair decodes `{"a": <matrix>, "b": <matrix>}`.
func ParseMatrixPair(data string) (a, b *numeric.Dense, err error) {
	var pair struct {
		A json.RawMessage `json:"a"`
		B json.RawMessage `json:"b"`
	}
	if err = json.Unmarshal([]byte(data), &pair); err != nil || pair.A == nil || pair.B == nil {
		return nil, nil, fmt.Errorf("ParseMatrixPair: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	if a, err = ParseMatrix(string(pair.A)); err != nil {
		return nil, nil, fmt.Errorf("ParseMatrixPair: operand a: %w", err)
	}
	if b, err = ParseMatrix(string(pair.B)); err != nil {
		return nil, nil, fmt.Errorf("ParseMatrixPair: operand b: %w", err)
	}

	return a, b, nil
}

// ParseLinearSystem decodes `{"a": <matrix>, "b": <vector>}` for solve
// requests.
func ParseLinearSystem(data string) (*numeric.Dense, numeric.Vector, error) {
	var pair struct {
		A json.RawMessage `json:"a"`
		B []float64       `json:"b"`
	}
	if err := json.Unmarshal([]byte(data), &pair); err != nil || pair.A == nil || pair.B == nil {
		return nil, nil, fmt.Errorf("ParseLinearSystem: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	m, err := ParseMatrix(string(pair.A))
	if err != nil {
		return nil, nil, fmt.Errorf("ParseLinearSystem: %w", err)
	}

	return m, pair.B, nil
}

// ParseVectorPair decodes `{"<keyA>": [...], "<keyB>": [...]}`, the shape
// used by convolution (signal/kernel) and SNR (signal/noise) requests.
func ParseVectorPair(data, keyA, keyB string) (numeric.Vector, numeric.Vector, error) {
	var raw map[string][]float64
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, nil, fmt.Errorf("ParseVectorPair: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	a, okA := raw[keyA]
	b, okB := raw[keyB]
	if !okA || !okB {
		return nil, nil, fmt.Errorf("ParseVectorPair: missing %q or %q: %w", keyA, keyB, numeric.ErrInvalidParameter)
	}

	return a, b, nil
}

// Spectrum is the wire form of a complex spectrum: parallel real and
// imaginary arrays of equal length.
type Spectrum struct {
	Re []float64 `json:"re"`
	Im []float64 `json:"im"`
}

// ParseSpectrum decodes a Spectrum payload into complex samples.
func ParseSpectrum(data string) ([]complex128, error) {
	var s Spectrum
	if err := json.Unmarshal([]byte(data), &s); err != nil || s.Re == nil || s.Im == nil {
		return nil, fmt.Errorf("ParseSpectrum: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	if len(s.Re) != len(s.Im) {
		return nil, fmt.Errorf("ParseSpectrum: re/im length mismatch %d/%d: %w",
			len(s.Re), len(s.Im), numeric.ErrInvalidParameter)
	}

	out := make([]complex128, len(s.Re))
	for i := range s.Re {
		out[i] = complex(s.Re[i], s.Im[i])
	}

	return out, nil
}

// MarshalSpectrum encodes complex samples as a Spectrum.
func MarshalSpectrum(spectrum []complex128) Spectrum {
	s := Spectrum{Re: make([]float64, len(spectrum)), Im: make([]float64, len(spectrum))}
	for i, c := range spectrum {
		s.Re[i] = real(c)
		s.Im[i] = imag(c)
	}

	return s
}

// OptimizationSpec is the decoded form of an optimization request
// payload. Objective names a registry entry (callables cannot cross a
// text payload); the remaining fields parameterize the algorithms and
// keep their documented defaults when omitted.
type OptimizationSpec struct {
	Objective    string    `json:"objective"`
	X0           []float64 `json:"x0"`
	Dims         int       `json:"dims"`
	LearningRate float64   `json:"learning_rate"`
	MaxIter      int       `json:"max_iterations"`
	InitialTemp  float64   `json:"initial_temperature"`
	CoolingRate  float64   `json:"cooling_rate"`
	Particles    int       `json:"particles"`
}

// ParseOptimizationSpec decodes an OptimizationSpec payload.
func ParseOptimizationSpec(data string) (*OptimizationSpec, error) {
	var spec OptimizationSpec
	if err := json.Unmarshal([]byte(data), &spec); err != nil {
		return nil, fmt.Errorf("ParseOptimizationSpec: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	if spec.Objective == "" {
		return nil, fmt.Errorf("ParseOptimizationSpec: missing objective: %w", numeric.ErrInvalidParameter)
	}

	return &spec, nil
}

// Marshal encodes any result value as compact JSON. Marshaling the
// result shapes this package emits cannot fail; a failure here is a
// programmer error and is surfaced as such.
func Marshal(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("Marshal: %w", err)
	}

	return string(raw), nil
}
