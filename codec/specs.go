// Package codec: decoded payload shapes for the numerical-methods
// requests (ODE solving and quadrature).
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/phantompay1/EVA/numeric"
)

// ODESpec is the decoded form of an optimize_solve_ode payload. ODE
// names a registry entry; Y0/T0/TF/Steps parameterize the integration.
type ODESpec struct {
	ODE   string  `json:"ode"`
	Y0    float64 `json:"y0"`
	T0    float64 `json:"t0"`
	TF    float64 `json:"tf"`
	Steps int     `json:"steps"`
}

// ParseODESpec decodes an ODESpec payload.
func ParseODESpec(data string) (*ODESpec, error) {
	var spec ODESpec
	if err := json.Unmarshal([]byte(data), &spec); err != nil {
		return nil, fmt.Errorf("ParseODESpec: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	if spec.ODE == "" {
		return nil, fmt.Errorf("ParseODESpec: missing ode: %w", numeric.ErrInvalidParameter)
	}

	return &spec, nil
}

// QuadratureSpec is the decoded form of an optimize_integrate_simpson
// payload. Integrand names a registry entry; Scale multiplies it (0 is
// treated as 1 by the registry).
type QuadratureSpec struct {
	Integrand string  `json:"integrand"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Intervals int     `json:"intervals"`
	Scale     float64 `json:"scale"`
}

// ParseQuadratureSpec decodes a QuadratureSpec payload.
func ParseQuadratureSpec(data string) (*QuadratureSpec, error) {
	var spec QuadratureSpec
	if err := json.Unmarshal([]byte(data), &spec); err != nil {
		return nil, fmt.Errorf("ParseQuadratureSpec: malformed payload: %w", numeric.ErrInvalidParameter)
	}
	if spec.Integrand == "" {
		return nil, fmt.Errorf("ParseQuadratureSpec: missing integrand: %w", numeric.ErrInvalidParameter)
	}

	return &spec, nil
}
