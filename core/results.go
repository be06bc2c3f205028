// Package core: serialized result shapes. Every successful response's
// Result field is one of these structs marshaled as compact JSON; the
// shapes are part of the wire contract and never change per request.
package core

import "github.com/phantompay1/EVA/codec"

// matrixResult carries a full matrix result together with the operation
// that produced it.
type matrixResult struct {
	Operation string      `json:"operation"`
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	Values    [][]float64 `json:"values"`
}

// scalarResult carries a single named scalar (determinant,
// condition_number).
type scalarResult struct {
	Operation string  `json:"operation"`
	Value     float64 `json:"value"`
}

type eigenResult struct {
	Operation   string    `json:"operation"`
	Eigenvalues []float64 `json:"eigenvalues"`
}

type solveResult struct {
	Operation string    `json:"operation"`
	Solution  []float64 `json:"solution"`
}

type svdResult struct {
	Operation      string      `json:"operation"`
	U              [][]float64 `json:"u"`
	SingularValues []float64   `json:"singular_values"`
	V              [][]float64 `json:"v"`
}

type spectrumResult struct {
	Operation string         `json:"operation"`
	Length    int            `json:"length"`
	Spectrum  codec.Spectrum `json:"spectrum"`
}

// signalResult carries a processed time-domain sequence.
type signalResult struct {
	Operation string    `json:"operation"`
	Signal    []float64 `json:"signal"`
}

type snrResult struct {
	Operation string  `json:"operation"`
	SNRDb     float64 `json:"snr_db"`
}

// imageResult carries a processed image as a dense grid.
type imageResult struct {
	Operation string      `json:"operation"`
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	Values    [][]float64 `json:"values"`
}

type featureResult struct {
	Operation string    `json:"operation"`
	Features  []float64 `json:"features"`
}

type cornerResult struct {
	Operation string   `json:"operation"`
	Corners   [][2]int `json:"corners"`
	Count     int      `json:"count"`
}

type similarityResult struct {
	Operation  string  `json:"operation"`
	Similarity float64 `json:"similarity"`
}

// optimizeResult mirrors optimize.Result on the wire.
type optimizeResult struct {
	Operation        string    `json:"operation"`
	OptimalSolution  []float64 `json:"optimal_solution"`
	OptimalValue     float64   `json:"optimal_value"`
	Iterations       int       `json:"iterations"`
	Converged        bool      `json:"converged"`
	ConvergenceError float64   `json:"convergence_error"`
}

type odeResult struct {
	Operation  string    `json:"operation"`
	Trajectory []float64 `json:"trajectory"`
}

type quadratureResult struct {
	Operation string  `json:"operation"`
	Value     float64 `json:"value"`
}

type capabilitiesResult struct {
	Capabilities []string `json:"capabilities"`
}
