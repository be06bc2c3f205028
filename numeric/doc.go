// Package numeric provides the dense value types shared by every EVA
// engine: row-major float64 matrices and plain float64 vectors.
//
// 🚀 What lives here?
//
//	• Dense    — immutable-by-convention r×c matrix, flat row-major storage
//	• Vector   — []float64 alias with small arithmetic helpers
//	• Sentinel errors shared across all engines (dimension mismatch,
//	  singular matrix, invalid parameter, ...)
//	• Numeric policy constants (epsilon defaults)
//
// ✨ Conventions:
//
//   - Operations never mutate their inputs; every engine op returns a
//     freshly allocated Dense or Vector.
//   - Shape is validated at construction; At/Set bounds-check and return
//     ErrOutOfRange instead of panicking.
//   - All engines return these sentinels and tests match them with
//     errors.Is.
//
// The engines (matrix, signal, vision, optimize) build exclusively on
// this package; it has no dependencies beyond the standard library.
package numeric
