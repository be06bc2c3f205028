// Package core is the EVA dispatch layer: it owns one instance of every
// numeric engine, routes ProcessingRequests to them by method name,
// times each call, and aggregates running performance metrics.
//
// 🚀 What is the core?
//
//	The single entry point external collaborators call:
//	  • ProcessRequest — parse method → route → execute → serialize
//	  • Capabilities — the fixed, ordered concatenation of every
//	    engine's capability list (matrix, signal, vision, optimization)
//	  • HealthCheck — per-component active status, never fails
//	  • Metrics — Welford-mean snapshot plus a Prometheus registry
//
// ✨ Contracts:
//
//   - The method string is parsed exactly once at the boundary into a
//     closed Method tag; engines see typed operations, never strings.
//   - Metrics are updated exactly once per call, success or failure,
//     around the full dispatch including parse and serialize.
//   - Engine errors are converted into success=false responses here and
//     never escape as faults; result stays empty on failure.
//   - Response metadata always carries processing_time (milliseconds)
//     and the engine-language tag language=go.
//
// The core holds no per-request state beyond the metrics object, whose
// updates are serialized; ProcessRequest is safe to call concurrently.
package core
