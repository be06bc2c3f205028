// Package eva is a numerical computing engine: dense linear algebra,
// digital signal processing, image processing and iterative
// optimization, unified behind one request dispatcher with timing and
// metrics.
//
// 🚀 What is EVA?
//
//	A pure-algorithm library plus a request facade that brings together:
//		• Linear algebra: multiply (sequential & parallel), transpose,
//		  LU inverse/solve/determinant, Jacobi/QR eigenvalues, Jacobi SVD
//		• Signal processing: FFT/IFFT (any length), recursive filters,
//		  convolution, spectral denoising, resampling, SNR
//		• Vision: Gaussian blur, Sobel/Canny edges, bilinear resize,
//		  orientation features, Harris corners, morphology, similarity
//		• Optimization: gradient descent, simulated annealing, particle
//		  swarm, RK4 ODE integration, Simpson quadrature
//
// ✨ Why choose EVA?
//
//   - One entry point – ProcessRequest routes by method name, times every
//     call, and never panics on user input
//   - Deterministic – sequential and parallel matrix products are
//     bit-equal; stochastic optimizers run from a fixed seed
//   - Observable – Welford running means plus a Prometheus registry,
//     structured zap logging at the dispatch boundary
//   - Pure kernels – the engines are side-effect-free and safe for
//     concurrent use
//
// Under the hood, everything is organized under focused subpackages:
//
//	numeric/  — Dense matrix, Vector, shared sentinel errors & tolerances
//	matrix/   — linear-algebra Engine (LU, eigen, SVD, parallel multiply)
//	signal/   — DSP Engine (FFT, filters, convolution, denoise, resample)
//	vision/   — image Engine (blur, edges, features, corners, morphology)
//	optimize/ — optimization Engine (GD, SA, PSO, ODE, quadrature)
//	codec/    — JSON payload parsing & result serialization
//	core/     — Dispatcher, method routing, metrics, health
//	cmd/eva   — cobra CLI over the dispatcher
//
// Quick request example:
//
//	d := core.New()
//	resp := d.ProcessRequest(core.ProcessingRequest{
//		Method: "matrix_multiply",
//		Data:   `{"a": [[1,2],[3,4]], "b": [[1,0],[0,1]]}`,
//	})
//
// Dive into DESIGN.md for the package-by-package rationale and the
// dispatch contract.
//
//	go get github.com/phantompay1/EVA
package eva
