// Package optimize implements the EVA optimization engine: iterative
// minimizers over user-supplied objective functions, plus the numerical
// methods the original engine surface groups with them (fixed-step ODE
// integration and composite Simpson quadrature).
//
// 🚀 What is the optimization engine?
//
//	Everything behind the `optimize_*` request family:
//	  • GradientDescent — fixed learning rate, finite-difference gradient
//	    when the caller supplies no analytic one
//	  • SimulatedAnnealing — geometric cooling, Metropolis acceptance
//	  • ParticleSwarm — standard constriction constants, global best
//	  • SolveODE — classical fourth-order Runge–Kutta (RK4), fixed step
//	  • IntegrateSimpson — composite Simpson's rule, even interval count
//
// ✨ Conventions:
//
//   - Objectives are plain func values (Objective, Gradient, ODEFunc,
//     Integrand) — no interface hierarchies, no virtual dispatch inside
//     the numeric loops.
//   - Every minimizer runs Init → Iterate → {Converged |
//     MaxIterationsReached} and reports the same Result shape.
//   - Stochastic algorithms draw from a per-call generator seeded at
//     Engine construction, so runs are reproducible and a single Engine
//     is safe for concurrent use.
package optimize
