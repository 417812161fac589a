// SPDX-License-Identifier: MIT

// Package matrix provides matrix-free linear operators and the conjugate
// gradient solver used by the heat method.
//
// The cotangent Laplacian of a mesh is sparse and only ever needed as a
// product L·x, so nothing here stores matrix entries. Callers describe an
// operator by its action (Operator, OperatorFunc), compose boundary
// conditions with Pinned, and solve with ConjugateGradient.
//
// Numeric policy:
//   - Tolerances are absolute residual norms (DefaultTolerance = 1e-6).
//   - Iteration limits are hard caps (DefaultMaxIter = 1000).
//   - Breakdown (|pᵀAp| < 1e-20) stops the loop without an error.
//   - Vector kernels come from gonum.org/v1/gonum/floats.
//
// ConjugateGradient never fails because of slow convergence; it reports
// Converged=false and the best iterate. SolveStrict turns that into
// ErrNotConverged / ErrBreakdown for callers that need a hard guarantee.
package matrix
