// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Solvers return these sentinels and tests check them via errors.Is.
// No solver panics on user-triggered error conditions; option constructors
// panic on nonsensical parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary when context is essential; callers still use errors.Is.

var (
	// ErrDimensionMismatch indicates incompatible lengths between the operator,
	// the right-hand side and the initial guess.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilOperator indicates that a nil Operator was passed to a solver.
	ErrNilOperator = errors.New("matrix: nil operator")

	// ErrNaNInf signals a NaN or ±Inf value in an input vector.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotConverged is returned by SolveStrict when conjugate gradients
	// stopped at the iteration limit with the residual above tolerance.
	ErrNotConverged = errors.New("matrix: conjugate gradients did not converge")

	// ErrBreakdown signals pᵀAp ≈ 0: the operator is not positive definite
	// along the current search direction.
	ErrBreakdown = errors.New("matrix: conjugate gradients breakdown")
)
