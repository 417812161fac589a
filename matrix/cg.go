// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opCG       = "ConjugateGradient"
	opCGStrict = "SolveStrict"
)

// CGResult reports the outcome of a conjugate-gradient solve.
type CGResult struct {
	// X is the final iterate (the best estimate even when not converged).
	X []float64

	// Iterations is the number of completed CG steps.
	Iterations int

	// Residual is ‖b − A·X‖₂ as tracked by the recurrence.
	Residual float64

	// Converged is true when Residual fell below the tolerance.
	Converged bool

	// Breakdown is true when the loop stopped on |pᵀAp| < DefaultBreakdownEps.
	Breakdown bool
}

// ConjugateGradient solves A·x = b for a symmetric positive (semi-)definite
// operator. It returns the last iterate together with a convergence flag; an
// iteration limit or breakdown is not an error, so callers can use the best
// available estimate.
//
// Implementation:
//   - Stage 1: r = b − A·x0, p = r; stop immediately if ‖r‖ < tol.
//   - Stage 2: standard CG recurrence, α = rᵀr / pᵀAp, β = r'ᵀr' / rᵀr.
//   - Stage 3: stop on ‖r‖ < tol, on |pᵀAp| < DefaultBreakdownEps, or at MaxIter.
//
// Errors: ErrNilOperator, ErrDimensionMismatch, ErrNaNInf (input b or x0).
//
// Complexity: O(MaxIter · cost(Apply)) time, O(n) extra memory.
func ConjugateGradient(a Operator, b []float64, opts ...Option) (CGResult, error) {
	if a == nil {
		return CGResult{}, fmt.Errorf("%s: %w", opCG, ErrNilOperator)
	}
	n := a.Dim()
	if len(b) != n {
		return CGResult{}, fmt.Errorf("%s: len(b)=%d, dim=%d: %w", opCG, len(b), n, ErrDimensionMismatch)
	}
	if !finite(b) {
		return CGResult{}, fmt.Errorf("%s: b: %w", opCG, ErrNaNInf)
	}
	o := gatherOptions(opts...)

	x := make([]float64, n)
	if o.X0 != nil {
		if len(o.X0) != n {
			return CGResult{}, fmt.Errorf("%s: len(x0)=%d, dim=%d: %w", opCG, len(o.X0), n, ErrDimensionMismatch)
		}
		if !finite(o.X0) {
			return CGResult{}, fmt.Errorf("%s: x0: %w", opCG, ErrNaNInf)
		}
		copy(x, o.X0)
	}

	// 1) r = b − A·x
	r := make([]float64, n)
	ap := make([]float64, n)
	a.Apply(ap, x)
	floats.SubTo(r, b, ap)
	p := append([]float64(nil), r...)

	rsOld := floats.Dot(r, r)
	res := CGResult{X: x, Residual: math.Sqrt(rsOld)}
	if res.Residual < o.Tolerance {
		res.Converged = true
		return res, nil
	}

	// 2) Iterate
	for it := 0; it < o.MaxIter; it++ {
		a.Apply(ap, p)
		pAp := floats.Dot(p, ap)
		if math.Abs(pAp) < DefaultBreakdownEps {
			res.Breakdown = true
			break
		}
		alpha := rsOld / pAp
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		rsNew := floats.Dot(r, r)

		res.Iterations = it + 1
		res.Residual = math.Sqrt(rsNew)
		if o.OnIteration != nil {
			o.OnIteration(res.Iterations, res.Residual)
		}
		if res.Residual < o.Tolerance {
			res.Converged = true
			break
		}

		// p = r + β·p
		floats.Scale(rsNew/rsOld, p)
		floats.Add(p, r)
		rsOld = rsNew
	}

	return res, nil
}

// SolveStrict is ConjugateGradient that turns non-convergence into an error
// (ErrNotConverged or ErrBreakdown). The partial result is still returned.
func SolveStrict(a Operator, b []float64, opts ...Option) (CGResult, error) {
	res, err := ConjugateGradient(a, b, opts...)
	if err != nil {
		return res, err
	}
	switch {
	case res.Converged:
		return res, nil
	case res.Breakdown:
		return res, fmt.Errorf("%s: after %d iterations: %w", opCGStrict, res.Iterations, ErrBreakdown)
	default:
		return res, fmt.Errorf("%s: residual %.3g after %d iterations: %w",
			opCGStrict, res.Residual, res.Iterations, ErrNotConverged)
	}
}

func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
