package heat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/geodesiclab/matrix"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Solve computes the heat-method distance field from start.
//
// Steps:
//  1. Heat: (M − tL)u = δ with δ the mass-weighted impulse at start.
//  2. Per face, X = −∇u/|∇u| from the hat-function gradients; faces with
//     |∇u| <= 1e-12 contribute nothing.
//  3. Integrated divergence of X per vertex.
//  4. Poisson: Lφ = div X with the start row pinned to φ = 0.
//  5. Shift φ so that its minimum is exactly 0.
//
// CG non-convergence is reported in the Field flags, not as an error.
// Errors: ErrVertexOutOfRange, ErrZeroSourceMass, and wrapped matrix errors
// when the field turns non-finite.
func Solve(sys *System, start int, opts ...Option) (Field, error) {
	n := sys.Dim()
	if start < 0 || start >= n {
		return Field{}, fmt.Errorf("%w: start=%d, n=%d", ErrVertexOutOfRange, start, n)
	}
	if sys.Mass[start] <= degenerateArea {
		return Field{}, fmt.Errorf("%w: vertex %d", ErrZeroSourceMass, start)
	}
	o := gatherOptions(opts...)
	log := slogger()

	// 1) Heat diffusion.
	delta := make([]float64, n)
	delta[start] = sys.Mass[start]
	heatRes, err := matrix.ConjugateGradient(sys.HeatOperator(), delta,
		matrix.WithMaxIter(o.HeatMaxIter), matrix.WithTolerance(o.Tolerance))
	if err != nil {
		return Field{}, fmt.Errorf("heat step: %w", err)
	}
	log.Debug("heat: diffusion solved",
		"iterations", heatRes.Iterations, "residual", heatRes.Residual, "converged", heatRes.Converged)

	// 2-3) Normalized gradient and its divergence.
	div := divergence(sys, heatRes.X)

	// 4) Distance reconstruction.
	rhs := make([]float64, n)
	for i, d := range div {
		rhs[i] = -d
	}
	rhs[start] = 0
	poisson := matrix.Pinned{Op: sys.Stiffness(), Rows: []int{start}}
	phiRes, err := matrix.ConjugateGradient(poisson, rhs,
		matrix.WithMaxIter(o.PoissonMaxIter), matrix.WithTolerance(o.Tolerance))
	if err != nil {
		return Field{}, fmt.Errorf("poisson step: %w", err)
	}
	log.Debug("heat: poisson solved",
		"iterations", phiRes.Iterations, "residual", phiRes.Residual, "converged", phiRes.Converged)

	// 5) Min shift.
	phi := phiRes.X
	floats.AddConst(-floats.Min(phi), phi)

	return Field{
		U:                 heatRes.X,
		Phi:               phi,
		HeatConverged:     heatRes.Converged,
		PoissonConverged:  phiRes.Converged,
		HeatIterations:    heatRes.Iterations,
		PoissonIterations: phiRes.Iterations,
	}, nil
}

// divergence returns the integrated divergence at every vertex of the unit
// field X = −∇u/|∇u|:
//
//	(div X)_i = ½ Σ_faces [cot θ_1 (e_1·X) + cot θ_2 (e_2·X)]
//
// where e_1, e_2 are the face edges leaving i and θ_1, θ_2 the angles
// opposite them.
func divergence(sys *System, u []float64) []float64 {
	div := make([]float64, sys.Dim())
	for _, f := range sys.Faces {
		i, j, k := f[0], f[1], f[2]
		pi, pj, pk := sys.Vertices[i], sys.Vertices[j], sys.Vertices[k]

		nrm := vec3.Cross(vec3.Sub(pj, pi), vec3.Sub(pk, pi))
		area2 := vec3.Norm(nrm)
		if area2 <= degenerateArea {
			continue
		}
		unit := vec3.Scale(1/area2, nrm)

		// ∇u = Σ u_a (N × e_a) / 2A with e_a the edge opposite a.
		grad := vec3.Add(vec3.Add(
			vec3.Scale(u[i], vec3.Cross(unit, vec3.Sub(pk, pj))),
			vec3.Scale(u[j], vec3.Cross(unit, vec3.Sub(pi, pk)))),
			vec3.Scale(u[k], vec3.Cross(unit, vec3.Sub(pj, pi))))
		grad = vec3.Scale(1/area2, grad)
		gl := vec3.Norm(grad)
		if !(gl > vec3.Eps) {
			continue
		}
		x := vec3.Scale(-1/gl, grad)

		cotI := vec3.Cot(vec3.Sub(pj, pi), vec3.Sub(pk, pi))
		cotJ := vec3.Cot(vec3.Sub(pk, pj), vec3.Sub(pi, pj))
		cotK := vec3.Cot(vec3.Sub(pi, pk), vec3.Sub(pj, pk))

		div[i] += 0.5 * (cotJ*vec3.Dot(vec3.Sub(pk, pi), x) + cotK*vec3.Dot(vec3.Sub(pj, pi), x))
		div[j] += 0.5 * (cotK*vec3.Dot(vec3.Sub(pi, pj), x) + cotI*vec3.Dot(vec3.Sub(pk, pj), x))
		div[k] += 0.5 * (cotI*vec3.Dot(vec3.Sub(pj, pk), x) + cotJ*vec3.Dot(vec3.Sub(pi, pk), x))
	}

	return div
}
