package surface

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for the shooting solver.
var (
	// ErrSingularJacobian indicates |det J| < SingularDet; Newton cannot proceed.
	ErrSingularJacobian = errors.New("surface: shooting Jacobian is singular")

	// ErrNotConverged indicates the iteration budget ran out.
	ErrNotConverged = errors.New("surface: shooting did not converge")
)

// Defaults for Shoot.
const (
	DefaultShootSteps     = 160
	DefaultShootMaxIter   = 8
	DefaultShootTolerance = 1e-3
	DefaultJacobianEps    = 1e-3
	SingularDet           = 1e-10
)

// ShootOptions configures Shoot.
type ShootOptions struct {
	Steps       int     // RK4 steps per trial integration
	MaxIter     int     // Newton iterations
	Tolerance   float64 // parameter-space endpoint error that counts as a hit
	JacobianEps float64 // forward-difference perturbation of the initial velocity
}

// ShootOption mutates ShootOptions.
type ShootOption func(*ShootOptions)

// DefaultShootOptions returns 160 steps, 8 iterations, tolerance 1e-3 and
// Jacobian perturbation 1e-3.
func DefaultShootOptions() ShootOptions {
	return ShootOptions{
		Steps:       DefaultShootSteps,
		MaxIter:     DefaultShootMaxIter,
		Tolerance:   DefaultShootTolerance,
		JacobianEps: DefaultJacobianEps,
	}
}

// WithShootSteps sets the RK4 steps per trial. Panics on n < 1.
func WithShootSteps(n int) ShootOption {
	if n < 1 {
		panic("surface: WithShootSteps: steps must be positive")
	}

	return func(o *ShootOptions) { o.Steps = n }
}

// WithShootMaxIter sets the Newton iteration budget. Panics on n < 0.
func WithShootMaxIter(n int) ShootOption {
	if n < 0 {
		panic("surface: WithShootMaxIter: iterations must be non-negative")
	}

	return func(o *ShootOptions) { o.MaxIter = n }
}

// WithShootTolerance sets the convergence threshold. Panics on tol <= 0.
func WithShootTolerance(tol float64) ShootOption {
	if !(tol > 0) {
		panic("surface: WithShootTolerance: tolerance must be positive")
	}

	return func(o *ShootOptions) { o.Tolerance = tol }
}

// WithJacobianEps sets the forward-difference perturbation. Panics on eps <= 0.
func WithJacobianEps(eps float64) ShootOption {
	if !(eps > 0) {
		panic("surface: WithJacobianEps: perturbation must be positive")
	}

	return func(o *ShootOptions) { o.JacobianEps = eps }
}

// ShootResult is the outcome of Shoot.
type ShootResult struct {
	// DU, DV is the last initial velocity tried (the solution on success).
	DU, DV float64

	// Iterations counts completed Newton updates.
	Iterations int

	// Error is the parameter-space distance between the last integrated
	// endpoint and the target.
	Error float64
}

// Shoot finds an initial parameter velocity (du, dv) such that the geodesic
// from (u0, v0) reaches (u1, v1) at t = 1.
//
// Newton's method runs on the map "initial velocity → endpoint":
//  1. Integrate with the current velocity; stop when the endpoint error is
//     below Tolerance.
//  2. Estimate the 2×2 Jacobian by forward differences, perturbing du and dv
//     by JacobianEps.
//  3. Abort with ErrSingularJacobian when |det J| < 1e-10, otherwise solve
//     J·δ = −err and update the velocity.
//
// When the budget runs out the result carries ErrNotConverged. In both
// failure cases the caller falls back to linear parameter interpolation.
func Shoot(s Surface, u0, v0, u1, v1, du0, dv0 float64, opts ...ShootOption) (ShootResult, error) {
	o := DefaultShootOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := ShootResult{DU: du0, DV: dv0, Error: math.Inf(1)}
	var (
		jac   = mat.NewDense(2, 2, nil)
		rhs   = mat.NewVecDense(2, nil)
		delta mat.VecDense
	)
	for iter := 0; iter < o.MaxIter; iter++ {
		end := endpoint(s, State{U: u0, V: v0, DU: res.DU, DV: res.DV}, o.Steps)
		errU, errV := end.U-u1, end.V-v1
		res.Error = math.Hypot(errU, errV)
		if res.Error < o.Tolerance {
			return res, nil
		}

		eps := o.JacobianEps
		endU := endpoint(s, State{U: u0, V: v0, DU: res.DU + eps, DV: res.DV}, o.Steps)
		endV := endpoint(s, State{U: u0, V: v0, DU: res.DU, DV: res.DV + eps}, o.Steps)
		jac.Set(0, 0, (endU.U-end.U)/eps)
		jac.Set(0, 1, (endV.U-end.U)/eps)
		jac.Set(1, 0, (endU.V-end.V)/eps)
		jac.Set(1, 1, (endV.V-end.V)/eps)

		if !finiteDense(jac) {
			return res, fmt.Errorf("%w: non-finite entries at iteration %d", ErrSingularJacobian, iter)
		}
		det := mat.Det(jac)
		if math.Abs(det) < SingularDet {
			return res, fmt.Errorf("%w: det=%g at iteration %d", ErrSingularJacobian, det, iter)
		}
		rhs.SetVec(0, -errU)
		rhs.SetVec(1, -errV)
		if err := delta.SolveVec(jac, rhs); err != nil {
			return res, fmt.Errorf("%w: %v", ErrSingularJacobian, err)
		}
		res.DU += delta.AtVec(0)
		res.DV += delta.AtVec(1)
		res.Iterations++
	}

	// The last update has not been checked yet.
	end := endpoint(s, State{U: u0, V: v0, DU: res.DU, DV: res.DV}, o.Steps)
	res.Error = math.Hypot(end.U-u1, end.V-v1)
	if res.Error < o.Tolerance {
		return res, nil
	}

	return res, fmt.Errorf("%w: error %.3g after %d iterations", ErrNotConverged, res.Error, res.Iterations)
}

func finiteDense(m *mat.Dense) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x := m.At(i, j); math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
	}

	return true
}
