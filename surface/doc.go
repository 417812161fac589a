// Package surface: numerical conventions.
//
// Metric:
//
//	g00 = r_u·r_u, g01 = r_u·r_v, g11 = r_v·r_v with forward-difference
//	tangents (h = 1e-4). |det g| <= 1e-12 yields the identity inverse.
//
// Christoffel symbols:
//
//	Γᵏᵢⱼ = ½ gᵏˡ(∂ᵢgⱼₗ + ∂ⱼgᵢₗ − ∂ₗgᵢⱼ), metric derivatives again by forward
//	differences. Two layers of differencing cost accuracy (roughly 1e-4
//	relative); the shooting tolerance of 1e-3 absorbs it.
//
// Integration:
//
//	Fixed-step RK4 over t ∈ [0, 1]. Integrate(steps) returns steps+1 states.
//
// Shooting:
//
//	Newton on velocity → endpoint with a forward-difference Jacobian solved
//	through gonum.org/v1/gonum/mat. Failures are typed
//	(ErrSingularJacobian, ErrNotConverged); callers decide the fallback.
package surface
