// Package surface implements the differential geometry of parametric
// surfaces: the first fundamental form, Christoffel symbols of the second
// kind, the geodesic equation as a first-order system, a classical RK4
// integrator and a Newton shooting solver for the two-point boundary
// problem.
//
// Derivatives are taken by forward differences of Eval, so any Surface can
// be plugged in without supplying its Jacobian.
package surface

import (
	"math"

	"github.com/katalvlaran/geodesiclab/vec3"
)

// Surface maps parameters (u, v) to a point in space.
type Surface interface {
	Eval(u, v float64) vec3.Vec
}

// Func adapts a plain function to Surface.
type Func func(u, v float64) vec3.Vec

// Eval calls f.
func (f Func) Eval(u, v float64) vec3.Vec { return f(u, v) }

// Plane is the affine plane Origin + u·U + v·V.
type Plane struct {
	Origin, U, V vec3.Vec
}

// Eval returns Origin + u·U + v·V.
func (p Plane) Eval(u, v float64) vec3.Vec {
	return vec3.Add(p.Origin, vec3.Add(vec3.Scale(u, p.U), vec3.Scale(v, p.V)))
}

// Sphere is parametrized by longitude u and latitude v.
type Sphere struct {
	Center vec3.Vec
	Radius float64
}

// Eval returns the point at longitude u, latitude v.
func (s Sphere) Eval(u, v float64) vec3.Vec {
	cv := math.Cos(v)
	return vec3.Add(s.Center, vec3.Vec{
		X: s.Radius * cv * math.Cos(u),
		Y: s.Radius * cv * math.Sin(u),
		Z: s.Radius * math.Sin(v),
	})
}

// Torus is a ring torus around the z axis through Center: u runs around
// the major circle, v around the tube.
type Torus struct {
	Center vec3.Vec
	Major  float64 // R, distance from the axis to the tube center
	Minor  float64 // r, tube radius
}

// Eval returns ((R + r cos v) cos u, (R + r cos v) sin u, r sin v) + Center.
func (t Torus) Eval(u, v float64) vec3.Vec {
	w := t.Major + t.Minor*math.Cos(v)
	return vec3.Add(t.Center, vec3.Vec{
		X: w * math.Cos(u),
		Y: w * math.Sin(u),
		Z: t.Minor * math.Sin(v),
	})
}

// ToUV returns the angular coordinates of p: u = atan2(y, x) and
// v = atan2(z, ρ − R) with ρ the distance from the axis.
func (t Torus) ToUV(p vec3.Vec) (u, v float64) {
	q := vec3.Sub(p, t.Center)
	rho := math.Hypot(q.X, q.Y)

	return math.Atan2(q.Y, q.X), math.Atan2(q.Z, rho-t.Major)
}

// Saddle is the hyperbolic paraboloid z = Center.Z + A(u² − v²) over
// Cartesian offsets u = x − Center.X, v = y − Center.Y.
type Saddle struct {
	Center vec3.Vec
	A      float64
}

// Eval returns (u + cx, v + cy, cz + A(u² − v²)).
func (s Saddle) Eval(u, v float64) vec3.Vec {
	return vec3.Vec{
		X: s.Center.X + u,
		Y: s.Center.Y + v,
		Z: s.Center.Z + s.A*(u*u-v*v),
	}
}

// ToUV returns the Cartesian offsets of p from the saddle center.
func (s Saddle) ToUV(p vec3.Vec) (u, v float64) {
	return p.X - s.Center.X, p.Y - s.Center.Y
}

// UnwrapAngle returns b shifted by a multiple of 2π so that |b − a| <= π.
func UnwrapAngle(a, b float64) float64 {
	return a + math.Remainder(b-a, 2*math.Pi)
}
