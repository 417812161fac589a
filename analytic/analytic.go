// Package analytic generates geodesics on the four analytic surfaces the
// engine recognizes: straight lines on a plane, great circles on a sphere,
// and shooting-method geodesics on a torus and a saddle.
//
// Every generator works in the normalized frame (bounding box centered at the
// origin, largest extent 2) and returns a curve.Curve whose length the caller
// rescales to model units.
package analytic

import (
	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/surface"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Default sample counts per surface.
const (
	PlaneSamples  = 64
	SphereSamples = 128
	TorusSamples  = 160
	SaddleSamples = 160
)

// Report describes how a shooting-based curve was obtained.
type Report struct {
	// Converged is false when the curve is the linear parameter fallback.
	Converged bool

	// Iterations is the number of Newton updates the shooting solver made.
	Iterations int

	// Err is the shooting failure (surface.ErrSingularJacobian or
	// surface.ErrNotConverged), nil on success.
	Err error
}

// Plane returns max(2, samples) evenly spaced points on the segment p1→p2.
// Length is |p2 − p1|.
func Plane(p1, p2 vec3.Vec, samples int) curve.Curve {
	n := curve.Samples(samples)
	pts := make([]vec3.Vec, n)
	for i := range pts {
		pts[i] = vec3.Lerp(p1, p2, curve.Param(i, n))
	}

	return curve.Curve{Name: curve.PlaneStraightLine, Length: vec3.Dist(p1, p2), Points: pts}
}

// ShootCurve connects p1 and p2 on s, whose parameters are (u0, v0) and
// (u1, v1). The initial velocity guess is the straight parameter delta. On
// shooting failure the curve is the straight line in parameter space mapped
// through s. The first and last points are always exactly p1 and p2, and the
// length is the polyline sum.
func ShootCurve(name string, s surface.Surface, u0, v0, u1, v1 float64, p1, p2 vec3.Vec, samples int, opts ...surface.ShootOption) (curve.Curve, Report) {
	n := curve.Samples(samples)
	pts := make([]vec3.Vec, 0, n)

	res, err := surface.Shoot(s, u0, v0, u1, v1, u1-u0, v1-v0, opts...)
	rep := Report{Converged: err == nil, Iterations: res.Iterations, Err: err}
	if err == nil {
		path := surface.Integrate(s, surface.State{U: u0, V: v0, DU: res.DU, DV: res.DV}, n-1)
		for _, st := range path {
			pts = append(pts, s.Eval(st.U, st.V))
		}
	} else {
		for i := 0; i < n; i++ {
			t := curve.Param(i, n)
			pts = append(pts, s.Eval(u0+(u1-u0)*t, v0+(v1-v0)*t))
		}
	}
	pts[0] = p1
	pts[len(pts)-1] = p2

	return curve.New(name, pts), rep
}

// Torus maps p1 and p2 to angular coordinates on the fitted torus, unwraps
// both deltas into (−π, π] and shoots between them.
func Torus(p1, p2 vec3.Vec, tp TorusParams, samples int, opts ...surface.ShootOption) (curve.Curve, Report) {
	s := tp.Surface()
	u0, v0 := s.ToUV(p1)
	u1, v1 := s.ToUV(p2)
	u1 = surface.UnwrapAngle(u0, u1)
	v1 = surface.UnwrapAngle(v0, v1)

	return ShootCurve(curve.TorusGeodesic, s, u0, v0, u1, v1, p1, p2, samples, opts...)
}

// Saddle shoots between the Cartesian offsets of p1 and p2 from the saddle
// center.
func Saddle(p1, p2 vec3.Vec, sp SaddleParams, samples int, opts ...surface.ShootOption) (curve.Curve, Report) {
	s := sp.Surface()
	u0, v0 := s.ToUV(p1)
	u1, v1 := s.ToUV(p2)

	return ShootCurve(curve.SaddleGeodesic, s, u0, v0, u1, v1, p1, p2, samples, opts...)
}
