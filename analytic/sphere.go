package analytic

import (
	"math"

	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Thresholds for the great-circle special cases.
const (
	identicalAngle = 1e-8 // θ at or below which both points are the same
	antipodalGap   = 1e-5 // π − θ at or below which the points are antipodal
	smallSine      = 1e-6 // sin θ at or below which slerp weights blow up
)

// Sphere returns the great-circle arc from p1 to p2 on a sphere centered at
// the origin.
//
// The radius is the mean of |p1| and |p2| (or the nonzero one). Cases, in
// priority order:
//   - identical directions (θ <= 1e-8): n copies of the point, length 0;
//   - antipodal (π − θ <= 1e-5): a half great circle through an axis
//     perpendicular to p1 built from (1,0,0) or (0,1,0), then (0,0,1) if
//     that cross product vanishes; length rπ;
//   - sin θ <= 1e-6 otherwise: renormalized linear interpolation;
//   - general: spherical linear interpolation; length rθ.
func Sphere(p1, p2 vec3.Vec, samples int) curve.Curve {
	n := curve.Samples(samples)
	c := curve.Curve{Name: curve.SphereGreatCircle, Points: make([]vec3.Vec, 0, n)}

	r1, r2 := vec3.Norm(p1), vec3.Norm(p2)
	r := math.Max(r1, r2)
	if r1 > vec3.Eps && r2 > vec3.Eps {
		r = 0.5 * (r1 + r2)
	}
	a, b := vec3.Vec{Z: 1}, vec3.Vec{Z: 1}
	if r1 > vec3.Eps {
		a = vec3.Scale(1/r1, p1)
	}
	if r2 > vec3.Eps {
		b = vec3.Scale(1/r2, p2)
	}

	theta := math.Acos(vec3.Clamp(vec3.Dot(a, b), -1, 1))
	sinTheta := math.Sin(theta)

	switch {
	case theta <= identicalAngle:
		p := vec3.Scale(r, a)
		for i := 0; i < n; i++ {
			c.Points = append(c.Points, p)
		}
		c.Length = 0

	case math.Pi-theta <= antipodalGap:
		axis := perpendicular(a)
		for i := 0; i < n; i++ {
			ang := math.Pi * curve.Param(i, n)
			p := vec3.Add(vec3.Scale(math.Cos(ang), a), vec3.Scale(math.Sin(ang), axis))
			c.Points = append(c.Points, vec3.Scale(r, p))
		}
		c.Length = r * math.Pi

	case sinTheta <= smallSine || math.IsNaN(sinTheta):
		for i := 0; i < n; i++ {
			u := vec3.Unit(vec3.Lerp(a, b, curve.Param(i, n)))
			c.Points = append(c.Points, vec3.Scale(r, u))
		}
		c.Length = r * theta

	default:
		for i := 0; i < n; i++ {
			t := curve.Param(i, n)
			w1 := math.Sin((1-t)*theta) / sinTheta
			w2 := math.Sin(t*theta) / sinTheta
			u := vec3.Add(vec3.Scale(w1, a), vec3.Scale(w2, b))
			c.Points = append(c.Points, vec3.Scale(r, u))
		}
		c.Length = r * theta
	}

	return c
}

// perpendicular returns a unit vector orthogonal to the unit vector a.
func perpendicular(a vec3.Vec) vec3.Vec {
	ref := vec3.Vec{X: 1}
	if math.Abs(a.X) >= 0.9 {
		ref = vec3.Vec{Y: 1}
	}
	u := vec3.Unit(vec3.Cross(a, ref))
	if vec3.Norm(u) <= 1e-8 {
		u = vec3.Unit(vec3.Cross(a, vec3.Vec{Z: 1}))
	}

	return u
}
