// Package curve defines the named polyline every geodesic solver returns.
package curve

import "github.com/katalvlaran/geodesiclab/vec3"

// Names of the curves produced by the solvers.
const (
	PlaneStraightLine = "plane_straight_line"
	SphereGreatCircle = "sphere_great_circle"
	TorusGeodesic     = "torus_geodesic"
	SaddleGeodesic    = "saddle_geodesic"
	HeatGeodesic      = "heat_geodesic"
)

// Curve is an ordered polyline with its reported arclength. Length is not
// always the polyline sum: closed-form generators report the exact value.
type Curve struct {
	Name   string
	Length float64
	Points []vec3.Vec
}

// New builds a curve whose length is the sum of its segment lengths.
func New(name string, pts []vec3.Vec) Curve {
	return Curve{Name: name, Length: vec3.PolylineLength(pts), Points: pts}
}

// Empty reports whether the curve has no points.
func (c Curve) Empty() bool { return len(c.Points) == 0 }

// Scaled returns a copy whose Length is multiplied by f. Points are shared.
func (c Curve) Scaled(f float64) Curve {
	c.Length *= f
	return c
}

// Transformed returns a copy with every point mapped through fn and the
// length multiplied by lengthFactor.
func (c Curve) Transformed(fn func(vec3.Vec) vec3.Vec, lengthFactor float64) Curve {
	pts := make([]vec3.Vec, len(c.Points))
	for i, p := range c.Points {
		pts[i] = fn(p)
	}

	return Curve{Name: c.Name, Length: c.Length * lengthFactor, Points: pts}
}

// Samples returns max(2, n), the sample count every generator uses.
func Samples(n int) int {
	return max(2, n)
}

// Param returns the i-th of n uniform parameters in [0, 1].
func Param(i, n int) float64 {
	if n <= 1 {
		return 0
	}

	return float64(i) / float64(n-1)
}
