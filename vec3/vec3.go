// SPDX-License-Identifier: MIT
// Package vec3 is the small geometry kernel shared by the mesh, surface,
// analytic and heat packages.
//
// Points and directions are gonum r3.Vec values; this package only adds the
// handful of operations the geodesic solvers need on top of r3 and keeps the
// numeric guards (degenerate cross products, zero-length normalization) in one
// place.
package vec3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in 3-D space.
type Vec = r3.Vec

// Eps is the magnitude below which lengths, areas and cross products are
// treated as degenerate.
const Eps = 1e-12

// Origin is the zero vector.
var Origin = Vec{}

// Add returns a+b.
func Add(a, b Vec) Vec { return r3.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec) Vec { return r3.Sub(a, b) }

// Scale returns f*v.
func Scale(f float64, v Vec) Vec { return r3.Scale(f, v) }

// Dot returns the dot product a·b.
func Dot(a, b Vec) float64 { return r3.Dot(a, b) }

// Cross returns the cross product a×b.
func Cross(a, b Vec) Vec { return r3.Cross(a, b) }

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 { return r3.Norm(v) }

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 { return r3.Norm(r3.Sub(a, b)) }

// Unit returns v scaled to unit length, or the zero vector when |v| <= Eps.
func Unit(v Vec) Vec {
	n := r3.Norm(v)
	if n <= Eps {
		return Vec{}
	}

	return r3.Scale(1/n, v)
}

// Lerp returns a + t(b-a).
func Lerp(a, b Vec, t float64) Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Cot returns the cotangent of the angle between a and b, computed as
// (a·b)/|a×b|. It returns 0 when |a×b| <= Eps.
func Cot(a, b Vec) float64 {
	c := r3.Norm(r3.Cross(a, b))
	if c <= Eps {
		return 0
	}

	return r3.Dot(a, b) / c
}

// TriangleArea returns the area of triangle (a, b, c).
func TriangleArea(a, b, c Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

// IsFinite reports whether every component of v is finite.
func IsFinite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Bounds returns the axis-aligned bounding box of pts. For an empty slice both
// corners are the origin.
func Bounds(pts []Vec) (lo, hi Vec) {
	if len(pts) == 0 {
		return Vec{}, Vec{}
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}

	return lo, hi
}

// PolylineLength returns the sum of segment lengths along pts.
func PolylineLength(pts []Vec) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += Dist(pts[i-1], pts[i])
	}

	return total
}
