package analytic

import (
	"math"

	"github.com/katalvlaran/geodesiclab/surface"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Fallback parameters used when a fit is degenerate.
const (
	DefaultMajorRadius = 1.0
	DefaultMinorRadius = 0.25
	DefaultSaddleA     = 0.5

	minRadius = 1e-6
)

// TorusParams describes a torus around the z axis through Center.
type TorusParams struct {
	Center vec3.Vec
	Major  float64
	Minor  float64
}

// Surface returns the parametric torus.
func (p TorusParams) Surface() surface.Torus {
	return surface.Torus{Center: p.Center, Major: p.Major, Minor: p.Minor}
}

// SaddleParams describes z = Center.Z + A((x−cx)² − (y−cy)²).
type SaddleParams struct {
	Center vec3.Vec
	A      float64
}

// Surface returns the parametric saddle.
func (p SaddleParams) Surface() surface.Saddle {
	return surface.Saddle{Center: p.Center, A: p.A}
}

// FitTorus estimates torus parameters from vertex positions: the center is
// the bounding-box center, R the mean distance from the z axis, r the mean
// distance from the tube circle of radius R. Non-finite samples are skipped.
// R falls back to 1 and r to 0.25 when non-finite or <= 1e-6.
func FitTorus(verts []vec3.Vec) TorusParams {
	out := TorusParams{Major: DefaultMajorRadius, Minor: DefaultMinorRadius}
	if len(verts) == 0 {
		return out
	}
	lo, hi := vec3.Bounds(verts)
	out.Center = vec3.Scale(0.5, vec3.Add(lo, hi))

	var sumR float64
	var countR int
	for _, v := range verts {
		q := vec3.Sub(v, out.Center)
		if rho := math.Hypot(q.X, q.Y); finite(rho) {
			sumR += rho
			countR++
		}
	}
	if countR > 0 {
		out.Major = sumR / float64(countR)
	}

	var sumr float64
	var countr int
	for _, v := range verts {
		q := vec3.Sub(v, out.Center)
		rho := math.Hypot(q.X, q.Y)
		if rr := math.Hypot(rho-out.Major, q.Z); finite(rr) {
			sumr += rr
			countr++
		}
	}
	if countr > 0 {
		out.Minor = sumr / float64(countr)
	}

	if !finite(out.Major) || out.Major <= minRadius {
		out.Major = DefaultMajorRadius
	}
	if !finite(out.Minor) || out.Minor <= minRadius {
		out.Minor = DefaultMinorRadius
	}

	return out
}

// FitSaddle estimates the saddle coefficient by least squares:
// A = Σ(x²−y²)z / Σ(x²−y²)² over offsets from the bounding-box center. A
// falls back to 0.5 when the denominator is <= 1e-12 or the result is not
// finite.
func FitSaddle(verts []vec3.Vec) SaddleParams {
	out := SaddleParams{A: DefaultSaddleA}
	if len(verts) == 0 {
		return out
	}
	lo, hi := vec3.Bounds(verts)
	out.Center = vec3.Scale(0.5, vec3.Add(lo, hi))

	var num, den float64
	for _, v := range verts {
		q := vec3.Sub(v, out.Center)
		txy := q.X*q.X - q.Y*q.Y
		if finite(txy) && finite(q.Z) {
			num += txy * q.Z
			den += txy * txy
		}
	}
	if den > vec3.Eps {
		out.A = num / den
	}
	if !finite(out.A) {
		out.A = DefaultSaddleA
	}

	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
