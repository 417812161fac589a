package mesh

import (
	"math"

	"github.com/katalvlaran/geodesiclab/vec3"
)

// Transform maps model coordinates into a canonical frame: the bounding box
// is centered at the origin and its largest extent becomes 2.
type Transform struct {
	Center vec3.Vec
	Scale  float64
}

// Identity leaves points unchanged.
var Identity = Transform{Scale: 1}

// Normalize computes the transform for pts. A degenerate box (largest extent
// <= 1e-12) keeps Scale = 1.
func Normalize(pts []vec3.Vec) Transform {
	lo, hi := vec3.Bounds(pts)
	center := vec3.Scale(0.5, vec3.Add(lo, hi))
	ext := vec3.Sub(hi, lo)
	maxExt := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	scale := 1.0
	if maxExt > vec3.Eps {
		scale = 2 / maxExt
	}

	return Transform{Center: center, Scale: scale}
}

// Apply maps p into the normalized frame: (p − Center)·Scale.
func (t Transform) Apply(p vec3.Vec) vec3.Vec {
	return vec3.Scale(t.Scale, vec3.Sub(p, t.Center))
}

// ApplyAll maps every point, returning a new slice.
func (t Transform) ApplyAll(pts []vec3.Vec) []vec3.Vec {
	out := make([]vec3.Vec, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}

	return out
}

// Invert maps a normalized point back to model coordinates.
func (t Transform) Invert(p vec3.Vec) vec3.Vec {
	return vec3.Add(vec3.Scale(t.LengthScale(), p), t.Center)
}

// LengthScale converts a length measured in the normalized frame back to
// model units (1/Scale, or 1 for a degenerate Scale).
func (t Transform) LengthScale() float64 {
	if t.Scale <= vec3.Eps {
		return 1
	}

	return 1 / t.Scale
}
