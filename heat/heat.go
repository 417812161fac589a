// Package heat computes geodesic paths on arbitrary triangle meshes with the
// heat method: diffuse heat from the source for a short time, normalize its
// gradient into a unit field pointing away from the source, and recover the
// distance whose gradient best matches that field by a Poisson solve. The
// path to a target follows the distance field downhill.
//
// Both linear systems are solved by matrix.ConjugateGradient on
// matrix-free operators built from the cotangent weights, so each CG
// iteration costs O(edges).
//
// Typical use:
//
//	c := heat.Geodesic(m.Vertices, m.Faces, start, end)
//	if c.Empty() {
//	    // no path
//	}
package heat

import (
	"fmt"

	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Result bundles everything a heat-method run produced.
type Result struct {
	Curve curve.Curve
	Field Field
	Path  Path
}

// Run assembles the operators, solves the distance field from start and
// extracts the path to end. The curve runs start → end and its length is
// the sum of segment lengths.
//
// Errors: ErrNoVertices, ErrVertexOutOfRange, ErrZeroSourceMass, ErrNoPath.
func Run(verts []vec3.Vec, faces []mesh.Face, start, end int, opts ...Option) (Result, error) {
	n := len(verts)
	if n == 0 {
		return Result{}, ErrNoVertices
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return Result{}, fmt.Errorf("%w: start=%d end=%d n=%d", ErrVertexOutOfRange, start, end, n)
	}

	sys := Assemble(verts, faces)
	slogger().Debug("heat: assembled",
		"vertices", n, "faces", len(sys.Faces), "skippedFaces", len(faces)-len(sys.Faces),
		"meanEdge", sys.MeanEdge)

	field, err := Solve(sys, start, opts...)
	if err != nil {
		return Result{}, err
	}
	path, err := ExtractPath(sys, field.Phi, start, end, opts...)
	if err != nil {
		return Result{Field: field}, err
	}

	pts := make([]vec3.Vec, len(path.Vertices))
	for i, v := range path.Vertices {
		pts[i] = verts[v]
	}

	return Result{Curve: curve.New(curve.HeatGeodesic, pts), Field: field, Path: path}, nil
}

// Geodesic is Run reduced to its curve. On any failure the curve is named
// but has no points.
func Geodesic(verts []vec3.Vec, faces []mesh.Face, start, end int, opts ...Option) curve.Curve {
	res, err := Run(verts, faces, start, end, opts...)
	if err != nil {
		slogger().Warn("heat: no path", "start", start, "end", end, "error", err)
		return curve.Curve{Name: curve.HeatGeodesic}
	}

	return res.Curve
}
