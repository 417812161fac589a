// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// impl_sdf.go — SDFSphere(radius, cells): an irregular sphere tessellation
// from marching cubes over a signed distance field.
//
// Contract:
//   • The triangle soup produced by sdfx is welded: vertices closer than
//     weldTolerance·radius collapse to one index.
//   • Triangles that become degenerate after welding are dropped.
//   • Output is deterministic for equal (radius, cells).
//
// Complexity: O(cells³) field evaluations, O(T) welding with T triangles.

package builder

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// weldTolerance is the relative grid used to merge duplicate soup vertices.
const weldTolerance = 1e-7

type weldKey [3]int64

// SDFSphere returns a Constructor for a marching-cubes sphere with roughly
// `cells` cubes across its diameter.
func SDFSphere(radius float64, cells int) Constructor {
	return func(m *mesh.Mesh, _ builderConfig) error {
		if cells < MinSDFCells {
			return fmt.Errorf("%s: cells=%d (must be ≥ %d): %w", MethodSDFSphere, cells, MinSDFCells, ErrTooFewSegments)
		}
		if !validSize(radius) {
			return fmt.Errorf("%s: radius=%g: %w", MethodSDFSphere, radius, ErrBadSize)
		}

		s, err := sdf.Sphere3D(radius)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", MethodSDFSphere, err, ErrConstructFailed)
		}
		tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
		if len(tris) == 0 {
			return fmt.Errorf("%s: empty tessellation: %w", MethodSDFSphere, ErrConstructFailed)
		}

		// Weld the soup into an indexed mesh.
		q := 1 / (weldTolerance * radius)
		index := make(map[weldKey]int, len(tris)/2)
		weld := func(x, y, z float64) int {
			k := weldKey{int64(math.Round(x * q)), int64(math.Round(y * q)), int64(math.Round(z * q))}
			if i, ok := index[k]; ok {
				return i
			}
			i := len(m.Vertices)
			m.Vertices = append(m.Vertices, vec3.Vec{X: x, Y: y, Z: z})
			index[k] = i

			return i
		}
		for _, t := range tris {
			var f mesh.Face
			for j := 0; j < 3; j++ {
				f[j] = weld(t[j].X, t[j].Y, t[j].Z)
			}
			if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
				continue
			}
			m.Faces = append(m.Faces, f)
		}

		return nil
	}
}
