// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// impl_sphere.go — UVSphere(radius, slices, stacks).
//
// Canonical model:
//   • One north pole, stacks−1 latitude rings of exactly `slices` vertices,
//     one south pole. No seam or pole duplicates, so every vertex is
//     referenced by a face.
//   • Faces: a cap fan at each pole and two triangles per ring quad, with
//     wrap-around in longitude.
//
// Complexity: O(slices·stacks) time and memory.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// UVSphere returns a Constructor for a latitude/longitude sphere centered at
// the origin with the poles on the z axis.
func UVSphere(radius float64, slices, stacks int) Constructor {
	return func(m *mesh.Mesh, _ builderConfig) error {
		if slices < MinSlices || stacks < MinStacks {
			return fmt.Errorf("%s: slices=%d stacks=%d (need ≥ %d, ≥ %d): %w",
				MethodUVSphere, slices, stacks, MinSlices, MinStacks, ErrTooFewSegments)
		}
		if !validSize(radius) {
			return fmt.Errorf("%s: radius=%g: %w", MethodUVSphere, radius, ErrBadSize)
		}

		// 1) Vertices: north pole, rings, south pole.
		base := len(m.Vertices)
		m.Vertices = append(m.Vertices, vec3.Vec{Z: radius})
		for i := 1; i < stacks; i++ {
			phi := math.Pi * float64(i) / float64(stacks)
			sp, cp := math.Sincos(phi)
			for j := 0; j < slices; j++ {
				theta := 2 * math.Pi * float64(j) / float64(slices)
				st, ct := math.Sincos(theta)
				m.Vertices = append(m.Vertices, vec3.Vec{
					X: radius * sp * ct,
					Y: radius * sp * st,
					Z: radius * cp,
				})
			}
		}
		m.Vertices = append(m.Vertices, vec3.Vec{Z: -radius})

		top, bottom := base, len(m.Vertices)-1
		rings := stacks - 1
		ring := func(r, j int) int { return base + 1 + r*slices + j%slices }

		// 2) North cap.
		for j := 0; j < slices; j++ {
			m.Faces = append(m.Faces, mesh.Face{top, ring(0, j), ring(0, j+1)})
		}
		// 3) Bands between consecutive rings.
		for r := 0; r < rings-1; r++ {
			for j := 0; j < slices; j++ {
				appendQuad(m, ring(r, j), ring(r+1, j), ring(r+1, j+1), ring(r, j+1))
			}
		}
		// 4) South cap.
		last := rings - 1
		for j := 0; j < slices; j++ {
			m.Faces = append(m.Faces, mesh.Face{ring(last, j), bottom, ring(last, j+1)})
		}

		return nil
	}
}
