// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// impl_torus.go — Torus(major, minor, segMajor, segMinor).
//
// Canonical model:
//   • segMajor·segMinor vertices (u around the z axis, v around the tube),
//     welded across both seams so the mesh is a closed surface.
//   • Two triangles per (u, v) cell, indices wrapping modulo the segment
//     counts.
//
// Complexity: O(segMajor·segMinor) time and memory.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Torus returns a Constructor for a ring torus around the z axis. major must
// exceed minor so that the tube does not self-intersect.
func Torus(major, minor float64, segMajor, segMinor int) Constructor {
	return func(m *mesh.Mesh, _ builderConfig) error {
		if segMajor < MinTorusSegments || segMinor < MinTorusSegments {
			return fmt.Errorf("%s: segments=%d×%d (each must be ≥ %d): %w",
				MethodTorus, segMajor, segMinor, MinTorusSegments, ErrTooFewSegments)
		}
		if !validSize(major) || !validSize(minor) || minor >= major {
			return fmt.Errorf("%s: major=%g minor=%g: %w", MethodTorus, major, minor, ErrBadSize)
		}

		base := len(m.Vertices)
		for i := 0; i < segMajor; i++ {
			st, ct := math.Sincos(2 * math.Pi * float64(i) / float64(segMajor))
			for j := 0; j < segMinor; j++ {
				sp, cp := math.Sincos(2 * math.Pi * float64(j) / float64(segMinor))
				rho := major + minor*cp
				m.Vertices = append(m.Vertices, vec3.Vec{X: rho * ct, Y: rho * st, Z: minor * sp})
			}
		}

		idx := func(i, j int) int { return base + (i%segMajor)*segMinor + j%segMinor }
		for i := 0; i < segMajor; i++ {
			for j := 0; j < segMinor; j++ {
				appendQuad(m, idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1))
			}
		}

		return nil
	}
}
