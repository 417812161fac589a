// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// impl_grid.go — Plane(size, div) and Saddle(size, div, height).
//
// Canonical model:
//   • (div+1)² vertices on [-size, size]², row-major with y rows and x
//     columns.
//   • 2·div² triangles, each cell split along the (i+1, j)–(i, j+1)
//     diagonal.
//
// Complexity: O(div²) time and memory.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodesiclab/mesh"
)

// Plane returns a Constructor for a triangulated square grid in the z = 0
// plane.
func Plane(size float64, div int) Constructor {
	return func(m *mesh.Mesh, _ builderConfig) error {
		if div < MinDivisions {
			return fmt.Errorf("%s: divisions=%d (must be ≥ %d): %w", MethodPlane, div, MinDivisions, ErrTooFewSegments)
		}
		if !validSize(size) {
			return fmt.Errorf("%s: size=%g: %w", MethodPlane, size, ErrBadSize)
		}
		appendGrid(m, size, div, func(_, _ float64) float64 { return 0 })

		return nil
	}
}

// Saddle returns a Constructor for the grid z = height·(x² − y²).
// height may be any finite value; 0 gives the plane.
func Saddle(size float64, div int, height float64) Constructor {
	return func(m *mesh.Mesh, _ builderConfig) error {
		if div < MinDivisions {
			return fmt.Errorf("%s: divisions=%d (must be ≥ %d): %w", MethodSaddle, div, MinDivisions, ErrTooFewSegments)
		}
		if !validSize(size) || math.IsNaN(height) || math.IsInf(height, 0) {
			return fmt.Errorf("%s: size=%g height=%g: %w", MethodSaddle, size, height, ErrBadSize)
		}
		appendGrid(m, size, div, func(x, y float64) float64 { return height * (x*x - y*y) })

		return nil
	}
}
