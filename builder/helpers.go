// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// helpers.go — small shared pieces for the constructors.

package builder

import (
	"math"

	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// validSize reports whether x is a usable radius or extent.
func validSize(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// appendQuad splits the quad (a, b, c, d) into (a, b, d) and (b, c, d).
// a→b runs along the first grid axis, a→d along the second.
func appendQuad(m *mesh.Mesh, a, b, c, d int) {
	m.Faces = append(m.Faces, mesh.Face{a, b, d}, mesh.Face{b, c, d})
}

// appendGrid adds a (div+1)×(div+1) vertex lattice over [-size, size]²,
// rows along y and columns along x, with heights from zf, and triangulates
// every cell with appendQuad.
func appendGrid(m *mesh.Mesh, size float64, div int, zf func(x, y float64) float64) {
	base := len(m.Vertices)
	step := 2 * size / float64(div)
	for i := 0; i <= div; i++ {
		y := -size + float64(i)*step
		for j := 0; j <= div; j++ {
			x := -size + float64(j)*step
			m.Vertices = append(m.Vertices, vec3.Vec{X: x, Y: y, Z: zf(x, y)})
		}
	}

	idx := func(i, j int) int { return base + i*(div+1) + j }
	for i := 0; i < div; i++ {
		for j := 0; j < div; j++ {
			appendQuad(m, idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1))
		}
	}
}
