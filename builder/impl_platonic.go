// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// impl_platonic.go — PlatonicSolid(name, radius) for the triangle-faced
// Platonic solids.
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Icosahedron}; anything else returns
//     ErrUnknownSolid.
//   • Vertices lie on the sphere of the given radius around the origin.
//   • Faces are wound counter-clockwise seen from outside.
//
// Complexity: O(1) (at most 12 vertices and 20 faces).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// PlatonicName enumerates the triangle-faced Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  F=4
	Octahedron                      // V=6,  F=8
	Icosahedron                     // V=12, F=20
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

type solid struct {
	verts []vec3.Vec
	faces []mesh.Face
}

var goldenRatio = (1 + math.Sqrt(5)) / 2

var solids = map[PlatonicName]solid{
	Tetrahedron: {
		verts: []vec3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		faces: []mesh.Face{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},
	Octahedron: {
		verts: []vec3.Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}},
		faces: []mesh.Face{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},
	Icosahedron: {
		verts: []vec3.Vec{
			{X: -1, Y: goldenRatio}, {X: 1, Y: goldenRatio}, {X: -1, Y: -goldenRatio}, {X: 1, Y: -goldenRatio},
			{Y: -1, Z: goldenRatio}, {Y: 1, Z: goldenRatio}, {Y: -1, Z: -goldenRatio}, {Y: 1, Z: -goldenRatio},
			{X: goldenRatio, Z: -1}, {X: goldenRatio, Z: 1}, {X: -goldenRatio, Z: -1}, {X: -goldenRatio, Z: 1},
		},
		faces: []mesh.Face{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}

// PlatonicSolid returns a Constructor for the named solid inscribed in a
// sphere of the given radius.
func PlatonicSolid(name PlatonicName, radius float64) Constructor {
	return func(m *mesh.Mesh, _ builderConfig) error {
		s, ok := solids[name]
		if !ok {
			return fmt.Errorf("%s: %v: %w", MethodPlatonicSolid, name, ErrUnknownSolid)
		}
		if !validSize(radius) {
			return fmt.Errorf("%s: radius=%g: %w", MethodPlatonicSolid, radius, ErrBadSize)
		}

		base := len(m.Vertices)
		for _, v := range s.verts {
			m.Vertices = append(m.Vertices, vec3.Scale(radius, vec3.Unit(v)))
		}
		for _, f := range s.faces {
			m.Faces = append(m.Faces, mesh.Face{base + f[0], base + f[1], base + f[2]})
		}

		return nil
	}
}

// IcosahedronMesh builds a standalone icosahedron of the given radius.
func IcosahedronMesh(radius float64) (*mesh.Mesh, error) {
	return Build(PlatonicSolid(Icosahedron, radius))
}
