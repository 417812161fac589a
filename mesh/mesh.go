// Package mesh holds the triangle-mesh data model shared by every solver:
// vertex positions, triangular faces, the edge graph derived from them, the
// normalization transform used by the analytic solvers, and OBJ I/O.
package mesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geodesiclab/core"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Sentinel errors for mesh operations.
var (
	// ErrNoVertices indicates a mesh without vertices.
	ErrNoVertices = errors.New("mesh: no vertices")

	// ErrNoFaces indicates a mesh without faces where faces are required.
	ErrNoFaces = errors.New("mesh: no faces")

	// ErrVertexOutOfRange indicates a vertex index outside [0, len(Vertices)).
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrBadOBJ indicates an OBJ stream that could not be read at all.
	ErrBadOBJ = errors.New("mesh: malformed OBJ")
)

// Face is a triangle given by three vertex indices.
type Face [3]int

// Mesh is an indexed triangle mesh. After construction through New or
// ReadOBJ every face index lies in [0, len(Vertices)).
type Mesh struct {
	Vertices []vec3.Vec
	Faces    []Face
}

// New builds a mesh, dropping faces that reference a vertex outside the
// vertex list. It returns the number of dropped faces.
func New(vertices []vec3.Vec, faces []Face) (*Mesh, int) {
	m := &Mesh{Vertices: vertices, Faces: make([]Face, 0, len(faces))}
	dropped := 0
	for _, f := range faces {
		if !m.validFace(f) {
			dropped++
			continue
		}
		m.Faces = append(m.Faces, f)
	}

	return m, dropped
}

func (m *Mesh) validFace(f Face) bool {
	n := len(m.Vertices)
	for _, i := range f {
		if i < 0 || i >= n {
			return false
		}
	}

	return true
}

// Validate reports an error if any face index is out of range.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return ErrNoVertices
	}
	for fi, f := range m.Faces {
		if !m.validFace(f) {
			return fmt.Errorf("%w: face %d = %v with %d vertices", ErrVertexOutOfRange, fi, f, len(m.Vertices))
		}
	}

	return nil
}

// HasVertex reports whether i is a valid vertex index.
func (m *Mesh) HasVertex(i int) bool {
	return i >= 0 && i < len(m.Vertices)
}

// BuildGraph returns the edge graph: for every face the three undirected
// edges a-b, b-c, c-a weighted by Euclidean length. Edges shared between
// faces are inserted once per face. Degenerate edges (repeated index inside
// a face) carry no information and are skipped.
//
// Complexity: O(V + F).
func (m *Mesh) BuildGraph() (*core.Graph, error) {
	g, err := core.NewGraph(len(m.Vertices), core.WithEdgeCapacity(12))
	if err != nil {
		return nil, err
	}
	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			u, v := f[k], f[(k+1)%3]
			if u == v {
				continue
			}
			if err = g.AddEdge(u, v, vec3.Dist(m.Vertices[u], m.Vertices[v])); err != nil {
				return nil, fmt.Errorf("mesh: edge graph: %w", err)
			}
		}
	}

	return g, nil
}

// Area returns the total surface area.
func (m *Mesh) Area() float64 {
	var a float64
	for _, f := range m.Faces {
		a += vec3.TriangleArea(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
	}

	return a
}

// MeanEdgeLength averages the three edge lengths of every face (shared edges
// are counted once per face). It returns 0 for a faceless mesh.
func (m *Mesh) MeanEdgeLength() float64 {
	if len(m.Faces) == 0 {
		return 0
	}
	var sum float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		sum += vec3.Dist(a, b) + vec3.Dist(b, c) + vec3.Dist(c, a)
	}

	return sum / float64(3*len(m.Faces))
}

// Compact removes vertices no face references and renumbers faces. The
// returned slice maps each old index to its new index, or -1. A faceless
// mesh is left untouched.
func (m *Mesh) Compact() []int {
	if len(m.Faces) == 0 {
		remap := make([]int, len(m.Vertices))
		for i := range remap {
			remap[i] = i
		}

		return remap
	}
	used := make([]bool, len(m.Vertices))
	for _, f := range m.Faces {
		for _, i := range f {
			used[i] = true
		}
	}
	remap := make([]int, len(m.Vertices))
	kept := m.Vertices[:0:0]
	for i, v := range m.Vertices {
		if !used[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, v)
	}
	for fi, f := range m.Faces {
		m.Faces[fi] = Face{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	m.Vertices = kept

	return remap
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]vec3.Vec(nil), m.Vertices...),
		Faces:    append([]Face(nil), m.Faces...),
	}
}
