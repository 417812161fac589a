package heat

import (
	"math"
	"sort"

	"github.com/katalvlaran/geodesiclab/core"
	"github.com/katalvlaran/geodesiclab/matrix"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// entry is one off-diagonal cotangent weight.
type entry struct {
	col int
	w   float64
}

// System holds the discrete operators of a triangle mesh: lumped vertex
// masses, the symmetric half-cotangent weights and the diffusion time.
//
// The cotangent Laplacian L is never materialized. It is negative
// semi-definite, (Lx)_i = Σ_j w_ij (x_j − x_i); the solver works with the
// stiffness K = −L so that both CG systems are positive definite.
type System struct {
	// Vertices are the positions the system was built from.
	Vertices []vec3.Vec

	// Faces are the faces that contributed (finite area > 1e-12).
	Faces []mesh.Face

	// Mass is one third of the incident triangle area per vertex.
	Mass []float64

	// MeanEdge is the mean length of the contributing face edges (edges
	// shared by two faces count twice); 1 when no face contributed.
	MeanEdge float64

	// Time is the diffusion time MeanEdge².
	Time float64

	rows [][]entry
}

// Assemble builds the operators for verts and faces. Faces with an index out
// of range or with area at or below 1e-12 (or non-finite) are skipped.
//
// Complexity: O(F log d) time with d the maximum vertex degree, O(V + F)
// memory.
func Assemble(verts []vec3.Vec, faces []mesh.Face) *System {
	n := len(verts)
	sys := &System{
		Vertices: verts,
		Faces:    make([]mesh.Face, 0, len(faces)),
		Mass:     make([]float64, n),
		rows:     make([][]entry, n),
	}
	acc := make([]map[int]float64, n)
	add := func(i, j int, w float64) {
		if acc[i] == nil {
			acc[i] = make(map[int]float64, 6)
		}
		acc[i][j] += w
		if acc[j] == nil {
			acc[j] = make(map[int]float64, 6)
		}
		acc[j][i] += w
	}

	var edgeSum float64
	var edgeCount int
	for _, f := range faces {
		i, j, k := f[0], f[1], f[2]
		if i < 0 || j < 0 || k < 0 || i >= n || j >= n || k >= n {
			continue
		}
		pi, pj, pk := verts[i], verts[j], verts[k]
		area := vec3.TriangleArea(pi, pj, pk)
		if math.IsNaN(area) || math.IsInf(area, 0) || area <= degenerateArea {
			continue
		}
		sys.Faces = append(sys.Faces, f)

		// 1) Lumped mass.
		sys.Mass[i] += area / 3
		sys.Mass[j] += area / 3
		sys.Mass[k] += area / 3

		// 2) Each edge gets half the cotangent of the opposite angle.
		cotI := vec3.Cot(vec3.Sub(pj, pi), vec3.Sub(pk, pi))
		cotJ := vec3.Cot(vec3.Sub(pk, pj), vec3.Sub(pi, pj))
		cotK := vec3.Cot(vec3.Sub(pi, pk), vec3.Sub(pj, pk))
		add(i, j, 0.5*cotK)
		add(j, k, 0.5*cotI)
		add(k, i, 0.5*cotJ)

		edgeSum += vec3.Dist(pi, pj) + vec3.Dist(pj, pk) + vec3.Dist(pk, pi)
		edgeCount += 3
	}

	// 3) Freeze rows in column order so every traversal is deterministic.
	for i, m := range acc {
		row := make([]entry, 0, len(m))
		for j, w := range m {
			row = append(row, entry{col: j, w: w})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
		sys.rows[i] = row
	}

	sys.MeanEdge = 1
	if edgeCount > 0 {
		sys.MeanEdge = edgeSum / float64(edgeCount)
	}
	sys.Time = sys.MeanEdge * sys.MeanEdge

	return sys
}

// Dim returns the number of vertices.
func (s *System) Dim() int { return len(s.Mass) }

// Neighbors returns the vertices sharing a contributing face with i, in
// ascending order.
func (s *System) Neighbors(i int) []int {
	out := make([]int, len(s.rows[i]))
	for k, e := range s.rows[i] {
		out[k] = e.col
	}

	return out
}

// Weight returns the accumulated cotangent weight of edge (i, j), 0 when
// the edge does not exist.
func (s *System) Weight(i, j int) float64 {
	row := s.rows[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].col >= j })
	if k < len(row) && row[k].col == j {
		return row[k].w
	}

	return 0
}

// applyStiffness writes (Kx)_i = Σ_j w_ij (x_i − x_j) into dst.
func (s *System) applyStiffness(dst, x []float64) {
	for i, row := range s.rows {
		var sum float64
		for _, e := range row {
			sum += e.w * (x[i] - x[e.col])
		}
		dst[i] = sum
	}
}

// Laplacian returns L as a matrix-free operator.
func (s *System) Laplacian() matrix.Operator {
	return matrix.OperatorFunc{N: s.Dim(), F: func(dst, x []float64) {
		s.applyStiffness(dst, x)
		for i := range dst {
			dst[i] = -dst[i]
		}
	}}
}

// Stiffness returns K = −L as a matrix-free operator.
func (s *System) Stiffness() matrix.Operator {
	return matrix.OperatorFunc{N: s.Dim(), F: s.applyStiffness}
}

// HeatOperator returns M − tL = M + tK with t = Time.
func (s *System) HeatOperator() matrix.Operator {
	kx := make([]float64, s.Dim())

	return matrix.OperatorFunc{N: s.Dim(), F: func(dst, x []float64) {
		s.applyStiffness(kx, x)
		for i, m := range s.Mass {
			dst[i] = m*x[i] + s.Time*kx[i]
		}
	}}
}

// EdgeGraph returns the weight-neighbor graph with Euclidean edge lengths,
// used by the descent fallback.
func (s *System) EdgeGraph() (*core.Graph, error) {
	g, err := core.NewGraph(s.Dim(), core.WithEdgeCapacity(8))
	if err != nil {
		return nil, err
	}
	for i, row := range s.rows {
		for _, e := range row {
			if e.col <= i {
				continue
			}
			if err = g.AddEdge(i, e.col, vec3.Dist(s.Vertices[i], s.Vertices[e.col])); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
