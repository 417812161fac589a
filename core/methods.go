// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// Order returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Size returns the number of undirected edges inserted, counting parallel
// copies separately.
//
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// HasVertex reports whether id is a valid vertex index.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && id < len(g.adjacency)
}

// AddEdge inserts the undirected edge u-v with weight w. Both adjacency
// lists receive a half-edge; a second call with the same endpoints adds a
// parallel edge.
//
// Errors: ErrVertexOutOfRange, ErrBadWeight, ErrNegativeWeight, ErrLoopNotAllowed.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adjacency)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge %d-%d with n=%d", ErrVertexOutOfRange, u, v, n)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %d-%d", ErrBadWeight, u, v)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, u, v, w)
	}
	if u == v {
		if !g.allowLoops {
			return ErrLoopNotAllowed
		}
		g.adjacency[u] = append(g.adjacency[u], Edge{From: u, To: u, Weight: w})
		g.edges++

		return nil
	}

	g.adjacency[u] = append(g.adjacency[u], Edge{From: u, To: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Edge{From: v, To: u, Weight: w})
	g.edges++

	return nil
}

// Neighbors returns the half-edges leaving id, in insertion order. The
// returned slice is a copy.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.adjacency) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, id)
	}
	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Degree returns the number of half-edges leaving id (parallel edges counted),
// or 0 for an invalid index.
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.adjacency) {
		return 0
	}

	return len(g.adjacency[id])
}

// VisitNeighbors calls fn for every half-edge leaving id without copying
// the adjacency bucket. Iteration stops early when fn returns false.
// fn must not mutate the graph.
func (g *Graph) VisitNeighbors(id int, fn func(e Edge) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.adjacency) {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, id)
	}
	for _, e := range g.adjacency[id] {
		if !fn(e) {
			break
		}
	}

	return nil
}

// Edges returns every undirected edge once (the half-edge with From <= To),
// ordered by origin vertex then insertion order.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for _, bucket := range g.adjacency {
		for _, e := range bucket {
			if e.From <= e.To {
				out = append(out, e)
			}
		}
	}

	return out
}
