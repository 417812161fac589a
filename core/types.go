// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types used by the
// shortest-path solvers.
//
// A Graph has a fixed number of vertices identified by dense integer indices
// [0, n) (the vertex indices of a mesh) and an undirected adjacency list of
// weighted edges. Parallel edges are kept: a mesh edge shared by two
// triangles is inserted twice, once per face, and both copies are traversed.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexOutOfRange  - an index is outside [0, n).
//	ErrNegativeWeight    - a weight is negative.
//	ErrBadWeight         - a weight is NaN or infinite.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrNegativeOrder     - NewGraph was asked for a negative vertex count.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced an index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight is not finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: vertex count must be non-negative")
)

// Edge is one directed half of an undirected connection as stored in the
// adjacency list of its origin vertex.
type Edge struct {
	// From is the origin vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the traversal cost (Euclidean length for mesh graphs).
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// Mesh graphs never need them; degenerate faces are the usual source.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithEdgeCapacity pre-sizes each adjacency bucket. Triangle meshes average
// six neighbors per vertex, doubled by parallel edges.
func WithEdgeCapacity(perVertex int) GraphOption {
	return func(g *Graph) {
		if perVertex > 0 {
			g.capHint = perVertex
		}
	}
}

// Graph is an undirected weighted multigraph over dense vertex indices.
//
// All methods are safe for concurrent use: mutations take the write lock,
// queries the read lock. Solvers read the graph after construction only.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool
	capHint    int

	adjacency [][]Edge
	edges     int
}

// NewGraph creates a graph with n isolated vertices.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make([][]Edge, n)
	if g.capHint > 0 {
		for i := range g.adjacency {
			g.adjacency[i] = make([]Edge, 0, g.capHint)
		}
	}

	return g, nil
}
