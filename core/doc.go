// Package core provides the edge graph derived from a triangle mesh: a
// thread-safe, index-based, undirected multigraph with float64 weights.
//
// The Graph G = (V,E) is built once per solve and read-only afterwards:
//
//   - Vertices are dense indices [0, n) fixed at construction (NewGraph).
//   - Every AddEdge(u, v, w) stores two half-edges, u→v and v→u.
//   - Parallel edges are allowed and never deduplicated. A mesh edge shared
//     by two faces appears twice; Dijkstra treats the copies as alternatives
//     of equal cost.
//   - Weights must be finite and non-negative (ErrBadWeight, ErrNegativeWeight).
//   - Self-loops are rejected unless WithLoops is given (ErrLoopNotAllowed).
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to).
//
//	– WithEdgeCapacity(perVertex int)
//	    Pre-sizes adjacency buckets.
//
// Query API:
//
//	Order()            – number of vertices.
//	Size()             – number of undirected edges (parallel copies counted).
//	Neighbors(id)      – copy of the half-edges leaving id.
//	VisitNeighbors(id) – allocation-free iteration for hot loops.
//	Edges()            – every undirected edge once.
//
// Complexity:
//
//   - AddEdge: amortized O(1).
//   - Neighbors: O(deg).
//   - Edges: O(V + E).
//
// Concurrency: a single sync.RWMutex guards the adjacency list. Queries take
// the read lock, so any number of solvers may share one Graph.
package core
