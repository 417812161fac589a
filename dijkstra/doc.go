// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// mesh edge graph (core.Graph) with float64 Euclidean weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - A min-heap with lazy decrease-key always expands the next-closest vertex.
//   - With Target set, the search stops as soon as the target is popped; the
//     remaining AllDistances entries are then tentative.
//
// Reachability:
//
//   - Result.Reachable is true iff Source == Target or Target has a predecessor.
//   - Result.Distance is Unreachable (+Inf) otherwise; report renders it as null.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNoSource, ErrSourceOutOfRange, ErrTargetOutOfRange:
//     returned by Dijkstra for structurally invalid queries.
//   - ErrBadMaxDistance, ErrBadInfThreshold:
//     raised (via panic) by option constructors given nonsense values.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - opts:
//	      • Source(int):                  required, the starting vertex.
//	      • Target(int):                  vertex to reconstruct a path to.
//	      • WithMaxDistance(float64):     explore only vertices with distance ≤ value.
//	      • WithInfEdgeThreshold(float64): skip any edge whose weight ≥ threshold.
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent queries on one graph are safe.
package dijkstra
