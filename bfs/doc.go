// Package bfs provides breadth-first search and connected-component
// labelling over the mesh edge graph (core.Graph).
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a Result with Order, Depth and Parent slices indexed by
//     vertex. Target stops at a vertex, WithMaxDepth bounds the search and
//     WithContext cancels it.
//   - Components labels every vertex with its connected component.
//
// Edge weights are ignored: BFS answers "is it connected" and "how many
// edges away", never "how far".
//
// Why
//
//   - The geodesic engine uses Components to warn when the two endpoints of
//     a heat-method query lie on different pieces of a mesh.
//   - When the endpoints are connected, the engine logs their hop distance
//     at debug level.
//
// Determinism
//
//	Neighbors are visited in insertion order (face order of the mesh), so
//	the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
