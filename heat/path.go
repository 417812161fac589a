package heat

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/geodesiclab/dijkstra"
)

// ExtractPath recovers the vertex path from start to end over the distance
// field phi.
//
// Greedy descent walks from end: each step moves to the neighbor with the
// lowest φ among those below φ(current) − DescentTolerance; when none
// exists it may move to an unvisited neighbor below φ(current) +
// PlateauTolerance. The walk is bounded by 3·|V| steps. If it does not reach
// start, the path is the shortest path over the mesh edges (Euclidean
// weights) and Path.Fallback is set.
//
// Errors: ErrVertexOutOfRange, ErrNoPath.
func ExtractPath(sys *System, phi []float64, start, end int, opts ...Option) (Path, error) {
	n := sys.Dim()
	if start < 0 || start >= n || end < 0 || end >= n {
		return Path{}, fmt.Errorf("%w: start=%d end=%d n=%d", ErrVertexOutOfRange, start, end, n)
	}
	if len(phi) != n {
		return Path{}, fmt.Errorf("heat: ExtractPath: len(phi)=%d, n=%d", len(phi), n)
	}
	o := gatherOptions(opts...)

	// 1) Greedy descent from end.
	walk := []int{end}
	visited := make([]bool, n)
	visited[end] = true
	cur := end
	for step := 0; step < 3*n && cur != start; step++ {
		next := descend(sys, phi, visited, cur, o)
		if next < 0 {
			break
		}
		walk = append(walk, next)
		visited[next] = true
		cur = next
	}
	if cur == start {
		slices.Reverse(walk)
		return Path{Vertices: walk}, nil
	}

	// 2) Shortest path over the edge graph.
	slogger().Warn("heat: greedy descent stalled, using edge-graph shortest path",
		"stalledAt", cur, "steps", len(walk)-1)
	g, err := sys.EdgeGraph()
	if err != nil {
		return Path{}, fmt.Errorf("heat: edge graph: %w", err)
	}
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(start), dijkstra.Target(end))
	if err != nil {
		return Path{}, fmt.Errorf("heat: fallback: %w", err)
	}
	if !res.Reachable {
		return Path{}, fmt.Errorf("%w: %d and %d are not connected", ErrNoPath, start, end)
	}

	return Path{Vertices: res.Path, Fallback: true}, nil
}

// descend picks the next vertex of the greedy walk, or -1 when stuck.
func descend(sys *System, phi []float64, visited []bool, cur int, o Options) int {
	best, bestVal := -1, phi[cur]
	for _, e := range sys.rows[cur] {
		if phi[e.col]+o.DescentTolerance < bestVal {
			best, bestVal = e.col, phi[e.col]
		}
	}
	if best >= 0 {
		return best
	}
	for _, e := range sys.rows[cur] {
		if !visited[e.col] && phi[e.col] < bestVal+o.PlateauTolerance {
			best, bestVal = e.col, phi[e.col]
		}
	}

	return best
}
