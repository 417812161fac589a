// Package dijkstra implements Dijkstra's shortest-path algorithm on mesh edge graphs.
//
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - core.Graph rejects negative and non-finite weights on insertion, so no pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We stop as soon as the Target (if any) is popped; its distance is then final.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/geodesiclab/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to the vertices of g and reconstructs the path to Options.Target.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be set (ErrNoSource) and in range (ErrSourceOutOfRange).
//  3. Target, when set, must be in range (ErrTargetOutOfRange).
//
// The result is a pure function of the graph and the query.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions(NoVertex)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == NoVertex {
		return nil, ErrNoSource
	}
	n := g.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, cfg.Source, n)
	}
	if cfg.Target != NoVertex && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrTargetOutOfRange, cfg.Target, n)
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Assemble the result
	res := &Result{
		Source:       cfg.Source,
		Target:       cfg.Target,
		Distance:     Unreachable,
		AllDistances: r.dist,
		Parent:       r.prev,
	}
	if cfg.Target == NoVertex {
		return res, nil
	}
	res.Reachable = cfg.Source == cfg.Target || r.prev[cfg.Target] != NoVertex
	if res.Reachable {
		res.Distance = r.dist[cfg.Target]
		res.Path = res.PathTo(cfg.Target)
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, Target, thresholds).
	dist    []float64   // Vertex index → current best distance from Source.
	prev    []int       // Vertex index → predecessor on the shortest path.
	visited []bool      // Tracks if a vertex's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances, predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	// 1) dist[v] = +∞ and prev[v] = NoVertex for all v.
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoVertex
	}

	// 2) Distance to the source is zero.
	r.dist[r.options.Source] = 0

	// 3) Seed the heap.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{
		id:   r.options.Source,
		dist: 0,
	})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The Target has been popped.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	cfg := r.options
	var u int
	var d float64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// 2) Skip stale heap entries.
		if r.visited[u] || d > r.dist[u] {
			continue
		}

		// 3) Past the distance cap nothing further is explored.
		if d > cfg.MaxDistance {
			break
		}

		// 4) u is final.
		r.visited[u] = true

		// 5) Early exit on target.
		if u == cfg.Target {
			break
		}

		// 6) Relax all edges leaving u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and attempts to improve distances to its neighbors.
// Parallel edges are relaxed independently; the cheaper copy wins.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	err := r.g.VisitNeighbors(u, func(e core.Edge) bool {
		// Impassable edges are skipped.
		if e.Weight >= r.options.InfEdgeThreshold {
			return true
		}

		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			return true
		}

		// Strict improvement only, so equal-cost parallel copies push nothing.
		if newDist >= r.dist[e.To] {
			return true
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{
			id:   e.To,
			dist: newDist,
		})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to visit neighbors of %d: %w", u, err)
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
