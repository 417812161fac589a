// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on mesh edge graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
// When a target is configured the search stops as soon as the target is
// finalized.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and parent arrays.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           index of the starting vertex (required).
//	– Target:           index of the vertex whose path is wanted; enables early exit.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrNoSource          if no Source option was given.
//	– ErrSourceOutOfRange  if the source is not a vertex of the graph.
//	– ErrTargetOutOfRange  if the target is not a vertex of the graph.
//	– ErrBadMaxDistance    if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that Dijkstra was called without Source.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrSourceOutOfRange indicates a source index outside [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrTargetOutOfRange indicates a target index outside [0, n).
	ErrTargetOutOfRange = errors.New("dijkstra: target vertex out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for vertices the search never reached.
// Serializers render it as null.
var Unreachable = math.Inf(1)

// NoVertex marks an unset Source/Target and a missing parent.
const NoVertex = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex index (required).
// Target           – vertex index whose path is reconstructed. NoVertex runs
//
//	the full single-source search with no early exit.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           int     // The index of the source vertex
	Target           int     // The index of the target vertex, or NoVertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets the vertex whose shortest path is reported in Result.Path.
// The search stops once the target's distance is final.
func Target(id int) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Panics with ErrBadInfThreshold on a non-positive or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex index.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - Target:           NoVertex (full search).
//   - MaxDistance:      +Inf (no distance limit).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		Target:           NoVertex,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result is the outcome of one Dijkstra run.
//
// AllDistances has one entry per vertex; entries never reached hold
// Unreachable. With early exit, entries of vertices not yet finalized may
// hold tentative (upper-bound) distances.
type Result struct {
	// Source and Target echo the query.
	Source, Target int

	// Reachable is true when Source == Target or a predecessor chain
	// leads from Target back to Source.
	Reachable bool

	// Distance is the shortest distance to Target, or Unreachable.
	Distance float64

	// Path lists vertex indices from Source to Target; nil when unreachable
	// or when no target was set.
	Path []int

	// AllDistances holds the best-known distance per vertex.
	AllDistances []float64

	// Parent holds the predecessor of each vertex on its best-known path,
	// or NoVertex.
	Parent []int
}

// PathTo reconstructs the best-known path from Source to v using Parent.
// It returns nil when v is out of range or was never reached.
//
// Complexity: O(path length).
func (r *Result) PathTo(v int) []int {
	if r == nil || v < 0 || v >= len(r.Parent) {
		return nil
	}
	if v != r.Source && r.Parent[v] == NoVertex {
		return nil
	}

	var rev []int
	for cur := v; cur != NoVertex; cur = r.Parent[cur] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
