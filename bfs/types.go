package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start index is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetNotFound is returned when Target names a vertex outside the graph.
	ErrTargetNotFound = errors.New("bfs: target vertex not found")

	// ErrOptionViolation is returned for a rejected option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unvisited marks Depth and Parent entries of vertices the search never
// reached.
const Unvisited = -1

// Options controls one traversal.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context

	// MaxDepth stops expansion past this hop count; 0 means unbounded.
	MaxDepth int

	// Target stops the search as soon as this vertex is dequeued.
	// Unvisited disables early exit.
	Target int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context, no depth bound and no target.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Target: Unvisited}
}

// WithContext makes the search abort with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the hop count explored. Negative d is recorded and
// surfaced as ErrOptionViolation by BFS.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth=%d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Target enables early exit when v is dequeued.
func Target(v int) Option {
	return func(o *Options) { o.Target = v }
}

// Result is the outcome of one traversal. Depth and Parent are indexed by
// vertex; Order lists vertices in dequeue order.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was discovered.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unvisited
}

// Hops returns the hop count from Start to v, or Unvisited.
func (r *Result) Hops(v int) int {
	if !r.Reached(v) {
		return Unvisited
	}

	return r.Depth[v]
}

// PathTo walks Parent links back from dest and returns the hop-shortest
// path Start → dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: vertex %d not reached from %d", dest, r.Start)
	}
	var path []int
	for v := dest; v != Unvisited; v = r.Parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
