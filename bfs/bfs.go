package bfs

import "github.com/katalvlaran/geodesiclab/core"

// queueItem pairs a vertex with its hop count.
type queueItem struct {
	id    int
	depth int
}

// walker carries the mutable state of one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS explores g from start in non-decreasing hop count.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrTargetNotFound,
// ErrOptionViolation, or the context error on cancellation.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	if o.Target != Unvisited && !g.HasVertex(o.Target) {
		return nil, ErrTargetNotFound
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  filled(n, Unvisited),
			Parent: filled(n, Unvisited),
		},
	}
	w.push(start, 0, Unvisited)

	return w.res, w.loop()
}

func (w *walker) push(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop drains the queue, stopping early on the target or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if item.id == w.opts.Target {
			return nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		err := w.graph.VisitNeighbors(item.id, func(e core.Edge) bool {
			if w.res.Depth[e.To] == Unvisited {
				w.push(e.To, item.depth+1, item.id)
			}
			return true
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Components labels the connected components of g. label[v] is the
// component index of v, numbered from 0 in order of the smallest vertex
// they contain; count is the number of components. Isolated vertices form
// their own components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) (label []int, count int, err error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.Order()
	label = filled(n, Unvisited)
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if label[s] != Unvisited {
			continue
		}
		label[s] = count
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			err = g.VisitNeighbors(u, func(e core.Edge) bool {
				if label[e.To] == Unvisited {
					label[e.To] = count
					queue = append(queue, e.To)
				}
				return true
			})
			if err != nil {
				return nil, 0, err
			}
		}
		count++
	}

	return label, count, nil
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
