// Package bfs provides breadth-first search over an index-addressed graph,
// returning unit-cost shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a source vertex,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import "fmt"

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Adjacency
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrSourceOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g Adjacency, source int, opts ...Option) (*Result, error) {
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

	n := g.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Dist[i] = Unreachable
		w.res.Parent[i] = Unreachable
	}

	w.enqueue(source, 0, Unreachable)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Dist[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			// first time seen?
			if w.res.Dist[nbr] == Unreachable {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}
