package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valveflow/compact"
)

// PartitionSearch is the two-agent answer by static bipartition.
//
// Every way of splitting the critical valves into (Left, Right) is scored as
// Solve(start, Left, budget) + Solve(start, Right, budget), and the best split
// wins. The last critical valve always sits in Right, so each unordered pair is
// scored once: 2^(k-1) partitions for k valves.
//
// Partitions are independent. They are dealt round-robin to Options.Workers
// goroutines; each worker owns a private Solver, and the only shared data are
// the read-only Flows and Dist tables. Each worker keeps its own maximum and the
// results are reduced after Wait. Ties resolve to the smallest Left mask, so the
// returned Split does not depend on the worker count.
//
// ctx is checked between partitions.
func PartitionSearch(ctx context.Context, g *compact.Graph, budget int, opts ...Option) (Split, error) {
	if g == nil {
		return Split{}, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Split{}, o.err
	}
	if budget < 0 {
		return Split{}, fmt.Errorf("%w (%d)", ErrNegativeBudget, budget)
	}
	if err := compact.Validate(g); err != nil {
		return Split{}, fmt.Errorf("search: %w", err)
	}

	k := g.Critical()
	if k == 0 {
		return Split{}, nil
	}
	total := uint64(1) << uint(k-1)
	full := g.FullMask()
	start := g.Start()

	workers := o.Workers
	if uint64(workers) > total {
		workers = int(total)
	}
	best := make([]Split, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			s := newSolver(g)
			local := Split{Release: -1}
			var evaluated uint64
			for p := uint64(w); p < total; p += uint64(workers) {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if s.memo.len() > o.MemoLimit {
					s.memo.reset()
				}
				left, right := p, full&^p
				r := s.solve(start, left, budget) + s.solve(start, right, budget)
				// p only grows within a worker, so strict > keeps the smallest Left
				if r > local.Release {
					local = Split{Release: r, Left: left, Right: right}
				}
				evaluated++
			}
			best[w] = local
			st := s.Stats()
			o.Logger.Debugf("search: worker %d scored %d partitions, best %d, %d evaluations, %d memo hits",
				w, evaluated, local.Release, st.Evaluations, st.Hits)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Split{}, err
	}

	out := best[0]
	for _, b := range best[1:] {
		if b.Release > out.Release || (b.Release == out.Release && b.Left < out.Left) {
			out = b
		}
	}

	return out, nil
}

// Valves names the valves each agent is responsible for.
func (s Split) Valves(g *compact.Graph) (left, right []string) {
	return g.MaskNames(s.Left), g.MaskNames(s.Right)
}
