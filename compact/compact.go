package compact

import (
	"fmt"

	"github.com/katalvlaran/valveflow/bfs"
	"github.com/katalvlaran/valveflow/core"
)

// Compact builds the critical-valve distance matrix of net, with start appended
// as the final sentinel.
//
// Implementation:
//   - Stage 1: Resolve start and collect critical valves (flow > threshold).
//   - Stage 2: Run one BFS from every valve in critical ∪ {start}
//     (or one Floyd–Warshall closure with WithMethod(MethodFloydWarshall)).
//   - Stage 3: Read the pairwise hop counts into the (k+1)×(k+1) matrix.
//
// Errors:
//   - ErrNilNetwork, ErrStartNotFound, ErrTooManyValves, ErrOptionViolation.
//   - ErrUnreachable if any required ordered pair has no path.
//
// Complexity:
//   - Time O(k·(V+E)), Space O(k² + V).
func Compact(net *core.Network, start string, opts ...Option) (*Graph, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// --- 1. Select nodes ---
	src, err := net.Index(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	critical := net.Critical(o.Threshold)
	if len(critical) > MaxValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(critical), MaxValves)
	}
	nodes := append(critical, src)
	size := len(nodes)

	g := &Graph{
		Flows: make([]int, size),
		Dist:  make([][]int, size),
		Names: make([]string, size),
		Nodes: nodes,
	}
	for i, v := range nodes {
		g.Names[i] = net.Name(v)
		if i < size-1 {
			g.Flows[i] = net.Flow(v)
		}
	}

	// --- 2./3. Pairwise hop counts ---
	var fill func() error
	switch o.Method {
	case MethodFloydWarshall:
		fill = func() error { return fillFromMatrix(g, allPairs(net)) }
	default:
		fill = func() error { return fillByBFS(g, net) }
	}
	if err := fill(); err != nil {
		return nil, err
	}

	if o.Validate {
		if err := Validate(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// fillByBFS runs one traversal per row of g.
func fillByBFS(g *Graph, net *core.Network) error {
	size := len(g.Nodes)
	for i, from := range g.Nodes {
		res, err := bfs.BFS(net, from)
		if err != nil {
			return fmt.Errorf("compact: traversal from %q: %w", g.Names[i], err)
		}
		row := make([]int, size)
		for j, to := range g.Nodes {
			if !res.Reached(to) {
				return fmt.Errorf("%w: %q → %q", ErrUnreachable, g.Names[i], g.Names[j])
			}
			row[j] = res.Dist[to]
		}
		g.Dist[i] = row
	}

	return nil
}

// fillFromMatrix copies the rows and columns of g.Nodes out of a full V×V matrix.
func fillFromMatrix(g *Graph, all [][]int) error {
	size := len(g.Nodes)
	for i, from := range g.Nodes {
		row := make([]int, size)
		for j, to := range g.Nodes {
			if all[from][to] == noPath {
				return fmt.Errorf("%w: %q → %q", ErrUnreachable, g.Names[i], g.Names[j])
			}
			row[j] = all[from][to]
		}
		g.Dist[i] = row
	}

	return nil
}
