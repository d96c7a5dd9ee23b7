// File: network.go
// Role: Network construction (two-pass name resolution) and read-only queries.
//
// Determinism:
//   - Node indices follow record order.
//   - Neighbor order follows first appearance in the input; reverse tunnels added by
//     WithBidirectional are appended after the listed ones.
package core

import "fmt"

// Build assembles a Network from parsed records.
//
// Implementation:
//   - Stage 1: Validate every record and assign indices in record order.
//   - Stage 2: Resolve neighbor names to indices, collapsing duplicates.
//   - Stage 3: Optionally add reverse tunnels (WithBidirectional).
//
// Errors:
//   - ErrEmptyName, ErrDuplicateName, ErrNegativeFlow for bad records.
//   - ErrUnknownNeighbor when a tunnel points at a name no record declares.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func Build(records []NodeRecord, opts ...Option) (*Network, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{
		nodes: make([]TunnelNode, len(records)),
		index: make(map[string]int, len(records)),
	}

	// --- 1. Index every record ---
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: record %d", ErrEmptyName, i)
		}
		if rec.Flow < 0 {
			return nil, fmt.Errorf("%w: %q has flow %d", ErrNegativeFlow, rec.Name, rec.Flow)
		}
		if _, dup := n.index[rec.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, rec.Name)
		}
		n.index[rec.Name] = i
		n.nodes[i] = TunnelNode{Index: i, Name: rec.Name, Flow: rec.Flow}
	}

	// --- 2. Resolve tunnels ---
	seen := make([]map[int]struct{}, len(records))
	for i := range seen {
		seen[i] = make(map[int]struct{})
	}
	link := func(from, to int) {
		if _, ok := seen[from][to]; ok {
			return
		}
		seen[from][to] = struct{}{}
		n.nodes[from].Neighbors = append(n.nodes[from].Neighbors, to)
	}
	for i, rec := range records {
		for _, name := range rec.Neighbors {
			j, ok := n.index[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q (listed by %q)", ErrUnknownNeighbor, name, rec.Name)
			}
			link(i, j)
		}
	}

	// --- 3. Reverse tunnels ---
	if o.bidirectional {
		for i := range n.nodes {
			// range over a snapshot; link may append to other nodes only
			for _, j := range n.nodes[i].Neighbors {
				link(j, i)
			}
		}
	}

	return n, nil
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// Node returns a copy of the node at index i.
func (n *Network) Node(i int) (TunnelNode, error) {
	if i < 0 || i >= len(n.nodes) {
		return TunnelNode{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	node := n.nodes[i]
	node.Neighbors = append([]int(nil), node.Neighbors...)

	return node, nil
}

// Index resolves a node name to its index.
func (n *Network) Index(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return i, nil
}

// Neighbors returns the neighbor indices of node i.
// The returned slice is shared with the network and must not be modified.
// It returns nil for an out-of-range index.
func (n *Network) Neighbors(i int) []int {
	if i < 0 || i >= len(n.nodes) {
		return nil
	}

	return n.nodes[i].Neighbors
}

// Flow returns the flow rate of node i, or 0 for an out-of-range index.
func (n *Network) Flow(i int) int {
	if i < 0 || i >= len(n.nodes) {
		return 0
	}

	return n.nodes[i].Flow
}

// Name returns the name of node i, or "" for an out-of-range index.
func (n *Network) Name(i int) string {
	if i < 0 || i >= len(n.nodes) {
		return ""
	}

	return n.nodes[i].Name
}

// Critical returns, in ascending index order, every node whose flow exceeds threshold.
func (n *Network) Critical(threshold int) []int {
	out := make([]int, 0, len(n.nodes))
	for i := range n.nodes {
		if n.nodes[i].Flow > threshold {
			out = append(out, i)
		}
	}

	return out
}
