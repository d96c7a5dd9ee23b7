// Package core defines the tunnel network that every valveflow algorithm reads:
// an immutable, index-addressable collection of TunnelNode records.
//
// Nodes refer to each other by integer index rather than by pointer, so the
// network is a flat slice plus a name→index map. Once Build returns, nothing
// mutates the network, and it is safe to share between goroutines without locks.
//
// Errors:
//
//	ErrNilNetwork       - network pointer is nil.
//	ErrEmptyName        - a record has an empty name.
//	ErrDuplicateName    - two records share a name.
//	ErrNegativeFlow     - a record has a negative flow rate.
//	ErrUnknownNeighbor  - a neighbor name does not match any record.
//	ErrNodeNotFound     - a lookup by name found nothing.
//	ErrIndexOutOfRange  - a lookup by index is outside [0, Len()).
package core

import "errors"

// Sentinel errors for network construction and queries.
var (
	// ErrNilNetwork indicates a nil *Network was passed where one is required.
	ErrNilNetwork = errors.New("core: network is nil")

	// ErrEmptyName indicates a NodeRecord with an empty Name.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateName indicates two NodeRecords with the same Name.
	ErrDuplicateName = errors.New("core: duplicate node name")

	// ErrNegativeFlow indicates a NodeRecord with Flow < 0.
	ErrNegativeFlow = errors.New("core: negative flow rate")

	// ErrUnknownNeighbor indicates a neighbor name with no matching NodeRecord.
	ErrUnknownNeighbor = errors.New("core: unknown neighbor")

	// ErrNodeNotFound indicates a name lookup that matched no node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("core: node index out of range")
)

// NodeRecord is the parsed, name-based description of one valve.
// It is what an input reader produces and what Build consumes.
type NodeRecord struct {
	// Name is the unique human-readable valve name (e.g. "AA").
	Name string

	// Flow is the pressure released per time unit once the valve is open.
	Flow int

	// Neighbors lists the names of valves reachable through one tunnel.
	Neighbors []string
}

// TunnelNode is one valve of a built Network.
//
// Index is stable and equals the node's position in Network order.
// Neighbors holds indices, never pointers.
type TunnelNode struct {
	Index     int
	Name      string
	Flow      int
	Neighbors []int
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	bidirectional bool
}

// WithBidirectional makes every listed tunnel traversable in both directions,
// even when the input only lists one side.
func WithBidirectional() Option {
	return func(o *buildOptions) { o.bidirectional = true }
}

// Network is the immutable tunnel graph.
//
// nodes is index-addressable; index maps Name → position in nodes.
type Network struct {
	nodes []TunnelNode
	index map[string]int
}
