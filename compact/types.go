// Package compact reduces a tunnel network to the valves worth opening.
//
// A compacted Graph keeps only critical valves (flow above a threshold) plus the
// start valve, which is appended as a final sentinel with flow 0, and stores the
// shortest hop count between every pair of them. Searches never look at the
// zero-flow corridor valves again.
package compact

import (
	"errors"
	"fmt"
)

// MaxValves is the largest critical set a Graph may hold; searches address the
// unopened set as a uint64 bitmask.
const MaxValves = 64

// Sentinel errors for compaction and validation.
var (
	// ErrNilNetwork indicates a nil *core.Network was passed to Compact.
	ErrNilNetwork = errors.New("compact: network is nil")

	// ErrStartNotFound indicates the start valve is absent from the network.
	ErrStartNotFound = errors.New("compact: start valve not found")

	// ErrUnreachable indicates a required valve pair has no connecting path.
	ErrUnreachable = errors.New("compact: valve unreachable")

	// ErrTooManyValves indicates more than MaxValves critical valves.
	ErrTooManyValves = errors.New("compact: too many critical valves")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("compact: invalid option supplied")

	// ErrNotSquare indicates a distance matrix that is not (k+1)×(k+1).
	ErrNotSquare = errors.New("compact: distance matrix is not square")

	// ErrBadDiagonal indicates a non-zero self distance.
	ErrBadDiagonal = errors.New("compact: non-zero diagonal")

	// ErrNegativeEntry indicates a negative distance or flow.
	ErrNegativeEntry = errors.New("compact: negative entry")

	// ErrAsymmetric indicates Dist[i][j] != Dist[j][i].
	ErrAsymmetric = errors.New("compact: distance matrix is asymmetric")

	// ErrTriangle indicates a violated triangle inequality.
	ErrTriangle = errors.New("compact: triangle inequality violated")
)

// Method selects how Compact computes hop counts.
type Method int

const (
	// MethodBFS runs one breadth-first search per critical valve and the start.
	MethodBFS Method = iota

	// MethodFloydWarshall closes the full network's adjacency matrix once.
	MethodFloydWarshall
)

// Option configures Compact.
type Option func(*Options)

// Options holds compaction parameters.
type Options struct {
	// Threshold: a valve is critical when its flow is strictly greater.
	Threshold int

	// Method is the all-pairs strategy; MethodBFS by default.
	Method Method

	// Validate runs Validate on the result before returning it.
	Validate bool

	err error
}

// DefaultOptions returns threshold 0, MethodBFS and validation off.
func DefaultOptions() Options {
	return Options{}
}

// WithThreshold sets the criticality threshold (flow > t). Negative t is rejected.
func WithThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: threshold cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithMethod selects the all-pairs strategy. Unknown methods are rejected.
func WithMethod(m Method) Option {
	return func(o *Options) {
		switch m {
		case MethodBFS, MethodFloydWarshall:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: unknown method %d", ErrOptionViolation, m)
		}
	}
}

// WithValidation checks the structural invariants of the result before returning.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}

// Graph is the compacted valve network.
//
// Indices 0..k-1 are critical valves in ascending network order; index k is the
// start sentinel. Flows[k] is always 0 even if the start valve itself is critical,
// in which case it also appears once among 0..k-1.
type Graph struct {
	// Flows has length k+1.
	Flows []int

	// Dist is the (k+1)×(k+1) hop-count matrix.
	Dist [][]int

	// Names and Nodes map compact indices back to the network.
	Names []string
	Nodes []int
}

// Size returns k+1, the matrix order.
func (g *Graph) Size() int { return len(g.Flows) }

// Critical returns k, the number of critical valves.
func (g *Graph) Critical() int { return len(g.Flows) - 1 }

// Start returns the sentinel index k.
func (g *Graph) Start() int { return len(g.Flows) - 1 }

// FullMask returns the bitmask with one bit per critical valve.
func (g *Graph) FullMask() uint64 {
	k := g.Critical()
	if k >= MaxValves {
		return ^uint64(0)
	}

	return uint64(1)<<uint(k) - 1
}

// MaskNames lists the names of the valves set in mask, in index order.
func (g *Graph) MaskNames(mask uint64) []string {
	var out []string
	for i := 0; i < g.Critical(); i++ {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, g.Names[i])
		}
	}

	return out
}
