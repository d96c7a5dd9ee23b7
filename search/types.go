package search

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates a nil compacted graph or network.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNegativeBudget indicates a negative time budget.
	ErrNegativeBudget = errors.New("search: time budget must be non-negative")

	// ErrPositionOutOfRange indicates an agent position outside the graph.
	ErrPositionOutOfRange = errors.New("search: position out of range")

	// ErrMaskOutOfRange indicates an unopened-valve mask with bits beyond the critical set.
	ErrMaskOutOfRange = errors.New("search: valve mask out of range")

	// ErrTooManyValves indicates a critical set wider than the 64-bit mask.
	ErrTooManyValves = errors.New("search: too many critical valves")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("search: worker count must be at least 1")

	// ErrOptionViolation indicates any other invalid Option.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultMemoLimit is the number of memo entries a partition worker keeps
// before dropping its cache between two partitions.
const DefaultMemoLimit = 1 << 20

// Logger receives debug progress from PartitionSearch.
// *golog.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option configures PartitionSearch via functional arguments.
type Option func(*Options)

// Options holds the partition search parameters.
type Options struct {
	// Workers is the number of goroutines evaluating partitions.
	Workers int

	// MemoLimit bounds each worker's memo; 0 gives every partition a fresh memo.
	MemoLimit int

	// Logger receives per-worker debug lines.
	Logger Logger

	err error
}

// DefaultOptions returns GOMAXPROCS workers, DefaultMemoLimit and a silent logger.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		MemoLimit: DefaultMemoLimit,
		Logger:    nopLogger{},
	}
}

// WithWorkers sets the number of parallel workers. n < 1 → ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w (%d)", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithMemoLimit bounds the entries a worker memo may hold before it is reset
// between partitions. n < 0 → ErrOptionViolation.
func WithMemoLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MemoLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MemoLimit = n
	}
}

// WithLogger routes debug progress to l.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats counts memo activity of one solver.
type Stats struct {
	// Evaluations is the number of states actually expanded.
	Evaluations int
	// Hits is the number of memo lookups answered from cache.
	Hits int
	// Entries is the current memo size.
	Entries int
}

// Step is one valve opening of a single-agent plan.
type Step struct {
	// Valve is the compact index of the opened valve.
	Valve int
	Name  string
	// Remaining is the time left once the valve is open.
	Remaining int
	// Release is Remaining × flow.
	Release int
}

// Split is the best bipartition found by PartitionSearch.
// Left and Right are disjoint masks over the critical valves.
type Split struct {
	Release int
	Left    uint64
	Right   uint64
}
