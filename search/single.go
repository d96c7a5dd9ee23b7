package search

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/valveflow/compact"
)

// stateKey is the canonical single-agent state. The unopened set is a bitmask,
// so equal sets hash equally regardless of how they were built.
type stateKey struct {
	pos       int
	remaining uint64
	time      int
}

// Solver is the single-agent search over a compacted graph.
//
// It owns its memo; reuse one Solver to answer related queries faster, but never
// call it from two goroutines at once.
type Solver struct {
	g    *compact.Graph
	memo *memo[stateKey]
}

// NewSolver validates g and returns a Solver with an empty memo.
func NewSolver(g *compact.Graph) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := compact.Validate(g); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return newSolver(g), nil
}

func newSolver(g *compact.Graph) *Solver {
	return &Solver{g: g, memo: newMemo[stateKey]()}
}

// MaxRelease is the single-agent answer: start at the sentinel with every
// critical valve closed and budget minutes on the clock.
func MaxRelease(g *compact.Graph, budget int) (int, error) {
	s, err := NewSolver(g)
	if err != nil {
		return 0, err
	}

	return s.Solve(g.Start(), g.FullMask(), budget)
}

// Solve returns the best additional release obtainable from position from,
// with the valves in remaining still closed and time minutes left.
//
// Errors:
//   - ErrNegativeBudget, ErrPositionOutOfRange, ErrMaskOutOfRange.
//
// Complexity:
//   - Time O(k² · 2ᵏ · T) worst case, Space O(k · 2ᵏ · T) memo entries.
func (s *Solver) Solve(from int, remaining uint64, time int) (int, error) {
	if err := s.check(from, remaining, time); err != nil {
		return 0, err
	}

	return s.solve(from, remaining, time), nil
}

func (s *Solver) check(from int, remaining uint64, time int) error {
	if time < 0 {
		return fmt.Errorf("%w (%d)", ErrNegativeBudget, time)
	}
	if from < 0 || from >= s.g.Size() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrPositionOutOfRange, from, s.g.Size())
	}
	if remaining&^s.g.FullMask() != 0 {
		return fmt.Errorf("%w: %#x", ErrMaskOutOfRange, remaining)
	}

	return nil
}

// solve is the memoized recursion. Depth is bounded by the number of set bits
// in remaining, at most compact.MaxValves.
func (s *Solver) solve(from int, remaining uint64, time int) int {
	if remaining == 0 || time == 0 {
		return 0
	}
	key := stateKey{pos: from, remaining: remaining, time: time}
	if v, ok := s.memo.lookup(key); ok {
		return v
	}

	row := s.g.Dist[from]
	best := 0
	for rest := remaining; rest != 0; rest &= rest - 1 {
		v := bits.TrailingZeros64(rest)
		// walk there, then one minute to open
		cost := row[v] + 1
		if cost > time {
			continue
		}
		after := time - cost
		val := after*s.g.Flows[v] + s.solve(v, remaining&^(1<<uint(v)), after)
		if val > best {
			best = val
		}
	}
	s.memo.store(key, best)

	return best
}

// Plan reconstructs one optimal opening order for the state (from, remaining, time).
// Valves that would add nothing are left out, so the steps' releases sum to Solve.
func (s *Solver) Plan(from int, remaining uint64, time int) ([]Step, error) {
	if err := s.check(from, remaining, time); err != nil {
		return nil, err
	}

	var steps []Step
	for {
		total := s.solve(from, remaining, time)
		if total == 0 {
			return steps, nil
		}
		next := -1
		for rest := remaining; rest != 0; rest &= rest - 1 {
			v := bits.TrailingZeros64(rest)
			cost := s.g.Dist[from][v] + 1
			if cost > time {
				continue
			}
			after := time - cost
			gain := after * s.g.Flows[v]
			if gain+s.solve(v, remaining&^(1<<uint(v)), after) == total {
				steps = append(steps, Step{Valve: v, Name: s.g.Names[v], Remaining: after, Release: gain})
				next = v
				from, remaining, time = v, remaining&^(1<<uint(v)), after
				break
			}
		}
		if next < 0 {
			// solve's maximum always comes from some branch
			return nil, fmt.Errorf("search: plan reconstruction lost the optimum at %d", from)
		}
	}
}

// Stats reports memo activity since construction or the last Reset.
func (s *Solver) Stats() Stats { return s.memo.stats() }

// Reset drops the memo and its counters.
func (s *Solver) Reset() { s.memo = newMemo[stateKey]() }
