package search

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// openHere marks the "open the valve I stand on" move in an agent's option list.
const openHere = -1

// jointKey is the canonical two-agent state; a ≤ b always holds because the
// agents are interchangeable.
type jointKey struct {
	a, b   int
	closed uint64
	time   int
}

// JointSolver searches both agents minute by minute on the uncompacted network.
//
// Each minute every agent either opens the closed valve it stands on or walks
// one tunnel. It is exact and general, and exponentially slower than
// PartitionSearch; keep it for small networks and cross-checks.
type JointSolver struct {
	net  *core.Network
	bit  []int // network index → bit in the closed mask, or -1
	flow []int // network index → flow
	all  uint64
	memo *memo[jointKey]
}

// NewJointSolver prepares the bit layout of net's critical valves.
func NewJointSolver(net *core.Network) (*JointSolver, error) {
	if net == nil {
		return nil, ErrNilGraph
	}
	critical := net.Critical(0)
	if len(critical) > 64 {
		return nil, fmt.Errorf("%w: %d > 64", ErrTooManyValves, len(critical))
	}

	j := &JointSolver{
		net:  net,
		bit:  make([]int, net.Len()),
		flow: make([]int, net.Len()),
		memo: newMemo[jointKey](),
	}
	for i := range j.bit {
		j.bit[i] = -1
		j.flow[i] = net.Flow(i)
	}
	for b, v := range critical {
		j.bit[v] = b
		j.all |= 1 << uint(b)
	}

	return j, nil
}

// JointSearch is the two-agent answer by joint state search: both agents start
// at start with every critical valve closed and budget minutes left.
func JointSearch(net *core.Network, start string, budget int) (int, error) {
	j, err := NewJointSolver(net)
	if err != nil {
		return 0, err
	}
	s, err := net.Index(start)
	if err != nil {
		return 0, fmt.Errorf("search: %w", err)
	}

	return j.Solve(s, s, j.all, budget)
}

// Solve returns the best additional release from agents at a and b (network
// indices), with closed holding one bit per still-closed critical valve.
func (j *JointSolver) Solve(a, b int, closed uint64, time int) (int, error) {
	n := j.net.Len()
	switch {
	case time < 0:
		return 0, fmt.Errorf("%w (%d)", ErrNegativeBudget, time)
	case a < 0 || a >= n || b < 0 || b >= n:
		return 0, fmt.Errorf("%w: (%d,%d) not in [0,%d)", ErrPositionOutOfRange, a, b, n)
	case closed&^j.all != 0:
		return 0, fmt.Errorf("%w: %#x", ErrMaskOutOfRange, closed)
	}

	return j.solve(a, b, closed, time), nil
}

// FullMask returns the mask with every critical valve closed.
func (j *JointSolver) FullMask() uint64 { return j.all }

// Stats reports memo activity.
func (j *JointSolver) Stats() Stats { return j.memo.stats() }

func (j *JointSolver) solve(a, b int, closed uint64, time int) int {
	if closed == 0 || time == 0 {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	key := jointKey{a: a, b: b, closed: closed, time: time}
	if v, ok := j.memo.lookup(key); ok {
		return v
	}

	var bufA, bufB [8]int
	optsA := j.options(a, closed, bufA[:0])
	optsB := j.options(b, closed, bufB[:0])

	best := 0
	for _, ma := range optsA {
		for _, mb := range optsB {
			na, nb, left, rate := a, b, closed, 0
			if ma == openHere {
				left, rate = j.open(a, left, rate)
			} else {
				na = ma
			}
			// a valve opened by both agents in the same minute counts once
			if mb == openHere {
				left, rate = j.open(b, left, rate)
			} else {
				nb = mb
			}
			val := rate*(time-1) + j.solve(na, nb, left, time-1)
			if val > best {
				best = val
			}
		}
	}
	j.memo.store(key, best)

	return best
}

// options lists an agent's moves at pos: openHere if it stands on a closed
// valve, then every neighbor. An agent with nowhere to go stays put.
func (j *JointSolver) options(pos int, closed uint64, buf []int) []int {
	if b := j.bit[pos]; b >= 0 && closed&(1<<uint(b)) != 0 {
		buf = append(buf, openHere)
	}
	buf = append(buf, j.net.Neighbors(pos)...)
	if len(buf) == 0 {
		buf = append(buf, pos)
	}

	return buf
}

func (j *JointSolver) open(pos int, closed uint64, rate int) (uint64, int) {
	mask := uint64(1) << uint(j.bit[pos])
	if closed&mask == 0 {
		return closed, rate
	}

	return closed &^ mask, rate + j.flow[pos]
}
