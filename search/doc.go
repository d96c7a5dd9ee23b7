// Package search finds the maximum pressure release one or two agents can
// obtain from a valve network within a time budget.
//
// Three searches are provided:
//
//   - Solver / MaxRelease — one agent over a compact.Graph. The state is
//     (position, closed-valve bitmask, time left); from each state the agent
//     walks straight to some closed valve and opens it, gaining
//     flow × time-left-after-opening. Memoized recursion, O(k²·2ᵏ·T) worst case.
//
//   - JointSolver / JointSearch — two agents over the raw core.Network, one
//     minute at a time. Each agent opens the valve it stands on or walks one
//     tunnel. The memo key orders the two positions so swapped agents share an
//     entry. Exact but exponential in the network size.
//
//   - PartitionSearch — two agents over a compact.Graph. Each agent is handed a
//     disjoint share of the valves and searched alone with the full budget; the
//     best sum over all 2^(k-1) shares is the answer. Shares are scored in
//     parallel with golang.org/x/sync/errgroup.
//
// PartitionSearch relies on the agents never needing to coordinate: any
// two-agent schedule opens disjoint valve sets, and each agent alone can
// achieve at least its own share of that schedule. This holds for the
// travel-then-open model used here; it is a property of this problem, not a
// general decomposition rule, and the joint search exists to cross-check it.
//
// Memos belong to exactly one solver. Solvers are not safe for concurrent use;
// the compact.Graph and core.Network they read are.
//
// Usage
//
//	g, _ := compact.Compact(net, "AA")
//	one, _ := search.MaxRelease(g, 30)
//	two, _ := search.PartitionSearch(ctx, g, 26, search.WithWorkers(8))
//	fmt.Println(one, two.Release)
package search
