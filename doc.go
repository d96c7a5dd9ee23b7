// Package valveflow computes how much pressure can be released from a network
// of valves and tunnels when every minute counts.
//
// 🚀 What is valveflow?
//
//	A small set of focused packages that take a text description of valves,
//	shrink the network to the valves worth visiting, and search for the best
//	opening schedule:
//		• Parsing: one "Valve XX has flow rate=N; tunnels lead to valves ..." per line
//		• Network: immutable, index-addressable tunnel graph
//		• Traversal: breadth-first search with hooks and depth limits
//		• Compaction: critical-valve distance matrix (BFS or Floyd–Warshall)
//		• Search: one agent, two agents in lock-step, two agents via valve partitions
//
// Packages:
//
//	core/     — NodeRecord, TunnelNode and the Network built from them
//	bfs/      — unweighted single-source traversal over any Adjacency
//	compact/  — critical valves + start sentinel, pairwise hop counts, validators
//	search/   — Solver, JointSolver and the parallel PartitionSearch
//	parse/    — line-oriented input format
//	config/   — layered settings: defaults, YAML, .env, VALVES_* environment
//	cmd/valves — command that prints the one- and two-agent answers
//
// Quick example (ten valves, start AA):
//
//	II ── AA ── BB
//	│     │     │
//	JJ    DD ── CC
//	      │
//	      EE ── FF ── GG ── HH
//
// One agent with 30 minutes releases 1651; two agents with 26 minutes each
// release 1707.
//
//	go install github.com/katalvlaran/valveflow/cmd/valves@latest
package valveflow
