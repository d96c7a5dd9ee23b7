// Package bfs provides breadth-first search over any index-addressed graph
// (anything with Len and Neighbors, such as *core.Network), returning unit-cost
// shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a source vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist: hop count per vertex, Unreachable (-1) where not reached
//   - Parent: predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort the walk with an error.
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	The compactor runs one BFS per valve of interest to build its distance
//	matrix. Tunnels all cost one minute, so BFS is the single-source shortest
//	path algorithm; no priority queue is needed.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph returns them, so the visit
//	sequence is reproducible for a fixed graph.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(net, src, bfs.WithMaxDepth(5))
//	if err != nil {
//	    // ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, or a hook error
//	}
//	hops := res.Dist[dst]
package bfs
