// Package compact - structural checks for compacted graphs.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - Sentinel errors only, wrapped with the offending indices.
package compact

import "fmt"

// Validate checks the invariants every compacted graph must satisfy:
// a (k+1)×(k+1) matrix, non-negative entries and flows, zero diagonal,
// and a zero-flow start sentinel.
//
// Complexity: O(k²).
func Validate(g *Graph) error {
	if g == nil {
		return ErrNilNetwork
	}
	n := len(g.Flows)
	if n == 0 || len(g.Dist) != n {
		return fmt.Errorf("%w: %d rows for %d flows", ErrNotSquare, len(g.Dist), n)
	}
	for i := 0; i < n; i++ {
		if len(g.Dist[i]) != n {
			return fmt.Errorf("%w: row %d has length %d, want %d", ErrNotSquare, i, len(g.Dist[i]), n)
		}
		if g.Flows[i] < 0 {
			return fmt.Errorf("%w: flow[%d]=%d", ErrNegativeEntry, i, g.Flows[i])
		}
		if g.Dist[i][i] != 0 {
			return fmt.Errorf("%w: dist[%d][%d]=%d", ErrBadDiagonal, i, i, g.Dist[i][i])
		}
		for j := 0; j < n; j++ {
			if g.Dist[i][j] < 0 {
				return fmt.Errorf("%w: dist[%d][%d]=%d", ErrNegativeEntry, i, j, g.Dist[i][j])
			}
		}
	}
	if g.Flows[n-1] != 0 {
		return fmt.Errorf("%w: start sentinel has flow %d", ErrNegativeEntry, g.Flows[n-1])
	}

	return nil
}

// CheckSymmetric reports ErrAsymmetric for the first i<j with Dist[i][j] != Dist[j][i].
// Only bidirectional tunnel systems are expected to pass.
//
// Complexity: O(k²).
func CheckSymmetric(g *Graph) error {
	n := len(g.Dist)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.Dist[i][j] != g.Dist[j][i] {
				return fmt.Errorf("%w: dist[%d][%d]=%d, dist[%d][%d]=%d",
					ErrAsymmetric, i, j, g.Dist[i][j], j, i, g.Dist[j][i])
			}
		}
	}

	return nil
}

// CheckTriangle reports ErrTriangle for the first (i,j,k) with
// Dist[i][k] > Dist[i][j] + Dist[j][k]. Shortest-path matrices always pass.
//
// Complexity: O(k³).
func CheckTriangle(g *Graph) error {
	n := len(g.Dist)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if g.Dist[i][k] > g.Dist[i][j]+g.Dist[j][k] {
					return fmt.Errorf("%w: dist[%d][%d]=%d > %d+%d via %d",
						ErrTriangle, i, k, g.Dist[i][k], g.Dist[i][j], g.Dist[j][k], j)
				}
			}
		}
	}

	return nil
}
