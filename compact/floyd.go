// Purpose:
//   - Dense all-pairs hop counts (Floyd–Warshall) over the whole network.
//   - Alternative to per-row BFS; O(V³) regardless of how few valves are critical,
//     so it only pays off on small, dense tunnel systems or as a cross-check.
//
// Contract:
//   - noPath denotes "no path"; the diagonal starts at 0.

package compact

import "github.com/katalvlaran/valveflow/core"

// noPath is large enough that noPath+noPath cannot overflow int.
const noPath = int(^uint(0)>>1) / 4

// allPairs builds the V×V hop-count matrix of net.
func allPairs(net *core.Network) [][]int {
	n := net.Len()
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = noPath
			}
		}
		for _, j := range net.Neighbors(i) {
			if j != i {
				d[i][j] = 1
			}
		}
	}
	floydWarshallInPlace(d)

	return d
}

// floydWarshallInPlace runs the closure with fixed k → i → j loop order.
func floydWarshallInPlace(d [][]int) {
	n := len(d)
	for k := 0; k < n; k++ {
		rowK := d[k]
		for i := 0; i < n; i++ {
			ik := d[i][k]
			if ik == noPath {
				continue // no path via k can improve i→j
			}
			rowI := d[i]
			for j := 0; j < n; j++ {
				kj := rowK[j]
				if kj == noPath {
					continue
				}
				if cand := ik + kj; cand < rowI[j] {
					rowI[j] = cand
				}
			}
		}
	}
}
