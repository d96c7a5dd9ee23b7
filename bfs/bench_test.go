package bfs_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on a 64×64 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 64
	g := make(adj, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				g[v] = append(g[v], v+1)
				g[v+1] = append(g[v+1], v)
			}
			if r+1 < side {
				g[v] = append(g[v], v+side)
				g[v+side] = append(g[v+side], v)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
