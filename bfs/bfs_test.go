package bfs_test

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/valveflow/bfs"
	"github.com/katalvlaran/valveflow/core"
)

// adj is a minimal Adjacency backed by a slice of neighbor lists.
type adj [][]int

func (a adj) Len() int              { return len(a) }
func (a adj) Neighbors(i int) []int { return a[i] }

// chain returns 0–1–2–…–(n-1) as an undirected path.
func chain(n int) adj {
	g := make(adj, n)
	for i := 0; i+1 < n; i++ {
		g[i] = append(g[i], i+1)
		g[i+1] = append(g[i+1], i)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.BFS(chain(2), 2); !errors.Is(err, bfs.ErrSourceOutOfRange) {
		t.Errorf("bad source: want ErrSourceOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(chain(2), -1); !errors.Is(err, bfs.ErrSourceOutOfRange) {
		t.Errorf("negative source: want ErrSourceOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(chain(2), 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers a 4-cycle and checks layer distances.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := adj{{1, 3}, {0, 2}, {1, 3}, {2, 0}}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
}

// TestBFS_Directed follows one-way tunnels only forward.
func TestBFS_Directed(t *testing.T) {
	g := adj{{1}, {2}, {}}
	res, err := bfs.BFS(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(0) || res.Reached(1) {
		t.Errorf("reverse traversal leaked: Dist = %v", res.Dist)
	}
	if res.Dist[0] != bfs.Unreachable {
		t.Errorf("Dist[0] = %d; want Unreachable", res.Dist[0])
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(3)
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	res, _ := bfs.BFS(chain(3), 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool { return !(curr == 1 && nbr == 2) }),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisit checks hook order and error propagation.
func TestBFS_OnVisit(t *testing.T) {
	var seen []string
	_, err := bfs.BFS(chain(3), 0, bfs.WithOnVisit(func(id, d int) error {
		seen = append(seen, strconv.Itoa(id)+"@"+strconv.Itoa(d))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"0@0", "1@1", "2@2"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("OnVisit = %v; want %v", seen, want)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(chain(3), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: want wrapped stop, got %v", err)
	}
}

// TestBFS_PathTo covers a real path, the trivial path and an unreachable target.
func TestBFS_PathTo(t *testing.T) {
	g := adj{{1}, {0, 2}, {1}, {}}
	res, _ := bfs.BFS(g, 0)
	if path, _ := res.PathTo(2); !reflect.DeepEqual(path, []int{0, 1, 2}) {
		t.Errorf("PathTo(2): got %v; want [0 1 2]", path)
	}
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(0): got %v; want [0]", path)
	}
	if _, err := res.PathTo(3); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Network runs BFS directly over a core.Network.
func TestBFS_Network(t *testing.T) {
	net, err := core.Build([]core.NodeRecord{
		{Name: "AA", Neighbors: []string{"BB"}},
		{Name: "BB", Neighbors: []string{"AA", "CC"}},
		{Name: "CC", Neighbors: []string{"BB"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(net, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Dist[2]; got != 2 {
		t.Errorf("Dist[CC] = %d; want 2", got)
	}
}
