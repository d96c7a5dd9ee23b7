// Package testnet provides valve networks shared by the test suites:
// the canonical ten-valve worked example and seeded random networks.
//
// Random networks are deterministic for a given seed. math/rand.Rand is not
// goroutine-safe; build one generator per goroutine.
package testnet

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/valveflow/core"
)

// Start is the start valve of every network built here.
const Start = "AA"

// Golden answers for Canonical.
const (
	CanonicalSingle = 1651 // one agent, 30 minutes
	CanonicalDual   = 1707 // two agents, 26 minutes
)

// CanonicalText is the worked example in puzzle input form.
const CanonicalText = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Canonical returns the worked example as parsed records.
func Canonical() []core.NodeRecord {
	return []core.NodeRecord{
		{Name: "AA", Flow: 0, Neighbors: []string{"DD", "II", "BB"}},
		{Name: "BB", Flow: 13, Neighbors: []string{"CC", "AA"}},
		{Name: "CC", Flow: 2, Neighbors: []string{"DD", "BB"}},
		{Name: "DD", Flow: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{Name: "EE", Flow: 3, Neighbors: []string{"FF", "DD"}},
		{Name: "FF", Flow: 0, Neighbors: []string{"EE", "GG"}},
		{Name: "GG", Flow: 0, Neighbors: []string{"FF", "HH"}},
		{Name: "HH", Flow: 22, Neighbors: []string{"GG"}},
		{Name: "II", Flow: 0, Neighbors: []string{"AA", "JJ"}},
		{Name: "JJ", Flow: 21, Neighbors: []string{"II"}},
	}
}

// MustNetwork builds records bidirectionally and panics on error.
func MustNetwork(records []core.NodeRecord) *core.Network {
	net, err := core.Build(records, core.WithBidirectional())
	if err != nil {
		panic(err)
	}
	return net
}

// Random returns a connected network of n valves (n ≥ 1) named AA, AB, …,
// with `critical` of the non-start valves given flows in [1, 25].
// Connectivity comes from a random spanning tree; extra adds that many
// additional random tunnels. Tunnels are listed on one side only, so build
// with core.WithBidirectional.
func Random(seed int64, n, critical, extra int) []core.NodeRecord {
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	records := make([]core.NodeRecord, n)
	for i := range records {
		records[i].Name = name(i)
	}
	if critical > n-1 {
		critical = n - 1
	}
	// valves 1..n-1 shuffled; the first `critical` get a flow
	order := rng.Perm(n - 1)
	for i := 0; i < critical; i++ {
		records[order[i]+1].Flow = 1 + rng.Intn(25)
	}

	for v := 1; v < n; v++ {
		u := rng.Intn(v)
		records[u].Neighbors = append(records[u].Neighbors, records[v].Name)
	}
	for e := 0; e < extra && n > 1; e++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		records[u].Neighbors = append(records[u].Neighbors, records[v].Name)
	}

	return records
}

// name maps 0 → "AA", 1 → "AB", … , 26 → "BA".
func name(i int) string {
	return fmt.Sprintf("%c%c", 'A'+byte(i/26%26), 'A'+byte(i%26))
}
