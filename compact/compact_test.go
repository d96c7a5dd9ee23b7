package compact_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/compact"
	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/internal/testnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompact_Canonical pins the flows, names and start row of the worked example.
func TestCompact_Canonical(t *testing.T) {
	net := testnet.MustNetwork(testnet.Canonical())
	g, err := compact.Compact(net, testnet.Start, compact.WithValidation())
	require.NoError(t, err)

	require.Equal(t, 6, g.Critical())
	require.Equal(t, 7, g.Size())
	require.Equal(t, 6, g.Start())
	assert.Equal(t, []int{13, 2, 20, 3, 22, 21, 0}, g.Flows)
	assert.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ", "AA"}, g.Names)
	assert.Equal(t, []int{1, 2, 1, 2, 5, 2, 0}, g.Dist[g.Start()])
	assert.Equal(t, uint64(0b111111), g.FullMask())
	assert.Equal(t, []string{"BB", "HH"}, g.MaskNames(0b010001))
}

// TestCompact_Threshold raises the bar so only the big valves survive.
func TestCompact_Threshold(t *testing.T) {
	net := testnet.MustNetwork(testnet.Canonical())
	g, err := compact.Compact(net, testnet.Start, compact.WithThreshold(13))
	require.NoError(t, err)
	assert.Equal(t, []string{"DD", "HH", "JJ", "AA"}, g.Names)

	_, err = compact.Compact(net, testnet.Start, compact.WithThreshold(-1))
	require.ErrorIs(t, err, compact.ErrOptionViolation)
}

// TestCompact_NoCritical leaves only the sentinel.
func TestCompact_NoCritical(t *testing.T) {
	net := testnet.MustNetwork([]core.NodeRecord{
		{Name: "AA", Neighbors: []string{"BB"}},
		{Name: "BB"},
	})
	g, err := compact.Compact(net, "AA")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Critical())
	assert.Equal(t, [][]int{{0}}, g.Dist)
	assert.Equal(t, uint64(0), g.FullMask())
}

// TestCompact_CriticalStart keeps a flowing start valve both as critical and as sentinel.
func TestCompact_CriticalStart(t *testing.T) {
	net := testnet.MustNetwork([]core.NodeRecord{
		{Name: "AA", Flow: 4, Neighbors: []string{"BB"}},
		{Name: "BB", Flow: 1},
	})
	g, err := compact.Compact(net, "AA")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 0}, g.Flows)
	assert.Equal(t, 0, g.Dist[0][2])
	require.NoError(t, compact.Validate(g))
}

// TestCompact_Errors covers the fatal preconditions.
func TestCompact_Errors(t *testing.T) {
	_, err := compact.Compact(nil, "AA")
	require.ErrorIs(t, err, compact.ErrNilNetwork)

	net := testnet.MustNetwork(testnet.Canonical())
	_, err = compact.Compact(net, "ZZ")
	require.ErrorIs(t, err, compact.ErrStartNotFound)

	// one-way tunnel: BB cannot get back to AA
	oneWay, err := core.Build([]core.NodeRecord{
		{Name: "AA", Neighbors: []string{"BB"}},
		{Name: "BB", Flow: 3},
	})
	require.NoError(t, err)
	_, err = compact.Compact(oneWay, "AA")
	require.ErrorIs(t, err, compact.ErrUnreachable)

	// island
	island := testnet.MustNetwork([]core.NodeRecord{{Name: "AA"}, {Name: "BB", Flow: 2}})
	_, err = compact.Compact(island, "AA")
	require.ErrorIs(t, err, compact.ErrUnreachable)
}

// TestCompact_TooMany rejects critical sets wider than the bitmask.
func TestCompact_TooMany(t *testing.T) {
	records := testnet.Random(3, compact.MaxValves+2, compact.MaxValves+1, 0)
	_, err := compact.Compact(testnet.MustNetwork(records), testnet.Start)
	require.ErrorIs(t, err, compact.ErrTooManyValves)
}

// TestCompact_MetricProperties checks symmetry, zero diagonal and the triangle
// inequality on a batch of random bidirectional networks.
func TestCompact_MetricProperties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		records := testnet.Random(seed, 12, 7, 6)
		g, err := compact.Compact(testnet.MustNetwork(records), testnet.Start, compact.WithValidation())
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, compact.CheckSymmetric(g), "seed %d", seed)
		require.NoError(t, compact.CheckTriangle(g), "seed %d", seed)
	}
}

// TestCompact_FloydWarshallAgrees compares both all-pairs methods.
func TestCompact_FloydWarshallAgrees(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		net := testnet.MustNetwork(testnet.Random(seed, 15, 8, 10))
		viaBFS, err := compact.Compact(net, testnet.Start)
		require.NoError(t, err, "seed %d", seed)
		viaFW, err := compact.Compact(net, testnet.Start, compact.WithMethod(compact.MethodFloydWarshall))
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, viaBFS, viaFW, "seed %d", seed)
	}

	island := testnet.MustNetwork([]core.NodeRecord{{Name: "AA"}, {Name: "BB", Flow: 2}})
	_, err := compact.Compact(island, "AA", compact.WithMethod(compact.MethodFloydWarshall))
	require.ErrorIs(t, err, compact.ErrUnreachable)

	_, err = compact.Compact(island, "AA", compact.WithMethod(compact.Method(9)))
	require.ErrorIs(t, err, compact.ErrOptionViolation)
}

// TestValidate_Rejects feeds hand-broken matrices to the validators.
func TestValidate_Rejects(t *testing.T) {
	base := func() *compact.Graph {
		return &compact.Graph{
			Flows: []int{5, 0},
			Dist:  [][]int{{0, 2}, {2, 0}},
		}
	}

	g := base()
	g.Dist = g.Dist[:1]
	require.ErrorIs(t, compact.Validate(g), compact.ErrNotSquare)

	g = base()
	g.Dist[1][1] = 1
	require.ErrorIs(t, compact.Validate(g), compact.ErrBadDiagonal)

	g = base()
	g.Dist[0][1] = -1
	require.ErrorIs(t, compact.Validate(g), compact.ErrNegativeEntry)

	g = base()
	g.Flows[1] = 3
	require.ErrorIs(t, compact.Validate(g), compact.ErrNegativeEntry)

	g = base()
	g.Dist[0][1] = 3
	require.ErrorIs(t, compact.CheckSymmetric(g), compact.ErrAsymmetric)

	tri := &compact.Graph{
		Flows: []int{1, 1, 0},
		Dist:  [][]int{{0, 1, 5}, {1, 0, 1}, {5, 1, 0}},
	}
	require.ErrorIs(t, compact.CheckTriangle(tri), compact.ErrTriangle)
	require.NoError(t, compact.Validate(base()))
}
