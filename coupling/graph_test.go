package coupling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/coupling"
)

func lineEdges(n int) []coupling.Edge {
	es := make([]coupling.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		es = append(es, coupling.Edge{U: i, V: i + 1})
	}
	return es
}

func TestNew_InvalidTopology(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []coupling.Edge
	}{
		{"empty device", 0, nil},
		{"self loop", 2, []coupling.Edge{{U: 1, V: 1}}},
		{"endpoint out of range", 2, []coupling.Edge{{U: 0, V: 2}}},
		{"negative endpoint", 2, []coupling.Edge{{U: -1, V: 0}}},
		{"duplicate reversed", 2, []coupling.Edge{{U: 0, V: 1}, {U: 1, V: 0}}},
		{"disconnected", 4, []coupling.Edge{{U: 0, V: 1}, {U: 2, V: 3}}},
		{"isolated qubit", 3, []coupling.Edge{{U: 0, V: 1}}},
		{"error rate one", 2, []coupling.Edge{{U: 0, V: 1, ErrorRate: 1}}},
		{"negative error", 2, []coupling.Edge{{U: 0, V: 1, ErrorRate: -0.1}}},
		{"NaN duration", 2, []coupling.Edge{{U: 0, V: 1, Duration: math.NaN()}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := coupling.New(tc.n, tc.edges)
			assert.ErrorIs(t, err, coupling.ErrInvalidTopology)
		})
	}
}

func TestNew_SingleQubit(t *testing.T) {
	g, err := coupling.New(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Diameter())
	assert.Empty(t, g.Neighbors(0))
}

func TestGraph_LineTables(t *testing.T) {
	g, err := coupling.New(5, lineEdges(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, []int{1, 3}, g.Neighbors(2))
	assert.True(t, g.Adjacent(3, 2))
	assert.False(t, g.Adjacent(0, 2))
	assert.False(t, g.Adjacent(0, 9))
	assert.Equal(t, 4, g.HopDistance(0, 4))
	assert.Equal(t, 4.0, g.Distance(4, 0))
	assert.Equal(t, 4, g.Diameter())
	assert.False(t, g.Calibrated())
	assert.Equal(t, []int{1, 2, 3}, g.ShortestPath(1, 3))
	assert.Equal(t, []int{3, 2, 1}, g.ShortestPath(3, 1))
	assert.Equal(t, []int{2}, g.ShortestPath(2, 2))
	assert.Equal(t, 1.0, g.EdgeCost(0, 1))
	assert.True(t, math.IsInf(g.EdgeCost(0, 2), 1))
}

func TestGraph_EdgesCanonical(t *testing.T) {
	g, err := coupling.New(3, []coupling.Edge{{U: 2, V: 1}, {U: 1, V: 0, ErrorRate: 0.02}})
	require.NoError(t, err)

	es := g.Edges()
	require.Len(t, es, 2)
	assert.Equal(t, coupling.Edge{U: 0, V: 1, ErrorRate: 0.02}, es[0])
	assert.Equal(t, coupling.Edge{U: 1, V: 2}, es[1])

	e, ok := g.Edge(1, 0)
	require.True(t, ok)
	assert.Equal(t, 0.02, e.ErrorRate)
	_, ok = g.Edge(0, 2)
	assert.False(t, ok)
}

// A square 0-1-2-3-0 where coupler (0,1) is noisy: the calibrated distance
// 0→1 goes the long way round once the infidelity outweighs two extra hops.
func TestGraph_CalibratedDistance(t *testing.T) {
	edges := []coupling.Edge{
		{U: 0, V: 1, ErrorRate: 0.95},
		{U: 1, V: 2, ErrorRate: 0.01},
		{U: 2, V: 3, ErrorRate: 0.01},
		{U: 3, V: 0, ErrorRate: 0.01},
	}
	g, err := coupling.New(4, edges, coupling.WithCalibration())
	require.NoError(t, err)
	require.True(t, g.Calibrated())

	bad := 1 - math.Log(0.05)
	good := 1 - math.Log(0.99)
	assert.InDelta(t, bad, g.EdgeCost(0, 1), 1e-12)
	assert.InDelta(t, 3*good, g.Distance(0, 1), 1e-12)
	assert.Equal(t, 1, g.HopDistance(0, 1), "hop table ignores calibration")
}

func TestGraph_DurationModel(t *testing.T) {
	edges := []coupling.Edge{{U: 0, V: 1, Duration: 100}, {U: 1, V: 2, Duration: 300}}
	g, err := coupling.New(3, edges, coupling.WithCostModel(coupling.CostModel{Duration: 0.01}))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, g.Distance(0, 2), 1e-12)
}

func TestWithCostModel_Panics(t *testing.T) {
	assert.Panics(t, func() { coupling.WithCostModel(coupling.CostModel{}) })
	assert.Panics(t, func() { coupling.WithCostModel(coupling.CostModel{Hop: -1}) })
	assert.Panics(t, func() { coupling.WithCostModel(coupling.CostModel{Hop: 1, Error: math.NaN()}) })
}
