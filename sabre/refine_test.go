package sabre_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/dag"
	"github.com/katalvlaran/qmap/sabre"
)

// One forward pass leaves cx(0,3) adjacent; the backward pass keeps it, so the
// real pass needs no SWAP at all.
func TestRefine_PlacesLoneGate(t *testing.T) {
	g := device(t, builder.Line(4))
	r, err := sabre.New(g)
	require.NoError(t, err)

	res, err := r.Route(context.Background(), circuit.New(4).Gate("cx", nil, 0, 3))
	require.NoError(t, err)
	assert.Zero(t, res.Swaps)
	assert.Equal(t, []int{1, 0, 3, 2}, res.Initial.Slice())
}

func TestInitialMapping(t *testing.T) {
	g := device(t, builder.Grid(2, 3))
	c := randomCircuit(rand.New(rand.NewSource(2)), 5, 60)
	d, err := dag.Build(c)
	require.NoError(t, err)
	ctx := context.Background()

	r0, _ := sabre.New(g, sabre.WithRounds(0))
	m, err := r0.InitialMapping(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, m.Slice())

	fixed := identity(t, 5, 6)
	fixed.SwapPhysical(0, 5)
	rf, _ := sabre.New(g, sabre.WithInitialMapping(fixed))
	m, err = rf.InitialMapping(ctx, d)
	require.NoError(t, err)
	assert.True(t, m.Equal(fixed))
	m.SwapPhysical(1, 2)
	again, _ := rf.InitialMapping(ctx, d)
	assert.True(t, again.Equal(fixed), "caller mutation must not leak into the router")

	rs, _ := sabre.New(g, sabre.WithSeed(17), sabre.WithRounds(3))
	a, err := rs.InitialMapping(ctx, d)
	require.NoError(t, err)
	b, err := rs.InitialMapping(ctx, d)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.NoError(t, a.Valid())
}
