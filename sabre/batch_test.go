package sabre_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/sabre"
)

func TestRouteBatch(t *testing.T) {
	g := device(t, builder.HeavyHex(1, 2))
	r, err := sabre.New(g, sabre.WithSeed(2))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(13))
	cs := make([]*circuit.Circuit, 8)
	for i := range cs {
		cs[i] = randomCircuit(rng, 8, 80)
	}
	out, err := r.RouteBatch(context.Background(), cs, 3)
	require.NoError(t, err)
	require.Len(t, out, len(cs))
	for i, c := range cs {
		one, err := r.Route(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, one.Ops, out[i].Ops, "circuit %d", i)
		assert.NoError(t, out[i].Check(g))
	}
}

func TestRouteBatch_FirstError(t *testing.T) {
	g := device(t, builder.Line(3))
	r, err := sabre.New(g)
	require.NoError(t, err)

	cs := []*circuit.Circuit{
		circuit.New(3).Gate("cx", nil, 0, 2),
		circuit.New(4).Gate("h", nil, 3),
	}
	out, err := r.RouteBatch(context.Background(), cs, 0)
	assert.ErrorIs(t, err, sabre.ErrShapeMismatch)
	assert.ErrorContains(t, err, "circuit 1")
	assert.Nil(t, out)

	out, err = r.RouteBatch(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, out)
}
