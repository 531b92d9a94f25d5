package sabre_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/coupling"
	"github.com/katalvlaran/qmap/mapping"
)

func device(t testing.TB, con builder.Constructor, gopts ...coupling.Option) *coupling.Graph {
	t.Helper()
	g, err := builder.Build(nil, gopts, con)
	require.NoError(t, err)
	return g
}

func identity(t testing.TB, m, n int) *mapping.Mapping {
	t.Helper()
	mp, err := mapping.Identity(m, n)
	require.NoError(t, err)
	return mp
}

// randomCircuit draws gates over n qubits, roughly half of them two-qubit.
func randomCircuit(rng *rand.Rand, n, gates int) *circuit.Circuit {
	c := circuit.New(n)
	one := []string{"h", "t", "s", "x"}
	for i := 0; i < gates; i++ {
		switch k := rng.Intn(6); {
		case k < 2 || n < 2:
			c.Gate(one[rng.Intn(len(one))], nil, rng.Intn(n))
		case k == 2:
			c.Gate("rz", []float64{rng.Float64() * 3}, rng.Intn(n))
		default:
			a := rng.Intn(n)
			b := rng.Intn(n - 1)
			if b >= a {
				b++
			}
			name := "cx"
			if k == 5 {
				name = "cz"
			}
			c.Gate(name, nil, a, b)
		}
	}
	return c
}
