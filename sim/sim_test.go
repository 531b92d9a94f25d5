package sim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/mapping"
	"github.com/katalvlaran/qmap/sim"
)

func gate(name string, params ...float64) circuit.Gate {
	return circuit.Gate{Name: name, Params: params}
}

func TestBell(t *testing.T) {
	s, err := sim.New(2)
	require.NoError(t, err)
	require.NoError(t, s.Apply(gate("h"), 0))
	require.NoError(t, s.Apply(gate("cx"), 0, 1))

	r := 1 / math.Sqrt2
	assert.InDelta(t, r, real(s.Amplitude(0)), 1e-12)
	assert.InDelta(t, r, real(s.Amplitude(3)), 1e-12)
	assert.Zero(t, s.Amplitude(1))
	assert.Zero(t, s.Amplitude(2))
}

func TestSwapEqualsThreeCX(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a, err := sim.Random(3, rng)
	require.NoError(t, err)
	b := a.Clone()

	require.NoError(t, a.Apply(gate("swap"), 0, 2))
	for _, q := range [][2]int{{0, 2}, {2, 0}, {0, 2}} {
		require.NoError(t, b.Apply(gate("cx"), q[0], q[1]))
	}
	assert.Less(t, a.Distance(b), 1e-12)
}

func TestInverses(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s, err := sim.Random(2, rng)
	require.NoError(t, err)
	orig := s.Clone()

	pairs := [][2]circuit.Gate{
		{gate("s"), gate("sdg")},
		{gate("t"), gate("tdg")},
		{gate("rx", 0.3), gate("rx", -0.3)},
		{gate("ry", 1.1), gate("ry", -1.1)},
		{gate("rz", 2), gate("rz", -2)},
		{gate("p", 0.7), gate("u1", -0.7)},
		{gate("h"), gate("h")},
		{gate("y"), gate("y")},
	}
	for _, p := range pairs {
		require.NoError(t, s.Apply(p[0], 1))
		require.NoError(t, s.Apply(p[1], 1))
	}
	require.NoError(t, s.Apply(gate("cz"), 0, 1))
	require.NoError(t, s.Apply(gate("cz"), 0, 1))
	assert.Less(t, s.Distance(orig), 1e-12)
}

func TestApplyErrors(t *testing.T) {
	s, _ := sim.New(2)
	assert.ErrorIs(t, s.Apply(gate("ccx"), 0, 1), sim.ErrUnknownGate)
	assert.ErrorIs(t, s.Apply(gate("reset"), 0), sim.ErrUnknownGate)
	assert.ErrorIs(t, s.Apply(gate("h"), 2), sim.ErrOperand)
	assert.ErrorIs(t, s.Apply(gate("cx"), 1, 1), sim.ErrOperand)
	assert.ErrorIs(t, s.Apply(gate("x"), 0, 1), sim.ErrOperand)
	assert.NoError(t, s.Apply(circuit.Measure(0), 0))

	_, err := sim.New(sim.MaxQubits + 1)
	assert.ErrorIs(t, err, sim.ErrTooManyQubits)
}

func TestEmbed(t *testing.T) {
	s, _ := sim.New(2)
	require.NoError(t, s.Apply(gate("x"), 0)) // |01⟩, amplitude index 1

	m, err := mapping.FromSlice([]int{2, 0}, 3)
	require.NoError(t, err)
	e, err := s.Embed(m)
	require.NoError(t, err)
	assert.Equal(t, 3, e.NumQubits())
	assert.Equal(t, complex128(1), e.Amplitude(1<<2))

	bad, _ := mapping.Identity(3, 3)
	_, err = s.Embed(bad)
	assert.ErrorIs(t, err, sim.ErrOperand)
}

func TestRun(t *testing.T) {
	c, err := circuit.ParseQASM(`OPENQASM 2.0; qreg q[2]; creg c[2]; x q[1]; cx q[1],q[0]; measure q -> c;`)
	require.NoError(t, err)
	s, _ := sim.New(2)
	require.NoError(t, s.Run(c))
	assert.Equal(t, complex128(1), s.Amplitude(3))

	c.Append("opaque", 0)
	assert.ErrorIs(t, s.Run(c), sim.ErrUnknownGate)
}
