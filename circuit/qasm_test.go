package circuit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/circuit"
)

const bell = `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];
qreg anc[1];
creg c0[1];
creg c1[2];

h q[0];            // superpose
cx q[0], q[1];
rz(-3*pi/4) anc[0];
u3(pi/2, 0, 1e-3) q[1];
barrier q[0], q[1];
measure q[0] -> c1[1];
measure anc[0] -> c0[0];
`

func TestParseQASM_Registers(t *testing.T) {
	c, err := circuit.ParseQASM(bell)
	require.NoError(t, err)

	assert.Equal(t, 3, c.NumQubits)
	assert.Equal(t, 3, c.NumClbits)
	require.Len(t, c.Ops, 6)

	assert.Equal(t, []int{0}, c.Ops[0].Qubits)
	assert.Equal(t, circuit.Gate{Name: "h"}, c.Ops[0].Payload)
	assert.Equal(t, []int{0, 1}, c.Ops[1].Qubits)
	assert.Equal(t, []int{2}, c.Ops[2].Qubits)

	rz := c.Ops[2].Payload.(circuit.Gate)
	assert.InDelta(t, -3*math.Pi/4, rz.Params[0], 1e-12)

	u3 := c.Ops[3].Payload.(circuit.Gate)
	require.Len(t, u3.Params, 3)
	assert.InDelta(t, math.Pi/2, u3.Params[0], 1e-12)
	assert.Equal(t, 1e-3, u3.Params[2])

	assert.Equal(t, circuit.Measure(2), c.Ops[4].Payload, "c1[1] is flat bit 2")
	assert.Equal(t, circuit.Measure(0), c.Ops[5].Payload)
	assert.Equal(t, []int{2}, c.Ops[5].Qubits)
	assert.Equal(t, 1, c.TwoQubitCount())
}

func TestParseQASM_Broadcast(t *testing.T) {
	c, err := circuit.ParseQASM(`qreg a[3]; qreg b[3]; creg m[3]; h a; cx a, b; cz a[0], b; measure b -> m;`)
	require.NoError(t, err)
	require.Len(t, c.Ops, 3+3+3+3)

	assert.Equal(t, []int{1, 4}, c.Ops[4].Qubits)
	assert.Equal(t, []int{0, 5}, c.Ops[8].Qubits)
	assert.Equal(t, []int{5}, c.Ops[11].Qubits)
	assert.Equal(t, circuit.Measure(2), c.Ops[11].Payload)
}

func TestParseQASM_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"classical control", `qreg q[1]; creg c[1]; if(c==1) x q[0];`, circuit.ErrUnsupportedStatement},
		{"gate definition", `gate foo a { h a; }`, circuit.ErrUnsupportedStatement},
		{"unknown register", `qreg q[1]; h r[0];`, circuit.ErrUnknownRegister},
		{"index beyond size", `qreg q[2]; x q[2];`, circuit.ErrInvalidOperand},
		{"bad parameter", `qreg q[1]; rz(tau) q[0];`, circuit.ErrSyntax},
		{"broadcast mismatch", `qreg a[2]; qreg b[3]; cx a, b;`, circuit.ErrSyntax},
		{"redeclared", `qreg q[2]; qreg q[1];`, circuit.ErrSyntax},
		{"bad declaration", `qreg q;`, circuit.ErrSyntax},
		{"size out of int range", `qreg q[99999999999999999999];`, circuit.ErrSyntax},
		{"qubit count overflow", `qreg q[9223372036854775807]; qreg r[2];`, circuit.ErrSyntax},
		{"clbit count overflow", `creg c[9223372036854775807]; creg d[1];`, circuit.ErrSyntax},
		{"index out of int range", `qreg q[2]; x q[99999999999999999999];`, circuit.ErrSyntax},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := circuit.ParseQASM(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWriteQASM_RoundTrip(t *testing.T) {
	c := circuit.New(3)
	c.Gate("h", nil, 0).
		Gate("cx", nil, 0, 2).
		Gate("rz", []float64{math.Pi / 2}, 1).
		Append(circuit.SwapGate, 1, 2).
		Append(circuit.Measure(1), 2)

	out, err := circuit.FormatQASM(c)
	require.NoError(t, err)
	assert.Equal(t, `OPENQASM 2.0;
include "qelib1.inc";
qreg q[3];
creg c[2];
h q[0];
cx q[0],q[2];
rz(pi/2) q[1];
swap q[1],q[2];
measure q[2] -> c[1];
`, out)

	back, err := circuit.ParseQASM(out)
	require.NoError(t, err)
	assert.Equal(t, c.Ops, back.Ops)
}

func TestWriteQASM_Unprintable(t *testing.T) {
	c := circuit.New(1).Append("opaque-payload", 0)
	_, err := circuit.FormatQASM(c)
	assert.ErrorIs(t, err, circuit.ErrUnprintable)
}
