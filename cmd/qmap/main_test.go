package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
)

const lineGate = `OPENQASM 2.0;
include "qelib1.inc";
qreg q[4];
cx q[0],q[3];
`

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := runCLI(t, lineGate, "-topology", "line:4")
	require.NoError(t, err)
	// refinement places the pair next to each other
	assert.Equal(t, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\nqreg q[4];\ncx q[1],q[2];\n"+
		"// initial mapping [0→1 1→0 2→3 3→2]\n// final mapping [0→1 1→0 2→3 3→2]\n", out)

	out, _, err = runCLI(t, lineGate, "-topology", "line:4", "-rounds", "0")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "swap "))
	assert.Contains(t, out, "// initial mapping [0→0 1→1 2→2 3→3]\n")
	assert.Contains(t, out, "// final mapping [0→1 1→0 2→3 3→2]\n")

	c, err := circuit.ParseQASM(out)
	require.NoError(t, err)
	assert.Len(t, c.Ops, 3)
}

func TestRun_BatchVerifyStats(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.qasm")
	b := filepath.Join(dir, "b.qasm")
	require.NoError(t, os.WriteFile(a, []byte(lineGate), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`OPENQASM 2.0; qreg q[3]; creg c[3]; h q[0]; cx q[0],q[2]; cx q[2],q[1]; measure q -> c;`), 0o600))

	out, stderr, err := runCLI(t, "",
		"-topology", "grid:2x3", "-error", "0.001:0.02", "-seed", "5",
		"-variant", "mqsabre", "-in", a, "-in", b, "-verify", "-stats")
	require.NoError(t, err)
	assert.Contains(t, out, "// "+a)
	assert.Contains(t, out, "// "+b)
	assert.Contains(t, out, "creg c[3];")
	assert.Contains(t, stderr, "mqsabre")
	assert.Contains(t, stderr, "swaps")
	assert.Contains(t, stderr, "ok")
}

func TestRun_DeviceFile(t *testing.T) {
	dev, err := builder.BuildDevice([]builder.BuilderOption{builder.WithConstantError(0.02)}, builder.Ring(5))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "dev.json")
	require.NoError(t, os.WriteFile(path, dev.Encode(), 0o600))

	out, _, err := runCLI(t, lineGate, "-device", path, "-variant", "mqsabre", "-workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "qreg q[5];")
}

func TestRun_Errors(t *testing.T) {
	cases := map[string][]string{
		"no device":      {},
		"both devices":   {"-device", "x.json", "-topology", "line:4"},
		"bad topology":   {"-topology", "torus:4"},
		"bad size":       {"-topology", "grid:3"},
		"bad error":      {"-topology", "line:4", "-error", "2"},
		"bad variant":    {"-topology", "line:4", "-variant", "astar"},
		"bad workers":    {"-topology", "line:4", "-workers", "0"},
		"too wide":       {"-topology", "line:3"},
		"stray argument": {"-topology", "line:4", "extra"},
		"unknown flag":   {"-frobnicate"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCLI(t, lineGate, args...)
			assert.Error(t, err)
		})
	}
}

func TestParseTopology(t *testing.T) {
	for spec, qubits := range map[string]int{
		"line:5":       5,
		"ring:8":       8,
		"star:4":       4,
		"complete:3":   3,
		"grid:3x3":     9,
		"heavyhex:1x1": 16,
	} {
		con, err := parseTopology(spec)
		require.NoError(t, err, spec)
		g, err := builder.Build(nil, nil, con)
		require.NoError(t, err, spec)
		assert.Equal(t, qubits, g.Order(), spec)
	}
	_, err := parseTopology("line")
	assert.ErrorIs(t, err, errTopology)
	_, err = parseTopology("grid:axb")
	assert.ErrorIs(t, err, errTopology)
}
