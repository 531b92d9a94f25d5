// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// result.go - routed output and its self-check.

package sabre

import (
	"fmt"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/coupling"
	"github.com/katalvlaran/qmap/mapping"
)

// Instruction is one operation of the routed program.
type Instruction struct {
	// Qubits are physical operands.
	Qubits []int
	// Logical are the operands of the source operation; nil for SWAPs.
	Logical []int
	Payload any
	// Swap marks routing-inserted SWAPs.
	Swap bool
	// Source is the DAG node ID, or -1 for SWAPs.
	Source int
}

// Result is a routed program: every source operation exactly once, in an
// order consistent with its dependencies, interleaved with SWAPs so that every
// two-qubit instruction acts on a coupler.
type Result struct {
	Ops []Instruction
	// Initial is the mapping before the first instruction.
	Initial *mapping.Mapping
	// Final is the mapping after the last instruction.
	Final *mapping.Mapping

	Swaps         int
	Iterations    int
	ReleaseValves int

	// Gates is the number of source operations.
	Gates     int
	NumClbits int
}

// Depth returns the layered depth of Ops, counting SWAPs as one layer.
func (r *Result) Depth() int {
	level := make([]int, r.Initial.NumPhysical())
	depth := 0
	for _, ins := range r.Ops {
		d := 0
		for _, q := range ins.Qubits {
			if level[q] > d {
				d = level[q]
			}
		}
		d++
		for _, q := range ins.Qubits {
			level[q] = d
		}
		if d > depth {
			depth = d
		}
	}
	return depth
}

// Circuit renders Ops as a physical circuit over the device's qubits.
func (r *Result) Circuit() *circuit.Circuit {
	c := circuit.New(r.Initial.NumPhysical())
	c.NumClbits = r.NumClbits
	for _, ins := range r.Ops {
		c.Append(ins.Payload, ins.Qubits...)
	}
	return c
}

// Check replays Ops from Initial and verifies that
//   - every two-qubit instruction acts on a coupler of g,
//   - each gate's physical operands host its logical operands at that point,
//   - every source operation appears exactly once,
//   - the replay ends in Final.
func (r *Result) Check(g *coupling.Graph) error {
	if r.Initial.NumPhysical() != g.Order() {
		return fmt.Errorf("%w: mapping over %d sites, device has %d", ErrCheckFailed, r.Initial.NumPhysical(), g.Order())
	}
	m := r.Initial.Clone()
	seen := make([]bool, r.Gates)
	swaps := 0
	for i, ins := range r.Ops {
		if len(ins.Qubits) == 2 && !g.Adjacent(ins.Qubits[0], ins.Qubits[1]) {
			return fmt.Errorf("%w: op %d on non-adjacent %v", ErrCheckFailed, i, ins.Qubits)
		}
		if ins.Swap {
			m.SwapPhysical(ins.Qubits[0], ins.Qubits[1])
			swaps++
			continue
		}
		if ins.Source < 0 || ins.Source >= r.Gates || seen[ins.Source] {
			return fmt.Errorf("%w: op %d has source %d", ErrCheckFailed, i, ins.Source)
		}
		seen[ins.Source] = true
		for k, l := range ins.Logical {
			if m.Physical(l) != ins.Qubits[k] {
				return fmt.Errorf("%w: op %d expects logical %d on site %d, found %d",
					ErrCheckFailed, i, l, ins.Qubits[k], m.Physical(l))
			}
		}
	}
	for id, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: source op %d missing", ErrCheckFailed, id)
		}
	}
	if swaps != r.Swaps {
		return fmt.Errorf("%w: %d SWAPs emitted, %d reported", ErrCheckFailed, swaps, r.Swaps)
	}
	if !m.Equal(r.Final) {
		return fmt.Errorf("%w: replay ends in %v, reported %v", ErrCheckFailed, m, r.Final)
	}
	return nil
}
