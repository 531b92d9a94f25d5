// SPDX-License-Identifier: MIT

// Package dag builds the qubit-wise dependency graph of a circuit.
//
// Every operation becomes a Node. For each operand qubit, a node is linked to
// the next operation in program order that touches the same qubit, so the
// graph is acyclic by construction and node IDs (program positions) are a
// topological order. Single-qubit operations stay in the graph as ordinary
// nodes; a router executes them as soon as they reach the front.
//
// The DAG is immutable after Build and may be shared by any number of
// concurrent readers. Execution state belongs to whoever walks it.
package dag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmap/circuit"
)

// ErrUnsupportedOperation reports an operation the router cannot place:
// arity 0 or above 2, or an operand outside the circuit's qubit range.
var ErrUnsupportedOperation = errors.New("dag: unsupported operation")

// MaxArity is the largest operand count accepted by Build.
const MaxArity = 2

// Node is one operation plus its qubit-wise neighbours.
type Node struct {
	ID     int
	Op     circuit.Operation
	Qubits []int // same slice as Op.Qubits
	Preds  []int
	Succs  []int
}

// TwoQubit reports whether the node constrains routing.
func (n *Node) TwoQubit() bool { return len(n.Qubits) == 2 }

// DAG is an immutable dependency graph.
type DAG struct {
	nodes     []Node
	roots     []int
	numQubits int
	twoQubit  int
	reversed  bool
}

// Build validates c and links its operations.
//
// Complexity: O(G·a) time for G operations of arity a ≤ 2, O(G + M) memory.
func Build(c *circuit.Circuit) (*DAG, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil circuit", ErrUnsupportedOperation)
	}
	if c.NumQubits < 0 {
		return nil, fmt.Errorf("%w: %d qubits", ErrUnsupportedOperation, c.NumQubits)
	}
	d := &DAG{
		nodes:     make([]Node, len(c.Ops)),
		numQubits: c.NumQubits,
	}
	last := make([]int, c.NumQubits)
	for i := range last {
		last[i] = -1
	}

	for id, op := range c.Ops {
		if err := checkOperands(id, op.Qubits, c.NumQubits); err != nil {
			return nil, err
		}
		n := &d.nodes[id]
		n.ID, n.Op, n.Qubits = id, op, op.Qubits
		if len(op.Qubits) == 2 {
			d.twoQubit++
		}
		for _, q := range op.Qubits {
			p := last[q]
			last[q] = id
			if p < 0 || contains(n.Preds, p) {
				continue
			}
			n.Preds = append(n.Preds, p)
			d.nodes[p].Succs = append(d.nodes[p].Succs, id)
		}
		if len(n.Preds) == 0 {
			d.roots = append(d.roots, id)
		}
	}
	return d, nil
}

func checkOperands(id int, qs []int, n int) error {
	if len(qs) == 0 || len(qs) > MaxArity {
		return fmt.Errorf("%w: op %d has arity %d (want 1..%d)", ErrUnsupportedOperation, id, len(qs), MaxArity)
	}
	for k, q := range qs {
		if q < 0 || q >= n {
			return fmt.Errorf("%w: op %d operand %d not in [0,%d)", ErrUnsupportedOperation, id, q, n)
		}
		if k == 1 && qs[0] == q {
			return fmt.Errorf("%w: op %d repeats qubit %d", ErrUnsupportedOperation, id, q)
		}
	}
	return nil
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Reverse returns the same nodes with every edge flipped. Node IDs, operands
// and payloads are shared with d.
func (d *DAG) Reverse() *DAG {
	r := &DAG{
		nodes:     make([]Node, len(d.nodes)),
		numQubits: d.numQubits,
		twoQubit:  d.twoQubit,
		reversed:  !d.reversed,
	}
	for i, n := range d.nodes {
		n.Preds, n.Succs = n.Succs, n.Preds
		r.nodes[i] = n
	}
	// roots in the walk's own topological order
	for k := range r.nodes {
		i := k
		if r.reversed {
			i = len(r.nodes) - 1 - k
		}
		if len(r.nodes[i].Preds) == 0 {
			r.roots = append(r.roots, i)
		}
	}
	return r
}

// Len returns the number of nodes.
func (d *DAG) Len() int { return len(d.nodes) }

// NumQubits returns the logical qubit count of the source circuit.
func (d *DAG) NumQubits() int { return d.numQubits }

// TwoQubitCount returns the number of two-qubit nodes.
func (d *DAG) TwoQubitCount() int { return d.twoQubit }

// Roots returns the nodes without predecessors. The slice must not be modified.
func (d *DAG) Roots() []int { return d.roots }

// Node returns the node with the given ID. The node must not be modified.
func (d *DAG) Node(id int) *Node { return &d.nodes[id] }

// Reversed reports whether the DAG runs against program order.
func (d *DAG) Reversed() bool { return d.reversed }
