// SPDX-License-Identifier: MIT
// Package: qmap/circuit
//
// circuit.go - operations, circuits and gate payloads.

package circuit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrInvalidOperand reports an operand outside [0, NumQubits) or repeated.
	ErrInvalidOperand = errors.New("circuit: invalid operand")

	// ErrUnsupportedStatement reports OpenQASM the reader does not accept
	// (classical control, custom gate definitions, opaque declarations).
	ErrUnsupportedStatement = errors.New("circuit: unsupported statement")

	// ErrSyntax reports a malformed OpenQASM statement.
	ErrSyntax = errors.New("circuit: syntax error")

	// ErrUnknownRegister reports a reference to an undeclared register.
	ErrUnknownRegister = errors.New("circuit: unknown register")

	// ErrUnprintable reports a payload with no OpenQASM form.
	ErrUnprintable = errors.New("circuit: payload has no QASM form")
)

// Operation is one step of a circuit: ordered operands plus an opaque payload.
type Operation struct {
	Qubits  []int
	Payload any
}

// Circuit is an ordered operation sequence over NumQubits qubits.
type Circuit struct {
	NumQubits int
	NumClbits int
	Ops       []Operation
}

// New returns an empty circuit on n qubits.
func New(n int) *Circuit {
	return &Circuit{NumQubits: n}
}

// Append adds an operation, copying the operand slice.
func (c *Circuit) Append(payload any, qubits ...int) *Circuit {
	c.Ops = append(c.Ops, Operation{Qubits: append([]int(nil), qubits...), Payload: payload})
	return c
}

// Gate appends a named gate with optional parameters.
func (c *Circuit) Gate(name string, params []float64, qubits ...int) *Circuit {
	return c.Append(Gate{Name: name, Params: params}, qubits...)
}

// Validate checks every operand against NumQubits and rejects repeated
// operands within one operation.
func (c *Circuit) Validate() error {
	for i, op := range c.Ops {
		for k, q := range op.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("%w: op %d operand %d not in [0,%d)", ErrInvalidOperand, i, q, c.NumQubits)
			}
			for _, r := range op.Qubits[:k] {
				if r == q {
					return fmt.Errorf("%w: op %d repeats qubit %d", ErrInvalidOperand, i, q)
				}
			}
		}
	}
	return nil
}

// TwoQubitCount returns the number of operations with exactly two operands.
func (c *Circuit) TwoQubitCount() int {
	n := 0
	for _, op := range c.Ops {
		if len(op.Qubits) == 2 {
			n++
		}
	}
	return n
}

// Gate is the OpenQASM-level payload: lower-case name, numeric parameters,
// and for measure the classical target bit.
type Gate struct {
	Name   string
	Params []float64
	Clbit  int
}

// Gate names with special treatment.
const (
	NameSwap    = "swap"
	NameMeasure = "measure"
	NameReset   = "reset"
)

// SwapGate is the payload of routing-inserted SWAPs.
var SwapGate = Gate{Name: NameSwap}

// Measure returns a measurement payload writing clbit.
func Measure(clbit int) Gate {
	return Gate{Name: NameMeasure, Clbit: clbit}
}

// String renders the gate head as in OpenQASM, e.g. "rz(pi/2)".
func (g Gate) String() string {
	if len(g.Params) == 0 {
		return g.Name
	}
	ps := make([]string, len(g.Params))
	for i, p := range g.Params {
		ps[i] = formatParam(p)
	}
	return g.Name + "(" + strings.Join(ps, ",") + ")"
}
