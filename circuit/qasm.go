// SPDX-License-Identifier: MIT
// Package: qmap/circuit
//
// qasm.go - OpenQASM 2.0 subset reader and writer.

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	regDeclRegex = regexp.MustCompile(`^(qreg|creg)\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]$`)
	measureRegex = regexp.MustCompile(`^measure\s+(.+?)\s*->\s*(.+)$`)
	gateRegex    = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?:\(([^)]*)\))?\s*(.+)$`)
	argRegex     = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?:\[\s*(\d+)\s*\])?$`)
)

type register struct {
	offset, size int
}

// reader holds register tables while statements are parsed.
type reader struct {
	c     *Circuit
	qregs map[string]register
	cregs map[string]register
}

// ParseQASM reads an OpenQASM 2.0 program into a Circuit whose qubits are the
// declared quantum registers flattened in declaration order.
func ParseQASM(src string) (*Circuit, error) {
	r := &reader{
		c:     &Circuit{},
		qregs: make(map[string]register),
		cregs: make(map[string]register),
	}

	var sb strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	for n, stmt := range strings.Split(sb.String(), ";") {
		stmt = strings.Join(strings.Fields(stmt), " ")
		if stmt == "" {
			continue
		}
		if err := r.statement(stmt); err != nil {
			return nil, fmt.Errorf("statement %d %q: %w", n+1, stmt, err)
		}
	}
	return r.c, nil
}

func (r *reader) statement(s string) error {
	head := s
	if i := strings.IndexAny(s, " (["); i >= 0 {
		head = s[:i]
	}

	switch head {
	case "OPENQASM", "include", "barrier":
		return nil
	case "if":
		return fmt.Errorf("%w: classical control", ErrUnsupportedStatement)
	case "gate", "opaque":
		return fmt.Errorf("%w: %s definition", ErrUnsupportedStatement, head)
	case "qreg", "creg":
		return r.declare(s)
	case NameMeasure:
		return r.measure(s)
	}
	return r.gate(s)
}

func (r *reader) declare(s string) error {
	m := regDeclRegex.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("%w: register declaration", ErrSyntax)
	}
	size, err := strconv.Atoi(m[3])
	if err != nil {
		return fmt.Errorf("%w: register size %s", ErrSyntax, m[3])
	}
	if m[1] == "qreg" {
		if _, dup := r.qregs[m[2]]; dup {
			return fmt.Errorf("%w: qreg %s redeclared", ErrSyntax, m[2])
		}
		if size > math.MaxInt-r.c.NumQubits {
			return fmt.Errorf("%w: qreg %s overflows the qubit count", ErrSyntax, m[2])
		}
		r.qregs[m[2]] = register{offset: r.c.NumQubits, size: size}
		r.c.NumQubits += size
		return nil
	}
	if _, dup := r.cregs[m[2]]; dup {
		return fmt.Errorf("%w: creg %s redeclared", ErrSyntax, m[2])
	}
	if size > math.MaxInt-r.c.NumClbits {
		return fmt.Errorf("%w: creg %s overflows the clbit count", ErrSyntax, m[2])
	}
	r.cregs[m[2]] = register{offset: r.c.NumClbits, size: size}
	r.c.NumClbits += size
	return nil
}

// resolve expands one argument to flat indices: a[i] → [offset+i],
// a → the whole register.
func resolve(regs map[string]register, arg string) ([]int, error) {
	m := argRegex.FindStringSubmatch(strings.TrimSpace(arg))
	if m == nil {
		return nil, fmt.Errorf("%w: argument %q", ErrSyntax, arg)
	}
	reg, ok := regs[m[1]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegister, m[1])
	}
	if m[2] == "" {
		out := make([]int, reg.size)
		for i := range out {
			out[i] = reg.offset + i
		}
		return out, nil
	}
	i, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: index %s", ErrSyntax, m[2])
	}
	if i >= reg.size {
		return nil, fmt.Errorf("%w: %s[%d] beyond size %d", ErrInvalidOperand, m[1], i, reg.size)
	}
	return []int{reg.offset + i}, nil
}

// broadcast applies the OpenQASM register broadcast rule: every whole-register
// argument must have the same size k, and the statement expands to k operations.
func broadcast(args [][]int) ([][]int, error) {
	k := 1
	for _, a := range args {
		if len(a) == 1 {
			continue
		}
		if k != 1 && len(a) != k {
			return nil, fmt.Errorf("%w: register sizes differ in broadcast", ErrSyntax)
		}
		k = len(a)
	}
	out := make([][]int, k)
	for i := 0; i < k; i++ {
		ops := make([]int, len(args))
		for j, a := range args {
			if len(a) == 1 {
				ops[j] = a[0]
			} else {
				ops[j] = a[i]
			}
		}
		out[i] = ops
	}
	return out, nil
}

func (r *reader) measure(s string) error {
	m := measureRegex.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("%w: measure", ErrSyntax)
	}
	qs, err := resolve(r.qregs, m[1])
	if err != nil {
		return err
	}
	cs, err := resolve(r.cregs, m[2])
	if err != nil {
		return err
	}
	if len(qs) != len(cs) {
		return fmt.Errorf("%w: measure size mismatch", ErrSyntax)
	}
	for i := range qs {
		r.c.Append(Measure(cs[i]), qs[i])
	}
	return nil
}

func (r *reader) gate(s string) error {
	m := gateRegex.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("%w: gate application", ErrSyntax)
	}
	params, err := parseParams(m[2])
	if err != nil {
		return err
	}
	var args [][]int
	for _, a := range strings.Split(m[3], ",") {
		idx, err := resolve(r.qregs, a)
		if err != nil {
			return err
		}
		args = append(args, idx)
	}
	expanded, err := broadcast(args)
	if err != nil {
		return err
	}
	for _, qs := range expanded {
		r.c.Append(Gate{Name: m[1], Params: params}, qs...)
	}
	return nil
}

// WriteQASM prints c as OpenQASM 2.0 over a single register q (and c when
// the circuit measures). Payloads must be Gate or *Gate.
func WriteQASM(w io.Writer, c *Circuit) error {
	clbits := c.NumClbits
	for _, op := range c.Ops {
		if g, ok := asGate(op.Payload); ok && g.Name == NameMeasure && g.Clbit >= clbits {
			clbits = g.Clbit + 1
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\nqreg q[%d];\n", c.NumQubits)
	if clbits > 0 {
		fmt.Fprintf(bw, "creg c[%d];\n", clbits)
	}
	for i, op := range c.Ops {
		g, ok := asGate(op.Payload)
		if !ok {
			return fmt.Errorf("op %d (%T): %w", i, op.Payload, ErrUnprintable)
		}
		if g.Name == NameMeasure {
			if len(op.Qubits) != 1 {
				return fmt.Errorf("op %d: measure on %d qubits: %w", i, len(op.Qubits), ErrUnprintable)
			}
			fmt.Fprintf(bw, "measure q[%d] -> c[%d];\n", op.Qubits[0], g.Clbit)
			continue
		}
		operands := make([]string, len(op.Qubits))
		for k, q := range op.Qubits {
			operands[k] = "q[" + strconv.Itoa(q) + "]"
		}
		fmt.Fprintf(bw, "%s %s;\n", g, strings.Join(operands, ","))
	}
	return bw.Flush()
}

// FormatQASM is WriteQASM into a string.
func FormatQASM(c *Circuit) (string, error) {
	var sb strings.Builder
	if err := WriteQASM(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func asGate(p any) (Gate, bool) {
	switch g := p.(type) {
	case Gate:
		return g, true
	case *Gate:
		if g != nil {
			return *g, true
		}
	}
	return Gate{}, false
}
