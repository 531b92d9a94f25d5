// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/katalvlaran/qmap/circuit"
)

// mat2 is a row-major single-qubit unitary.
type mat2 [4]complex128

var (
	matH   = mat2{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)}
	matX   = mat2{0, 1, 1, 0}
	matY   = mat2{0, -1i, 1i, 0}
	matZ   = mat2{1, 0, 0, -1}
	matS   = mat2{1, 0, 0, 1i}
	matSdg = mat2{1, 0, 0, -1i}
	matT   = mat2{1, 0, 0, cmplx.Exp(complex(0, math.Pi/4))}
	matTdg = mat2{1, 0, 0, cmplx.Exp(complex(0, -math.Pi/4))}
)

func phase(theta float64) mat2 { return mat2{1, 0, 0, cmplx.Exp(complex(0, theta))} }

func rx(theta float64) mat2 {
	c, s := complex(math.Cos(theta/2), 0), complex(0, -math.Sin(theta/2))
	return mat2{c, s, s, c}
}

func ry(theta float64) mat2 {
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
	return mat2{c, -s, s, c}
}

func rz(theta float64) mat2 {
	e := cmplx.Exp(complex(0, theta/2))
	return mat2{cmplx.Conj(e), 0, 0, e}
}

// u3 is OpenQASM's U(θ,φ,λ).
func u3(theta, phi, lambda float64) mat2 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return mat2{
		complex(c, 0),
		-cmplx.Exp(complex(0, lambda)) * complex(s, 0),
		cmplx.Exp(complex(0, phi)) * complex(s, 0),
		cmplx.Exp(complex(0, phi+lambda)) * complex(c, 0),
	}
}

func param(g circuit.Gate, i int) float64 {
	if i < len(g.Params) {
		return g.Params[i]
	}
	return 0
}

func single(g circuit.Gate) (mat2, bool) {
	switch strings.ToLower(g.Name) {
	case "h":
		return matH, true
	case "x":
		return matX, true
	case "y":
		return matY, true
	case "z":
		return matZ, true
	case "s":
		return matS, true
	case "sdg":
		return matSdg, true
	case "t":
		return matT, true
	case "tdg":
		return matTdg, true
	case "rx":
		return rx(param(g, 0)), true
	case "ry":
		return ry(param(g, 0)), true
	case "rz":
		return rz(param(g, 0)), true
	case "p", "u1":
		return phase(param(g, 0)), true
	case "u2":
		return u3(math.Pi/2, param(g, 0), param(g, 1)), true
	case "u3", "u":
		return u3(param(g, 0), param(g, 1), param(g, 2)), true
	case "id":
		return mat2{1, 0, 0, 1}, true
	}
	return mat2{}, false
}

// Apply applies g to the given qubits.
//
// Supported: h x y z s sdg t tdg rx ry rz p u1 u2 u3 u id (one qubit),
// cx cz swap (two qubits); measure and barrier leave the state unchanged.
func (s *State) Apply(g circuit.Gate, qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= s.n {
			return fmt.Errorf("%w: qubit %d of %d", ErrOperand, q, s.n)
		}
	}
	name := strings.ToLower(g.Name)
	if name == circuit.NameMeasure || name == "barrier" {
		return nil
	}
	if m, ok := single(g); ok {
		if len(qubits) != 1 {
			return fmt.Errorf("%w: %s on %d qubits", ErrOperand, name, len(qubits))
		}
		s.apply1(m, qubits[0])
		return nil
	}
	switch name {
	case "cx", "cnot", "cz", circuit.NameSwap:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGate, g.Name)
	}
	if len(qubits) != 2 || qubits[0] == qubits[1] {
		return fmt.Errorf("%w: %s on %v", ErrOperand, name, qubits)
	}
	a, b := 1<<qubits[0], 1<<qubits[1]
	for i := range s.amp {
		switch name {
		case "cx", "cnot":
			if i&a != 0 && i&b == 0 {
				s.amp[i], s.amp[i|b] = s.amp[i|b], s.amp[i]
			}
		case "cz":
			if i&a != 0 && i&b != 0 {
				s.amp[i] = -s.amp[i]
			}
		default:
			if i&a != 0 && i&b == 0 {
				j := i&^a | b
				s.amp[i], s.amp[j] = s.amp[j], s.amp[i]
			}
		}
	}
	return nil
}

func (s *State) apply1(m mat2, q int) {
	bit := 1 << q
	for i := range s.amp {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := s.amp[i], s.amp[j]
		s.amp[i] = m[0]*a0 + m[1]*a1
		s.amp[j] = m[2]*a0 + m[3]*a1
	}
}

// Run applies every operation of c in order. Payloads must be circuit.Gate.
func (s *State) Run(c *circuit.Circuit) error {
	for i, op := range c.Ops {
		g, ok := asGate(op.Payload)
		if !ok {
			return fmt.Errorf("%w: op %d payload %T", ErrUnknownGate, i, op.Payload)
		}
		if err := s.Apply(g, op.Qubits...); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	return nil
}

func asGate(p any) (circuit.Gate, bool) {
	switch g := p.(type) {
	case circuit.Gate:
		return g, true
	case *circuit.Gate:
		if g != nil {
			return *g, true
		}
	}
	return circuit.Gate{}, false
}
