// SPDX-License-Identifier: MIT

// Package sim is a small state-vector simulator used to check that a routed
// circuit computes the same unitary as its source.
//
// Qubit q is bit q of the amplitude index. Measurement and barriers act as
// identity; reset and unknown gates are rejected.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/qmap/mapping"
)

// MaxQubits bounds the register; 2^MaxQubits amplitudes are allocated.
const MaxQubits = 20

var (
	// ErrUnknownGate reports a payload the simulator cannot apply.
	ErrUnknownGate = errors.New("sim: unknown gate")

	// ErrTooManyQubits reports a register above MaxQubits.
	ErrTooManyQubits = errors.New("sim: too many qubits")

	// ErrOperand reports a wrong operand count or an out-of-range qubit.
	ErrOperand = errors.New("sim: bad operand")

	// ErrNotEquivalent reports diverging final states.
	ErrNotEquivalent = errors.New("sim: routed circuit not equivalent")
)

// State is a pure n-qubit state.
type State struct {
	amp []complex128
	n   int
}

func alloc(n int) (*State, error) {
	if n < 0 || n > MaxQubits {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyQubits, n, MaxQubits)
	}
	return &State{amp: make([]complex128, 1<<n), n: n}, nil
}

// New returns |0…0⟩ on n qubits.
func New(n int) (*State, error) {
	s, err := alloc(n)
	if err != nil {
		return nil, err
	}
	s.amp[0] = 1
	return s, nil
}

// Random returns a normalized state with Gaussian amplitudes.
func Random(n int, rng *rand.Rand) (*State, error) {
	s, err := alloc(n)
	if err != nil {
		return nil, err
	}
	var norm float64
	for i := range s.amp {
		s.amp[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		norm += real(s.amp[i] * cmplx.Conj(s.amp[i]))
	}
	k := complex(1/math.Sqrt(norm), 0)
	for i := range s.amp {
		s.amp[i] *= k
	}
	return s, nil
}

// NumQubits returns n.
func (s *State) NumQubits() int { return s.n }

// Amplitude returns the amplitude of basis state i.
func (s *State) Amplitude(i int) complex128 { return s.amp[i] }

// Clone returns an independent copy.
func (s *State) Clone() *State {
	return &State{amp: append([]complex128(nil), s.amp...), n: s.n}
}

// Embed places a logical state onto m.NumPhysical() sites: logical qubit l
// becomes physical qubit m.Physical(l), free sites are |0⟩.
func (s *State) Embed(m *mapping.Mapping) (*State, error) {
	if m.NumLogical() != s.n {
		return nil, fmt.Errorf("%w: %d-qubit state, mapping of %d", ErrOperand, s.n, m.NumLogical())
	}
	out, err := alloc(m.NumPhysical())
	if err != nil {
		return nil, err
	}
	for i, a := range s.amp {
		j := 0
		for l := 0; l < s.n; l++ {
			if i&(1<<l) != 0 {
				j |= 1 << m.Physical(l)
			}
		}
		out.amp[j] = a
	}
	return out, nil
}

// Distance returns the largest amplitude difference between s and o, or +Inf
// for different register sizes.
func (s *State) Distance(o *State) float64 {
	if s.n != o.n {
		return math.Inf(1)
	}
	var d float64
	for i := range s.amp {
		d = math.Max(d, cmplx.Abs(s.amp[i]-o.amp[i]))
	}
	return d
}
