// SPDX-License-Identifier: MIT

// Package mapping holds the live assignment of logical qubits to physical
// qubits during routing.
//
// A Mapping over M logical and N ≥ M physical qubits keeps both directions:
// l2p (logical → physical) and p2l (physical → logical, -1 for an unoccupied
// site). SwapPhysical is the only mutator after construction; it exchanges the
// contents of two sites in O(1), is its own inverse, and preserves injectivity
// of l2p, so the bijection between logical qubits and occupied sites holds
// after every step.
package mapping

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	// ErrNotBijective reports a logical→physical table with a repeated site.
	ErrNotBijective = errors.New("mapping: not bijective")

	// ErrOutOfRange reports a size or site outside the physical register.
	ErrOutOfRange = errors.New("mapping: out of range")
)

// Empty marks an unoccupied physical site.
const Empty = -1

// Mapping is a logical↔physical assignment. The zero value is not usable.
type Mapping struct {
	l2p []int
	p2l []int
}

func sized(m, n int) (*Mapping, error) {
	if m < 0 || n < 1 || m > n {
		return nil, fmt.Errorf("%w: %d logical on %d physical", ErrOutOfRange, m, n)
	}
	mp := &Mapping{l2p: make([]int, m), p2l: make([]int, n)}
	for p := range mp.p2l {
		mp.p2l[p] = Empty
	}
	return mp, nil
}

// Identity places logical qubit i on physical qubit i.
func Identity(m, n int) (*Mapping, error) {
	mp, err := sized(m, n)
	if err != nil {
		return nil, err
	}
	for l := 0; l < m; l++ {
		mp.l2p[l], mp.p2l[l] = l, l
	}
	return mp, nil
}

// Random places m logical qubits on a uniformly random m-subset of the n
// sites, in random order. Deterministic for a given rng state.
func Random(m, n int, rng *rand.Rand) (*Mapping, error) {
	mp, err := sized(m, n)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("mapping: Random: nil rng")
	}
	perm := rng.Perm(n)
	for l := 0; l < m; l++ {
		mp.l2p[l], mp.p2l[perm[l]] = perm[l], l
	}
	return mp, nil
}

// FromSlice builds a mapping from a logical→physical table over n sites.
func FromSlice(l2p []int, n int) (*Mapping, error) {
	mp, err := sized(len(l2p), n)
	if err != nil {
		return nil, err
	}
	for l, p := range l2p {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: logical %d on site %d of %d", ErrOutOfRange, l, p, n)
		}
		if mp.p2l[p] != Empty {
			return nil, fmt.Errorf("%w: logical %d and %d share site %d", ErrNotBijective, mp.p2l[p], l, p)
		}
		mp.l2p[l], mp.p2l[p] = p, l
	}
	return mp, nil
}

// NumLogical returns M.
func (m *Mapping) NumLogical() int { return len(m.l2p) }

// NumPhysical returns N.
func (m *Mapping) NumPhysical() int { return len(m.p2l) }

// Physical returns the site of logical qubit l.
func (m *Mapping) Physical(l int) int { return m.l2p[l] }

// Logical returns the logical qubit on site p, or Empty.
func (m *Mapping) Logical(p int) int { return m.p2l[p] }

// SwapPhysical exchanges the contents of sites p and q. Either site may be
// empty, which moves a logical qubit into a free site.
func (m *Mapping) SwapPhysical(p, q int) {
	a, b := m.p2l[p], m.p2l[q]
	m.p2l[p], m.p2l[q] = b, a
	if a != Empty {
		m.l2p[a] = q
	}
	if b != Empty {
		m.l2p[b] = p
	}
}

// Swap exchanges the sites of logical qubits l1 and l2.
func (m *Mapping) Swap(l1, l2 int) {
	m.SwapPhysical(m.l2p[l1], m.l2p[l2])
}

// Clone returns an independent copy.
func (m *Mapping) Clone() *Mapping {
	return &Mapping{
		l2p: append([]int(nil), m.l2p...),
		p2l: append([]int(nil), m.p2l...),
	}
}

// CopyFrom overwrites m with o. Both must have the same shape.
func (m *Mapping) CopyFrom(o *Mapping) {
	copy(m.l2p, o.l2p)
	copy(m.p2l, o.p2l)
}

// Slice returns a copy of the logical→physical table.
func (m *Mapping) Slice() []int {
	return append([]int(nil), m.l2p...)
}

// Equal reports whether both mappings assign every logical qubit identically.
func (m *Mapping) Equal(o *Mapping) bool {
	if len(m.l2p) != len(o.l2p) || len(m.p2l) != len(o.p2l) {
		return false
	}
	for l, p := range m.l2p {
		if o.l2p[l] != p {
			return false
		}
	}
	return true
}

// Valid checks that l2p and p2l are mutually inverse.
func (m *Mapping) Valid() error {
	occupied := 0
	for p, l := range m.p2l {
		if l == Empty {
			continue
		}
		occupied++
		if l < 0 || l >= len(m.l2p) || m.l2p[l] != p {
			return fmt.Errorf("%w: site %d holds %d", ErrNotBijective, p, l)
		}
	}
	if occupied != len(m.l2p) {
		return fmt.Errorf("%w: %d logical qubits on %d sites", ErrNotBijective, len(m.l2p), occupied)
	}
	return nil
}

// String renders "l→p" pairs in logical order, e.g. "[0→2 1→0 2→1]".
func (m *Mapping) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for l, p := range m.l2p {
		if l > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d→%d", l, p)
	}
	sb.WriteByte(']')
	return sb.String()
}
