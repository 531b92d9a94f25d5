// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_line.go - implementation of Line(n) and Ring(n) constructors.
//
// Contract:
//   - Line: n ≥ 1; emits (i-1,i) for i=1..n-1 in increasing order.
//   - Ring: n ≥ 3; emits the Line couplers followed by (n-1,0).
//
// Complexity: O(n) couplers, O(1) extra space.

package builder

import "fmt"

const (
	methodLine   = "Line"
	methodRing   = "Ring"
	minLineNodes = 1
	minRingNodes = 3
)

// Line returns a Constructor that builds a linear chain of n qubits.
func Line(n int) Constructor {
	return func(l *Layout) error {
		if err := validateMin(methodLine, "n", n, minLineNodes); err != nil {
			return err
		}
		l.Grow(n)
		for i := 1; i < n; i++ {
			if err := l.Couple(i-1, i); err != nil {
				return fmt.Errorf("%s: %w", methodLine, err)
			}
		}
		l.tag(fmt.Sprintf("line-%d", n))
		return nil
	}
}

// Ring returns a Constructor that builds an n-cycle.
func Ring(n int) Constructor {
	return func(l *Layout) error {
		if err := validateMin(methodRing, "n", n, minRingNodes); err != nil {
			return err
		}
		l.Grow(n)
		for i := 0; i < n; i++ {
			if err := l.Couple(i, (i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodRing, err)
			}
		}
		l.tag(fmt.Sprintf("ring-%d", n))
		return nil
	}
}
