// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_star.go - Star(n), Complete(n) and Couplers(pairs...) constructors.
//
// Contract:
//   - Star: n ≥ 2; hub 0, emits (0,i) for i=1..n-1.
//   - Complete: n ≥ 1; emits (i,j) for i<j in lexicographic order.
//   - Couplers: emits the given pairs in argument order.

package builder

import "fmt"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	methodCouplers   = "Couplers"
	minStarNodes     = 2
	minCompleteNodes = 1
	starHub          = 0
)

// Star returns a Constructor that builds a hub-and-spoke device.
func Star(n int) Constructor {
	return func(l *Layout) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		l.Grow(n)
		for i := 1; i < n; i++ {
			if err := l.Couple(starHub, i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}
		l.tag(fmt.Sprintf("star-%d", n))
		return nil
	}
}

// Complete returns a Constructor that couples every pair of n qubits.
func Complete(n int) Constructor {
	return func(l *Layout) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		l.Grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := l.Couple(i, j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
		l.tag(fmt.Sprintf("complete-%d", n))
		return nil
	}
}

// Couplers returns a Constructor emitting explicit couplers, e.g. chords
// added on top of a Ring.
func Couplers(pairs ...[2]int) Constructor {
	return func(l *Layout) error {
		for _, p := range pairs {
			if err := l.Couple(p[0], p[1]); err != nil {
				return fmt.Errorf("%s: %w", methodCouplers, err)
			}
		}
		return nil
	}
}
