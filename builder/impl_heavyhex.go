// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_heavyhex.go - implementation of HeavyHex(rows, cols).
//
// Canonical model:
//   • Start from a brick-wall honeycomb with rows×cols hexagons: rows+1 vertex
//     rows of width W = 2·cols+2, joined horizontally along each row, and
//     vertically between rows i and i+1 at every column j with j ≡ i (mod 2).
//   • Subdivide every honeycomb edge with one extra "bridge" qubit.
//
// Indices:
//   • Lattice vertex (i,j) is i*W + j, for i∈[0,rows], j∈[0,W).
//   • Bridge qubits follow, numbered in honeycomb edge emission order
//     (each row's horizontal edges left to right, then that band's verticals).
//
// Counts:
//   V = (rows+1)·W,  E = (rows+1)·(W-1) + rows·(cols+1),  qubits = V + E,
//   couplers = 2E. Lattice vertices have degree ≤ 3, bridges degree 2.
//
// Complexity: O(rows*cols) qubits and couplers.

package builder

import "fmt"

const (
	methodHeavyHex = "HeavyHex"
	minHexDim      = 1
)

// HeavyHex returns a Constructor that builds a heavy-hexagon lattice.
func HeavyHex(rows, cols int) Constructor {
	return func(l *Layout) error {
		if err := validateMin(methodHeavyHex, "rows", rows, minHexDim); err != nil {
			return err
		}
		if err := validateMin(methodHeavyHex, "cols", cols, minHexDim); err != nil {
			return err
		}

		w := 2*cols + 2
		at := func(i, j int) int { return i*w + j }
		next := (rows + 1) * w
		l.Grow(next)

		bridge := func(u, v int) error {
			b := next
			next++
			if err := l.Couple(u, b); err != nil {
				return err
			}
			return l.Couple(b, v)
		}

		for i := 0; i <= rows; i++ {
			for j := 0; j+1 < w; j++ {
				if err := bridge(at(i, j), at(i, j+1)); err != nil {
					return fmt.Errorf("%s: %w", methodHeavyHex, err)
				}
			}
			if i == rows {
				break
			}
			for j := i % 2; j < w; j += 2 {
				if err := bridge(at(i, j), at(i+1, j)); err != nil {
					return fmt.Errorf("%s: %w", methodHeavyHex, err)
				}
			}
		}
		l.tag(fmt.Sprintf("heavyhex-%dx%d", rows, cols))
		return nil
	}
}
