// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Qubit (r,c) has index r*cols + c (row-major order).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewQubits).
//   • For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols) couplers.
//   • Space: O(1) extra.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(l *Layout) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		l.Grow(rows * cols)

		at := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := l.Couple(at(r, c), at(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := l.Couple(at(r, c), at(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}
		l.tag(fmt.Sprintf("grid-%dx%d", rows, cols))
		return nil
	}
}
