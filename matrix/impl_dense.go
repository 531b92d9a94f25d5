// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer one unchecked reader (Value) for hot routing loops that already own valid indices.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Value: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFill = "Fill"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - allowInf permits +Inf values (distance tables); NaN is always rejected.
type Dense struct {
	r, c     int
	data     []float64
	allowInf bool
}

// Compile-time assertion for Matrix interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix with the finite-only numeric policy.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols),
	}, nil
}

// NewDistance creates an n×n distance-table fixture: 0 on the diagonal and
// +Inf everywhere else, with +Inf accepted by Set. This is the canonical
// starting point for FloydWarshall.
//
// Complexity: Time O(n²), Space O(n²).
func NewDistance(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	inf := math.Inf(1)
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			if i != j {
				data[base+j] = inf
			}
		}
	}

	return &Dense{r: n, c: n, data: data, allowInf: true}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Value returns the value at (row, col) without an error channel.
// Indices MUST be in range; an invalid index panics like a slice access.
// Intended for routing hot paths where indices come from a validated graph.
func (m *Dense) Value(row, col int) float64 {
	return m.data[row*m.c+col]
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrNaNInf for NaN, or for ±Inf when the matrix is finite-only
//     (distance tables accept +Inf but never -Inf).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, -1) || (!m.allowInf && math.IsInf(v, 1)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites the whole buffer from a row-major slice of length r*c.
// Values go through the same numeric policy as Set.
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return denseErrorf(ctxFill, m.r, m.c, ErrDimensionMismatch)
	}
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, -1) || (!m.allowInf && math.IsInf(v, 1)) {
			return denseErrorf(ctxFill, k/m.c, k%m.c, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, allowInf: m.allowInf}
}
