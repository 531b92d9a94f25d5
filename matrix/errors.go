// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: " for easy grepping. Callers
// branch with errors.Is; context is attached with %w at the detection site.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN (or ±Inf under the finite-only policy) was rejected.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates a raw buffer does not match r·c.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// matrixErrorf wraps err with an operation tag: "<op>: <err>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
