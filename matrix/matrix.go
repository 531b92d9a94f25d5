// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// ValidateSquare ensures m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}
