// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Constructors never panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewQubits indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewQubits = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not emit a valid
// layout (nil constructor, self-coupler, negative index, ...).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option that can only be checked against the
// finished layout, e.g. WithEdgeError on a coupler no constructor emitted.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// validateMin ensures got ≥ min, otherwise returns ErrTooFewQubits with context.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewQubits, "%s=%d < min=%d", param, got, min)
	}
	return nil
}
