// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// errors.go - sentinel errors for routing.
//
// Taxonomy:
//   • ErrInvalidTopology      (coupling) malformed or disconnected device; also raised
//     when a front layer has no candidate SWAP.
//   • ErrUnsupportedOperation (dag) operation arity outside 1..2; raised before routing.
//   • ErrRoutingTimeout       iteration guard exceeded; retry with a larger guard or seed.
//   • ErrShapeMismatch        circuit or initial mapping does not fit the device.
//   • ErrNotCalibrated        NewMQ on a graph built without a calibrated cost model.
//   • ErrCheckFailed          Result.Check found an illegal or incomplete output.
//
// A failed call never returns a partial Result.

package sabre

import (
	"errors"

	"github.com/katalvlaran/qmap/coupling"
	"github.com/katalvlaran/qmap/dag"
)

var (
	// ErrInvalidTopology aliases coupling.ErrInvalidTopology.
	ErrInvalidTopology = coupling.ErrInvalidTopology

	// ErrUnsupportedOperation aliases dag.ErrUnsupportedOperation.
	ErrUnsupportedOperation = dag.ErrUnsupportedOperation

	// ErrRoutingTimeout is returned when a pass exceeds its iteration guard.
	ErrRoutingTimeout = errors.New("sabre: routing iteration guard exceeded")

	// ErrShapeMismatch is returned when the circuit is wider than the device or
	// an explicit initial mapping has the wrong shape.
	ErrShapeMismatch = errors.New("sabre: shape mismatch")

	// ErrNotCalibrated is returned by NewMQ for a hop-only coupling graph.
	ErrNotCalibrated = errors.New("sabre: coupling graph is not calibrated")

	// ErrCheckFailed is returned by Result.Check.
	ErrCheckFailed = errors.New("sabre: result check failed")
)
