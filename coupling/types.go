// SPDX-License-Identifier: MIT
// Package: qmap/coupling
//
// types.go - edge, cost model, options and sentinel errors.

package coupling

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTopology reports a malformed or disconnected device description.
var ErrInvalidTopology = errors.New("coupling: invalid topology")

// ErrInvalidDevice reports an undecodable device description document.
var ErrInvalidDevice = errors.New("coupling: invalid device description")

// Edge is an undirected coupler between physical qubits U and V with
// optional calibration data. Zero calibration means "unknown / ideal".
type Edge struct {
	U, V      int
	ErrorRate float64 // two-qubit gate error ε in [0,1)
	Duration  float64 // two-qubit gate duration, any non-negative unit
}

// normalized returns e with U < V.
func (e Edge) normalized() Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}
	return e
}

// CostModel weighs the three per-edge cost terms.
type CostModel struct {
	Hop      float64
	Error    float64
	Duration float64
}

// HopModel counts couplers only.
var HopModel = CostModel{Hop: 1}

// DefaultCalibratedModel adds the gate infidelity cost to every hop.
var DefaultCalibratedModel = CostModel{Hop: 1, Error: 1}

// calibrated reports whether any calibration term is observed.
func (c CostModel) calibrated() bool {
	return c.Error != 0 || c.Duration != 0
}

// cost returns the model cost of one edge.
func (c CostModel) cost(e Edge) float64 {
	w := c.Hop
	if c.Error != 0 {
		w += c.Error * -math.Log1p(-e.ErrorRate)
	}
	if c.Duration != 0 {
		w += c.Duration * e.Duration
	}
	return w
}

// Option customizes Graph construction.
type Option func(*config)

type config struct {
	model CostModel
}

// WithCostModel selects the per-edge cost model used by Distance and EdgeCost.
// Panics on negative or NaN weights, or when every weight is zero.
func WithCostModel(m CostModel) Option {
	for _, w := range []float64{m.Hop, m.Error, m.Duration} {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			panic(fmt.Sprintf("coupling: WithCostModel(%+v): weights must be finite and ≥ 0", m))
		}
	}
	if m.Hop == 0 && !m.calibrated() {
		panic("coupling: WithCostModel: all weights are zero")
	}
	return func(c *config) {
		c.model = m
	}
}

// WithCalibration is shorthand for WithCostModel(DefaultCalibratedModel).
func WithCalibration() Option {
	return WithCostModel(DefaultCalibratedModel)
}

func topologyErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidTopology, fmt.Sprintf(format, args...))
}
