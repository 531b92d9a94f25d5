// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes device construction by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for calibration sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithErrorFn overrides the per-coupler error-rate generator. Panics on nil.
func WithErrorFn(fn CalibrationFn) BuilderOption {
	if fn == nil {
		panic("builder: WithErrorFn(nil)")
	}
	return func(c *builderConfig) {
		c.errorFn = fn
	}
}

// WithDurationFn overrides the per-coupler duration generator. Panics on nil.
func WithDurationFn(fn CalibrationFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDurationFn(nil)")
	}
	return func(c *builderConfig) {
		c.durationFn = fn
	}
}

// WithName sets the device name recorded in the description.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
	}
}

// WithEdgeError pins the error rate of coupler (u,v) after all constructors
// ran. Panics unless 0 ≤ eps < 1. BuildDevice returns ErrOptionViolation if
// the finished layout has no such coupler.
func WithEdgeError(u, v int, eps float64) BuilderOption {
	if !(eps >= 0 && eps < 1) {
		panic(fmt.Sprintf("builder: WithEdgeError(%d,%d,%g): eps must be in [0,1)", u, v, eps))
	}
	return func(c *builderConfig) {
		if c.errorOverrides == nil {
			c.errorOverrides = make(map[edgeKey]float64)
		}
		c.errorOverrides[keyOf(u, v)] = eps
	}
}

// WithUniformError samples error rates ∼ U[lo,hi) via UniformErrorFn.
func WithUniformError(lo, hi float64) BuilderOption {
	return WithErrorFn(UniformErrorFn(lo, hi))
}

// WithConstantError sets every coupler's error rate via ConstantErrorFn.
func WithConstantError(eps float64) BuilderOption {
	return WithErrorFn(ConstantErrorFn(eps))
}

// WithConstantDuration sets every coupler's duration via ConstantDurationFn.
func WithConstantDuration(d float64) BuilderOption {
	return WithDurationFn(ConstantDurationFn(d))
}
