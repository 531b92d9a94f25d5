// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • errorFn     = ideal (ε = 0)
//   • durationFn  = ideal (d = 0)
//   • name        = ""                  (derived from constructor tags)
//   • overrides   = none

package builder

import (
	"math/rand"
)

type edgeKey struct{ u, v int }

func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for calibration sampling; nil means “no randomness”.
	rng *rand.Rand
	// Calibration generators evaluated once per emitted coupler.
	errorFn    CalibrationFn
	durationFn CalibrationFn
	// Device name; empty means "join constructor tags".
	name string
	// Per-coupler error overrides applied after the finished layout.
	errorOverrides map[edgeKey]float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		errorFn:    IdealFn,
		durationFn: IdealFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
