// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDevice(bopts, cons...). Resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical devices.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qmap/coupling"
)

// Layout accumulates qubits and couplers while constructors run.
// Qubit indices are absolute, so constructors compose over one index space.
type Layout struct {
	n        int
	couplers []coupling.Edge
	seen     map[edgeKey]bool
	tags     []string
	cfg      builderConfig
}

// Qubits returns the current number of qubits.
func (l *Layout) Qubits() int { return l.n }

// Grow ensures the layout has at least n qubits.
func (l *Layout) Grow(n int) {
	if n > l.n {
		l.n = n
	}
}

// Couple emits the coupler (u,v), growing the layout to cover both ends.
// Re-emitting an existing coupler is a no-op. Calibration is sampled once,
// on first emission, in emission order.
func (l *Layout) Couple(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("negative qubit index (%d,%d): %w", u, v, ErrConstructFailed)
	}
	if u == v {
		return fmt.Errorf("self-coupler on %d: %w", u, ErrConstructFailed)
	}
	k := keyOf(u, v)
	if l.seen[k] {
		return nil
	}
	l.seen[k] = true
	l.Grow(k.v + 1)
	l.couplers = append(l.couplers, coupling.Edge{
		U:         k.u,
		V:         k.v,
		ErrorRate: l.cfg.errorFn(k.u, k.v, l.cfg.rng),
		Duration:  l.cfg.durationFn(k.u, k.v, l.cfg.rng),
	})
	return nil
}

func (l *Layout) tag(s string) { l.tags = append(l.tags, s) }

// Constructor applies a deterministic layout mutation using the resolved
// builderConfig (reachable through the Layout). Constructors MUST validate
// parameters early, return sentinel errors, and emit couplers in a stable,
// documented order.
type Constructor func(l *Layout) error

// BuildDevice resolves the builder configuration from bopts and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildDevice: %w" and returned immediately.
//
// Errors:
//   - ErrTooFewQubits, ErrConstructFailed from constructors;
//   - ErrOptionViolation when WithEdgeError names a coupler never emitted;
//   - ErrConstructFailed when no constructor was given.
func BuildDevice(bopts []BuilderOption, cons ...Constructor) (*coupling.Device, error) {
	cfg := newBuilderConfig(bopts...)
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildDevice: no constructors: %w", ErrConstructFailed)
	}
	l := &Layout{seen: make(map[edgeKey]bool), cfg: cfg}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDevice: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l); err != nil {
			return nil, fmt.Errorf("BuildDevice: %w", err)
		}
	}

	for k, eps := range cfg.errorOverrides {
		if !l.seen[k] {
			return nil, fmt.Errorf("BuildDevice: WithEdgeError(%d,%d): no such coupler: %w", k.u, k.v, ErrOptionViolation)
		}
		for i := range l.couplers {
			if l.couplers[i].U == k.u && l.couplers[i].V == k.v {
				l.couplers[i].ErrorRate = eps
			}
		}
	}

	name := cfg.name
	if name == "" {
		name = strings.Join(l.tags, "+")
	}
	return &coupling.Device{Name: name, NumQubits: l.n, Couplers: l.couplers}, nil
}

// Build is BuildDevice followed by Device.Graph.
func Build(bopts []BuilderOption, gopts []coupling.Option, cons ...Constructor) (*coupling.Graph, error) {
	dev, err := BuildDevice(bopts, cons...)
	if err != nil {
		return nil, err
	}
	return dev.Graph(gopts...)
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Line builds the chain 0-1-…-(n-1) (n ≥ 1).
//func Line(n int) Constructor

// Ring builds the n-cycle (n ≥ 3).
//func Ring(n int) Constructor

// Grid builds an R×C 4-neighborhood lattice, index r*C+c (R,C ≥ 1).
//func Grid(rows, cols int) Constructor

// HeavyHex builds a heavy-hexagon lattice of rows×cols hexagons (≥ 1 each).
//func HeavyHex(rows, cols int) Constructor

// Star builds hub 0 with leaves 1..n-1 (n ≥ 2).
//func Star(n int) Constructor

// Complete builds K_n (n ≥ 1).
//func Complete(n int) Constructor

// Couplers emits explicit couplers.
//func Couplers(pairs ...[2]int) Constructor
