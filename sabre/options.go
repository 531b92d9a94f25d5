// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// options.go - functional options and deterministic defaults.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Routing itself never panics on user input; it returns sentinel errors.
//   • Defaults are deterministic and documented; no globals.
//
// Deterministic defaults:
//   • LookAhead     = 20      extended-set size
//   • Lambda        = 0.5     extended-set weight λ
//   • ExtendedDecay = 1.0     per-layer weight factor inside the extended set
//   • DecayDelta    = 0.001   decay increment per SWAP endpoint
//   • DecayReset    = 5       consecutive SWAPs before decay resets
//   • Rounds        = 1       forward+backward refinement rounds
//   • StallLimit    = 0       auto: 10·N SWAPs without progress
//   • MaxIterations = 0       auto: 2·(G+1)·(StallLimit+D+1)
//   • TieBreak      = TieBreakFreshFirst
//   • Workers       = 1       sequential candidate scoring
//   • Logger        = zap.NewNop()

package sabre

import (
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/mapping"
)

const (
	DefaultLookAhead     = 20
	DefaultLambda        = 0.5
	DefaultExtendedDecay = 1.0
	DefaultDecayDelta    = 0.001
	DefaultDecayReset    = 5
	DefaultRounds        = 1
	DefaultPenalty       = 1.0

	// stallFactor scales the auto stall limit with the device size.
	stallFactor = 10
)

// TieBreak orders candidates whose scores are equal.
type TieBreak int

const (
	// TieBreakFreshFirst prefers the candidate whose endpoints carry the lower
	// decay weight, then the lexicographically smallest physical pair.
	TieBreakFreshFirst TieBreak = iota
	// TieBreakDecayFirst prefers the higher decay weight, then the smallest pair.
	TieBreakDecayFirst
	// TieBreakLexicographic uses the smallest physical pair only.
	TieBreakLexicographic
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakFreshFirst:
		return "fresh-first"
	case TieBreakDecayFirst:
		return "decay-first"
	case TieBreakLexicographic:
		return "lexicographic"
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// Options is the resolved router configuration.
type Options struct {
	LookAhead     int
	Lambda        float64
	ExtendedDecay float64
	DecayDelta    float64
	DecayReset    int
	Rounds        int
	Seed          int64
	RandomStart   bool
	Initial       *mapping.Mapping
	StallLimit    int
	MaxIterations int
	TieBreak      TieBreak
	Workers       int
	Normalize     bool
	Penalty       float64

	Scorer  Scorer
	Logger  *zap.Logger
	Metrics *Metrics
	Tracer  trace.Tracer
}

// Option customizes a Router.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		LookAhead:     DefaultLookAhead,
		Lambda:        DefaultLambda,
		ExtendedDecay: DefaultExtendedDecay,
		DecayDelta:    DefaultDecayDelta,
		DecayReset:    DefaultDecayReset,
		Rounds:        DefaultRounds,
		TieBreak:      TieBreakFreshFirst,
		Workers:       1,
		Penalty:       DefaultPenalty,
		Logger:        zap.NewNop(),
		Tracer:        otel.Tracer(tracerName),
	}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// WithLookAhead bounds the extended set; 0 disables look-ahead. Panics if n < 0.
func WithLookAhead(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sabre: WithLookAhead(%d)", n))
	}
	return func(o *Options) { o.LookAhead = n }
}

// WithLambda sets the extended-set weight λ. Panics unless finite and ≥ 0.
func WithLambda(l float64) Option {
	if !finite(l) || l < 0 {
		panic(fmt.Sprintf("sabre: WithLambda(%g)", l))
	}
	return func(o *Options) { o.Lambda = l }
}

// WithExtendedDecay sets the factor f such that an extended-set gate k layers
// past the front weighs f^(k-1). Panics unless 0 < f ≤ 1.
func WithExtendedDecay(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic(fmt.Sprintf("sabre: WithExtendedDecay(%g): want (0,1]", f))
	}
	return func(o *Options) { o.ExtendedDecay = f }
}

// WithDecay sets the per-SWAP decay increment and the number of consecutive
// SWAPs after which decay resets. Panics if delta < 0 or reset < 1.
func WithDecay(delta float64, reset int) Option {
	if !finite(delta) || delta < 0 || reset < 1 {
		panic(fmt.Sprintf("sabre: WithDecay(%g, %d)", delta, reset))
	}
	return func(o *Options) { o.DecayDelta, o.DecayReset = delta, reset }
}

// WithRounds sets the number of forward+backward refinement rounds; 0 routes
// straight from the start mapping. Panics if n < 0.
func WithRounds(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sabre: WithRounds(%d)", n))
	}
	return func(o *Options) { o.Rounds = n }
}

// WithSeed starts refinement from a random mapping drawn with seed instead of
// the identity.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed, o.RandomStart = seed, true }
}

// WithInitialMapping routes from m as given, skipping refinement.
// The router never mutates m. Panics on nil.
func WithInitialMapping(m *mapping.Mapping) Option {
	if m == nil {
		panic("sabre: WithInitialMapping(nil)")
	}
	return func(o *Options) { o.Initial = m.Clone() }
}

// WithStallLimit sets how many SWAPs may pass without executing a gate before
// the release valve fires; 0 selects 10·N. Panics if n < 0.
func WithStallLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sabre: WithStallLimit(%d)", n))
	}
	return func(o *Options) { o.StallLimit = n }
}

// WithMaxIterations sets the per-pass iteration guard; 0 selects the
// automatic bound. Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sabre: WithMaxIterations(%d)", n))
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithTieBreak selects the tie-break order. Panics on unknown values.
func WithTieBreak(t TieBreak) Option {
	if t < TieBreakFreshFirst || t > TieBreakLexicographic {
		panic(fmt.Sprintf("sabre: WithTieBreak(%d)", int(t)))
	}
	return func(o *Options) { o.TieBreak = t }
}

// WithWorkers scores candidate SWAPs on k goroutines. Output is identical to
// sequential scoring. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("sabre: WithWorkers(%d)", k))
	}
	return func(o *Options) { o.Workers = k }
}

// WithNormalizedCost divides the front and extended sums by their sizes.
func WithNormalizedCost() Option {
	return func(o *Options) { o.Normalize = true }
}

// WithPenalty weighs the SWAP's own link cost in CalibratedScorer.
// Panics unless finite and ≥ 0.
func WithPenalty(w float64) Option {
	if !finite(w) || w < 0 {
		panic(fmt.Sprintf("sabre: WithPenalty(%g)", w))
	}
	return func(o *Options) { o.Penalty = w }
}

// WithScorer injects a scoring strategy, overriding the variant default.
// Panics on nil.
func WithScorer(s Scorer) Option {
	if s == nil {
		panic("sabre: WithScorer(nil)")
	}
	return func(o *Options) { o.Scorer = s }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sabre: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records routing metrics. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("sabre: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = m }
}

// WithTracerProvider takes spans from tp instead of the global provider.
// Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("sabre: WithTracerProvider(nil)")
	}
	return func(o *Options) { o.Tracer = tp.Tracer(tracerName) }
}
