// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// router.go - Router construction and the instrumented Route entry points.

package sabre

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/coupling"
	"github.com/katalvlaran/qmap/dag"
)

const tracerName = "github.com/katalvlaran/qmap/sabre"

// Variant names, used as the "variant" label and span attribute.
const (
	VariantSABRE   = "sabre"
	VariantMQSABRE = "mqsabre"
)

// Router routes circuits onto one device. It holds no per-call state and is
// safe for concurrent use; a Scorer passed via WithScorer must be too.
type Router struct {
	g       *coupling.Graph
	opts    Options
	scorer  Scorer
	variant string
}

// New returns a hop-distance SABRE router for g.
func New(g *coupling.Graph, opts ...Option) (*Router, error) {
	return newRouter(g, VariantSABRE, opts)
}

// NewMQ returns a calibration-aware router. g must be built with a
// calibrated cost model (coupling.WithCalibration or WithCostModel).
func NewMQ(g *coupling.Graph, opts ...Option) (*Router, error) {
	if g != nil && !g.Calibrated() {
		return nil, ErrNotCalibrated
	}
	return newRouter(g, VariantMQSABRE, opts)
}

func newRouter(g *coupling.Graph, variant string, opts []Option) (*Router, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil coupling graph", ErrInvalidTopology)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Router{g: g, opts: o, variant: variant}
	switch {
	case o.Scorer != nil:
		r.scorer = o.Scorer
	case variant == VariantMQSABRE:
		r.scorer = CalibratedScorer{Graph: g, Lambda: o.Lambda, Penalty: o.Penalty, Normalize: o.Normalize}
	default:
		r.scorer = DistanceScorer{Graph: g, Lambda: o.Lambda, Normalize: o.Normalize}
	}
	return r, nil
}

// Graph returns the device the router targets.
func (r *Router) Graph() *coupling.Graph { return r.g }

// Variant returns VariantSABRE or VariantMQSABRE.
func (r *Router) Variant() string { return r.variant }

// Route builds the dependency DAG of c and routes it.
//
// Errors: ErrUnsupportedOperation, ErrShapeMismatch, ErrInvalidTopology,
// ErrRoutingTimeout, or the context's error.
func (r *Router) Route(ctx context.Context, c *circuit.Circuit) (*Result, error) {
	return r.instrument(ctx, func(ctx context.Context, span trace.Span) (*Result, error) {
		d, err := dag.Build(c)
		if err != nil {
			return nil, err
		}
		res, err := r.route(ctx, d, span)
		if err != nil {
			return nil, err
		}
		res.NumClbits = c.NumClbits
		return res, nil
	})
}

// RouteDAG routes a prebuilt DAG.
func (r *Router) RouteDAG(ctx context.Context, d *dag.DAG) (*Result, error) {
	return r.instrument(ctx, func(ctx context.Context, span trace.Span) (*Result, error) {
		if d == nil {
			return nil, fmt.Errorf("%w: nil dag", ErrUnsupportedOperation)
		}
		return r.route(ctx, d, span)
	})
}

func (r *Router) instrument(ctx context.Context, fn func(context.Context, trace.Span) (*Result, error)) (*Result, error) {
	start := time.Now()
	ctx, span := r.opts.Tracer.Start(ctx, "sabre.Route", trace.WithAttributes(
		attribute.String("variant", r.variant),
		attribute.Int("device.qubits", r.g.Order()),
	))
	defer span.End()

	res, err := fn(ctx, span)
	r.opts.Metrics.observe(r.variant, res, err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrRoutingTimeout) {
			r.opts.Logger.Warn("routing timed out", zap.String("variant", r.variant), zap.Error(err))
		}
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("swaps", res.Swaps),
		attribute.Int("iterations", res.Iterations),
		attribute.Int("release_valves", res.ReleaseValves),
	)
	return res, nil
}

func (r *Router) route(ctx context.Context, d *dag.DAG, span trace.Span) (*Result, error) {
	if d.NumQubits() > r.g.Order() {
		return nil, fmt.Errorf("%w: %d logical qubits on a %d-qubit device", ErrShapeMismatch, d.NumQubits(), r.g.Order())
	}
	span.SetAttributes(
		attribute.Int("gates", d.Len()),
		attribute.Int("two_qubit_gates", d.TwoQubitCount()),
	)

	init, err := r.initialMapping(ctx, d, span)
	if err != nil {
		return nil, err
	}
	p := r.newPass(d, init.Clone(), true)
	if err := p.run(ctx); err != nil {
		return nil, err
	}
	r.opts.Logger.Debug("routed",
		zap.String("variant", r.variant),
		zap.Int("gates", d.Len()),
		zap.Int("swaps", p.swaps),
		zap.Int("iterations", p.iterations),
		zap.Int("release_valves", p.valves))

	return &Result{
		Ops:           p.ops,
		Initial:       init,
		Final:         p.m,
		Swaps:         p.swaps,
		Iterations:    p.iterations,
		ReleaseValves: p.valves,
		Gates:         d.Len(),
	}, nil
}
