// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// refine.go - initial-mapping refinement by forward/backward passes.
//
// Each round routes the DAG forward from the current mapping, then routes the
// reversed DAG from the mapping the forward pass ended in. Output is dropped;
// only the final mapping is kept. Because the reversed DAG ends where the
// circuit begins, the mapping after a backward pass is placed to suit the
// circuit's first gates.

package sabre

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/dag"
	"github.com/katalvlaran/qmap/mapping"
)

// InitialMapping returns the mapping Route would start d from: the explicit
// WithInitialMapping value, or the refined identity or seeded random start.
func (r *Router) InitialMapping(ctx context.Context, d *dag.DAG) (*mapping.Mapping, error) {
	return r.initialMapping(ctx, d, trace.SpanFromContext(ctx))
}

func (r *Router) initialMapping(ctx context.Context, d *dag.DAG, span trace.Span) (*mapping.Mapping, error) {
	m, n := d.NumQubits(), r.g.Order()
	if init := r.opts.Initial; init != nil {
		if init.NumLogical() != m || init.NumPhysical() != n {
			return nil, fmt.Errorf("%w: initial mapping %d→%d, want %d→%d",
				ErrShapeMismatch, init.NumLogical(), init.NumPhysical(), m, n)
		}
		return init.Clone(), nil
	}

	var (
		start *mapping.Mapping
		err   error
	)
	if r.opts.RandomStart {
		start, err = mapping.Random(m, n, rand.New(rand.NewSource(r.opts.Seed)))
	} else {
		start, err = mapping.Identity(m, n)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return r.refine(ctx, d, start, span)
}

func (r *Router) refine(ctx context.Context, d *dag.DAG, m *mapping.Mapping, span trace.Span) (*mapping.Mapping, error) {
	if r.opts.Rounds == 0 || d.TwoQubitCount() == 0 {
		return m, nil
	}
	walks := [2]*dag.DAG{d, d.Reverse()}
	for round := 0; round < r.opts.Rounds; round++ {
		var counts [2]int
		for k, walk := range walks {
			p := r.newPass(walk, m, false)
			if err := p.run(ctx); err != nil {
				return nil, fmt.Errorf("refine round %d: %w", round, err)
			}
			m, counts[k] = p.m, p.swaps
		}
		r.opts.Logger.Debug("refine round",
			zap.String("variant", r.variant),
			zap.Int("round", round),
			zap.Int("forward_swaps", counts[0]),
			zap.Int("backward_swaps", counts[1]))
		span.AddEvent("refine round", trace.WithAttributes(
			attribute.Int("round", round),
			attribute.Int("forward_swaps", counts[0]),
			attribute.Int("backward_swaps", counts[1]),
		))
	}
	return m, nil
}
