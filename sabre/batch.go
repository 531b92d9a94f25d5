// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// batch.go - concurrent routing of independent circuits.

package sabre

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qmap/circuit"
)

// RouteBatch routes every circuit on at most workers goroutines. Results are
// index-aligned with circuits. The first failure cancels the remaining work
// and is returned wrapped with the circuit's index; no results are returned
// in that case. workers < 1 means one goroutine per circuit.
func (r *Router) RouteBatch(ctx context.Context, circuits []*circuit.Circuit, workers int) ([]*Result, error) {
	out := make([]*Result, len(circuits))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, c := range circuits {
		i, c := i, c
		g.Go(func() error {
			res, err := r.Route(ctx, c)
			if err != nil {
				return fmt.Errorf("circuit %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
