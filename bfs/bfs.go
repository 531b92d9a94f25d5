// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an integer-indexed Graph.
package bfs

import (
	"fmt"
	"reflect"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// or any OnVisit hook error.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// isNil catches typed-nil pointers hidden inside the Graph interface.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until it is empty or the hook fails.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		v := w.queue[head]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		for _, nbr := range w.graph.Neighbors(v) {
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, d+1, v)
			}
		}
	}

	return nil
}
