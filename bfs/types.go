// SPDX-License-Identifier: MIT

// Package bfs provides options and error definitions
// for breadth-first search over an integer-indexed Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is outside [0, Order()).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read-only adjacency surface BFS needs.
// Vertices are the integers 0..Order()-1.
type Graph interface {
	Order() int
	Neighbors(v int) []int
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error
}

// DefaultOptions returns an Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the vertex path from the start vertex to dest
// (both endpoints included). Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
