// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over integer-indexed adjacency,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices 0..Order()-1 in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  per-vertex distance (edges) from start, -1 when unreached
//   - Parent: per-vertex predecessor in the BFS tree, -1 for the root and unreached
//   - Hook: OnVisit sees every vertex with its depth and may abort with an error.
//
// Why
//
//   - coupling.Graph uses one BFS per physical qubit to fill its hop-distance
//     table, measure the diameter through OnVisit and reject disconnected devices.
//   - coupling.Graph.ShortestPath is PathTo on the stored tree; the SABRE release
//     valve walks it to move two qubits together.
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.Neighbors returns them; coupling
//	graphs return sorted neighbor lists, so the visit sequence is reproducible.
//
// Complexity (V = Order(), E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, d int) error { return nil }))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, or hook errors
//	}
//	path, err := res.PathTo(5)
package bfs
