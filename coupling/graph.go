// SPDX-License-Identifier: MIT
// Package: qmap/coupling
//
// graph.go - validated, precomputed device connectivity.
//
// Contract:
//   - New validates the edge list and computes every table eagerly.
//   - No method mutates the Graph; returned slices are shared and read-only.
//   - Lookups (Adjacent, HopDistance, Distance, EdgeCost) are O(1).

package coupling

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qmap/bfs"
	"github.com/katalvlaran/qmap/matrix"
)

// Graph is an immutable coupling graph over physical qubits 0..Order()-1.
type Graph struct {
	n        int
	adj      [][]int
	edges    []Edge
	edgeAt   []int         // n*n → index into edges, -1 when not coupled
	hop      []int         // n*n hop distances
	trees    []*bfs.Result // BFS tree per source qubit
	dist     *matrix.Dense
	cost     []float64 // per edge, aligned with edges
	model    CostModel
	diameter int
}

// New validates edges over n physical qubits and precomputes distances.
//
// Complexity: O(N·(N+E)) for BFS tables, plus O(N³) Floyd–Warshall when the
// cost model is calibrated. Memory O(N²).
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	cfg := config{model: HopModel}
	for _, opt := range opts {
		opt(&cfg)
	}
	if n < 1 {
		return nil, topologyErrorf("n=%d < 1", n)
	}

	g := &Graph{
		n:      n,
		adj:    make([][]int, n),
		edges:  make([]Edge, 0, len(edges)),
		edgeAt: make([]int, n*n),
		model:  cfg.model,
	}
	for i := range g.edgeAt {
		g.edgeAt[i] = -1
	}

	for _, raw := range edges {
		e := raw.normalized()
		switch {
		case e.U < 0 || e.V >= n:
			return nil, topologyErrorf("edge (%d,%d) outside [0,%d)", raw.U, raw.V, n)
		case e.U == e.V:
			return nil, topologyErrorf("self-loop on %d", e.U)
		case g.edgeAt[e.U*n+e.V] >= 0:
			return nil, topologyErrorf("duplicate edge (%d,%d)", e.U, e.V)
		}
		if err := validateCalibration(e); err != nil {
			return nil, err
		}
		g.edgeAt[e.U*n+e.V] = 0 // placeholder until sorted
		g.edges = append(g.edges, e)
	}

	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}
		return g.edges[i].V < g.edges[j].V
	})
	g.cost = make([]float64, len(g.edges))
	for i, e := range g.edges {
		g.edgeAt[e.U*n+e.V] = i
		g.edgeAt[e.V*n+e.U] = i
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
		g.cost[i] = g.model.cost(e)
	}
	for _, nb := range g.adj {
		sort.Ints(nb)
	}

	if err := g.computeHops(); err != nil {
		return nil, err
	}
	if err := g.computeDistances(); err != nil {
		return nil, err
	}

	return g, nil
}

func validateCalibration(e Edge) error {
	if math.IsNaN(e.ErrorRate) || e.ErrorRate < 0 || e.ErrorRate >= 1 {
		return topologyErrorf("edge (%d,%d) error rate %g not in [0,1)", e.U, e.V, e.ErrorRate)
	}
	if math.IsNaN(e.Duration) || math.IsInf(e.Duration, 0) || e.Duration < 0 {
		return topologyErrorf("edge (%d,%d) duration %g must be finite and ≥ 0", e.U, e.V, e.Duration)
	}
	return nil
}

// computeHops runs one BFS per source and rejects disconnected devices.
func (g *Graph) computeHops() error {
	n := g.n
	g.hop = make([]int, n*n)
	g.trees = make([]*bfs.Result, n)
	eccentricity := func(_, d int) error {
		if d > g.diameter {
			g.diameter = d
		}
		return nil
	}
	for s := 0; s < n; s++ {
		res, err := bfs.BFS(g, s, bfs.WithOnVisit(eccentricity))
		if err != nil {
			return fmt.Errorf("coupling: hop table from %d: %w", s, err)
		}
		if len(res.Order) != n {
			return topologyErrorf("disconnected: %d of %d qubits reachable from %d", len(res.Order), n, s)
		}
		copy(g.hop[s*n:(s+1)*n], res.Depth)
		g.trees[s] = res
	}
	return nil
}

// computeDistances fills the weighted table. Pure hop models reuse hop counts.
func (g *Graph) computeDistances() error {
	d, err := matrix.NewDistance(g.n)
	if err != nil {
		return fmt.Errorf("coupling: distance table: %w", err)
	}
	if !g.model.calibrated() {
		vals := make([]float64, len(g.hop))
		for i, h := range g.hop {
			vals[i] = g.model.Hop * float64(h)
		}
		if err = d.Fill(vals); err != nil {
			return fmt.Errorf("coupling: distance table: %w", err)
		}
		g.dist = d
		return nil
	}
	for i, e := range g.edges {
		if err = d.Set(e.U, e.V, g.cost[i]); err != nil {
			return fmt.Errorf("coupling: edge cost (%d,%d): %w", e.U, e.V, err)
		}
		if err = d.Set(e.V, e.U, g.cost[i]); err != nil {
			return fmt.Errorf("coupling: edge cost (%d,%d): %w", e.V, e.U, err)
		}
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return fmt.Errorf("coupling: weighted distances: %w", err)
	}
	g.dist = d
	return nil
}

// Order returns the number of physical qubits.
func (g *Graph) Order() int { return g.n }

// Neighbors returns the sorted neighbors of p. The slice must not be modified.
func (g *Graph) Neighbors(p int) []int { return g.adj[p] }

// Adjacent reports whether p and q share a coupler.
func (g *Graph) Adjacent(p, q int) bool {
	if p < 0 || q < 0 || p >= g.n || q >= g.n {
		return false
	}
	return g.edgeAt[p*g.n+q] >= 0
}

// Edges returns the canonical edge list (U < V, sorted). The slice must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }

// Edge returns the coupler between p and q, if any.
func (g *Graph) Edge(p, q int) (Edge, bool) {
	if !g.Adjacent(p, q) {
		return Edge{}, false
	}
	return g.edges[g.edgeAt[p*g.n+q]], true
}

// HopDistance returns the number of couplers on a shortest path from p to q.
func (g *Graph) HopDistance(p, q int) int { return g.hop[p*g.n+q] }

// Distance returns the model-weighted shortest-path cost from p to q.
// Under HopModel this equals HopDistance.
func (g *Graph) Distance(p, q int) float64 { return g.dist.Value(p, q) }

// EdgeCost returns the model cost of the coupler (p,q), or +Inf if p and q
// are not adjacent.
func (g *Graph) EdgeCost(p, q int) float64 {
	if !g.Adjacent(p, q) {
		return math.Inf(1)
	}
	return g.cost[g.edgeAt[p*g.n+q]]
}

// Diameter returns the largest hop distance between any two qubits.
func (g *Graph) Diameter() int { return g.diameter }

// Calibrated reports whether Distance and EdgeCost observe calibration data.
func (g *Graph) Calibrated() bool { return g.model.calibrated() }

// Model returns the cost model in use.
func (g *Graph) Model() CostModel { return g.model }

// ShortestPath returns a shortest hop path from p to q, both endpoints
// included. Among equal-length paths the one found by BFS over sorted
// neighbor lists is returned, so the result is deterministic.
func (g *Graph) ShortestPath(p, q int) []int {
	// every qubit is reachable on a validated graph
	path, _ := g.trees[p].PathTo(q)
	return path
}
