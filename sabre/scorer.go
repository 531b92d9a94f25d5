// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// scorer.go - SWAP cost heuristics.
//
// A Scorer sees the mapping with the candidate SWAP already applied and returns
// a finite non-negative cost; lower is better. The router picks the minimum
// and orders equal costs by decay weight (TieBreak).
//
//   DistanceScorer  (SABRE)   Σ_F hop + λ·Σ_E w·hop
//   CalibratedScorer (MQSABRE) Σ_F dist + λ·Σ_E w·dist + penalty·cost(swap)
//
// where dist is the calibrated all-pairs distance of the coupling graph.
// With Normalize set, the front sum is divided by |F| and the extended sum
// by |E|.

package sabre

import (
	"github.com/katalvlaran/qmap/coupling"
	"github.com/katalvlaran/qmap/mapping"
)

// Swap is a SWAP on the physical coupler (P,Q), with P < Q.
type Swap struct{ P, Q int }

func newSwap(p, q int) Swap {
	if p > q {
		p, q = q, p
	}
	return Swap{p, q}
}

func (s Swap) less(o Swap) bool {
	return s.P < o.P || (s.P == o.P && s.Q < o.Q)
}

// Pair is the logical operand pair of a two-qubit gate.
type Pair struct{ A, B int }

// WeightedPair is an extended-set gate with its look-ahead weight.
type WeightedPair struct {
	Pair
	Weight float64
}

// Scorer rates a candidate SWAP.
type Scorer interface {
	Score(s Swap, m *mapping.Mapping, front []Pair, ext []WeightedPair) float64
}

// DistanceScorer is the hop-count SABRE heuristic.
type DistanceScorer struct {
	Graph     *coupling.Graph
	Lambda    float64
	Normalize bool
}

// Score implements Scorer.
func (d DistanceScorer) Score(_ Swap, m *mapping.Mapping, front []Pair, ext []WeightedPair) float64 {
	var f, e float64
	for _, pr := range front {
		f += float64(d.Graph.HopDistance(m.Physical(pr.A), m.Physical(pr.B)))
	}
	for _, pr := range ext {
		e += pr.Weight * float64(d.Graph.HopDistance(m.Physical(pr.A), m.Physical(pr.B)))
	}
	return combine(f, e, len(front), len(ext), d.Lambda, d.Normalize)
}

// CalibratedScorer is the MQSABRE heuristic: calibrated distances plus the
// cost of the SWAP's own coupler.
type CalibratedScorer struct {
	Graph     *coupling.Graph
	Lambda    float64
	Penalty   float64
	Normalize bool
}

// Score implements Scorer.
func (c CalibratedScorer) Score(s Swap, m *mapping.Mapping, front []Pair, ext []WeightedPair) float64 {
	var f, e float64
	for _, pr := range front {
		f += c.Graph.Distance(m.Physical(pr.A), m.Physical(pr.B))
	}
	for _, pr := range ext {
		e += pr.Weight * c.Graph.Distance(m.Physical(pr.A), m.Physical(pr.B))
	}
	return combine(f, e, len(front), len(ext), c.Lambda, c.Normalize) + c.Penalty*c.Graph.EdgeCost(s.P, s.Q)
}

func combine(f, e float64, nf, ne int, lambda float64, normalize bool) float64 {
	if normalize {
		if nf > 0 {
			f /= float64(nf)
		}
		if ne > 0 {
			e /= float64(ne)
		}
	}
	return f + lambda*e
}
