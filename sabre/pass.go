// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// pass.go - one routing pass over a DAG.
//
// A pass owns every piece of mutable state: the live mapping, per-node unmet
// predecessor counts, the front layer, decay weights and scratch buffers.
// The DAG itself is only read, so forward, backward and concurrent passes can
// share it.
//
// Loop (one iteration per SWAP decision):
//   1. drain - execute every front node that is single-qubit or adjacent;
//      any execution resets decay and the stall counter.
//   2. empty front → done.
//   3. stall ≥ limit → release valve: walk the closest front gate together
//      along a shortest coupling path.
//   4. otherwise score candidates and apply the best SWAP.

package sabre

import (
	"context"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/dag"
	"github.com/katalvlaran/qmap/mapping"
)

// minParallelPerWorker is the smallest candidate share worth a goroutine.
const minParallelPerWorker = 4

type extItem struct{ id, layer int }

type pass struct {
	r    *Router
	d    *dag.DAG
	m    *mapping.Mapping
	emit bool

	pending []int
	front   []int
	decay   []float64

	sinceReset int
	stall      int
	stallLimit int
	maxIter    int

	// scratch, reused across iterations
	cands   []Swap
	pairs   []Pair
	ext     []WeightedPair
	queue   []extItem
	mark    []int
	stamp   int
	scores  []float64
	workers []*mapping.Mapping

	ops        []Instruction
	executed   int
	swaps      int
	iterations int
	valves     int
}

func (r *Router) newPass(d *dag.DAG, m *mapping.Mapping, emit bool) *pass {
	n := r.g.Order()
	p := &pass{
		r:       r,
		d:       d,
		m:       m,
		emit:    emit,
		pending: make([]int, d.Len()),
		front:   append([]int(nil), d.Roots()...),
		decay:   make([]float64, n),
		mark:    make([]int, d.Len()),
	}
	for id := range p.pending {
		p.pending[id] = len(d.Node(id).Preds)
	}
	p.resetDecay()

	p.stallLimit = r.opts.StallLimit
	if p.stallLimit == 0 {
		p.stallLimit = stallFactor * n
	}
	p.maxIter = r.opts.MaxIterations
	if p.maxIter == 0 {
		p.maxIter = 2 * (d.TwoQubitCount() + 1) * (p.stallLimit + r.g.Diameter() + 1)
	}
	if emit {
		p.ops = make([]Instruction, 0, d.Len()+d.TwoQubitCount())
	}
	if w := r.opts.Workers; w > 1 {
		p.workers = make([]*mapping.Mapping, w)
		for k := range p.workers {
			p.workers[k] = m.Clone()
		}
	}
	return p
}

func (p *pass) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.drain() {
			p.resetDecay()
			p.stall = 0
		}
		if len(p.front) == 0 {
			return nil
		}

		p.iterations++
		if p.iterations > p.maxIter {
			return fmt.Errorf("%w: %d iterations, %d of %d ops placed",
				ErrRoutingTimeout, p.maxIter, p.executed, p.d.Len())
		}
		if p.stall >= p.stallLimit {
			p.releaseValve()
			continue
		}

		cands := p.candidates()
		if len(cands) == 0 {
			return fmt.Errorf("%w: no candidate SWAP for %d front gates", ErrInvalidTopology, len(p.front))
		}
		p.frontPairs()
		p.extended()
		p.apply(p.choose(cands))
	}
}

func (p *pass) executable(id int) bool {
	n := p.d.Node(id)
	if !n.TwoQubit() {
		return true
	}
	return p.r.g.Adjacent(p.m.Physical(n.Qubits[0]), p.m.Physical(n.Qubits[1]))
}

// drain executes front nodes until none is executable. Nodes released by an
// execution are appended and examined in the same sweep.
func (p *pass) drain() bool {
	progressed := false
	for i := 0; i < len(p.front); {
		id := p.front[i]
		if !p.executable(id) {
			i++
			continue
		}
		p.execute(id)
		p.front = append(p.front[:i], p.front[i+1:]...)
		progressed = true
	}
	return progressed
}

func (p *pass) execute(id int) {
	n := p.d.Node(id)
	p.executed++
	if p.emit {
		phys := make([]int, len(n.Qubits))
		for k, l := range n.Qubits {
			phys[k] = p.m.Physical(l)
		}
		p.ops = append(p.ops, Instruction{
			Qubits:  phys,
			Logical: n.Qubits,
			Payload: n.Op.Payload,
			Source:  id,
		})
	}
	for _, s := range n.Succs {
		p.pending[s]--
		if p.pending[s] == 0 {
			p.front = append(p.front, s)
		}
	}
}

// candidates returns the sorted, de-duplicated SWAPs touching an operand site
// of a front gate.
func (p *pass) candidates() []Swap {
	c := p.cands[:0]
	for _, id := range p.front {
		for _, l := range p.d.Node(id).Qubits {
			site := p.m.Physical(l)
			for _, nb := range p.r.g.Neighbors(site) {
				c = append(c, newSwap(site, nb))
			}
		}
	}
	slices.SortFunc(c, func(a, b Swap) int {
		if a.P != b.P {
			return a.P - b.P
		}
		return a.Q - b.Q
	})
	c = slices.Compact(c)
	p.cands = c
	return c
}

func (p *pass) frontPairs() {
	p.pairs = p.pairs[:0]
	for _, id := range p.front {
		q := p.d.Node(id).Qubits
		p.pairs = append(p.pairs, Pair{q[0], q[1]})
	}
}

// extended collects up to LookAhead two-qubit gates reachable from the front,
// breadth-first, each weighted ExtendedDecay^(layer-1).
func (p *pass) extended() {
	p.ext = p.ext[:0]
	limit := p.r.opts.LookAhead
	if limit == 0 {
		return
	}
	p.stamp++
	q := p.queue[:0]
	for _, id := range p.front {
		for _, s := range p.d.Node(id).Succs {
			if p.mark[s] != p.stamp {
				p.mark[s] = p.stamp
				q = append(q, extItem{s, 1})
			}
		}
	}
	f := p.r.opts.ExtendedDecay
	for head := 0; head < len(q) && len(p.ext) < limit; head++ {
		it := q[head]
		n := p.d.Node(it.id)
		if n.TwoQubit() {
			w := 1.0
			if f != 1 {
				w = math.Pow(f, float64(it.layer-1))
			}
			p.ext = append(p.ext, WeightedPair{Pair{n.Qubits[0], n.Qubits[1]}, w})
		}
		for _, s := range n.Succs {
			if p.mark[s] != p.stamp {
				p.mark[s] = p.stamp
				q = append(q, extItem{s, it.layer + 1})
			}
		}
	}
	p.queue = q
}

func (p *pass) scoreRange(m *mapping.Mapping, cands []Swap, out []float64) {
	sc := p.r.scorer
	for i, s := range cands {
		m.SwapPhysical(s.P, s.Q)
		out[i] = sc.Score(s, m, p.pairs, p.ext)
		m.SwapPhysical(s.P, s.Q)
	}
}

// score fills one slot per candidate. With several workers each goroutine
// scores a contiguous chunk on its own mapping copy.
func (p *pass) score(cands []Swap) []float64 {
	if cap(p.scores) < len(cands) {
		p.scores = make([]float64, len(cands))
	}
	out := p.scores[:len(cands)]

	w := len(p.workers)
	if w < 2 || len(cands) < w*minParallelPerWorker {
		p.scoreRange(p.m, cands, out)
		return out
	}
	chunk := (len(cands) + w - 1) / w
	var g errgroup.Group
	for k := 0; k < w; k++ {
		lo, hi := k*chunk, min((k+1)*chunk, len(cands))
		if lo >= hi {
			break
		}
		m := p.workers[k]
		m.CopyFrom(p.m)
		g.Go(func() error {
			p.scoreRange(m, cands[lo:hi], out[lo:hi])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (p *pass) choose(cands []Swap) Swap {
	scores := p.score(cands)
	best := 0
	for i := 1; i < len(cands); i++ {
		if p.better(i, best, cands, scores) {
			best = i
		}
	}
	return cands[best]
}

// better reports whether candidate i beats candidate j. Scores within a
// relative 1e-12 are equal and fall through to the decay weights, then to the
// smaller pair.
func (p *pass) better(i, j int, cands []Swap, scores []float64) bool {
	v, bv := scores[i], scores[j]
	tol := 1e-12 * math.Max(1, math.Abs(bv))
	if v < bv-tol {
		return true
	}
	if v > bv+tol {
		return false
	}
	w, bw := p.weight(cands[i]), p.weight(cands[j])
	switch p.r.opts.TieBreak {
	case TieBreakFreshFirst:
		if w != bw {
			return w < bw
		}
	case TieBreakDecayFirst:
		if w != bw {
			return w > bw
		}
	}
	return cands[i].less(cands[j])
}

// weight is the decay weight of a SWAP: the larger of its endpoints'.
func (p *pass) weight(s Swap) float64 {
	return math.Max(p.decay[s.P], p.decay[s.Q])
}

func (p *pass) apply(s Swap) {
	p.m.SwapPhysical(s.P, s.Q)
	p.swaps++
	p.stall++
	if p.emit {
		p.ops = append(p.ops, Instruction{
			Qubits:  []int{s.P, s.Q},
			Payload: circuit.SwapGate,
			Swap:    true,
			Source:  -1,
		})
	}
	delta := p.r.opts.DecayDelta
	p.decay[s.P] += delta
	p.decay[s.Q] += delta
	p.sinceReset++
	if p.sinceReset >= p.r.opts.DecayReset {
		p.resetDecay()
	}
}

func (p *pass) resetDecay() {
	for i := range p.decay {
		p.decay[i] = 1
	}
	p.sinceReset = 0
}

// releaseValve routes the front gate with the smallest hop distance by moving
// its first operand along a shortest path until the pair is adjacent.
func (p *pass) releaseValve() {
	g := p.r.g
	target, bestD := -1, 0
	for _, id := range p.front {
		q := p.d.Node(id).Qubits
		d := g.HopDistance(p.m.Physical(q[0]), p.m.Physical(q[1]))
		if target < 0 || d < bestD {
			target, bestD = id, d
		}
	}
	q := p.d.Node(target).Qubits
	path := g.ShortestPath(p.m.Physical(q[0]), p.m.Physical(q[1]))
	for i := 0; i+2 < len(path); i++ {
		p.apply(newSwap(path[i], path[i+1]))
	}
	p.valves++
	p.stall = 0
	p.resetDecay()
	p.r.opts.Logger.Debug("release valve",
		zap.String("variant", p.r.variant),
		zap.Bool("reversed", p.d.Reversed()),
		zap.Int("node", target),
		zap.Int("distance", bestD),
		zap.Int("swaps", p.swaps))
}
