package sabre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/dag"
	"github.com/katalvlaran/qmap/mapping"
)

// tableScorer scores listed SWAPs from its map and everything else as 1.
type tableScorer map[Swap]float64

func (t tableScorer) Score(s Swap, _ *mapping.Mapping, _ []Pair, _ []WeightedPair) float64 {
	if v, ok := t[s]; ok {
		return v
	}
	return 1
}

func choosePass(t *testing.T, sc Scorer, tb TieBreak) *pass {
	t.Helper()
	g, err := builder.Build(nil, nil, builder.Line(4))
	require.NoError(t, err)
	d, err := dag.Build(circuit.New(4).Gate("cx", nil, 0, 3))
	require.NoError(t, err)
	m, err := mapping.Identity(4, 4)
	require.NoError(t, err)
	r, err := New(g, WithScorer(sc), WithTieBreak(tb))
	require.NoError(t, err)
	p := r.newPass(d, m, false)
	// (0,1) weighs 1.001, (1,2) weighs 1, (2,3) weighs 1.002
	copy(p.decay, []float64{1.001, 1, 1, 1.002})
	return p
}

func TestChoose_TieBreakOrders(t *testing.T) {
	cands := []Swap{{0, 1}, {1, 2}, {2, 3}}
	for tb, want := range map[TieBreak]Swap{
		TieBreakFreshFirst:    {1, 2},
		TieBreakDecayFirst:    {2, 3},
		TieBreakLexicographic: {0, 1},
	} {
		t.Run(tb.String(), func(t *testing.T) {
			p := choosePass(t, tableScorer{}, tb)
			assert.Equal(t, want, p.choose(cands))
		})
	}
}

func TestChoose_ScoreBeforeDecay(t *testing.T) {
	cands := []Swap{{0, 1}, {1, 2}, {2, 3}}
	p := choosePass(t, tableScorer{{2, 3}: 0.5}, TieBreakFreshFirst)
	assert.Equal(t, Swap{2, 3}, p.choose(cands))

	// differences inside the tolerance still count as ties
	p = choosePass(t, tableScorer{{0, 1}: 1 - 1e-14}, TieBreakDecayFirst)
	assert.Equal(t, Swap{2, 3}, p.choose(cands))
}
