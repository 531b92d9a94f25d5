// Package builder_test contains functional tests for all Constructor
// implementations, verifying qubit/coupler counts, degrees and idempotence.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/coupling"
)

func maxDegree(g *coupling.Graph) int {
	m := 0
	for p := 0; p < g.Order(); p++ {
		if d := len(g.Neighbors(p)); d > m {
			m = d
		}
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantN     int
		wantE     int
		wantDiam  int
		maxDegree int
	}{
		{"Line(1)", builder.Line(1), 1, 0, 0, 0},
		{"Line(5)", builder.Line(5), 5, 4, 4, 2},
		{"Ring(6)", builder.Ring(6), 6, 6, 3, 2},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, 5, 4},
		{"Star(5)", builder.Star(5), 5, 4, 2, 4},
		{"Complete(4)", builder.Complete(4), 4, 6, 1, 3},
		{"HeavyHex(1,1)", builder.HeavyHex(1, 1), 16, 16, 0, 3},
		{"HeavyHex(2,3)", builder.HeavyHex(2, 3), 24 + 21 + 8, 2 * (21 + 8), 0, 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, g.Order())
			assert.Len(t, g.Edges(), tc.wantE)
			if tc.wantDiam > 0 {
				assert.Equal(t, tc.wantDiam, g.Diameter())
			}
			assert.Equal(t, tc.maxDegree, maxDegree(g))
		})
	}
}

func TestBuilders_TooFewQubits(t *testing.T) {
	t.Parallel()

	for _, ctor := range []builder.Constructor{
		builder.Line(0),
		builder.Ring(2),
		builder.Grid(0, 3),
		builder.Grid(3, 0),
		builder.HeavyHex(0, 1),
		builder.Star(1),
		builder.Complete(0),
	} {
		_, err := builder.BuildDevice(nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewQubits)
	}
}

func TestBuildDevice_ConstructFailed(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildDevice(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildDevice(nil, builder.Line(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildDevice(nil, builder.Couplers([2]int{1, 1}))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// Line then Ring over the same indices must yield exactly the ring.
func TestBuildDevice_Idempotent(t *testing.T) {
	t.Parallel()

	dev, err := builder.BuildDevice(nil, builder.Line(5), builder.Ring(5), builder.Line(5))
	require.NoError(t, err)
	assert.Equal(t, 5, dev.NumQubits)
	assert.Len(t, dev.Couplers, 5)
	assert.Equal(t, "line-5+ring-5+line-5", dev.Name)
}

func TestBuildDevice_Calibration(t *testing.T) {
	t.Parallel()

	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithUniformError(0.001, 0.02),
			builder.WithConstantDuration(300),
			builder.WithEdgeError(2, 3, 0.4),
			builder.WithName("chip"),
		}
	}
	a, err := builder.BuildDevice(opts(), builder.Grid(2, 2))
	require.NoError(t, err)
	b, err := builder.BuildDevice(opts(), builder.Grid(2, 2))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed must reproduce calibration")
	assert.Equal(t, "chip", a.Name)
	assert.True(t, a.HasCalibration())
	for _, c := range a.Couplers {
		assert.Equal(t, 300.0, c.Duration)
		if c.U == 2 && c.V == 3 {
			assert.Equal(t, 0.4, c.ErrorRate)
			continue
		}
		assert.GreaterOrEqual(t, c.ErrorRate, 0.001)
		assert.Less(t, c.ErrorRate, 0.02)
	}
}

func TestBuildDevice_EdgeErrorOverride(t *testing.T) {
	t.Parallel()

	dev, err := builder.BuildDevice([]builder.BuilderOption{builder.WithEdgeError(2, 1, 0.3)}, builder.Line(3))
	require.NoError(t, err)
	assert.Equal(t, coupling.Edge{U: 1, V: 2, ErrorRate: 0.3}, dev.Couplers[1])
	assert.Equal(t, coupling.Edge{U: 0, V: 1}, dev.Couplers[0])

	_, err = builder.BuildDevice([]builder.BuilderOption{builder.WithEdgeError(0, 2, 0.3)}, builder.Line(3))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
