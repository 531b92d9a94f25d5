package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/bfs"
)

// adj is a minimal int-indexed adjacency list.
type adj [][]int

func (a adj) Order() int            { return len(a) }
func (a adj) Neighbors(v int) []int { return a[v] }

// line returns the path graph 0-1-...-(n-1).
func line(n int) adj {
	g := make(adj, n)
	for i := 0; i+1 < n; i++ {
		g[i] = append(g[i], i+1)
		g[i+1] = append(g[i+1], i)
	}
	return g
}

func TestBFS_InvalidInput(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	var typedNil *adj
	_, err = bfs.BFS(typedNil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(line(3), 3)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(line(3), -1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_LineDepthsAndPath(t *testing.T) {
	res, err := bfs.BFS(line(5), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{1, 0, 1, 2, 3}, res.Depth)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, path)

	self, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, self)
}

func TestBFS_Disconnected(t *testing.T) {
	g := adj{{1}, {0}, {}}
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.False(t, res.Reached(2))
	assert.Equal(t, -1, res.Depth[2])
	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_OnVisitDepths(t *testing.T) {
	var seen [][2]int
	_, err := bfs.BFS(line(4), 2, bfs.WithOnVisit(func(v, d int) error {
		seen = append(seen, [2]int{v, d})
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{2, 0}, {1, 1}, {3, 1}, {0, 2}}, seen)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(line(4), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}
