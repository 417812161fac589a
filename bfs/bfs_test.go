package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesiclab/bfs"
	"github.com/katalvlaran/geodesiclab/core"
)

// twoPieces builds a path 0-1-2-3 and a separate edge 4-5, plus isolated 6.
func twoPieces(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(7)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(4, 5, 1))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := twoPieces(t)
	_, err = bfs.BFS(g, 7)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.Target(9))
	require.ErrorIs(t, err, bfs.ErrTargetNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthAndPath(t *testing.T) {
	res, err := bfs.BFS(twoPieces(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, bfs.Unvisited, bfs.Unvisited, bfs.Unvisited}, res.Depth)
	assert.False(t, res.Reached(4))
	assert.Equal(t, 3, res.Hops(3))
	assert.Equal(t, bfs.Unvisited, res.Hops(5))
	assert.Equal(t, bfs.Unvisited, res.Hops(-1))

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(5)
	require.Error(t, err)
}

func TestBFS_TargetAndMaxDepth(t *testing.T) {
	g := twoPieces(t)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	// Vertex 2 is discovered when 1 is expanded; the search stops once 2
	// is dequeued, so 3 is never discovered.
	res, err = bfs.BFS(g, 0, bfs.Target(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, 2, res.Hops(2))
	assert.False(t, res.Reached(3))
}

func TestBFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(twoPieces(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	label, count, err := bfs.Components(twoPieces(t))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 2}, label)

	_, _, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
