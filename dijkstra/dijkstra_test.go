// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate argument checking, early exit on target, reachability,
// parallel edges, MaxDistance, InfEdgeThreshold, and the metric properties of
// the returned distances.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesiclab/core"
	"github.com/katalvlaran/geodesiclab/dijkstra"
)

// triangle returns 0-1 (1), 1-2 (2), 0-2 (5) plus an isolated vertex 3.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := triangle(t)

	_, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(4))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.Target(9))
	require.ErrorIs(t, err, dijkstra.ErrTargetOutOfRange)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_TrianglePath(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source(0), dijkstra.Target(2))
	require.NoError(t, err)

	assert.True(t, res.Reachable)
	assert.InDelta(t, 3.0, res.Distance, 1e-12)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	require.Len(t, res.AllDistances, 4)
	assert.True(t, math.IsInf(res.AllDistances[3], 1))
}

func TestDijkstra_StartEqualsTarget(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source(3), dijkstra.Target(3))
	require.NoError(t, err)

	assert.True(t, res.Reachable)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, []int{3}, res.Path)
}

func TestDijkstra_Unreachable(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source(0), dijkstra.Target(3))
	require.NoError(t, err)

	assert.False(t, res.Reachable)
	assert.True(t, math.IsInf(res.Distance, 1))
	assert.Nil(t, res.Path)
	assert.Nil(t, res.PathTo(3))
}

func TestDijkstra_ParallelEdges(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 0, 2))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.Target(1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Distance)
	assert.Equal(t, []int{0, 1}, res.Path)
}

func TestDijkstra_FullSearchWithoutTarget(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source(2))
	require.NoError(t, err)

	assert.Equal(t, dijkstra.NoVertex, res.Target)
	assert.False(t, res.Reachable)
	assert.Nil(t, res.Path)
	assert.Equal(t, []float64{3, 2, 0, math.Inf(1)}, res.AllDistances)
	assert.Equal(t, []int{2, 1, 0}, res.PathTo(0))
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	g := triangle(t)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.Target(2), dijkstra.WithMaxDistance(2.5))
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Equal(t, 1.0, res.AllDistances[1])

	// Only the weight-1 edge survives a threshold of 1.5.
	res, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.Target(2), dijkstra.WithInfEdgeThreshold(1.5))
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Equal(t, 1.0, res.AllDistances[1])

	res, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.Target(2), dijkstra.WithInfEdgeThreshold(5.5))
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, 3.0, res.Distance)
}

// ------------------------------------------------------------------------
// 3. Metric properties on a random geometric graph
// ------------------------------------------------------------------------

func TestDijkstra_TriangleInequality(t *testing.T) {
	const n = 40
	rng := rand.New(rand.NewSource(42))
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			j := rng.Intn(n)
			if j == i {
				continue
			}
			require.NoError(t, g.AddEdge(i, j, rng.Float64()*10))
		}
	}

	full := make([][]float64, n)
	for s := 0; s < n; s++ {
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
		require.NoError(t, err)
		full[s] = res.AllDistances
		assert.Equal(t, 0.0, full[s][s])
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			assert.GreaterOrEqual(t, full[a][b], 0.0)
			for c := 0; c < n; c++ {
				if math.IsInf(full[a][b], 1) || math.IsInf(full[b][c], 1) {
					continue
				}
				assert.LessOrEqual(t, full[a][c], full[a][b]+full[b][c]+1e-9)
			}
		}
	}

	// Early exit agrees with the full search on the target.
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.Target(n-1))
	require.NoError(t, err)
	if res.Reachable {
		assert.InDelta(t, full[0][n-1], res.Distance, 1e-12)
		assert.Equal(t, 0, res.Path[0])
		assert.Equal(t, n-1, res.Path[len(res.Path)-1])
	}
}

func BenchmarkDijkstra_Ring(b *testing.B) {
	const n = 10000
	g, _ := core.NewGraph(n)
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n, 1)
		_ = g.AddEdge(i, (i+7)%n, 6.5)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.Target(n/2))
	}
}
