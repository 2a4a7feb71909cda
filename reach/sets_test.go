package reach_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seankmartin/SKMNeuralConnections/graph"
	"github.com/seankmartin/SKMNeuralConnections/reach"
)

func TestIsReachable(t *testing.T) {
	g, err := graph.FromAdjacency([][]int{{1}, {2}, {}})
	require.NoError(t, err)

	ok, err := reach.IsReachable(g, 2, []int{0})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = reach.IsReachable(g, 0, []int{2})
	require.NoError(t, err)
	require.False(t, ok)

	// Target inside the source set reaches itself.
	ok, err = reach.IsReachable(g, 1, []int{1})
	require.NoError(t, err)
	require.True(t, ok)

	// Out-of-range sources contribute nothing.
	ok, err = reach.IsReachable(g, 2, []int{9, -1})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = reach.IsReachable(nil, 0, []int{0})
	require.ErrorIs(t, err, reach.ErrGraphNil)
}

func TestFindConnected(t *testing.T) {
	g, err := graph.FromAdjacency([][]int{{1}, {2}, {}})
	require.NoError(t, err)

	got, err := reach.FindConnected(g, []int{0}, []int{2})
	require.NoError(t, err)
	require.Equal(t, []int{2}, got)

	got, err = reach.FindConnected(g, []int{2}, []int{0})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFindConnected_SortedOutput(t *testing.T) {
	g, err := graph.FromAdjacency([][]int{{1, 2, 3}, {}, {}, {}})
	require.NoError(t, err)

	got, err := reach.FindConnected(g, []int{0}, []int{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestFindConnectedLimited_DepthCeiling(t *testing.T) {
	// 0→1→2→3: sink 3 sits three hops from source 0.
	g, err := graph.FromAdjacency([][]int{{1}, {2}, {3}, {}})
	require.NoError(t, err)

	got, err := reach.FindConnectedLimited(g, []int{0}, []int{3}, 1)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = reach.FindConnectedLimited(g, []int{0}, []int{3}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, got)
}

func TestFindConnectedLimited_PrecomputedReverse(t *testing.T) {
	g, err := graph.FromAdjacency([][]int{{1}, {2}, {}})
	require.NoError(t, err)
	rev := g.Reverse()

	got, err := reach.FindConnectedLimited(g, []int{0}, []int{1, 2}, 5, reach.WithReverseGraph(rev))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, got)
}

func TestFindConnectedLimited_Errors(t *testing.T) {
	_, err := reach.FindConnectedLimited(nil, nil, nil, 3)
	require.ErrorIs(t, err, reach.ErrGraphNil)

	g, err := graph.New(1)
	require.NoError(t, err)
	_, err = reach.FindConnectedLimited(g, nil, nil, -1)
	require.ErrorIs(t, err, reach.ErrOptionViolation)
	_, err = reach.FindConnected(g, nil, nil, reach.WithParallelism(0))
	require.ErrorIs(t, err, reach.ErrOptionViolation)
}

// randGraph builds a graph of n vertices with ~degree random out-edges each.
func randGraph(t *testing.T, rng *rand.Rand, n, degree int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for v := 0; v < n; v++ {
		for d := 0; d < degree; d++ {
			require.NoError(t, g.AddEdge(v, rng.Intn(n)))
		}
	}
	return g
}

// TestFindConnected_ParallelMatchesSerial: fan-out must not change results.
func TestFindConnected_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := randGraph(t, rng, 60, 2)
	sources := []int{0, 1, 2}
	sinks := make([]int, 30)
	for i := range sinks {
		sinks[i] = 60 - 1 - i
	}

	serial, err := reach.FindConnected(g, sources, sinks)
	require.NoError(t, err)
	parallel, err := reach.FindConnected(g, sources, sinks, reach.WithParallelism(4))
	require.NoError(t, err)
	require.Equal(t, serial, parallel)

	limSerial, err := reach.FindConnectedLimited(g, sources, sinks, 3)
	require.NoError(t, err)
	limParallel, err := reach.FindConnectedLimited(g, sources, sinks, 3, reach.WithParallelism(4))
	require.NoError(t, err)
	require.Equal(t, limSerial, limParallel)
}

// TestFindConnectedLimited_AgreesUnbounded: with a generous ceiling the
// depth-limited query matches the unbounded one.
func TestFindConnectedLimited_AgreesUnbounded(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randGraph(t, rng, 12, 2)
	sources := []int{0, 1}
	sinks := make([]int, 12)
	for i := range sinks {
		sinks[i] = i
	}

	unbounded, err := reach.FindConnected(g, sources, sinks)
	require.NoError(t, err)
	limited, err := reach.FindConnectedLimited(g, sources, sinks, 12)
	require.NoError(t, err)
	require.Equal(t, unbounded, limited)
}
