package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoskres/graphkit/adjacency"
	"github.com/avoskres/graphkit/bfs"
	"github.com/avoskres/graphkit/dijkstra"
)

// weightedFixture builds 0→1(2), 0→2(5), 1→2(1), 2→3(2) over 4 nodes.
func weightedFixture(t *testing.T) *adjacency.Weighted {
	t.Helper()
	adj, err := adjacency.NewWeighted(4)
	require.NoError(t, err)
	require.NoError(t, adj.AddArc(0, 1, 2))
	require.NoError(t, adj.AddArc(0, 2, 5))
	require.NoError(t, adj.AddArc(1, 2, 1))
	require.NoError(t, adj.AddArc(2, 3, 2))

	return adj
}

// TestRun_NilAdjacency verifies nil input is rejected.
func TestRun_NilAdjacency(t *testing.T) {
	res, err := dijkstra.Run(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrNilAdjacency)
}

// TestRun_BadSource verifies out-of-range sources are rejected.
func TestRun_BadSource(t *testing.T) {
	adj, err := adjacency.NewWeighted(2)
	require.NoError(t, err)

	_, err = dijkstra.Run(adj, 5)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

// TestRun_NegativeWeight verifies the fail-fast pre-scan.
func TestRun_NegativeWeight(t *testing.T) {
	adj, err := adjacency.NewWeighted(2)
	require.NoError(t, err)
	require.NoError(t, adj.AddArc(0, 1, -3))

	_, err = dijkstra.Run(adj, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestRun_Fixture checks the worked example: distance to node 3 is 5,
// via path 0→1→2→3.
func TestRun_Fixture(t *testing.T) {
	res, err := dijkstra.Run(weightedFixture(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 2, 3, 5}, res.Dist)
	assert.Equal(t, []int{-1, 0, 1, 2}, res.Prev)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

// TestRun_Unreachable leaves isolated nodes at Inf with Prev −1,
// and PathTo reports them as unreachable.
func TestRun_Unreachable(t *testing.T) {
	adj, err := adjacency.NewWeighted(3)
	require.NoError(t, err)
	require.NoError(t, adj.AddArc(0, 1, 4))

	res, err := dijkstra.Run(adj, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Inf, res.Dist[2])
	assert.Equal(t, -1, res.Prev[2])

	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

// TestRun_ZeroWeightArcs keeps first discoveries on equal distances.
func TestRun_ZeroWeightArcs(t *testing.T) {
	adj, err := adjacency.NewWeighted(3)
	require.NoError(t, err)
	require.NoError(t, adj.AddArc(0, 1, 0))
	require.NoError(t, adj.AddArc(0, 2, 0))
	require.NoError(t, adj.AddArc(1, 2, 0))

	res, err := dijkstra.Run(adj, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, res.Dist)
	assert.Equal(t, 0, res.Prev[2], "equal-distance relaxation must not rewrite the predecessor")
}

// TestRun_MultiEdgesAndLoops picks the cheapest parallel arc and
// ignores self-loops.
func TestRun_MultiEdgesAndLoops(t *testing.T) {
	adj, err := adjacency.NewWeighted(2)
	require.NoError(t, err)
	require.NoError(t, adj.AddArc(0, 1, 9))
	require.NoError(t, adj.AddArc(0, 1, 3))
	require.NoError(t, adj.AddArc(0, 0, 1))

	res, err := dijkstra.Run(adj, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3}, res.Dist)
}

// TestRun_MaxDistance stops finalizing past the cap.
func TestRun_MaxDistance(t *testing.T) {
	adj, err := adjacency.NewWeighted(4)
	require.NoError(t, err)
	require.NoError(t, adj.AddArc(0, 1, 2))
	require.NoError(t, adj.AddArc(1, 2, 2))
	require.NoError(t, adj.AddArc(2, 3, 2))

	res, err := dijkstra.Run(adj, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, dijkstra.Inf, dijkstra.Inf}, res.Dist)

	_, err = dijkstra.Run(adj, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// TestRun_Cancellation honors a canceled context.
func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.Run(weightedFixture(t), 0, dijkstra.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_MatchesBFSOnUnitWeights: with all weights 1, Dijkstra
// distances must equal BFS distances on random graphs.
func TestRun_MatchesBFSOnUnitWeights(t *testing.T) {
	const n = 120
	rng := rand.New(rand.NewSource(11))

	unw, err := adjacency.NewList(n)
	require.NoError(t, err)
	wtd, err := adjacency.NewWeighted(n)
	require.NoError(t, err)
	for k := 0; k < 4*n; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		require.NoError(t, unw.AddEdge(u, v))
		require.NoError(t, wtd.AddArc(u, v, 1))
	}

	bfsDist, err := bfs.Distances(unw, 0)
	require.NoError(t, err)
	res, err := dijkstra.Run(wtd, 0)
	require.NoError(t, err)

	for v := 0; v < n; v++ {
		if bfsDist[v] == -1 {
			assert.Equal(t, dijkstra.Inf, res.Dist[v], "node %d", v)
			continue
		}
		assert.Equal(t, int64(bfsDist[v]), res.Dist[v], "node %d", v)
	}
}

// TestRun_PathEdgesAreReal verifies every reconstructed hop is an arc
// of the graph whose weights sum to the reported distance.
func TestRun_PathEdgesAreReal(t *testing.T) {
	const n = 60
	rng := rand.New(rand.NewSource(23))

	adj, err := adjacency.NewWeighted(n)
	require.NoError(t, err)
	for k := 0; k < 5*n; k++ {
		require.NoError(t, adj.AddArc(rng.Intn(n), rng.Intn(n), rng.Int63n(20)))
	}

	res, err := dijkstra.Run(adj, 0)
	require.NoError(t, err)
	for dest := 0; dest < n; dest++ {
		if res.Dist[dest] == dijkstra.Inf {
			continue
		}
		path, pathErr := res.PathTo(dest)
		require.NoError(t, pathErr)
		require.Equal(t, 0, path[0])
		var total int64
		for i := 0; i+1 < len(path); i++ {
			best := dijkstra.Inf
			for _, a := range adj.Arcs(path[i]) {
				if a.To == path[i+1] && a.Weight < best {
					best = a.Weight
				}
			}
			require.NotEqual(t, dijkstra.Inf, best, "hop %d→%d is not an arc", path[i], path[i+1])
			total += best
		}
		assert.Equal(t, res.Dist[dest], total, "dest %d", dest)
	}
}
