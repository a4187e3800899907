// Package dijkstra_test validates ShortestPaths: sentinel values, path/distance
// agreement, tie breaking, directionality and agreement with independent oracles.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	rcdijkstra "github.com/RyanCarrier/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/dijkstra"
	"github.com/katalvlaran/graphsketch/matrix"
)

// ------------------------------------------------------------------------
// Fixtures
// ------------------------------------------------------------------------

// diamond: 1→2 (1), 1→3 (4), 2→3 (2), 3→4 (1), plus isolated node 5.
func diamond(opts ...core.GraphOption) *core.Graph {
	nodes := []core.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	edges := []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 1, To: 3, Weight: 4},
		{ID: 3, From: 2, To: 3, Weight: 2},
		{ID: 4, From: 3, To: 4, Weight: 1},
	}
	return core.NewGraph(nodes, edges, opts...)
}

// pathWeight sums the lightest arc between consecutive path nodes.
func pathWeight(t *testing.T, g *core.Graph, path []core.NodeID) float64 {
	t.Helper()
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		best := math.Inf(1)
		for _, e := range g.OutgoingEdges(path[i]) {
			if e.To == path[i+1] && e.Weight < best {
				best = e.Weight
			}
		}
		require.False(t, math.IsInf(best, 1), "no arc %d→%d", path[i], path[i+1])
		sum += best
	}
	return sum
}

// randomGraph builds n nodes and m integer-weighted arcs, deterministic per seed.
func randomGraph(seed int64, n, m int, bidirectional bool) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{ID: core.NodeID(i)}
	}
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, core.Edge{
			ID:     core.EdgeID(i + 1),
			From:   core.NodeID(u),
			To:     core.NodeID(v),
			Weight: float64(rng.Intn(20)),
		})
	}
	return core.NewGraph(nodes, edges, core.WithBidirectional(bidirectional))
}

// ------------------------------------------------------------------------
// Properties
// ------------------------------------------------------------------------

func TestShortestPaths_Directed(t *testing.T) {
	g := diamond()
	res := dijkstra.ShortestPaths(g, 1)

	assert.Equal(t, core.NodeID(1), res.Source)
	assert.Equal(t, 0.0, res.Distances[1])
	assert.Equal(t, 1.0, res.Distances[2])
	assert.Equal(t, 3.0, res.Distances[3])
	assert.Equal(t, 4.0, res.Distances[4])
	assert.True(t, math.IsInf(res.Distances[5], 1))

	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, res.Paths[4])
	assert.Equal(t, []core.NodeID{1}, res.Paths[1])
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, res.Order)

	_, ok := res.Predecessor(1)
	assert.False(t, ok, "source has no predecessor")
	p, ok := res.Predecessor(3)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(2), p)
}

// TestShortestPaths_Unreachable checks the [t] sentinel and missing predecessor.
func TestShortestPaths_Unreachable(t *testing.T) {
	res := dijkstra.ShortestPaths(diamond(), 3)

	for _, id := range []core.NodeID{1, 2, 5} {
		assert.True(t, math.IsInf(res.Distances[id], 1), "node %d", id)
		assert.Equal(t, []core.NodeID{id}, res.Paths[id], "node %d", id)
		_, ok := res.Predecessors[id]
		assert.False(t, ok, "node %d", id)
		assert.False(t, res.Reachable(id))
		_, ok = res.PathTo(id)
		assert.False(t, ok)
	}
	path, ok := res.PathTo(4)
	require.True(t, ok)
	assert.Equal(t, []core.NodeID{3, 4}, path)
}

func TestShortestPaths_Bidirectional(t *testing.T) {
	res := dijkstra.ShortestPaths(diamond(core.WithBidirectional(true)), 4)

	assert.Equal(t, 1.0, res.Distances[3])
	assert.Equal(t, 3.0, res.Distances[2])
	assert.Equal(t, 4.0, res.Distances[1])
	assert.Equal(t, []core.NodeID{4, 3, 2, 1}, res.Paths[1])
}

// TestShortestPaths_TieBreak verifies that equal distances settle in
// enumeration order and that the first relaxation wins on equal candidates.
func TestShortestPaths_TieBreak(t *testing.T) {
	nodes := []core.Node{{ID: 10}, {ID: 30}, {ID: 20}, {ID: 40}}
	edges := []core.Edge{
		{ID: 1, From: 10, To: 20, Weight: 1},
		{ID: 2, From: 10, To: 30, Weight: 1},
		{ID: 3, From: 30, To: 40, Weight: 1},
		{ID: 4, From: 20, To: 40, Weight: 1},
	}
	g := core.NewGraph(nodes, edges)

	for _, opts := range [][]dijkstra.Option{nil, {dijkstra.WithHeap()}} {
		res := dijkstra.ShortestPaths(g, 10, opts...)
		// 30 is enumerated before 20, so it settles first and claims 40.
		assert.Equal(t, []core.NodeID{10, 30, 20, 40}, res.Order)
		assert.Equal(t, []core.NodeID{10, 30, 40}, res.Paths[40])
	}
}

func TestShortestPaths_MissingSourceAndEmpty(t *testing.T) {
	res := dijkstra.ShortestPaths(diamond(), 99)
	require.Len(t, res.Distances, 5)
	for id, d := range res.Distances {
		assert.True(t, math.IsInf(d, 1), "node %d", id)
	}
	assert.Empty(t, res.Order)

	empty := dijkstra.ShortestPaths(core.NewGraph(nil, nil), 1)
	assert.Empty(t, empty.Distances)
	assert.Empty(t, empty.Paths)
	assert.Empty(t, empty.Predecessors)

	nilGraph := dijkstra.ShortestPaths(nil, 1)
	assert.Empty(t, nilGraph.Distances)
}

// TestShortestPaths_DanglingEdgeSkipped verifies the lookup-miss policy.
func TestShortestPaths_DanglingEdgeSkipped(t *testing.T) {
	nodes := []core.Node{{ID: 1}, {ID: 2}}
	edges := []core.Edge{
		{ID: 1, From: 1, To: 99, Weight: 1},
		{ID: 2, From: 1, To: 2, Weight: 5},
	}
	res := dijkstra.ShortestPaths(core.NewGraph(nodes, edges), 1)
	assert.Equal(t, 5.0, res.Distances[2])
	_, ok := res.Distances[99]
	assert.False(t, ok)
}

func TestShortestPaths_Hooks(t *testing.T) {
	var settled []core.NodeID
	relaxed := 0
	dijkstra.ShortestPaths(diamond(), 1,
		dijkstra.WithOnSettle(func(id core.NodeID, _ float64) { settled = append(settled, id) }),
		dijkstra.WithOnRelax(func(_, _ core.NodeID, _ float64) { relaxed++ }),
	)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, settled)
	// 1→2, 1→3 (4), 2→3 improves to 3, 3→4.
	assert.Equal(t, 4, relaxed)
}

// TestShortestPaths_PathWeightMatchesDistance checks every reachable path on
// random sketches in both modes.
func TestShortestPaths_PathWeightMatchesDistance(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, bidi := range []bool{false, true} {
			g := randomGraph(seed, 12, 30, bidi)
			res := dijkstra.ShortestPaths(g, 0)
			require.Equal(t, 0.0, res.Distances[0])
			for id, d := range res.Distances {
				path := res.Paths[id]
				require.Equal(t, id, path[len(path)-1])
				if math.IsInf(d, 1) {
					require.Equal(t, []core.NodeID{id}, path)
					continue
				}
				require.Equal(t, core.NodeID(0), path[0])
				require.Equal(t, d, pathWeight(t, g, path), "seed %d node %d", seed, id)
			}
		}
	}
}

// TestShortestPaths_Idempotent runs each strategy twice on the same sketch
// and source; the results must not differ in any field.
func TestShortestPaths_Idempotent(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(seed, 12, 30, seed%2 == 1)
		for _, opts := range [][]dijkstra.Option{nil, {dijkstra.WithHeap()}} {
			first := dijkstra.ShortestPaths(g, 0, opts...)
			second := dijkstra.ShortestPaths(g, 0, opts...)
			require.Equal(t, first, second, "seed %d", seed)
		}
	}

	g := diamond()
	require.Equal(t, dijkstra.ShortestPaths(g, 1), dijkstra.ShortestPaths(g, 1))
}

// ------------------------------------------------------------------------
// Oracles
// ------------------------------------------------------------------------

// TestShortestPaths_HeapMatchesScan compares both frontiers field by field.
func TestShortestPaths_HeapMatchesScan(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := randomGraph(seed, 15, 40, seed%2 == 0)
		scan := dijkstra.ShortestPaths(g, 0)
		hp := dijkstra.ShortestPaths(g, 0, dijkstra.WithHeap())
		require.Equal(t, scan, hp, "seed %d", seed)
	}
}

// TestShortestPaths_AgreesWithRyanCarrier cross-checks distances against an
// independent implementation on directed integer-weighted sketches.
func TestShortestPaths_AgreesWithRyanCarrier(t *testing.T) {
	const n = 10
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGraph(seed, n, 25, false)

		oracle := rcdijkstra.NewGraph()
		for i := 0; i < n; i++ {
			oracle.AddVertex(i)
		}
		// the oracle keeps one arc per ordered pair, so feed it the lightest
		lightest := map[[2]int]int64{}
		for _, e := range g.Edges() {
			k := [2]int{int(e.From), int(e.To)}
			if w, ok := lightest[k]; !ok || int64(e.Weight) < w {
				lightest[k] = int64(e.Weight)
			}
		}
		for k, w := range lightest {
			require.NoError(t, oracle.AddArc(k[0], k[1], w))
		}

		res := dijkstra.ShortestPaths(g, 0)
		for dst := 1; dst < n; dst++ {
			best, err := oracle.Shortest(0, dst)
			got := res.Distances[core.NodeID(dst)]
			if err != nil {
				assert.True(t, math.IsInf(got, 1), "seed %d dst %d: oracle found no path", seed, dst)
				continue
			}
			assert.Equal(t, float64(best.Distance), got, "seed %d dst %d", seed, dst)
		}
	}
}

// TestShortestPaths_AgreesWithFloydWarshall compares every source row with the
// all-pairs closure of the adjacency matrix.
func TestShortestPaths_AgreesWithFloydWarshall(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(seed, 9, 20, seed%2 == 1)
		adj, ids := matrix.Adjacency(g)
		closure, err := matrix.FloydWarshall(adj)
		require.NoError(t, err)

		for i, src := range ids {
			res := dijkstra.ShortestPaths(g, src)
			for j, dst := range ids {
				want, err := closure.At(i, j)
				require.NoError(t, err)
				assert.Equal(t, want, res.Distances[dst], "seed %d %d→%d", seed, src, dst)
			}
		}
	}
}
