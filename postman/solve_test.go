// SPDX-License-Identifier: MIT

package postman_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/postman"
)

func nodes(ids ...core.NodeID) []core.Node {
	out := make([]core.Node, len(ids))
	for i, id := range ids {
		out[i] = core.Node{ID: id, X: float64(i)}
	}
	return out
}

// coversAll checks that every resolved edge ID of g appears in traversed.
func coversAll(t *testing.T, g *core.Graph, traversed []core.EdgeID) {
	t.Helper()
	seen := map[core.EdgeID]bool{}
	for _, id := range traversed {
		seen[id] = true
	}
	for _, e := range g.ResolvedEdges() {
		assert.True(t, seen[e.ID], "edge %d not traversed", e.ID)
	}
}

// TestSolve_EulerianBidirectional: every degree even, so no deadheads and
// zero waste.
func TestSolve_EulerianBidirectional(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3, 4), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 2},
		{ID: 3, From: 3, To: 4, Weight: 3},
		{ID: 4, From: 4, To: 1, Weight: 4},
	}, core.WithBidirectional(true))

	res, err := postman.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4, 1}, res.Circuit)
	assert.Equal(t, []core.EdgeID{1, 2, 3, 4}, res.Traversed)
	assert.True(t, res.Closed())
	assert.True(t, res.Complete)
	assert.Empty(t, res.Deadheads)
	assert.Empty(t, res.Unbalanced)
	assert.Equal(t, core.NodeID(1), res.Start)
	assert.Equal(t, 10.0, res.TotalCost)
	assert.Equal(t, 10.0, res.OriginalCost)
	assert.Zero(t, res.WastedCost)
}

func TestSolve_EulerianDirected(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 1},
		{ID: 3, From: 3, To: 1, Weight: 1},
	})

	res, err := postman.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 1}, res.Circuit)
	assert.True(t, res.Complete)
	assert.Zero(t, res.WastedCost)
	coversAll(t, g, res.Traversed)
}

// TestSolve_TwoOddNodes: a path has exactly two odd nodes, so exactly one
// deadhead is added and the waste equals its weight.
func TestSolve_TwoOddNodes(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 2},
	}, core.WithBidirectional(true))

	res, err := postman.Solve(g)
	require.NoError(t, err)
	require.Len(t, res.Deadheads, 1)
	assert.Equal(t, core.Edge{ID: 3, From: 1, To: 3, Weight: 3}, res.Deadheads[0])
	assert.Equal(t, []core.NodeID{1, 3}, res.Unbalanced)
	assert.Equal(t, []core.NodeID{1, 2, 3, 1}, res.Circuit)
	assert.Equal(t, []core.EdgeID{1, 2, 3}, res.Traversed)
	assert.Equal(t, 6.0, res.TotalCost)
	assert.Equal(t, 3.0, res.WastedCost)
	assert.GreaterOrEqual(t, res.WastedCost, 0.0)
	assert.True(t, res.Complete)
}

// TestSolve_ExpandDeadheads replaces the synthetic hop 3→1 by 3→2→1.
func TestSolve_ExpandDeadheads(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 2},
	}, core.WithBidirectional(true))

	res, err := postman.Solve(g, postman.WithExpandDeadheads())
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 2, 1}, res.Circuit)
	assert.Equal(t, []core.EdgeID{1, 2, 2, 1}, res.Traversed)
	assert.Equal(t, 6.0, res.TotalCost, "costs are not affected by expansion")
	assert.Len(t, res.Deadheads, 1)
}

// TestSolve_DirectedOpenPath: one surplus/deficit pair is repaired by a
// deadhead from the deficit node to the surplus node.
func TestSolve_DirectedOpenPath(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 1},
		{ID: 3, From: 3, To: 1, Weight: 1},
		{ID: 4, From: 1, To: 3, Weight: 5},
	})

	res, err := postman.Solve(g)
	require.NoError(t, err)
	require.Len(t, res.Deadheads, 1)
	assert.Equal(t, core.Edge{ID: 5, From: 3, To: 1, Weight: 1}, res.Deadheads[0])
	assert.Equal(t, core.NodeID(1), res.Start, "walk starts at the surplus node")
	assert.Equal(t, []core.NodeID{1, 2, 3, 1, 3, 1}, res.Circuit)
	assert.Equal(t, 9.0, res.TotalCost)
	assert.Equal(t, 1.0, res.WastedCost)
	assert.True(t, res.Complete)
}

// TestSolve_DirectedImbalanceRejected: four nodes with |imbalance| = 2.
func TestSolve_DirectedImbalanceRejected(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3, 4), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 1, To: 3, Weight: 1},
		{ID: 3, From: 4, To: 2, Weight: 1},
		{ID: 4, From: 4, To: 3, Weight: 1},
	})

	_, err := postman.Solve(g)
	require.ErrorIs(t, err, postman.ErrGraphNotSolvable)
	var nse *postman.NotSolvableError
	require.True(t, errors.As(err, &nse))
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, nse.Nodes)
	assert.Contains(t, err.Error(), "more than one")
}

func TestSolve_DirectedTwoPairsRejected(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3, 4), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 3, To: 4, Weight: 1},
		{ID: 3, From: 2, To: 3, Weight: 1},
		{ID: 4, From: 3, To: 2, Weight: 1},
	})

	_, err := postman.Solve(g)
	require.ErrorIs(t, err, postman.ErrGraphNotSolvable)
}

func TestSolve_DirectedDisconnected(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3, 4), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 1, Weight: 1},
		{ID: 3, From: 3, To: 4, Weight: 1},
		{ID: 4, From: 4, To: 3, Weight: 1},
	})

	_, err := postman.Solve(g)
	var nse *postman.NotSolvableError
	require.ErrorAs(t, err, &nse)
	assert.Equal(t, []core.NodeID{3, 4}, nse.Nodes)
}

// TestSolve_DirectedOpenRoute: the deficit node cannot reach the surplus
// node, so no deadhead exists and the route stays open from 1 to 3.
func TestSolve_DirectedOpenRoute(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 1},
	})

	for _, walk := range []postman.Walk{postman.WalkHierholzer, postman.WalkGreedy} {
		t.Run(walk.String(), func(t *testing.T) {
			res, err := postman.Solve(g, postman.WithWalk(walk))
			require.NoError(t, err)
			assert.Equal(t, []core.NodeID{1, 2, 3}, res.Circuit)
			assert.Equal(t, []core.EdgeID{1, 2}, res.Traversed)
			assert.Empty(t, res.Deadheads)
			assert.Equal(t, []core.NodeID{1, 3}, res.Unbalanced)
			assert.Equal(t, core.NodeID(1), res.Start)
			assert.Equal(t, 2.0, res.TotalCost)
			assert.Zero(t, res.WastedCost)
			assert.True(t, res.Complete)
			assert.False(t, res.Closed())
		})
	}
}

// TestSolve_ContextCancelled: a done context aborts the directed
// connectivity precheck before any work.
func TestSolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := core.NewGraph(nodes(1, 2), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 1, Weight: 1},
	})

	_, err := postman.Solve(g, postman.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	res, err := postman.Solve(g, postman.WithContext(context.Background()))
	require.NoError(t, err)
	assert.True(t, res.Complete)
}

// bowtie: triangle 1-2-3 and triangle 2-4-5 sharing node 2.
func bowtie() *core.Graph {
	return core.NewGraph(nodes(1, 2, 3, 4, 5), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 1},
		{ID: 3, From: 3, To: 1, Weight: 1},
		{ID: 4, From: 2, To: 4, Weight: 1},
		{ID: 5, From: 4, To: 5, Weight: 1},
		{ID: 6, From: 5, To: 2, Weight: 1},
	}, core.WithBidirectional(true))
}

// TestSolve_WalkStrategies: the greedy walk closes the first triangle and gets
// stuck; Hierholzer splices the second triangle in.
func TestSolve_WalkStrategies(t *testing.T) {
	g := bowtie()

	greedy, err := postman.Solve(g, postman.WithWalk(postman.WalkGreedy))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 1}, greedy.Circuit)
	assert.False(t, greedy.Complete)
	assert.Equal(t, 3.0, greedy.TotalCost)
	assert.Equal(t, -3.0, greedy.WastedCost)

	full, err := postman.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 4, 5, 2, 3, 1}, full.Circuit)
	assert.True(t, full.Complete)
	assert.Zero(t, full.WastedCost)
	coversAll(t, g, full.Traversed)
}

// TestSolve_GreedyWalkReverses: with no arc leaving node 3, the greedy walk
// takes the unused arc 1→3 backwards.
func TestSolve_GreedyWalkReverses(t *testing.T) {
	g := core.NewGraph(nodes(1, 2, 3), []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 2},
		{ID: 2, From: 2, To: 3, Weight: 3},
		{ID: 3, From: 1, To: 3, Weight: 4},
	}, core.WithBidirectional(true))

	res, err := postman.Solve(g, postman.WithWalk(postman.WalkGreedy))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 1}, res.Circuit)
	assert.Equal(t, []core.EdgeID{1, 2, 3}, res.Traversed)
	assert.True(t, res.Complete)
	assert.Zero(t, res.WastedCost)
}

func TestSolve_ExactMatcher(t *testing.T) {
	// star with three leaves: four odd nodes
	g := core.NewGraph(nodes(0, 1, 2, 3), []core.Edge{
		{ID: 1, From: 0, To: 1, Weight: 1},
		{ID: 2, From: 0, To: 2, Weight: 1},
		{ID: 3, From: 0, To: 3, Weight: 10},
	}, core.WithBidirectional(true))

	greedy, err := postman.Solve(g)
	require.NoError(t, err)
	exact, err := postman.Solve(g, postman.WithMatcher(postman.ExactMatcher{}))
	require.NoError(t, err)

	assert.Len(t, exact.Deadheads, 2)
	assert.LessOrEqual(t, exact.TotalCost, greedy.TotalCost)
	assert.True(t, exact.Complete)
	assert.True(t, greedy.Complete)
	coversAll(t, g, exact.Traversed)
}

func TestSolve_EdgeIDsAndDangling(t *testing.T) {
	g := core.NewGraph(nodes(1, 2), []core.Edge{
		{ID: 10, From: 1, To: 2, Weight: 2},
		{ID: 40, From: 2, To: 99, Weight: 7}, // dangling, ignored
	}, core.WithBidirectional(true))

	res, err := postman.Solve(g)
	require.NoError(t, err)
	require.Len(t, res.Deadheads, 1)
	assert.Equal(t, core.EdgeID(41), res.Deadheads[0].ID)
	assert.Equal(t, 2.0, res.OriginalCost)
	assert.Equal(t, 4.0, res.TotalCost)
}

func TestSolve_Empty(t *testing.T) {
	res, err := postman.Solve(core.NewGraph(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, res.Circuit)
	assert.True(t, res.Complete)
	assert.Zero(t, res.TotalCost)
}

func TestSolve_Idempotent(t *testing.T) {
	g := bowtie()
	a, err := postman.Solve(g, postman.WithExpandDeadheads())
	require.NoError(t, err)
	b, err := postman.Solve(g, postman.WithExpandDeadheads())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
