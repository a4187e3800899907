package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsketch/builder"
	"github.com/katalvlaran/graphsketch/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		bidi  bool
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				for _, id := range g.NodeIDs() {
					assert.Zero(t, g.Imbalance(id), "directed cycle is balanced")
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				n, _ := g.Node(4)
				assert.Equal(t, 3*builder.DefaultSpacing, n.X)
				assert.Equal(t, builder.DefaultSpacing, g.Edges()[0].Weight)
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.OutDegree(1))
				for _, e := range g.Edges() {
					assert.Equal(t, builder.DefaultSpacing, e.Weight, "leaves sit one spacing from the hub")
				}
			},
		},
		{
			name: "Complete(4) bidirectional", ctor: builder.Complete(4), bidi: true, wantV: 4, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				for _, id := range g.NodeIDs() {
					assert.Equal(t, 3, g.Degree(id))
				}
			},
		},
		{
			name: "Complete(3) directed mirrors", ctor: builder.Complete(3), wantV: 3, wantE: 6,
		},
		{
			name: "Grid(2,3) bidirectional", ctor: builder.Grid(2, 3), bidi: true, wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				n, _ := g.Node(6)
				assert.Equal(t, core.Node{ID: 6, X: 200, Y: 100}, n)
				assert.Equal(t, 2, g.Degree(1))
				assert.Equal(t, 3, g.Degree(2))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithBidirectional(tc.bidi)}, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.bidi, g.Bidirectional())
			require.NoError(t, core.Validate(g))
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Path(2))
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, g.NodeIDs())
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge{ID: 2, From: 3, To: 4, Weight: 100}, edges[1])

	n3, _ := g.Node(3)
	assert.Equal(t, 200.0, n3.X, "second shape starts one spacing right of the first")
	require.NoError(t, core.Validate(g))
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := map[string]struct {
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		"cycle too small": {ctor: builder.Cycle(2), want: builder.ErrTooFewVertices},
		"path too small":  {ctor: builder.Path(1), want: builder.ErrTooFewVertices},
		"star too small":  {ctor: builder.Star(1), want: builder.ErrTooFewVertices},
		"grid zero":       {ctor: builder.Grid(0, 3), want: builder.ErrTooFewVertices},
		"complete zero":   {ctor: builder.Complete(0), want: builder.ErrTooFewVertices},
		"random no rng":   {ctor: builder.RandomGeometric(3), want: builder.ErrNeedRandSource},
		"nil constructor": {ctor: nil, want: builder.ErrConstructFailed},
		"bad radius": {
			opts: []builder.BuilderOption{builder.WithRadius(-1)},
			ctor: builder.Path(2), want: builder.ErrOptionViolation,
		},
		"bad uniform": {
			opts: []builder.BuilderOption{builder.WithUniformWeight(5, 1)},
			ctor: builder.Path(2), want: builder.ErrOptionViolation,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomGeometric_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithBidirectional(true), builder.WithRadius(200)}
	a, err := builder.BuildGraph(opts, builder.RandomGeometric(12))
	require.NoError(t, err)
	b, err := builder.BuildGraph(opts, builder.RandomGeometric(12))
	require.NoError(t, err)

	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Edges(), b.Edges())
	require.NoError(t, core.Validate(a))

	for _, e := range a.Edges() {
		assert.LessOrEqual(t, e.Weight, 200.01)
	}
}

func TestWeightFns(t *testing.T) {
	a := core.Node{ID: 1}
	b := core.Node{ID: 2, X: 1, Y: 1}

	assert.Equal(t, 1.41, builder.EuclideanWeightFn(a, b, nil))
	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(a, b, nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 9)(a, b, nil), "no rng falls back to min")

	w := builder.UniformWeightFn(2, 9)(a, b, rand.New(rand.NewSource(1)))
	assert.GreaterOrEqual(t, w, 2.0)
	assert.Less(t, w, 9.01)

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(3)}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 9.0, g.TotalWeight())
}
