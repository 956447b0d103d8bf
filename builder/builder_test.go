// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, determinism and weights.
package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs table-driven functional tests for each deterministic builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n           int
		ctor        builder.Constructor
		wantE       int // expected number of undirected edges
		sampleCheck func(t *testing.T, g *core.WeightedGraph)
	}{
		{
			name: "Path(4)", n: 4, ctor: builder.Path(), wantE: 3,
			sampleCheck: func(t *testing.T, g *core.WeightedGraph) {
				for i := 0; i < 3; i++ {
					assert.Equal(t, builder.DefaultEdgeWeight, g.Weight(i, i+1), "edge %d-%d", i, i+1)
				}
			},
		},
		{
			name: "Disconnected(6)", n: 6, ctor: builder.Disconnected(), wantE: 4,
			sampleCheck: func(t *testing.T, g *core.WeightedGraph) {
				for i := 0; i < 3; i++ {
					for j := 3; j < 6; j++ {
						assert.False(t, g.HasEdge(i, j), "cross edge %d-%d", i, j)
					}
				}
			},
		},
		{
			name: "Disconnected(3) isolates the last vertex", n: 3, ctor: builder.Disconnected(), wantE: 1,
			sampleCheck: func(t *testing.T, g *core.WeightedGraph) {
				nb, err := g.Neighbors(0)
				require.NoError(t, err)
				assert.Empty(t, nb)
				assert.True(t, g.HasEdge(1, 2))
			},
		},
		{name: "Complete(5)", n: 5, ctor: builder.Complete(), wantE: 10},
		{
			name: "Cycle(5)", n: 5, ctor: builder.Cycle(), wantE: 5,
			sampleCheck: func(t *testing.T, g *core.WeightedGraph) {
				assert.True(t, g.HasEdge(4, 0))
			},
		},
		{
			name: "DisjointTriangles(6)", n: 6, ctor: builder.DisjointTriangles(), wantE: 6,
			sampleCheck: func(t *testing.T, g *core.WeightedGraph) {
				assert.True(t, g.HasEdge(0, 2))
				assert.True(t, g.HasEdge(3, 5))
				assert.False(t, g.HasEdge(2, 3))
			},
		},
		{
			name: "Star(5)", n: 5, ctor: builder.Star(), wantE: 4,
			sampleCheck: func(t *testing.T, g *core.WeightedGraph) {
				nb, err := g.Neighbors(builder.HubVertex)
				require.NoError(t, err)
				assert.Equal(t, []int{1, 2, 3, 4}, nb)
			},
		},
		{
			name: "Wheel(5)", n: 5, ctor: builder.Wheel(), wantE: 8,
			sampleCheck: func(t *testing.T, g *core.WeightedGraph) {
				assert.True(t, g.HasEdge(4, 1), "rim must close")
			},
		},
		{name: "RandomSparse(1) without rng", n: 4, ctor: builder.RandomSparse(1), wantE: 6},
		{name: "RandomSparse(0)", n: 4, ctor: builder.RandomSparse(0), wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.N())
			assert.Len(t, g.Edges(), tc.wantE)
			assert.True(t, g.IsSymmetric())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Validation checks sentinel errors for invalid sizes and parameters.
func TestBuilders_Validation(t *testing.T) {
	tests := []struct {
		name string
		n    int
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", 1, builder.Path(), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", 2, builder.Cycle(), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", 3, builder.Wheel(), nil, builder.ErrTooFewVertices},
		{"Star(1)", 1, builder.Star(), nil, builder.ErrTooFewVertices},
		{"Disconnected(1)", 1, builder.Disconnected(), nil, builder.ErrTooFewVertices},
		{"DisjointTriangles(7)", 7, builder.DisjointTriangles(), nil, builder.ErrBadSize},
		{"RandomSparse(-0.1)", 5, builder.RandomSparse(-0.1), nil, builder.ErrInvalidProbability},
		{"Directed(NaN)", 5, builder.Directed(math.NaN()), nil, builder.ErrInvalidProbability},
		{"RandomSparse(0.5) no rng", 5, builder.RandomSparse(0.5), nil, builder.ErrNeedRandSource},
		{"Sparse no rng", 5, builder.Sparse(), nil, builder.ErrNeedRandSource},
		{"Tree no rng", 5, builder.Tree(), nil, builder.ErrNeedRandSource},
		{"nil constructor", 5, nil, nil, builder.ErrConstructFailed},
		{"n=0", 0, builder.Complete(), nil, builder.ErrTooFewVertices},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.n, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuilders_Stochastic covers the seeded samplers.
func TestBuilders_Stochastic(t *testing.T) {
	t.Run("Sparse is symmetric with weights in range", func(t *testing.T) {
		g, err := builder.BuildGraph(50, []builder.BuilderOption{builder.WithSeed(7)}, builder.Sparse())
		require.NoError(t, err)
		assert.True(t, g.IsSymmetric())
		require.NotEmpty(t, g.Edges())
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, float64(builder.MinWeight))
			assert.LessOrEqual(t, e.Weight, float64(builder.MaxWeight))
			assert.Equal(t, e.Weight, math.Trunc(e.Weight))
		}
	})

	t.Run("same seed same graph", func(t *testing.T) {
		a, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(3)}, builder.Cyclic())
		require.NoError(t, err)
		b, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(3)}, builder.Cyclic())
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), b.Rows())
	})

	t.Run("Dense draws a fifth of n per vertex", func(t *testing.T) {
		g, err := builder.BuildGraph(40, []builder.BuilderOption{builder.WithSeed(1)}, builder.Dense())
		require.NoError(t, err)
		for u := 0; u < g.N(); u++ {
			nb, err := g.Neighbors(u)
			require.NoError(t, err)
			// 8 draws, one of which may be u itself.
			assert.GreaterOrEqual(t, len(nb), 7, "vertex %d", u)
		}
	})

	t.Run("Unweighted ignores the weight policy", func(t *testing.T) {
		g, err := builder.BuildGraph(20,
			[]builder.BuilderOption{builder.WithSeed(2), builder.WithWeightRange(5, 9)},
			builder.Unweighted())
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
		}
	})

	t.Run("Tree has n-1 edges", func(t *testing.T) {
		g, err := builder.BuildGraph(25, []builder.BuilderOption{builder.WithSeed(11)}, builder.Tree())
		require.NoError(t, err)
		assert.Len(t, g.Edges(), 24)
		for v := 1; v < g.N(); v++ {
			nb, err := g.Neighbors(v)
			require.NoError(t, err)
			assert.NotEmpty(t, nb, "vertex %d", v)
		}
	})

	t.Run("Directed is asymmetric", func(t *testing.T) {
		g, err := builder.BuildGraph(10, []builder.BuilderOption{builder.WithSeed(5)}, builder.Directed(1))
		require.NoError(t, err)
		assert.Len(t, g.DirectedEdges(), 90)
		assert.False(t, g.IsSymmetric())
	})

	t.Run("constructors compose in order", func(t *testing.T) {
		g, err := builder.BuildGraph(5,
			[]builder.BuilderOption{builder.WithConstantWeight(2)},
			builder.Path(), builder.Star())
		require.NoError(t, err)
		// Path adds 4 edges, Star adds 0-2, 0-3, 0-4 (0-1 overlaps).
		assert.Len(t, g.Edges(), 7)
		assert.Equal(t, 2.0, g.Weight(0, 4))
	})
}

// TestBuilders_Diagonal checks the diagonal convention option.
func TestBuilders_Diagonal(t *testing.T) {
	g, err := builder.BuildGraph(3, nil, builder.Path())
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.Weight(1, 1))

	g, err = builder.BuildGraph(3, []builder.BuilderOption{builder.WithDiagonal(core.Inf)}, builder.Path())
	require.NoError(t, err)
	assert.Equal(t, core.Inf, g.Weight(1, 1))
	assert.Len(t, g.Edges(), 2)
}

// TestOptions_Panics verifies that option and WeightFn constructors reject meaningless input.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithDiagonal(math.NaN()) })
	assert.Panics(t, func() { builder.WithDiagonal(math.Inf(-1)) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.IntRangeWeightFn(5, 4) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 2) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
}

// TestWeightFns checks nil-RNG fallbacks and ranges.
func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 3.0, builder.IntRangeWeightFn(3, 8)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 4)(nil))
	assert.Equal(t, 4.5, builder.ConstantWeightFn(4.5)(nil))

	g, err := builder.BuildGraph(6,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(2, 4)},
		builder.Complete())
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.Less(t, e.Weight, 4.0)
	}

	g, err = builder.BuildGraph(6,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithNormalWeight(5, 1)},
		builder.Complete())
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.Equal(t, e.Weight, math.Round(e.Weight))
	}
}
