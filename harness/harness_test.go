package harness_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/harness"
)

func quietRunner(cfg harness.Config) *harness.Runner {
	return harness.NewRunner(cfg, log.New(io.Discard))
}

func smallConfig() harness.Config {
	return harness.Config{MinNodes: 6, MaxNodes: 12, Step: 3, Trials: 2, Seed: 42}
}

func mustCategories(t *testing.T, names ...string) []builder.Category {
	t.Helper()
	out := make([]builder.Category, 0, len(names))
	for _, name := range names {
		c, err := builder.CategoryByName(name)
		require.NoError(t, err)
		out = append(out, c)
	}

	return out
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, harness.DefaultConfig().Validate())

	bad := []harness.Config{
		{MinNodes: 0, MaxNodes: 10, Step: 1, Trials: 1},
		{MinNodes: 10, MaxNodes: 5, Step: 1, Trials: 1},
		{MinNodes: 1, MaxNodes: 5, Step: 0, Trials: 1},
		{MinNodes: 1, MaxNodes: 5, Step: 1, Trials: 0},
	}
	for _, c := range bad {
		assert.ErrorIs(t, c.Validate(), harness.ErrBadConfig, "%+v", c)
	}
}

func TestConfig_NodeCounts(t *testing.T) {
	assert.Equal(t, []int{6, 9, 12}, smallConfig().NodeCounts())
	assert.Equal(t, []int{10, 20}, harness.Config{MinNodes: 10, MaxNodes: 25, Step: 10}.NodeCounts())
	assert.Len(t, harness.DefaultConfig().NodeCounts(), 30)
}

func TestAlgorithmByName(t *testing.T) {
	var names []string
	for _, a := range harness.Algorithms() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"dijkstra", "floyd-warshall", "kruskal", "prim", "bfs"}, names)

	a, err := harness.AlgorithmByName("Prim")
	require.NoError(t, err)
	assert.Equal(t, core.Inf, a.Diagonal)

	_, err = harness.AlgorithmByName("bellman-ford")
	assert.ErrorIs(t, err, harness.ErrUnknownAlgorithm)
}

func TestAlgorithms_RunOnSmallGraph(t *testing.T) {
	cat, err := builder.CategoryByName("complete")
	require.NoError(t, err)
	for _, a := range harness.Algorithms() {
		g, err := cat.Generate(8, builder.WithDiagonal(a.Diagonal))
		require.NoError(t, err)
		assert.NoError(t, a.Run(g), a.Name)
	}
}

func TestRun_Errors(t *testing.T) {
	algo, err := harness.AlgorithmByName("bfs")
	require.NoError(t, err)
	cats := mustCategories(t, "acyclic")

	_, err = quietRunner(harness.Config{}).Run(context.Background(), algo, cats)
	assert.ErrorIs(t, err, harness.ErrBadConfig)

	_, err = quietRunner(smallConfig()).Run(context.Background(), algo, nil)
	assert.ErrorIs(t, err, harness.ErrNoCategories)

	_, err = quietRunner(smallConfig()).Run(context.Background(), harness.Algorithm{Name: "x"}, cats)
	assert.ErrorIs(t, err, harness.ErrBadConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = quietRunner(smallConfig()).Run(ctx, algo, cats)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_SkippedPointsAndAverages(t *testing.T) {
	errSmall := errors.New("too small")
	algo := harness.Algorithm{
		Name: "fake",
		Run: func(g *core.WeightedGraph) error {
			if g.N() < 9 {
				return errSmall
			}
			return nil
		},
	}
	rep, err := quietRunner(smallConfig()).Run(context.Background(), algo, mustCategories(t, "acyclic"))
	require.NoError(t, err)
	require.Len(t, rep.Series, 1)

	s := rep.Series[0]
	assert.Equal(t, "acyclic", s.Category)
	assert.False(t, s.Excluded)
	require.Len(t, s.Points, 3)

	first := s.Points[0]
	assert.Equal(t, 6, first.N)
	assert.False(t, first.OK())
	assert.Equal(t, 2, first.Skipped)
	assert.Zero(t, first.MeanTime)
	assert.ErrorIs(t, first.LastErr, errSmall)

	for _, p := range s.Points[1:] {
		assert.True(t, p.OK(), "n=%d", p.N)
		assert.Equal(t, 2, p.Succeeded)
		assert.Zero(t, p.Skipped)
	}
}

func TestRun_KruskalExcludesInapplicableCategories(t *testing.T) {
	algo, err := harness.AlgorithmByName("kruskal")
	require.NoError(t, err)
	rep, err := quietRunner(smallConfig()).Run(context.Background(), algo,
		mustCategories(t, "directed", "disconnected", "acyclic", "complete"))
	require.NoError(t, err)

	assert.Equal(t, []string{"directed", "disconnected"}, rep.Excluded())
	assert.Equal(t, "kruskal", rep.Algorithm)
	assert.Len(t, rep.ID, 36)
	assert.GreaterOrEqual(t, rep.Elapsed, time.Duration(0))
}

func TestRun_DeterministicInputs(t *testing.T) {
	var sizes [][]int
	record := func(dst *[]int) harness.Algorithm {
		return harness.Algorithm{Name: "edges", Run: func(g *core.WeightedGraph) error {
			*dst = append(*dst, len(g.Edges()))
			return nil
		}}
	}
	for i := 0; i < 2; i++ {
		var got []int
		_, err := quietRunner(smallConfig()).Run(context.Background(), record(&got), mustCategories(t, "sparse"))
		require.NoError(t, err)
		sizes = append(sizes, got)
	}
	assert.Equal(t, sizes[0], sizes[1])
}

func TestRun_SizesBelowCategoryMinimumAreSkipped(t *testing.T) {
	algo, err := harness.AlgorithmByName("bfs")
	require.NoError(t, err)
	cfg := harness.Config{MinNodes: 2, MaxNodes: 6, Step: 1, Trials: 2, Seed: 1}
	require.NoError(t, cfg.Validate())

	rep, err := quietRunner(cfg).Run(context.Background(), algo, builder.Categories())
	require.NoError(t, err)
	require.Len(t, rep.Series, len(builder.Categories()))

	byName := make(map[string]harness.Series, len(rep.Series))
	for _, s := range rep.Series {
		byName[s.Category] = s
	}

	ring := byName["ring"]
	require.Len(t, ring.Points, 5)
	assert.False(t, ring.Excluded)
	assert.Equal(t, 2, ring.Points[0].N)
	assert.False(t, ring.Points[0].OK())
	assert.Equal(t, 2, ring.Points[0].Skipped)
	assert.ErrorIs(t, ring.Points[0].LastErr, builder.ErrTooFewVertices)
	assert.True(t, ring.Points[1].OK(), "ring n=3")

	wheel := byName["wheel"]
	require.Len(t, wheel.Points, 5)
	for _, p := range wheel.Points[:2] {
		assert.Equal(t, 2, p.Skipped, "wheel n=%d", p.N)
		assert.ErrorIs(t, p.LastErr, builder.ErrTooFewVertices)
	}
	assert.True(t, wheel.Points[2].OK(), "wheel n=4")
}
