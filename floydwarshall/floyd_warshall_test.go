package floydwarshall_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dijkstra"
	"github.com/katalvlaran/densegraph/floydwarshall"
	"github.com/katalvlaran/densegraph/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inf = core.Inf

func mustGraph(t testing.TB, rows [][]float64) *core.WeightedGraph {
	t.Helper()
	g, err := core.FromMatrix(rows)
	require.NoError(t, err)

	return g
}

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomGraph mirrors the sparse generator: each vertex draws up to four
// neighbours with weights 1..10. directed keeps only one arc direction.
func randomGraph(t testing.TB, n int, seed int64, directed bool) *core.WeightedGraph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	b, err := core.NewBuilder(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for k := 0; k < 4; k++ {
			j := r.Intn(n)
			if j == i {
				continue
			}
			w := float64(1 + r.Intn(10))
			if directed {
				require.NoError(t, b.SetArc(i, j, w))
			} else {
				require.NoError(t, b.SetEdge(i, j, w))
			}
		}
	}

	return b.Build()
}

func TestFloydWarshall_NilGraph(t *testing.T) {
	_, err := floydwarshall.FloydWarshall(nil)
	assert.ErrorIs(t, err, floydwarshall.ErrNilGraph)
}

func TestFloydWarshall_K4(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 1, 4, 3},
		{1, 0, 2, 6},
		{4, 2, 0, 5},
		{3, 6, 5, 0},
	})
	got, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	want := mustDense(t, [][]float64{
		{0, 1, 3, 3},
		{1, 0, 2, 4},
		{3, 2, 0, 5},
		{3, 4, 5, 0},
	})
	assert.True(t, matrix.Equal(want, got), "got:\n%s", got)
	assert.Equal(t, 4.0, g.Weight(0, 2), "input must stay untouched")
}

func TestFloydWarshall_InfDiagonalBecomesZero(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{inf, 2, inf},
		{2, inf, inf},
		{inf, inf, inf},
	})
	got, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 2, inf},
		{2, 0, inf},
		{inf, inf, 0},
	}, got.ToRows())
}

func TestFloydWarshall_NegativeArcWithoutCycle(t *testing.T) {
	// 0→1 (4), 0→2 (1), 2→1 (-2): the best route to 1 goes through 2.
	g := mustGraph(t, [][]float64{
		{0, 4, 1},
		{inf, 0, inf},
		{inf, -2, 0},
	})
	got, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, 1}, got.ToRows()[0])
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 1},
		{-2, 0},
	})
	_, err := floydwarshall.FloydWarshall(g)
	assert.ErrorIs(t, err, floydwarshall.ErrNegativeCycle)

	got, err := floydwarshall.FloydWarshall(g, floydwarshall.WithoutNegativeCycleCheck())
	require.NoError(t, err)
	d00, _ := got.At(0, 0)
	assert.Less(t, d00, 0.0)
}

func TestInPlace(t *testing.T) {
	assert.ErrorIs(t, floydwarshall.InPlace(nil), floydwarshall.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, floydwarshall.InPlace(rect), matrix.ErrDimensionMismatch)

	m := mustDense(t, [][]float64{
		{0, 3, inf},
		{inf, 0, 1},
		{2, inf, 0},
	})
	require.NoError(t, floydwarshall.InPlace(m))
	assert.Equal(t, [][]float64{
		{0, 3, 4},
		{3, 0, 1},
		{2, 5, 0},
	}, m.ToRows())
}

// Both all-pairs engines must agree entrywise on non-negative inputs.
func TestFloydWarshall_MatchesDijkstra(t *testing.T) {
	for _, directed := range []bool{false, true} {
		for seed := int64(1); seed <= 8; seed++ {
			g := randomGraph(t, 30, seed, directed)

			fw, err := floydwarshall.FloydWarshall(g)
			require.NoError(t, err)
			dj, err := dijkstra.AllPairs(g)
			require.NoError(t, err)

			assert.True(t, matrix.Equal(fw, dj), "directed=%v seed=%d", directed, seed)
		}
	}
}

func TestFloydWarshall_SymmetricAndTriangle(t *testing.T) {
	g := randomGraph(t, 20, 99, false)
	d, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	ok, err := matrix.IsSymmetric(d)
	require.NoError(t, err)
	assert.True(t, ok)

	rows := d.ToRows()
	n := len(rows)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				assert.LessOrEqual(t, rows[i][j], rows[i][k]+rows[k][j])
			}
		}
	}
}
