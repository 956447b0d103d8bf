package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/densegraph/bfs"
	"github.com/katalvlaran/densegraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds the undirected path 0-1-…-(n-1) with unit weights.
func chain(t testing.TB, n int) *core.WeightedGraph {
	t.Helper()
	b, err := core.NewBuilder(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, b.SetEdge(i, i+1, 1))
	}

	return b.Build()
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// negative MaxDepth is a violation
	g := chain(t, 2)
	if _, err := bfs.BFS(g, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// nil context is a violation
	var nilCtx context.Context
	if _, err := bfs.BFS(g, bfs.WithContext(nilCtx)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("nil context: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g, err := core.NewWeightedGraph(1)
	require.NoError(t, err)

	res, err := bfs.BFS(g)
	require.NoError(t, err)
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	assert.Equal(t, []int{0}, res.Depth)
	assert.Equal(t, []int{-1}, res.Parent)
}

// TestBFS_Chain5 is the reference visit order on a 5-vertex chain.
func TestBFS_Chain5(t *testing.T) {
	res, err := bfs.BFS(chain(t, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Depth)
	assert.Equal(t, []int{-1, 0, 1, 2, 3}, res.Parent)
}

// TestBFS_IncreasingIndexOrder: discovery order follows column order, not edge insertion.
func TestBFS_IncreasingIndexOrder(t *testing.T) {
	b, err := core.NewBuilder(6)
	require.NoError(t, err)
	require.NoError(t, b.SetEdge(0, 5, 1))
	require.NoError(t, b.SetEdge(0, 2, 9))
	require.NoError(t, b.SetEdge(0, 3, 0)) // zero weight is still an edge
	require.NoError(t, b.SetEdge(2, 4, 1))
	require.NoError(t, b.SetEdge(5, 1, 1))

	res, err := bfs.BFS(b.Build())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 5, 4, 1}, res.Order)
	assert.Equal(t, []int{0, 2, 1, 1, 2, 1}, res.Depth)
}

// TestBFS_OnlyComponentOfZero: other components are neither visited nor reported.
func TestBFS_OnlyComponentOfZero(t *testing.T) {
	b, err := core.NewBuilder(5)
	require.NoError(t, err)
	require.NoError(t, b.SetEdge(0, 1, 1))
	require.NoError(t, b.SetEdge(3, 4, 1))

	res, err := bfs.BFS(b.Build())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(3))
	assert.Equal(t, -1, res.Depth[4])

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_DirectedArcs: arcs are followed in their own direction only.
func TestBFS_DirectedArcs(t *testing.T) {
	b, err := core.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.SetArc(1, 0, 1))
	require.NoError(t, b.SetArc(0, 2, 1))

	res, err := bfs.BFS(b.Build())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Order)
}

// TestBFS_InfDiagonal: an Inf diagonal and a 0 diagonal behave the same.
func TestBFS_InfDiagonal(t *testing.T) {
	b, err := core.NewBuilder(3, core.WithDiagonal(core.Inf))
	require.NoError(t, err)
	require.NoError(t, b.SetEdge(0, 2, 1))
	require.NoError(t, b.SetEdge(2, 1, 1))

	res, err := bfs.BFS(b.Build())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, res.Order)
}

// TestBFS_PathTo reconstructs the fewest-hop path.
func TestBFS_PathTo(t *testing.T) {
	// Two routes to 4: 0-1-2-4 and 0-3-4.
	b, err := core.NewBuilder(5)
	require.NoError(t, err)
	require.NoError(t, b.SetEdge(0, 1, 1))
	require.NoError(t, b.SetEdge(1, 2, 1))
	require.NoError(t, b.SetEdge(2, 4, 1))
	require.NoError(t, b.SetEdge(0, 3, 1))
	require.NoError(t, b.SetEdge(3, 4, 1))

	res, err := bfs.BFS(b.Build())
	require.NoError(t, err)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = res.PathTo(9)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepth limits the explored layers.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(chain(t, 6), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(chain(t, 6), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
}

// TestBFS_FilterNeighbor prunes a single arc.
func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(chain(t, 4), bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 1 && nbr == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_Hooks checks hook ordering and abort-on-error.
func TestBFS_Hooks(t *testing.T) {
	var enq, deq []int
	res, err := bfs.BFS(chain(t, 3),
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnDequeue(func(v, _ int) { deq = append(deq, v) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, res.Order, deq)

	stop := errors.New("stop")
	res, err = bfs.BFS(chain(t, 5), bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

// TestBFS_Cancelled stops before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.BFS(chain(t, 3), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}
