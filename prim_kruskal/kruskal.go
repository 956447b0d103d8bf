package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It sorts the edges by weight and merges components with a unionfind.UnionFind.
//
// Error Conditions (checked in this order, before any work):
//   - ErrNilGraph      : graph is nil.
//   - ErrDirected      : the weight matrix is not symmetric.
//   - ErrNoEdges       : n > 1 and no pair (i<j) has a finite weight; wrapped with ErrDisconnected.
//   - ErrDisconnected  : fewer than n-1 edges could be accepted.
//
// Steps:
//  1. Validate: graph != nil and graph.IsSymmetric().
//  2. n == 1 → trivial MST (no edges, weight 0).
//  3. Collect every edge (i,j) with i<j and W[i][j] != Inf, ordered by (i,j).
//  4. Stable sort by ascending weight: equal weights keep their (i,j) order.
//  5. Scan: each successful Union accepts the edge; stop at n-1 edges.
//  6. Fewer than n-1 accepted edges → ErrDisconnected.
//
// Complexity: O(n² + E log E) time with E <= n(n-1)/2, O(E + n) memory.
func Kruskal(graph *core.WeightedGraph) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	if !graph.IsSymmetric() {
		return nil, 0, ErrDirected
	}

	// 2. Single vertex: empty tree.
	n := graph.N()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Upper-triangle edges in (i,j) order.
	edges := graph.Edges()
	if len(edges) == 0 {
		return nil, 0, fmt.Errorf("%w: %w", ErrNoEdges, ErrDisconnected)
	}

	// 4. Stable sort keeps ties deterministic.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. Accept edges that join two components.
	var (
		uf          = unionfind.New(n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range edges {
		if !uf.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	// 6. A spanning tree has exactly n-1 edges.
	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("%w: %d components remain", ErrDisconnected, uf.Count())
	}

	return mst, totalWeight, nil
}
