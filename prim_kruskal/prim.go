package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// Prim computes the MST by growing a tree from vertex 0. It is PrimFrom(graph, 0).
func Prim(graph *core.WeightedGraph) ([]core.Edge, float64, error) {
	return PrimFrom(graph, 0)
}

// PrimFrom computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap of (minEdge, vertex) entries.
//
// Error Conditions:
//   - ErrNilGraph       : graph is nil.
//   - ErrDirected       : the weight matrix is not symmetric.
//   - ErrRootOutOfRange : root not in [0,n).
//   - ErrDisconnected   : fewer than n vertices were absorbed. A graph without
//     any edge is reported the same way.
//
// Steps:
//  1. Validate graph and root.
//  2. minEdge[root] = 0, every other minEdge = Inf; push (0, root).
//  3. Pop the smallest (w, u); skip u if already absorbed.
//  4. Absorb u: add minEdge[u] to the total and record the edge (parent[u], u).
//  5. For every unabsorbed v with W[u][v] < minEdge[v]: update minEdge[v] and
//     parent[v], push (W[u][v], v).
//  6. Queue drained with fewer than n absorbed vertices → ErrDisconnected.
//
// The total is summed at absorption time; minEdge of an unabsorbed vertex
// may still drop later and must not be read back afterwards.
//
// Complexity: O(n² log n) time on the dense matrix, O(n + pushes) memory.
func PrimFrom(graph *core.WeightedGraph, root int) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	if !graph.IsSymmetric() {
		return nil, 0, ErrDirected
	}
	n := graph.N()
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Initialize per-vertex state.
	var (
		minEdge     = make([]float64, n)
		parent      = make([]int, n)
		inTree      = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		absorbed    int
		totalWeight float64
	)
	for v := 0; v < n; v++ {
		minEdge[v] = core.Inf
		parent[v] = -1
	}
	minEdge[root] = 0

	pq := make(vertexPQ, 0, n)
	heap.Push(&pq, vertexItem{vertex: root, key: 0})

	for pq.Len() > 0 {
		// 3. Closest candidate.
		u := heap.Pop(&pq).(vertexItem).vertex
		if inTree[u] {
			continue
		}

		// 4. Absorb.
		inTree[u] = true
		absorbed++
		totalWeight += minEdge[u]
		if parent[u] >= 0 {
			mst = append(mst, core.Edge{From: parent[u], To: u, Weight: minEdge[u]})
		}

		// 5. Relax the row of u.
		for v := 0; v < n; v++ {
			if v == u || inTree[v] {
				continue
			}
			w := graph.Weight(u, v)
			if w < minEdge[v] {
				minEdge[v] = w
				parent[v] = u
				heap.Push(&pq, vertexItem{vertex: v, key: w})
			}
		}
	}

	// 6. Every vertex must have been absorbed.
	if absorbed < n {
		return nil, 0, fmt.Errorf("%w: reached %d of %d vertices from %d", ErrDisconnected, absorbed, n, root)
	}

	return mst, totalWeight, nil
}

// vertexItem is a candidate vertex keyed by its cheapest known connecting edge.
type vertexItem struct {
	vertex int
	key    float64
}

// vertexPQ implements heap.Interface as a min-heap ordered by (key, vertex).
type vertexPQ []vertexItem

// Len returns the number of entries in the priority queue.
func (pq vertexPQ) Len() int { return len(pq) }

// Less orders by key, then by vertex index so equal keys pop deterministically.
func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].vertex < pq[j].vertex
}

// Swap swaps elements at indices i and j.
func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a vertexItem. Called by heap.Push.
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(vertexItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
