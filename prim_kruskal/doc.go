// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.WeightedGraph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - An MST of a connected undirected graph G = (V, E) is a subset T ⊆ E that
//     connects every vertex and minimizes the sum of weights. It has exactly
//     |V|−1 edges; success is defined by reaching that count.
//
//   - Both algorithms need an undirected graph. Symmetry of the weight matrix
//     (W[i][j] == W[j][i], Inf == Inf) is checked before any work and a
//     violation yields ErrDirected rather than a partial tree.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sort all edges (i<j, W != Inf) by weight with a stable sort, then scan
//     them with a unionfind.UnionFind, accepting every edge that joins two
//     components. Stops at |V|−1 edges.
//     Time O(n² + E log E), memory O(E + n).
//
//   - Prim(g) / PrimFrom(g, root) ([]core.Edge, float64, error)
//     Grow a single tree from vertex 0 (or root). A min-heap of
//     (minEdge[v], v) entries picks the next vertex; its minEdge is added to
//     the total when it is absorbed. Time O(n² log n) on the dense matrix.
//
//   - Compute(g, MSTOptions) dispatches by MethodKruskal / MethodPrim.
//
// Determinism
//
//   - Kruskal: Edges() lists pairs in (i,j) order and the sort is stable, so
//     equal weights are taken in (i,j) order.
//   - Prim: heap ties on weight pop the lower vertex index first.
//   - Both return the same total weight on any connected symmetric graph;
//     the edge sets agree whenever the MST is unique.
//
// Error Conditions
//
//	- ErrNilGraph        graph is nil.
//	- ErrDirected        asymmetric weight matrix.
//	- ErrNoEdges         Kruskal only: no edge at all on n > 1 vertices.
//	                     Always wrapped with ErrDisconnected.
//	- ErrDisconnected    no spanning tree covers all vertices.
//	- ErrRootOutOfRange  PrimFrom only.
//	- ErrUnknownMethod   Compute only.
//
// A single vertex is a valid graph: both algorithms return an empty edge
// list and weight 0.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
