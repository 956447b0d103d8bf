// Package core provides the immutable, dense WeightedGraph every algorithm
// package in densegraph consumes.
//
// The graph G = (V, W) is stored as an n×n weight matrix:
//
//   - Vertices are the integers 0..n-1.
//   - W[i][j] is the weight of edge (i,j), or Inf when there is no edge.
//   - Inf is distinct from 0: a zero-weight edge is a real edge.
//   - The diagonal is 0 by convention for shortest paths; MST algorithms
//     ignore it, so generators may leave it at Inf.
//   - An undirected graph is one whose matrix is symmetric; IsSymmetric is the
//     precondition gate used by the MST algorithms.
//
// Why a dense matrix?
//
//   - Floyd–Warshall needs O(1) random access over all n² pairs.
//   - Symmetry checks and "is there an edge" queries are single lookups.
//   - Dijkstra, Prim and BFS scan rows in increasing column order, which
//     gives them a deterministic neighbor order for free.
//
// Construction:
//
//	FromMatrix(rows)            // deep copy of a square [][]float64
//	NewWeightedGraph(n)         // n isolated vertices
//	NewBuilder(n, opts...)      // SetEdge / SetArc, then Build()
//
// A WeightedGraph has no mutators. Every accessor that returns a slice or a
// matrix returns a copy, so a graph can be shared freely between algorithm
// calls.
//
// Errors:
//
//	ErrEmptyGraph        - zero vertices requested.
//	ErrNotSquare         - input matrix is not n×n.
//	ErrBadWeight         - NaN or -Inf weight.
//	ErrVertexOutOfRange  - builder index outside [0,n).
package core
