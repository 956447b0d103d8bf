// Package bfs provides breadth-first search over a dense core.WeightedGraph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from vertex 0. The source
//     is fixed; there is no start parameter.
//   - Returns a BFSResult containing:
//   - Order: visit sequence, starting with 0
//   - Depth: hop count per vertex, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for 0 and for unreached vertices
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Row u of the weight matrix is scanned in increasing column order, so the
//	visit order equals the order in which vertices are first discovered by
//	that scan. A chain 0-1-2-3-4 yields [0 1 2 3 4].
//
// Edges
//
//	v is a neighbor of u when v != u and W[u][v] != Inf. A weight of 0 is an
//	edge. Asymmetric matrices are followed in the arc direction only.
//
// Complexity (n = vertices)
//
//   - Time:   O(n²)  (one full row scan per visited vertex)
//   - Memory: O(n)   (queue, Depth, Parent, visited)
//
// Usage
//
//	res, err := bfs.BFS(g)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, context errors, or hook errors
//	}
//	path, err := res.PathTo(4)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath           from PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
