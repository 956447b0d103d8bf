// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// and its all-pairs driver over a dense core.WeightedGraph with non-negative
// edge weights.
//
// Overview:
//
//   - Dijkstra(g, s) fills one row of the distance matrix: the minimum cost
//     from s to every vertex, +Inf where unreachable.
//   - AllPairs(g) runs Dijkstra from every source and returns the n×n
//     DistanceMatrix as a *matrix.Dense.
//   - A min-heap keyed by (distance, vertex) always expands the closest
//     unfinished vertex; ties pop the lower vertex index first.
//
// Key features:
//
//   - Functional options, as everywhere in densegraph.
//   - WithReturnPath: also return the predecessor slice; PathTo rebuilds a path.
//   - WithMaxDistance: stop expanding past a distance cap.
//   - WithSkipWeightCheck: trust the caller and skip the negative-weight scan.
//
// Performance and complexity (n = vertices):
//
//   - Dijkstra: O(n² log n) time on a dense matrix, O(n) extra memory plus
//     the lazy heap.
//   - AllPairs: n runs, O(n³ log n) time, O(n²) for the result.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         nil graph.
//   - ErrSourceOutOfRange: source not in [0,n).
//   - ErrNegativeWeight:   some off-diagonal weight is < 0 (fail fast).
//   - ErrBadMaxDistance:   panic from WithMaxDistance on a negative cap.
//
// Example:
//
//	dist, _, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist) // [0 1 3 3] for the K4 graph in the tests
//
// Cross-check: on any graph with non-negative weights AllPairs and
// floydwarshall.FloydWarshall produce identical matrices.
package dijkstra
