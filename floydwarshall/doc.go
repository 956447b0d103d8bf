// Package floydwarshall computes all-pairs shortest paths over a dense
// core.WeightedGraph by dynamic-programming relaxation.
//
// What:
//
//   - FloydWarshall(g) copies the weight matrix and relaxes it with every
//     vertex k as an intermediate: dist[i][j] = min(dist[i][j], dist[i][k]+dist[k][j]).
//   - InPlace(m) is the bare kernel over an existing *matrix.Dense.
//
// Why:
//
//   - After iteration k, dist[i][j] is the shortest path whose intermediate
//     vertices all lie in [0,k]. The loop nest is therefore fixed: k outermost,
//     then i, then j.
//   - Negative arcs are tolerated. A negative cycle shows up as dist[i][i] < 0
//     and is reported as ErrNegativeCycle unless the check is disabled.
//
// Conventions:
//
//   - +Inf (core.Inf) means "no edge" on input and "unreachable" on output.
//   - An Inf diagonal (as left by MST-oriented generators) is treated as 0;
//     a finite diagonal is kept as given.
//   - The input graph is never modified.
//
// Complexity:
//
//   - Time O(n³), memory O(n²) for the result; the kernel allocates nothing.
//
// Errors:
//
//   - ErrNilGraph       nil graph.
//   - ErrNilMatrix      nil matrix passed to InPlace.
//   - ErrNegativeCycle  some dist[i][i] < 0 after relaxation.
package floydwarshall
