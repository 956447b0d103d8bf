// Package matrix provides the dense, row-major float64 storage shared by the
// graph model and the all-pairs shortest-path engines.
//
// What & Why:
//
//	Dense keeps r*c values in one flat slice, which gives O(1) random access
//	for the Floyd–Warshall inner loop and cache-friendly row scans for
//	Dijkstra, Prim and BFS. A DistanceMatrix returned by the shortest-path
//	packages is simply a *Dense of shape n×n.
//
// Conventions:
//
//	+Inf (math.Inf(1)) is a legal stored value and means "no edge" or
//	"unreachable". Equality helpers treat +Inf == +Inf as equal.
//
// Errors:
//
//	ErrInvalidDimensions  – r <= 0 or c <= 0 on construction.
//	ErrIndexOutOfBounds   – At/Set outside [0,r)×[0,c).
//	ErrDimensionMismatch  – non-square or differently shaped operands.
//	ErrNilMatrix          – nil receiver or argument.
//
// Complexity:
//
//	Rows, Cols, At, Set: O(1). Clone, IsSymmetric, Equal: O(r*c).
package matrix
