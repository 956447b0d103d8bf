// File: methods.go
// Role: constructors and read-only queries on WeightedGraph.
// Determinism:
//   - Neighbors() ascends by vertex index.
//   - Edges() / DirectedEdges() ascend lexicographically by (From, To).
// Immutability:
//   - Nothing here mutates g after construction; Matrix() and Rows() copy.

package core

import (
	"fmt"

	"github.com/katalvlaran/densegraph/matrix"
)

// FromMatrix builds a WeightedGraph from a square weight matrix.
// The input is deep-copied; later changes to rows do not affect the graph.
//
// Errors:
//   - ErrEmptyGraph if len(rows) == 0.
//   - ErrNotSquare  if any row length differs from len(rows).
//   - ErrBadWeight  if any entry is NaN or -Inf.
//
// Complexity: O(n²).
func FromMatrix(rows [][]float64) (*WeightedGraph, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		for j, w := range row {
			if !validWeight(w) {
				return nil, fmt.Errorf("FromMatrix: W[%d][%d]=%g: %w", i, j, w, ErrBadWeight)
			}
		}
	}

	w, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return newFromDense(w), nil
}

// NewWeightedGraph returns a graph of n isolated vertices: every off-diagonal
// entry is Inf and the diagonal is 0.
// Returns ErrEmptyGraph when n < 1.
// Complexity: O(n²).
func NewWeightedGraph(n int) (*WeightedGraph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// N returns the number of vertices.
func (g *WeightedGraph) N() int { return g.n }

// Weight returns W[i][j]: the edge weight, or Inf when there is no edge.
// i and j must lie in [0,N()); out-of-range indices panic like a slice index.
// Complexity: O(1).
func (g *WeightedGraph) Weight(i, j int) float64 {
	return g.rows[i][j]
}

// HasEdge reports whether a non-loop edge i→j exists (i != j and W[i][j] != Inf).
// Out-of-range indices report false.
func (g *WeightedGraph) HasEdge(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n || i == j {
		return false
	}

	return g.rows[i][j] != Inf
}

// Neighbors returns every v != u with W[u][v] != Inf, in ascending order.
// Returns ErrVertexOutOfRange for an invalid u.
// Complexity: O(n).
func (g *WeightedGraph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexOutOfRange)
	}
	var out []int
	for v, w := range g.rows[u] {
		if v != u && w != Inf {
			out = append(out, v)
		}
	}

	return out, nil
}

// Edges returns every undirected edge (i,j) with i < j and W[i][j] != Inf,
// ordered by (i, j) ascending. Only the upper triangle is read, so on an
// asymmetric matrix this is not the full arc set; see DirectedEdges.
// Complexity: O(n²).
func (g *WeightedGraph) Edges() []Edge {
	var out []Edge
	for i := 0; i < g.n; i++ {
		row := g.rows[i]
		for j := i + 1; j < g.n; j++ {
			if row[j] != Inf {
				out = append(out, Edge{From: i, To: j, Weight: row[j]})
			}
		}
	}

	return out
}

// DirectedEdges returns every arc (i,j) with i != j and W[i][j] != Inf,
// ordered by (i, j) ascending.
// Complexity: O(n²).
func (g *WeightedGraph) DirectedEdges() []Edge {
	var out []Edge
	for i := 0; i < g.n; i++ {
		for j, w := range g.rows[i] {
			if i != j && w != Inf {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// IsSymmetric reports whether W[i][j] == W[j][i] for all i, j, i.e. whether
// the graph can be treated as undirected.
// Complexity: O(n²); stops at the first mismatch.
func (g *WeightedGraph) IsSymmetric() bool {
	ok, _ := matrix.IsSymmetric(g.w) // g.w is square by construction

	return ok
}

// HasNegativeWeight reports whether any finite off-diagonal weight is < 0.
// Complexity: O(n²).
func (g *WeightedGraph) HasNegativeWeight() bool {
	_, _, found := g.FirstNegativeEdge()

	return found
}

// FirstNegativeEdge returns the first (i, j) in row-major order whose
// off-diagonal weight is negative, and whether one exists.
// Complexity: O(n²).
func (g *WeightedGraph) FirstNegativeEdge() (int, int, bool) {
	for i := 0; i < g.n; i++ {
		for j, w := range g.rows[i] {
			if i != j && w < 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// Matrix returns a deep copy of the weight matrix.
// Complexity: O(n²).
func (g *WeightedGraph) Matrix() *matrix.Dense {
	return g.w.Clone()
}

// Rows returns the weight matrix as a freshly allocated [][]float64.
// Complexity: O(n²).
func (g *WeightedGraph) Rows() [][]float64 {
	return g.w.ToRows()
}

// String renders the weight matrix, one row per line, Inf as "inf".
func (g *WeightedGraph) String() string {
	return g.w.String()
}
