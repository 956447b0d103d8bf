// Package core declares WeightedGraph, Edge, the Inf sentinel and the
// package's sentinel errors.
package core

import (
	"errors"
	"math"

	"github.com/katalvlaran/densegraph/matrix"
)

// Inf is the "no edge / unreachable" sentinel weight. It is always +Inf;
// Go has no constant infinity, so it is a variable, and it must never be
// reassigned: every package compares weights against it.
var Inf = math.Inf(1)

// Sentinel errors for graph construction.
var (
	// ErrEmptyGraph indicates that a graph with zero vertices was requested.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrNotSquare indicates that the supplied weight matrix is not n×n.
	ErrNotSquare = errors.New("core: weight matrix is not square")

	// ErrBadWeight indicates a NaN or -Inf weight. +Inf means "no edge";
	// every finite value, including negatives and zero, is a valid weight.
	ErrBadWeight = errors.New("core: invalid edge weight")

	// ErrVertexOutOfRange indicates a vertex index outside [0,n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge is a weighted connection From→To between two vertex indices.
// For undirected graphs Edges() always reports From < To.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the finite cost of the edge.
	Weight float64
}

// WeightedGraph is an immutable dense graph over vertices 0..n-1.
//
// The zero value is not usable; construct through FromMatrix,
// NewWeightedGraph or Builder.Build.
type WeightedGraph struct {
	n    int           // vertex count
	w    *matrix.Dense // n×n weight matrix, never exposed directly
	rows [][]float64   // row views into w for O(1) Weight lookups
}

// newFromDense takes ownership of w and builds the row view table.
func newFromDense(w *matrix.Dense) *WeightedGraph {
	n := w.Rows()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = w.RowView(i)
	}

	return &WeightedGraph{n: n, w: w, rows: rows}
}

// validWeight reports whether w may be stored in a weight matrix.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, -1)
}
