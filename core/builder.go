// File: builder.go
// Role: the only mutable path to a WeightedGraph. A Builder owns a private
// weight matrix; Build() hands out an independent copy, so the graph stays
// immutable even if the Builder is reused afterwards.

package core

import (
	"fmt"

	"github.com/katalvlaran/densegraph/matrix"
)

// BuilderOption configures a Builder before any edge is set.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	diagonal float64 // value placed on W[i][i]
}

// WithDiagonal sets the value stored on the diagonal (default 0).
// MST-oriented generators commonly use Inf; shortest-path inputs use 0.
// Panics on NaN or -Inf.
func WithDiagonal(v float64) BuilderOption {
	if !validWeight(v) {
		panic(fmt.Sprintf("core: WithDiagonal(%g)", v))
	}
	return func(c *builderConfig) {
		c.diagonal = v
	}
}

// Builder accumulates edges for a future WeightedGraph.
// It is not safe for concurrent use.
type Builder struct {
	n int
	w *matrix.Dense
}

// NewBuilder returns a Builder for n vertices with no edges.
// Returns ErrEmptyGraph when n < 1.
// Complexity: O(n²).
func NewBuilder(n int, opts ...BuilderOption) (*Builder, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, ErrEmptyGraph)
	}
	cfg := builderConfig{diagonal: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	w, err := matrix.NewFilled(n, n, Inf)
	if err != nil {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, err)
	}
	for i := 0; i < n; i++ {
		w.RowView(i)[i] = cfg.diagonal
	}

	return &Builder{n: n, w: w}, nil
}

// N returns the vertex count the Builder was created with.
func (b *Builder) N() int { return b.n }

// check validates indices and weight for SetEdge/SetArc.
func (b *Builder) check(op string, i, j int, w float64) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return fmt.Errorf("%s(%d,%d): %w", op, i, j, ErrVertexOutOfRange)
	}
	if !validWeight(w) {
		return fmt.Errorf("%s(%d,%d): weight %g: %w", op, i, j, w, ErrBadWeight)
	}

	return nil
}

// SetEdge stores an undirected edge: W[i][j] = W[j][i] = w.
// Passing Inf removes the edge. Later calls overwrite earlier ones.
func (b *Builder) SetEdge(i, j int, w float64) error {
	if err := b.check("SetEdge", i, j, w); err != nil {
		return err
	}
	b.w.RowView(i)[j] = w
	b.w.RowView(j)[i] = w

	return nil
}

// SetArc stores a one-directional arc: W[i][j] = w, W[j][i] untouched.
func (b *Builder) SetArc(i, j int, w float64) error {
	if err := b.check("SetArc", i, j, w); err != nil {
		return err
	}
	b.w.RowView(i)[j] = w

	return nil
}

// Weight returns the weight currently stored for (i,j).
// Indices must lie in [0,N()).
func (b *Builder) Weight(i, j int) float64 {
	return b.w.RowView(i)[j]
}

// Build returns an immutable WeightedGraph holding a copy of the current
// matrix. The Builder may keep being used; the returned graph is unaffected.
// Complexity: O(n²).
func (b *Builder) Build() *WeightedGraph {
	return newFromDense(b.w.Clone())
}
