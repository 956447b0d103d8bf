// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/densegraph/core"
)

// ErrNilGraph indicates that a nil *core.WeightedGraph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDirected indicates an asymmetric weight matrix: W[i][j] != W[j][i] for
// some pair. No spanning tree is defined, so no work is done.
var ErrDirected = errors.New("prim_kruskal: graph is directed")

// ErrNoEdges indicates that Kruskal found no eligible edge at all on a graph
// with more than one vertex. It is always returned wrapped together with
// ErrDisconnected, so errors.Is(err, ErrDisconnected) also holds.
var ErrNoEdges = errors.New("prim_kruskal: graph has no edges")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrRootOutOfRange indicates a Prim start vertex outside [0,n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
// Kruskal ignores it. The total weight does not depend on the root; the
// order of the returned edges does.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (the fixed Prim start vertex).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    PrimFrom(graph, opts.Root).
//	– Otherwise:     ErrUnknownMethod.
//
// Returns the MST edges, their total weight and an error, exactly as the
// selected algorithm does.
func Compute(graph *core.WeightedGraph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return PrimFrom(graph, opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
