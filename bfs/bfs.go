// Package bfs provides breadth-first search over a dense core.WeightedGraph,
// returning hop distances, parent links, and visit order from vertex 0.
//
// Neighbors of u are scanned in increasing column order over row u of the
// weight matrix: v is a neighbor when v != u and W[u][v] != Inf. Weights
// themselves are ignored.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// Source is the fixed start vertex of every traversal.
const Source = 0

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.WeightedGraph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from vertex 0,
// applying any number of functional Options.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
// On a hook error or cancellation the partial result is returned alongside it.
//
// Only the component of vertex 0 is explored; other components are not
// reported.
//
// Complexity: O(n²) time on the dense matrix, O(n) memory.
func BFS(g *core.WeightedGraph, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	n := g.N()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	// Seed queue with the source (no parent)
	w.enqueue(Source, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per vertex)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
// The queue never shrinks; head advances instead.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors scans row item.v in increasing column order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	u := item.v
	n := w.graph.N()
	for v := 0; v < n; v++ {
		if v == u || w.visited[v] || w.graph.Weight(u, v) == core.Inf {
			continue
		}
		if !w.opts.FilterNeighbor(u, v) {
			continue
		}
		w.enqueue(v, nextDepth, u)
	}
}
