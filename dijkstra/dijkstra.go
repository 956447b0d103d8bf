// Package dijkstra implements Dijkstra's shortest-path algorithm over a dense
// weight matrix, for one source (Dijkstra) or for every source (AllPairs).
//
// Implementation choices:
//
//   - An upfront O(n²) scan rejects negative weights (ErrNegativeWeight).
//   - Neighbors of u are the columns v != u with W[u][v] != Inf, scanned in
//     increasing index order.
//   - Lazy decrease-key: improved distances are pushed again and stale heap
//     entries are skipped when popped for an already finalized vertex.
//   - The heap orders by (distance, vertex): equal distances pop the lower
//     vertex index first. This fixes the push/pop sequence; it never changes
//     the final distances.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/matrix"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, +Inf if unreachable, dist[source] == 0.
//   - prev: predecessor slice when WithReturnPath() is set, nil otherwise.
//   - err:  ErrNilGraph, ErrSourceOutOfRange or ErrNegativeWeight.
//
// The input graph is never modified.
//
// Complexity:
//
//   - Time:  O(n² log n) on the dense matrix (every row scan is O(n)).
//   - Space: O(n + pushes) for dist, visited and the heap.
func Dijkstra(g *core.WeightedGraph, source int, opts ...Option) ([]float64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in a fixed order.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if source < 0 || source >= g.N() {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, g.N())
	}
	if !cfg.SkipWeightCheck {
		if err := checkWeights(g); err != nil {
			return nil, nil, err
		}
	}

	// 3) Run.
	r := newRunner(g, cfg)
	r.run(source)

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// AllPairs runs Dijkstra from every source and assembles the n×n distance
// matrix: row s is the distance vector from s. The negative-weight scan is
// performed once, not per source.
//
// Complexity: O(n) × O(n² log n) time, O(n²) space for the result.
func AllPairs(g *core.WeightedGraph, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.SkipWeightCheck {
		if err := checkWeights(g); err != nil {
			return nil, err
		}
	}
	cfg.ReturnPath = false

	n := g.N()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: AllPairs: %w", err)
	}

	// One runner is reused across sources; run() resets its state.
	r := newRunner(g, cfg)
	for s := 0; s < n; s++ {
		r.run(s)
		if err = out.SetRow(s, r.dist); err != nil {
			return nil, fmt.Errorf("dijkstra: AllPairs: %w", err)
		}
	}

	return out, nil
}

// PathTo rebuilds the vertex sequence source→…→target from a predecessor
// slice returned with WithReturnPath. Returns nil when target is unreachable
// or out of range.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	var rev []int
	for cur := target; cur != -1; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		if len(rev) > len(prev) {
			return nil // malformed prev
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// checkWeights fails fast with ErrNegativeWeight on the first negative arc.
func checkWeights(g *core.WeightedGraph) error {
	if i, j, ok := g.FirstNegativeEdge(); ok {
		return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, i, j, g.Weight(i, j))
	}

	return nil
}

// runner holds the mutable state for Dijkstra executions over one graph.
type runner struct {
	g       *core.WeightedGraph // read-only input
	options Options
	dist    []float64 // current best distance per vertex
	prev    []int     // predecessor per vertex, nil unless ReturnPath
	visited []bool    // finalized flags
	pq      nodePQ    // lazy min-heap
}

func newRunner(g *core.WeightedGraph, cfg Options) *runner {
	n := g.N()
	r := &runner{
		g:       g,
		options: cfg,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// run resets the state and computes distances from source.
// A fresh dist slice is allocated per call because callers keep it.
func (r *runner) run(source int) {
	n := r.g.N()
	r.dist = make([]float64, n)
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.visited[v] = false
		if r.prev != nil {
			r.prev[v] = -1
		}
	}
	r.pq = r.pq[:0]

	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u, d := item.id, item.dist

		// Stale entry: u was already finalized with a shorter distance.
		if r.visited[u] {
			continue
		}
		// Everything left in the heap is at least d away.
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve dist[v] through u for every neighbor v of u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) {
	n := r.g.N()
	du := r.dist[u]
	var (
		w, nd float64
		v     int
	)
	for v = 0; v < n; v++ {
		if v == u || r.visited[v] {
			continue
		}
		w = r.g.Weight(u, v)
		if w == core.Inf {
			continue
		}
		nd = du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a (distance, vertex) heap entry.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex index for a deterministic pop order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
