package unionfind

import "fmt"

// UnionFind is a disjoint-set forest with path compression and union by rank.
// It is not safe for concurrent use; allocate one per algorithm invocation.
type UnionFind struct {
	parent []int // parent[x] == x for roots
	rank   []int // upper bound on subtree height, meaningful for roots only
	count  int   // number of disjoint sets remaining
}

// New returns a UnionFind over n singleton sets {0}, {1}, ..., {n-1}.
// Panics if n < 0.
func New(n int) *UnionFind {
	if n < 0 {
		panic(fmt.Sprintf("unionfind: New(%d): negative size", n))
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// mustIndex panics with a descriptive message for an out-of-range element.
func (uf *UnionFind) mustIndex(x int) {
	if x < 0 || x >= len(uf.parent) {
		panic(fmt.Sprintf("unionfind: element %d out of range [0,%d)", x, len(uf.parent)))
	}
}

// Find returns the root of x's set and compresses the path so that every
// visited node points directly at that root.
func (uf *UnionFind) Find(x int) int {
	uf.mustIndex(x)

	// First pass: locate the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// Second pass: repoint every node on the path at the root.
	for x != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y.
// Returns false, and changes nothing, when they already share a root.
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	// Attach the lower-rank tree under the higher-rank root.
	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
	uf.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Rank returns the rank recorded for x. Only meaningful when x is a root.
func (uf *UnionFind) Rank(x int) int {
	uf.mustIndex(x)

	return uf.rank[x]
}

// parentOf exposes the raw parent pointer for white-box tests.
func (uf *UnionFind) parentOf(x int) int {
	return uf.parent[x]
}
