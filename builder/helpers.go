// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/densegraph/core"
)

// setEdge writes an undirected edge and wraps failures with method context.
func setEdge(method string, b *core.Builder, u, v int, w float64) error {
	if err := b.SetEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: SetEdge(%d,%d,w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// setArc writes a one-directional arc and wraps failures with method context.
func setArc(method string, b *core.Builder, u, v int, w float64) error {
	if err := b.SetArc(u, v, w); err != nil {
		return fmt.Errorf("%s: SetArc(%d→%d,w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// addPath connects lo-lo+1-…-hi-1 with weights from cfg.
// An empty or single-vertex range adds nothing.
// Complexity: O(hi-lo).
func addPath(method string, b *core.Builder, cfg builderConfig, lo, hi int) error {
	for i := lo; i+1 < hi; i++ {
		if err := setEdge(method, b, i, i+1, cfg.weight()); err != nil {
			return err
		}
	}

	return nil
}

// sampler draws k distinct values from [0,n) without replacement.
// The backing permutation is reused between draws.
type sampler struct {
	rng  *rand.Rand
	perm []int
}

func newSampler(rng *rand.Rand, n int) *sampler {
	return &sampler{rng: rng, perm: make([]int, n)}
}

// sample runs a partial Fisher–Yates shuffle and returns the first k slots.
// The returned slice aliases the sampler and is valid until the next call.
// Complexity: O(n) to reset plus O(k) swaps.
func (s *sampler) sample(k int) []int {
	n := len(s.perm)
	if k > n {
		k = n
	}
	for i := range s.perm {
		s.perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}

	return s.perm[:k]
}
