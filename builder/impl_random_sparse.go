// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_random_sparse.go - stochastic constructors.
//
// Two sampling models live here:
//   - Bernoulli trials per pair (RandomSparse, Directed): include each
//     admissible pair independently with probability p.
//   - Neighbour draws per vertex (NeighborSample and the Sparse, Dense,
//     Unweighted, Cyclic shorthands): every vertex i draws k distinct
//     candidates from [0,n) and links to each candidate j != i. A draw of i
//     itself is simply dropped, so a vertex may end up with fewer than k new
//     neighbours.
//
// Contract:
//   - cfg.rng must be non-nil (ErrNeedRandSource), except RandomSparse with
//     p ∈ {0,1}, which is deterministic.
//   - Stable trial order: i asc, then j asc (undirected uses j>i).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densegraph/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like
// undirected graph: every pair {i,j}, i<j, is an edge with probability p.
func RandomSparse(p float64) Constructor {
	return bernoulli(MethodRandomSparse, p, false)
}

// Directed returns a Constructor that adds each ordered pair (i,j), i != j,
// as a one-directional arc with probability p. The result is almost surely
// asymmetric for non-trivial n, which the MST algorithms reject.
func Directed(p float64) Constructor {
	return bernoulli(MethodDirected, p, true)
}

func bernoulli(method string, p float64, directed bool) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		// 1) Validate parameters early.
		n := b.N()
		if err := validateProbability(method, p); err != nil {
			return err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if p > 0 && p < 1 {
			if err := requireRand(method, cfg); err != nil {
				return err
			}
		}
		if p == 0 {
			return nil
		}

		// 2) Trials in a stable order.
		var i, j int
		for i = 0; i < n; i++ {
			lo := i + 1
			if directed {
				lo = 0
			}
			for j = lo; j < n; j++ {
				if i == j {
					continue
				}
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				var err error
				if directed {
					err = setArc(method, b, i, j, cfg.weight())
				} else {
					err = setEdge(method, b, i, j, cfg.weight())
				}
				if err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// NeighborSample returns a Constructor where every vertex draws k distinct
// candidates and links to each of them with an undirected edge.
// k is clamped to [1, n-1] (at least one draw even on tiny graphs).
//
// Complexity: O(n²) time (one permutation reset per vertex), O(n) memory.
func NeighborSample(k int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		return neighborSample(MethodNeighborSample, b, cfg, k)
	}
}

func neighborSample(method string, b *core.Builder, cfg builderConfig, k int) error {
	if err := requireRand(method, cfg); err != nil {
		return err
	}
	n := b.N()
	if k > n-1 {
		k = n - 1
	}
	if k < 1 {
		k = 1
	}

	s := newSampler(cfg.rng, n)
	for i := 0; i < n; i++ {
		for _, j := range s.sample(k) {
			if j == i {
				continue
			}
			if err := setEdge(method, b, i, j, cfg.weight()); err != nil {
				return err
			}
		}
	}

	return nil
}

// Sparse draws SparseDegree neighbours per vertex.
func Sparse() Constructor {
	return NeighborSample(SparseDegree)
}

// Dense draws max(1, ⌊DenseFraction·n⌋) neighbours per vertex.
func Dense() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		k := int(math.Floor(float64(b.N()) * DenseFraction))

		return neighborSample(MethodDense, b, cfg, k)
	}
}

// Unweighted is Sparse with every weight fixed to DefaultEdgeWeight,
// regardless of the configured WeightFn.
func Unweighted() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		cfg.weightFn = ConstantWeightFn(DefaultEdgeWeight)

		return NeighborSample(SparseDegree)(b, cfg)
	}
}

// Cyclic is Sparse followed by ⌊n/2⌋ extra random edges, each between two
// distinct vertices, which guarantees redundant paths on most inputs.
func Cyclic() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n := b.N()
		if err := validateMin(MethodCyclic, n, MinPathNodes); err != nil {
			return err
		}
		if err := Sparse()(b, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodCyclic, err)
		}
		s := newSampler(cfg.rng, n)
		for e := 0; e < n/2; e++ {
			pair := s.sample(2)
			if err := setEdge(MethodCyclic, b, pair[0], pair[1], cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
