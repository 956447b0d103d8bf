// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_cycle.go: Cycle and DisjointTriangles constructors.
//
// Contract:
//   • Cycle: n ≥ 3; edges i-(i+1)%n in ascending i.
//   • DisjointTriangles: n ≥ 3 and n % 3 == 0; triangles on {3t, 3t+1, 3t+2}
//     with no edge between different triangles. n == 6 is the classic
//     "two disjoint 3-cycles" fixture.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// Cycle returns a Constructor that builds the ring C_n over all vertices.
func Cycle() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n := b.N()
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		return addRing(MethodCycle, b, cfg, 0, n)
	}
}

// DisjointTriangles returns a Constructor that splits the vertices into n/3
// separate 3-cycles.
func DisjointTriangles() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n := b.N()
		if err := validateMin(MethodDisjointTriangles, n, MinCycleNodes); err != nil {
			return err
		}
		if n%3 != 0 {
			return fmt.Errorf("%s: n=%d not divisible by 3: %w", MethodDisjointTriangles, n, ErrBadSize)
		}
		for base := 0; base < n; base += 3 {
			if err := addRing(MethodDisjointTriangles, b, cfg, base, base+3); err != nil {
				return err
			}
		}

		return nil
	}
}

// addRing closes lo-lo+1-…-hi-1-lo. Requires hi-lo ≥ 3.
func addRing(method string, b *core.Builder, cfg builderConfig, lo, hi int) error {
	if err := addPath(method, b, cfg, lo, hi); err != nil {
		return err
	}

	return setEdge(method, b, hi-1, lo, cfg.weight())
}
