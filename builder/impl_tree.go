// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_tree.go: Tree() constructor.

package builder

import "github.com/katalvlaran/densegraph/core"

// Tree returns a Constructor for a random recursive tree: every vertex i ≥ 1
// links to a parent drawn uniformly from [0, i). The result is connected and
// acyclic with exactly n-1 edges. Requires an RNG.
//
// Complexity: O(n).
func Tree() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := requireRand(MethodTree, cfg); err != nil {
			return err
		}
		for i := 1; i < b.N(); i++ {
			parent := cfg.rng.Intn(i)
			if err := setEdge(MethodTree, b, i, parent, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
