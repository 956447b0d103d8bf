// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_complete.go: Complete() constructor.
//
// Contract:
//   • Every unordered pair {i,j}, i<j, becomes an edge; emission order i asc, j asc.
//   • Weights from cfg.weight(); no RNG needed (constant fallback).
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/densegraph/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n := b.N()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := setEdge(MethodComplete, b, i, j, cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
