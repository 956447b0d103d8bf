// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_path.go: Path and Disconnected constructors.
//
// Contract:
//   • Path: n ≥ 2; edges i-(i+1) for i = 0..n-2, in ascending i.
//   • Disconnected: n ≥ 2; two paths over [0,⌊n/2⌋) and [⌊n/2⌋,n) with no
//     edge between them. A half of size 1 is an isolated vertex.
//   • Weights come from cfg.weight(); with no RNG the default policy yields
//     DefaultEdgeWeight, so both constructors are usable without seeding.
//
// Complexity: O(n) edges on top of the O(n²) matrix.

package builder

import "github.com/katalvlaran/densegraph/core"

// Path returns a Constructor for the simple path P_n (an acyclic, connected graph).
func Path() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodPath, b.N(), MinPathNodes); err != nil {
			return err
		}

		return addPath(MethodPath, b, cfg, 0, b.N())
	}
}

// Disconnected returns a Constructor for two vertex-disjoint paths.
func Disconnected() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n := b.N()
		if err := validateMin(MethodDisconnected, n, MinDisconnectedNodes); err != nil {
			return err
		}
		half := n / 2
		if err := addPath(MethodDisconnected, b, cfg, 0, half); err != nil {
			return err
		}

		return addPath(MethodDisconnected, b, cfg, half, n)
	}
}
