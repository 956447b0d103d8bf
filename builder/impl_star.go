// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// impl_star.go - Star and Wheel constructors.
//
// Contract:
//   - The hub is vertex 0 (HubVertex); leaves/rim are 1..n-1.
//   - Star: n ≥ 2; spokes 0-i emitted for i = 1..n-1 in ascending order.
//   - Wheel: n ≥ 4; rim cycle over 1..n-1 first, then the spokes.
//   - Weights from cfg.weight().
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/densegraph/core"

// HubVertex is the centre of Star and Wheel topologies. Using vertex 0 makes
// every BFS from the hub finish after one layer.
const HubVertex = 0

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
func Star() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodStar, b.N(), MinStarNodes); err != nil {
			return err
		}

		return addSpokes(MethodStar, b, cfg)
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel() Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		n := b.N()
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := addRing(MethodWheel, b, cfg, 1, n); err != nil {
			return err
		}

		return addSpokes(MethodWheel, b, cfg)
	}
}

// addSpokes links HubVertex to every other vertex.
func addSpokes(method string, b *core.Builder, cfg builderConfig) error {
	for i := 0; i < b.N(); i++ {
		if i == HubVertex {
			continue
		}
		if err := setEdge(method, b, HubVertex, i, cfg.weight()); err != nil {
			return err
		}
	}

	return nil
}
