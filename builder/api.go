// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the result.
//   - All topology factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same n, options, seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// Constructor writes a deterministic topology into b using the resolved
// builderConfig. Constructors MUST:
//   - Validate b.N() and their own parameters early and return sentinel errors.
//   - Emit edges in a stable, documented order.
//   - Draw weights only through cfg.weight() so that seeding controls them.
//
// Later constructors overwrite weights written by earlier ones.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates an n-vertex core.Builder whose diagonal follows the
// resolved config, applies all constructors in order and returns the frozen
// *core.WeightedGraph. Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity:
//   - O(n²) to allocate the matrix, plus Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices if n < 1 (core.ErrEmptyGraph is wrapped alongside).
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.WeightedGraph, error) {
	cfg := newBuilderConfig(bopts...)

	b, err := core.NewBuilder(n, core.WithDiagonal(cfg.diagonal))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w: %w", n, ErrTooFewVertices, err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}
