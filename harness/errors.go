// SPDX-License-Identifier: MIT
// Package: densegraph/harness
//
// errors.go: sentinel errors for configuration and lookup failures.
// Algorithm errors raised while measuring are not surfaced as errors; they
// are counted as skipped trials.

package harness

import "errors"

var (
	// ErrBadConfig indicates an invalid sweep configuration.
	ErrBadConfig = errors.New("harness: invalid config")

	// ErrUnknownAlgorithm indicates a name absent from the registry.
	ErrUnknownAlgorithm = errors.New("harness: unknown algorithm")

	// ErrNoCategories indicates an empty category list.
	ErrNoCategories = errors.New("harness: no categories")
)
