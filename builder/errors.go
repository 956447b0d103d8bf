// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: n=3 < min=4: <sentinel>".
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum for the
// requested constructor (e.g. Path needs 2, Cycle needs 3, Wheel needs 4).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG in the resolved builderConfig (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates a vertex count that is large enough but has the wrong
// shape for the constructor (e.g. DisjointTriangles with n not divisible by 3).
var ErrBadSize = errors.New("builder: invalid size")

// ErrConstructFailed indicates an orchestration failure such as a nil
// Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownCategory indicates a CategoryByName lookup for an unregistered name.
var ErrUnknownCategory = errors.New("builder: unknown category")
