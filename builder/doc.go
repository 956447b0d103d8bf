// Package builder generates dense weighted graphs for tests, examples and
// benchmark runs. Every generator is a Constructor applied by BuildGraph to
// a fresh core.Builder, and every result is an immutable *core.WeightedGraph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, opts, cons...): allocate, apply constructors in order, freeze.
//     – Category / Categories / CategoryByName: named families for benchmark runs.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG for stochastic constructors.
//     – WithDiagonal: 0 (shortest-path convention) or core.Inf (MST convention).
//     – WithWeightFn, WithConstantWeight, WithWeightRange, WithUniformWeight, WithNormalWeight.
//   - Stochastic constructors (need an RNG):
//     – RandomSparse(p), Directed(p): one Bernoulli trial per pair.
//     – NeighborSample(k), Sparse(), Dense(), Unweighted(), Cyclic(): k distinct
//     neighbour draws per vertex.
//     – Tree(): random recursive tree.
//   - Deterministic constructors:
//     – Path(), Disconnected(), Complete(), Cycle(), DisjointTriangles(), Star(), Wheel().
//
// Guarantees:
//
//   - Same n, options, seed and constructor order ⇒ identical matrices.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource or ErrBadSize.
//   - Every undirected constructor writes W[i][j] and W[j][i] together, so the
//     result passes IsSymmetric; Directed does not.
package builder
