// Package harness measures the densegraph algorithms empirically.
//
// A run sweeps one Algorithm over a list of builder.Category families and a
// range of vertex counts. For every (category, n) point it generates Trials
// fresh graphs, times each successful call and averages over the successful
// trials only. An algorithm that rejects a graph (for example Kruskal on a
// directed input) contributes a skipped trial, not a failure; a category in
// which every trial at every n was skipped is marked Excluded in the Report.
//
// Graph generation is seeded per category from Config.Seed, so two runs
// with the same Config produce the same graphs. Timings, of course, differ.
//
// Reports can be written as CSV (one row per point) or as an aligned text
// table with humanized allocation figures.
//
// Usage:
//
//	algo, _ := harness.AlgorithmByName("kruskal")
//	cats := builder.Categories()
//	r := harness.NewRunner(harness.DefaultConfig(), logger)
//	rep, err := r.Run(ctx, algo, cats)
//	if err != nil { ... }
//	_ = harness.WriteText(os.Stdout, rep)
package harness
