// SPDX-License-Identifier: MIT
// Package: densegraph/harness
//
// runner.go: the sweep loop.
//
// Per category:
//   - one *rand.Rand seeded with Config.Seed drives every generated graph,
//     so a category's inputs do not depend on which other categories run;
//   - for each n in Config.NodeCounts(), Trials graphs are generated and the
//     algorithm is timed on each;
//   - a family that cannot be built at n (too few vertices, wrong shape)
//     records every trial at n as skipped; any other generator error is
//     fatal, and an algorithm error is a skipped trial.
//
// Cancellation is checked between trials.

package harness

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/core"
)

// Runner executes sweeps. It keeps no state between runs and may be reused.
type Runner struct {
	Config Config
	Logger *log.Logger
}

// NewRunner returns a Runner for cfg. A nil logger falls back to log.Default().
func NewRunner(cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}

	return &Runner{Config: cfg, Logger: logger}
}

// Run sweeps algo over cats.
//
// Errors:
//   - ErrBadConfig for an invalid Config.
//   - ErrNoCategories when cats is empty.
//   - a wrapped generator error when a category cannot produce a graph.
//   - ctx.Err() when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, algo Algorithm, cats []builder.Category) (*Report, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, ErrNoCategories
	}
	if algo.Run == nil {
		return nil, fmt.Errorf("%w: algorithm %q has no Run func", ErrBadConfig, algo.Name)
	}

	start := time.Now()
	rep := &Report{ID: uuid.NewString(), Algorithm: algo.Name, Config: r.Config}
	logger := r.Logger.With("run", rep.ID)
	for _, cat := range cats {
		logger.Info("measuring", "algorithm", algo.Name, "category", cat.Name)
		s, err := r.runCategory(ctx, logger, algo, cat)
		if err != nil {
			return nil, err
		}
		if s.Excluded {
			logger.Warn("category excluded: no successful trial", "algorithm", algo.Name, "category", cat.Name)
		}
		rep.Series = append(rep.Series, s)
	}
	rep.Elapsed = time.Since(start)
	logger.Debug("sweep finished", "algorithm", algo.Name, "elapsed", rep.Elapsed)

	return rep, nil
}

func (r *Runner) runCategory(ctx context.Context, logger *log.Logger, algo Algorithm, cat builder.Category) (Series, error) {
	rng := rand.New(rand.NewSource(r.Config.Seed))
	opts := []builder.BuilderOption{builder.WithRand(rng), builder.WithDiagonal(algo.Diagonal)}

	s := Series{Category: cat.Name, Excluded: true}
	for _, n := range r.Config.NodeCounts() {
		p := Point{N: n}
		var totalTime time.Duration
		var totalBytes uint64
		for trial := 0; trial < r.Config.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				return Series{}, err
			}
			g, err := cat.Generate(n, opts...)
			if tooSmall(err) {
				p.Skipped += r.Config.Trials - trial
				p.LastErr = err
				logger.Debug("category skipped", "category", cat.Name, "n", n, "err", err)
				break
			}
			if err != nil {
				return Series{}, fmt.Errorf("harness: generate %s n=%d: %w", cat.Name, n, err)
			}
			elapsed, allocated, err := measure(algo.Run, g)
			if err != nil {
				p.Skipped++
				p.LastErr = err
				logger.Debug("trial skipped", "category", cat.Name, "n", n, "trial", trial, "err", err)
				continue
			}
			p.Succeeded++
			totalTime += elapsed
			totalBytes += allocated
		}
		if p.OK() {
			p.MeanTime = totalTime / time.Duration(p.Succeeded)
			p.MeanBytes = totalBytes / uint64(p.Succeeded)
			s.Excluded = false
		}
		s.Points = append(s.Points, p)
	}

	return s, nil
}

// tooSmall reports whether a generator refused n because the family cannot
// be built at that size.
func tooSmall(err error) bool {
	return errors.Is(err, builder.ErrTooFewVertices) || errors.Is(err, builder.ErrBadSize)
}

// measure runs fn once and returns its wall time and the bytes it allocated.
func measure(fn func(*core.WeightedGraph) error, g *core.WeightedGraph) (time.Duration, uint64, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	err := fn(g)
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	return elapsed, after.TotalAlloc - before.TotalAlloc, err
}
