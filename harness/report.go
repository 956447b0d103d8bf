// SPDX-License-Identifier: MIT
// Package: densegraph/harness
//
// report.go: measurement results.

package harness

import "time"

// Point is the aggregate of all trials at one vertex count.
type Point struct {
	N         int
	Succeeded int
	Skipped   int
	// MeanTime and MeanBytes average over successful trials only; both are
	// zero when Succeeded == 0.
	MeanTime  time.Duration
	MeanBytes uint64
	// LastErr is the error of the most recent skipped trial, if any.
	LastErr error
}

// OK reports whether at least one trial succeeded.
func (p Point) OK() bool { return p.Succeeded > 0 }

// Series holds the points measured for one category.
type Series struct {
	Category string
	Points   []Point
	// Excluded is set when no trial succeeded at any vertex count.
	Excluded bool
}

// Report is the outcome of one Runner.Run call.
type Report struct {
	// ID identifies the run in CSV rows and logs.
	ID        string
	Algorithm string
	Config    Config
	Series    []Series
	Elapsed   time.Duration
}

// Excluded returns the names of the excluded categories, in report order.
func (r *Report) Excluded() []string {
	var out []string
	for _, s := range r.Series {
		if s.Excluded {
			out = append(out, s.Category)
		}
	}

	return out
}
