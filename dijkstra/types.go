// Package dijkstra defines sentinel errors and functional options for
// Dijkstra's shortest-path algorithm on a dense core.WeightedGraph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.WeightedGraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source index is outside [0,n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Dijkstra's greedy finalization is only correct for weights >= 0.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Dijkstra and AllPairs.
//
// ReturnPath      – if true, Dijkstra also returns the predecessor slice.
// MaxDistance     – vertices whose tentative distance exceeds this value are
//
//	neither finalized nor expanded; they stay at +Inf. Default +Inf.
//
// SkipWeightCheck – skip the O(n²) upfront scan for negative weights.
//
//	With negative weights present the result is then undefined.
type Options struct {
	ReturnPath      bool
	MaxDistance     float64
	SkipWeightCheck bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor slice.
// prev[v] == u means the shortest path to v ends with u→v; prev[source]
// and prev of unreachable vertices are -1.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative or NaN values, like the other option constructors.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(fmt.Sprintf("%s: got %g", ErrBadMaxDistance, max))
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithSkipWeightCheck disables the negative-weight pre-scan.
// Use it when the caller has already validated the graph.
func WithSkipWeightCheck() Option {
	return func(o *Options) {
		o.SkipWeightCheck = true
	}
}

// DefaultOptions returns the defaults: no predecessor slice, no distance
// cap, negative weights rejected.
func DefaultOptions() Options {
	return Options{
		ReturnPath:      false,
		MaxDistance:     math.Inf(1),
		SkipWeightCheck: false,
	}
}
