package floydwarshall

import "errors"

// Sentinel errors for Floyd–Warshall.
var (
	// ErrNilGraph is returned when FloydWarshall receives a nil graph.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNilMatrix is returned when InPlace receives a nil matrix.
	ErrNilMatrix = errors.New("floydwarshall: matrix is nil")

	// ErrNegativeCycle is returned when relaxation drives a self-distance below zero.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")
)

// Options configures FloydWarshall.
type Options struct {
	// CheckNegativeCycle scans the diagonal after relaxation and fails with
	// ErrNegativeCycle when any entry is negative. Default true.
	CheckNegativeCycle bool
}

// Option is a functional option for FloydWarshall.
type Option func(*Options)

// WithoutNegativeCycleCheck skips the diagonal scan. With a negative cycle
// present the returned distances are then meaningless.
func WithoutNegativeCycleCheck() Option {
	return func(o *Options) {
		o.CheckNegativeCycle = false
	}
}

// DefaultOptions returns Options{CheckNegativeCycle: true}.
func DefaultOptions() Options {
	return Options{CheckNegativeCycle: true}
}
