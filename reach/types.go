// Package reach: options and sentinel errors shared by the query surface.
package reach

import (
	"context"
	"errors"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

// DefaultMaxDepth bounds iterative deepening when a caller has no better
// ceiling; deep enough to enumerate any realistic inter-region path.
const DefaultMaxDepth = 1000

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to a query.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrOptionViolation indicates an invalid option or argument value,
	// such as a negative depth ceiling or parallelism below 1.
	ErrOptionViolation = errors.New("reach: option violation")
)

// Option configures optional behavior of the reachability queries.
type Option func(*Options)

// Options holds configurable parameters for reachability queries.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is observed at every recursion point of the depth-limited
	// engine and between per-sink queries.
	Ctx context.Context

	// Reverse, if non-nil, is used by FindConnectedLimited instead of
	// computing g.Reverse() per call. Callers reusing one graph across many
	// queries control this caching.
	Reverse *graph.Graph

	// Parallelism is the number of goroutines for per-sink fan-out in
	// FindConnected and FindConnectedLimited. 1 (the default) keeps the
	// query fully synchronous.
	Parallelism int

	// err records an invalid option value, surfaced before any traversal.
	err error
}

// DefaultOptions returns Options with a background context, no precomputed
// reverse graph, and serial execution.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Parallelism: 1}
}

// WithContext returns an Option that sets the context for cancellation.
// A nil ctx has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReverseGraph returns an Option that supplies a precomputed reverse
// graph to FindConnectedLimited.
func WithReverseGraph(rg *graph.Graph) Option {
	return func(o *Options) {
		o.Reverse = rg
	}
}

// WithParallelism returns an Option that fans per-sink queries out over n
// goroutines. n < 1 is an ErrOptionViolation.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Parallelism = n
	}
}

// buildOptions folds opts over the defaults and surfaces any violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o, o.err
}
