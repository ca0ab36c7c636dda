package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// ErrInvalidConfig is returned when an Option or TrainConfig holds an
// out-of-range value.
var ErrInvalidConfig = errors.New("graph: invalid config")

// Options configures a Graph.
type Options struct {
	// Logger receives build and training progress. Defaults to a discard handler.
	Logger *slog.Logger

	// MaxDepth bounds the edges per search path; 0 means unlimited.
	MaxDepth int

	// MaxPaths bounds the paths per single search; 0 means unlimited.
	MaxPaths int

	// ValueTraversal lets searches pass through intermediate value elements,
	// including their chain neighbors, so transition weights take part in
	// scoring. Stimulation sums over edges, so longer paths along a chain
	// tend to outscore short direct ones; pair it with a small MaxDepth.
	ValueTraversal bool

	// PredictConcurrency bounds the workers used by PredictBatch.
	PredictConcurrency int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns unbounded search, no value traversal, one predict
// worker per CPU and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger:             slog.New(slog.DiscardHandler),
		PredictConcurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth bounds search path length. Negative values are rejected.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max depth must be >= 0, got %d", ErrInvalidConfig, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithMaxPaths bounds the paths returned by one search. Negative values are rejected.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max paths must be >= 0, got %d", ErrInvalidConfig, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithValueTraversal enables searches through intermediate value elements.
//
// Every extra edge adds to a path's stimulation, so with chains open the
// winning path is often the one that walks furthest along a value chain
// rather than the one sharing the most features with the input. On the
// three-row genre/score table a rock query predicts 7.5, the far end of the
// score chain, instead of 1.5. Bound the search with WithMaxDepth when
// enabling it.
func WithValueTraversal() Option {
	return func(o *Options) { o.ValueTraversal = true }
}

// WithPredictConcurrency sets the PredictBatch worker limit; n must be >= 1.
func WithPredictConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: predict concurrency must be >= 1, got %d", ErrInvalidConfig, n)
			return
		}
		o.PredictConcurrency = n
	}
}
