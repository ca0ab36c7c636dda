// Package bfs provides tunable options and error definitions
// for breadth-first path enumeration over an associative graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/magn/core"
)

// Sentinel errors for path search.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrAcceptNil is returned if no target criterion is passed.
	ErrAcceptNil = errors.New("bfs: target criterion is nil")

	// ErrStartInvalid is returned when the start node carries no kind.
	ErrStartInvalid = errors.New("bfs: start node is invalid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Graph is the read-only view the search walks. core.Store satisfies it.
type Graph interface {
	Neighbors(n core.Node) []core.Node
}

// Accept reports whether an element node terminates a path.
// It is only ever called with element nodes.
type Accept func(id core.ElementID) bool

// Path is a sequence of nodes alternating between value elements and records,
// starting at the search origin and ending at an accepted element.
type Path []core.Node

// Last returns the terminal node of p.
func (p Path) Last() core.Node { return p[len(p)-1] }

func (p Path) contains(n core.Node) bool {
	for _, x := range p {
		if x == n {
			return true
		}
	}
	return false
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Paths is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize path search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, drops paths longer than MaxDepth edges.
	// A value of 0 disables the limit.
	MaxDepth int

	// MaxPaths, if > 0, stops the search once that many paths were found.
	// A value of 0 disables the limit.
	MaxPaths int

	// ValueTraversal lets paths pass through value elements that are not
	// accepted. By default an element is only entered when it ends the path.
	ValueTraversal bool

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor core.Node) bool

	// OnEnqueue is called when a partial path is enqueued, with its last
	// node and its length in edges.
	OnEnqueue func(n core.Node, depth int)

	// OnVisit is called when a partial path is dequeued. If it returns an
	// error, the search aborts and propagates that error.
	OnVisit func(n core.Node, depth int) error

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no depth or path-count limit
//   - value traversal disabled
//   - no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ core.Node) bool { return true },
		OnEnqueue:      func(core.Node, int) {},
		OnVisit:        func(core.Node, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds path length in edges.
//
//	d > 0: limit to d edges
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxPaths bounds the number of returned paths.
//
//	n > 0: stop after n paths
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithValueTraversal allows paths through non-accepted value elements.
func WithValueTraversal(enabled bool) Option {
	return func(o *Options) { o.ValueTraversal = enabled }
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n core.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
