package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/magn/core"
)

// queueItem is one partial path waiting to be extended.
type queueItem struct {
	path Path
}

func (q queueItem) node() core.Node { return q.path.Last() }
func (q queueItem) depth() int      { return len(q.path) - 1 }

// walker encapsulates mutable search state.
type walker struct {
	graph  Graph
	accept Accept
	opts   Options
	ctx    context.Context
	queue  []queueItem
	found  []Path
}

// Paths enumerates every simple path from start to an element accepted by
// accept, in breadth-first order.
//
// Cycle avoidance is per path: a node never repeats inside one path, but
// different paths may share nodes. A start element that is itself accepted
// yields the single-node path [start].
//
// Returns ErrGraphNil, ErrAcceptNil or ErrStartInvalid for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation, or
// any OnVisit error.
func Paths(g Graph, start core.Node, accept Accept, opts ...Option) ([]Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if accept == nil {
		return nil, ErrAcceptNil
	}
	if !start.IsElement() && !start.IsRecord() {
		return nil, ErrStartInvalid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:  g,
		accept: accept,
		opts:   o,
		ctx:    o.Ctx,
	}
	w.enqueue(Path{start})

	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.found, nil
}

// accepted reports whether n is an element matching the criterion.
func (w *walker) accepted(n core.Node) bool {
	id, ok := n.Element()
	return ok && w.accept(id)
}

func (w *walker) enqueue(p Path) {
	w.opts.OnEnqueue(p.Last(), len(p)-1)
	w.queue = append(w.queue, queueItem{path: p})
}

// loop processes the queue until empty, error, cancellation or the path limit.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(item.node(), item.depth()); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node(), err)
		}

		if w.accepted(item.node()) {
			w.found = append(w.found, item.path)
			if w.opts.MaxPaths > 0 && len(w.found) >= w.opts.MaxPaths {
				return nil
			}
			continue
		}
		w.extend(item)
	}
	return nil
}

// extend enqueues every admissible one-node extension of item.
func (w *walker) extend(item queueItem) {
	curr := item.node()
	nextDepth := item.depth() + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(curr) {
		if item.path.contains(nbr) {
			continue
		}
		if nbr.IsElement() && !w.opts.ValueTraversal && !w.accepted(nbr) {
			continue
		}
		if !w.opts.FilterNeighbor(curr, nbr) {
			continue
		}
		next := make(Path, len(item.path)+1)
		copy(next, item.path)
		next[len(item.path)] = nbr
		w.enqueue(next)
	}
}
