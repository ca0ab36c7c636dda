package dfs

import (
	"context"
	"fmt"
	"sort"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for one topological sort.
type topoSorter struct {
	deps  map[string][]string
	opts  topoOptions
	state map[string]int
	order []string
}

// TopologicalSort orders the vertices of deps so that every vertex appears
// after all of the vertices it depends on. deps maps a vertex to its
// dependencies; every dependency must itself be a key of deps.
//
// Vertices and dependencies are visited in ascending name order, so the
// result is deterministic for a given map.
//
// Returns ErrGraphNil for a nil map, ErrUnknownVertex for a dangling
// dependency, ErrCycleDetected on a cycle (self-dependencies included), or
// the context error on cancellation.
func TopologicalSort(deps map[string][]string, options ...TopoOption) ([]string, error) {
	if deps == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := make([]string, 0, len(deps))
	for v := range deps {
		verts = append(verts, v)
	}
	sort.Strings(verts)

	sorter := &topoSorter{
		deps:  deps,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return sorter.order, nil
}

// visit emits every dependency of id before id itself.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	next := append([]string(nil), t.deps[id]...)
	sort.Strings(next)
	for _, d := range next {
		if _, ok := t.deps[d]; !ok {
			return fmt.Errorf("%w: %q (required by %q)", ErrUnknownVertex, d, id)
		}
		if err := t.visit(d); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
