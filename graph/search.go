package graph

import (
	"context"

	"github.com/katalvlaran/magn/bfs"
	"github.com/katalvlaran/magn/core"
)

// neighborer adapts the store to bfs.Graph. With chain set, an element also
// neighbors its chain predecessor and successor.
type neighborer struct {
	store *core.Store
	chain bool
}

func (n neighborer) Neighbors(v core.Node) []core.Node {
	out := n.store.Neighbors(v)
	if !n.chain {
		return out
	}
	id, ok := v.Element()
	if !ok {
		return out
	}
	e := n.store.Element(id)
	if e.Prev != core.NoElement {
		out = append(out, core.ElementRef(e.Prev))
	}
	if e.Next != core.NoElement {
		out = append(out, core.ElementRef(e.Next))
	}
	return out
}

// paths runs one bounded search from start. Callers hold g.mu.
func (g *Graph) paths(ctx context.Context, start core.ElementID, accept bfs.Accept) ([]bfs.Path, error) {
	found, err := bfs.Paths(
		neighborer{store: g.store, chain: g.opts.ValueTraversal},
		core.ElementRef(start),
		accept,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(g.opts.MaxDepth),
		bfs.WithMaxPaths(g.opts.MaxPaths),
		bfs.WithValueTraversal(g.opts.ValueTraversal),
	)
	if err != nil {
		return nil, err
	}
	searchPaths.Observe(float64(len(found)))
	return found, nil
}

// toElement accepts exactly one element.
func toElement(target core.ElementID) bfs.Accept {
	return func(id core.ElementID) bool { return id == target }
}

// toFeature accepts any element of feature.
func (g *Graph) toFeature(feature string) bfs.Accept {
	return func(id core.ElementID) bool { return g.store.Element(id).Feature == feature }
}
