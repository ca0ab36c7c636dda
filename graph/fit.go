package graph

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/magn/bfs"
	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/schema"
)

// sample is one training row resolved to element handles.
type sample struct {
	target    core.ElementID
	activated []core.ElementID
}

// Fit trains priorities on labeled rows. Each row must carry tc.Target and
// only features known to the graph, every value indexed.
//
// All rows are resolved before the first update, so a *core.LookupError
// leaves priorities untouched. Cancellation is checked between rows and
// inside searches; an interrupted Fit keeps the updates already applied.
func (g *Graph) Fit(ctx context.Context, rows []schema.Row, tc TrainConfig) (err error) {
	ctx, span := startSpan(ctx, "Graph.Fit",
		attribute.String("target", tc.Target),
		attribute.Int("rows", len(rows)),
		attribute.Int("epochs", tc.Epochs),
	)
	defer func() { endSpan(span, err) }()

	if err := tc.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	samples, err := g.resolveSamples(rows, tc.Target)
	if err != nil {
		return err
	}

	start := time.Now()
	defer func() { fitDuration.Observe(time.Since(start).Seconds()) }()
	for epoch := 1; epoch <= tc.Epochs; epoch++ {
		var updated int
		for _, s := range samples {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := g.train(ctx, s, tc.LearningRate)
			if err != nil {
				return err
			}
			updated += n
			fitRows.Inc()
		}
		g.opts.Logger.Debug("epoch done", "epoch", epoch, "rows", len(samples), "paths", updated)
	}
	g.opts.Logger.Info("fit done",
		"target", tc.Target,
		"rows", len(samples),
		"epochs", tc.Epochs,
		"elapsed", time.Since(start),
	)
	return nil
}

func (g *Graph) resolveSamples(rows []schema.Row, target string) ([]sample, error) {
	if _, ok := g.indexes[target]; !ok {
		return nil, &core.LookupError{Op: "fit", Feature: target, Err: core.ErrUnknownFeature}
	}
	out := make([]sample, 0, len(rows))
	for _, row := range rows {
		t, err := g.resolve("fit", target, row[target])
		if err != nil {
			return nil, err
		}
		activated, err := g.activate("fit", row.Without(target))
		if err != nil {
			return nil, err
		}
		out = append(out, sample{target: t, activated: activated})
	}
	return out, nil
}

// activate resolves every feature of row, visiting features by name.
func (g *Graph) activate(op string, row schema.Row) ([]core.ElementID, error) {
	names := make([]string, 0, len(row))
	for f := range row {
		names = append(names, f)
	}
	sort.Strings(names)
	out := make([]core.ElementID, 0, len(names))
	for _, f := range names {
		e, err := g.resolve(op, f, row[f])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// resolve maps one (feature, key) pair to its element.
func (g *Graph) resolve(op, feature string, key core.Key) (core.ElementID, error) {
	ix, ok := g.indexes[feature]
	if !ok {
		return core.NoElement, &core.LookupError{Op: op, Feature: feature, Err: core.ErrUnknownFeature}
	}
	if !key.Valid() {
		return core.NoElement, &core.LookupError{Op: op, Feature: feature, Err: core.ErrMissingValue}
	}
	e, ok := ix.Search(key)
	if !ok {
		return core.NoElement, &core.LookupError{Op: op, Feature: feature, Key: key, Err: core.ErrUnknownValue}
	}
	return e, nil
}

// train applies one update for s and returns the number of paths it used.
func (g *Graph) train(ctx context.Context, s sample, lr float64) (int, error) {
	var (
		paths  []bfs.Path
		owners []int
	)
	accept := toElement(s.target)
	for i, start := range s.activated {
		found, err := g.paths(ctx, start, accept)
		if err != nil {
			return 0, err
		}
		for _, p := range found {
			paths = append(paths, p)
			owners = append(owners, i)
		}
	}
	if len(paths) == 0 {
		return 0, nil
	}

	raw := make([]float64, len(paths))
	for i, p := range paths {
		raw[i] = stimulation(g.store, p)
	}
	stim := normalize(raw)

	neurons := make([]core.Key, len(s.activated))
	for i, e := range s.activated {
		neurons[i] = g.store.Element(e).Key
	}
	delta := deltas(g.store.Element(s.target).Key, neurons)

	for i, p := range paths {
		f := updateFactor(lr, delta[owners[i]], stim[i])
		for _, n := range p {
			g.store.Scale(n, f)
		}
	}
	return len(paths), nil
}
