package graph

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/schema"
)

// Predict returns the target value best associated with row.
//
// The target column is ignored if present; every other feature of row must
// resolve. Features are searched in name order and the terminal value of the
// highest-stimulation path wins, earlier paths winning ties. When no path
// reaches target the error matches core.ErrNoPath.
func (g *Graph) Predict(ctx context.Context, row schema.Row, target string) (k core.Key, err error) {
	ctx, span := startSpan(ctx, "Graph.Predict", attribute.String("target", target))
	defer func() { endSpan(span, err) }()

	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.predict(ctx, row, target)
}

// PredictBatch predicts every row concurrently under one read lock, using at
// most the configured number of workers. The first failure cancels the rest.
func (g *Graph) PredictBatch(ctx context.Context, rows []schema.Row, target string) (out []core.Key, err error) {
	ctx, span := startSpan(ctx, "Graph.PredictBatch",
		attribute.String("target", target),
		attribute.Int("rows", len(rows)),
	)
	defer func() { endSpan(span, err) }()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out = make([]core.Key, len(rows))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.PredictConcurrency)
	for i, row := range rows {
		eg.Go(func() error {
			k, err := g.predict(ctx, row, target)
			if err != nil {
				return err
			}
			out[i] = k
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// predict does the work of Predict. Callers hold at least the read lock.
func (g *Graph) predict(ctx context.Context, row schema.Row, target string) (k core.Key, err error) {
	start := time.Now()
	defer func() {
		predictTotal.WithLabelValues(predictResult(err)).Inc()
		predictDuration.Observe(time.Since(start).Seconds())
	}()

	if _, ok := g.indexes[target]; !ok {
		return core.Key{}, &core.LookupError{Op: "predict", Feature: target, Err: core.ErrUnknownFeature}
	}
	activated, err := g.activate("predict", row.Without(target))
	if err != nil {
		return core.Key{}, err
	}

	var (
		best  core.ElementID = core.NoElement
		score float64
	)
	accept := g.toFeature(target)
	for _, from := range activated {
		found, err := g.paths(ctx, from, accept)
		if err != nil {
			return core.Key{}, err
		}
		for _, p := range found {
			s := stimulation(g.store, p)
			if best == core.NoElement || s > score {
				end, _ := p.Last().Element()
				best, score = end, s
			}
		}
	}
	if best == core.NoElement {
		return core.Key{}, &core.LookupError{Op: "predict", Feature: target, Err: core.ErrNoPath}
	}
	return g.store.Element(best).Key, nil
}

func predictResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, core.ErrNoPath):
		return "no_path"
	case errors.Is(err, core.ErrLookup):
		return "lookup"
	default:
		return "error"
	}
}
