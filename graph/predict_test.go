package graph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/graph"
	"github.com/katalvlaran/magn/internal/fixture"
	"github.com/katalvlaran/magn/schema"
)

func fixtureGraph(t *testing.T, opts ...graph.Option) *graph.Graph {
	t.Helper()
	tables, err := fixture.Reviews().Ordered()
	require.NoError(t, err)
	return built(t, tables, opts...)
}

// TestPredict_AcrossTables follows a child record to its review.
func TestPredict_AcrossTables(t *testing.T) {
	g := fixtureGraph(t)
	ctx := context.Background()

	got, err := g.Predict(ctx, schema.Row{"style": core.Text("electronic")}, "score")
	require.NoError(t, err)
	assert.Equal(t, core.Float(5.5), got)

	// "silber" labels reviews 1 and 4; both paths score the same and the
	// lower record handle is found first.
	got, err = g.Predict(ctx, schema.Row{"label": core.Text("silber")}, "score")
	require.NoError(t, err)
	assert.Equal(t, core.Float(3.0), got)

	got, err = g.Predict(ctx, schema.Row{"year": core.Int(2021)}, "genre")
	require.NoError(t, err)
	assert.Equal(t, core.Text("pop"), got)
}

// TestPredict_IgnoresTarget drops the target column from the row.
func TestPredict_IgnoresTarget(t *testing.T) {
	g := fixtureGraph(t)
	row := schema.Row{"style": core.Text("electronic"), "score": core.Float(99)}
	got, err := g.Predict(context.Background(), row, "score")
	require.NoError(t, err)
	assert.Equal(t, core.Float(5.5), got)
}

// TestPredict_Errors maps every failure to a lookup cause.
func TestPredict_Errors(t *testing.T) {
	g := fixtureGraph(t)
	ctx := context.Background()

	_, err := g.Predict(ctx, schema.Row{"style": core.Text("rock")}, "rating")
	assert.ErrorIs(t, err, core.ErrUnknownFeature)

	_, err = g.Predict(ctx, schema.Row{"mood": core.Text("sad")}, "score")
	assert.ErrorIs(t, err, core.ErrUnknownFeature)

	_, err = g.Predict(ctx, schema.Row{"style": core.Text("jazz")}, "score")
	assert.ErrorIs(t, err, core.ErrUnknownValue)

	_, err = g.Predict(ctx, schema.Row{}, "score")
	assert.ErrorIs(t, err, core.ErrNoPath)

	islands := built(t, []schema.Table{
		{Name: "left", Columns: []string{"x"}, Rows: []schema.Row{{"x": core.Text("v")}}},
		{Name: "right", Columns: []string{"y"}, Rows: []schema.Row{{"y": core.Int(1)}}},
	})
	_, err = islands.Predict(ctx, schema.Row{"x": core.Text("v")}, "y")
	require.ErrorIs(t, err, core.ErrNoPath)
	assert.ErrorIs(t, err, core.ErrLookup)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = g.Predict(cancelled, schema.Row{"style": core.Text("rock")}, "score")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPredict_Bounds applies the configured search limits.
func TestPredict_Bounds(t *testing.T) {
	shallow := fixtureGraph(t, graph.WithMaxDepth(2))
	_, err := shallow.Predict(context.Background(), schema.Row{"style": core.Text("electronic")}, "score")
	assert.ErrorIs(t, err, core.ErrNoPath)

	wide := fixtureGraph(t, graph.WithValueTraversal(), graph.WithMaxDepth(4))
	got, err := wide.Predict(context.Background(), schema.Row{"style": core.Text("electronic")}, "score")
	require.NoError(t, err)
	assert.True(t, got.Numeric())
}

// TestPredictBatch matches sequential predictions and surfaces the first error.
func TestPredictBatch(t *testing.T) {
	g := fixtureGraph(t, graph.WithPredictConcurrency(2))
	ctx := context.Background()

	var rows []schema.Row
	for _, s := range []string{"rock", "pop", "experimental", "electronic"} {
		rows = append(rows, schema.Row{"style": core.Text(s)})
	}
	got, err := g.PredictBatch(ctx, rows, "score")
	require.NoError(t, err)
	require.Len(t, got, len(rows))
	for i, row := range rows {
		want, err := g.Predict(ctx, row, "score")
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "row %d", i)
	}

	rows = append(rows, schema.Row{"style": core.Text("jazz")})
	_, err = g.PredictBatch(ctx, rows, "score")
	assert.ErrorIs(t, err, core.ErrUnknownValue)

	empty, err := g.PredictBatch(ctx, nil, "score")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
