package graph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/graph"
	"github.com/katalvlaran/magn/schema"
)

// tableA has a primary key and one text column.
func tableA() schema.Table {
	return schema.Table{
		Name:        "a",
		Columns:     []string{"id", "name"},
		PrimaryKeys: []string{"id"},
		Rows: []schema.Row{
			{"id": core.Int(1), "name": core.Text("x")},
			{"id": core.Int(2), "name": core.Text("y")},
		},
	}
}

// tableB references tableA and carries one numeric column.
func tableB() schema.Table {
	return schema.Table{
		Name:        "b",
		Columns:     []string{"a_id", "weight"},
		ForeignKeys: []schema.ForeignKey{{Column: "a_id", RefTable: "a", RefColumn: "id"}},
		Rows: []schema.Row{
			{"a_id": core.Int(1), "weight": core.Float(0.5)},
			{"a_id": core.Int(2), "weight": core.Float(1.5)},
			{"a_id": core.Int(1), "weight": core.Float(2.5)},
		},
	}
}

// scoreTable is the three-row genre/score table.
func scoreTable() schema.Table {
	return schema.Table{
		Name:        "reviews",
		Columns:     []string{"id", "score", "genre"},
		PrimaryKeys: []string{"id"},
		Rows: []schema.Row{
			{"id": core.Int(0), "score": core.Float(1.5), "genre": core.Text("rock")},
			{"id": core.Int(1), "score": core.Float(3.0), "genre": core.Text("pop")},
			{"id": core.Int(2), "score": core.Float(7.5), "genre": core.Text("rap")},
		},
	}
}

func built(t *testing.T, tables []schema.Table, opts ...graph.Option) *graph.Graph {
	t.Helper()
	g, err := graph.New(opts...)
	require.NoError(t, err)
	require.NoError(t, g.Build(context.Background(), tables...))
	return g
}

func element(t *testing.T, g *graph.Graph, feature string, key core.Key) *core.Element {
	t.Helper()
	id, ok := g.Element(feature, key)
	require.True(t, ok, "%s=%s", feature, key)
	return g.Store().Element(id)
}
