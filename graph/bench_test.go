package graph_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/graph"
	"github.com/katalvlaran/magn/schema"
)

// wideTable has n rows over a handful of repeating genres.
func wideTable(n int) schema.Table {
	t := schema.Table{Name: "reviews", Columns: []string{"id", "genre", "score"}, PrimaryKeys: []string{"id"}}
	for i := 0; i < n; i++ {
		t.Rows = append(t.Rows, schema.Row{
			"id":    core.Int(int64(i)),
			"genre": core.Text(fmt.Sprintf("g%d", i%8)),
			"score": core.Float(float64(i%20) / 2),
		})
	}
	return t
}

// BenchmarkBuild measures assembly of a 1000-row table.
func BenchmarkBuild(b *testing.B) {
	tbl := wideTable(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := graph.New()
		_ = g.Build(context.Background(), tbl)
	}
}

// BenchmarkPredictBatch measures concurrent prediction over every genre.
func BenchmarkPredictBatch(b *testing.B) {
	g, _ := graph.New()
	_ = g.Build(context.Background(), wideTable(1000))
	rows := make([]schema.Row, 8)
	for i := range rows {
		rows[i] = schema.Row{"genre": core.Text(fmt.Sprintf("g%d", i))}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.PredictBatch(context.Background(), rows, "score")
	}
}
