package graph_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/graph"
	"github.com/katalvlaran/magn/internal/fixture"
	"github.com/katalvlaran/magn/schema"
)

// ExampleGraph_Predict builds the review dataset and asks for the score of
// the review tagged "electronic" in the genres table.
func ExampleGraph_Predict() {
	ctx := context.Background()
	tables, err := fixture.Reviews().Ordered()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := graph.New(graph.WithMaxDepth(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Build(ctx, tables...); err != nil {
		fmt.Println("error:", err)
		return
	}

	score, err := g.Predict(ctx, schema.Row{"style": core.Text("electronic")}, "score")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Tables())
	fmt.Println("score:", score)
	// Output:
	// [reviews artists content genres labels years]
	// score: 5.5
}

// ExampleGraph_Fit trains on genre/score rows, then predicts.
func ExampleGraph_Fit() {
	ctx := context.Background()
	g, _ := graph.New()
	_ = g.Build(ctx, fixture.ReviewsTable())

	tc := graph.TrainConfig{Target: "score", Epochs: 10, LearningRate: 0.1}
	if err := g.Fit(ctx, fixture.ScoreRows(), tc); err != nil {
		fmt.Println("error:", err)
		return
	}
	score, err := g.Predict(ctx, schema.Row{"genre": core.Text("rap")}, "score")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("score:", score)
	// Output:
	// score: 7.5
}
