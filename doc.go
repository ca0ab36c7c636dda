// Package magn is an associative-graph learner for relational data.
//
// 🚀 What is magn?
//
//	Every column of every table becomes one ordered index of distinct
//	values, and every row becomes a record node wired to its values and,
//	through foreign keys, to related rows. Training nudges node priorities
//	along the paths that join observed values to the true target; prediction
//	follows the strongest path to the target feature.
//
// ✨ Layout
//
//	core/      keys, value elements, records, the node store, error classes
//	index/     ordered 2-3 tree per feature with an ascending value chain
//	bfs/       all simple paths between a value and a target criterion
//	dfs/       topological ordering of table dependencies
//	schema/    tables, rows, key declarations (YAML), dataset ordering
//	ingest/    SQLite reader producing a schema.Dataset
//	graph/     assembly, Fit, Predict, PredictBatch, config, metrics, tracing
//
// Quick ASCII example:
//
//	genre="rock" ── reviews#0 ── score=1.5
//	                   │
//	                years#5 ── year=2020
//
//	one review linked to its genre and score, and to a years row by foreign key.
//
//	ds, _ := ingest.ReadSQLite(ctx, "reviews.db")
//	tables, _ := ds.Ordered()
//	g, _ := graph.New(graph.WithMaxDepth(6))
//	_ = g.Build(ctx, tables...)
//	_ = g.Fit(ctx, rows, graph.TrainConfig{Target: "score", Epochs: 50, LearningRate: 0.1})
//	score, _ := g.Predict(ctx, schema.Row{"genre": core.Text("rock")}, "score")
package magn
