// Package graph implements the associative graph: value elements grouped
// into one ordered index per feature, record nodes for source rows, and the
// training and prediction walks over them.
//
// What
//
//   - Build turns schema tables into indexes and records. Every record is
//     linked to the elements of its row and, through foreign keys, to every
//     record holding the referenced value.
//   - Fit strengthens or weakens node priorities along every path from a
//     row's observed values to its true target value.
//   - Predict scores every path from the observed values to any value of the
//     target feature and returns the best terminal value.
//   - PredictBatch runs Predict over many rows with bounded concurrency.
//
// Scoring
//
//	A path's stimulation is the sum of its edge stimuli:
//	  element→element  priority × transition weight toward the neighbor
//	  element↔record   element priority / element duplicates
//	  record→record    priority / duplicates of the second record
//
// Training
//
//	Per row, path stimulations are min-max normalized to s, and each
//	activated value gets a normalized delta d against the target (text: 0
//	when equal, else 1; numeric: target − value, text values 0). Every node
//	on a path is multiplied by 1 + lr·s when its start value's d is 0, and
//	by 1 − lr·d·s otherwise.
//
// Concurrency
//
//	Build and Fit are exclusive; Predict and PredictBatch share a read lock.
//
// Observability
//
//	Progress goes to the configured slog.Logger. Prometheus collectors
//	(magn_build_*, magn_search_paths, magn_fit_*, magn_predict_*) register on
//	the default registry, and Build, Fit, Predict and PredictBatch open
//	OpenTelemetry spans on the global tracer provider.
//
// Errors
//
//   - *core.SchemaError     Build input inconsistent; the graph is unchanged.
//   - *core.StructuralError internal invariant broken during Build.
//   - *core.LookupError     unknown feature, unindexed or missing value, no path.
//   - ErrInvalidConfig      bad Option or TrainConfig.
//   - ctx.Err()             on cancellation.
package graph
