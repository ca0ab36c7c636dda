// Package schema describes the normalized relational input: named tables of
// rows with primary and foreign key declarations.
//
// A Table is validated on its own (declared columns, key columns, row shape,
// one key family per column). A Dataset orders its tables with
// dfs.TopologicalSort so referenced tables precede referencing ones, which is
// the order graph.Build consumes them in.
//
// Key declarations may also come from YAML through LoadKeys.
//
// Every rejection is a *core.SchemaError and matches core.ErrSchema.
package schema
