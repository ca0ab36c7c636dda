package graph

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/index"
	"github.com/katalvlaran/magn/schema"
)

// Build adds tables to the graph. Tables must arrive referenced before
// referencing, either within this batch or across earlier calls; see
// schema.Dataset.Ordered.
//
// The whole batch is validated before anything is mutated, and any
// *core.SchemaError leaves the graph unchanged. ctx is observed once, before
// the first mutation; a batch that has started is always built in full. A
// value missing from its own index after insertion is a *core.StructuralError.
func (g *Graph) Build(ctx context.Context, tables ...schema.Table) (err error) {
	ctx, span := startSpan(ctx, "Graph.Build", attribute.Int("tables", len(tables)))
	defer func() { endSpan(span, err) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validateBatch(tables); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	for i := range tables {
		if err := g.buildTable(&tables[i]); err != nil {
			return err
		}
	}
	g.opts.Logger.Info("graph built",
		"tables", len(tables),
		"features", len(g.features),
		"elements", g.store.ElementCount(),
		"records", g.store.RecordCount(),
		"elapsed", time.Since(start),
	)
	return nil
}

// buildTable indexes the feature columns of t, then creates and links one
// record per row.
func (g *Graph) buildTable(t *schema.Table) error {
	elementsBefore := g.store.ElementCount()
	features := t.FeatureColumns()
	for _, col := range features {
		ix := index.New(col, g.store)
		for _, row := range t.Rows {
			if _, err := ix.Insert(row[col]); err != nil {
				return fmt.Errorf("graph: build %q: %w", t.Name, err)
			}
		}
		g.addFeature(ix)
	}

	bt := &builtTable{
		name:        t.Name,
		features:    features,
		foreignKeys: append([]schema.ForeignKey(nil), t.ForeignKeys...),
		records:     make([]core.RecordID, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		r := g.store.NewRecord(t.Name)
		for _, col := range t.Columns {
			if t.IsForeignKey(col) {
				continue
			}
			e, err := g.resolveBuilt(col, row[col])
			if err != nil {
				return err
			}
			g.store.Attach(e, r)
		}
		for _, fk := range t.ForeignKeys {
			e, err := g.resolveBuilt(fk.RefColumn, row[fk.Column])
			if err != nil {
				return err
			}
			for _, other := range g.store.Element(e).Records() {
				g.store.Link(other, r)
			}
		}
		bt.records = append(bt.records, r)
	}
	g.tables[t.Name] = bt
	g.order = append(g.order, t.Name)

	added := g.store.ElementCount() - elementsBefore
	buildRecords.Add(float64(len(bt.records)))
	buildElements.Add(float64(added))
	g.opts.Logger.Info("table built",
		"table", t.Name,
		"records", len(bt.records),
		"features", len(features),
		"elements", added,
	)
	return nil
}

// resolveBuilt finds key in a feature that assembly has already populated.
func (g *Graph) resolveBuilt(feature string, key core.Key) (core.ElementID, error) {
	ix, ok := g.indexes[feature]
	if !ok {
		return core.NoElement, &core.StructuralError{Feature: feature, Op: "build", Msg: "feature has no index"}
	}
	e, ok := ix.Search(key)
	if !ok {
		return core.NoElement, &core.StructuralError{
			Feature: feature,
			Op:      "build",
			Msg:     fmt.Sprintf("value %s absent from a built index", key),
		}
	}
	return e, nil
}

// pendingColumn holds the sorted values an earlier table of the batch will
// insert into one feature.
type pendingColumn []core.Key

func (p pendingColumn) contains(k core.Key) bool {
	i := sort.Search(len(p), func(i int) bool { return p[i].Compare(k) >= 0 })
	return i < len(p) && p[i].Equal(k)
}

// validateBatch runs every schema check of Build without touching the graph.
func (g *Graph) validateBatch(tables []schema.Table) error {
	batchTables := make(map[string]*schema.Table, len(tables))
	batchFeatures := make(map[string]string)
	pending := make(map[string]pendingColumn)

	for i := range tables {
		t := &tables[i]
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := g.tables[t.Name]; ok {
			return &core.SchemaError{Table: t.Name, Msg: "table already built"}
		}
		if _, ok := batchTables[t.Name]; ok {
			return &core.SchemaError{Table: t.Name, Msg: "table appears twice in the batch"}
		}

		for _, fk := range t.ForeignKeys {
			if err := g.validateForeignKey(t, fk, batchTables, pending); err != nil {
				return err
			}
		}

		for _, col := range t.FeatureColumns() {
			if _, ok := g.indexes[col]; ok {
				return &core.SchemaError{Table: t.Name, Column: col, Msg: "feature name already used by a built table"}
			}
			if other, ok := batchFeatures[col]; ok {
				return &core.SchemaError{Table: t.Name, Column: col, Msg: fmt.Sprintf("feature name also used by table %q", other)}
			}
			batchFeatures[col] = t.Name

			vals := make(pendingColumn, 0, len(t.Rows))
			for _, row := range t.Rows {
				vals = append(vals, row[col])
			}
			sort.Slice(vals, func(a, b int) bool { return vals[a].Less(vals[b]) })
			pending[col] = vals
		}
		batchTables[t.Name] = t
	}
	return nil
}

// validateForeignKey checks that fk points at an indexed column of a table
// built earlier, and that every referencing value exists there.
func (g *Graph) validateForeignKey(
	t *schema.Table,
	fk schema.ForeignKey,
	batchTables map[string]*schema.Table,
	pending map[string]pendingColumn,
) error {
	fail := func(msg string) error {
		return &core.SchemaError{Table: t.Name, Column: fk.Column, Msg: msg}
	}

	var indexed bool
	if bt, ok := g.tables[fk.RefTable]; ok {
		indexed = contains(bt.features, fk.RefColumn)
	} else if rt, ok := batchTables[fk.RefTable]; ok {
		indexed = contains(rt.FeatureColumns(), fk.RefColumn)
	} else {
		return fail(fmt.Sprintf("references table %q which is not built before it", fk.RefTable))
	}
	if !indexed {
		return fail(fmt.Sprintf("references %s.%s which is not an indexed column", fk.RefTable, fk.RefColumn))
	}

	for i, row := range t.Rows {
		k := row[fk.Column]
		var found bool
		if ix, ok := g.indexes[fk.RefColumn]; ok {
			_, found = ix.Search(k)
		} else {
			found = pending[fk.RefColumn].contains(k)
		}
		if !found {
			return fail(fmt.Sprintf("row %d: value %s has no match in %s.%s", i, k, fk.RefTable, fk.RefColumn))
		}
	}
	return nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
