package schema

import (
	"errors"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/dfs"
)

// Dataset is a set of related tables in no particular order.
type Dataset struct {
	Tables []Table
}

// Table returns the table called name.
func (d *Dataset) Table(name string) (*Table, bool) {
	for i := range d.Tables {
		if d.Tables[i].Name == name {
			return &d.Tables[i], true
		}
	}
	return nil, false
}

// Ordered validates every table and returns them so that each table follows
// the tables its foreign keys reference. Ties are broken by table name.
//
// Duplicate names, references to tables outside the dataset and reference
// cycles are reported as *core.SchemaError.
func (d *Dataset) Ordered() ([]Table, error) {
	deps := make(map[string][]string, len(d.Tables))
	byName := make(map[string]int, len(d.Tables))
	for i := range d.Tables {
		t := &d.Tables[i]
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byName[t.Name]; dup {
			return nil, &core.SchemaError{Table: t.Name, Msg: "table declared twice"}
		}
		byName[t.Name] = i
		refs := make([]string, 0, len(t.ForeignKeys))
		for _, fk := range t.ForeignKeys {
			refs = append(refs, fk.RefTable)
		}
		deps[t.Name] = refs
	}

	order, err := dfs.TopologicalSort(deps)
	switch {
	case errors.Is(err, dfs.ErrUnknownVertex):
		return nil, &core.SchemaError{Msg: "foreign key references a table outside the dataset: " + err.Error()}
	case errors.Is(err, dfs.ErrCycleDetected):
		return nil, &core.SchemaError{Msg: "foreign keys form a cycle: " + err.Error()}
	case err != nil:
		return nil, err
	}

	out := make([]Table, 0, len(order))
	for _, name := range order {
		out = append(out, d.Tables[byName[name]])
	}
	return out, nil
}
