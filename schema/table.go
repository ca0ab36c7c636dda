package schema

import (
	"fmt"

	"github.com/katalvlaran/magn/core"
)

// ForeignKey declares that Column of the owning table holds values of
// RefColumn in RefTable.
type ForeignKey struct {
	Column    string `yaml:"column"`
	RefTable  string `yaml:"ref_table"`
	RefColumn string `yaml:"ref_column"`
}

// Row maps a column name to its cell value.
type Row map[string]core.Key

// RowOf converts plain Go values into a Row. See core.KeyOf for the accepted
// value types.
func RowOf(values map[string]any) (Row, error) {
	row := make(Row, len(values))
	for col, v := range values {
		k, err := core.KeyOf(v)
		if err != nil {
			return nil, fmt.Errorf("schema: column %q: %w", col, err)
		}
		row[col] = k
	}
	return row, nil
}

// Without returns a copy of r with column removed.
func (r Row) Without(column string) Row {
	out := make(Row, len(r))
	for c, k := range r {
		if c != column {
			out[c] = k
		}
	}
	return out
}

// Table is one named source table with its key declarations and rows.
type Table struct {
	Name        string
	Columns     []string
	PrimaryKeys []string
	ForeignKeys []ForeignKey
	Rows        []Row
}

// ForeignKey returns the foreign key declared on column, if any.
func (t *Table) ForeignKey(column string) (ForeignKey, bool) {
	for _, fk := range t.ForeignKeys {
		if fk.Column == column {
			return fk, true
		}
	}
	return ForeignKey{}, false
}

// IsForeignKey reports whether column carries a foreign key.
func (t *Table) IsForeignKey(column string) bool {
	_, ok := t.ForeignKey(column)
	return ok
}

// FeatureColumns lists the columns that get their own index: primary keys
// first in declared order, then the remaining non-foreign-key columns in
// column order.
func (t *Table) FeatureColumns() []string {
	out := make([]string, 0, len(t.Columns))
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.PrimaryKeys {
		out = append(out, c)
		seen[c] = true
	}
	for _, c := range t.Columns {
		if seen[c] || t.IsForeignKey(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Validate checks the declarations against each other and against the rows.
// It does not look at other tables; see Dataset.Ordered and graph.Build for
// cross-table checks.
func (t *Table) Validate() error {
	if t.Name == "" {
		return &core.SchemaError{Msg: "table name is empty"}
	}
	if len(t.Columns) == 0 {
		return t.fail("", "no columns declared")
	}
	cols := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if c == "" {
			return t.fail("", "empty column name")
		}
		if cols[c] {
			return t.fail(c, "column declared twice")
		}
		cols[c] = true
	}

	pks := make(map[string]bool, len(t.PrimaryKeys))
	for _, c := range t.PrimaryKeys {
		if !cols[c] {
			return t.fail(c, "primary key is not a declared column")
		}
		if pks[c] {
			return t.fail(c, "primary key declared twice")
		}
		pks[c] = true
	}

	fks := make(map[string]bool, len(t.ForeignKeys))
	for _, fk := range t.ForeignKeys {
		switch {
		case !cols[fk.Column]:
			return t.fail(fk.Column, "foreign key is not a declared column")
		case fks[fk.Column]:
			return t.fail(fk.Column, "foreign key declared twice")
		case pks[fk.Column]:
			return t.fail(fk.Column, "column is both primary and foreign key")
		case fk.RefTable == "" || fk.RefColumn == "":
			return t.fail(fk.Column, "foreign key reference is incomplete")
		case fk.RefTable == t.Name:
			return t.fail(fk.Column, "foreign key references its own table")
		}
		fks[fk.Column] = true
	}

	return t.validateRows()
}

// validateRows checks that every row holds exactly the declared columns and
// that each column stays within one finite numeric or text key family.
func (t *Table) validateRows() error {
	family := make(map[string]core.Key, len(t.Columns))
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			for c := range row {
				if !t.hasColumn(c) {
					return t.fail(c, fmt.Sprintf("row %d: undeclared column", i))
				}
			}
		}
		for _, c := range t.Columns {
			k, ok := row[c]
			if !ok || !k.Valid() {
				return t.fail(c, fmt.Sprintf("row %d: %v", i, core.ErrMissingValue))
			}
			if f, num := k.Float64(); num && !core.Finite(f) {
				return t.fail(c, fmt.Sprintf("row %d: non-finite value %s", i, k))
			}
			first, seen := family[c]
			if !seen {
				family[c] = k
				continue
			}
			if !first.SameFamily(k) {
				return t.fail(c, fmt.Sprintf("row %d: %s value in a %s column", i, k.Kind(), first.Kind()))
			}
		}
	}
	return nil
}

func (t *Table) hasColumn(c string) bool {
	for _, d := range t.Columns {
		if d == c {
			return true
		}
	}
	return false
}

func (t *Table) fail(column, msg string) error {
	return &core.SchemaError{Table: t.Name, Column: column, Msg: msg}
}
