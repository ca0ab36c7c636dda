package ingest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/schema"
)

// ReadSQLite loads every user table of the database at path.
//
// Tables come back sorted by name; use Dataset.Ordered for insertion order.
// Primary keys come from PRAGMA table_info and foreign keys from PRAGMA
// foreign_key_list. A foreign key without an explicit target column points
// at the referenced table's single primary key. A column that is both
// primary and foreign key is treated as a foreign key only.
//
// Rows holding any NULL are dropped. BLOB cells are rejected with a
// *core.SchemaError.
func ReadSQLite(ctx context.Context, path string, opts ...Option) (*schema.Dataset, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	if err != nil {
		return nil, fmt.Errorf("ingest: open sqlite: %w", err)
	}
	defer func() { _ = conn.Close() }()

	r := &reader{conn: conn, opts: o}
	names, err := r.tableNames()
	if err != nil {
		return nil, err
	}

	ds := &schema.Dataset{Tables: make([]schema.Table, 0, len(names))}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := r.table(name)
		if err != nil {
			return nil, err
		}
		ds.Tables = append(ds.Tables, t)
	}
	if err := r.resolveImplicitTargets(ds); err != nil {
		return nil, err
	}
	if o.Keys != nil {
		if err := o.Keys.Apply(ds); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// reader runs the per-table queries on one connection.
type reader struct {
	conn *sqlite.Conn
	opts Options
}

func (r *reader) tableNames() ([]string, error) {
	var names []string
	err := sqlitex.ExecuteTransient(r.conn,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				names = append(names, stmt.ColumnText(0))
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("ingest: list tables: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

type pkColumn struct {
	name string
	pos  int64
}

func (r *reader) table(name string) (schema.Table, error) {
	t := schema.Table{Name: name}

	var pks []pkColumn
	err := sqlitex.ExecuteTransient(r.conn, "PRAGMA table_info("+quote(name)+")",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				col := stmt.ColumnText(1)
				t.Columns = append(t.Columns, col)
				if pos := stmt.ColumnInt64(5); pos > 0 {
					pks = append(pks, pkColumn{name: col, pos: pos})
				}
				return nil
			},
		})
	if err != nil {
		return t, fmt.Errorf("ingest: table_info %q: %w", name, err)
	}

	err = sqlitex.ExecuteTransient(r.conn, "PRAGMA foreign_key_list("+quote(name)+")",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				fk := schema.ForeignKey{
					RefTable: stmt.ColumnText(2),
					Column:   stmt.ColumnText(3),
				}
				if stmt.ColumnType(4) != sqlite.TypeNull {
					fk.RefColumn = stmt.ColumnText(4)
				}
				t.ForeignKeys = append(t.ForeignKeys, fk)
				return nil
			},
		})
	if err != nil {
		return t, fmt.Errorf("ingest: foreign_key_list %q: %w", name, err)
	}

	sort.Slice(pks, func(i, j int) bool { return pks[i].pos < pks[j].pos })
	for _, pk := range pks {
		if t.IsForeignKey(pk.name) {
			r.opts.Logger.Debug("primary key is also a foreign key; indexing skipped",
				"table", name, "column", pk.name)
			continue
		}
		t.PrimaryKeys = append(t.PrimaryKeys, pk.name)
	}

	dropped, err := r.rows(&t)
	if err != nil {
		return t, err
	}
	r.opts.Logger.Info("table read",
		"table", name,
		"columns", len(t.Columns),
		"rows", len(t.Rows),
		"dropped", dropped,
	)
	return t, nil
}

// rows reads the table body into t.Rows and returns how many rows were
// dropped for holding NULLs.
func (r *reader) rows(t *schema.Table) (int, error) {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quote(c)
	}
	query := "SELECT " + strings.Join(cols, ", ") + " FROM " + quote(t.Name)
	if r.opts.MaxRows > 0 {
		query += fmt.Sprintf(" LIMIT %d", r.opts.MaxRows)
	}

	var (
		dropped int
		bad     error
	)
	err := sqlitex.ExecuteTransient(r.conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			row := make(schema.Row, len(t.Columns))
			for i, c := range t.Columns {
				switch stmt.ColumnType(i) {
				case sqlite.TypeNull:
					dropped++
					return nil
				case sqlite.TypeInteger:
					row[c] = core.Int(stmt.ColumnInt64(i))
				case sqlite.TypeFloat:
					f := stmt.ColumnFloat(i)
					if !core.Finite(f) {
						bad = &core.SchemaError{Table: t.Name, Column: c, Msg: fmt.Sprintf("non-finite value %g", f)}
						return bad
					}
					row[c] = core.Float(f)
				case sqlite.TypeText:
					row[c] = core.Text(stmt.ColumnText(i))
				default:
					bad = &core.SchemaError{Table: t.Name, Column: c, Msg: "BLOB values are not supported"}
					return bad
				}
			}
			t.Rows = append(t.Rows, row)
			return nil
		},
	})
	if bad != nil {
		return dropped, bad
	}
	if err != nil {
		return dropped, fmt.Errorf("ingest: read %q: %w", t.Name, err)
	}
	return dropped, nil
}

// resolveImplicitTargets fills in foreign keys declared without a target
// column, which SQLite resolves to the referenced table's primary key.
func (r *reader) resolveImplicitTargets(ds *schema.Dataset) error {
	for i := range ds.Tables {
		t := &ds.Tables[i]
		for j := range t.ForeignKeys {
			fk := &t.ForeignKeys[j]
			if fk.RefColumn != "" {
				continue
			}
			ref, ok := ds.Table(fk.RefTable)
			if !ok || len(ref.PrimaryKeys) != 1 {
				return &core.SchemaError{
					Table:  t.Name,
					Column: fk.Column,
					Msg:    fmt.Sprintf("cannot resolve implicit reference to %q: need exactly one primary key", fk.RefTable),
				}
			}
			fk.RefColumn = ref.PrimaryKeys[0]
		}
	}
	return nil
}

// quote renders an SQL identifier.
func quote(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}
