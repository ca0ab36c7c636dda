// Package ingest turns relational sources into a schema.Dataset.
//
// ReadSQLite reads a SQLite file through zombiezen.com/go/sqlite: table
// names from sqlite_master, keys from PRAGMA table_info and
// PRAGMA foreign_key_list, and the rows themselves. Rows holding NULL are
// dropped because a missing cell has no index position.
//
//	ds, err := ingest.ReadSQLite(ctx, "reviews.db", ingest.WithMaxRows(1000))
//	tables, err := ds.Ordered()
//	err = g.Build(ctx, tables...)
package ingest
