package ingest_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/ingest"
	"github.com/katalvlaran/magn/schema"
)

const reviewsDDL = `
CREATE TABLE reviews (reviewId INTEGER PRIMARY KEY, score REAL);
CREATE TABLE genres  (reviewId INTEGER REFERENCES reviews, genre TEXT);
CREATE TABLE years   (reviewId INTEGER REFERENCES reviews(reviewId), year INTEGER);
INSERT INTO reviews VALUES (1, 7.5), (2, 3.0), (3, NULL);
INSERT INTO genres  VALUES (1, 'rock'), (2, 'pop'), (3, NULL);
INSERT INTO years   VALUES (1, 2001), (2, 2019);
`

// newDB writes script into a fresh database file and returns its path.
func newDB(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate, sqlite.OpenReadWrite)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()
	require.NoError(t, sqlitex.ExecuteScript(conn, script, nil))
	return path
}

// TestReadSQLite reads tables, keys and rows, dropping rows with NULLs.
func TestReadSQLite(t *testing.T) {
	ds, err := ingest.ReadSQLite(context.Background(), newDB(t, reviewsDDL))
	require.NoError(t, err)
	require.Len(t, ds.Tables, 3)
	assert.Equal(t, "genres", ds.Tables[0].Name)
	assert.Equal(t, "reviews", ds.Tables[1].Name)
	assert.Equal(t, "years", ds.Tables[2].Name)

	reviews, _ := ds.Table("reviews")
	assert.Equal(t, []string{"reviewId", "score"}, reviews.Columns)
	assert.Equal(t, []string{"reviewId"}, reviews.PrimaryKeys)
	assert.Empty(t, reviews.ForeignKeys)
	require.Len(t, reviews.Rows, 2)
	assert.Equal(t, schema.Row{"reviewId": core.Int(1), "score": core.Float(7.5)}, reviews.Rows[0])

	genres, _ := ds.Table("genres")
	assert.Equal(t, []schema.ForeignKey{{Column: "reviewId", RefTable: "reviews", RefColumn: "reviewId"}}, genres.ForeignKeys)
	require.Len(t, genres.Rows, 2)
	assert.Equal(t, core.Text("pop"), genres.Rows[1]["genre"])

	years, _ := ds.Table("years")
	assert.Equal(t, "reviewId", years.ForeignKeys[0].RefColumn)

	ordered, err := ds.Ordered()
	require.NoError(t, err)
	assert.Equal(t, "reviews", ordered[0].Name)
}

// TestReadSQLite_Options applies the row cap and YAML key overrides.
func TestReadSQLite_Options(t *testing.T) {
	path := newDB(t, reviewsDDL)

	ds, err := ingest.ReadSQLite(context.Background(), path, ingest.WithMaxRows(1))
	require.NoError(t, err)
	for _, tbl := range ds.Tables {
		assert.Len(t, tbl.Rows, 1, tbl.Name)
	}

	keys, err := schema.LoadKeys(strings.NewReader("tables:\n  - name: years\n    primary_keys: [year]\n"))
	require.NoError(t, err)
	ds, err = ingest.ReadSQLite(context.Background(), path, ingest.WithKeys(keys))
	require.NoError(t, err)
	years, _ := ds.Table("years")
	assert.Equal(t, []string{"year"}, years.PrimaryKeys)
	assert.Empty(t, years.ForeignKeys)

	_, err = ingest.ReadSQLite(context.Background(), path, ingest.WithMaxRows(-1))
	assert.ErrorIs(t, err, ingest.ErrOptionViolation)
}

// TestReadSQLite_Rejects covers BLOB and infinite cells, missing files and
// cancellation.
func TestReadSQLite_Rejects(t *testing.T) {
	blob := newDB(t, "CREATE TABLE files (id INTEGER PRIMARY KEY, body BLOB);\nINSERT INTO files VALUES (1, X'00FF');\n")
	_, err := ingest.ReadSQLite(context.Background(), blob)
	assert.ErrorIs(t, err, core.ErrSchema)

	inf := newDB(t, "CREATE TABLE m (id INTEGER PRIMARY KEY, score REAL);\nINSERT INTO m VALUES (1, 9e999);\n")
	_, err = ingest.ReadSQLite(context.Background(), inf)
	assert.ErrorIs(t, err, core.ErrSchema)

	_, err = ingest.ReadSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ingest.ReadSQLite(ctx, newDB(t, reviewsDDL))
	assert.ErrorIs(t, err, context.Canceled)
}
