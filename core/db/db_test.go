package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keel/core/db"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS notes (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    body  TEXT NOT NULL DEFAULT ''
);
`

func openTestDB(t *testing.T) *db.DB {
	t.Helper()

	d, err := db.Connect(context.Background(), db.Config{
		Path:        ":memory:",
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	require.NoError(t, d.ApplySchema(context.Background(), testSchema))
	return d
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("in memory", func(t *testing.T) {
		t.Parallel()

		d := openTestDB(t)
		rows, err := d.Query(context.Background(), "SELECT 1 AS one")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(1), rows[0]["one"])
	})

	t.Run("bad path", func(t *testing.T) {
		t.Parallel()

		_, err := db.Connect(context.Background(), db.Config{
			Path:        "/nonexistent/dir/app.sqlite",
			BusyTimeout: time.Second,
		})
		assert.ErrorIs(t, err, db.ErrFailedToOpen)
	})
}

func TestApplySchemaIdempotent(t *testing.T) {
	t.Parallel()

	d := openTestDB(t)
	// Defensive DDL re-applies cleanly.
	require.NoError(t, d.ApplySchema(context.Background(), testSchema))
	require.NoError(t, d.ApplySchema(context.Background(), testSchema))
}

func TestExecAndQuery(t *testing.T) {
	t.Parallel()

	d := openTestDB(t)
	ctx := context.Background()

	res, err := d.Exec(ctx, "INSERT INTO notes(title) VALUES(?)", "first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)
	assert.Equal(t, int64(1), res.LastInsertID)

	_, err = d.Exec(ctx, "INSERT INTO notes(title, body) VALUES(?, ?)", "second", "content")
	require.NoError(t, err)

	rows, err := d.Query(ctx, "SELECT id, title, body FROM notes ORDER BY id")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0]["title"])
	assert.Equal(t, "content", rows[1]["body"])

	t.Run("no rows yields empty slice", func(t *testing.T) {
		rows, err := d.Query(ctx, "SELECT * FROM notes WHERE id = ?", 999)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestOne(t *testing.T) {
	t.Parallel()

	d := openTestDB(t)
	ctx := context.Background()

	_, err := d.Exec(ctx, "INSERT INTO notes(title) VALUES(?), (?)", "a", "b")
	require.NoError(t, err)

	t.Run("single row", func(t *testing.T) {
		row, err := d.One(ctx, "SELECT title FROM notes WHERE title = ?", "a")
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "a", row["title"])
	})

	t.Run("no row is nil without error", func(t *testing.T) {
		row, err := d.One(ctx, "SELECT title FROM notes WHERE title = ?", "zzz")
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("multiple rows is an error", func(t *testing.T) {
		_, err := d.One(ctx, "SELECT title FROM notes")
		assert.ErrorIs(t, err, db.ErrTooManyRows)
	})
}

func TestQueryError(t *testing.T) {
	t.Parallel()

	d := openTestDB(t)

	_, err := d.Query(context.Background(), "SELECT * FROM no_such_table")
	assert.Error(t, err)
}
