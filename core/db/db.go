package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Row is a single result row keyed by column name.
type Row = map[string]any

// Result reports the outcome of a write statement.
type Result struct {
	RowsAffected int64
	LastInsertID int64
}

// DB owns the single SQLite connection. Reads run against the shared
// connection; writes that need atomicity go through Tx, which serializes
// writers process-wide.
type DB struct {
	conn    *sqlx.DB
	writeMu sync.Mutex
	log     *slog.Logger
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger for schema and migration activity.
func WithLogger(log *slog.Logger) Option {
	return func(d *DB) {
		if log != nil {
			d.log = log
		}
	}
}

// Connect opens the database file, applies the engine pragmas (foreign keys,
// WAL journal, busy timeout), and bootstraps the schema file when one is
// configured. The pool is pinned to a single connection; SQLite is
// effectively single-writer and the toolkit treats it that way.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*DB, error) {
	conn, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpen, err)
	}
	conn.SetMaxOpenConns(1)

	d := &DB{
		conn: conn,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	pragmas := []string{
		"PRAGMA foreign_keys=ON;",
		fmt.Sprintf("PRAGMA busy_timeout=%d;", cfg.BusyTimeout.Milliseconds()),
	}
	if cfg.WAL {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL;")
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, errors.Join(ErrFailedToOpen, err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrFailedToOpen, err)
	}

	if cfg.SchemaPath != "" {
		if err := d.ApplySchemaFile(ctx, cfg.SchemaPath); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return d, nil
}

// Close releases the underlying connection.
func (d *DB) Close() error { return d.conn.Close() }

// Query runs a read statement and returns all rows as column-keyed maps.
func (d *DB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	return queryRows(ctx, d.conn, query, args...)
}

// One runs a read statement expected to match at most one row. No match
// returns (nil, nil); more than one match is an error distinct from "no
// row", so callers cannot conflate the two.
func (d *DB) One(ctx context.Context, query string, args ...any) (Row, error) {
	return oneRow(ctx, d.conn, query, args...)
}

// Exec runs a write statement in auto-commit mode.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	return execStmt(ctx, d.conn, query, args...)
}

// queryer is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx.
type queryer interface {
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func queryRows(ctx context.Context, q queryer, query string, args ...any) ([]Row, error) {
	rows, err := q.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row := make(Row)
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func oneRow(ctx context.Context, q queryer, query string, args ...any) (Row, error) {
	rows, err := queryRows(ctx, q, query, args...)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return rows[0], nil
	default:
		return nil, fmt.Errorf("%w: got %d rows", ErrTooManyRows, len(rows))
	}
}

func execStmt(ctx context.Context, q queryer, query string, args ...any) (Result, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, err
	}

	// SQLite always knows both; errors here mean a driver contract break.
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return Result{}, err
	}

	return Result{RowsAffected: affected, LastInsertID: lastID}, nil
}
