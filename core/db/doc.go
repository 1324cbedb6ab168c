// Package db is a small transactional access layer over embedded SQLite.
//
// It owns a single connection and exposes three read/write primitives plus
// an explicit transaction scope:
//
//	d, err := db.Connect(ctx, db.Config{Path: "app.sqlite", SchemaPath: "schema.sql"})
//
//	rows, err := d.Query(ctx, "SELECT id, email FROM users WHERE active = ?", 1)
//	row, err := d.One(ctx, "SELECT * FROM users WHERE id = ?", 42)  // nil when absent
//	res, err := d.Exec(ctx, "DELETE FROM users WHERE id = ?", 42)
//
//	err = d.Tx(ctx, func(ctx context.Context, tx *db.Tx) error {
//		if _, err := tx.Exec(ctx, "INSERT INTO users(email) VALUES(?)", email); err != nil {
//			return err // rolls back
//		}
//		return nil // commits
//	})
//
// Transaction guarantees: exactly one of commit or rollback happens per
// scope, including on panic. Writers serialize process-wide; nested scopes
// return ErrNestedTransaction. One distinguishes "no row" (nil, nil) from
// "more than one row" (ErrTooManyRows).
//
// Schema bootstrap runs the configured schema file at connect time inside a
// transaction; defensive CREATE IF NOT EXISTS statements make it idempotent.
// Versioned migrations via goose are available through Migrate for projects
// that need more than one schema file.
package db
