package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// txMarker tags contexts that are already inside a transaction scope.
type txMarker struct{}

// Tx is the handle passed to a transaction function. All statements issued
// through it belong to the same atomic scope.
type Tx struct {
	tx *sqlx.Tx
}

// Query runs a read statement inside the transaction.
func (t *Tx) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	return queryRows(ctx, t.tx, query, args...)
}

// One runs a single-row read inside the transaction with the same no-row /
// too-many-rows semantics as DB.One.
func (t *Tx) One(ctx context.Context, query string, args ...any) (Row, error) {
	return oneRow(ctx, t.tx, query, args...)
}

// Exec runs a write statement inside the transaction.
func (t *Tx) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	return execStmt(ctx, t.tx, query, args...)
}

// Tx executes fn within a transaction scope. Exactly one of commit or
// rollback happens:
//
//   - fn returns nil: the transaction commits.
//   - fn returns an error: the transaction rolls back and the error
//     propagates to the caller.
//   - fn panics: the transaction rolls back and the panic is re-raised.
//
// Writers serialize on an internal mutex, so at most one transaction is open
// process-wide at a time. Nested scopes are not supported: calling Tx with a
// context already inside a scope fails with ErrNestedTransaction before
// touching the database.
func (d *DB) Tx(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	if ctx.Value(txMarker{}) != nil {
		return ErrNestedTransaction
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	tx, err := d.conn.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Join(ErrBeginTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txMarker{}, struct{}{}), &Tx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
