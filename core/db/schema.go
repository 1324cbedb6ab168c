package db

import (
	"context"
	"errors"
	"os"
)

// ApplySchema executes a schema definition script inside a transaction.
// The script is expected to be defensive ("CREATE TABLE IF NOT EXISTS" and
// friends), which makes application idempotent: re-running it against an
// existing database neither errors nor duplicates objects.
func (d *DB) ApplySchema(ctx context.Context, schema string) error {
	if schema == "" {
		return nil
	}

	err := d.Tx(ctx, func(ctx context.Context, tx *Tx) error {
		_, err := tx.Exec(ctx, schema)
		return err
	})
	if err != nil {
		return errors.Join(ErrApplySchema, err)
	}

	d.log.Info("schema applied")
	return nil
}

// ApplySchemaFile applies the schema file at path. A missing file is not an
// error; the schema definition is optional.
func (d *DB) ApplySchemaFile(ctx context.Context, path string) error {
	schema, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Join(ErrApplySchema, err)
	}
	return d.ApplySchema(ctx, string(schema))
}
