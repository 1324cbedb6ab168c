package db

import "errors"

var (
	ErrFailedToOpen      = errors.New("db: failed to open database")
	ErrTooManyRows       = errors.New("db: query matched more than one row")
	ErrBeginTransaction  = errors.New("db: failed to begin transaction")
	ErrNestedTransaction = errors.New("db: nested transaction scopes are not supported")
	ErrApplySchema       = errors.New("db: failed to apply schema")
	ErrSetDialect        = errors.New("db migrator: failed to set dialect")
	ErrApplyMigrations   = errors.New("db migrator: failed to apply migrations")
)
