package db

import "time"

// Config holds SQLite connection parameters.
type Config struct {
	// Path is the database file location. ":memory:" works for tests.
	Path string `env:"DATABASE_PATH" envDefault:"db/app.sqlite"`

	// SchemaPath points at an optional schema definition file applied at
	// connect time. Empty disables schema bootstrap.
	SchemaPath string `env:"DATABASE_SCHEMA_PATH" envDefault:""`

	// BusyTimeout is how long SQLite waits on a locked database before
	// returning SQLITE_BUSY.
	BusyTimeout time.Duration `env:"DATABASE_BUSY_TIMEOUT" envDefault:"3s"`

	// WAL enables write-ahead logging, letting readers proceed while a
	// writer holds the transaction lock.
	WAL bool `env:"DATABASE_WAL" envDefault:"true"`
}
