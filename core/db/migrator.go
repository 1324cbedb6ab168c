package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// Migrate applies versioned goose migrations from migrations (typically an
// embed.FS) against the database. This complements ApplySchema for projects
// that outgrow a single schema file; both paths are idempotent.
func (d *DB) Migrate(ctx context.Context, migrations fs.FS, table string) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{d.log})
	if table != "" {
		goose.SetTableName(table)
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	// Migrations are writes; take the writer lock like any transaction scope.
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if err := goose.UpContext(ctx, d.conn.DB, "."); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

type gooseLogger struct {
	log *slog.Logger
}

func (g *gooseLogger) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLogger) Fatalf(format string, args ...any) {
	// Error level only; goose returns the error itself, and os.Exit here
	// would skip rollback and cleanup.
	g.log.Error(fmt.Sprintf(format, args...))
}
