package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger/migrations"
	"github.com/dmitrijs2005/easypost-cli/internal/dbx"
	"github.com/dmitrijs2005/easypost-cli/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Store is an open ledger database.
type Store struct {
	*SQLRepository
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open connects to dsn (a sqlite path or a postgres:// URL) and applies the
// embedded migrations. The sqlite file's directory is created if missing.
func Open(ctx context.Context, dsn string) (*Store, error) {
	dialect := dbx.DialectFor(dsn)

	if dialect == dbx.SQLite {
		if _, err := filex.EnsureDir(filepath.Dir(dsn)); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	if dialect == dbx.SQLite {
		// one writer; avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}

	if err := runMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}

	return &Store{SQLRepository: NewSQLRepository(db, dialect), db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect.GooseDialect()); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }
