package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestDialectFor(t *testing.T) {
	assert.Equal(t, Postgres, DialectFor("postgres://u:p@localhost/db"))
	assert.Equal(t, Postgres, DialectFor("POSTGRESQL://localhost/db"))
	assert.Equal(t, SQLite, DialectFor("/home/me/.easypost-cli/history.db"))
	assert.Equal(t, SQLite, DialectFor("file:x?mode=memory"))
}

func TestDialectNames(t *testing.T) {
	assert.Equal(t, "pgx", Postgres.DriverName())
	assert.Equal(t, "sqlite", SQLite.DriverName())
	assert.Equal(t, "postgres", Postgres.GooseDialect())
	assert.Equal(t, "sqlite3", SQLite.GooseDialect())
}

func TestRebind(t *testing.T) {
	q := `insert into purchases (id, mode) values (?, ?)`
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, `insert into purchases (id, mode) values ($1, $2)`, Postgres.Rebind(q))
	assert.Equal(t, "select 1", Postgres.Rebind("select 1"))
}

func TestDBTX_SatisfiedBySQLTypes(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var _ DBTX = db

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	var _ DBTX = tx
	require.NoError(t, tx.Rollback())
}
