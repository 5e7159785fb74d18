// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todolist-api/internal/database"
	"gorm.io/gorm"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewSQLiteDB opens a migrated in-memory SQLite database that lives as long
// as the test. The pool is pinned to one connection because every new
// connection to :memory: would see an empty database.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	log := DiscardLogger()
	db, err := gorm.Open(database.SQLiteDialector(":memory:"), database.NewGormConfig(log))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, log))
	return db
}
