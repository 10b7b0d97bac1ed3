package store

import (
	"context"
	"testing"

	"bookkeeping_system/internal/db"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a migrated in-memory SQLite database
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.OpenDialector(sqlite.Open(":memory:"), true)
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // Each connection would get its own in-memory database
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(conn))
	return conn
}

var ctx = context.Background()
