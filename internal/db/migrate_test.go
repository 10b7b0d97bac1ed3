package db

import (
	"testing"

	"bookkeeping_system/internal/config"
	"bookkeeping_system/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesTables(t *testing.T) {
	conn, err := OpenDialector(sqlite.Open(":memory:"), true)
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(conn))
	for _, table := range []string{"users", domain.KindExpense.Table, domain.KindGain.Table} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}
	assert.True(t, conn.Migrator().HasIndex(&domain.Expense{}, "SlNo"))
	assert.True(t, conn.Migrator().HasIndex(&domain.Gain{}, "SlNo"))

	// Running twice is a no-op
	require.NoError(t, Migrate(conn))
}

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)

	d, err := Dialector(&config.Config{DBDriver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}
