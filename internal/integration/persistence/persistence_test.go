package persistence

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lawledger/backend/internal/integration/persistence/model"
)

// openTestDB opens a private in-memory database per test. A single connection
// keeps the database alive for the test's duration, and the foreign_keys
// pragma turns on cascade enforcement.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&model.ClientModel{},
		&model.CaseModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.UserModel{},
	))

	return db
}
