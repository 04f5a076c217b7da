package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/emberlight/chronicle/pkg/internal/database"
	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	return db
}

func testAccount(t *testing.T, db *gorm.DB, name string) models.Account {
	t.Helper()

	account, err := EnsureAccount(db, name, name, "")
	require.NoError(t, err)

	return account
}
