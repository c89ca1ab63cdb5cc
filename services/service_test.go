package services

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(config.AllModels()...))
	config.DB = db
	InitNotifier(db, nil)
	return db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := RegisterUser(username, username+"@example.com", "password123", "Test User")
	require.NoError(t, err)
	return user
}
