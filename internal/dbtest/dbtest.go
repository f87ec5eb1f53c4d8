// Package dbtest opens throwaway sqlite databases with the tracker schema.
package dbtest

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"employee-tracker/internal/config"
	"employee-tracker/internal/db"
	"employee-tracker/internal/logs"
	"employee-tracker/internal/models"
)

// Open returns a migrated database living under t.TempDir with foreign keys
// enforced. It is closed when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenFile(t, filepath.Join(t.TempDir(), "test.db"))
}

// OpenFile is Open for a caller-chosen path, for tests that hand the file to
// another connection.
func OpenFile(t *testing.T, path string) *gorm.DB {
	t.Helper()

	database, err := db.Connect(config.Database{
		Driver: config.DriverSQLite,
		URL:    path,
	}, logs.Discard())
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	if err := database.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return database
}

// Seed inserts rows in order and fails the test on the first error.
func Seed(t *testing.T, database *gorm.DB, rows ...any) {
	t.Helper()

	for _, row := range rows {
		if err := database.Create(row).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", row, err)
		}
	}
}
