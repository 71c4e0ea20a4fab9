// Package testdb opens throwaway sqlite databases carrying the full schema.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/db"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Client returns a migrated sqlite client that is closed when t ends.
func Client(t testing.TB) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "shopadmin.db"),
		MaxOpenConns: 1,
	}
	client, err := db.New(context.Background(), "test", cfg, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.DB().AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return client
}

// Open returns the gorm handle of a fresh migrated database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	return Client(t).DB()
}
