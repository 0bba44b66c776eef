package repository

import (
	"path/filepath"
	"testing"

	"anima/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ConfigEntry{},
		&models.Testimonial{},
		&models.Article{},
		&models.ContactMessage{},
		&models.AdminUser{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
