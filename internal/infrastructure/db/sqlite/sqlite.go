// Package sqlite provides the GORM-backed identity store.
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pneumatic/guestbook/internal/core/domain"
)

// Connect opens the SQLite database at path and migrates the schema.
// TranslateError is enabled so constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single pooled connection keeps writes serialized and makes
	// ":memory:" databases behave: every pool connection would otherwise
	// open its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.Role{}, &domain.User{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}
