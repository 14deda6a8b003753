package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tabakhlazeez/hotelctl/internal/domain/shared"
	"github.com/tabakhlazeez/hotelctl/internal/infrastructure/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the store connection and provides transactional access.
// The handle is passed explicitly to every repository; there is no implicit
// default store.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite store described by the configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// Single-writer tool; one connection sidesteps SQLite write contention.
	sqlDB.SetMaxOpenConns(1)

	return &Database{DB: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}

// translateError maps driver-level failures onto domain errors so callers
// above the repository layer never inspect SQL error strings. Domain errors
// pass through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such table") {
		return shared.ErrSchemaMissing
	}
	return err
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
