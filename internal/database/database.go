package database

import (
	"fmt"
	"time"

	"roadworks-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. Column names follow the storage schema of the hosted deployment
// (underscore_case, explicit NULL for absent optional fields).
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// AutoMigrate all models. No foreign keys between tables: references
	// across users/zonals/requests may dangle and reads resolve them to
	// placeholders instead of failing.
	if !opts.SkipMigrate {
		all := []interface{}{
			&models.RepairRequest{},
			&models.User{},
			&models.ZonalMetadata{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		// The store checks manager uniqueness as a fast path before any
		// write; this index makes the schema the source of truth so two
		// concurrent sessions cannot both install a manager for one zone.
		if err := db.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_one_manager_per_zonal ON users (zonal) WHERE role = 'manager'`,
		).Error; err != nil {
			return nil, fmt.Errorf("create manager index: %w", err)
		}
	}

	return db, nil
}
