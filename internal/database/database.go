package database

import (
	"fmt"
	"time"

	"pc-builder-backend/internal/database/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipAutoMigrate bool
}

// defaultedOptions fills zero-valued fields with production defaults.
// Migration runs unless explicitly skipped.
func defaultedOptions(opts *Options) *Options {
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
	return opts
}

// Initialize opens a MySQL connection and creates the schema from GORM models.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey, which the like-toggle race handling relies on.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	opts = defaultedOptions(opts)

	// Open DB
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// AutoMigrate all models. Components must exist before triples and
	// build_components so the RESTRICT foreign keys can be created.
	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.User{},
			&models.Component{},
			&models.CompatibilityTriple{},
			&models.Build{},
			&models.BuildComponent{},
			&models.BuildLike{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
