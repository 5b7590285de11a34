// Package database builds the pooled GORM handle and keeps the schema
// current. Concurrency in this system comes entirely from the pool:
// callers check out connections and issue single atomic statements.
package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stec/tenet/internal/config"
	"github.com/stec/tenet/internal/models"
)

// ErrConnection means the pool could not be constructed or a connection
// could not be obtained.
var ErrConnection = errors.New("database connection failure")

// Connect opens a pooled PostgreSQL connection from the given
// configuration and verifies it with a ping.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return db, nil
}

// Migrate brings the schema up to date for all five entity tables.
// Callers must treat a failure as fatal; running against a stale schema
// risks data corruption.
func Migrate(db *gorm.DB) error {
	zap.L().Info("running schema migrations")
	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Application{},
		&models.Storage{},
		&models.Role{},
	); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
