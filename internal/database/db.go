package database

import (
	"fmt"
	"log/slog"
	"time"

	"isms-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL, retrying while the database comes up.
func Open(dsn string) (*gorm.DB, error) {
	const maxAttempts = 10

	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		slog.Info("connecting to database", "attempt", i, "max", maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err == nil {
			slog.Info("connected to database")
			return db, nil
		}

		slog.Warn("database connection failed", "err", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxAttempts, err)
}

// Migrate creates or updates the tables for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Asset{},
		&models.Risk{},
		&models.Policy{},
		&models.Incident{},
		&models.RiskPolicy{},
		&models.AuditLog{},
	)
}
