package infra

import (
	"fmt"

	"kiosko/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for all entity tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations creates/updates the schema. Also used by the integration
// tests against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13; harmless otherwise
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Cliente{},
		&model.Producto{},
		&model.Deuda{},
		&model.DeudaItem{},
		&model.Egreso{},
		&model.Configuracion{},
		&model.Usuario{},
	)
}
