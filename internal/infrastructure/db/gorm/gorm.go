// Package gormdb owns the relational store: connection setup, schema
// migration, and the first-run seed rows.
package gormdb

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bankcore/bank-client-api/internal/core/domain"
)

// Connect opens a Postgres connection and migrates the clients table.
// TranslateError is enabled so that unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the clients table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Client{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Seed inserts the two illustrative client records used for first-run
// demonstration. Keyed on email, so running it repeatedly is a no-op.
func Seed(db *gorm.DB) error {
	seeds := []domain.Client{
		{
			FirstName:   "Juan",
			LastName:    "Pérez",
			Email:       "juan.perez@email.com",
			PhoneNumber: "0999123456",
			Address:     "Av. Amazonas y Naciones Unidas, Quito",
			AccountType: "Savings",
			Balance:     5000.00,
			IsActive:    true,
		},
		{
			FirstName:   "María",
			LastName:    "González",
			Email:       "maria.gonzalez@email.com",
			PhoneNumber: "0998765432",
			Address:     "Calle 10 de Agosto, Quito",
			AccountType: "Checking",
			Balance:     12500.50,
			IsActive:    true,
		},
	}

	for _, s := range seeds {
		var existing domain.Client
		if err := db.Where("email = ?", s.Email).Attrs(s).FirstOrCreate(&existing).Error; err != nil {
			return fmt.Errorf("seed client %s: %w", s.Email, err)
		}
	}
	return nil
}
