package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gopidist/pharma-pos-api/internal/config"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalogue entities
		&entity.Product{},
		&entity.Party{},

		// Transaction entities
		&entity.Invoice{},
		&entity.InvoiceItem{},

		// System entities
		&entity.AppSettings{},
		&entity.InvoiceSequence{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the settings singleton and the invoice numbering
// sequence on first run. Existing rows are left untouched.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	var settings entity.AppSettings
	err := db.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to read app settings: %w", err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = entity.AppSettings{
			Company: entity.CompanyProfile{
				Name:    cfg.Company.Name,
				Address: cfg.Company.Address,
				GSTIN:   cfg.Company.GSTIN,
				Phone:   cfg.Company.Phone,
				Email:   cfg.Company.Email,
				DLNo1:   cfg.Company.DLNo1,
				DLNo2:   cfg.Company.DLNo2,
			},
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed app settings: %w", err)
		}
		log.Printf("Company profile created: %s", settings.Company.Name)
	}

	var seq entity.InvoiceSequence
	err = db.First(&seq).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to read invoice sequence: %w", err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = entity.InvoiceSequence{
			Prefix:     cfg.Billing.InvoicePrefix,
			NextNumber: cfg.Billing.StartNumber,
		}
		if err := db.Create(&seq).Error; err != nil {
			return fmt.Errorf("failed to seed invoice sequence: %w", err)
		}
		log.Printf("Invoice sequence created: %s-%d", seq.Prefix, seq.NextNumber)
	}

	log.Println("Default data seeding completed")
	return nil
}
