package database

import (
	"fmt"
	"log"

	"github.com/kanakraj/jewelpos-api/internal/config"
	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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
		// Inventory entities
		&entity.Merchant{},
		&entity.Ornament{},

		// Sale entities
		&entity.Client{},
		&entity.Bill{},
		&entity.BillItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedSampleData populates a development database with a small consignment
// inventory. Safe to call repeatedly; existing rows are left alone.
func SeedSampleData(db *gorm.DB) error {
	log.Println("Seeding sample data...")

	merchants := []entity.Merchant{
		{Code: "M-100", Name: "Sharma Jewellers", Phone: "9810012345"},
		{Code: "M-200", Name: "Verma & Sons", Phone: "9810054321"},
	}

	for i := range merchants {
		var existing entity.Merchant
		if err := db.Where("code = ?", merchants[i].Code).First(&existing).Error; err != nil {
			if err := db.Create(&merchants[i]).Error; err != nil {
				log.Printf("Warning: failed to create merchant %s: %v", merchants[i].Code, err)
			}
		}
	}

	ornaments := []entity.Ornament{
		{OrnamentID: "R-001", Type: enum.OrnamentTypeRing, Weight: 4.2, Purity: "22K", CostPrice: 32000, MerchantCode: "M-100"},
		{OrnamentID: "R-002", Type: enum.OrnamentTypeRing, Weight: 3.8, Purity: "18K", CostPrice: 24500, MerchantCode: "M-100"},
		{OrnamentID: "N-001", Type: enum.OrnamentTypeNecklace, Weight: 18.6, Purity: "22K", CostPrice: 142000, MerchantCode: "M-100"},
		{OrnamentID: "B-001", Type: enum.OrnamentTypeBracelet, Weight: 9.1, Purity: "22K", CostPrice: 68000, MerchantCode: "M-200"},
		{OrnamentID: "E-001", Type: enum.OrnamentTypeEarring, Weight: 2.4, Purity: "18K", CostPrice: 15500, MerchantCode: "M-200"},
		{OrnamentID: "P-001", Type: enum.OrnamentTypePendant, Weight: 5.0, Purity: "22K", CostPrice: 41000, MerchantCode: "M-200"},
	}

	for i := range ornaments {
		var existing entity.Ornament
		if err := db.Where("ornament_id = ?", ornaments[i].OrnamentID).First(&existing).Error; err != nil {
			if err := db.Create(&ornaments[i]).Error; err != nil {
				log.Printf("Warning: failed to create ornament %s: %v", ornaments[i].OrnamentID, err)
			}
		}
	}

	log.Println("Sample data seeding completed")
	return nil
}
