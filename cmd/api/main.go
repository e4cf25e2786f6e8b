package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kanakraj/jewelpos-api/internal/application/service"
	"github.com/kanakraj/jewelpos-api/internal/config"
	"github.com/kanakraj/jewelpos-api/internal/infrastructure/database"
	"github.com/kanakraj/jewelpos-api/internal/infrastructure/repository"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/handler"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/routes"
	"github.com/kanakraj/jewelpos-api/pkg/receipt"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed sample inventory outside production
	if cfg.App.Env != "production" {
		if err := database.SeedSampleData(db); err != nil {
			log.Printf("Warning: Failed to seed sample data: %v", err)
		}
	}

	// Initialize repositories
	ornamentRepo := repository.NewOrnamentRepository(db)
	merchantRepo := repository.NewMerchantRepository(db)
	billRepo := repository.NewBillRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize receipt generator
	receiptGenerator, err := receipt.NewGeneratorFromConfig(cfg.Receipt.Type, cfg.Receipt.URL)
	if err != nil {
		log.Printf("Warning: Failed to initialize receipt generator: %v", err)
		receiptGenerator = receipt.NewNullGenerator()
	}

	// Initialize services
	scanService := service.NewScanService(ornamentRepo)
	billingService := service.NewBillingService(saleRepo, billRepo, receiptGenerator)
	salesService := service.NewSalesService(billRepo)
	merchantService := service.NewMerchantService(merchantRepo, ornamentRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Scan:     handler.NewScanHandler(scanService),
		Billing:  handler.NewBillingHandler(billingService),
		Sales:    handler.NewSalesHandler(salesService),
		Merchant: handler.NewMerchantHandler(merchantService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
