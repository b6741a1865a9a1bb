package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/gopidist/pharma-pos-api/internal/application/service"
	"github.com/gopidist/pharma-pos-api/internal/config"
	"github.com/gopidist/pharma-pos-api/internal/infrastructure/database"
	"github.com/gopidist/pharma-pos-api/internal/infrastructure/repository"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/handler"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/routes"
	"github.com/gopidist/pharma-pos-api/pkg/pdfgen"
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

	// Seed the company profile and invoice sequence
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	invoicePDF := pdfgen.NewInvoicePDF()
	productService := service.NewProductService(productRepo)
	importService := service.NewImportService(productRepo)
	partyService := service.NewPartyService(partyRepo)
	billingService := service.NewBillingService(invoiceRepo, productRepo, partyRepo, settingsRepo, invoicePDF)
	settingsService := service.NewSettingsService(settingsRepo)
	dashboardService := service.NewDashboardService(invoiceRepo, productRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:   handler.NewProductHandler(productService, importService),
		Party:     handler.NewPartyHandler(partyService),
		Invoice:   handler.NewInvoiceHandler(billingService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
