package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gopidist/pharma-pos-api/internal/config"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/handler"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product   *handler.ProductHandler
	Party     *handler.PartyHandler
	Invoice   *handler.InvoiceHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		products := v1.Group("/products")
		{
			products.GET("", h.Product.List)
			products.GET("/suggest", h.Product.Suggest)
			products.GET("/:id", h.Product.Get)
			products.POST("", h.Product.Create)
			products.PUT("/:id", h.Product.Update)
			products.DELETE("/:id", h.Product.Delete)
			products.POST("/import", h.Product.Import)
		}

		parties := v1.Group("/parties")
		{
			parties.GET("", h.Party.List)
			parties.GET("/:id", h.Party.Get)
			parties.POST("", h.Party.Create)
			parties.PUT("/:id", h.Party.Update)
			parties.DELETE("/:id", h.Party.Delete)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.POST("/price", h.Invoice.PriceCart)
			invoices.POST("", h.Invoice.Commit)
			invoices.GET("", h.Invoice.List)
			invoices.GET("/:id", h.Invoice.Get)
			invoices.GET("/:id/pdf", h.Invoice.PDF)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", h.Settings.Get)
			settings.PUT("/company", h.Settings.UpdateCompany)
			settings.GET("/sequence", h.Settings.GetSequence)
			settings.PUT("/sequence", h.Settings.UpdateSequence)
		}

		v1.GET("/dashboard/stats", h.Dashboard.Stats)
	}

	return router
}
