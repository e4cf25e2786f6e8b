package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kanakraj/jewelpos-api/internal/config"
	domainRepo "github.com/kanakraj/jewelpos-api/internal/domain/repository"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/handler"
	"github.com/kanakraj/jewelpos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Scan     *handler.ScanHandler
	Billing  *handler.BillingHandler
	Sales    *handler.SalesHandler
	Merchant *handler.MerchantHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		v1.POST("/scan-item", h.Scan.ScanItem)

		// Sale finalization requires an idempotency key so a retried commit
		// cannot bill the same cart twice.
		billing := v1.Group("/billing")
		{
			billing.POST("/finalize", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}), h.Billing.Finalize)
		}

		v1.GET("/sales", h.Sales.List)

		merchants := v1.Group("/merchants")
		{
			merchants.GET("", h.Merchant.List)
			merchants.POST("", h.Merchant.Create)
			merchants.GET("/:code", h.Merchant.Get)
		}
	}

	return router
}
