package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/electrostore-api/internal/config"
	domainRepo "github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/infrastructure/logger"
	"github.com/sangkips/electrostore-api/internal/presentation/http/handler"
	"github.com/sangkips/electrostore-api/internal/presentation/http/middleware"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Customer *handler.CustomerHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Sessions        middleware.SessionResolver
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.RateLimiter
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	middleware.SetupValidator()

	router := gin.New()

	// Global middleware
	router.Use(logger.GinMiddleware(deps.Logger))
	router.Use(logger.Recovery(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	rateLimit := deps.RateLimiter.Middleware()
	authenticate := middleware.AuthMiddleware(deps.Sessions)

	v1 := router.Group("/api/v1")
	{
		// Public routes are limited per client IP
		public := v1.Group("", rateLimit)
		registerAuthRoutes(public, h)
		registerCatalogRoutes(public, h)
		registerTrackingRoutes(public, h)

		// Authenticated routes are limited per session
		customer := v1.Group("", authenticate, rateLimit, middleware.RequireCustomer())
		registerCustomerRoutes(customer, h, deps)

		admin := v1.Group("/admin", authenticate, rateLimit, middleware.RequireAdmin())
		registerAdminRoutes(admin, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/admin/login", h.Auth.AdminLogin)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
	}
}

func registerTrackingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	track := v1.Group("/track")
	{
		track.GET("/:order_id", h.Order.TrackByOrderID)
		track.POST("", h.Order.TrackByContact)
	}
}

func registerCustomerRoutes(customer *gin.RouterGroup, h *Handlers, deps *Deps) {
	customer.POST("/checkout", middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
		TTL:  deps.Cfg.Idempotency.TTL,
	}), h.Order.Checkout)

	me := customer.Group("/me")
	{
		me.GET("", h.Customer.Me)
		me.PUT("", h.Customer.UpdateMe)
		me.GET("/orders", h.Customer.Orders)
		me.GET("/shipments", h.Customer.Shipments)
		me.GET("/notifications", h.Customer.Notifications)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	products := admin.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	admin.PUT("/shipments/:order_id/status", h.Order.UpdateShipmentStatus)

	analytics := admin.Group("/analytics")
	{
		analytics.GET("/sales", h.Report.Sales)
		analytics.GET("/daily", h.Report.Daily)
	}

	reports := admin.Group("/reports")
	{
		reports.POST("", h.Report.Generate)
		reports.GET("", h.Report.List)
		reports.GET("/:id", h.Report.Get)
		reports.PUT("/:id", h.Report.Update)
	}
}
