package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/electrostore-api/internal/application/service"
	"github.com/sangkips/electrostore-api/internal/config"
	domainRepo "github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/infrastructure/cache"
	"github.com/sangkips/electrostore-api/internal/infrastructure/database"
	"github.com/sangkips/electrostore-api/internal/infrastructure/logger"
	"github.com/sangkips/electrostore-api/internal/infrastructure/repository"
	"github.com/sangkips/electrostore-api/internal/presentation/http/handler"
	"github.com/sangkips/electrostore-api/internal/presentation/http/middleware"
	"github.com/sangkips/electrostore-api/internal/presentation/http/routes"
	"github.com/sangkips/electrostore-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const idempotencyCleanupInterval = time.Hour

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.NewForEnvironment(cfg.App.Env, cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewDB(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed the default admin
	if err := database.SeedDefaultData(context.Background(), db, cfg.Admin, log); err != nil {
		log.Warn("Failed to seed default data", zap.Error(err))
	}

	productCache, err := cache.NewProductCache(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, product cache disabled", zap.Error(err))
		productCache = cache.NewNoopProductCache()
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	salesReportRepo := repository.NewSalesReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	credentialStore := service.NewCredentialStore(credentialRepo, bcrypt.DefaultCost, log)
	authService := service.NewAuthService(customerRepo, adminRepo, credentialRepo, credentialStore, jwtManager, log)
	productService := service.NewProductService(productRepo, productCache, log)
	checkoutService := service.NewCheckoutService(productRepo, productCache, orderRepo, notificationRepo, cfg.Checkout, log)
	trackingService := service.NewTrackingService(shipmentRepo, notificationRepo, log)
	customerService := service.NewCustomerService(customerRepo, orderRepo, shipmentRepo, notificationRepo)
	reportService := service.NewReportService(analyticsRepo, cfg.Report, log)
	salesReportService := service.NewSalesReportService(reportService, salesReportRepo, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Order:    handler.NewOrderHandler(checkoutService, trackingService),
		Customer: handler.NewCustomerHandler(customerService),
		Report:   handler.NewReportHandler(reportService, salesReportService),
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfigFrom(cfg.RateLimit))
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Sessions:        authService,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Logger:          log,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go cleanupIdempotencyKeys(ctx, idempotencyRepo, log)

	go func() {
		log.Info("Starting server",
			zap.String("service", cfg.App.Name),
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("Server exited gracefully")
}

// cleanupIdempotencyKeys removes expired keys until ctx is cancelled
func cleanupIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, log *zap.Logger) {
	ticker := time.NewTicker(idempotencyCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Warn("Failed to delete expired idempotency keys", zap.Error(err))
				continue
			}
			if deleted > 0 {
				log.Info("Deleted expired idempotency keys", zap.Int64("count", deleted))
			}
		}
	}
}
