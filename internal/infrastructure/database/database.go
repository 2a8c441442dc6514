package database

import (
	"context"
	"fmt"

	"github.com/sangkips/electrostore-api/internal/config"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB opens the configured database. PostgreSQL is the production store;
// SQLite serves local development.
func NewDB(cfg *config.DatabaseConfig, zapLogger *zap.Logger, logLevel string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres", "":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(zapLogger, logger.MapGormLogLevel(logLevel),
			logger.WithSlowThreshold(cfg.SlowQuery)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	zapLogger.Info("Connected to database", zap.String("driver", db.Dialector.Name()))
	return db, nil
}

// Models lists every persisted entity
func Models() []any {
	return []any{
		&entity.Customer{},
		&entity.Admin{},
		&entity.Credential{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
		&entity.Shipment{},
		&entity.Invoice{},
		&entity.Notification{},
		&entity.SalesReport{},
		&entity.IdempotencyKey{},
	}
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultData creates the configured admin account when it does not exist
func SeedDefaultData(ctx context.Context, db *gorm.DB, cfg config.AdminConfig, zapLogger *zap.Logger) error {
	if cfg.Username == "" || cfg.Password == "" {
		zapLogger.Info("Admin seed skipped, ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entity.Credential{}).
		Where("username = ?", cfg.Username).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up admin credential: %w", err)
	}
	if count > 0 {
		zapLogger.Info("Admin already exists", zap.String("username", cfg.Username))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	email := cfg.Email
	if email == "" {
		email = cfg.Username + "@localhost"
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin := &entity.Admin{Name: cfg.Name, Email: email}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Credential{
			Username:     cfg.Username,
			PasswordHash: string(hashed),
			AdminID:      &admin.ID,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	zapLogger.Info("Admin created", zap.String("username", cfg.Username))
	return nil
}
