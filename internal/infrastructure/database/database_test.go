package database

import (
	"context"
	"testing"

	"github.com/sangkips/electrostore-api/internal/config"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func sqliteConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(&config.DatabaseConfig{Driver: "oracle"}, zap.NewNop(), "silent")
	assert.Error(t, err)
}

func TestSeedDefaultData(t *testing.T) {
	db, err := NewDB(sqliteConfig(t), zap.NewNop(), "silent")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	cfg := config.AdminConfig{Username: "admin", Password: "s3cret", Name: "Store Admin"}
	ctx := context.Background()

	require.NoError(t, SeedDefaultData(ctx, db, cfg, zap.NewNop()))
	// Second run is a no-op
	require.NoError(t, SeedDefaultData(ctx, db, cfg, zap.NewNop()))

	var creds []entity.Credential
	require.NoError(t, db.Find(&creds).Error)
	require.Len(t, creds, 1)
	assert.True(t, creds[0].IsAdmin())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(creds[0].PasswordHash), []byte("s3cret")))
}

func TestSeedDefaultData_SkipsWithoutPassword(t *testing.T) {
	db, err := NewDB(sqliteConfig(t), zap.NewNop(), "silent")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, SeedDefaultData(context.Background(), db, config.AdminConfig{Username: "admin"}, zap.NewNop()))

	var count int64
	db.Model(&entity.Admin{}).Count(&count)
	assert.Zero(t, count)
}
