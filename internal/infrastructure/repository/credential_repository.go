package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	domainRepo "github.com/sangkips/electrostore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) domainRepo.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credential entity.Credential
	err := r.db.WithContext(ctx).First(&credential, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &credential, err
}

func (r *credentialRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Credential{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (r *credentialRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&entity.Credential{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (r *credentialRepository) TouchLogin(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Credential{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now().UTC()).Error
}
