package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and session subject
	GetByKey(ctx context.Context, key string, subjectID uuid.UUID) (*entity.IdempotencyKey, error)
	// Claim stores ikey as pending. It returns false when an unexpired row
	// for the same key and subject already exists.
	Claim(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error)
	// Complete records the response of a claimed key
	Complete(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Release deletes a pending key so the request can be retried
	Release(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes expired idempotency keys (for cleanup)
	DeleteExpired(ctx context.Context) (int64, error)
}
