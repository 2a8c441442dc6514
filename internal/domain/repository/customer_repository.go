package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	// CreateWithCredential stores a customer and its login in one transaction
	CreateWithCredential(ctx context.Context, customer *entity.Customer, credential *entity.Credential) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}

// AdminRepository defines the interface for admin data operations
type AdminRepository interface {
	CreateWithCredential(ctx context.Context, admin *entity.Admin, credential *entity.Credential) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
}

// CredentialRepository defines the interface for login secrets
type CredentialRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.Credential, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	TouchLogin(ctx context.Context, id uuid.UUID) error
}
