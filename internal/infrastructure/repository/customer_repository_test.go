package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_CreateWithCredential(t *testing.T) {
	db := setupTestDB(t)
	customers := NewCustomerRepository(db)
	credentials := NewCredentialRepository(db)
	ctx := context.Background()

	customer := &entity.Customer{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "0700"}
	credential := &entity.Credential{Username: "adal123", PasswordHash: "$2a$10$hash"}
	require.NoError(t, customers.CreateWithCredential(ctx, customer, credential))

	got, err := credentials.GetByUsername(ctx, "adal123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, customer.ID, got.SubjectID())
	assert.False(t, got.IsAdmin())

	byEmail, err := customers.GetByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, customer.ID, byEmail.ID)

	exists, err := credentials.UsernameExists(ctx, "adal123")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCustomerRepository_CreateWithCredential_RollsBack(t *testing.T) {
	db := setupTestDB(t)
	customers := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, customers.CreateWithCredential(ctx,
		&entity.Customer{Name: "Ada", Email: "ada@example.com"},
		&entity.Credential{Username: "taken", PasswordHash: "x"}))

	err := customers.CreateWithCredential(ctx,
		&entity.Customer{Name: "Bob", Email: "bob@example.com"},
		&entity.Credential{Username: "taken", PasswordHash: "y"})
	require.Error(t, err)

	bob, err := customers.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, bob)
}

func TestCustomerRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	got, err := NewCustomerRepository(db).GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCredentialRepository_UpdatePasswordHashAndTouch(t *testing.T) {
	db := setupTestDB(t)
	admins := NewAdminRepository(db)
	credentials := NewCredentialRepository(db)
	ctx := context.Background()

	admin := &entity.Admin{Name: "Root", Email: "root@example.com"}
	credential := &entity.Credential{Username: "root", PasswordHash: "plaintext"}
	require.NoError(t, admins.CreateWithCredential(ctx, admin, credential))

	require.NoError(t, credentials.UpdatePasswordHash(ctx, credential.ID, "$2a$10$new"))
	require.NoError(t, credentials.TouchLogin(ctx, credential.ID))

	got, err := credentials.GetByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$new", got.PasswordHash)
	assert.NotNil(t, got.LastLoginAt)
	assert.True(t, got.IsAdmin())
	assert.Equal(t, admin.ID, got.SubjectID())

	missing, err := credentials.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
