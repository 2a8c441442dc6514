package repository

import (
	"context"
	"testing"

	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	ada := seedCustomer(t, db, "Ada", "ada@example.com", "0700")
	bob := seedCustomer(t, db, "Bob", "bob@example.com", "0711")

	require.NoError(t, repo.Create(ctx, &entity.Notification{CustomerID: ada.ID, Type: entity.NotificationOrderPlaced, Content: "placed"}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{CustomerID: bob.ID, Type: entity.NotificationOrderPlaced, Content: "placed"}))

	items, total, err := repo.ListByCustomer(ctx, ada.ID, pagination.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "placed", items[0].Content)
}
