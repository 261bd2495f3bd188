package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/infrastructure/models"
)

func TestContactMessageRepository_CreateAndListLatest(t *testing.T) {
	db := newTestDB(t)
	createContactMessageTable(t, db)
	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	msg := &entities.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "I have a question",
		Status:  entities.ContactStatusUnread,
	}
	require.NoError(t, repo.Create(ctx, msg))
	require.NotZero(t, msg.ID)
	require.False(t, msg.CreatedAt.IsZero())

	items, err := repo.ListLatest(ctx, 50)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "unread", items[0].Status)
}

func TestContactMessageRepository_ListLatestCapAndOrder(t *testing.T) {
	db := newTestDB(t)
	createContactMessageTable(t, db)
	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		m := &models.ContactMessage{
			Name:      fmt.Sprintf("Sender %d", i),
			Email:     "s@example.com",
			Subject:   fmt.Sprintf("Subject %d", i),
			Message:   "body",
			Status:    entities.ContactStatusUnread,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(m).Error)
	}

	items, err := repo.ListLatest(ctx, 50)
	require.NoError(t, err)
	require.Len(t, items, 50)
	require.Equal(t, "Subject 59", items[0].Subject)
	require.Equal(t, "Subject 10", items[49].Subject)

	for i := 1; i < len(items); i++ {
		require.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}
}

func TestContactMessageRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	createContactMessageTable(t, db)
	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	msg := &entities.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "body",
		Status:  entities.ContactStatusUnread,
	}
	require.NoError(t, repo.Create(ctx, msg))

	require.NoError(t, repo.Delete(ctx, msg.ID))
	require.ErrorIs(t, repo.Delete(ctx, msg.ID), domainerrors.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}
