package repositories

import (
	"context"

	"sdp-site.backend/internal/domain/entities"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entities.ContactMessage) error
	// ListLatest returns at most limit messages, newest first.
	ListLatest(ctx context.Context, limit int) ([]*entities.ContactMessage, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
