package repositories

import (
	"context"

	"sdp-site.backend/internal/domain/entities"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *entities.FAQ) error
	GetByID(ctx context.Context, id uint) (*entities.FAQ, error)
	// List returns FAQs ascending by display order, ties by id. When
	// includeInactive is false, hidden FAQs are filtered out.
	List(ctx context.Context, includeInactive bool) ([]*entities.FAQ, error)
	Update(ctx context.Context, faq *entities.FAQ) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
