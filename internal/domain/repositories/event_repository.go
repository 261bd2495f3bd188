package repositories

import (
	"context"
	"time"

	"sdp-site.backend/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uint) (*entities.Event, error)
	// ListUpcoming returns events dated now or later, ascending by date.
	ListUpcoming(ctx context.Context, now time.Time) ([]*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
