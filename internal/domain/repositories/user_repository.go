package repositories

import (
	"context"

	"sdp-site.backend/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	Count(ctx context.Context) (int64, error)
}
