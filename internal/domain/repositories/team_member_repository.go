package repositories

import (
	"context"

	"sdp-site.backend/internal/domain/entities"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entities.TeamMember) error
	GetByID(ctx context.Context, id uint) (*entities.TeamMember, error)
	// List returns all members ascending by display order, ties by id.
	List(ctx context.Context) ([]*entities.TeamMember, error)
	Update(ctx context.Context, member *entities.TeamMember) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
