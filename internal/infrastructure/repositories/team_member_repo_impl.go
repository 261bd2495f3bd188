package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/infrastructure/models"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	m := r.toModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uint) (*entities.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := r.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	updates := map[string]interface{}{
		"name":          member.Name,
		"role":          member.Role,
		"bio":           member.Bio,
		"image":         member.Image,
		"linkedin_url":  member.LinkedinURL,
		"github_url":    member.GithubURL,
		"twitter_url":   member.TwitterURL,
		"email":         member.Email,
		"display_order": member.Order,
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("id = ?", member.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TeamMember{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TeamMemberRepository) toEntity(m *models.TeamMember) *entities.TeamMember {
	return &entities.TeamMember{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Bio:         m.Bio,
		Image:       m.Image,
		LinkedinURL: m.LinkedinURL,
		GithubURL:   m.GithubURL,
		TwitterURL:  m.TwitterURL,
		Email:       m.Email,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *TeamMemberRepository) toModel(e *entities.TeamMember) *models.TeamMember {
	return &models.TeamMember{
		ID:          e.ID,
		Name:        e.Name,
		Role:        e.Role,
		Bio:         e.Bio,
		Image:       e.Image,
		LinkedinURL: e.LinkedinURL,
		GithubURL:   e.GithubURL,
		TwitterURL:  e.TwitterURL,
		Email:       e.Email,
		Order:       e.Order,
	}
}
