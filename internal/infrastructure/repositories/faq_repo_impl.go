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

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, faq *entities.FAQ) error {
	m := r.toModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	faq.ID = m.ID
	faq.CreatedAt = m.CreatedAt
	faq.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, id uint) (*entities.FAQ, error) {
	var m models.FAQ
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *FAQRepository) List(ctx context.Context, includeInactive bool) ([]*entities.FAQ, error) {
	var ms []models.FAQ
	query := r.db.WithContext(ctx).Model(&models.FAQ{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("display_order ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.FAQ, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *FAQRepository) Update(ctx context.Context, faq *entities.FAQ) error {
	updates := map[string]interface{}{
		"question":      faq.Question,
		"answer":        faq.Answer,
		"display_order": faq.Order,
		"is_active":     faq.IsActive,
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.FAQ{}).
		Where("id = ?", faq.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQ{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *FAQRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FAQ{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FAQRepository) toEntity(m *models.FAQ) *entities.FAQ {
	return &entities.FAQ{
		ID:        m.ID,
		Question:  m.Question,
		Answer:    m.Answer,
		Order:     m.Order,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *FAQRepository) toModel(e *entities.FAQ) *models.FAQ {
	return &models.FAQ{
		ID:       e.ID,
		Question: e.Question,
		Answer:   e.Answer,
		Order:    e.Order,
		IsActive: e.IsActive,
	}
}
