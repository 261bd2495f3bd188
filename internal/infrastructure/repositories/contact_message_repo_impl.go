package repositories

import (
	"context"

	"gorm.io/gorm"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/infrastructure/models"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, msg *entities.ContactMessage) error {
	m := &models.ContactMessage{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
		Status:  msg.Status,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.ID = m.ID
	msg.CreatedAt = m.CreatedAt
	return nil
}

func (r *ContactMessageRepository) ListLatest(ctx context.Context, limit int) ([]*entities.ContactMessage, error) {
	var ms []models.ContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.ContactMessage, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ContactMessageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContactMessageRepository) toEntity(m *models.ContactMessage) *entities.ContactMessage {
	return &entities.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}
