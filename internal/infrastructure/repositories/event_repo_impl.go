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

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	m := r.toModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	event.ID = m.ID
	event.CreatedAt = m.CreatedAt
	event.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*entities.Event, error) {
	var m models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*entities.Event, error) {
	var ms []models.Event
	if err := r.db.WithContext(ctx).
		Where("date >= ?", now).
		Order("date ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	updates := map[string]interface{}{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"time":        event.Time,
		"location":    event.Location,
		"category":    event.Category,
		"updated_at":  time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EventRepository) toEntity(m *models.Event) *entities.Event {
	return &entities.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Time:        m.Time,
		Location:    m.Location,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *EventRepository) toModel(e *entities.Event) *models.Event {
	return &models.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
	}
}
