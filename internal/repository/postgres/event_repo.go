package postgres

import (
	"context"
	"time"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *eventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error) {
	q := r.db.WithContext(ctx).Model(&domain.CalendarEvent{})
	if !from.IsZero() {
		q = q.Where("event_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("event_date < ?", to)
	}

	var events []*domain.CalendarEvent
	err := q.Order("event_date ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.CalendarEvent{}, "id = ?", id).Error
}
