package service

import (
	"context"
	"errors"
	"time"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventInput struct {
	Title       string
	Description string
	EventDate   time.Time
	Audience    []string
}

func (s *EventService) Create(ctx context.Context, createdBy uuid.UUID, input CreateEventInput) (*domain.CalendarEvent, error) {
	for _, a := range input.Audience {
		if !domain.Role(a).IsValid() {
			return nil, domain.ErrInvalidRole
		}
	}

	event := &domain.CalendarEvent{
		ID:          uuid.New(),
		CreatedBy:   createdBy,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Audience:    datatypes.NewJSONSlice(input.Audience),
		CreatedAt:   time.Now(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// List returns events in [from, to) visible to the given role. Zero bounds
// match everything.
func (s *EventService) List(ctx context.Context, role domain.Role, from, to time.Time) ([]*domain.CalendarEvent, error) {
	events, err := s.eventRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}

	visible := events[:0]
	for _, e := range events {
		if e.VisibleTo(role) {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}
