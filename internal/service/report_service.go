package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/boe-dawah/boe-backend/internal/dhakatime"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier receives a notice after each successful report submission.
type Notifier interface {
	ReportSubmitted(kind domain.ReportKind, user *domain.User, at time.Time)
}

// ReportService implements the uniform per-kind submission contract:
// at most one record per user per Dhaka calendar day.
type ReportService[T domain.Report] struct {
	kind     domain.ReportKind
	repo     repository.ReportRepository[T]
	userRepo repository.UserRepository
	notifier Notifier
}

func NewReportService[T domain.Report](
	kind domain.ReportKind,
	repo repository.ReportRepository[T],
	userRepo repository.UserRepository,
	notifier Notifier,
) *ReportService[T] {
	return &ReportService[T]{
		kind:     kind,
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Kind returns the report kind this service handles.
func (s *ReportService[T]) Kind() domain.ReportKind {
	return s.kind
}

// Submit inserts today's record for the user. The record is stamped with the
// Dhaka-midnight instant; a record already inside today's day range is a
// conflict.
func (s *ReportService[T]) Submit(ctx context.Context, userID uuid.UUID, rec *T) (*T, error) {
	if !(*rec).HasData() {
		return nil, domain.ErrEmptyReport
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	start, end := dhakatime.DayRange(now)

	exists, err := s.repo.ExistsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadySubmitted
	}

	base := any(rec).(domain.BaseHolder).Base()
	base.ID = uuid.New()
	base.UserID = userID
	base.ReportDate = start
	base.CreatedAt = now
	base.UpdatedAt = now

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ReportSubmitted(s.kind, user, now)
	}

	return rec, nil
}

// SubmittedToday answers the mode=today query without returning records.
func (s *ReportService[T]) SubmittedToday(ctx context.Context, userID uuid.UUID) (bool, error) {
	start, end := dhakatime.DayRange(time.Now())
	return s.repo.ExistsInRange(ctx, userID, start, end)
}

// ListMine returns the caller's records inside [start, end).
func (s *ReportService[T]) ListMine(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*T, error) {
	return s.repo.ListByUser(ctx, userID, start, end)
}

// UpdateToday replaces the field values of today's record, keeping its
// identity and date stamps.
func (s *ReportService[T]) UpdateToday(ctx context.Context, userID uuid.UUID, rec *T) (*T, error) {
	if !(*rec).HasData() {
		return nil, domain.ErrEmptyReport
	}

	start, end := dhakatime.DayRange(time.Now())
	existing, err := s.repo.GetInRange(ctx, userID, start, end)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	existingBase := any(existing).(domain.BaseHolder).Base()
	base := any(rec).(domain.BaseHolder).Base()
	base.ID = existingBase.ID
	base.UserID = existingBase.UserID
	base.ReportDate = existingBase.ReportDate
	base.CreatedAt = existingBase.CreatedAt
	base.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AdminList returns records across users, filtered by the submitting user's
// grouping fields and a date range.
func (s *ReportService[T]) AdminList(ctx context.Context, filter repository.ReportFilter) ([]*T, error) {
	return s.repo.List(ctx, filter)
}

// ReportSummary aggregates one kind's records for dashboard tiles.
type ReportSummary struct {
	Kind   domain.ReportKind `json:"kind"`
	Count  int               `json:"count"`
	Totals map[string]int    `json:"totals"`
}

// Summarize sums every numeric field across the filtered records, keyed by
// the field's JSON name.
func (s *ReportService[T]) Summarize(ctx context.Context, filter repository.ReportFilter) (*ReportSummary, error) {
	recs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, rec := range recs {
		v := reflect.ValueOf(rec).Elem()
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.Anonymous || field.Type.Kind() != reflect.Int {
				continue
			}
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				name = field.Name
			}
			totals[name] += int(v.Field(i).Int())
		}
	}

	return &ReportSummary{
		Kind:   s.kind,
		Count:  len(recs),
		Totals: totals,
	}, nil
}
