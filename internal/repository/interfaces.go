package repository

import (
	"context"
	"time"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/google/uuid"
)

// UserFilter narrows admin user listings. Empty fields match everything.
type UserFilter struct {
	Role     domain.Role
	Markaz   string
	Division string
	District string
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)

	// ClaimDevice atomically claims the single-active-session lock: the
	// device/session pair is written only when the lock is unclaimed or
	// already held by the same device. Returns false when another device
	// holds it. Two concurrent first claims cannot both succeed.
	ClaimDevice(ctx context.Context, userID uuid.UUID, deviceID, sessionID string) (bool, error)

	// ReleaseDevice clears the lock only if the given device holds it.
	ReleaseDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}

// ReportFilter narrows admin report listings. Zero time bounds match
// everything; Division/District filter by the submitting user's grouping.
type ReportFilter struct {
	Division string
	District string
	From     time.Time
	To       time.Time
}

// ReportRepository is the uniform store for one daily report table.
// T is the concrete report struct (e.g. domain.AmoliReport).
type ReportRepository[T domain.Report] interface {
	Create(ctx context.Context, rec *T) error
	ExistsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
	GetInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (*T, error)
	ListByUser(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*T, error)
	List(ctx context.Context, filter ReportFilter) ([]*T, error)
	Save(ctx context.Context, rec *T) error
}

type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.LeaveRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LeaveRequest, error)
	ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]*domain.LeaveRequest, error)
	Update(ctx context.Context, leave *domain.LeaveRequest) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error)
	List(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User  UserRepository
	Leave LeaveRepository
	Event EventRepository

	Amoli         ReportRepository[domain.AmoliReport]
	Moktob        ReportRepository[domain.MoktobReport]
	Dawati        ReportRepository[domain.DawatiReport]
	DawatiMojlish ReportRepository[domain.DawatiMojlishReport]
	Jamat         ReportRepository[domain.JamatReport]
	DineFera      ReportRepository[domain.DineFeraReport]
	Sofor         ReportRepository[domain.SoforReport]
	Talim         ReportRepository[domain.TalimReport]
	Dayi          ReportRepository[domain.DayiReport]
}
