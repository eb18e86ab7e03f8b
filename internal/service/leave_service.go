package service

import (
	"context"
	"errors"
	"time"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveService struct {
	leaveRepo repository.LeaveRepository
	userRepo  repository.UserRepository
}

func NewLeaveService(leaveRepo repository.LeaveRepository, userRepo repository.UserRepository) *LeaveService {
	return &LeaveService{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
	}
}

type FileLeaveInput struct {
	FromDate time.Time
	ToDate   time.Time
	Reason   string
}

func (s *LeaveService) File(ctx context.Context, userID uuid.UUID, input FileLeaveInput) (*domain.LeaveRequest, error) {
	if input.ToDate.Before(input.FromDate) {
		return nil, domain.ErrInvalidLeaveRange
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	leave := &domain.LeaveRequest{
		ID:        uuid.New(),
		UserID:    userID,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
		Reason:    input.Reason,
		Status:    domain.LeaveStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

func (s *LeaveService) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.LeaveRequest, error) {
	return s.leaveRepo.ListByUser(ctx, userID)
}

func (s *LeaveService) ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]*domain.LeaveRequest, error) {
	return s.leaveRepo.ListByStatus(ctx, status)
}

// Decide moves a pending request to approved or rejected. Decisions are
// final; a second decision is a conflict.
func (s *LeaveService) Decide(ctx context.Context, adminID, leaveID uuid.UUID, approve bool) (*domain.LeaveRequest, error) {
	leave, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, err
	}

	if leave.IsDecided() {
		return nil, domain.ErrLeaveDecided
	}

	now := time.Now()
	if approve {
		leave.Status = domain.LeaveStatusApproved
	} else {
		leave.Status = domain.LeaveStatusRejected
	}
	leave.DecidedBy = &adminID
	leave.DecidedAt = &now
	leave.UpdatedAt = now

	if err := s.leaveRepo.Update(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}
