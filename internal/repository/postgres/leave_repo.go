package postgres

import (
	"context"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) *leaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *domain.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error) {
	var leave domain.LeaveRequest
	err := r.db.WithContext(ctx).First(&leave, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LeaveRequest, error) {
	var leaves []*domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]*domain.LeaveRequest, error) {
	var leaves []*domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) Update(ctx context.Context, leave *domain.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(leave).Error
}
