package postgres

import (
	"context"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Markaz != "" {
		q = q.Where("markaz = ?", filter.Markaz)
	}
	if filter.Division != "" {
		q = q.Where("division = ?", filter.Division)
	}
	if filter.District != "" {
		q = q.Where("district = ?", filter.District)
	}

	var users []*domain.User
	err := q.Order("created_at ASC").Find(&users).Error
	return users, err
}

// ClaimDevice is a single conditional UPDATE: the lock row is written only
// where it is unclaimed or already held by the claiming device, so two
// concurrent first claims cannot both see RowsAffected == 1.
func (r *userRepository) ClaimDevice(ctx context.Context, userID uuid.UUID, deviceID, sessionID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND (active_device_id IS NULL OR active_device_id = '' OR active_device_id = ?)", userID, deviceID).
		Updates(map[string]interface{}{
			"active_device_id":  deviceID,
			"active_session_id": sessionID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *userRepository) ReleaseDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND active_device_id = ?", userID, deviceID).
		Updates(map[string]interface{}{
			"active_device_id":  nil,
			"active_session_id": nil,
		}).Error
}
