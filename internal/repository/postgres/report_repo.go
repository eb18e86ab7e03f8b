package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reportRepository is one gorm store shared by all nine report tables; the
// table name comes from the type parameter.
type reportRepository[T domain.Report] struct {
	db    *gorm.DB
	table string
}

func NewReportRepository[T domain.Report](db *gorm.DB) *reportRepository[T] {
	var zero T
	return &reportRepository[T]{db: db, table: zero.TableName()}
}

func (r *reportRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *reportRepository[T]) ExistsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ? AND report_date >= ? AND report_date < ?", userID, start, end).
		Count(&count).Error
	return count > 0, err
}

func (r *reportRepository[T]) GetInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND report_date >= ? AND report_date < ?", userID, start, end).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByUser returns the user's records in [start, end). Zero bounds are
// unbounded.
func (r *reportRepository[T]) ListByUser(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*T, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !start.IsZero() {
		q = q.Where("report_date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("report_date < ?", end)
	}

	var recs []*T
	err := q.Order("report_date ASC").Find(&recs).Error
	return recs, err
}

func (r *reportRepository[T]) List(ctx context.Context, filter repository.ReportFilter) ([]*T, error) {
	q := r.db.WithContext(ctx).Table(r.table).
		Select(r.table+".*").
		Joins(fmt.Sprintf("JOIN users ON users.id = %s.user_id", r.table))
	if filter.Division != "" {
		q = q.Where("users.division = ?", filter.Division)
	}
	if filter.District != "" {
		q = q.Where("users.district = ?", filter.District)
	}
	if !filter.From.IsZero() {
		q = q.Where(r.table+".report_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where(r.table+".report_date < ?", filter.To)
	}

	var recs []*T
	err := q.Order(r.table + ".report_date ASC").Find(&recs).Error
	return recs, err
}

func (r *reportRepository[T]) Save(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
