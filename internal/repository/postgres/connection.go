package postgres

import (
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs the gorm auto-migrations for every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.LeaveRequest{},
		&domain.CalendarEvent{},
		&domain.AmoliReport{},
		&domain.MoktobReport{},
		&domain.DawatiReport{},
		&domain.DawatiMojlishReport{},
		&domain.JamatReport{},
		&domain.DineFeraReport{},
		&domain.SoforReport{},
		&domain.TalimReport{},
		&domain.DayiReport{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:  NewUserRepository(db),
		Leave: NewLeaveRepository(db),
		Event: NewEventRepository(db),

		Amoli:         NewReportRepository[domain.AmoliReport](db),
		Moktob:        NewReportRepository[domain.MoktobReport](db),
		Dawati:        NewReportRepository[domain.DawatiReport](db),
		DawatiMojlish: NewReportRepository[domain.DawatiMojlishReport](db),
		Jamat:         NewReportRepository[domain.JamatReport](db),
		DineFera:      NewReportRepository[domain.DineFeraReport](db),
		Sofor:         NewReportRepository[domain.SoforReport](db),
		Talim:         NewReportRepository[domain.TalimReport](db),
		Dayi:          NewReportRepository[domain.DayiReport](db),
	}
}
