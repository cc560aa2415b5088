package repository

import (
	"context"
	"time"

	"leave-tracker-backend/internal/calendar"
	"leave-tracker-backend/internal/database/models"
	apperrors "leave-tracker-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyHolidayRepository handles database operations for company holidays
type CompanyHolidayRepository struct {
	db *gorm.DB
}

// NewCompanyHolidayRepository creates a new company holiday repository
func NewCompanyHolidayRepository(db *gorm.DB) *CompanyHolidayRepository {
	return &CompanyHolidayRepository{db: db}
}

// FindByRange returns holidays within the inclusive day range, ascending
func (r *CompanyHolidayRepository) FindByRange(ctx context.Context, start, end time.Time) ([]models.CompanyHoliday, error) {
	var holidays []models.CompanyHoliday
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", calendar.Key(start), calendar.Key(end)).
		Order("date ASC").
		Find(&holidays).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("load company holidays", err)
	}
	return holidays, nil
}

// FindByDates returns the holidays falling on any of dates, ascending
func (r *CompanyHolidayRepository) FindByDates(ctx context.Context, dates []time.Time) ([]models.CompanyHoliday, error) {
	if len(dates) == 0 {
		return []models.CompanyHoliday{}, nil
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, calendar.Key(d))
	}

	var holidays []models.CompanyHoliday
	if err := r.db.WithContext(ctx).Where("date IN ?", keys).Order("date ASC").Find(&holidays).Error; err != nil {
		return nil, apperrors.NewPersistenceError("load company holidays", err)
	}
	return holidays, nil
}

// CreateMany inserts holidays, skipping dates that already have one
func (r *CompanyHolidayRepository) CreateMany(ctx context.Context, holidays []models.CompanyHoliday) error {
	if len(holidays) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "date"}}, DoNothing: true}).
		Create(&holidays).Error
	if err != nil {
		return apperrors.NewPersistenceError("create company holidays", err)
	}
	return nil
}
