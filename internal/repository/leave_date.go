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

// LeaveDateFilter selects leave records within an inclusive day range
type LeaveDateFilter struct {
	UserID   *string
	Start    time.Time
	End      time.Time
	Statuses []models.LeaveStatus
}

// LeaveDateRepository handles database operations for personal leave records
type LeaveDateRepository struct {
	db *gorm.DB
}

// NewLeaveDateRepository creates a new leave date repository
func NewLeaveDateRepository(db *gorm.DB) *LeaveDateRepository {
	return &LeaveDateRepository{db: db}
}

// FindByRange returns records matching filter ordered by date then user
func (r *LeaveDateRepository) FindByRange(ctx context.Context, filter LeaveDateFilter) ([]models.LeaveDate, error) {
	var records []models.LeaveDate

	query := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", calendar.Key(filter.Start), calendar.Key(filter.End))
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	if err := query.Order("date ASC").Order("user_id ASC").Find(&records).Error; err != nil {
		return nil, apperrors.NewPersistenceError("load leave dates", err)
	}
	return records, nil
}

// UpsertMany inserts records or, for an existing (user, date) pair, updates
// its status and updating actor. CreatedBy is kept from the first insert.
func (r *LeaveDateRepository) UpsertMany(ctx context.Context, records []models.LeaveDate) error {
	if len(records) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_by", "updated_at"}),
		}).
		Create(&records).Error
	if err != nil {
		return apperrors.NewPersistenceError("upsert leave dates", err)
	}
	return nil
}
