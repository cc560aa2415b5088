package repository

import (
	"context"
	"time"

	"leave-tracker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeaveDateRepositoryInterface defines the interface for leave date repository operations
type LeaveDateRepositoryInterface interface {
	FindByRange(ctx context.Context, filter LeaveDateFilter) ([]models.LeaveDate, error)
	UpsertMany(ctx context.Context, records []models.LeaveDate) error
}

// CompanyHolidayRepositoryInterface defines the interface for company holiday repository operations
type CompanyHolidayRepositoryInterface interface {
	FindByRange(ctx context.Context, start, end time.Time) ([]models.CompanyHoliday, error)
	FindByDates(ctx context.Context, dates []time.Time) ([]models.CompanyHoliday, error)
	CreateMany(ctx context.Context, holidays []models.CompanyHoliday) error
}

var (
	_ LeaveDateRepositoryInterface      = (*LeaveDateRepository)(nil)
	_ CompanyHolidayRepositoryInterface = (*CompanyHolidayRepository)(nil)
)
