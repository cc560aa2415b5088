package testutils

import (
	"time"

	"leave-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeaveDateFactory provides methods to create test LeaveDate data
type LeaveDateFactory struct{}

// NewLeaveDateFactory creates a new LeaveDateFactory
func NewLeaveDateFactory() *LeaveDateFactory {
	return &LeaveDateFactory{}
}

// Create creates a test LeaveDate with default values
func (f *LeaveDateFactory) Create() *models.LeaveDate {
	return &models.LeaveDate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			CreatedBy: "testuser",
			UpdatedAt: time.Now(),
			UpdatedBy: "testuser",
		},
		UserID: "1001",
		Date:   time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		Status: models.LeaveStatusLeave,
	}
}

// For creates a leave record for the given user, day and status
func (f *LeaveDateFactory) For(userID string, date time.Time, status models.LeaveStatus) *models.LeaveDate {
	ld := f.Create()
	ld.UserID = userID
	ld.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	ld.Status = status
	return ld
}

// WithActor sets the creating and updating actor
func (f *LeaveDateFactory) WithActor(ld *models.LeaveDate, actor string) *models.LeaveDate {
	ld.CreatedBy = actor
	ld.UpdatedBy = actor
	return ld
}

// CompanyHolidayFactory provides methods to create test CompanyHoliday data
type CompanyHolidayFactory struct{}

// NewCompanyHolidayFactory creates a new CompanyHolidayFactory
func NewCompanyHolidayFactory() *CompanyHolidayFactory {
	return &CompanyHolidayFactory{}
}

// Create creates a test CompanyHoliday with default values
func (f *CompanyHolidayFactory) Create() *models.CompanyHoliday {
	name := "Test Holiday"
	return &models.CompanyHoliday{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			CreatedBy: "admin",
			UpdatedAt: time.Now(),
		},
		Date: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		Name: &name,
	}
}

// On creates a holiday on the given day, unnamed when name is empty
func (f *CompanyHolidayFactory) On(date time.Time, name string) *models.CompanyHoliday {
	h := f.Create()
	h.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if name == "" {
		h.Name = nil
	} else {
		h.Name = &name
	}
	return h
}

// FactorySet groups every factory for convenient use in suites
type FactorySet struct {
	LeaveDate      *LeaveDateFactory
	CompanyHoliday *CompanyHolidayFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		LeaveDate:      NewLeaveDateFactory(),
		CompanyHoliday: NewCompanyHolidayFactory(),
	}
}
