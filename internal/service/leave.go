package service

import (
	"context"
	"time"

	"leave-tracker-backend/internal/calendar"
	"leave-tracker-backend/internal/database/models"
	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/logger"
	"leave-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// SetLeaveDatesRequest represents the request body for setting leave dates
type SetLeaveDatesRequest struct {
	Dates  []string `json:"dates" binding:"required,min=1,dive,required" validate:"dive,max=40" example:"2024-12-24"`
	Status string   `json:"status" binding:"required" example:"LEAVE"`
}

// SetLeaveDatesResponse represents the result of setting leave dates
type SetLeaveDatesResponse struct {
	Success      bool               `json:"success"`
	UpdatedDates []models.LeaveDate `json:"updatedDates"`
}

// CreateCompanyHolidaysRequest represents the request body for configuring company holidays
type CreateCompanyHolidaysRequest struct {
	Dates []string `json:"dates" binding:"required,min=1,dive,required" validate:"dive,max=40" example:"2024-12-25"`
	Name  *string  `json:"name,omitempty" binding:"omitempty,max=200" validate:"omitempty,max=200" example:"Christmas"`
}

// CompanyHolidaysResponse represents the result of configuring company holidays
type CompanyHolidaysResponse struct {
	Success  bool                    `json:"success"`
	Holidays []models.CompanyHoliday `json:"holidays"`
}

// LeaveService implements the leave calendar operations
type LeaveService struct {
	leaveRepo   repository.LeaveDateRepositoryInterface
	holidayRepo repository.CompanyHolidayRepositoryInterface
	identity    IdentityServiceInterface
	validator   *validator.Validate
	now         func() time.Time
}

// NewLeaveService creates a new leave service
func NewLeaveService(
	leaveRepo repository.LeaveDateRepositoryInterface,
	holidayRepo repository.CompanyHolidayRepositoryInterface,
	identity IdentityServiceInterface,
	validator *validator.Validate,
) *LeaveService {
	return &LeaveService{
		leaveRepo:   leaveRepo,
		holidayRepo: holidayRepo,
		identity:    identity,
		validator:   validator,
		now:         time.Now,
	}
}

// WithClock replaces the clock used to default date ranges
func (s *LeaveService) WithClock(now func() time.Time) *LeaveService {
	s.now = now
	return s
}

// SetLeaveDates records status for each requested day of userID
func (s *LeaveService) SetLeaveDates(ctx context.Context, userID, actor string, req *SetLeaveDatesRequest) (*SetLeaveDatesResponse, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingUserID
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	status, ok := models.ParseLeaveStatus(req.Status)
	if !ok || !status.IsPersistable() {
		return nil, apperrors.ErrInvalidLeaveStatus
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return nil, err
	}

	records := make([]models.LeaveDate, 0, len(dates))
	for _, d := range dates {
		records = append(records, models.LeaveDate{
			BaseModel: models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
			UserID:    userID,
			Date:      d,
			Status:    status,
		})
	}

	if err := s.leaveRepo.UpsertMany(ctx, records); err != nil {
		logger.WithContext(ctx).WithError(err).Errorf("Failed to set leave dates for user %s", userID)
		return nil, err
	}

	return &SetLeaveDatesResponse{Success: true, UpdatedDates: records}, nil
}

// GetLeaveDates returns one status per day of the range for userID
func (s *LeaveService) GetLeaveDates(ctx context.Context, userID string, start, end *time.Time) ([]calendar.DayStatus, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingUserID
	}

	r, err := calendar.ResolveRange(start, end, s.now())
	if err != nil {
		return nil, err
	}

	personal, err := s.leaveRepo.FindByRange(ctx, repository.LeaveDateFilter{
		UserID: &userID,
		Start:  r.Start,
		End:    r.End,
	})
	if err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.FindByRange(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	return calendar.MergeStatuses(r, personal, holidays), nil
}

// GetTeamLeave returns, per day with any absence or company holiday, who is away
func (s *LeaveService) GetTeamLeave(ctx context.Context, start, end *time.Time) ([]calendar.TeamDayRoster, error) {
	r, err := calendar.ResolveRange(start, end, s.now())
	if err != nil {
		return nil, err
	}

	absences, err := s.leaveRepo.FindByRange(ctx, repository.LeaveDateFilter{
		Start:    r.Start,
		End:      r.End,
		Statuses: []models.LeaveStatus{models.LeaveStatusLeave, models.LeaveStatusHoliday},
	})
	if err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.FindByRange(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	return calendar.AggregateTeam(r, absences, holidays, s.profiles(ctx, absences)), nil
}

// profiles fetches display names for the subjects in records. Lookup
// failures degrade to record attribution instead of failing the request.
func (s *LeaveService) profiles(ctx context.Context, records []models.LeaveDate) map[string]calendar.Profile {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.UserID == "" {
			continue
		}
		if _, ok := seen[rec.UserID]; ok {
			continue
		}
		seen[rec.UserID] = struct{}{}
		ids = append(ids, rec.UserID)
	}

	result := make(map[string]calendar.Profile, len(ids))
	if len(ids) == 0 || s.identity == nil {
		return result
	}

	users, err := s.identity.GetUsersByIDs(ctx, ids)
	if err != nil {
		log := logger.WithContext(ctx).WithError(err)
		if apperrors.IsConfiguration(err) {
			log.Debugf("Identity lookup unavailable, using record attribution for team leave")
		} else {
			log.Warnf("Failed to fetch user profiles for team leave calendar")
		}
		return result
	}

	for _, u := range users {
		result[u.UserID] = calendar.Profile{
			SubjectID: u.UserID,
			Handle:    u.Handle,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		}
	}
	return result
}

// CreateCompanyHolidays adds holidays on the requested days, leaving days
// that already have one untouched, and returns the holidays on those days.
func (s *LeaveService) CreateCompanyHolidays(ctx context.Context, actor string, req *CreateCompanyHolidaysRequest) (*CompanyHolidaysResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return nil, err
	}

	holidays := make([]models.CompanyHoliday, 0, len(dates))
	for _, d := range dates {
		holidays = append(holidays, models.CompanyHoliday{
			BaseModel: models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
			Date:      d,
			Name:      req.Name,
		})
	}

	if err := s.holidayRepo.CreateMany(ctx, holidays); err != nil {
		return nil, err
	}

	stored, err := s.holidayRepo.FindByDates(ctx, dates)
	if err != nil {
		return nil, err
	}
	return &CompanyHolidaysResponse{Success: true, Holidays: stored}, nil
}

// GetCompanyHolidays returns the company holidays within the range
func (s *LeaveService) GetCompanyHolidays(ctx context.Context, start, end *time.Time) ([]models.CompanyHoliday, error) {
	r, err := calendar.ResolveRange(start, end, s.now())
	if err != nil {
		return nil, err
	}
	return s.holidayRepo.FindByRange(ctx, r.Start, r.End)
}

// parseDates parses raw into distinct UTC calendar days, keeping first-seen order
func parseDates(raw []string) ([]time.Time, error) {
	if len(raw) == 0 {
		return nil, apperrors.ErrNoDates
	}

	seen := make(map[string]struct{}, len(raw))
	dates := make([]time.Time, 0, len(raw))
	for _, value := range raw {
		d, err := calendar.ParseDay(value)
		if err != nil {
			return nil, apperrors.NewValidationError("dates", "Invalid date format: "+value)
		}
		key := calendar.Key(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, d)
	}
	return dates, nil
}
