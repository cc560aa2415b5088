package service

import (
	"context"
	"time"

	"leave-tracker-backend/internal/calendar"
	"leave-tracker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeaveServiceInterface defines the interface for leave service
type LeaveServiceInterface interface {
	SetLeaveDates(ctx context.Context, userID, actor string, req *SetLeaveDatesRequest) (*SetLeaveDatesResponse, error)
	GetLeaveDates(ctx context.Context, userID string, start, end *time.Time) ([]calendar.DayStatus, error)
	GetTeamLeave(ctx context.Context, start, end *time.Time) ([]calendar.TeamDayRoster, error)
	CreateCompanyHolidays(ctx context.Context, actor string, req *CreateCompanyHolidaysRequest) (*CompanyHolidaysResponse, error)
	GetCompanyHolidays(ctx context.Context, start, end *time.Time) ([]models.CompanyHoliday, error)
}

// LeaveNotificationServiceInterface defines the interface for scheduled leave notifications
type LeaveNotificationServiceInterface interface {
	SendDailyLeaveSummary(ctx context.Context) error
	SendMonthlyLeaveReminder(ctx context.Context) error
}

// SlackServiceInterface defines the interface for Slack notifications
type SlackServiceInterface interface {
	SendNotification(ctx context.Context, message string) error
	SendTestNotification(ctx context.Context, message string) error
}

// IdentityServiceInterface defines the interface for identity API lookups
type IdentityServiceInterface interface {
	ListRoleMembersByName(ctx context.Context, roleName string) ([]IdentityRoleMember, error)
	GetUsersByIDs(ctx context.Context, ids []string) ([]IdentityUserProfile, error)
}

// EventBusServiceInterface defines the interface for publishing bus events
type EventBusServiceInterface interface {
	SendEmail(ctx context.Context, payload EmailPayload) error
}

// TokenProvider supplies bearer tokens for service-to-service calls
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

var (
	_ LeaveServiceInterface             = (*LeaveService)(nil)
	_ LeaveNotificationServiceInterface = (*LeaveNotificationService)(nil)
	_ SlackServiceInterface             = (*SlackService)(nil)
	_ IdentityServiceInterface          = (*IdentityService)(nil)
	_ EventBusServiceInterface          = (*EventBusService)(nil)
	_ TokenProvider                     = (*M2MService)(nil)
)
