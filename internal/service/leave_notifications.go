package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"leave-tracker-backend/internal/calendar"
	"leave-tracker-backend/internal/config"
	"leave-tracker-backend/internal/logger"
)

const leaveDigestHeader = "These users are on leave today:"

// LeaveNotificationService sends the scheduled leave digests and reminders
type LeaveNotificationService struct {
	cfg      *config.Config
	leave    LeaveServiceInterface
	identity IdentityServiceInterface
	eventBus EventBusServiceInterface
	slack    SlackServiceInterface
	now      func() time.Time
}

// NewLeaveNotificationService creates a new leave notification service
func NewLeaveNotificationService(
	cfg *config.Config,
	leave LeaveServiceInterface,
	identity IdentityServiceInterface,
	eventBus EventBusServiceInterface,
	slack SlackServiceInterface,
) *LeaveNotificationService {
	return &LeaveNotificationService{
		cfg:      cfg,
		leave:    leave,
		identity: identity,
		eventBus: eventBus,
		slack:    slack,
		now:      time.Now,
	}
}

// WithClock replaces the clock that decides today and the month end
func (s *LeaveNotificationService) WithClock(now func() time.Time) *LeaveNotificationService {
	s.now = now
	return s
}

// SendDailyLeaveSummary posts today's absentees to Slack
func (s *LeaveNotificationService) SendDailyLeaveSummary(ctx context.Context) error {
	today := calendar.StartOfDay(s.now())

	rosters, err := s.leave.GetTeamLeave(ctx, &today, &today)
	if err != nil {
		return fmt.Errorf("failed to load today's leave: %w", err)
	}

	names := calendar.AbsentNames(rosters)
	logger.WithJob("daily-leave-summary").Infof("%d users on leave on %s", len(names), calendar.Key(today))

	if err := s.slack.SendNotification(ctx, BuildLeaveDigest(names)); err != nil {
		return fmt.Errorf("failed to send daily leave summary: %w", err)
	}
	return nil
}

// SendMonthlyLeaveReminder emails staff on the last UTC day of the month,
// asking them to record next month's leave.
func (s *LeaveNotificationService) SendMonthlyLeaveReminder(ctx context.Context) error {
	log := logger.WithJob("monthly-leave-reminder")
	now := s.now().UTC()

	if !calendar.IsLastDayOfMonth(now) {
		log.Debugf("Not the last day of the month, nothing to send")
		return nil
	}

	templateID := s.cfg.LeaveReminderTemplateID
	if templateID == "" {
		log.Warnf("Monthly leave reminder skipped: SENDGRID_LEAVE_REMINDER_TEMPLATE_ID is not set")
		return nil
	}

	members, err := s.identity.ListRoleMembersByName(ctx, s.cfg.StaffRole)
	if err != nil {
		return fmt.Errorf("failed to fetch %s members for leave reminder: %w", s.cfg.StaffRole, err)
	}

	recipients := UniqueEmails(members)
	if len(recipients) == 0 {
		log.Warnf("Monthly leave reminder skipped: no %s emails found", s.cfg.StaffRole)
		return nil
	}

	month, year := ReminderMonthYear(now, s.cfg.LeaveReminderMonthOffset)
	payload := NewEmailPayload(templateID, recipients, map[string]interface{}{
		"month": month,
		"year":  year,
	})
	if err := s.eventBus.SendEmail(ctx, payload); err != nil {
		return fmt.Errorf("failed to send monthly leave reminder email: %w", err)
	}

	log.Infof("Monthly leave reminder sent to %d recipients", len(recipients))
	return nil
}

// BuildLeaveDigest renders the Slack digest for names
func BuildLeaveDigest(names []string) string {
	if len(names) == 0 {
		return leaveDigestHeader + "\n* None"
	}

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, leaveDigestHeader)
	for _, name := range names {
		lines = append(lines, "* "+name)
	}
	return strings.Join(lines, "\n")
}

// UniqueEmails returns the distinct lower-cased non-empty emails of members
func UniqueEmails(members []IdentityRoleMember) []string {
	seen := make(map[string]struct{}, len(members))
	emails := make([]string, 0, len(members))
	for _, m := range members {
		email := strings.ToLower(strings.TrimSpace(m.Email))
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}
	return emails
}

// ReminderMonthYear names the month offset months after now's UTC month
func ReminderMonthYear(now time.Time, offset int) (string, string) {
	now = now.UTC()
	target := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	return target.Month().String(), strconv.Itoa(target.Year())
}
