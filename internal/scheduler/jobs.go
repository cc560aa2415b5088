package scheduler

import (
	"context"

	"leave-tracker-backend/internal/config"
)

// Job names, also used as lock namespace suffixes
const (
	DailyLeaveSummaryJob    = "daily-leave-summary"
	MonthlyLeaveReminderJob = "monthly-leave-reminder"
)

// LeaveNotifier is the work the leave jobs perform
type LeaveNotifier interface {
	SendDailyLeaveSummary(ctx context.Context) error
	SendMonthlyLeaveReminder(ctx context.Context) error
}

// LeaveJobs builds the daily summary and month-end reminder jobs
func LeaveJobs(cfg *config.Config, notifier LeaveNotifier) []Job {
	return []Job{
		{
			Name:          DailyLeaveSummaryJob,
			Spec:          cfg.DailySummaryCron,
			LockNamespace: cfg.LockNamespace + ":" + DailyLeaveSummaryJob,
			Run:           notifier.SendDailyLeaveSummary,
		},
		{
			Name:          MonthlyLeaveReminderJob,
			Spec:          cfg.MonthlyReminderCron,
			LockNamespace: cfg.LockNamespace + ":" + MonthlyLeaveReminderJob,
			Run:           notifier.SendMonthlyLeaveReminder,
		},
	}
}
