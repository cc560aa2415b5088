// Package scheduler runs cron jobs whose side effects must happen at most
// once per UTC day across every running instance.
package scheduler

import (
	"context"
	"fmt"
	"time"

	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/lock"
	"leave-tracker-backend/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// JobState is one step of a single trigger
type JobState string

const (
	StateIdle          JobState = "IDLE"
	StateLockAttempted JobState = "LOCK_ATTEMPTED"
	StateSkipped       JobState = "SKIPPED"
	StateRunning       JobState = "RUNNING"
	StateReleased      JobState = "RELEASED"
)

// Job is a scheduled body guarded by a daily lock in LockNamespace
type Job struct {
	Name          string
	Spec          string
	LockNamespace string
	Run           func(ctx context.Context) error
}

// Report describes what one trigger did
type Report struct {
	Job      string
	Key      lock.Key
	States   []JobState
	Acquired bool
	Panicked bool
	Err      error
}

// Final returns the state the trigger ended in
func (r Report) Final() JobState {
	if len(r.States) == 0 {
		return StateIdle
	}
	return r.States[len(r.States)-1]
}

func (r *Report) advance(s JobState) {
	r.States = append(r.States, s)
}

// Runner fires registered jobs on their cron specs in UTC
type Runner struct {
	cron    *cron.Cron
	locker  lock.Locker
	metrics *runnerMetrics
	now     func() time.Time
}

// NewRunner creates a runner that guards every job with locker
func NewRunner(locker lock.Locker, reg prometheus.Registerer) *Runner {
	return &Runner{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		locker:  locker,
		metrics: initRunnerMetrics(reg),
		now:     time.Now,
	}
}

// Register adds job to the cron table
func (r *Runner) Register(job Job) error {
	if job.Name == "" || job.LockNamespace == "" || job.Run == nil {
		return fmt.Errorf("job %q: name, lock namespace and body are required", job.Name)
	}
	if _, err := r.cron.AddFunc(job.Spec, func() {
		r.Trigger(context.Background(), job)
	}); err != nil {
		return fmt.Errorf("job %q: invalid cron spec %q: %w", job.Name, job.Spec, err)
	}
	logger.WithJob(job.Name).Infof("Registered scheduled job (%s UTC)", job.Spec)
	return nil
}

// Start begins firing jobs in the background
func (r *Runner) Start() {
	r.cron.Start()
}

// Stop prevents new triggers and waits for running ones until ctx ends
func (r *Runner) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Trigger runs one attempt of job: lock, run, release. It never panics and
// never returns the body's error; the outcome is reported and logged.
func (r *Runner) Trigger(ctx context.Context, job Job) Report {
	report := Report{Job: job.Name}
	report.advance(StateIdle)

	report.Key = lock.DailyKey(job.LockNamespace, r.now())
	log := logger.WithJob(job.Name).WithField("lock", report.Key.Label)

	report.advance(StateLockAttempted)
	acquired, err := r.locker.TryAcquire(ctx, report.Key)
	if err != nil {
		log.WithError(err).Warnf("Failed to acquire lock, skipping run")
		report.Err = fmt.Errorf("acquire %s: %w", report.Key, err)
		report.advance(StateSkipped)
		r.metrics.runs.WithLabelValues(job.Name, OutcomeLockError).Inc()
		return report
	}
	if !acquired {
		log.Warnf("Lock held by another instance, skipping run")
		report.Err = apperrors.ErrLockUnavailable
		report.advance(StateSkipped)
		r.metrics.runs.WithLabelValues(job.Name, OutcomeSkipped).Inc()
		return report
	}

	report.Acquired = true
	report.advance(StateRunning)
	started := time.Now()

	report.Panicked, report.Err = runBody(ctx, job)
	r.metrics.duration.WithLabelValues(job.Name).Observe(time.Since(started).Seconds())
	if report.Err != nil {
		log.WithError(report.Err).Errorf("Scheduled job failed")
		r.metrics.runs.WithLabelValues(job.Name, OutcomeFailed).Inc()
	} else {
		log.Infof("Scheduled job completed")
		r.metrics.runs.WithLabelValues(job.Name, OutcomeSucceeded).Inc()
	}

	// release even when the trigger context is already done
	if err := r.locker.Release(context.WithoutCancel(ctx), report.Key); err != nil {
		log.WithError(err).Errorf("Failed to release lock")
	}
	report.advance(StateReleased)
	return report
}

func runBody(ctx context.Context, job Job) (panicked bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
			panicked = true
		}
	}()
	return false, job.Run(ctx)
}
