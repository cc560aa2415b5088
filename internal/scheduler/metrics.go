package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes recorded on leave_job_runs_total
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
	OutcomeLockError = "lock_error"
)

type runnerMetrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func initRunnerMetrics(reg prometheus.Registerer) *runnerMetrics {
	factory := promauto.With(reg)
	return &runnerMetrics{
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leave_job_runs_total",
				Help: "Scheduled job triggers by outcome",
			},
			[]string{"job", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "leave_job_duration_seconds",
				Help:    "Duration of scheduled job bodies that ran",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		),
	}
}
