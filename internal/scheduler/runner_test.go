package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/lock"
	"leave-tracker-backend/internal/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 14, 0, 0, 5, 0, time.UTC)

// RunnerTestSuite drives Trigger against a mocked locker
type RunnerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLocker *mocks.MockLocker
	registry   *prometheus.Registry
	runner     *Runner
	key        lock.Key
}

func (suite *RunnerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLocker = mocks.NewMockLocker(suite.ctrl)
	suite.registry = prometheus.NewRegistry()
	suite.runner = NewRunner(suite.mockLocker, suite.registry)
	suite.runner.now = func() time.Time { return fixedNow }
	suite.key = lock.DailyKey("leave-api:daily-leave-summary", fixedNow)
}

func (suite *RunnerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RunnerTestSuite) job(body func(ctx context.Context) error) Job {
	return Job{
		Name:          DailyLeaveSummaryJob,
		Spec:          "0 0 * * 1-5",
		LockNamespace: "leave-api:daily-leave-summary",
		Run:           body,
	}
}

func (suite *RunnerTestSuite) runs(outcome string) float64 {
	return testutil.ToFloat64(suite.runner.metrics.runs.WithLabelValues(DailyLeaveSummaryJob, outcome))
}

func (suite *RunnerTestSuite) TestTrigger_AcquiredRunsAndReleases() {
	calls := 0
	gomock.InOrder(
		suite.mockLocker.EXPECT().TryAcquire(gomock.Any(), suite.key).Return(true, nil),
		suite.mockLocker.EXPECT().Release(gomock.Any(), suite.key).Return(nil).Times(1),
	)

	report := suite.runner.Trigger(context.Background(), suite.job(func(ctx context.Context) error {
		calls++
		return nil
	}))

	suite.Equal(1, calls)
	suite.True(report.Acquired)
	suite.NoError(report.Err)
	suite.Equal([]JobState{StateIdle, StateLockAttempted, StateRunning, StateReleased}, report.States)
	suite.Equal(StateReleased, report.Final())
	suite.Equal(float64(1), suite.runs(OutcomeSucceeded))
}

func (suite *RunnerTestSuite) TestTrigger_NotAcquiredSkipsBody() {
	suite.mockLocker.EXPECT().TryAcquire(gomock.Any(), suite.key).Return(false, nil)

	report := suite.runner.Trigger(context.Background(), suite.job(func(ctx context.Context) error {
		suite.Fail("body must not run without the lock")
		return nil
	}))

	suite.False(report.Acquired)
	suite.ErrorIs(report.Err, apperrors.ErrLockUnavailable)
	suite.Equal([]JobState{StateIdle, StateLockAttempted, StateSkipped}, report.States)
	suite.Equal(float64(1), suite.runs(OutcomeSkipped))
}

func (suite *RunnerTestSuite) TestTrigger_AcquireErrorFailsClosed() {
	suite.mockLocker.EXPECT().TryAcquire(gomock.Any(), suite.key).Return(false, errors.New("connection reset"))

	report := suite.runner.Trigger(context.Background(), suite.job(func(ctx context.Context) error {
		suite.Fail("body must not run when the lock store fails")
		return nil
	}))

	suite.False(report.Acquired)
	suite.ErrorContains(report.Err, "connection reset")
	suite.Equal(StateSkipped, report.Final())
	suite.Equal(float64(1), suite.runs(OutcomeLockError))
}

func (suite *RunnerTestSuite) TestTrigger_BodyErrorStillReleases() {
	gomock.InOrder(
		suite.mockLocker.EXPECT().TryAcquire(gomock.Any(), suite.key).Return(true, nil),
		suite.mockLocker.EXPECT().Release(gomock.Any(), suite.key).Return(nil).Times(1),
	)

	report := suite.runner.Trigger(context.Background(), suite.job(func(ctx context.Context) error {
		return errors.New("slack down")
	}))

	suite.ErrorContains(report.Err, "slack down")
	suite.False(report.Panicked)
	suite.Equal(StateReleased, report.Final())
	suite.Equal(float64(1), suite.runs(OutcomeFailed))
}

func (suite *RunnerTestSuite) TestTrigger_PanicIsRecoveredAndReleases() {
	gomock.InOrder(
		suite.mockLocker.EXPECT().TryAcquire(gomock.Any(), suite.key).Return(true, nil),
		suite.mockLocker.EXPECT().Release(gomock.Any(), suite.key).Return(nil).Times(1),
	)

	var report Report
	suite.NotPanics(func() {
		report = suite.runner.Trigger(context.Background(), suite.job(func(ctx context.Context) error {
			panic("nil map")
		}))
	})

	suite.True(report.Panicked)
	suite.ErrorContains(report.Err, "nil map")
	suite.Equal(StateReleased, report.Final())
}

func (suite *RunnerTestSuite) TestTrigger_ReleaseErrorIsSwallowed() {
	gomock.InOrder(
		suite.mockLocker.EXPECT().TryAcquire(gomock.Any(), suite.key).Return(true, nil),
		suite.mockLocker.EXPECT().Release(gomock.Any(), suite.key).Return(errors.New("broken pipe")).Times(1),
	)

	report := suite.runner.Trigger(context.Background(), suite.job(func(ctx context.Context) error {
		return nil
	}))

	suite.NoError(report.Err)
	suite.Equal(StateReleased, report.Final())
}

func (suite *RunnerTestSuite) TestTrigger_ReleasesWithCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		suite.mockLocker.EXPECT().TryAcquire(gomock.Any(), suite.key).Return(true, nil),
		suite.mockLocker.EXPECT().Release(gomock.Any(), suite.key).DoAndReturn(
			func(releaseCtx context.Context, _ lock.Key) error {
				return releaseCtx.Err()
			}).Times(1),
	)

	report := suite.runner.Trigger(ctx, suite.job(func(ctx context.Context) error {
		cancel()
		return nil
	}))

	suite.Equal(StateReleased, report.Final())
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

// Two instances sharing one store: only one body runs per day.
func TestTrigger_SingleExecutionAcrossInstances(t *testing.T) {
	shared := lock.NewMemoryLocker()
	var executions int32
	entered := make(chan struct{})
	proceed := make(chan struct{})

	job := Job{
		Name:          DailyLeaveSummaryJob,
		Spec:          "0 0 * * 1-5",
		LockNamespace: "leave-api:daily",
		Run: func(ctx context.Context) error {
			if atomic.AddInt32(&executions, 1) == 1 {
				close(entered)
				<-proceed
			}
			return nil
		},
	}

	first := NewRunner(shared, prometheus.NewRegistry())
	second := NewRunner(shared, prometheus.NewRegistry())
	first.now = func() time.Time { return fixedNow }
	second.now = func() time.Time { return fixedNow }

	var wg sync.WaitGroup
	var firstReport Report
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstReport = first.Trigger(context.Background(), job)
	}()

	<-entered
	secondReport := second.Trigger(context.Background(), job)
	close(proceed)
	wg.Wait()

	assert.Equal(t, int32(1), executions)
	assert.Equal(t, StateReleased, firstReport.Final())
	assert.Equal(t, StateSkipped, secondReport.Final())

	// a later instance finds the key free again
	ok, err := shared.TryAcquire(context.Background(), lock.DailyKey("leave-api:daily", fixedNow))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister(t *testing.T) {
	r := NewRunner(lock.NewMemoryLocker(), prometheus.NewRegistry())
	noop := func(ctx context.Context) error { return nil }

	t.Run("Valid job", func(t *testing.T) {
		assert.NoError(t, r.Register(Job{Name: "a", Spec: "0 0 * * *", LockNamespace: "ns:a", Run: noop}))
	})

	t.Run("Invalid spec", func(t *testing.T) {
		assert.ErrorContains(t, r.Register(Job{Name: "b", Spec: "every day", LockNamespace: "ns:b", Run: noop}), "invalid cron spec")
	})

	t.Run("Missing body", func(t *testing.T) {
		assert.Error(t, r.Register(Job{Name: "c", Spec: "0 0 * * *", LockNamespace: "ns:c"}))
	})
}

func TestStartStop(t *testing.T) {
	r := NewRunner(lock.NewMemoryLocker(), prometheus.NewRegistry())
	r.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, r.Stop(ctx))
}
