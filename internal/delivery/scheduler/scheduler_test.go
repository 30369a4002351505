package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"careconnect/config"
	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler_EmptyScheduleIsInvalid(t *testing.T) {
	_, err := newScheduler(time.UTC, discardLogger(), []Job{{Name: "tick", Schedule: ""}})

	assert.Error(t, err)
}

func TestNewScheduler_RejectsInvalidSchedule(t *testing.T) {
	_, err := newScheduler(time.UTC, discardLogger(), []Job{{Name: "broken", Schedule: "every minute"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestNewScheduler_SkipsDisabledJobs(t *testing.T) {
	s, err := newScheduler(time.UTC, discardLogger(), []Job{
		{Name: "tick", Schedule: "@every 1m", Run: func(context.Context, time.Time) error { return nil }},
		{Name: "snapshot", Schedule: config.ScheduleOff},
		{Name: "retention", Schedule: "OFF"},
	})

	require.NoError(t, err)
	assert.Len(t, s.jobs, 1)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_WrapPassesClockAndContext(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 7, 50, 0, 0, time.UTC)
	var got time.Time
	s, err := newScheduler(time.UTC, discardLogger(), nil)
	require.NoError(t, err)
	s.now = func() time.Time { return fixed }

	s.wrap(Job{Name: "tick", Run: func(ctx context.Context, now time.Time) error {
		got = now
		assert.NoError(t, ctx.Err())

		return errors.New("logged, not propagated")
	}})()

	assert.Equal(t, fixed, got)
}

func TestScheduler_ServeReturnsAfterStop(t *testing.T) {
	var runs atomic.Int32
	s, err := newScheduler(time.UTC, discardLogger(), []Job{{
		Name:     "tick",
		Schedule: "@every 1s",
		Run: func(context.Context, time.Time) error {
			runs.Add(1)

			return nil
		},
	}})
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	require.NoError(t, s.stop(context.Background()))
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
	assert.Error(t, s.ctx.Err(), "jobs see a cancelled context after stop")
	require.NoError(t, s.stop(context.Background()), "stop is idempotent")
}

func TestReminderJob_CallsTick(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	reminderUC.EXPECT().Tick(mock.Anything, now).Return(&usecase.TickSummary{Medicines: 1, Surfaced: 1}, nil)

	jobs := monitorJobs(Params{ReminderUC: reminderUC, Logger: discardLogger()}, config.MonitorConfig{})
	require.Equal(t, "reminder_tick", jobs[0].Name)
	require.NoError(t, jobs[0].Run(context.Background(), now))
}

func TestRetentionJob_PropagatesErrors(t *testing.T) {
	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	now := time.Date(2026, 3, 14, 3, 30, 0, 0, time.UTC)

	trackingUC.EXPECT().PruneHistory(mock.Anything, now).Return(int64(0), errors.New("postgres down"))

	jobs := monitorJobs(Params{TrackingUC: trackingUC, Logger: discardLogger()}, config.MonitorConfig{})
	require.Equal(t, "history_retention", jobs[2].Name)
	assert.Error(t, jobs[2].Run(context.Background(), now))
}
