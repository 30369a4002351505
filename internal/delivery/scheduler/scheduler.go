// Package scheduler runs the periodic monitors: the reminder tick, the activity snapshots and
// the location history retention sweep.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"careconnect/config"
	"careconnect/internal/delivery"
	deliverycontext "careconnect/internal/delivery/context"
	"careconnect/internal/domain/lifecycle"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
	SnapshotUC usecase.SnapshotUsecase
	TrackingUC usecase.TrackingUsecase
}

// Job is one registered cron entry.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context, now time.Time) error
}

type scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	jobs   []Job
	now    func() time.Time

	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// New registers the monitor jobs. A job scheduled "off" is disabled.
func New(params Params) (delivery.Delivery, error) {
	monitor := params.Cfg.Monitor
	jobs := monitorJobs(params, monitor)

	s, err := newScheduler(monitor.Location(), params.Logger, jobs)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// monitorJobs lists the jobs in registration order.
func monitorJobs(params Params, monitor config.MonitorConfig) []Job {
	return []Job{
		{
			Name:     "reminder_tick",
			Schedule: monitor.ReminderSchedule,
			Run: func(ctx context.Context, now time.Time) error {
				summary, err := params.ReminderUC.Tick(ctx, now)
				if err != nil {
					return err
				}
				if summary.Surfaced > 0 || summary.Warnings > 0 {
					params.Logger.Info("Reminder tick",
						slog.Int("medicines", summary.Medicines),
						slog.Int("surfaced", summary.Surfaced),
						slog.Int("warnings", summary.Warnings),
						slog.Int("pruned", summary.Pruned),
					)
				}

				return nil
			},
		},
		{
			Name:     "activity_snapshot",
			Schedule: monitor.SnapshotSchedule,
			Run: func(ctx context.Context, now time.Time) error {
				summary, err := params.SnapshotUC.Capture(ctx, now)
				if err != nil {
					return err
				}
				params.Logger.Info("Activity snapshots captured",
					slog.Int("relations", summary.Relations),
					slog.Int("snapshots", summary.Snapshots),
					slog.Int("risk_alerts", summary.RiskAlerts),
					slog.Int("failures", summary.Failures),
				)

				return nil
			},
		},
		{
			Name:     "history_retention",
			Schedule: monitor.RetentionSchedule,
			Run: func(ctx context.Context, now time.Time) error {
				removed, err := params.TrackingUC.PruneHistory(ctx, now)
				if err != nil {
					return err
				}
				params.Logger.Info("Location history pruned", slog.Int64("removed", removed))

				return nil
			},
		},
	}
}

func newScheduler(loc *time.Location, logger *slog.Logger, jobs []Job) (*scheduler, error) {
	cronLogger := &slogLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	s := &scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	for _, job := range jobs {
		if config.ScheduleDisabled(job.Schedule) {
			logger.Info("Scheduled job disabled", slog.String("job", job.Name))

			continue
		}
		if _, err := s.cron.AddFunc(job.Schedule, s.wrap(job)); err != nil {
			cancel()

			return nil, errors.Wrapf(err, "invalid schedule %q for job %s", job.Schedule, job.Name)
		}
		s.jobs = append(s.jobs, job)
	}

	return s, nil
}

// wrap runs one firing of job with the scheduler context and the configured zone's clock.
func (s *scheduler) wrap(job Job) func() {
	return func() {
		start := s.now()
		ctx := deliverycontext.Begin(s.ctx, s.logger, deliverycontext.OriginScheduler, slog.String("job", job.Name))
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		if err := job.Run(ctx, start); err != nil {
			logger.Error("Scheduled job failed", slog.Any("error", err))

			return
		}
		logger.Debug("Scheduled job finished", slog.Duration("elapsed", time.Since(start)))
	}
}

// Serve starts the cron loop and blocks until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.jobs)))
	s.cron.Start()

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.logger.Info("Shutting down scheduler")
		s.cancel()
		stopped := s.cron.Stop()

		waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()
		select {
		case <-stopped.Done():
		case <-waitCtx.Done():
			s.logger.Warn("Scheduler jobs still running at shutdown")
		}
		close(s.done)
	})

	return nil
}

// slogLogger adapts slog to cron.Logger.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
