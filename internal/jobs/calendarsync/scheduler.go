package calendarsync

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

// Syncer is the part of the calendar service the scheduler drives.
type Syncer interface {
	SyncAll(ctx context.Context) ([]services.SyncReport, error)
}

type Scheduler struct {
	log     *logger.Logger
	syncer  Syncer
	spec    string
	timeout time.Duration
	cron    *cron.Cron
}

// NewScheduler validates spec (standard five-field cron syntax, or a
// descriptor such as "@every 15m") and returns an unstarted scheduler.
func NewScheduler(baseLog *logger.Logger, syncer Syncer, spec string, timeout time.Duration) (*Scheduler, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("calendar sync schedule %q: %w", spec, err)
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	log := baseLog.With("component", "CalendarSyncScheduler")
	return &Scheduler{
		log:     log,
		syncer:  syncer,
		spec:    spec,
		timeout: timeout,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log})),
		),
	}, nil
}

// Start schedules the sync and stops it when ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return err
	}
	s.log.Info("Starting calendar sync scheduler", "schedule", s.spec)
	s.cron.Start()

	go func() {
		<-ctx.Done()
		stopped := s.cron.Stop()
		<-stopped.Done()
		s.log.Info("Calendar sync scheduler stopped")
	}()
	return nil
}

// RunOnce syncs every source and logs a summary.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reports, err := s.syncer.SyncAll(runCtx)
	if err != nil {
		s.log.Warn("calendar sync run failed", "error", err)
		return
	}
	counts := map[string]int{}
	for _, r := range reports {
		counts[r.Status]++
	}
	s.log.Info("calendar sync run finished",
		"sources", len(reports),
		"ok", counts[services.SyncStatusOK],
		"not_modified", counts[services.SyncStatusNotModified],
		"failed", counts[services.SyncStatusError],
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// cronLogger adapts the app logger to cron.Logger.
type cronLogger struct{ log *logger.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
