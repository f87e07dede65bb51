// Package scheduler drives the help-request follow-up scan on a cron timer.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/delivery"
	"hyperlocal/internal/domain/lifecycle"
	"hyperlocal/internal/errors"
	"hyperlocal/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler runs one follow-up scan per tick. A tick that fires while the previous
// scan is still running is dropped.
type Scheduler struct {
	cfg        config.FollowUpConfig
	logger     *slog.Logger
	followUpUC usecase.FollowUpUsecase

	cron *cron.Cron
	job  cron.Job
	now  func() time.Time

	mu      sync.Mutex
	started bool
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	FollowUpUC usecase.FollowUpUsecase
}

// NewScheduler builds the scheduler delivery; the timer starts in Serve.
func NewScheduler(params Params) (delivery.Delivery, error) {
	var cfg config.FollowUpConfig
	if params.Config.FollowUp != nil {
		cfg = *params.Config.FollowUp
	}

	s, err := New(cfg, params.Logger, params.FollowUpUC)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return s.Stop(stopCtx)
		},
	})

	return s, nil
}

// New validates the schedule and prepares the cron runner.
func New(cfg config.FollowUpConfig, logger *slog.Logger, followUpUC usecase.FollowUpUsecase) (*Scheduler, error) {
	cronLog := cronLogger{logger: logger}
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	schedule, err := parser.Parse(cfg.Schedule)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid follow-up schedule %q", cfg.Schedule)
	}

	s := &Scheduler{
		cfg:        cfg,
		logger:     logger,
		followUpUC: followUpUC,
		cron:       cron.New(cron.WithParser(parser), cron.WithLogger(cronLog)),
		now:        time.Now,
	}
	s.job = cron.NewChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)).Then(cron.FuncJob(s.scan))
	s.cron.Schedule(schedule, s.job)

	return s, nil
}

// Serve starts the timer and returns; the scans run on cron's goroutines.
func (s *Scheduler) Serve(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("[FollowUp] Scheduler disabled")

		return nil
	}

	s.Start()

	return nil
}

// Start begins firing scans. Calling it twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true
	s.cron.Start()

	s.logger.Info("[FollowUp] Scheduler started",
		slog.String("schedule", s.cfg.Schedule),
		slog.Duration("scan_timeout", s.cfg.ScanTimeout),
	)
}

// Stop prevents further scans and waits for a running scan to finish or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()

		return nil
	}
	s.started = false
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("[FollowUp] Scheduler stopped")

		return nil
	case <-ctx.Done():
		s.logger.Warn("[FollowUp] Scheduler stop timed out with a scan still running")

		return errors.WithStack(ctx.Err())
	}
}

func (s *Scheduler) scan() {
	ctx := context.Background()
	if s.cfg.ScanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ScanTimeout)
		defer cancel()
	}

	_, err := s.followUpUC.RunScan(ctx, s.now())
	switch {
	case err == nil:
	case errors.Interrupted(err):
		s.logger.Warn("[FollowUp] Scan cut short", slog.Duration("timeout", s.cfg.ScanTimeout), slog.Any("error", err))
	default:
		s.logger.Error("[FollowUp] Scan failed", slog.Any("error", err))
	}
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
