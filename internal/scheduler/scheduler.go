package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/simaogato/recipecost-backend/internal/usecase/recipe"
)

// Repricer reprices every stored recipe.
type Repricer interface {
	RepriceAll(ctx context.Context) (recipe.RepriceReport, error)
}

// Scheduler runs the periodic repricing job.
type Scheduler struct {
	cron     *cron.Cron
	repricer Repricer
	schedule string
	timeout  time.Duration
	logger   *zap.Logger

	// jobCtx is cancelled by Stop so a running job gives up its work
	jobCtx    context.Context
	cancelJob context.CancelFunc
}

// NewScheduler creates a new scheduler instance.
// schedule is a standard 5-field cron expression (min, hour, dom, month, dow).
func NewScheduler(repricer Repricer, schedule string, timeout time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	jobCtx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:      cron.New(),
		repricer:  repricer,
		schedule:  schedule,
		timeout:   timeout,
		logger:    logger,
		jobCtx:    jobCtx,
		cancelJob: cancel,
	}
}

// Start registers the repricing job and starts the cron loop.
// Jobs run under ctx; cancelling it aborts a repricing run in progress.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	s.cancelJob()
	s.jobCtx, s.cancelJob = context.WithCancel(ctx)

	if _, err := s.cron.AddFunc(s.schedule, s.repriceRecipes); err != nil {
		return fmt.Errorf("failed to schedule repricing job %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop cancels a running job and waits for it to return, at most until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.logger.Info("stopping scheduler")
	s.cancelJob()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("repricing job still running: %w", ctx.Err())
	}
}

// RunOnce executes the repricing job immediately.
func (s *Scheduler) RunOnce(ctx context.Context) (recipe.RepriceReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repricer.RepriceAll(ctx)
}

func (s *Scheduler) repriceRecipes() {
	s.logger.Info("repricing recipes")

	report, err := s.RunOnce(s.jobCtx)
	if err != nil {
		s.logger.Error("failed to reprice recipes", zap.Error(err))
		return
	}

	if report.Failed > 0 {
		s.logger.Warn("repricing finished with failures",
			zap.Int("priced", report.Priced),
			zap.Int("failed", report.Failed),
		)
		return
	}
	s.logger.Info("repricing finished", zap.Int("priced", report.Priced))
}
