package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"SectorStrength/internal/refresh"
)

// Refresher runs one refresh in the given mode.
type Refresher interface {
	Run(ctx context.Context, mode refresh.Mode) (*refresh.Summary, error)
}

// Scheduler triggers refresh runs on cron schedules and from chat commands.
type Scheduler struct {
	Cron   *cron.Cron
	Runner Refresher
	// Status renders the reply to /status. Optional.
	Status func(ctx context.Context) string
	Ctx    context.Context

	logger *zap.Logger
}

// NewScheduler creates a Scheduler. Overlapping cron firings are skipped while
// a run is still in progress.
func NewScheduler(ctx context.Context, runner Refresher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	cronLog := cron.PrintfLogger(zap.NewStdLog(logger.Named("cron")))
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		Runner: runner,
		Ctx:    ctx,
		logger: logger,
	}
}

// RegisterAll registers the incremental schedule and, when fullCron is not
// empty, the full rebuild schedule.
func (s *Scheduler) RegisterAll(incrementalCron, fullCron string) error {
	if incrementalCron != "" {
		if _, err := s.Cron.AddFunc(incrementalCron, func() { s.run(refresh.ModeIncremental) }); err != nil {
			return fmt.Errorf("register incremental task: %w", err)
		}
	}
	if fullCron != "" {
		if _, err := s.Cron.AddFunc(fullCron, func() { s.run(refresh.ModeFull) }); err != nil {
			return fmt.Errorf("register full task: %w", err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.Cron.Entries())))
}

// Stop stops the cron scheduler and waits for a running job to return.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunNow executes a run in mode immediately.
func (s *Scheduler) RunNow(mode refresh.Mode) {
	s.run(mode)
}

func (s *Scheduler) run(mode refresh.Mode) {
	s.logger.Info("running scheduled refresh", zap.String("mode", string(mode)))
	sum, err := s.Runner.Run(s.Ctx, mode)
	switch {
	case errors.Is(err, refresh.ErrNoBaseline):
		s.logger.Warn("incremental update needs a full rebuild first")
	case err != nil:
		s.logger.Error("scheduled refresh failed", zap.String("mode", string(mode)), zap.Error(err))
	case sum != nil:
		s.logger.Info("scheduled refresh finished",
			zap.String("mode", string(mode)), zap.String("status", sum.Status))
	}
}

// HandleCommand processes a chat command and returns a reply. Refresh commands
// start the run in the background; its summary arrives as a notification.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	cmd, _, _ := strings.Cut(strings.TrimSpace(command), "@")
	switch strings.ToLower(cmd) {
	case "/incremental", "/update":
		go s.run(refresh.ModeIncremental)
		return "Incremental update started."
	case "/full", "/rebuild":
		go s.run(refresh.ModeFull)
		return "Full rebuild started. This takes a while."
	case "/status":
		if s.Status == nil {
			return "Status is not available."
		}
		return s.Status(ctx)
	default:
		return "Available commands:\n• /status\n• /incremental\n• /full"
	}
}
