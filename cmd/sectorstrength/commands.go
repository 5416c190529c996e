package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"SectorStrength/internal/refresh"
	"SectorStrength/internal/scheduler"
)

// runCmd executes one refresh in a fixed mode.
type runCmd struct {
	mode     refresh.Mode
	synopsis string
}

func (c *runCmd) Name() string     { return string(c.mode) }
func (c *runCmd) Synopsis() string { return c.synopsis }
func (c *runCmd) Usage() string {
	return fmt.Sprintf("sectorstrength %s\n\n  %s.\n", c.mode, c.synopsis)
}
func (*runCmd) SetFlags(*flag.FlagSet) {}

func (c *runCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runMode(ctx, c.mode)
}

// runMode wires the application and performs a single run.
func runMode(ctx context.Context, mode refresh.Mode) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := a.runner.Run(ctx, mode)
	switch {
	case errors.Is(err, refresh.ErrNoData), errors.Is(err, refresh.ErrNoBaseline):
		a.logger.Error("refresh aborted", zap.String("mode", string(mode)), zap.Error(err))
		return subcommands.ExitFailure
	case err != nil:
		a.logger.Error("refresh failed", zap.String("mode", string(mode)), zap.Error(err))
		return subcommands.ExitFailure
	}
	a.logger.Info("refresh finished",
		zap.String("mode", string(mode)),
		zap.String("status", sum.Status),
		zap.Int("written", sum.Written()),
		zap.Duration("elapsed", sum.FinishedAt.Sub(sum.StartedAt)))
	return subcommands.ExitSuccess
}

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the last persisted date of every panel and recent runs" }
func (*statusCmd) Usage() string {
	return `sectorstrength status

  Prints the last date, size and symbol count of every panel file, how long
  ago the last full rebuild ran, and the most recent runs.
`
}
func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (*statusCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	fmt.Print(renderStatus(a.groups, a.store, a.tracker, a.recorder, time.Now()))
	return subcommands.ExitSuccess
}

// scheduleCmd keeps the process running and triggers refreshes on cron.
type scheduleCmd struct {
	runOnStart string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "run refreshes on the configured cron schedules" }
func (*scheduleCmd) Usage() string {
	return `sectorstrength schedule [-run-on-start full|incremental]

  Runs incremental updates on schedule.incremental_cron and, when set, full
  rebuilds on schedule.full_cron until interrupted. With Telegram configured,
  the chat commands /status, /incremental and /full are accepted.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.runOnStart, "run-on-start", os.Getenv("RUN_ON_START"), "Mode to run immediately after start (full, incremental).")
}

func (c *scheduleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	var startMode refresh.Mode
	if c.runOnStart != "" {
		var ok bool
		if startMode, ok = refresh.ParseMode(c.runOnStart); !ok {
			fmt.Fprintf(os.Stderr, "unknown mode %q\n", c.runOnStart)
			return subcommands.ExitUsageError
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.NewScheduler(ctx, a.runner, a.logger)
	sched.Status = func(context.Context) string {
		report := renderStatus(a.groups, a.store, a.tracker, a.recorder, time.Now())
		return "<pre>" + html.EscapeString(report) + "</pre>"
	}
	if err := sched.RegisterAll(a.cfg.Schedule.IncrementalCron, a.cfg.Schedule.FullCron); err != nil {
		a.logger.Error("register cron tasks", zap.Error(err))
		return subcommands.ExitFailure
	}
	sched.Start()
	defer sched.Stop()

	if a.notifier != nil {
		go a.notifier.StartPolling(ctx, sched.HandleCommand)
		a.logger.Info("telegram polling started")
	}
	if startMode != "" {
		a.logger.Info("running on start", zap.String("mode", string(startMode)))
		go sched.RunNow(startMode)
	}

	a.logger.Info("SectorStrength is running, press Ctrl+C to stop")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received, stopping")
	cancel()
	return subcommands.ExitSuccess
}
