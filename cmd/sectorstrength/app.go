package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"SectorStrength/internal/cadence"
	"SectorStrength/internal/collector"
	"SectorStrength/internal/config"
	"SectorStrength/internal/model"
	"SectorStrength/internal/notifier"
	"SectorStrength/internal/panels"
	"SectorStrength/internal/recorder"
	"SectorStrength/internal/refresh"
	"SectorStrength/internal/store"
)

// app holds the wired components shared by every command.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	groups   []model.Group
	store    *store.Store
	tracker  *cadence.Tracker
	recorder recorder.Recorder
	notifier *notifier.TelegramNotifier
	runner   *refresh.Runner
}

func newLogger(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func newApp() (*app, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	logger, err := newLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	groups, err := panels.Load(cfg.GroupsFile)
	if err != nil {
		return nil, fmt.Errorf("load panels: %w", err)
	}

	var provider collector.Provider
	if cfg.Provider.BaseURL != "" {
		provider = collector.NewRESTProvider(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Proxy, cfg.Provider.Timeout)
	} else {
		yp := collector.NewYahooProvider(cfg.Proxy, cfg.Provider.Timeout, cfg.Provider.Concurrency, logger)
		yp.Retries = *cfg.Provider.Retries
		provider = yp
	}
	logger.Info("data source", zap.String("provider", provider.Name()), zap.Int("panels", len(groups)))

	fetcher := collector.NewBatchFetcher(provider, cfg.Provider.BatchSize, *cfg.Provider.Retries, cfg.Refresh.SparseThreshold, logger)
	st := store.New(cfg.DataDir)
	tracker := cadence.NewTracker(st, cfg.Refresh.MaxFullAgeDays, logger)

	a := &app{cfg: cfg, logger: logger, groups: groups, store: st, tracker: tracker}

	a.recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Warn("init sqlite recorder failed, using noop", zap.Error(err))
		} else {
			a.recorder = sr
		}
	}

	a.runner = refresh.NewRunner(groups, fetcher, st, tracker, cfg.Provider.HistoryPeriod, logger)
	a.runner.Names = collector.NewNameFetcher(cfg.Proxy, cfg.Provider.CacheDir, cfg.Provider.NamesBatchSize, cfg.Provider.Concurrency, logger)
	a.runner.Recorder = a.recorder
	if cfg.TelegramEnabled() {
		a.notifier = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger)
		a.runner.Notifier = a.notifier
	}
	return a, nil
}

func (a *app) close() {
	if err := a.recorder.Close(); err != nil {
		a.logger.Warn("close recorder", zap.Error(err))
	}
	_ = a.logger.Sync()
}
