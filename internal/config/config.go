package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataDir    string `yaml:"data_dir"`
	GroupsFile string `yaml:"groups_file"`
	Proxy      string `yaml:"proxy"`
	Provider   struct {
		BaseURL        string        `yaml:"base_url"`
		APIKey         string        `yaml:"api_key"`
		BatchSize      int           `yaml:"batch_size"`
		Concurrency    int           `yaml:"concurrency"`
		Retries        *int          `yaml:"retries"`
		Timeout        time.Duration `yaml:"timeout"`
		HistoryPeriod  string        `yaml:"history_period"`
		NamesBatchSize int           `yaml:"names_batch_size"`
		CacheDir       string        `yaml:"cache_dir"`
	} `yaml:"provider"`
	Refresh struct {
		MaxFullAgeDays  int     `yaml:"max_full_age_days"`
		SparseThreshold float64 `yaml:"sparse_threshold"`
	} `yaml:"refresh"`
	Schedule struct {
		IncrementalCron string `yaml:"incremental_cron"`
		FullCron        string `yaml:"full_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SECTOR_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("SECTOR_GROUPS_FILE"); v != "" {
		cfg.GroupsFile = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("PROVIDER_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PROVIDER_BATCH_SIZE: %w", err)
		}
		cfg.Provider.BatchSize = n
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_INCREMENTAL"); v != "" {
		cfg.Schedule.IncrementalCron = v
	}
	if v := os.Getenv("CRON_FULL"); v != "" {
		cfg.Schedule.FullCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Provider.BatchSize == 0 {
		cfg.Provider.BatchSize = 200
	}
	if cfg.Provider.Concurrency == 0 {
		cfg.Provider.Concurrency = 8
	}
	if cfg.Provider.Retries == nil {
		n := 2
		cfg.Provider.Retries = &n
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30 * time.Second
	}
	if cfg.Provider.HistoryPeriod == "" {
		cfg.Provider.HistoryPeriod = "5y"
	}
	if cfg.Provider.NamesBatchSize == 0 {
		cfg.Provider.NamesBatchSize = 100
	}
	if cfg.Refresh.MaxFullAgeDays == 0 {
		cfg.Refresh.MaxFullAgeDays = 30
	}
	if cfg.Refresh.SparseThreshold == 0 {
		cfg.Refresh.SparseThreshold = 0.5
	}
	if cfg.Schedule.IncrementalCron == "" {
		cfg.Schedule.IncrementalCron = "0 30 22 * * 1-5"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if c.Provider.BatchSize < 0 {
		return fmt.Errorf("provider.batch_size must be positive")
	}
	if c.Provider.Concurrency < 0 {
		return fmt.Errorf("provider.concurrency must be positive")
	}
	if c.Provider.Retries != nil && *c.Provider.Retries < 0 {
		return fmt.Errorf("provider.retries must not be negative")
	}
	if c.Refresh.SparseThreshold < 0 || c.Refresh.SparseThreshold > 1 {
		return fmt.Errorf("refresh.sparse_threshold must be within (0, 1]")
	}
	if c.Refresh.MaxFullAgeDays < 0 {
		return fmt.Errorf("refresh.max_full_age_days must be positive")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return errors.New("telegram.bot_token and telegram.chat_id must be set together")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// TelegramEnabled reports whether run notifications are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// Path returns the config file location, honoring CONFIG_PATH.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}
