package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"SentimentScanner/internal/domain"
)

const (
	configPathEnv    = "SENTIMENT_SCANNER_CONFIG"
	databaseDSNEnv   = "DATABASE_DSN"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	telegramChatEnv  = "TELEGRAM_CHAT_ID"
	reportWebhookEnv = "REPORT_WEBHOOK_URL"

	defaultUserAgent = "SentimentScanner/1.0"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Topic         TopicConfig        `yaml:"topic"`
	Fetch         FetchConfig        `yaml:"fetch"`
	Analysis      AnalysisConfig     `yaml:"analysis"`
	Trends        TrendConfig        `yaml:"trends"`
	Database      DatabaseConfig     `yaml:"database"`
	Notifications NotificationConfig `yaml:"notifications"`
	Export        ExportConfig       `yaml:"export"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
}

// LoggingConfig controls the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// TopicConfig describes what to collect and from which source strategy.
type TopicConfig struct {
	Source    string   `yaml:"source"`
	Subreddit string   `yaml:"subreddit"`
	Query     string   `yaml:"query"`
	Limit     int      `yaml:"limit"`
	Feeds     []string `yaml:"feeds"`
}

// Topic converts the configured topic into the domain value passed through
// the pipeline; nothing downstream reads ambient config state.
func (t TopicConfig) Topic() domain.Topic {
	return domain.Topic{
		Source:    t.Source,
		Subreddit: t.Subreddit,
		Query:     t.Query,
		Limit:     t.Limit,
		Feeds:     append([]string(nil), t.Feeds...),
	}
}

// FetchConfig tunes the HTTP retrieval behavior.
type FetchConfig struct {
	Delay       string `yaml:"delay"`
	Timeout     string `yaml:"timeout"`
	MaxAttempts int    `yaml:"maxAttempts"`
	UserAgent   string `yaml:"userAgent"`
}

// DelayDuration returns the politeness interval between requests to the
// same host.
func (f FetchConfig) DelayDuration() time.Duration {
	return parseDuration(f.Delay, time.Second)
}

// TimeoutDuration returns the per-request timeout.
func (f FetchConfig) TimeoutDuration() time.Duration {
	return parseDuration(f.Timeout, 10*time.Second)
}

// AnalysisConfig bounds the text accepted for scoring.
type AnalysisConfig struct {
	MinTextLength int `yaml:"minTextLength"`
	MaxTextLength int `yaml:"maxTextLength"`
}

// TrendConfig controls time-window bucketing.
type TrendConfig struct {
	Window string `yaml:"window"`
}

// WindowDuration returns the trend bucket width, one day by default.
func (t TrendConfig) WindowDuration() time.Duration {
	return parseDuration(t.Window, 24*time.Hour)
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// ExportConfig points at the external reporting collaborator.
type ExportConfig struct {
	WebhookURL string `yaml:"webhookUrl"`
	AuthToken  string `yaml:"authToken"`
}

// SchedulerConfig defines recurring runs; disabled means one-shot.
type SchedulerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Interval string `yaml:"interval"`
}

// IntervalDuration returns how often scheduled runs repeat.
func (s SchedulerConfig) IntervalDuration() time.Duration {
	return parseDuration(s.Interval, 24*time.Hour)
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

// Validate rejects configurations the pipeline must not run with. This is
// the only error the application surfaces before fetching; everything
// network-related recovers via fallback instead.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Topic.Query) == "" {
		problems = append(problems, "topic.query must not be empty")
	}
	if c.Topic.Limit < 1 {
		problems = append(problems, "topic.limit must be at least 1")
	}
	if c.Topic.Source == "" {
		problems = append(problems, "topic.source must name a scanner strategy")
	}
	if c.Topic.Source == "reddit" && strings.TrimSpace(c.Topic.Subreddit) == "" {
		problems = append(problems, "topic.subreddit is required for the reddit source")
	}
	if c.Fetch.DelayDuration() <= 0 {
		problems = append(problems, "fetch.delay must be positive")
	}
	if c.Fetch.MaxAttempts < 1 {
		problems = append(problems, "fetch.maxAttempts must be at least 1")
	}
	if c.Trends.WindowDuration() <= 0 {
		problems = append(problems, "trends.window must be positive")
	}
	if c.Analysis.MaxTextLength > 0 && c.Analysis.MaxTextLength < c.Analysis.MinTextLength {
		problems = append(problems, "analysis.maxTextLength must not be below minTextLength")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}

	if v := os.Getenv(reportWebhookEnv); v != "" {
		c.Export.WebhookURL = v
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("config: invalid duration %q, using %s", value, fallback)
		return fallback
	}
	return d
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Topic.Source != "" {
		base.Topic.Source = override.Topic.Source
	}
	if override.Topic.Subreddit != "" {
		base.Topic.Subreddit = override.Topic.Subreddit
	}
	if override.Topic.Query != "" {
		base.Topic.Query = override.Topic.Query
	}
	if override.Topic.Limit != 0 {
		base.Topic.Limit = override.Topic.Limit
	}
	if len(override.Topic.Feeds) > 0 {
		base.Topic.Feeds = override.Topic.Feeds
	}

	if override.Fetch.Delay != "" {
		base.Fetch.Delay = override.Fetch.Delay
	}
	if override.Fetch.Timeout != "" {
		base.Fetch.Timeout = override.Fetch.Timeout
	}
	if override.Fetch.MaxAttempts != 0 {
		base.Fetch.MaxAttempts = override.Fetch.MaxAttempts
	}
	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}

	if override.Analysis.MinTextLength != 0 {
		base.Analysis.MinTextLength = override.Analysis.MinTextLength
	}
	if override.Analysis.MaxTextLength != 0 {
		base.Analysis.MaxTextLength = override.Analysis.MaxTextLength
	}

	if override.Trends.Window != "" {
		base.Trends.Window = override.Trends.Window
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Export.WebhookURL != "" {
		base.Export.WebhookURL = override.Export.WebhookURL
	}
	if override.Export.AuthToken != "" {
		base.Export.AuthToken = override.Export.AuthToken
	}

	if override.Scheduler.Enabled {
		base.Scheduler.Enabled = true
	}
	if override.Scheduler.Interval != "" {
		base.Scheduler.Interval = override.Scheduler.Interval
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Topic: TopicConfig{
			Source:    "reddit",
			Subreddit: "technology",
			Query:     "artificial intelligence",
			Limit:     30,
		},
		Fetch: FetchConfig{
			Delay:       "1s",
			Timeout:     "10s",
			MaxAttempts: 3,
			UserAgent:   defaultUserAgent,
		},
		Analysis: AnalysisConfig{
			MinTextLength: 0,
			MaxTextLength: 1000,
		},
		Trends:    TrendConfig{Window: "24h"},
		Database:  DatabaseConfig{DSN: ""},
		Scheduler: SchedulerConfig{Enabled: false, Interval: "24h"},
	}
}

// Describe is a short human-readable line for startup logging.
func (c Config) Describe() string {
	return fmt.Sprintf("source=%s query=%q limit=%d", c.Topic.Source, c.Topic.Query, c.Topic.Limit)
}
