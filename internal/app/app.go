package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"SentimentScanner/internal/config"
	"SentimentScanner/internal/infrastructure/export"
	"SentimentScanner/internal/infrastructure/parser"
	"SentimentScanner/internal/infrastructure/scheduler"
	"SentimentScanner/internal/infrastructure/storage"
	"SentimentScanner/internal/infrastructure/telegram"
	"SentimentScanner/internal/logging"
	"SentimentScanner/internal/ports"
	"SentimentScanner/internal/scanner"
	"SentimentScanner/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	db       *sql.DB
}

// New builds a runnable application instance. The repository, notifier,
// and exporter are wired only when configured; the pipeline tolerates
// their absence.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	httpClient := &http.Client{Timeout: cfg.Fetch.TimeoutDuration()}
	throttle := parser.NewThrottle(cfg.Fetch.DelayDuration())

	registry := scanner.NewRegistry()
	registry.Register(parser.NewRedditScanner(httpClient, throttle, cfg.Fetch.UserAgent))
	registry.Register(parser.NewNewsScanner(httpClient, throttle, cfg.Fetch.UserAgent))

	source := parser.NewStrategySource(registry, parser.RetryPolicy{
		MaxAttempts: cfg.Fetch.MaxAttempts,
		Delay:       cfg.Fetch.DelayDuration(),
	}, baseLogger.With("component", "source"))

	var db *sql.DB
	var repository ports.ResultRepository
	if cfg.Database.DSN != "" {
		opened, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			baseLogger.Error("database unavailable, persistence disabled", "error", err)
		} else {
			db = opened
			repository = storage.NewPostgresRepository(db)
		}
	}

	var publisher ports.ReportPublisher
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		publisher = telegram.NewNotifier(cfg.Notifications.Telegram)
	}

	var exporter ports.ReportExporter
	if cfg.Export.WebhookURL != "" {
		exporter = export.NewWebhookClient(cfg.Export.WebhookURL, cfg.Export.AuthToken)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:        source,
		Repository:    repository,
		Publisher:     publisher,
		Exporter:      exporter,
		Logger:        baseLogger.With("component", "pipeline"),
		Topic:         cfg.Topic.Topic(),
		MinTextLength: cfg.Analysis.MinTextLength,
		MaxTextLength: cfg.Analysis.MaxTextLength,
		TrendWindow:   cfg.Trends.WindowDuration(),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline, db: db}
}

// Run executes the pipeline once, or on the configured interval until the
// context is canceled.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	if a.cfg.Scheduler.Enabled {
		driver := scheduler.NewIntervalScheduler(a.cfg.Scheduler.IntervalDuration())
		runner := usecase.NewScheduler(driver, a.pipeline, a.logger.With("component", "scheduler"))
		if err := runner.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return runner.Stop(context.Background())
	}

	report, err := a.pipeline.Run(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	a.logger.Info("run complete",
		"topic", report.Topic,
		"total", report.Summary.Total,
		"positive", report.Summary.Positive,
		"negative", report.Summary.Negative,
		"neutral", report.Summary.Neutral)
	return nil
}

// Close releases pooled resources.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
