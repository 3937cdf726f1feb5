package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"SentimentScanner/internal/aggregate"
	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/normalize"
	"SentimentScanner/internal/ports"
	"SentimentScanner/internal/sentiment"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
// Repository, Publisher, and Exporter are optional; a nil port disables
// that side effect without changing the run result.
type PipelineDeps struct {
	Source     ports.PostSource
	Repository ports.ResultRepository
	Publisher  ports.ReportPublisher
	Exporter   ports.ReportExporter
	Logger     *slog.Logger

	Topic         domain.Topic
	MinTextLength int
	MaxTextLength int
	TrendWindow   time.Duration
}

// Pipeline implements the fetch-normalize-score-aggregate workflow.
type Pipeline struct {
	source     ports.PostSource
	repository ports.ResultRepository
	publisher  ports.ReportPublisher
	exporter   ports.ReportExporter
	logger     *slog.Logger

	scorer *sentiment.Scorer

	topic       domain.Topic
	minTextLen  int
	maxTextLen  int
	trendWindow time.Duration
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	window := deps.TrendWindow
	if window <= 0 {
		window = 24 * time.Hour
	}

	return &Pipeline{
		source:      deps.Source,
		repository:  deps.Repository,
		publisher:   deps.Publisher,
		exporter:    deps.Exporter,
		logger:      deps.Logger,
		scorer:      sentiment.NewScorer(),
		topic:       deps.Topic,
		minTextLen:  deps.MinTextLength,
		maxTextLen:  deps.MaxTextLength,
		trendWindow: window,
	}
}

// Run executes one full analysis pass and returns the finished report.
// Fetching has already absorbed network failure via fallback, so errors
// here come from configuration or the persistence/delivery boundaries.
func (p *Pipeline) Run(ctx context.Context, when time.Time) (domain.Report, error) {
	report := domain.Report{
		Topic:       p.topic.Query,
		GeneratedAt: when,
	}

	if p.source == nil {
		return report, nil
	}

	posts, err := p.source.Fetch(ctx, p.topic)
	if err != nil {
		return report, fmt.Errorf("fetch posts: %w", err)
	}

	ids := make([]string, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}

	skip := map[string]bool{}
	if p.repository != nil && len(ids) > 0 {
		skip, err = p.repository.AlreadyAnalyzed(ctx, ids)
		if err != nil {
			return report, fmt.Errorf("load analyzed: %w", err)
		}
	}

	dataset := make(domain.Dataset, 0, len(posts))
	for _, post := range posts {
		if skip[post.ID] {
			continue
		}

		text := normalize.Clean(post.Text)
		if p.maxTextLen > 0 {
			if runes := []rune(text); len(runes) > p.maxTextLen {
				text = string(runes[:p.maxTextLen])
			}
		}
		if p.minTextLen > 0 && len([]rune(text)) < p.minTextLen {
			p.info("skipping short post", "id", post.ID, "length", len(text))
			continue
		}

		post.Text = text
		post.Topic = p.topic.Query

		score := p.scorer.Score(text)
		analyzed := domain.AnalyzedPost{
			Post:  post,
			Score: score,
			Label: sentiment.Consensus(score),
		}
		dataset = append(dataset, analyzed)

		if p.repository != nil {
			if err := p.repository.SavePost(ctx, analyzed); err != nil {
				return report, fmt.Errorf("persist post %s: %w", post.ID, err)
			}
		}
	}

	report.Summary = aggregate.Summarize(dataset)
	report.Trends = aggregate.Trends(dataset, p.trendWindow)
	report.Records = dataset

	if report.Summary.Total == 0 {
		p.info("run produced no analyzable posts", "topic", p.topic.Query)
		return report, nil
	}

	if p.repository != nil {
		if err := p.repository.SaveSummary(ctx, report.Topic, report.Summary); err != nil {
			return report, fmt.Errorf("persist summary: %w", err)
		}
	}

	if p.exporter != nil {
		if err := p.exporter.Export(ctx, report); err != nil {
			return report, fmt.Errorf("export report: %w", err)
		}
	}

	if p.publisher != nil {
		if err := p.publisher.PublishDigest(ctx, buildDigestMessage(report)); err != nil {
			return report, fmt.Errorf("publish digest: %w", err)
		}
	}

	return report, nil
}

func buildDigestMessage(report domain.Report) string {
	s := report.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "Sentiment digest for %q\n", report.Topic)
	fmt.Fprintf(&b, "Posts analyzed: %d\n", s.Total)
	fmt.Fprintf(&b, "Positive: %d (%.1f%%) | Negative: %d (%.1f%%) | Neutral: %d (%.1f%%)\n",
		s.Positive, s.PositivePct, s.Negative, s.NegativePct, s.Neutral, s.NeutralPct)
	fmt.Fprintf(&b, "Mean polarity %.3f, mean compound %.3f\n", s.MeanPolarity, s.MeanCompound)

	if s.MostPositive.Text != "" {
		fmt.Fprintf(&b, "Most positive: %s\n", s.MostPositive.Text)
	}
	if s.MostNegative.Text != "" {
		fmt.Fprintf(&b, "Most negative: %s\n", s.MostNegative.Text)
	}

	return b.String()
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
