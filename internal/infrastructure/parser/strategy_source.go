package parser

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/infrastructure/sample"
	"SentimentScanner/internal/scanner"
)

// RetryPolicy bounds the primary fetch attempts before falling back.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// StrategySource implements ports.PostSource via registered scanner
// strategies, with bounded retry and a deterministic fallback to the
// bundled corpus. Network failure never escapes this boundary: for a
// positive limit the returned slice is guaranteed non-empty.
type StrategySource struct {
	registry *scanner.Registry
	retry    RetryPolicy
	logger   *slog.Logger
	now      func() time.Time
}

// NewStrategySource wires the scanner registry with the retry policy.
func NewStrategySource(reg *scanner.Registry, retry RetryPolicy, log *slog.Logger) *StrategySource {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &StrategySource{
		registry: reg,
		retry:    retry,
		logger:   log,
		now:      time.Now,
	}
}

// Fetch runs the topic's strategy and resolves the outcome. A limit of
// zero yields an empty dataset; an unknown source name is a configuration
// error and the only error this method returns.
func (s *StrategySource) Fetch(ctx context.Context, topic domain.Topic) ([]domain.Post, error) {
	if topic.Limit == 0 {
		return []domain.Post{}, nil
	}
	if topic.Limit < 0 {
		return nil, fmt.Errorf("invalid limit %d", topic.Limit)
	}

	strategy, err := s.registry.Resolve(topic.Source)
	if err != nil {
		return nil, fmt.Errorf("topic source: %w", err)
	}

	outcome := s.attempt(ctx, strategy, topic)
	posts := s.resolve(outcome, topic)

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.Before(posts[j].Timestamp)
	})

	return posts, nil
}

// attempt executes the strategy up to MaxAttempts times with the
// politeness delay between tries and reports an explicit outcome.
func (s *StrategySource) attempt(ctx context.Context, strategy scanner.Scanner, topic domain.Topic) domain.FetchOutcome {
	req := scanner.Request{
		Query:     topic.Query,
		Subreddit: topic.Subreddit,
		Feeds:     topic.Feeds,
		Limit:     topic.Limit,
	}

	var lastErr error
	for i := 0; i < s.retry.MaxAttempts; i++ {
		if i > 0 {
			if err := sleepCtx(ctx, s.retry.Delay); err != nil {
				lastErr = err
				break
			}
		}

		posts, err := strategy.Scan(ctx, req)
		if err != nil {
			s.warn("scan attempt failed", "source", strategy.Name(), "attempt", i+1, "error", err)
			lastErr = err
			continue
		}
		if len(posts) == 0 {
			s.warn("scan attempt yielded no posts", "source", strategy.Name(), "attempt", i+1)
			lastErr = fmt.Errorf("source %s yielded no posts", strategy.Name())
			continue
		}

		if len(posts) > topic.Limit {
			posts = posts[:topic.Limit]
		}
		return domain.FetchOutcome{Posts: posts, Kind: domain.SourcePrimary}
	}

	reason := "exhausted attempts"
	if lastErr != nil {
		reason = lastErr.Error()
	}
	return domain.FetchOutcome{Kind: domain.SourceFallback, Reason: reason}
}

// resolve is the explicit fallback branch: an abandoned or empty outcome
// is replaced by the bundled corpus, tagged fallback, sized to the limit.
func (s *StrategySource) resolve(outcome domain.FetchOutcome, topic domain.Topic) []domain.Post {
	if outcome.Kind == domain.SourcePrimary && len(outcome.Posts) > 0 {
		return outcome.Posts
	}

	s.warn("falling back to bundled corpus", "topic", topic.Query, "reason", outcome.Reason)
	return sample.Corpus(topic.Query, topic.Limit, s.now())
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *StrategySource) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
