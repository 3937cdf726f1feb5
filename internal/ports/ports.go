package ports

import (
	"context"
	"time"

	"SentimentScanner/internal/domain"
)

// PostSource pulls text documents for a topic. Implementations absorb
// network unreliability: for limit >= 1 the returned slice is never empty,
// falling back to the bundled corpus when live retrieval fails.
type PostSource interface {
	Fetch(ctx context.Context, topic domain.Topic) ([]domain.Post, error)
}

// ResultRepository persists analyzed posts and run summaries.
type ResultRepository interface {
	AlreadyAnalyzed(ctx context.Context, ids []string) (map[string]bool, error)
	SavePost(ctx context.Context, post domain.AnalyzedPost) error
	SaveSummary(ctx context.Context, topic string, summary domain.Summary) error
}

// ReportPublisher delivers a rendered summary digest to a chat channel.
type ReportPublisher interface {
	PublishDigest(ctx context.Context, digest string) error
}

// ReportExporter hands the finished report to the external
// reporting/visualization collaborator.
type ReportExporter interface {
	Export(ctx context.Context, report domain.Report) error
}

// Scheduler controls when pipeline runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
