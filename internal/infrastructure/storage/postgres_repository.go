package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository persists analyzed posts and run summaries.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.ResultRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// AlreadyAnalyzed returns a map with IDs that already exist in storage.
func (r *PostgresRepository) AlreadyAnalyzed(ctx context.Context, ids []string) (map[string]bool, error) {
	if r.db == nil || len(ids) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := psql.
		Select("post_id").
		From("processed_posts").
		Where(sq.Eq{"post_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query processed: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		result[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return result, nil
}

// SavePost upserts the analyzed post snapshot.
func (r *PostgresRepository) SavePost(ctx context.Context, post domain.AnalyzedPost) error {
	if r.db == nil {
		return nil
	}

	query, args, err := psql.
		Insert("processed_posts").
		Columns("post_id", "topic", "origin", "source_kind", "text",
			"polarity", "subjectivity", "compound", "label", "posted_at").
		Values(post.Post.ID, post.Post.Topic, post.Post.Origin, string(post.Post.Kind), post.Post.Text,
			post.Score.Polarity, post.Score.Subjectivity, post.Score.Compound, string(post.Label), post.Post.Timestamp).
		Suffix(`ON CONFLICT (post_id) DO UPDATE
                SET polarity = EXCLUDED.polarity,
                    subjectivity = EXCLUDED.subjectivity,
                    compound = EXCLUDED.compound,
                    label = EXCLUDED.label,
                    updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert post: %w", err)
	}

	return nil
}

// SaveSummary records one run's aggregate statistics.
func (r *PostgresRepository) SaveSummary(ctx context.Context, topic string, summary domain.Summary) error {
	if r.db == nil {
		return nil
	}

	query, args, err := psql.
		Insert("run_summaries").
		Columns("topic", "total", "positive", "negative", "neutral",
			"mean_polarity", "mean_compound", "mean_subjectivity").
		Values(topic, summary.Total, summary.Positive, summary.Negative, summary.Neutral,
			summary.MeanPolarity, summary.MeanCompound, summary.MeanSubjectivity).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}

	return nil
}
