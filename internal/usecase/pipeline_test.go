package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"SentimentScanner/internal/domain"
)

type stubSource struct {
	posts []domain.Post
	err   error
}

func (s *stubSource) Fetch(ctx context.Context, topic domain.Topic) ([]domain.Post, error) {
	return s.posts, s.err
}

type memoryRepo struct {
	existing  map[string]bool
	saved     []domain.AnalyzedPost
	summaries []domain.Summary
}

func (r *memoryRepo) AlreadyAnalyzed(ctx context.Context, ids []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, id := range ids {
		if r.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (r *memoryRepo) SavePost(ctx context.Context, post domain.AnalyzedPost) error {
	r.saved = append(r.saved, post)
	return nil
}

func (r *memoryRepo) SaveSummary(ctx context.Context, topic string, summary domain.Summary) error {
	r.summaries = append(r.summaries, summary)
	return nil
}

type capturePublisher struct {
	digest string
	calls  int
}

func (p *capturePublisher) PublishDigest(ctx context.Context, digest string) error {
	p.digest = digest
	p.calls++
	return nil
}

type captureExporter struct {
	report domain.Report
	calls  int
}

func (e *captureExporter) Export(ctx context.Context, report domain.Report) error {
	e.report = report
	e.calls++
	return nil
}

func fixturePosts() []domain.Post {
	base := time.Date(2025, time.August, 12, 9, 0, 0, 0, time.UTC)
	texts := []string{
		"I love this amazing tool",
		"This is terrible and harmful",
		"The committee will meet on Tuesday",
		"What a wonderful breakthrough, truly excellent work",
		"I am worried about the serious risks",
	}

	posts := make([]domain.Post, len(texts))
	for i, text := range texts {
		posts[i] = domain.Post{
			ID:        "t3_" + string(rune('a'+i)),
			Text:      text,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Kind:      domain.SourcePrimary,
			Origin:    "reddit/technology",
		}
	}
	return posts
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()

	repo := &memoryRepo{}
	publisher := &capturePublisher{}
	exporter := &captureExporter{}

	p := NewPipeline(PipelineDeps{
		Source:      &stubSource{posts: fixturePosts()},
		Repository:  repo,
		Publisher:   publisher,
		Exporter:    exporter,
		Topic:       domain.Topic{Source: "reddit", Query: "artificial intelligence", Limit: 5},
		TrendWindow: 24 * time.Hour,
	})

	when := time.Date(2025, time.August, 12, 18, 0, 0, 0, time.UTC)
	report, err := p.Run(context.Background(), when)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	s := report.Summary
	if s.Total != 5 {
		t.Fatalf("expected 5 analyzed posts, got %d", s.Total)
	}
	if s.Positive != 2 || s.Negative != 2 || s.Neutral != 1 {
		t.Fatalf("unexpected label counts: +%d -%d =%d", s.Positive, s.Negative, s.Neutral)
	}
	if s.PositivePct != 40 || s.NegativePct != 40 || s.NeutralPct != 20 {
		t.Fatalf("unexpected percentages: %.1f/%.1f/%.1f", s.PositivePct, s.NegativePct, s.NeutralPct)
	}
	if s.MostNegative.Text != "This is terrible and harmful" {
		t.Fatalf("unexpected most negative: %q", s.MostNegative.Text)
	}
	if s.MostPositive.Compound <= 0 || s.MostNegative.Compound >= 0 {
		t.Fatalf("extreme compounds have wrong signs: %+v / %+v", s.MostPositive, s.MostNegative)
	}

	if len(report.Trends) != 1 {
		t.Fatalf("expected one trend bucket for same-day posts, got %d", len(report.Trends))
	}
	if report.Trends[0].Count != 5 {
		t.Fatalf("bucket should cover all posts, got %d", report.Trends[0].Count)
	}

	if len(repo.saved) != 5 {
		t.Fatalf("expected 5 persisted posts, got %d", len(repo.saved))
	}
	if len(repo.summaries) != 1 {
		t.Fatalf("expected 1 persisted summary, got %d", len(repo.summaries))
	}
	for _, rec := range repo.saved {
		if rec.Post.Topic != "artificial intelligence" {
			t.Fatalf("post %s missing topic tag", rec.Post.ID)
		}
	}

	if exporter.calls != 1 {
		t.Fatalf("expected one export, got %d", exporter.calls)
	}
	if exporter.report.Summary.Total != 5 {
		t.Fatalf("exporter got wrong report: %+v", exporter.report.Summary)
	}

	if publisher.calls != 1 {
		t.Fatalf("expected one digest, got %d", publisher.calls)
	}
	for _, want := range []string{"artificial intelligence", "Posts analyzed: 5", "Positive: 2", "Negative: 2", "Neutral: 1"} {
		if !strings.Contains(publisher.digest, want) {
			t.Fatalf("digest missing %q:\n%s", want, publisher.digest)
		}
	}
}

func TestRunSkipsAlreadyAnalyzed(t *testing.T) {
	t.Parallel()

	repo := &memoryRepo{existing: map[string]bool{"t3_a": true}}
	p := NewPipeline(PipelineDeps{
		Source:     &stubSource{posts: fixturePosts()},
		Repository: repo,
		Topic:      domain.Topic{Source: "reddit", Query: "ai", Limit: 5},
	})

	report, err := p.Run(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if report.Summary.Total != 4 {
		t.Fatalf("expected known post skipped, got total %d", report.Summary.Total)
	}
	for _, rec := range report.Records {
		if rec.Post.ID == "t3_a" {
			t.Fatalf("already analyzed post was reprocessed")
		}
	}
}

func TestRunTextBounds(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, time.August, 12, 9, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		{ID: "long", Text: strings.Repeat("wonderful ", 50), Timestamp: base},
		{ID: "short", Text: "ok", Timestamp: base},
	}

	p := NewPipeline(PipelineDeps{
		Source:        &stubSource{posts: posts},
		Topic:         domain.Topic{Source: "reddit", Query: "ai", Limit: 5},
		MinTextLength: 5,
		MaxTextLength: 40,
	})

	report, err := p.Run(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if report.Summary.Total != 1 {
		t.Fatalf("short post should be skipped, got total %d", report.Summary.Total)
	}
	if got := len([]rune(report.Records[0].Post.Text)); got > 40 {
		t.Fatalf("text not truncated: %d runes", got)
	}
}

func TestRunEmptyDatasetSkipsDelivery(t *testing.T) {
	t.Parallel()

	publisher := &capturePublisher{}
	exporter := &captureExporter{}
	p := NewPipeline(PipelineDeps{
		Source:    &stubSource{posts: nil},
		Publisher: publisher,
		Exporter:  exporter,
		Topic:     domain.Topic{Source: "reddit", Query: "ai", Limit: 0},
	})

	report, err := p.Run(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if report.Summary.Total != 0 {
		t.Fatalf("expected empty summary, got %d", report.Summary.Total)
	}
	if publisher.calls != 0 || exporter.calls != 0 {
		t.Fatalf("empty run must not deliver: publish=%d export=%d", publisher.calls, exporter.calls)
	}
}

func TestRunSurfacesFetchError(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PipelineDeps{
		Source: &stubSource{err: errors.New("unknown source")},
		Topic:  domain.Topic{Source: "usenet", Query: "ai", Limit: 5},
	})

	if _, err := p.Run(context.Background(), time.Now()); err == nil {
		t.Fatalf("expected fetch error to surface")
	}
}

func TestBuildDigestMessage(t *testing.T) {
	t.Parallel()

	report := domain.Report{
		Topic: "ai",
		Summary: domain.Summary{
			Total: 2, Positive: 1, Negative: 1,
			PositivePct: 50, NegativePct: 50,
			MeanPolarity: 0.1, MeanCompound: 0.05,
			MostPositive: domain.Extreme{Text: "great stuff", Compound: 0.6},
			MostNegative: domain.Extreme{Text: "bad stuff", Compound: -0.5},
		},
	}

	digest := buildDigestMessage(report)
	for _, want := range []string{`"ai"`, "Posts analyzed: 2", "Most positive: great stuff", "Most negative: bad stuff"} {
		if !strings.Contains(digest, want) {
			t.Fatalf("digest missing %q:\n%s", want, digest)
		}
	}
}
