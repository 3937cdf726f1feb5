package sample

import (
	"testing"
	"time"

	"SentimentScanner/internal/domain"
)

func TestCorpusZeroLimit(t *testing.T) {
	t.Parallel()

	if got := Corpus("ai", 0, time.Now()); len(got) != 0 {
		t.Fatalf("limit 0 should yield nothing, got %d", len(got))
	}
}

func TestCorpusTruncatesAndPads(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 12, 12, 0, 0, 0, time.UTC)

	small := Corpus("ai", 5, now)
	if len(small) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(small))
	}

	large := Corpus("ai", 45, now)
	if len(large) != 45 {
		t.Fatalf("expected 45 posts, got %d", len(large))
	}
	if large[0].Text != large[20].Text {
		t.Fatalf("padding should cycle the bundled texts")
	}
	if large[0].ID == large[20].ID {
		t.Fatalf("cycled posts must keep distinct IDs")
	}

	for _, p := range large {
		if p.Kind != domain.SourceFallback {
			t.Fatalf("post %s not tagged fallback", p.ID)
		}
		if p.Text == "" {
			t.Fatalf("post %s has empty text", p.ID)
		}
	}
}

func TestCorpusDeterministicTimestamps(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 12, 12, 0, 0, 0, time.UTC)
	a := Corpus("ai", 10, now)
	b := Corpus("ai", 10, now)

	for i := range a {
		if !a[i].Timestamp.Equal(b[i].Timestamp) {
			t.Fatalf("timestamps differ at %d: %v vs %v", i, a[i].Timestamp, b[i].Timestamp)
		}
	}

	if got := a[1].Timestamp.Sub(a[0].Timestamp); got != 30*time.Minute {
		t.Fatalf("expected 30m spacing, got %s", got)
	}
	if !a[0].Timestamp.Equal(now.Add(-12 * time.Hour)) {
		t.Fatalf("first timestamp should start 12h back, got %v", a[0].Timestamp)
	}
}
