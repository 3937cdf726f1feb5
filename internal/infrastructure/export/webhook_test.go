package export

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SentimentScanner/internal/domain"
)

func sampleReport() domain.Report {
	ts := time.Date(2025, time.August, 12, 10, 0, 0, 0, time.UTC)
	return domain.Report{
		Topic:       "artificial intelligence",
		GeneratedAt: ts,
		Summary:     domain.Summary{Total: 1, Positive: 1, PositivePct: 100},
		Trends: []domain.TrendBucket{
			{WindowStart: ts.Truncate(24 * time.Hour), Count: 1, MeanCompound: 0.5,
				Labels: map[domain.Label]int{domain.LabelPositive: 1}},
		},
		Records: domain.Dataset{
			{
				Post:  domain.Post{ID: "t3_1", Text: "great stuff", Timestamp: ts, Kind: domain.SourcePrimary, Origin: "reddit/technology"},
				Score: domain.SentimentScore{Polarity: 0.8, Compound: 0.5, Neu: 1},
				Label: domain.LabelPositive,
			},
		},
	}
}

func TestWebhookExport(t *testing.T) {
	t.Parallel()

	var got document
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("unexpected auth header %q", auth)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("unmarshal payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, "secret")
	if err := client.Export(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Export error: %v", err)
	}

	if got.Topic != "artificial intelligence" {
		t.Fatalf("unexpected topic %q", got.Topic)
	}
	if got.Summary.Total != 1 || got.Summary.PositivePct != 100 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if len(got.Records) != 1 || got.Records[0].Label != "positive" {
		t.Fatalf("unexpected records: %+v", got.Records)
	}
	if len(got.Trends) != 1 || got.Trends[0].Labels["positive"] != 1 {
		t.Fatalf("unexpected trends: %+v", got.Trends)
	}
	if got.Records[0].SourceKind != "primary" {
		t.Fatalf("unexpected source kind: %s", got.Records[0].SourceKind)
	}
}

func TestWebhookExportErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWebhookClient(server.URL, "")
	if err := client.Export(context.Background(), sampleReport()); err == nil {
		t.Fatalf("expected error on non-success status")
	}
}

func TestWebhookExportMisconfigured(t *testing.T) {
	t.Parallel()

	client := NewWebhookClient("", "")
	if err := client.Export(context.Background(), sampleReport()); err == nil {
		t.Fatalf("expected error without endpoint")
	}
}
