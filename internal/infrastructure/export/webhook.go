// Package export hands finished reports to the external reporting and
// visualization collaborator over HTTP.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/ports"
)

// WebhookClient POSTs the report document as JSON to a configured endpoint.
type WebhookClient struct {
	endpoint string
	token    string
	http     *http.Client
}

var _ ports.ReportExporter = (*WebhookClient)(nil)

// NewWebhookClient creates a reusable HTTP client.
func NewWebhookClient(endpoint, token string) *WebhookClient {
	return &WebhookClient{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Export serializes and delivers the report. The wire format belongs to
// this boundary; the domain types carry no serialization concerns.
func (c *WebhookClient) Export(ctx context.Context, report domain.Report) error {
	if c.endpoint == "" {
		return fmt.Errorf("webhook client misconfigured")
	}

	body, err := json.Marshal(buildDocument(report))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	return nil
}

type document struct {
	Topic       string      `json:"topic"`
	GeneratedAt time.Time   `json:"generated_at"`
	Summary     summaryDoc  `json:"summary"`
	Trends      []trendDoc  `json:"trends"`
	Records     []recordDoc `json:"records"`
}

type summaryDoc struct {
	Total       int     `json:"total"`
	Positive    int     `json:"positive"`
	Negative    int     `json:"negative"`
	Neutral     int     `json:"neutral"`
	PositivePct float64 `json:"positive_pct"`
	NegativePct float64 `json:"negative_pct"`
	NeutralPct  float64 `json:"neutral_pct"`

	MeanPolarity     float64 `json:"mean_polarity"`
	MeanSubjectivity float64 `json:"mean_subjectivity"`
	MeanCompound     float64 `json:"mean_compound"`

	MostPositive string `json:"most_positive"`
	MostNegative string `json:"most_negative"`
}

type trendDoc struct {
	WindowStart  time.Time      `json:"window_start"`
	Count        int            `json:"count"`
	MeanCompound float64        `json:"mean_compound"`
	MeanPolarity float64        `json:"mean_polarity"`
	Labels       map[string]int `json:"labels"`
}

type recordDoc struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	SourceKind string    `json:"source_kind"`
	Origin     string    `json:"origin"`

	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Compound     float64 `json:"compound"`
	Label        string  `json:"label"`
}

func buildDocument(report domain.Report) document {
	doc := document{
		Topic:       report.Topic,
		GeneratedAt: report.GeneratedAt,
		Summary: summaryDoc{
			Total:            report.Summary.Total,
			Positive:         report.Summary.Positive,
			Negative:         report.Summary.Negative,
			Neutral:          report.Summary.Neutral,
			PositivePct:      report.Summary.PositivePct,
			NegativePct:      report.Summary.NegativePct,
			NeutralPct:       report.Summary.NeutralPct,
			MeanPolarity:     report.Summary.MeanPolarity,
			MeanSubjectivity: report.Summary.MeanSubjectivity,
			MeanCompound:     report.Summary.MeanCompound,
			MostPositive:     report.Summary.MostPositive.Text,
			MostNegative:     report.Summary.MostNegative.Text,
		},
		Trends:  make([]trendDoc, 0, len(report.Trends)),
		Records: make([]recordDoc, 0, len(report.Records)),
	}

	for _, bucket := range report.Trends {
		labels := make(map[string]int, len(bucket.Labels))
		for label, count := range bucket.Labels {
			labels[string(label)] = count
		}
		doc.Trends = append(doc.Trends, trendDoc{
			WindowStart:  bucket.WindowStart,
			Count:        bucket.Count,
			MeanCompound: bucket.MeanCompound,
			MeanPolarity: bucket.MeanPolarity,
			Labels:       labels,
		})
	}

	for _, rec := range report.Records {
		doc.Records = append(doc.Records, recordDoc{
			ID:           rec.Post.ID,
			Text:         rec.Post.Text,
			Timestamp:    rec.Post.Timestamp,
			SourceKind:   string(rec.Post.Kind),
			Origin:       rec.Post.Origin,
			Polarity:     rec.Score.Polarity,
			Subjectivity: rec.Score.Subjectivity,
			Compound:     rec.Score.Compound,
			Label:        string(rec.Label),
		})
	}

	return doc
}
