package parser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/scanner"
)

// NewsScanner pulls headlines from configured RSS/Atom feeds and keeps the
// items whose title mentions the query.
type NewsScanner struct {
	client    *http.Client
	throttle  *Throttle
	userAgent string
}

var _ scanner.Scanner = (*NewsScanner)(nil)

// NewNewsScanner wires the HTTP client and the shared host throttle.
func NewNewsScanner(client *http.Client, throttle *Throttle, userAgent string) *NewsScanner {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &NewsScanner{client: client, throttle: throttle, userAgent: userAgent}
}

// Name identifies the strategy inside the registry.
func (n *NewsScanner) Name() string {
	return "news"
}

// Scan walks the configured feeds in order until the limit is reached.
// A feed that fails to fetch or parse is skipped; the scan only errors
// when every feed failed.
func (n *NewsScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Post, error) {
	if len(req.Feeds) == 0 {
		return nil, fmt.Errorf("no feeds configured")
	}

	var posts []domain.Post
	var lastErr error
	failures := 0

	for _, feedURL := range req.Feeds {
		if len(posts) >= req.Limit {
			break
		}

		feed, err := n.fetchFeed(ctx, feedURL)
		if err != nil {
			failures++
			lastErr = err
			continue
		}

		posts = append(posts, feedPosts(feed, feedURL, req, req.Limit-len(posts))...)
	}

	if failures == len(req.Feeds) {
		return nil, fmt.Errorf("all feeds failed: %w", lastErr)
	}

	return posts, nil
}

func (n *NewsScanner) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	parsed, err := url.Parse(feedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url %s: %w", feedURL, err)
	}

	if err := n.throttle.Wait(ctx, parsed.Host); err != nil {
		return nil, fmt.Errorf("throttle wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned %s", parsed.Host, resp.Status)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	return feed, nil
}

func feedPosts(feed *gofeed.Feed, feedURL string, req scanner.Request, budget int) []domain.Post {
	host := feedURL
	if parsed, err := url.Parse(feedURL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}

	needle := strings.ToLower(req.Query)

	var posts []domain.Post
	for _, item := range feed.Items {
		if len(posts) >= budget {
			break
		}

		title := strings.TrimSpace(item.Title)
		if title == "" || !strings.Contains(strings.ToLower(title), needle) {
			continue
		}

		timestamp := time.Now().UTC()
		if item.PublishedParsed != nil {
			timestamp = item.PublishedParsed.UTC()
		}

		id := item.GUID
		if id == "" {
			id = item.Link
		}
		if id == "" {
			id = fmt.Sprintf("%s#%d", host, len(posts))
		}

		posts = append(posts, domain.Post{
			ID:        id,
			Title:     title,
			Text:      title,
			Votes:     "0",
			Timestamp: timestamp,
			Kind:      domain.SourcePrimary,
			Origin:    host,
			Topic:     req.Query,
		})
	}

	return posts
}
