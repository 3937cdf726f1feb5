package parser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/scanner"
)

const defaultRedditBaseURL = "https://old.reddit.com"

// RedditScanner searches a subreddit for posts matching the query and
// extracts title, self-text, vote score, and timestamp from the search
// results page.
type RedditScanner struct {
	client    *http.Client
	throttle  *Throttle
	userAgent string
	baseURL   string
}

var _ scanner.Scanner = (*RedditScanner)(nil)

// NewRedditScanner wires the HTTP client and the shared host throttle.
func NewRedditScanner(client *http.Client, throttle *Throttle, userAgent string) *RedditScanner {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RedditScanner{
		client:    client,
		throttle:  throttle,
		userAgent: userAgent,
		baseURL:   defaultRedditBaseURL,
	}
}

// Name identifies the strategy inside the registry.
func (r *RedditScanner) Name() string {
	return "reddit"
}

// Scan requests the subreddit search page and parses up to req.Limit posts.
func (r *RedditScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Post, error) {
	if req.Subreddit == "" {
		return nil, fmt.Errorf("no subreddit provided")
	}

	searchURL, err := r.buildSearchURL(req)
	if err != nil {
		return nil, err
	}

	doc, err := r.fetchDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	return extractPosts(doc, req), nil
}

func (r *RedditScanner) buildSearchURL(req scanner.Request) (string, error) {
	parsed, err := url.Parse(fmt.Sprintf("%s/r/%s/search", r.baseURL, req.Subreddit))
	if err != nil {
		return "", fmt.Errorf("invalid search url: %w", err)
	}

	query := parsed.Query()
	query.Set("q", req.Query)
	query.Set("restrict_sr", "on")
	query.Set("sort", "new")
	query.Set("limit", strconv.Itoa(req.Limit))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (r *RedditScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	if err := r.throttle.Wait(ctx, parsed.Host); err != nil {
		return nil, fmt.Errorf("throttle wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func extractPosts(doc *goquery.Document, req scanner.Request) []domain.Post {
	var posts []domain.Post

	doc.Find("div.thing").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(posts) >= req.Limit {
			return false
		}

		post, ok := parseThing(sel, req)
		if !ok {
			return true
		}

		posts = append(posts, post)
		return true
	})

	return posts
}

func parseThing(sel *goquery.Selection, req scanner.Request) (domain.Post, bool) {
	title := strings.TrimSpace(sel.Find("a.title").First().Text())
	body := strings.TrimSpace(sel.Find("div.usertext-body").First().Text())

	combined := strings.TrimSpace(title + " " + body)
	if combined == "" {
		return domain.Post{}, false
	}

	id, _ := sel.Attr("data-fullname")
	if id == "" {
		id, _ = sel.Find("a.title").First().Attr("href")
	}
	if id == "" {
		return domain.Post{}, false
	}

	votes := strings.TrimSpace(sel.Find("div.score.unvoted").First().Text())
	if votes == "" {
		votes = "0"
	}

	timestamp := time.Now().UTC()
	if raw, ok := sel.Find("time").First().Attr("datetime"); ok {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			timestamp = parsed
		}
	}

	return domain.Post{
		ID:        id,
		Title:     title,
		Text:      combined,
		Votes:     votes,
		Timestamp: timestamp,
		Kind:      domain.SourcePrimary,
		Origin:    "reddit/" + req.Subreddit,
		Topic:     req.Query,
	}, true
}
