// Package feeder fetches and parses external RSS and Atom feeds.
package feeder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	DefaultTimeout = 30 * time.Second
	// maxFeedSize caps the bytes read from a feed response.
	maxFeedSize = 10 << 20
)

const userAgent = "blog-backend-feed-importer/1.0"

// Item is one entry of a fetched feed. Content falls back to the entry's
// description when the feed carries no full content.
type Item struct {
	Title       string
	Link        string
	Content     string
	Summary     string
	Author      string
	Categories  []string
	PublishedAt time.Time
}

// Fetcher downloads feeds over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher using client, or a client with DefaultTimeout
// when client is nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Fetcher{client: client}
}

// Fetch downloads and parses the feed at url. If limit is greater than 0 only
// the first limit items are returned.
func (f *Fetcher) Fetch(ctx context.Context, url string, limit int) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		sample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, fmt.Errorf("failed to fetch feed: status code %d, url: %s, body: %s", resp.StatusCode, url, string(sample))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}
	return Parse(body, limit)
}

// Parse parses a raw RSS or Atom document.
func Parse(body []byte, limit int) ([]Item, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(cleanControlCharacters(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		items = append(items, toItem(it))
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func toItem(it *gofeed.Item) Item {
	var published time.Time
	if it.PublishedParsed != nil {
		published = *it.PublishedParsed
	} else if it.UpdatedParsed != nil {
		published = *it.UpdatedParsed
	}

	content := strings.TrimSpace(it.Content)
	if content == "" {
		content = strings.TrimSpace(it.Description)
	}

	var author string
	if it.Author != nil {
		author = it.Author.Name
	} else if len(it.Authors) > 0 && it.Authors[0] != nil {
		author = it.Authors[0].Name
	}

	return Item{
		Title:       strings.TrimSpace(it.Title),
		Link:        it.Link,
		Content:     content,
		Summary:     strings.TrimSpace(it.Description),
		Author:      strings.TrimSpace(author),
		Categories:  it.Categories,
		PublishedAt: published,
	}
}

// Control characters XML does not allow (tab, LF and CR excluded). Some
// publishers leak them into otherwise valid feeds.
var invalidControlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

func cleanControlCharacters(b []byte) []byte {
	return invalidControlChars.ReplaceAll(b, nil)
}
