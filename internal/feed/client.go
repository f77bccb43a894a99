package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/cenkalti/backoff/v4"

	"ainews/internal/config"
)

const (
	requestTimeout = 15 * time.Second
	maxRetries     = 2
)

// Client fetches feeds through a hosted feed-to-JSON conversion service,
// one GET per feed.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Wire format of the conversion service.
type convertedFeed struct {
	Status string `json:"status"`
	Feed   struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"feed"`
	Items []convertedItem `json:"items"`
}

type convertedItem struct {
	Title       string `json:"title"`
	PubDate     string `json:"pubDate"`
	Link        string `json:"link"`
	GUID        string `json:"guid"`
	Author      string `json:"author"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Enclosure   struct {
		Link string `json:"link"`
		Type string `json:"type"`
	} `json:"enclosure"`
}

func (c *Client) Fetch(ctx context.Context, f config.Feed) ([]Item, error) {
	var payload convertedFeed

	op := func() error {
		p, err := c.fetchOnce(ctx, f.URL)
		if err != nil {
			return err
		}
		payload = p
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.Name, err)
	}

	items := make([]Item, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, Item{
			FeedName:    f.Name,
			Title:       it.Title,
			Description: firstNonEmpty(it.Description, it.Content),
			Link:        it.Link,
			Author:      it.Author,
			ImageURL:    itemImage(it),
			Published:   parsePubDate(it.PubDate),
		})
	}
	return items, nil
}

func (c *Client) fetchOnce(ctx context.Context, feedURL string) (convertedFeed, error) {
	var payload convertedFeed

	reqURL := c.endpoint + "?rss_url=" + url.QueryEscape(feedURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return payload, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return payload, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return payload, fmt.Errorf("conversion service returned %d", resp.StatusCode)
	default:
		return payload, backoff.Permanent(fmt.Errorf("conversion service returned %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decoding response: %w", err)
	}
	if payload.Status != "ok" {
		// The service reports unusable source feeds in-band; retrying
		// the same URL will not change the answer.
		return payload, backoff.Permanent(fmt.Errorf("conversion status %q", payload.Status))
	}
	return payload, nil
}

// itemImage prefers the thumbnail, falling back to an image enclosure.
func itemImage(it convertedItem) string {
	if it.Thumbnail != "" {
		return it.Thumbnail
	}
	if strings.HasPrefix(it.Enclosure.Type, "image/") {
		return it.Enclosure.Link
	}
	return ""
}

func parsePubDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
