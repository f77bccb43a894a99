package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ainews/internal/config"
)

const samplePayload = `{
	"status": "ok",
	"feed": {"title": "Example AI", "link": "https://example.com"},
	"items": [
		{
			"title": "New GPT model released",
			"pubDate": "2026-08-27 10:30:00",
			"link": "https://example.com/gpt",
			"author": "Jane Doe",
			"thumbnail": "https://example.com/thumb.jpg",
			"description": "<p>OpenAI ships a faster model</p>"
		},
		{
			"title": "Enclosure only",
			"pubDate": "not a date",
			"link": "https://example.com/enc",
			"content": "Body from content field",
			"enclosure": {"link": "https://example.com/enc.png", "type": "image/png"}
		}
	]
}`

func testFeed(url string) config.Feed {
	return config.Feed{Name: "Example", URL: url, Mode: "json", Enabled: true}
}

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("rss_url"); got != "https://example.com/feed" {
			t.Errorf("rss_url = %q, want escaped feed url", got)
		}
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.Fetch(context.Background(), testFeed("https://example.com/feed"))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.Title != "New GPT model released" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Author != "Jane Doe" {
		t.Errorf("author = %q", first.Author)
	}
	if first.ImageURL != "https://example.com/thumb.jpg" {
		t.Errorf("image = %q", first.ImageURL)
	}
	if first.FeedName != "Example" {
		t.Errorf("feed name = %q", first.FeedName)
	}
	want := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	if !first.Published.Equal(want) {
		t.Errorf("published = %v, want %v", first.Published, want)
	}

	second := items[1]
	if second.Description != "Body from content field" {
		t.Errorf("description should fall back to content, got %q", second.Description)
	}
	if second.ImageURL != "https://example.com/enc.png" {
		t.Errorf("image should fall back to image enclosure, got %q", second.ImageURL)
	}
	if !second.Published.IsZero() {
		t.Errorf("unparseable pubDate should stay zero, got %v", second.Published)
	}
}

func TestClientFetchStatusError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"status": "error", "items": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Fetch(context.Background(), testFeed("https://example.com/feed")); err == nil {
		t.Fatal("expected error for non-ok status")
	}
	// In-band feed errors are permanent: no retries.
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}
}

func TestClientFetchNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Fetch(context.Background(), testFeed("https://example.com/feed")); err == nil {
		t.Fatal("expected error for 404")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("4xx should not be retried, got %d requests", got)
	}
}

type stubFetcher struct {
	items map[string][]Item
	err   map[string]error
}

func (s *stubFetcher) Fetch(_ context.Context, f config.Feed) ([]Item, error) {
	if err := s.err[f.Name]; err != nil {
		return nil, err
	}
	return s.items[f.Name], nil
}

func TestFetchAllToleratesPartialFailure(t *testing.T) {
	fetcher := &stubFetcher{
		items: map[string][]Item{
			"good": {{FeedName: "good", Title: "A"}, {FeedName: "good", Title: "B"}},
		},
		err: map[string]error{
			"bad": errors.New("connection refused"),
		},
	}
	feeds := []config.Feed{
		{Name: "good", URL: "https://good.example/feed", Enabled: true},
		{Name: "bad", URL: "https://bad.example/feed", Enabled: true},
	}

	result := FetchAll(context.Background(), fetcher, feeds)
	if result.Succeeded != 1 {
		t.Errorf("succeeded = %d, want 1", result.Succeeded)
	}
	if len(result.Errors) != 1 {
		t.Errorf("errors = %d, want 1", len(result.Errors))
	}
	if len(result.Items) != 2 {
		t.Errorf("items = %d, want 2", len(result.Items))
	}
}

func TestFetchAllAllFailed(t *testing.T) {
	fetcher := &stubFetcher{err: map[string]error{
		"one": errors.New("boom"),
		"two": errors.New("boom"),
	}}
	feeds := []config.Feed{
		{Name: "one", URL: "https://one.example/feed", Enabled: true},
		{Name: "two", URL: "https://two.example/feed", Enabled: true},
	}

	result := FetchAll(context.Background(), fetcher, feeds)
	if result.Succeeded != 0 {
		t.Errorf("succeeded = %d, want 0", result.Succeeded)
	}
	if len(result.Errors) != 2 {
		t.Errorf("errors = %d, want 2", len(result.Errors))
	}
}

func TestMuxRoutesByMode(t *testing.T) {
	m := NewMux("https://api.example/convert")
	if m.json == nil || m.rss == nil {
		t.Fatal("mux should wire both fetchers")
	}
}
