package feed

import (
	"context"
	"sync"
	"time"

	"ainews/internal/config"
)

// Item is a raw feed entry as delivered by a fetcher, before normalization.
// Description may still contain HTML; Published is zero when the feed gave
// no parseable date.
type Item struct {
	FeedName    string
	Title       string
	Description string
	Link        string
	Author      string
	ImageURL    string
	Published   time.Time
}

type Fetcher interface {
	Fetch(ctx context.Context, feed config.Feed) ([]Item, error)
}

// Mux routes each feed to the fetcher matching its configured mode.
type Mux struct {
	json Fetcher
	rss  Fetcher
}

func NewMux(endpoint string) *Mux {
	return &Mux{json: NewClient(endpoint), rss: NewRSSFetcher()}
}

func (m *Mux) Fetch(ctx context.Context, f config.Feed) ([]Item, error) {
	if f.Mode == "rss" {
		return m.rss.Fetch(ctx, f)
	}
	return m.json.Fetch(ctx, f)
}

type FetchResult struct {
	Items     []Item
	Errors    []error
	Succeeded int
}

// FetchAll polls every feed concurrently. A failed feed contributes an error
// and zero items rather than aborting the batch; the caller decides whether
// zero successes is fatal.
func FetchAll(ctx context.Context, fetcher Fetcher, feeds []config.Feed) FetchResult {
	var (
		mu     sync.Mutex
		result FetchResult
		wg     sync.WaitGroup
	)

	for _, f := range feeds {
		wg.Add(1)
		go func(f config.Feed) {
			defer wg.Done()
			items, err := fetcher.Fetch(ctx, f)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, err)
				return
			}
			result.Succeeded++
			result.Items = append(result.Items, items...)
		}(f)
	}

	wg.Wait()
	return result
}
