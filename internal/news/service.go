package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ainews/internal/config"
	"ainews/internal/feed"
)

// Service is the aggregation orchestrator: it decides between the cached
// collection and a fresh fetch, runs the per-feed requests and persists the
// result. There is one aggregation in flight at a time by construction; the
// caller triggers Refresh on startup or explicit retry only.
type Service struct {
	cfg     *config.Config
	store   Store
	fetcher feed.Fetcher
	norm    *Normalizer
	now     func() time.Time
}

func NewService(cfg *config.Config, store Store, fetcher feed.Fetcher) *Service {
	return &Service{
		cfg:     cfg,
		store:   store,
		fetcher: fetcher,
		norm:    NewNormalizer(),
		now:     time.Now,
	}
}

// RefreshResult reports where the collection came from and any per-feed
// failures that were absorbed along the way.
type RefreshResult struct {
	Articles  []Article
	FromCache bool
	Stale     bool
	Warnings  []error
}

// Refresh returns the current collection. A cache entry younger than the
// configured TTL is served without any network traffic unless force is set.
// Otherwise every enabled feed is polled concurrently; individual failures
// degrade to warnings. When every feed fails, a previously cached collection
// is served stale; with nothing cached at all the refresh fails and the
// caller surfaces the error state.
func (s *Service) Refresh(ctx context.Context, force bool) (RefreshResult, error) {
	feeds := s.cfg.EnabledFeeds()
	if len(feeds) == 0 {
		return RefreshResult{}, errors.New("no feeds enabled")
	}

	entry, cached := s.store.Load()
	if !force && cached && s.now().Sub(entry.FetchedAt) < s.cfg.CacheTTLDuration() {
		return RefreshResult{Articles: entry.Articles, FromCache: true}, nil
	}

	result := feed.FetchAll(ctx, s.fetcher, feeds)
	if result.Succeeded == 0 {
		if cached {
			return RefreshResult{
				Articles:  entry.Articles,
				FromCache: true,
				Stale:     true,
				Warnings:  result.Errors,
			}, nil
		}
		return RefreshResult{}, fmt.Errorf("all %d feeds failed: %w", len(feeds), errors.Join(result.Errors...))
	}

	articles := s.norm.Build(result.Items)

	warnings := result.Errors
	if err := s.store.Save(CacheEntry{Articles: articles, FetchedAt: s.now()}); err != nil {
		// A broken cache only costs the next startup a refetch.
		warnings = append(warnings, fmt.Errorf("caching articles: %w", err))
	}

	return RefreshResult{Articles: articles, Warnings: warnings}, nil
}
