package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"ainews/internal/config"
)

// RSSFetcher parses a source feed directly, bypassing the conversion
// service, for feeds configured with mode "rss".
type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser()}
}

func (r *RSSFetcher) Fetch(ctx context.Context, f config.Feed) ([]Item, error) {
	parsed, err := r.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.Name, err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, Item{
			FeedName:    f.Name,
			Title:       it.Title,
			Description: firstNonEmpty(it.Description, it.Content),
			Link:        it.Link,
			Author:      itemAuthor(it),
			ImageURL:    rssItemImage(it),
			Published:   rssPublished(it),
		})
	}
	return items, nil
}

func itemAuthor(it *gofeed.Item) string {
	if it.Author != nil && it.Author.Name != "" {
		return it.Author.Name
	}
	for _, a := range it.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}

func rssItemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && len(enc.Type) >= 6 && enc.Type[:6] == "image/" {
			return enc.URL
		}
	}
	return ""
}

func rssPublished(it *gofeed.Item) time.Time {
	if it.PublishedParsed != nil {
		return *it.PublishedParsed
	}
	if it.UpdatedParsed != nil {
		return *it.UpdatedParsed
	}
	return time.Time{}
}
