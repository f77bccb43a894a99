package news

import (
	"time"

	"ainews/internal/classify"
)

const (
	// MaxDescriptionLen caps card descriptions; longer text is truncated
	// with an ellipsis during normalization.
	MaxDescriptionLen = 200

	FallbackTitle       = "Untitled"
	FallbackDescription = "No description available."

	// FallbackLink replaces links with invalid or unsafe schemes.
	FallbackLink = "about:blank"

	// PlaceholderImage replaces image URLs that are not absolute http(s).
	PlaceholderImage = "https://placehold.co/640x360?text=AI+News"
)

// Article is a normalized feed item. Immutable once built: the category is
// assigned exactly once, at normalization time.
type Article struct {
	Title       string
	Description string
	Link        string
	Source      string
	ImageURL    string
	Category    classify.Category
	PublishedAt time.Time
}

// CacheEntry is one complete aggregation run and the moment it finished.
type CacheEntry struct {
	Articles  []Article
	FetchedAt time.Time
}

// Store persists the last successful aggregation. Load reports ok=false for
// an absent or malformed entry; it never fails the caller.
type Store interface {
	Load() (entry CacheEntry, ok bool)
	Save(entry CacheEntry) error
}
