package news

import (
	"html"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"

	"ainews/internal/classify"
	"ainews/internal/feed"
)

// Normalizer maps raw feed items into Articles: markup stripped, fields
// defaulted, URLs restricted to http(s), category assigned.
type Normalizer struct {
	policy *bluemonday.Policy
	now    func() time.Time
}

func NewNormalizer() *Normalizer {
	// StrictPolicy drops every tag; bluemonday walks real HTML tokens, so
	// malformed markup cannot smuggle tags past it.
	return &Normalizer{policy: bluemonday.StrictPolicy(), now: time.Now}
}

// Build normalizes a batch, sorts it newest-first and deduplicates by exact
// title, keeping the first (most recent) occurrence.
func (n *Normalizer) Build(items []feed.Item) []Article {
	articles := make([]Article, 0, len(items))
	for _, it := range items {
		articles = append(articles, n.Normalize(it))
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	return lo.UniqBy(articles, func(a Article) string { return a.Title })
}

func (n *Normalizer) Normalize(it feed.Item) Article {
	title := strings.TrimSpace(it.Title)
	if title == "" {
		title = FallbackTitle
	}

	desc := n.stripHTML(it.Description)
	if desc == "" {
		desc = FallbackDescription
	} else {
		desc = truncate(desc, MaxDescriptionLen)
	}

	link, host := safeLink(it.Link)

	source := strings.TrimSpace(it.Author)
	if source == "" {
		source = host
	}
	if source == "" {
		source = it.FeedName
	}
	if source == "" {
		source = "Unknown"
	}

	published := it.Published
	if published.IsZero() {
		published = n.now()
	}

	return Article{
		Title:       title,
		Description: desc,
		Link:        link,
		Source:      source,
		ImageURL:    safeImage(it.ImageURL),
		Category:    classify.Categorize(title, desc),
		PublishedAt: published,
	}
}

// stripHTML reduces markup to plain text and collapses whitespace.
func (n *Normalizer) stripHTML(s string) string {
	text := html.UnescapeString(n.policy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// safeLink returns the link if it is an absolute http(s) URL, the fallback
// otherwise, plus the hostname for source attribution.
func safeLink(raw string) (link, host string) {
	u, ok := parseHTTPURL(raw)
	if !ok {
		return FallbackLink, ""
	}
	return raw, strings.TrimPrefix(u.Hostname(), "www.")
}

func safeImage(raw string) string {
	if _, ok := parseHTTPURL(raw); !ok {
		return PlaceholderImage
	}
	return raw
}

func parseHTTPURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	return u, true
}
