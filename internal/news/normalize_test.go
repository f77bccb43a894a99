package news

import (
	"strings"
	"testing"
	"time"

	"ainews/internal/classify"
	"ainews/internal/feed"
)

func TestNormalizeSanitizesUnsafeItem(t *testing.T) {
	n := NewNormalizer()
	a := n.Normalize(feed.Item{
		Title:       "New GPT model released",
		Description: "<p>OpenAI ships...</p>",
		Link:        "javascript:alert(1)",
	})

	if a.Category != classify.LLM {
		t.Errorf("category = %s, want llm", a.Category)
	}
	if strings.ContainsAny(a.Description, "<>") {
		t.Errorf("description still contains markup: %q", a.Description)
	}
	if a.Description != "OpenAI ships..." {
		t.Errorf("description = %q", a.Description)
	}
	if a.Link != FallbackLink {
		t.Errorf("unsafe scheme should be replaced, got %q", a.Link)
	}
}

func TestNormalizeStripsMalformedMarkup(t *testing.T) {
	n := NewNormalizer()
	a := n.Normalize(feed.Item{
		Title:       "Model training notes",
		Description: `<div><b>Bold<i>  nested &amp; unclosed <script>alert(1)</script> text`,
		Link:        "https://example.com/post",
	})
	if strings.Contains(a.Description, "<") || strings.Contains(a.Description, "alert(") {
		t.Errorf("markup leaked through: %q", a.Description)
	}
	if !strings.Contains(a.Description, "Bold nested & unclosed") {
		t.Errorf("text content lost: %q", a.Description)
	}
}

func TestNormalizeTruncatesDescription(t *testing.T) {
	n := NewNormalizer()
	long := strings.Repeat("word ", 100)
	a := n.Normalize(feed.Item{Title: "Long training post", Description: long, Link: "https://example.com/x"})

	if got := len([]rune(a.Description)); got > MaxDescriptionLen {
		t.Errorf("description length = %d, want <= %d", got, MaxDescriptionLen)
	}
	if !strings.HasSuffix(a.Description, "...") {
		t.Errorf("truncated description should end with ellipsis: %q", a.Description)
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	n := NewNormalizer()
	before := time.Now()
	a := n.Normalize(feed.Item{FeedName: "Example Feed"})
	after := time.Now()

	if a.Title != FallbackTitle {
		t.Errorf("title = %q, want fallback", a.Title)
	}
	if a.Description != FallbackDescription {
		t.Errorf("description = %q, want fallback", a.Description)
	}
	if a.Link != FallbackLink {
		t.Errorf("link = %q, want fallback", a.Link)
	}
	if a.ImageURL != PlaceholderImage {
		t.Errorf("image = %q, want placeholder", a.ImageURL)
	}
	if a.PublishedAt.Before(before) || a.PublishedAt.After(after) {
		t.Errorf("missing date should fall back to now, got %v", a.PublishedAt)
	}
	if a.Source != "Example Feed" {
		t.Errorf("source = %q, want feed name fallback", a.Source)
	}
}

func TestNormalizeSourceAttribution(t *testing.T) {
	n := NewNormalizer()

	a := n.Normalize(feed.Item{Title: "T", Author: "Jane Doe", Link: "https://www.example.com/p"})
	if a.Source != "Jane Doe" {
		t.Errorf("author should win, got %q", a.Source)
	}

	a = n.Normalize(feed.Item{Title: "T", Link: "https://www.example.com/p"})
	if a.Source != "example.com" {
		t.Errorf("expected hostname without www, got %q", a.Source)
	}
}

func TestNormalizeImageScheme(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		raw  string
		safe bool
	}{
		{"https://example.com/pic.jpg", true},
		{"http://example.com/pic.jpg", true},
		{"data:image/png;base64,AAAA", false},
		{"javascript:alert(1)", false},
		{"/relative/pic.jpg", false},
		{"", false},
	}
	for _, tt := range tests {
		a := n.Normalize(feed.Item{Title: "T", ImageURL: tt.raw, Link: "https://example.com/p"})
		if tt.safe && a.ImageURL != tt.raw {
			t.Errorf("image %q should pass through, got %q", tt.raw, a.ImageURL)
		}
		if !tt.safe && a.ImageURL != PlaceholderImage {
			t.Errorf("image %q should be replaced, got %q", tt.raw, a.ImageURL)
		}
	}
}

func TestBuildSortsNewestFirst(t *testing.T) {
	n := NewNormalizer()
	now := time.Now()
	items := []feed.Item{
		{Title: "Older", Link: "https://example.com/1", Published: now.Add(-2 * time.Hour)},
		{Title: "Newest", Link: "https://example.com/2", Published: now},
		{Title: "Middle", Link: "https://example.com/3", Published: now.Add(-1 * time.Hour)},
	}

	articles := n.Build(items)
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}
	for i := 1; i < len(articles); i++ {
		if articles[i-1].PublishedAt.Before(articles[i].PublishedAt) {
			t.Errorf("articles out of order at %d: %v < %v", i, articles[i-1].PublishedAt, articles[i].PublishedAt)
		}
	}
}

func TestBuildDeduplicatesByTitle(t *testing.T) {
	n := NewNormalizer()
	now := time.Now()
	items := []feed.Item{
		{Title: "Same headline", Link: "https://a.example/1", Published: now.Add(-3 * time.Hour)},
		{Title: "Same headline", Link: "https://b.example/2", Published: now},
		{Title: "Different headline", Link: "https://c.example/3", Published: now.Add(-1 * time.Hour)},
	}

	articles := n.Build(items)
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles after dedup, got %d", len(articles))
	}
	// The survivor is the more recent duplicate.
	if articles[0].Title != "Same headline" || articles[0].Link != "https://b.example/2" {
		t.Errorf("expected the later duplicate to win, got %+v", articles[0])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	got := truncate("こんにちは世界です", 5)
	if got != "こん..." {
		t.Errorf("truncate(Japanese, 5) = %q, want %q", got, "こん...")
	}
}
