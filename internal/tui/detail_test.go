package tui

import (
	"strings"
	"testing"
	"time"
)

func TestRelativeDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-2 * time.Hour), "Today"},
		{now.AddDate(0, 0, -1), "Yesterday"},
		{now.AddDate(0, 0, -2), "2 days ago"},
		{now.AddDate(0, 0, -6), "6 days ago"},
		{now.AddDate(0, 0, -7), "Aug 21, 2026"},
		{now.AddDate(0, -2, 0), "Jun 28, 2026"},
	}
	for _, tt := range tests {
		if got := relativeDate(tt.t, now); got != tt.want {
			t.Errorf("relativeDate(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}

	if wrapText("", 10) != "" {
		t.Error("empty input should stay empty")
	}
	if wrapText("untouched", 0) != "untouched" {
		t.Error("non-positive width should be a no-op")
	}
}

func TestRenderDetailLiteralText(t *testing.T) {
	// Article text is rendered as-is, never interpreted.
	a := sampleArticle()
	a.Title = "<script>alert(1)</script>"
	out := renderDetail(a, 80, 30, 0)
	if !strings.Contains(out, "<script>") {
		t.Error("title should appear as literal text")
	}
}
