package tui

import (
	"fmt"
	"strings"
	"time"

	"ainews/internal/news"
)

func listTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func renderCard(a news.Article, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(a.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(a.Title, width-4))
	}

	meta := "  " + itemSourceStyle.Render(a.Source) +
		itemMetaStyle.Render(" · "+a.Category.Label()+" · "+listTime(a.PublishedAt))
	desc := "  " + itemMetaStyle.Render(truncateStr(a.Description, width-4))

	return title + "\n" + meta + "\n" + desc
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderGrid draws the visible slice of the card grid, keeping the cursor
// on screen, with a load-more hint when more articles remain.
func renderGrid(articles []news.Article, cursor, height, width int, hasMore bool, remaining int) string {
	if len(articles) == 0 {
		return center("No articles match", width, height)
	}

	// Each card is 3 lines + 1 blank line
	cardHeight := 4
	footer := 0
	if hasMore {
		footer = 1
	}
	visible := (height - footer) / cardHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderCard(articles[i], i == cursor, width))
		if i < end-1 || hasMore {
			b.WriteString("\n\n")
		}
	}

	if hasMore {
		b.WriteString(loadMoreStyle.Render(fmt.Sprintf("  + %d more — press m to load", remaining)))
	}

	return b.String()
}

func center(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
