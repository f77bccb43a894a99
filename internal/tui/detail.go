package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ainews/internal/news"
)

// relativeDate renders the detail view's date: "Today", "Yesterday",
// "N days ago" up to six days, the absolute date beyond that.
func relativeDate(t, now time.Time) string {
	tDay := t.Truncate(24 * time.Hour)
	nowDay := now.Truncate(24 * time.Hour)
	days := int(nowDay.Sub(tDay).Hours() / 24)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 6:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}

// renderDetail draws the full-screen article view. Every field is inserted
// as literal text; nothing article-supplied is ever interpreted as markup.
func renderDetail(a news.Article, width, height, scroll int) string {
	boxWidth := width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}
	contentWidth := boxWidth - 6

	title := detailTitleStyle.Width(contentWidth).Render(a.Title)
	meta := detailMetaStyle.Render(
		a.Source + " · " + a.Category.Label() + " · " + relativeDate(a.PublishedAt, time.Now()),
	)
	body := detailBodyStyle.Width(contentWidth).Render(wrapText(a.Description, contentWidth))
	image := detailLinkStyle.Width(contentWidth).Render("Image: " + a.ImageURL)
	link := detailLinkStyle.Width(contentWidth).Render("Read more: " + a.Link)

	content := lipgloss.JoinVertical(lipgloss.Left, title, meta, body, image, link)

	// Apply scroll offset inside the box
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}
	maxLines := height - 6
	if maxLines > 2 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	box := detailBoxStyle.Width(boxWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
