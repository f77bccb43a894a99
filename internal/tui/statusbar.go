package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(shown, total int, filterLabel, search string, width, warnings int, stale, refreshing bool) string {
	left := fmt.Sprintf(" %d of %d articles", shown, total)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if search != "" {
		left += " · \"" + search + "\""
	}
	if stale {
		left += " · " + errorTitleStyle.Render("stale")
	}
	if warnings > 0 {
		left += " · " + errorTitleStyle.Render(fmt.Sprintf("%d feeds failed", warnings))
	}
	if refreshing {
		left += " (refreshing...)"
	}

	right := " / search  f filter  m more  r refresh  ? help  q quit "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

func renderHintBar(hints string, width int) string {
	right := " " + hints + " "
	gap := width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(width).Render(fmt.Sprintf("%*s", gap, "") + right)
}
