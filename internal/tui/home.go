package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	` █████╗ ██╗    ███╗   ██╗███████╗██╗    ██╗███████╗`,
	`██╔══██╗██║    ████╗  ██║██╔════╝██║    ██║██╔════╝`,
	`███████║██║    ██╔██╗ ██║█████╗  ██║ █╗ ██║███████╗`,
	`██╔══██║██║    ██║╚██╗██║██╔══╝  ██║███╗██║╚════██║`,
	`██║  ██║██║    ██║ ╚████║███████╗╚███╔███╔╝███████║`,
	`╚═╝  ╚═╝╚═╝    ╚═╝  ╚═══╝╚══════╝ ╚══╝╚══╝ ╚══════╝`,
}

func renderHomeScreen(width, height int) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)
	dimStyle := lipgloss.NewStyle().Foreground(colorDim)

	var lines []string
	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, dimStyle.Render("      AI news from around the web, in your terminal"))
	lines = append(lines, "")
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[b]")+"  "+labelStyle.Render("Browse articles"))
	lines = append(lines, "          "+keyStyle.Render("[r]")+"  "+labelStyle.Render("Refresh feeds"))
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
