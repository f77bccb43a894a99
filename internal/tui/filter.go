package tui

import (
	"github.com/charmbracelet/lipgloss"

	"ainews/internal/classify"
)

// categoryBar is the filter row: one tab per category plus "All".
type categoryBar struct {
	tabs       []classify.Category
	active     classify.Category
	cursor     int
	filterMode bool
}

func newCategoryBar() categoryBar {
	tabs := append([]classify.Category{classify.All}, classify.AllCategories()...)
	return categoryBar{tabs: tabs, active: classify.All}
}

func (b *categoryBar) selectCurrent() classify.Category {
	b.active = b.tabs[b.cursor]
	return b.active
}

func (b *categoryBar) selectIndex(i int) (classify.Category, bool) {
	if i < 0 || i >= len(b.tabs) {
		return "", false
	}
	b.cursor = i
	return b.selectCurrent(), true
}

func (b *categoryBar) moveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *categoryBar) moveRight() {
	if b.cursor < len(b.tabs)-1 {
		b.cursor++
	}
}

func (b *categoryBar) render(width int) string {
	sep := itemMetaStyle.Render(" · ")
	var parts []string

	for i, tab := range b.tabs {
		style := tabInactiveStyle
		if tab == b.active {
			style = tabActiveStyle
		}
		label := tab.Label()
		if b.filterMode && i == b.cursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
