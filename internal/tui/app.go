package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ainews/internal/browser"
	"ainews/internal/classify"
	"ainews/internal/news"
)

type mode int

const (
	modeHome mode = iota
	modeBrowse
	modeSearch
	modeFilter
	modeDetail
	modeHelp
)

type App struct {
	svc  *news.Service
	view *news.View
	mode mode

	cursor int
	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model
	catBar      categoryBar

	// The detail view fully replaces any previously shown article.
	detail       *news.Article
	detailScroll int

	refreshing  bool
	forceStart  bool
	stale       bool
	warnings    int
	err         error
	currentDate string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Service      *news.Service
	PageSize     int
	ForceRefresh bool
	Category     classify.Category
	SearchTerm   string
	BrowseMode   bool
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	view := news.NewView(opts.PageSize)
	bar := newCategoryBar()
	if opts.Category != "" && opts.Category != classify.All {
		view.SetCategory(opts.Category)
		for i, tab := range bar.tabs {
			if tab == opts.Category {
				bar.selectIndex(i)
			}
		}
	}
	if opts.SearchTerm != "" {
		view.SetSearchTerm(opts.SearchTerm)
		ti.SetValue(opts.SearchTerm)
	}

	startMode := modeHome
	if opts.BrowseMode {
		startMode = modeBrowse
	}

	return &App{
		svc:         opts.Service,
		view:        view,
		mode:        startMode,
		searchInput: ti,
		spinner:     sp,
		catBar:      bar,
		refreshing:  true,
		forceStart:  opts.ForceRefresh,
		currentDate: time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.refreshCmd(a.forceStart), a.spinner.Tick)
}

// refreshCmd runs the aggregation off the UI loop. Only one runs at a
// time; the refreshing flag gates re-entry.
func (a *App) refreshCmd(force bool) tea.Cmd {
	svc := a.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		result, err := svc.Refresh(ctx, force)
		return refreshDoneMsg{result: result, err: err}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return browserErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case refreshDoneMsg:
		a.refreshing = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.stale = msg.result.Stale
		a.warnings = len(msg.result.Warnings)
		a.view.SetArticles(msg.result.Articles)
		a.clampCursor()
		return a, nil

	case browserErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) clampCursor() {
	if n := len(a.view.Visible()); a.cursor >= n {
		a.cursor = max(0, n-1)
	}
}

func (a *App) startRefresh(force bool) tea.Cmd {
	if a.refreshing {
		return nil
	}
	a.refreshing = true
	return tea.Batch(a.refreshCmd(force), a.spinner.Tick)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeDetail:
		return a.handleDetailKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeBrowse
		}
		return a, nil
	}

	// Browse mode
	visible := a.view.Visible()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(visible)-1 {
			a.cursor++
		} else if a.view.LoadMore() {
			// Walking off the end reveals the next page.
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g":
		a.cursor = 0
		return a, nil
	case "m":
		a.view.LoadMore()
		return a, nil
	case "enter":
		if a.cursor < len(visible) {
			selected := visible[a.cursor]
			a.detail = &selected
			a.detailScroll = 0
			a.mode = modeDetail
		}
		return a, nil
	case "o":
		if a.cursor < len(visible) {
			return a, openBrowserCmd(visible[a.cursor].Link)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.catBar.filterMode = true
		return a, nil
	case "r":
		a.err = nil
		return a, a.startRefresh(true)
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b", "enter":
		a.mode = modeBrowse
		return a, nil
	case "r":
		a.mode = modeBrowse
		a.err = nil
		return a, a.startRefresh(true)
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.view.SetSearchTerm("")
		a.cursor = 0
		return a, nil
	case "enter":
		a.mode = modeBrowse
		a.searchInput.Blur()
		a.view.SetSearchTerm(a.searchInput.Value())
		a.cursor = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeBrowse
		a.catBar.filterMode = false
		return a, nil
	case "left", "h":
		a.catBar.moveLeft()
		return a, nil
	case "right", "l":
		a.catBar.moveRight()
		return a, nil
	case " ", "enter":
		a.view.SetCategory(a.catBar.selectCurrent())
		a.cursor = 0
		a.mode = modeBrowse
		a.catBar.filterMode = false
		return a, nil
	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		if cat, ok := a.catBar.selectIndex(idx); ok {
			a.view.SetCategory(cat)
			a.cursor = 0
			a.mode = modeBrowse
			a.catBar.filterMode = false
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		a.mode = modeBrowse
		a.detail = nil
		return a, nil
	case "j", "down":
		a.detailScroll++
		return a, nil
	case "k", "up":
		if a.detailScroll > 0 {
			a.detailScroll--
		}
		return a, nil
	case "o":
		if a.detail != nil {
			return a, openBrowserCmd(a.detail.Link)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  ainews")
	}

	switch a.mode {
	case modeHome:
		return a.withHintBar(renderHomeScreen(a.width, a.height-1), "b browse  r refresh  q quit")
	case modeHelp:
		return a.withHintBar(a.renderHelp(), "? close  q back")
	case modeDetail:
		if a.detail != nil {
			return a.withHintBar(
				renderDetail(*a.detail, a.width, a.height-1, a.detailScroll),
				"esc close  o open link  j/k scroll",
			)
		}
	}

	// Browse layout: header, category bar, grid, status bar.
	if a.err != nil && a.view.FilteredCount() == 0 {
		return a.renderErrorState()
	}

	headerHeight := 1
	barHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - barHeight - statusHeight - 2
	if contentHeight < 4 {
		contentHeight = 4
	}

	headerLeft := headerStyle.Render("ainews")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	bar := a.catBar.render(a.width)
	if a.mode == modeSearch {
		bar = a.searchInput.View()
	}

	visible := a.view.Visible()
	remaining := a.view.FilteredCount() - len(visible)
	gridWidth := a.width - 4
	grid := renderGrid(visible, a.cursor, contentHeight, gridWidth, a.view.HasMore(), remaining)
	pane := listPaneStyle.Width(a.width - 2).Height(contentHeight).Render(grid)

	status := renderStatusBar(
		len(visible),
		a.view.FilteredCount(),
		a.view.Category().Label(),
		a.view.SearchTerm(),
		a.width,
		a.warnings,
		a.stale,
		a.refreshing,
	)
	if a.refreshing {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = statusBarStyle.Width(a.width).Render(errorTitleStyle.Render(" " + a.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, pane, status)
}

func (a *App) renderErrorState() string {
	title := errorTitleStyle.Render("Couldn't load the news")
	detail := helpDimStyle.Render(truncateStr(a.err.Error(), a.width-10))
	hint := "press r to retry"
	if a.refreshing {
		hint = a.spinner.View() + " retrying..."
	}

	card := helpCardStyle.Render(title + "\n\n" + detail + "\n\n" + helpDimStyle.Render(hint))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("ainews")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through articles\n" +
		"  m             Load more articles\n" +
		"  g             Jump to top\n\n" +
		dim.Render("Actions") + "\n" +
		"  enter         Open article detail\n" +
		"  o             Open article in browser\n" +
		"  r             Refresh feeds\n" +
		"  /             Search articles\n" +
		"  f             Filter by category\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  ←/→, h/l     Move between categories\n" +
		"  space/enter   Select category\n" +
		"  1-5           Select category by number\n\n" +
		dim.Render("General") + "\n" +
		"  h             Home screen\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)
	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

func (a *App) withHintBar(content, hints string) string {
	bar := renderHintBar(hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
