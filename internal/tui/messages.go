package tui

import "ainews/internal/news"

type refreshDoneMsg struct {
	result news.RefreshResult
	err    error
}

type browserErrMsg struct {
	err error
}
