package news

import (
	"strings"

	"github.com/samber/lo"

	"ainews/internal/classify"
)

// View owns the filter, search and pagination state and projects the full
// collection into the visible subset. It is mutated only through its
// setters; projection itself is pure.
type View struct {
	articles []Article
	category classify.Category
	search   string
	pageSize int
	page     int
}

func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = 9
	}
	return &View{category: classify.All, pageSize: pageSize, page: 1}
}

// SetArticles replaces the backing collection after a refresh and rewinds
// to the first page.
func (v *View) SetArticles(articles []Article) {
	v.articles = articles
	v.page = 1
}

func (v *View) SetCategory(c classify.Category) {
	if c == v.category {
		return
	}
	v.category = c
	v.page = 1
}

func (v *View) SetSearchTerm(term string) {
	if term == v.search {
		return
	}
	v.search = term
	v.page = 1
}

// LoadMore reveals the next page. It reports whether anything changed.
func (v *View) LoadMore() bool {
	if !v.HasMore() {
		return false
	}
	v.page++
	return true
}

func (v *View) Category() classify.Category { return v.category }
func (v *View) SearchTerm() string          { return v.search }
func (v *View) PageSize() int               { return v.pageSize }

func (v *View) matches(a Article) bool {
	if v.category != classify.All && a.Category != v.category {
		return false
	}
	if v.search == "" {
		return true
	}
	term := strings.ToLower(v.search)
	return strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Description), term)
}

func (v *View) filtered() []Article {
	return lo.Filter(v.articles, func(a Article, _ int) bool { return v.matches(a) })
}

// Visible returns the first page*pageSize articles of the filtered,
// searched collection.
func (v *View) Visible() []Article {
	f := v.filtered()
	n := v.page * v.pageSize
	if n > len(f) {
		n = len(f)
	}
	return f[:n]
}

// HasMore reports whether articles remain beyond the current page, driving
// the "load more" affordance.
func (v *View) HasMore() bool {
	return len(v.filtered()) > v.page*v.pageSize
}

// FilteredCount returns how many articles pass the current filter and
// search, across all pages.
func (v *View) FilteredCount() int {
	return len(v.filtered())
}
