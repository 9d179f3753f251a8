// Package dashboard derives everything the views show from fetched data:
// base item filtering and paging, risk classes, and display formatting.
// Nothing here performs I/O.
package dashboard

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/tonhe/poewatch/internal/api"
)

// DefaultPageSize is the number of base items per page.
const DefaultPageSize = 20

// ViewState is the operator's position in the base items list. It lives in
// the view, so background refreshes never reset it.
type ViewState struct {
	SearchTerm  string
	CurrentPage int
}

// Normalize returns vs with the page moved to at least 1.
func (vs ViewState) Normalize() ViewState {
	if vs.CurrentPage < 1 {
		vs.CurrentPage = 1
	}
	return vs
}

// WithSearch replaces the search term and always returns to page 1.
func (vs ViewState) WithSearch(term string) ViewState {
	return ViewState{SearchTerm: term, CurrentPage: 1}
}

// Next advances one page unless already on the last one.
func (vs ViewState) Next(totalPages int) ViewState {
	vs = vs.Normalize()
	if vs.CurrentPage < totalPages {
		vs.CurrentPage++
	}
	return vs
}

// Prev goes back one page from the page actually shown, stopping at 1. A page
// left past the end by a shrunk list is clamped first.
func (vs ViewState) Prev(totalPages int) ViewState {
	vs = vs.Clamp(totalPages)
	if vs.CurrentPage > 1 {
		vs.CurrentPage--
	}
	return vs
}

// Clamp pulls the page back into [1, max(1, totalPages)], e.g. after a
// refresh shrank the list.
func (vs ViewState) Clamp(totalPages int) ViewState {
	vs = vs.Normalize()
	if totalPages < 1 {
		totalPages = 1
	}
	if vs.CurrentPage > totalPages {
		vs.CurrentPage = totalPages
	}
	return vs
}

// Page is one projected page of base items.
type Page struct {
	Items         []api.BaseItem
	TotalFiltered int
	TotalPages    int
	Page          int
	PageSize      int
	// Start and End bound Items within the filtered list, End exclusive.
	Start     int
	End       int
	ShowPager bool
	// Suggestion is a close base name when a non-empty search matched nothing.
	Suggestion string
}

// Range renders the "a-b of N" pager label.
func (p Page) Range() string {
	if p.TotalFiltered == 0 {
		return "0 of 0"
	}
	return FormatCount(p.Start+1) + "-" + FormatCount(p.End) + " of " + FormatCount(p.TotalFiltered)
}

// Filter keeps the bases whose name contains term, ignoring case. An empty
// term keeps everything.
func Filter(bases []api.BaseItem, term string) []api.BaseItem {
	if term == "" {
		return bases
	}
	needle := strings.ToLower(term)
	out := make([]api.BaseItem, 0, len(bases))
	for _, b := range bases {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			out = append(out, b)
		}
	}
	return out
}

// Project filters bases by the view's search term and cuts out the current
// page. A non-positive pageSize falls back to DefaultPageSize.
func Project(bases []api.BaseItem, vs ViewState, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	filtered := Filter(bases, vs.SearchTerm)
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	page := vs.Clamp(totalPages).CurrentPage
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	p := Page{
		Items:         filtered[start:end],
		TotalFiltered: total,
		TotalPages:    totalPages,
		Page:          page,
		PageSize:      pageSize,
		Start:         start,
		End:           end,
		ShowPager:     totalPages > 1,
	}
	if total == 0 {
		p.Suggestion = Suggest(bases, vs.SearchTerm)
	}
	return p
}

// Suggest returns the base name closest to term by edit distance, comparing
// against whole names and their individual words. It returns "" when term is
// blank or nothing is close enough.
func Suggest(bases []api.BaseItem, term string) string {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return ""
	}
	limit := utf8.RuneCountInString(needle) / 2
	if limit > 3 {
		limit = 3
	}
	if limit < 1 {
		limit = 1
	}

	best, bestDist := "", limit+1
	for _, b := range bases {
		name := strings.ToLower(b.Name)
		d := levenshtein.ComputeDistance(needle, name)
		for _, word := range strings.Fields(name) {
			if wd := levenshtein.ComputeDistance(needle, word); wd < d {
				d = wd
			}
		}
		if d < bestDist {
			best, bestDist = b.Name, d
		}
	}
	return best
}
