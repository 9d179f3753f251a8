package dashboard

import (
	"fmt"
	"testing"

	"github.com/tonhe/poewatch/internal/api"
)

func makeBases(n int) []api.BaseItem {
	out := make([]api.BaseItem, n)
	for i := range out {
		out[i] = api.BaseItem{ID: i + 1, Name: fmt.Sprintf("Item %02d", i+1)}
	}
	return out
}

func TestProjectSearchIgnoresCase(t *testing.T) {
	bases := []api.BaseItem{{ID: 1, Name: "Leather Belt"}, {ID: 2, Name: "Iron Hat"}}
	for _, term := range []string{"belt", "BELT", "Belt"} {
		p := Project(bases, ViewState{}.WithSearch(term), 20)
		if p.TotalFiltered != 1 {
			t.Errorf("%q: expected 1 match, got %d", term, p.TotalFiltered)
			continue
		}
		if len(p.Items) != 1 || p.Items[0].Name != "Leather Belt" {
			t.Errorf("%q: expected Leather Belt, got %+v", term, p.Items)
		}
	}
}

func TestProjectEmptyTermMatchesAll(t *testing.T) {
	p := Project(makeBases(7), ViewState{}, 20)
	if p.TotalFiltered != 7 || len(p.Items) != 7 {
		t.Errorf("expected all 7 items, got %d/%d", p.TotalFiltered, len(p.Items))
	}
	if p.ShowPager {
		t.Error("single page should not show the pager")
	}
}

func TestProjectPaging(t *testing.T) {
	bases := makeBases(45)

	p := Project(bases, ViewState{CurrentPage: 3}, 20)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if len(p.Items) != 5 {
		t.Errorf("expected 5 items on page 3, got %d", len(p.Items))
	}
	if p.Items[0].Name != "Item 41" {
		t.Errorf("expected page 3 to start at Item 41, got %q", p.Items[0].Name)
	}
	if !p.ShowPager {
		t.Error("expected pager for 3 pages")
	}
	if p.Range() != "41-45 of 45" {
		t.Errorf("unexpected range %q", p.Range())
	}

	p = Project(bases, ViewState{CurrentPage: 4}, 20)
	if p.Page != 3 {
		t.Errorf("page 4 should clamp to 3, got %d", p.Page)
	}
	if len(p.Items) != 5 {
		t.Errorf("clamped page should hold 5 items, got %d", len(p.Items))
	}

	p = Project(bases, ViewState{CurrentPage: -2}, 20)
	if p.Page != 1 || len(p.Items) != 20 {
		t.Errorf("negative page should clamp to 1, got page %d with %d items", p.Page, len(p.Items))
	}
}

func TestProjectDefaultPageSize(t *testing.T) {
	p := Project(makeBases(45), ViewState{}, 0)
	if p.PageSize != DefaultPageSize || len(p.Items) != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d (%d items)", DefaultPageSize, p.PageSize, len(p.Items))
	}
}

func TestProjectNoMatches(t *testing.T) {
	bases := []api.BaseItem{{ID: 1, Name: "Leather Belt"}, {ID: 2, Name: "Iron Hat"}}
	p := Project(bases, ViewState{SearchTerm: "bolt", CurrentPage: 1}, 20)
	if p.TotalFiltered != 0 || p.TotalPages != 0 {
		t.Errorf("expected no matches, got %d in %d pages", p.TotalFiltered, p.TotalPages)
	}
	if p.Page != 1 {
		t.Errorf("empty result should stay on page 1, got %d", p.Page)
	}
	if len(p.Items) != 0 {
		t.Errorf("expected no items, got %d", len(p.Items))
	}
	if p.Suggestion != "Leather Belt" {
		t.Errorf("expected suggestion Leather Belt, got %q", p.Suggestion)
	}
	if p.Range() != "0 of 0" {
		t.Errorf("unexpected range %q", p.Range())
	}
}

func TestSuggestNothingClose(t *testing.T) {
	bases := []api.BaseItem{{Name: "Leather Belt"}}
	if s := Suggest(bases, "quarterstaff"); s != "" {
		t.Errorf("expected no suggestion, got %q", s)
	}
	if s := Suggest(bases, "   "); s != "" {
		t.Errorf("blank term should not suggest, got %q", s)
	}
}

func TestWithSearchResetsPage(t *testing.T) {
	vs := ViewState{SearchTerm: "", CurrentPage: 3}
	next := vs.WithSearch("item")
	if next.CurrentPage != 1 {
		t.Errorf("expected page reset to 1, got %d", next.CurrentPage)
	}
	if next.SearchTerm != "item" {
		t.Errorf("expected term 'item', got %q", next.SearchTerm)
	}
	// All 45 items still match; the page must reset anyway.
	p := Project(makeBases(45), next, 20)
	if p.Page != 1 {
		t.Errorf("expected projected page 1, got %d", p.Page)
	}
}

func TestPrevClampsStalePage(t *testing.T) {
	bases := makeBases(45) // 3 pages of 20
	vs := ViewState{CurrentPage: 5}
	if got := Project(bases, vs, 20).Page; got != 3 {
		t.Fatalf("stale page should display as 3, got %d", got)
	}
	vs = vs.Prev(Project(bases, vs, 20).TotalPages)
	if vs.CurrentPage != 2 {
		t.Errorf("expected page 2 after one Prev, got %d", vs.CurrentPage)
	}
	if got := Project(bases, vs, 20).Page; got != 2 {
		t.Errorf("expected displayed page 2, got %d", got)
	}
}

func TestViewStateNavigation(t *testing.T) {
	vs := ViewState{}
	vs = vs.Next(3)
	if vs.CurrentPage != 2 {
		t.Errorf("expected page 2, got %d", vs.CurrentPage)
	}
	vs = vs.Next(3).Next(3)
	if vs.CurrentPage != 3 {
		t.Errorf("Next should stop at the last page, got %d", vs.CurrentPage)
	}
	vs = vs.Prev(3).Prev(3).Prev(3)
	if vs.CurrentPage != 1 {
		t.Errorf("Prev should stop at 1, got %d", vs.CurrentPage)
	}
	if got := (ViewState{CurrentPage: 0}).Prev(0).CurrentPage; got != 1 {
		t.Errorf("Prev(0) from page 0 = %d, want 1", got)
	}
	if got := (ViewState{CurrentPage: 9}).Clamp(2).CurrentPage; got != 2 {
		t.Errorf("Clamp(2) from 9 = %d, want 2", got)
	}
	if got := (ViewState{CurrentPage: 9}).Clamp(0).CurrentPage; got != 1 {
		t.Errorf("Clamp(0) from 9 = %d, want 1", got)
	}
}
