package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonhe/poewatch/internal/api"
	"github.com/tonhe/poewatch/internal/dashboard"
	"github.com/tonhe/poewatch/internal/engine"
	"github.com/tonhe/poewatch/tui/keys"
	"github.com/tonhe/poewatch/tui/styles"
)

// BasesView is the searchable, paged base item table. Its ViewState is kept
// across refreshes.
type BasesView struct {
	theme    styles.Theme
	sty      *styles.Styles
	input    textinput.Model
	vs       dashboard.ViewState
	pageSize int
	bases    []api.BaseItem
	state    engine.State
	spinner  string
	width    int
	height   int
}

func NewBasesView(theme styles.Theme, pageSize int) BasesView {
	ti := textinput.New()
	ti.Placeholder = "search base items"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.PromptStyle = styles.NewStyles(theme).SearchPrompt
	return BasesView{
		theme:    theme,
		sty:      styles.NewStyles(theme),
		input:    ti,
		vs:       dashboard.ViewState{CurrentPage: 1},
		pageSize: pageSize,
	}
}

// SetState picks up the latest bases without touching the search or page.
func (v *BasesView) SetState(st engine.State) {
	v.state = st
	if b := st.Snapshot.Bases; b != nil {
		v.bases = b.Bases
	}
}

// SetTheme restyles the view, keeping search and page.
func (v *BasesView) SetTheme(theme styles.Theme) {
	v.theme = theme
	v.sty = styles.NewStyles(theme)
	v.input.PromptStyle = v.sty.SearchPrompt
}

// SetPageSize changes rows per page and clamps the current page.
func (v *BasesView) SetPageSize(n int) {
	v.pageSize = n
	v.vs = v.vs.Clamp(v.page().TotalPages)
}

func (v *BasesView) SetSpinner(frame string) {
	v.spinner = frame
}

func (v *BasesView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = width / 3
}

// Searching reports whether the search box has focus. While it does, keys
// are text, not commands.
func (v BasesView) Searching() bool {
	return v.input.Focused()
}

// ViewState returns the current search and page.
func (v BasesView) ViewState() dashboard.ViewState {
	return v.vs
}

func (v BasesView) Update(msg tea.Msg) (BasesView, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.input.Focused() {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.input.Focused() {
		switch {
		case key.Matches(km, keys.DefaultKeyMap.Enter):
			v.input.Blur()
			return v, nil
		case key.Matches(km, keys.DefaultKeyMap.Escape):
			v.input.SetValue("")
			v.vs = v.vs.WithSearch("")
			v.input.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(km)
		if term := v.input.Value(); term != v.vs.SearchTerm {
			v.vs = v.vs.WithSearch(term)
		}
		return v, cmd
	}

	switch {
	case key.Matches(km, keys.DefaultKeyMap.Search):
		return v, v.input.Focus()
	case key.Matches(km, keys.DefaultKeyMap.NextPage):
		v.vs = v.vs.Next(v.page().TotalPages)
	case key.Matches(km, keys.DefaultKeyMap.PrevPage):
		v.vs = v.vs.Prev(v.page().TotalPages)
	case key.Matches(km, keys.DefaultKeyMap.Escape):
		v.input.SetValue("")
		v.vs = v.vs.WithSearch("")
	}
	return v, nil
}

func (v BasesView) page() dashboard.Page {
	return dashboard.Project(v.bases, v.vs, v.pageSize)
}

func (v BasesView) View() string {
	title := v.sty.SectionTitle.Render("Base Items")
	if v.state.PanelLoading(engine.ResourceBases) {
		return title + "\n  " + v.sty.TableCellDim.Render(v.spinner+" loading...")
	}

	var lines []string
	if banner := renderBanner(v.sty, v.state, v.width); banner != "" {
		lines = append(lines, banner, "")
	}
	lines = append(lines, title, "  "+v.input.View(), "")

	p := v.page()
	if p.TotalFiltered == 0 {
		msg := "No base items."
		if v.vs.SearchTerm != "" {
			msg = fmt.Sprintf("No base items match %q.", v.vs.SearchTerm)
		}
		lines = append(lines, "  "+v.sty.TableCellDim.Render(msg))
		if p.Suggestion != "" {
			lines = append(lines, "  "+v.sty.Hint.Render(fmt.Sprintf("Did you mean %q?", p.Suggestion)))
		}
		return strings.Join(lines, "\n")
	}

	nameWidth := 40
	if v.width > 0 && v.width-20 < nameWidth {
		nameWidth = max(12, v.width-20)
	}
	lines = append(lines, v.sty.TableHeader.Render("  "+padLeft("ID", 6)+"  "+padRight("Name", nameWidth)+padLeft("Level", 7)))
	for _, b := range p.Items {
		lines = append(lines, "  "+
			v.sty.TableCellDim.Render(padLeft(fmt.Sprint(b.ID), 6))+"  "+
			v.sty.TableRow.Render(padRight(b.Name, nameWidth))+
			v.sty.TableRow.Render(padLeft(dashboard.FormatLevel(b.RequiredLevel), 7)))
	}

	lines = append(lines, "")
	footer := v.sty.TableCellDim.Render(p.Range())
	if p.ShowPager {
		footer += v.sty.TableCellDim.Render(fmt.Sprintf("   page %d/%d  ", p.Page, p.TotalPages)) +
			v.sty.FooterKey.Render("p") + v.sty.FooterDesc.Render(":prev ") +
			v.sty.FooterKey.Render("n") + v.sty.FooterDesc.Render(":next")
	}
	lines = append(lines, "  "+footer)
	return strings.Join(lines, "\n")
}
