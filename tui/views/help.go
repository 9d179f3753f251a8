package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonhe/poewatch/tui/styles"
)

// HelpView renders a modal overlay showing all keyboard shortcuts.
type HelpView struct {
	theme   styles.Theme
	sty     *styles.Styles
	width   int
	height  int
	visible bool
}

// NewHelpView creates a new HelpView with the given theme.
func NewHelpView(theme styles.Theme) HelpView {
	return HelpView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Toggle flips the help overlay visibility.
func (v *HelpView) Toggle() {
	v.visible = !v.visible
}

func (v HelpView) IsVisible() bool {
	return v.visible
}

func (v *HelpView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the help overlay as a centered modal box.
func (v HelpView) View() string {
	modalWidth := min(max(v.width/2, 38), 56)
	innerWidth := modalWidth - 6 // border + padding

	descStyle := lipgloss.NewStyle().Foreground(v.theme.Base05)
	dimStyle := lipgloss.NewStyle().Foreground(v.theme.Base04)

	bindingLine := func(keys, desc string) string {
		return fmt.Sprintf("  %s  %s", v.sty.FooterKey.Render(padRight(keys, 14)), descStyle.Render(desc))
	}

	lines := []string{
		v.sty.SectionTitle.Render("Global"),
		bindingLine("q / Ctrl+C", "Quit"),
		bindingLine("r", "Refresh now"),
		bindingLine("Tab", "Next view"),
		bindingLine("s", "Settings"),
		bindingLine("?", "Toggle this help"),
		"",
		v.sty.SectionTitle.Render("Base Items"),
		bindingLine("/", "Search by name"),
		bindingLine("Enter", "Finish typing"),
		bindingLine("Esc", "Clear search"),
		bindingLine("n / p", "Next / previous page"),
		"",
		v.sty.SectionTitle.Render("Notes"),
		dimStyle.Render("  Data refreshes automatically. A failed"),
		dimStyle.Render("  resource keeps its last known value."),
		"",
		dimStyle.Render("[?] close"),
	}

	modal := v.sty.ModalBorder.Width(innerWidth).Render(strings.Join(lines, "\n"))

	// Put the title into the top border.
	title := v.sty.ModalTitle.Render(" Keyboard Shortcuts ")
	modalLines := strings.Split(modal, "\n")
	if len(modalLines) > 0 {
		runes := []rune(modalLines[0])
		titleRunes := []rune(title)
		const insertPos = 2
		if insertPos+len(titleRunes) < len(runes) {
			combined := make([]rune, 0, len(runes))
			combined = append(combined, runes[:insertPos]...)
			combined = append(combined, titleRunes...)
			combined = append(combined, runes[insertPos+len(titleRunes):]...)
			modalLines[0] = string(combined)
		}
		modal = strings.Join(modalLines, "\n")
	}

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}
