package styles

import (
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
)

// DefaultThemeSlug is used when the configured theme is unknown.
const DefaultThemeSlug = "solarized-dark"

// Theme represents a Base16 color scheme.
type Theme struct {
	Name   string
	Base00 lipgloss.Color // Background
	Base01 lipgloss.Color // Lighter background
	Base02 lipgloss.Color // Selection
	Base03 lipgloss.Color // Comments / dim
	Base04 lipgloss.Color // Light foreground
	Base05 lipgloss.Color // Foreground
	Base06 lipgloss.Color // Light foreground
	Base07 lipgloss.Color // Light background
	Base08 lipgloss.Color // Red
	Base09 lipgloss.Color // Orange
	Base0A lipgloss.Color // Yellow
	Base0B lipgloss.Color // Green
	Base0C lipgloss.Color // Cyan
	Base0D lipgloss.Color // Blue
	Base0E lipgloss.Color // Magenta
	Base0F lipgloss.Color // Brown
}

var sortedSlugs []string

func init() {
	sortedSlugs = make([]string, 0, len(Themes))
	for slug := range Themes {
		sortedSlugs = append(sortedSlugs, slug)
	}
	sort.Strings(sortedSlugs)
}

// GetThemeByName returns a theme by its slug, or nil if not found.
func GetThemeByName(name string) *Theme {
	t, ok := Themes[name]
	if !ok {
		return nil
	}
	return &t
}

// Resolve returns the named theme, falling back to the default. ok is false
// when the fallback was used.
func Resolve(name string) (Theme, bool) {
	if t, found := Themes[name]; found {
		return t, true
	}
	return Themes[DefaultThemeSlug], false
}

// ListThemes returns sorted theme slugs.
func ListThemes() []string {
	return sortedSlugs
}

// SuggestTheme returns the slug closest to name, or "" when none is within
// a few edits.
func SuggestTheme(name string) string {
	best, bestDist := "", 4
	for _, slug := range sortedSlugs {
		if d := levenshtein.ComputeDistance(name, slug); d < bestDist {
			best, bestDist = slug, d
		}
	}
	return best
}
