package styles

import (
	"sort"
	"testing"
)

func TestGetThemeByName(t *testing.T) {
	theme := GetThemeByName("solarized-dark")
	if theme == nil {
		t.Fatal("GetThemeByName('solarized-dark') returned nil")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected name 'Solarized Dark', got %q", theme.Name)
	}
	if theme.Base00 != "#002b36" {
		t.Errorf("expected base00 #002b36, got %q", theme.Base00)
	}
}

func TestGetThemeByNameMissing(t *testing.T) {
	if GetThemeByName("nonexistent") != nil {
		t.Error("expected nil for nonexistent theme")
	}
}

func TestResolveFallback(t *testing.T) {
	theme, ok := Resolve("no-such-theme")
	if ok {
		t.Error("expected ok=false for unknown theme")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected fallback to Solarized Dark, got %q", theme.Name)
	}
	if theme, ok := Resolve("nord"); !ok || theme.Name != "Nord" {
		t.Errorf("Resolve(nord) = %q, %v", theme.Name, ok)
	}
}

func TestListThemes(t *testing.T) {
	themes := ListThemes()
	if len(themes) < 20 {
		t.Errorf("expected at least 20 themes, got %d", len(themes))
	}
	if !sort.StringsAreSorted(themes) {
		t.Error("expected sorted slugs")
	}
}

func TestThemesComplete(t *testing.T) {
	for slug, theme := range Themes {
		if theme.Name == "" || theme.Base0F == "" {
			t.Errorf("%s: theme is missing colours or a name", slug)
		}
	}
}

func TestSuggestTheme(t *testing.T) {
	if got := SuggestTheme("dracla"); got != "dracula" {
		t.Errorf("SuggestTheme(dracla) = %q, want dracula", got)
	}
	if got := SuggestTheme("completely-different"); got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
}
