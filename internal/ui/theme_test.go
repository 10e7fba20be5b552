package ui

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/switchboard/internal/store"
)

func TestDefaultTheme(t *testing.T) {
	if CurrentTheme() != store.DefaultTheme {
		t.Errorf("CurrentTheme() = %q, want %q", CurrentTheme(), store.DefaultTheme)
	}
	if CurrentPalette().CodeStyle != "monokai" {
		t.Errorf("dark palette code style = %q, want monokai", CurrentPalette().CodeStyle)
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(store.ThemeDark) })

	gen := themeGeneration
	SetTheme(store.ThemeLight)

	if CurrentTheme() != store.ThemeLight {
		t.Errorf("CurrentTheme() = %q, want %q", CurrentTheme(), store.ThemeLight)
	}
	if CurrentPalette().Name != "Light" {
		t.Errorf("CurrentPalette().Name = %q, want Light", CurrentPalette().Name)
	}
	if themeGeneration != gen+1 {
		t.Errorf("themeGeneration = %d, want %d", themeGeneration, gen+1)
	}
	if ColorPrimary != lipgloss.Color(Palettes[store.ThemeLight].Primary) {
		t.Error("styles should be regenerated from the light palette")
	}
}

func TestSetTheme_Unknown(t *testing.T) {
	t.Cleanup(func() { SetTheme(store.ThemeDark) })

	SetTheme(store.ThemeLight)
	SetTheme(store.Theme("neon"))

	if CurrentTheme() != store.DefaultTheme {
		t.Errorf("unknown theme should fall back to %q, got %q", store.DefaultTheme, CurrentTheme())
	}
}

func TestPalettes_Complete(t *testing.T) {
	for theme, p := range Palettes {
		for name, hex := range map[string]string{
			"Primary": p.Primary, "Bg": p.Bg, "Text": p.Text, "TextMuted": p.TextMuted,
			"User": p.User, "Assistant": p.Assistant, "Error": p.Error, "Border": p.Border,
		} {
			if len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s palette %s = %q, want #RRGGBB", theme, name, hex)
			}
		}
		if p.CodeStyle == "" {
			t.Errorf("%s palette has no code style", theme)
		}
	}
}
