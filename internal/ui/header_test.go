package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/zhubert/switchboard/internal/store"
)

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetRoutingMode("prefix")

	view := stripANSI(h.View())

	for _, want := range []string{"switchboard", "prefix routing", "dark"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected header to contain %q, got %q", want, view)
		}
	}
	if strings.Contains(view, "sending") {
		t.Errorf("Expected idle header, got %q", view)
	}
	if w := runewidth.StringWidth(view); w != 80 {
		t.Errorf("Expected header width 80, got %d", w)
	}
}

func TestHeader_Busy(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetBusy(true)

	if view := stripANSI(h.View()); !strings.Contains(view, "sending") {
		t.Errorf("Expected busy header, got %q", view)
	}
}

func TestHeader_ThemeName(t *testing.T) {
	SetTheme(store.ThemeLight)
	t.Cleanup(func() { SetTheme(store.ThemeDark) })

	h := NewHeader()
	h.SetWidth(60)

	if view := stripANSI(h.View()); !strings.Contains(view, "light") {
		t.Errorf("Expected light theme in header, got %q", view)
	}
}

func TestHeader_Narrow(t *testing.T) {
	h := NewHeader()
	h.SetWidth(10)
	h.SetRoutingMode("keyword")

	if w := runewidth.StringWidth(stripANSI(h.View())); w > 10 {
		t.Errorf("Expected header truncated to 10 columns, got %d", w)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"bogus", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d, want %d,%d,%d", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
