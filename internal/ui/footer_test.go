package ui

import (
	"strings"
	"testing"
	"time"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}

	if len(footer.bindings) == 0 {
		t.Error("Expected default bindings to be set")
	}

	if footer.flashMessage != nil {
		t.Error("Expected no flash message initially")
	}
}

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()

	footer.SetWidth(120)

	if footer.width != 120 {
		t.Errorf("Expected width 120, got %d", footer.width)
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Reply copied", FlashSuccess)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Text != "Reply copied" {
		t.Errorf("Expected text 'Reply copied', got %q", footer.flashMessage.Text)
	}
	if footer.flashMessage.Type != FlashSuccess {
		t.Errorf("Expected type FlashSuccess, got %v", footer.flashMessage.Type)
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected duration %v, got %v", DefaultFlashDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_SetFlashWithDuration(t *testing.T) {
	footer := NewFooter()
	customDuration := 10 * time.Second

	footer.SetFlashWithDuration("Custom duration", FlashInfo, customDuration)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Duration != customDuration {
		t.Errorf("Expected duration %v, got %v", customDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Test message", FlashInfo)
	if !footer.HasFlash() {
		t.Error("Expected HasFlash() to return true")
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false after ClearFlash()")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()

	footer.SetFlashWithDuration("Expired", FlashWarning, time.Millisecond)
	footer.flashMessage.CreatedAt = time.Now().Add(-time.Second)
	if !footer.ClearIfExpired() {
		t.Error("Expected ClearIfExpired() to clear an expired flash")
	}
	if footer.HasFlash() {
		t.Error("Expected flash to be gone")
	}

	footer.SetFlash("Fresh", FlashInfo)
	if footer.ClearIfExpired() {
		t.Error("Expected ClearIfExpired() to keep a fresh flash")
	}
	if !footer.HasFlash() {
		t.Error("Expected flash to remain")
	}
}

func TestFooter_View_Bindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(200)

	view := stripANSI(footer.View())

	for _, want := range []string{"enter: send", "ctrl+t: theme", "ctrl+l: clear", "ctrl+c: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got %q", want, view)
		}
	}
}

func TestFooter_View_Busy(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(200)
	footer.SetBusy(true)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "waiting for reply") {
		t.Errorf("Expected busy indicator, got %q", view)
	}
	if strings.Contains(view, "enter: send") {
		t.Errorf("Expected send binding to be hidden while busy, got %q", view)
	}
}

func TestFooter_View_Flash(t *testing.T) {
	tests := []struct {
		flashType FlashType
		icon      string
	}{
		{FlashError, "✕"},
		{FlashWarning, "⚠"},
		{FlashSuccess, "✓"},
		{FlashInfo, "ℹ"},
	}

	for _, tt := range tests {
		footer := NewFooter()
		footer.SetWidth(200)
		footer.SetFlash("something happened", tt.flashType)

		view := stripANSI(footer.View())
		if !strings.Contains(view, tt.icon+" something happened") {
			t.Errorf("Expected %q flash, got %q", tt.icon, view)
		}
		if strings.Contains(view, "ctrl+c") {
			t.Errorf("Expected flash to replace bindings, got %q", view)
		}
	}
}

func TestFooter_View_Truncates(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(30)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "…") {
		t.Errorf("Expected truncated footer, got %q", view)
	}
	if strings.Contains(view, "ctrl+c: quit") {
		t.Errorf("Expected the last binding to be cut, got %q", view)
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}
