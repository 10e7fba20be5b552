package ui

import "testing"

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 || ctx.TerminalHeight != 40 {
		t.Errorf("size = %dx%d, want 120x40", ctx.TerminalWidth, ctx.TerminalHeight)
	}
	if ctx.ContentHeight != 40-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight = %d, want %d", ctx.ContentHeight, 40-HeaderHeight-FooterHeight)
	}
	if ctx.ChatWidth != 120 {
		t.Errorf("ChatWidth = %d, want 120", ctx.ChatWidth)
	}
}

func TestViewContext_ClampsTinyTerminal(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(5, 3)

	if ctx.TerminalWidth != MinTerminalWidth || ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("size = %dx%d, want %dx%d", ctx.TerminalWidth, ctx.TerminalHeight, MinTerminalWidth, MinTerminalHeight)
	}
}

func TestViewContext_Inner(t *testing.T) {
	ctx := GetViewContext()

	if got := ctx.InnerWidth(50); got != 50-BorderSize {
		t.Errorf("InnerWidth(50) = %d", got)
	}
	if got := ctx.InnerHeight(20); got != 20-BorderSize {
		t.Errorf("InnerHeight(20) = %d", got)
	}
}

func TestGetViewContext_Singleton(t *testing.T) {
	if GetViewContext() != GetViewContext() {
		t.Error("GetViewContext should return the same instance")
	}
}
