package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestShowFlash_Variants(t *testing.T) {
	m, _ := testModel(t, &fakeSender{})

	for _, show := range []func(string) tea.Cmd{
		m.ShowFlashError,
		m.ShowFlashWarning,
		m.ShowFlashInfo,
		m.ShowFlashSuccess,
	} {
		m.footer.ClearFlash()
		if show("hello") == nil {
			t.Error("expected a flash tick command")
		}
		if !m.footer.HasFlash() {
			t.Error("expected flash to be set")
		}
	}
}
