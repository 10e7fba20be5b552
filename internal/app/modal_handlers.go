package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/switchboard/internal/keys"
	"github.com/zhubert/switchboard/internal/router"
	"github.com/zhubert/switchboard/internal/ui/modals"
)

// handleModalKey routes modal key events to the handler for the visible modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ctrl+c quits from anywhere
	if key == keys.CtrlC {
		return shortcutQuit(m)
	}

	switch s := m.modal.State.(type) {
	case *modals.ConfirmClearState:
		return m.handleConfirmClearModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleConfirmClearModal handles key events for the clear-history confirmation.
func (m *Model) handleConfirmClearModal(key string, msg tea.KeyPressMsg, state *modals.ConfirmClearState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if !state.Confirmed() {
			m.modal.Hide()
			return m, nil
		}
		if err := m.controller.ClearHistory(); err != nil {
			m.log.Warn("failed to clear history", "error", err)
			m.modal.SetError("Failed to clear: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, m.ShowFlashSuccess("History cleared")
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		mode := state.GetRoutingMode()
		m.config.SetRoutingMode(mode)
		m.config.SetTypingEffect(state.TypingEffect)
		m.config.SetNotificationsEnabled(state.NotificationsEnabled)

		if state.RoutingModeChanged() {
			m.controller.SetPolicy(router.New(mode))
			m.header.SetRoutingMode(mode)
			m.log.Info("routing mode changed", "mode", mode)
		}
		m.chat.SetTypingEffect(state.TypingEffect, m.config.GetTypingInterval())

		if err := m.config.Save(); err != nil {
			m.log.Error("failed to save settings", "error", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, nil
	}
	// Forward other keys to the form
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal. Enter runs the
// selected shortcut.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, keys.F1, "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		m.modal.Hide()
		if shortcut == nil {
			return m, nil
		}
		result, cmd, handled := m.ExecuteShortcut(shortcut.Key)
		if !handled {
			// Display-only rows such as enter and pgup/pgdown
			return m, m.ShowFlashInfo(shortcut.Key + " works in the chat, not from help")
		}
		return result, cmd
	}
	// Forward navigation keys to the modal
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
