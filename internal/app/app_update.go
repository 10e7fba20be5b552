package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/switchboard/internal/keys"
	"github.com/zhubert/switchboard/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		m.log.Debug("window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		m.log.Debug("window blurred")
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Not a shortcut; the chat input gets it below

	case showLoadingMsg:
		m.controller.ShowLoading(msg.pending)
		return m, m.chat.Ticks()

	case responseMsg:
		return m.handleResponse(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case ui.TypingTickMsg, ui.SpinnerTickMsg:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return m, cmd
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles app-level keys. It returns a nil model when the key
// should fall through to the chat input.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "modalVisible", m.modal.IsVisible())

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch key {
	case keys.Enter:
		return m.sendMessage()
	case keys.ShiftEnter, keys.AltEnter:
		m.chat.InsertNewline()
		return m, nil
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}
	return nil, nil
}
