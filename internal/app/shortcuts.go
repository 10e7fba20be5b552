package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/switchboard/internal/clipboard"
	"github.com/zhubert/switchboard/internal/config"
	"github.com/zhubert/switchboard/internal/keys"
	"github.com/zhubert/switchboard/internal/ui"
	"github.com/zhubert/switchboard/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+t")
	DisplayKey  string                              // Display name in help; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryChat       = "Chat"
	CategoryTranscript = "Transcript"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryChat,
	CategoryTranscript,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Chat
	{
		Key:         keys.CtrlN,
		Description: "Insert the next suggestion",
		Category:    CategoryChat,
		Handler:     shortcutSuggest,
	},

	// Transcript
	{
		Key:         keys.CtrlY,
		Description: "Copy the last reply",
		Category:    CategoryTranscript,
		Handler:     shortcutCopyReply,
		Condition:   func(m *Model) bool { return m.controller.LastReply() != "" },
	},
	{
		Key:         keys.CtrlL,
		Description: "Clear saved history",
		Category:    CategoryTranscript,
		Handler:     shortcutClearHistory,
	},

	// General
	{
		Key:         keys.CtrlT,
		Description: "Toggle light/dark theme",
		Category:    CategoryGeneral,
		Handler:     shortcutToggleTheme,
	},
	{
		Key:         keys.CtrlS,
		Description: "Settings",
		Category:    CategoryGeneral,
		Handler:     shortcutSettings,
	},
	{
		Key:         keys.CtrlC,
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is listed in the help modal only. It has no Handler because
// shortcutHelp reads ShortcutRegistry; ExecuteShortcut dispatches it directly.
var helpShortcut = Shortcut{
	Key:         keys.F1,
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are listed in the help modal but handled elsewhere.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: keys.Enter, Description: "Send message", Category: CategoryChat},
	{DisplayKey: keys.ShiftEnter, Description: "New line", Category: CategoryChat},
	{DisplayKey: "pgup/pgdown", Description: "Scroll transcript", Category: CategoryTranscript},
	{DisplayKey: "ctrl+up/down", Description: "Scroll transcript", Category: CategoryTranscript},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	return s.Condition == nil || s.Condition(m)
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or its condition failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut condition failed", "key", key)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range displayOnly {
		add(s)
	}
	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}

	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutSuggest(m *Model) (tea.Model, tea.Cmd) {
	m.chat.CycleSuggestion()
	return m, nil
}

func shortcutCopyReply(m *Model) (tea.Model, tea.Cmd) {
	if err := clipboard.WriteText(m.controller.LastReply()); err != nil {
		m.log.Warn("failed to copy reply", "error", err)
		return m, m.ShowFlashError("Could not copy to clipboard")
	}
	return m, m.ShowFlashSuccess("Reply copied")
}

func shortcutClearHistory(m *Model) (tea.Model, tea.Cmd) {
	if !m.IsIdle() {
		return m, m.ShowFlashWarning("Wait for the reply before clearing")
	}
	m.modal.Show(modals.NewConfirmClearState(len(m.store.LoadLog())))
	return m, nil
}

// shortcutToggleTheme flips the theme on screen and saves it. The screen is
// the source of truth, so a failed save never desyncs later toggles.
func shortcutToggleTheme(m *Model) (tea.Model, tea.Cmd) {
	next := ui.CurrentTheme().Toggle()
	ui.SetTheme(next)
	m.chat.Refresh()

	if err := m.store.SaveTheme(next); err != nil {
		m.log.Error("failed to save theme", "theme", next, "error", err)
		return m, m.ShowFlashWarning("Could not save theme")
	}
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewSettingsState(
		[]string{config.RoutingPrefix, config.RoutingKeyword},
		[]string{"web:, db:, file: tags", "trigger phrases"},
		m.config.GetRoutingMode(),
		m.config.GetTypingEffect(),
		m.config.GetNotificationsEnabled(),
	))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	allShortcuts := append(ShortcutRegistry[:len(ShortcutRegistry):len(ShortcutRegistry)], helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}
