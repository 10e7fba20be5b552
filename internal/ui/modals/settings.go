package modals

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

const (
	optionTypingEffect  = "typing"
	optionNotifications = "notifications"
)

// SettingsState edits the runtime options that are saved to the config file.
type SettingsState struct {
	routingMode          string
	OriginalRoutingMode  string
	TypingEffect         bool
	NotificationsEnabled bool

	generalOptions []string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Space: toggle  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect bindings.
func (s *SettingsState) syncFromMultiSelect() {
	s.TypingEffect = slices.Contains(s.generalOptions, optionTypingEffect)
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
}

// GetRoutingMode returns the selected routing mode
func (s *SettingsState) GetRoutingMode() string {
	return s.routingMode
}

// RoutingModeChanged returns true if the selected mode differs from the original
func (s *SettingsState) RoutingModeChanged() bool {
	return s.routingMode != s.OriginalRoutingMode
}

// NewSettingsState creates a SettingsState. modes are the selectable routing
// modes; descriptions are shown next to them in the same order.
func NewSettingsState(modes, descriptions []string, currentMode string, typingEffect, notificationsEnabled bool) *SettingsState {
	s := &SettingsState{
		routingMode:          currentMode,
		OriginalRoutingMode:  currentMode,
		TypingEffect:         typingEffect,
		NotificationsEnabled: notificationsEnabled,
	}

	modeOptions := make([]huh.Option[string], len(modes))
	for i, mode := range modes {
		label := mode
		if i < len(descriptions) && descriptions[i] != "" {
			label += " - " + descriptions[i]
		}
		modeOptions[i] = huh.NewOption(label, mode)
	}

	if typingEffect {
		s.generalOptions = append(s.generalOptions, optionTypingEffect)
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}
	generalOpts := []huh.Option[string]{
		huh.NewOption("Reveal replies word by word", optionTypingEffect).
			Selected(typingEffect),
		huh.NewOption("Desktop notification when a reply arrives unfocused", optionNotifications).
			Selected(notificationsEnabled),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Routing").
				Description("How input is matched to a backend").
				Options(modeOptions...).
				Value(&s.routingMode),
			huh.NewMultiSelect[string]().
				Title("Options").
				Options(generalOpts...).
				Height(len(generalOpts)).
				Value(&s.generalOptions),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidthWide - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
