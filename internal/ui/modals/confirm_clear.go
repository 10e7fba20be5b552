package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ConfirmClearState asks before the saved conversation is deleted.
type ConfirmClearState struct {
	Exchanges int
	confirmed bool
	form      *huh.Form
}

func (*ConfirmClearState) modalState() {}

func (s *ConfirmClearState) Title() string { return "Clear History?" }

func (s *ConfirmClearState) Help() string {
	return "left/right or y/n to choose  Enter: confirm  Esc: cancel"
}

func (s *ConfirmClearState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	detail := "The transcript is empty."
	switch s.Exchanges {
	case 0:
	case 1:
		detail = "1 saved exchange will be deleted."
	default:
		detail = fmt.Sprintf("%d saved exchanges will be deleted.", s.Exchanges)
	}
	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render(detail)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, message, s.form.View(), help)
}

func (s *ConfirmClearState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		// Answer keys only set the value; Enter is still required
		switch keyMsg.String() {
		case "y", "Y":
			s.confirmed = true
			return s, nil
		case "n", "N":
			s.confirmed = false
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Confirmed reports whether the user chose to clear
func (s *ConfirmClearState) Confirmed() bool {
	return s.confirmed
}

// NewConfirmClearState creates a ConfirmClearState. It defaults to keeping the history.
func NewConfirmClearState(exchanges int) *ConfirmClearState {
	s := &ConfirmClearState{Exchanges: exchanges}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Affirmative("Clear").
				Negative("Keep").
				Value(&s.confirmed),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}
