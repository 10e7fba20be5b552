package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a short-lived notice that replaces the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg is sent periodically while a flash is visible
type FlashTickMsg time.Time

// FlashTick returns a command that checks for flash expiry after a second
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	busy         bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+n", Desc: "suggest"},
			{Key: "ctrl+y", Desc: "copy reply"},
			{Key: "ctrl+t", Desc: "theme"},
			{Key: "ctrl+l", Desc: "clear"},
			{Key: "ctrl+s", Desc: "settings"},
			{Key: "f1", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetBusy switches to the in-flight bindings
func (f *Footer) SetBusy(busy bool) {
	f.busy = busy
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func flashStyle(t FlashType) (string, lipgloss.Style) {
	switch t {
	case FlashError:
		return "✕", lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		return "⚠", lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashSuccess:
		return "✓", lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	default:
		return "ℹ", lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	}
}

// View renders the footer
func (f *Footer) View() string {
	var content string

	if f.flashMessage != nil {
		icon, style := flashStyle(f.flashMessage.Type)
		content = style.Render(icon + " " + f.flashMessage.Text)
	} else {
		bindings := f.bindings
		if f.busy {
			bindings = []KeyBinding{
				{Key: "pgup/dn", Desc: "scroll"},
				{Key: "ctrl+t", Desc: "theme"},
				{Key: "ctrl+c", Desc: "quit"},
			}
		}

		var parts []string
		if f.busy {
			parts = append(parts, StatusLoadingStyle.Render("waiting for reply"))
		}
		for _, b := range bindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		content = strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	}

	// Leave room for FooterStyle's horizontal padding
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}
