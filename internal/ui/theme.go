package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/switchboard/internal/store"
)

// Palette defines every color the UI draws with.
type Palette struct {
	// Name is the display name of the palette
	Name string

	Primary   string // Focus, highlights, header gradient start
	Secondary string // Footer keys, list bullets

	Bg          string
	Text        string
	TextMuted   string
	TextInverse string // Text on colored backgrounds

	User      string // Outgoing labels
	Assistant string // Incoming labels
	Warning   string
	Error     string
	Info      string
	Success   string

	Border      string
	BorderFocus string

	MarkdownH1       string
	MarkdownH2       string
	MarkdownH3       string
	MarkdownCode     string
	MarkdownCodeBg   string
	MarkdownLink     string
	MarkdownListItem string

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
}

// Palettes maps each stored theme to its palette.
var Palettes = map[store.Theme]Palette{
	store.ThemeDark: {
		Name:             "Dark",
		Primary:          "#7C3AED",
		Secondary:        "#06B6D4",
		Bg:               "#1F2937",
		Text:             "#F9FAFB",
		TextMuted:        "#9CA3AF",
		TextInverse:      "#1F2937",
		User:             "#A78BFA",
		Assistant:        "#22D3EE",
		Warning:          "#F59E0B",
		Error:            "#EF4444",
		Info:             "#06B6D4",
		Success:          "#10B981",
		Border:           "#374151",
		BorderFocus:      "#7C3AED",
		MarkdownH1:       "#A78BFA",
		MarkdownH2:       "#C4B5FD",
		MarkdownH3:       "#22D3EE",
		MarkdownCode:     "#67E8F9",
		MarkdownCodeBg:   "#1E1E2E",
		MarkdownLink:     "#67E8F9",
		MarkdownListItem: "#06B6D4",
		CodeStyle:        "monokai",
	},
	store.ThemeLight: {
		Name:             "Light",
		Primary:          "#6366F1",
		Secondary:        "#0891B2",
		Bg:               "#FFFFFF",
		Text:             "#1F2937",
		TextMuted:        "#6B7280",
		TextInverse:      "#FFFFFF",
		User:             "#7C3AED",
		Assistant:        "#0891B2",
		Warning:          "#D97706",
		Error:            "#DC2626",
		Info:             "#0891B2",
		Success:          "#16A34A",
		Border:           "#D1D5DB",
		BorderFocus:      "#6366F1",
		MarkdownH1:       "#6366F1",
		MarkdownH2:       "#7C3AED",
		MarkdownH3:       "#0891B2",
		MarkdownCode:     "#059669",
		MarkdownCodeBg:   "#F3F4F6",
		MarkdownLink:     "#0891B2",
		MarkdownListItem: "#6366F1",
		CodeStyle:        "github",
	},
}

var (
	currentTheme   = store.DefaultTheme
	currentPalette = Palettes[store.DefaultTheme]

	// themeGeneration changes on every SetTheme so cached renders can be invalidated
	themeGeneration int
)

// CurrentTheme returns the active theme
func CurrentTheme() store.Theme {
	return currentTheme
}

// CurrentPalette returns the active palette
func CurrentPalette() Palette {
	return currentPalette
}

// SetTheme sets the active theme and regenerates all styles.
// Unknown themes fall back to the default.
func SetTheme(t store.Theme) {
	p, ok := Palettes[t]
	if !ok {
		t = store.DefaultTheme
		p = Palettes[t]
	}
	currentTheme = t
	currentPalette = p
	themeGeneration++
	regenerateStyles()
	RefreshModalStyles()
}

// regenerateStyles updates all style variables based on the current palette
func regenerateStyles() {
	p := currentPalette

	ColorPrimary = lipgloss.Color(p.Primary)
	ColorSecondary = lipgloss.Color(p.Secondary)
	ColorMuted = lipgloss.Color(p.TextMuted)
	ColorBorder = lipgloss.Color(p.Border)
	ColorBorderFocus = lipgloss.Color(p.BorderFocus)
	ColorBg = lipgloss.Color(p.Bg)
	ColorText = lipgloss.Color(p.Text)
	ColorTextMuted = lipgloss.Color(p.TextMuted)
	ColorTextInverse = lipgloss.Color(p.TextInverse)
	ColorUser = lipgloss.Color(p.User)
	ColorAssistant = lipgloss.Color(p.Assistant)
	ColorWarning = lipgloss.Color(p.Warning)
	ColorInfo = lipgloss.Color(p.Info)
	ColorError = lipgloss.Color(p.Error)
	ColorSuccess = lipgloss.Color(p.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatErrorBubbleStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Foreground(ColorError).
		Padding(0, 1)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	SuggestionKeyStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.MarkdownH1)).
		MarginTop(1)

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.MarkdownH2)).
		MarginTop(1)

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.MarkdownH3))

	MarkdownH4Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.MarkdownCode)).
		Background(lipgloss.Color(p.MarkdownCodeBg))

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.MarkdownListItem))

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorMuted).
		PaddingLeft(1)

	MarkdownHRStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.MarkdownLink)).
		Underline(true)
}

func init() {
	regenerateStyles()
	RefreshModalStyles()
}
