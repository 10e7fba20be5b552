package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// AppTitle is rendered bold at the left of the header
const AppTitle = " switchboard"

// Header represents the top header bar
type Header struct {
	width       int
	routingMode string
	busy        bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetRoutingMode sets the routing mode shown on the right
func (h *Header) SetRoutingMode(mode string) {
	h.routingMode = mode
}

// SetBusy marks whether a request is in flight
func (h *Header) SetBusy(busy bool) {
	h.busy = busy
}

// rightText is the muted status block shown after the title
func (h *Header) rightText() string {
	var parts []string
	if h.busy {
		parts = append(parts, "sending")
	}
	if h.routingMode != "" {
		parts = append(parts, h.routingMode+" routing")
	}
	parts = append(parts, strings.ToLower(CurrentPalette().Name))
	return strings.Join(parts, " · ") + " "
}

// View renders the header
func (h *Header) View() string {
	right := h.rightText()

	paddingLen := h.width - runewidth.StringWidth(AppTitle) - runewidth.StringWidth(right)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := AppTitle + strings.Repeat(" ", paddingLen) + right
	if h.width > 0 {
		fullContent = runewidth.Truncate(fullContent, h.width, "")
	}

	return h.renderGradient(fullContent, len([]rune(AppTitle)), len([]rune(fullContent))-len([]rune(right)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content on a background fading from the primary
// color to the palette background. Runes before titleEnd are bold; runes from
// mutedStart on use the muted text color.
func (h *Header) renderGradient(content string, titleEnd, mutedStart int) string {
	if len(content) == 0 {
		return ""
	}

	p := CurrentPalette()
	startR, startG, startB := parseHexColor(p.Primary)
	endR, endG, endB := parseHexColor(p.Bg)

	textColor := lipgloss.Color(p.Text)
	mutedColor := lipgloss.Color(p.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleEnd)

		if i >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
