package ui

import (
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/switchboard/internal/conversation"
	"github.com/zhubert/switchboard/internal/keys"
	"github.com/zhubert/switchboard/internal/logger"
	"github.com/zhubert/switchboard/internal/store"
)

// Labels shown above each side of an exchange
const (
	OutgoingLabel = "You"
	IncomingLabel = "Switchboard"
)

// entry is one transcript bubble
type entry struct {
	role    conversation.Role
	content string
	loading bool
	failed  bool
	verb    string
	shown   int // bytes of content revealed so far

	cached    string
	cachedKey renderKey
}

type renderKey struct {
	width      int
	generation int
	shown      int
}

func (e *entry) revealing() bool {
	return !e.loading && !e.failed && e.shown < len(e.content)
}

// Chat is the transcript panel plus the input box. It implements
// conversation.Renderer.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	entries  []*entry
	rendered string // last content handed to the viewport

	typingEnabled    bool
	typingInterval   time.Duration
	typingScheduled  bool
	spinnerScheduled bool
	spinnerFrame     int

	nextSuggestion int

	log *slog.Logger
}

var _ conversation.Renderer = (*Chat)(nil)

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message... (web:, db:, file: pick a backend)"
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:       vp,
		input:          ti,
		typingEnabled:  true,
		typingInterval: DefaultTypingInterval,
		log:            logger.WithComponent("ui"),
	}
	c.updateContent(true)
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	// The input area sits below the transcript panel
	chatPanelHeight := height - InputTotalHeight
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := ctx.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(innerWidth - InputPaddingWidth)

	c.updateContent(c.viewport.AtBottom())
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetTypingEffect turns the word-by-word reveal on or off. A non-positive
// interval keeps the default.
func (c *Chat) SetTypingEffect(enabled bool, interval time.Duration) {
	c.typingEnabled = enabled
	if interval > 0 {
		c.typingInterval = interval
	}
}

// GetInput returns the current input text
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// ClearInput clears the input
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput replaces the input text
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// InsertNewline adds a line break at the cursor
func (c *Chat) InsertNewline() {
	c.input.InsertString("\n")
}

// CycleSuggestion puts the next starter prompt in the input box and returns it
func (c *Chat) CycleSuggestion() string {
	s := Suggestions[c.nextSuggestion%len(Suggestions)]
	c.nextSuggestion = (c.nextSuggestion + 1) % len(Suggestions)
	c.SetInput(s)
	if len(c.entries) == 0 {
		c.updateContent(true)
	}
	return s
}

// Len returns the number of transcript entries
func (c *Chat) Len() int {
	return len(c.entries)
}

// IsLoading reports whether any entry still shows the loading placeholder
func (c *Chat) IsLoading() bool {
	for _, e := range c.entries {
		if e.loading {
			return true
		}
	}
	return false
}

// IsTyping reports whether any reply is still being revealed
func (c *Chat) IsTyping() bool {
	for _, e := range c.entries {
		if e.revealing() {
			return true
		}
	}
	return false
}

// AppendMessage adds an entry at the bottom and scrolls to it
func (c *Chat) AppendMessage(content string, role conversation.Role, flags conversation.Flags) conversation.Handle {
	e := &entry{
		role:    role,
		content: content,
		loading: flags.Loading,
		failed:  flags.Error,
		shown:   len(content),
	}
	if e.loading {
		e.verb = randomThinkingVerb()
	}
	c.entries = append(c.entries, e)
	c.updateContent(true)
	return conversation.Handle(len(c.entries) - 1)
}

// ReplaceContent sets the final text of an entry and starts its reveal
func (c *Chat) ReplaceContent(h conversation.Handle, text string) {
	e := c.entry(h)
	if e == nil {
		return
	}
	e.loading = false
	e.failed = false
	e.content = text
	e.shown = len(text)
	if c.typingEnabled {
		e.shown = 0
	}
	c.updateContent(c.viewport.AtBottom() || h == conversation.Handle(len(c.entries)-1))
}

// MarkError turns an entry into an error bubble showing msg
func (c *Chat) MarkError(h conversation.Handle, msg string) {
	e := c.entry(h)
	if e == nil {
		return
	}
	e.loading = false
	e.failed = true
	e.content = msg
	e.shown = len(msg)
	c.updateContent(true)
}

// RenderHistory replaces the transcript with the given exchanges
func (c *Chat) RenderHistory(records []store.MessageRecord) {
	c.entries = c.entries[:0]
	for _, r := range records {
		c.entries = append(c.entries,
			&entry{role: conversation.RoleOutgoing, content: r.UserMessage, shown: len(r.UserMessage)},
			&entry{role: conversation.RoleIncoming, content: r.APIResponse, shown: len(r.APIResponse)},
		)
	}
	c.updateContent(true)
}

func (c *Chat) entry(h conversation.Handle) *entry {
	if h < 0 || int(h) >= len(c.entries) {
		c.log.Warn("ignoring update for unknown transcript entry", "handle", int(h), "entries", len(c.entries))
		return nil
	}
	return c.entries[h]
}

// Ticks returns the animation commands the transcript needs and is not
// already waiting on. Call it after anything that may start a reveal or a
// loading placeholder.
func (c *Chat) Ticks() tea.Cmd {
	var cmds []tea.Cmd
	if !c.spinnerScheduled && c.IsLoading() {
		c.spinnerScheduled = true
		cmds = append(cmds, SpinnerTick())
	}
	if !c.typingScheduled && c.IsTyping() {
		c.typingScheduled = true
		cmds = append(cmds, TypingTick(c.typingInterval))
	}
	return tea.Batch(cmds...)
}

// advanceTyping reveals one more word of every reply being typed
func (c *Chat) advanceTyping() {
	for _, e := range c.entries {
		if e.revealing() {
			e.shown = nextWordEnd(e.content, e.shown)
		}
	}
}

// Refresh re-renders the transcript, e.g. after a theme change
func (c *Chat) Refresh() {
	c.updateContent(c.viewport.AtBottom())
}

func (c *Chat) wrapWidth() int {
	if w := c.viewport.Width(); w > 0 {
		return w
	}
	return DefaultWrapWidth
}

func (c *Chat) renderEntry(e *entry, width int) string {
	if e.loading {
		return ChatAssistantStyle.Render(IncomingLabel+":") + "\n" + renderSpinner(e.verb, c.spinnerFrame)
	}

	key := renderKey{width: width, generation: themeGeneration, shown: e.shown}
	if e.cached != "" && e.cachedKey == key {
		return e.cached
	}

	var sb strings.Builder
	switch {
	case e.role == conversation.RoleOutgoing:
		sb.WriteString(ChatUserStyle.Render(OutgoingLabel + ":"))
		sb.WriteString("\n")
		sb.WriteString(ChatMessageStyle.Render(wrapText(e.content, width)))
	case e.failed:
		sb.WriteString(ChatAssistantStyle.Render(IncomingLabel + ":"))
		sb.WriteString("\n")
		sb.WriteString(ChatErrorBubbleStyle.Render("✕ " + wrapText(e.content, width-6)))
	default:
		sb.WriteString(ChatAssistantStyle.Render(IncomingLabel + ":"))
		sb.WriteString("\n")
		sb.WriteString(renderMarkdown(strings.TrimSpace(e.content[:e.shown]), width))
	}

	e.cached = sb.String()
	e.cachedKey = key
	return e.cached
}

func (c *Chat) updateContent(scrollToBottom bool) {
	width := c.wrapWidth()

	var content string
	if len(c.entries) == 0 {
		content = renderWelcome(c.nextSuggestion, width)
	} else {
		parts := make([]string, len(c.entries))
		for i, e := range c.entries {
			parts[i] = c.renderEntry(e, width)
		}
		content = strings.Join(parts, "\n\n")
	}

	c.rendered = content
	c.viewport.SetContent(content)
	if scrollToBottom {
		c.viewport.GotoBottom()
	}
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case TypingTickMsg:
		c.typingScheduled = false
		atBottom := c.viewport.AtBottom()
		c.advanceTyping()
		c.updateContent(atBottom)
		return c, c.Ticks()

	case SpinnerTickMsg:
		c.spinnerScheduled = false
		if c.IsLoading() {
			c.spinnerFrame++
			c.updateContent(c.viewport.AtBottom())
		}
		return c, c.Ticks()
	}

	if c.focused {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case keys.PgUp, keys.PgDown, keys.CtrlUp, keys.CtrlDn, "ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Keys typed into the input must not scroll the transcript
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
