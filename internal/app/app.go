package app

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/switchboard/internal/config"
	"github.com/zhubert/switchboard/internal/conversation"
	"github.com/zhubert/switchboard/internal/logger"
	"github.com/zhubert/switchboard/internal/notification"
	"github.com/zhubert/switchboard/internal/router"
	"github.com/zhubert/switchboard/internal/store"
	"github.com/zhubert/switchboard/internal/ui"
)

// AppState represents the current state of the application.
type AppState int

const (
	StateIdle    AppState = iota // Ready for user input
	StateWaiting                 // A backend request is in flight
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWaiting:
		return "Waiting"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config     *config.Config
	store      *store.Store
	controller *conversation.Controller
	version    string

	header *ui.Header
	footer *ui.Footer
	chat   *ui.Chat
	modal  *ui.Modal

	width         int
	height        int
	windowFocused bool

	state AppState

	// ctx is cancelled on quit so an outstanding request does not outlive the UI
	ctx    context.Context
	cancel context.CancelFunc

	log *slog.Logger
}

// showLoadingMsg fires when the render delay for a submission has elapsed
type showLoadingMsg struct {
	pending *conversation.Pending
}

// responseMsg carries the result of a backend call back to the event loop
type responseMsg struct {
	pending *conversation.Pending
	result  conversation.Result
}

// New creates a new app model. sender performs the backend calls; the store
// holds the log and the theme.
func New(cfg *config.Config, st *store.Store, sender conversation.Sender, version string) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		config:        cfg,
		store:         st,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		chat:          ui.NewChat(),
		modal:         ui.NewModal(),
		windowFocused: true,
		state:         StateIdle,
		ctx:           ctx,
		cancel:        cancel,
		log:           logger.WithComponent("app"),
	}

	m.controller = conversation.New(router.New(cfg.GetRoutingMode()), sender, st, m.chat)
	m.chat.SetTypingEffect(cfg.GetTypingEffect(), cfg.GetTypingInterval())
	m.chat.SetFocused(true)
	m.header.SetRoutingMode(cfg.GetRoutingMode())

	ui.SetTheme(st.LoadTheme())

	return m
}

// Init replays the saved conversation
func (m *Model) Init() tea.Cmd {
	n := m.controller.Replay()
	m.log.Info("replayed conversation log", "exchanges", n, "theme", string(ui.CurrentTheme()))
	return m.chat.Ticks()
}

// Close releases the model's resources. The store is owned by the caller.
func (m *Model) Close() {
	m.cancel()
}

// IsIdle returns true if the app is ready for user input
func (m *Model) IsIdle() bool {
	return m.state == StateIdle
}

// setState transitions to a new state with logging
func (m *Model) setState(newState AppState) {
	if m.state != newState {
		m.log.Debug("state transition", "from", m.state.String(), "to", newState.String())
		m.state = newState
	}
	busy := newState == StateWaiting
	m.header.SetBusy(busy)
	m.footer.SetBusy(busy)
}

// syncState mirrors the controller's in-flight guard
func (m *Model) syncState() {
	if m.controller.State().IsGeneratingResponse {
		m.setState(StateWaiting)
	} else {
		m.setState(StateIdle)
	}
}

// sendMessage submits the input box. Empty input and input sent while a
// request is in flight are ignored; the text stays in the box in that case.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	p, ok := m.controller.Submit(m.chat.GetInput())
	if !ok {
		return m, nil
	}
	m.chat.ClearInput()
	m.syncState()

	m.log.Debug("request started", "id", p.ID, "endpoint", p.Decision.Endpoint.String())

	ctx := m.ctx
	controller := m.controller
	return m, tea.Batch(
		tea.Tick(m.config.GetRenderDelay(), func(time.Time) tea.Msg {
			return showLoadingMsg{pending: p}
		}),
		func() tea.Msg {
			return responseMsg{pending: p, result: controller.Send(ctx, p)}
		},
		m.chat.Ticks(),
	)
}

// handleResponse applies a finished backend call
func (m *Model) handleResponse(msg responseMsg) (tea.Model, tea.Cmd) {
	err := m.controller.Complete(msg.pending, msg.result)
	m.syncState()

	cmds := []tea.Cmd{m.chat.Ticks()}
	if err != nil {
		cmds = append(cmds, m.ShowFlashError("Could not save the conversation: "+err.Error()))
	}

	if !msg.result.Failed() && !m.windowFocused && m.config.GetNotificationsEnabled() {
		cmds = append(cmds, notifyCmd(msg.result.Reply))
	}

	return m, tea.Batch(cmds...)
}

// notifyCmd sends the desktop notification off the event loop
func notifyCmd(reply string) tea.Cmd {
	return func() tea.Msg {
		_ = notification.ResponseReady(reply)
		return nil
	}
}
