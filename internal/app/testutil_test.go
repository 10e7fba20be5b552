package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/switchboard/internal/clipboard"
	"github.com/zhubert/switchboard/internal/config"
	pserrors "github.com/zhubert/switchboard/internal/errors"
	"github.com/zhubert/switchboard/internal/keys"
	"github.com/zhubert/switchboard/internal/logger"
	"github.com/zhubert/switchboard/internal/notification"
	"github.com/zhubert/switchboard/internal/router"
	"github.com/zhubert/switchboard/internal/store"
	"github.com/zhubert/switchboard/internal/ui"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	// Never touch the real clipboard or pop real notifications
	clipboard.SetWriter(func(string) error { return nil })
	notification.SetNotifier(func(string, string, any) error { return nil })

	code := m.Run()

	clipboard.ResetWriter()
	notification.ResetNotifier()
	logger.Reset()
	os.Exit(code)
}

// fakeSender returns a canned reply and records the routed decisions.
type fakeSender struct {
	reply     string
	err       error
	decisions []router.Decision
}

func (s *fakeSender) Send(_ context.Context, d router.Decision) (string, error) {
	s.decisions = append(s.decisions, d)
	return s.reply, s.err
}

// failingKV rejects every write.
type failingKV struct{}

func (failingKV) Get(string) ([]byte, bool, error) { return nil, false, nil }
func (failingKV) Set(key string, _ []byte) error {
	return pserrors.StoreWriteFailed(key, errors.New("read-only"))
}
func (failingKV) Delete(key string) error {
	return pserrors.StoreWriteFailed(key, errors.New("read-only"))
}
func (failingKV) Close() error { return nil }

// failOnceKV rejects the first write and then behaves like a MemoryKV.
type failOnceKV struct {
	*store.MemoryKV
	failed bool
}

func (k *failOnceKV) Set(key string, value []byte) error {
	if !k.failed {
		k.failed = true
		return pserrors.StoreWriteFailed(key, errors.New("disk full"))
	}
	return k.MemoryKV.Set(key, value)
}

// testConfig creates a config that saves into a temp dir, shows the loading
// placeholder immediately and reveals replies in full.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SetFilePath(filepath.Join(t.TempDir(), "config.json"))
	cfg.RenderDelayMS = 0
	cfg.SetTypingEffect(false)
	return cfg
}

// testModel creates a test Model with an in-memory store.
func testModel(t *testing.T, sender *fakeSender) (*Model, *store.Store) {
	t.Helper()
	st := store.NewMemory()
	return testModelWithStore(t, sender, st), st
}

// testModelWithStore creates a sized, initialized test Model over st.
func testModelWithStore(t *testing.T, sender *fakeSender, st *store.Store) *Model {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme(store.DefaultTheme) })

	m := New(testConfig(t), st, sender, "0.0.0-test")
	m.Init()
	return setSize(m, 120, 40)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "esc", "ctrl+t", "down", "f1"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.F1:
		return tea.KeyPressMsg{Code: tea.KeyF1}
	case " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	if strings.HasPrefix(key, "ctrl+") && len(key) == len("ctrl+")+1 {
		return tea.KeyPressMsg{Code: rune(key[len(key)-1]), Mod: tea.ModCtrl}
	}
	// Regular character - for single characters, set both Code and Text
	return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
}

// sendKey sends a key press to the model and returns the updated model and command.
func sendKey(m *Model, key string) (*Model, tea.Cmd) {
	result, cmd := m.Update(keyPress(key))
	return result.(*Model), cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m, _ = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// runCmd executes cmd and any batched commands it produces, returning the
// messages they emit.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// submit types text, presses enter and returns the commands' messages split
// into the loading trigger and the backend result.
func submit(t *testing.T, m *Model, text string) (showLoadingMsg, responseMsg) {
	t.Helper()
	m = typeText(m, text)
	_, cmd := sendKey(m, keys.Enter)
	if cmd == nil {
		t.Fatal("expected commands after a valid submit")
	}

	var (
		loading    showLoadingMsg
		resp       responseMsg
		gotLoading bool
		gotResp    bool
	)
	for _, msg := range runCmd(cmd) {
		switch msg := msg.(type) {
		case showLoadingMsg:
			loading, gotLoading = msg, true
		case responseMsg:
			resp, gotResp = msg, true
		}
	}
	if !gotLoading || !gotResp {
		t.Fatalf("expected a loading and a response message, got loading=%v response=%v", gotLoading, gotResp)
	}
	return loading, resp
}

// exchange runs a full request/response cycle through Update.
func exchange(t *testing.T, m *Model, text string) tea.Cmd {
	t.Helper()
	loading, resp := submit(t, m, text)
	m.Update(loading)
	_, cmd := m.Update(resp)
	return cmd
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

// screen returns the rendered view without ANSI escape codes
func screen(m *Model) string {
	return ansiRegex.ReplaceAllString(m.RenderToString(), "")
}
