// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/switchboard/internal/logger"
)

// AppName is the title used for every switchboard notification.
const AppName = "Switchboard"

// previewLimit caps how much of a reply is shown in the notification body.
const previewLimit = 80

var (
	notifyMu sync.Mutex
	notifier = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications. Tests use
// it to avoid popping real desktop notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifyMu.Lock()
	defer notifyMu.Unlock()
	notifier = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)

	notifyMu.Lock()
	fn := notifier
	notifyMu.Unlock()

	// Empty icon lets beeep pick the platform default
	err := fn(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ResponseReady notifies that a backend reply landed while the terminal was
// not focused. The body is a one-line preview of the reply.
func ResponseReady(reply string) error {
	return Send(AppName, Preview(reply))
}

// Preview flattens a reply to a single line no longer than previewLimit runes.
func Preview(reply string) string {
	runes := []rune(reply)
	out := make([]rune, 0, previewLimit)
	lastSpace := false
	for _, r := range runes {
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		if r == ' ' {
			if lastSpace || len(out) == 0 {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		if len(out) == previewLimit {
			out[previewLimit-1] = '…'
			break
		}
		out = append(out, r)
	}
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "New reply"
	}
	return string(out)
}
