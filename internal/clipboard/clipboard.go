// Package clipboard copies reply text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/switchboard/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	// writeFn is swapped out in tests so they never touch the real clipboard.
	writeFn func(text string) error
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	logger.Debug("Clipboard: Initialized successfully")
	return nil
}

// SetWriter replaces the clipboard writer.
func SetWriter(fn func(text string) error) {
	mu.Lock()
	defer mu.Unlock()
	writeFn = fn
}

// ResetWriter restores the system clipboard writer.
func ResetWriter() {
	SetWriter(nil)
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if text == "" {
		return fmt.Errorf("nothing to copy")
	}

	if writeFn != nil {
		return writeFn(text)
	}

	if err := initLocked(); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}

	textBytes := clipboard.Read(clipboard.FmtText)
	if textBytes == nil {
		return "", nil
	}
	return string(textBytes), nil
}
