// Package logger writes switchboard's debug log.
//
// The TUI owns the terminal, so nothing may be printed to stdout/stderr while it
// runs. Everything goes to a slog text log under /tmp instead.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	slogLogger   *slog.Logger
	levelVar     = new(slog.LevelVar)
	logFile      *os.File
	mu           sync.Mutex
	initDone     bool
	currentLevel LogLevel = LevelInfo
)

// DefaultLogPath is the log file used when Init is never called
const DefaultLogPath = "/tmp/switchboard-debug.log"

// logGlob matches every log file ClearLogs is allowed to remove
const logGlob = "/tmp/switchboard-*.log"

// SetLevel sets the minimum log level to output
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	levelVar.Set(level.toSlogLevel())
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// Init opens the log file at path. Subsequent calls are no-ops until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return openLocked(path)
}

// openLocked must be called with mu held.
func openLocked(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	levelVar.Set(currentLevel.toSlogLevel())
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if initDone {
		return
	}
	if err := openLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Don't retry on every call
		initDone = true
	}
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil || !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message (only if level is LevelDebug)
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Info writes an info message
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warn writes a warning message
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Error writes an error message
func Error(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset resets the logger state, allowing reinitialization.
// This is primarily for testing purposes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	slogLogger = nil
	currentLevel = LevelInfo
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes all switchboard log files from /tmp and returns how many were removed.
func ClearLogs() (int, error) {
	paths, err := filepath.Glob(logGlob)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range paths {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}

// WithComponent returns a slog.Logger with the component attribute pre-attached.
//
//	log := logger.WithComponent("backend")
//	log.Info("request sent", "endpoint", "/rag/search")
func WithComponent(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithRequest returns a slog.Logger tagged with a backend request ID.
func WithRequest(requestID string) *slog.Logger {
	return with(slog.String("requestID", requestID))
}

func with(attr slog.Attr) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger.With(attr)
}
