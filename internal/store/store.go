// Package store persists the conversation log and the theme preference in a
// key-value backend. The log is a JSON array under a single key and is
// rewritten in full on every append.
package store

import (
	"encoding/json"
	"log/slog"

	"github.com/zhubert/switchboard/internal/logger"
)

// Storage keys
const (
	LogKey   = "saved-api-chats"
	ThemeKey = "themeColor"
)

// MessageRecord is one completed exchange.
type MessageRecord struct {
	UserMessage string `json:"userMessage"`
	APIResponse string `json:"apiResponse"`
}

// Theme is the stored color scheme.
type Theme string

const (
	ThemeLight Theme = "light_mode"
	ThemeDark  Theme = "dark_mode"
)

// DefaultTheme is used when nothing valid is stored.
const DefaultTheme = ThemeDark

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme accepts the stored names as well as "light" and "dark".
func ParseTheme(s string) (Theme, bool) {
	switch s {
	case "light", string(ThemeLight):
		return ThemeLight, true
	case "dark", string(ThemeDark):
		return ThemeDark, true
	}
	return "", false
}

// Store reads and writes the log and theme through a KV.
type Store struct {
	kv  KV
	log *slog.Logger
}

// New wraps kv. The Store takes ownership and closes kv on Close.
func New(kv KV) *Store {
	return &Store{kv: kv, log: logger.WithComponent("store")}
}

// Open returns a Store backed by the bbolt file at path.
func Open(path string) (*Store, error) {
	kv, err := OpenBolt(path)
	if err != nil {
		return nil, err
	}
	return New(kv), nil
}

// NewMemory returns a Store that keeps everything in memory.
func NewMemory() *Store {
	return New(NewMemoryKV())
}

// LoadLog returns the saved exchanges in insertion order. A missing,
// unreadable or malformed log reads as empty.
func (s *Store) LoadLog() []MessageRecord {
	data, ok, err := s.kv.Get(LogKey)
	if err != nil {
		s.log.Warn("failed to read log", "error", err)
		return []MessageRecord{}
	}
	if !ok || len(data) == 0 {
		return []MessageRecord{}
	}

	var records []MessageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("discarding malformed log", "error", err, "bytes", len(data))
		return []MessageRecord{}
	}
	if records == nil {
		records = []MessageRecord{}
	}
	return records
}

// AppendRecord adds r to the end of the log. It reads, appends and writes the
// whole array, so concurrent writers overwrite each other.
func (s *Store) AppendRecord(r MessageRecord) error {
	records := append(s.LoadLog(), r)
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := s.kv.Set(LogKey, data); err != nil {
		return err
	}
	s.log.Debug("record appended", "count", len(records))
	return nil
}

// ClearLog removes every saved exchange.
func (s *Store) ClearLog() error {
	if err := s.kv.Delete(LogKey); err != nil {
		return err
	}
	s.log.Info("log cleared")
	return nil
}

// LoadTheme returns the stored theme, or DefaultTheme if none is stored or
// the stored value is unknown.
func (s *Store) LoadTheme() Theme {
	data, ok, err := s.kv.Get(ThemeKey)
	if err != nil {
		s.log.Warn("failed to read theme", "error", err)
		return DefaultTheme
	}
	if !ok {
		return DefaultTheme
	}
	t := Theme(data)
	if !t.Valid() {
		s.log.Warn("ignoring unknown theme", "value", string(data))
		return DefaultTheme
	}
	return t
}

// SaveTheme stores t.
func (s *Store) SaveTheme(t Theme) error {
	return s.kv.Set(ThemeKey, []byte(t))
}

// ToggleTheme flips the stored theme and returns the new value.
func (s *Store) ToggleTheme() (Theme, error) {
	next := s.LoadTheme().Toggle()
	if err := s.SaveTheme(next); err != nil {
		return s.LoadTheme(), err
	}
	return next, nil
}

// Close releases the underlying KV.
func (s *Store) Close() error {
	return s.kv.Close()
}
