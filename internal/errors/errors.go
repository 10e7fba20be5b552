// Package errors provides structured error types for switchboard.
// These errors carry the operation that failed and a coarse category so the
// UI can decide how to surface them.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindNetwork
	KindConfig
	KindDecode
	KindBusy
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindDecode:
		return "decode error"
	case KindBusy:
		return "busy"
	case KindStorage:
		return "storage error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for switchboard.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Backend errors
func RequestFailed(path string, err error) error {
	return E(Op("backend.Send"), KindNetwork, fmt.Sprintf("request to %s failed", path), err)
}

func ResponseDecodeFailed(path string, err error) error {
	return E(Op("backend.Send"), KindDecode, fmt.Sprintf("malformed response from %s", path), err)
}

// Store errors
func StoreOpenFailed(path string, err error) error {
	return E(Op("store.Open"), KindStorage, fmt.Sprintf("failed to open store at %s", path), err)
}

func StoreWriteFailed(key string, err error) error {
	return E(Op("store.Set"), KindStorage, fmt.Sprintf("failed to write key %s", key), err)
}

// Conversation errors
func RequestInFlight() error {
	return E(Op("conversation.ClearHistory"), KindBusy, "a request is still in flight")
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
