// Package ui provides the terminal components for switchboard.
//
// # Overview
//
// The ui package draws the chat client with Bubble Tea and Lipgloss. Each
// component follows the Model-Update-View pattern and is owned by the app
// model, which routes messages to it.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Transcript (viewport)                             │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│   Input (textarea, 3 lines)                         │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton holding the layout calculations.
//
// Header: Application title on a gradient, plus the active routing mode and theme.
//
// Footer: Key bindings, or a flash message while one is active.
//
// Chat: The transcript and the input box. Chat implements
// conversation.Renderer, so the conversation controller drives it through
// AppendMessage, ReplaceContent, MarkError and RenderHistory. Replies are
// revealed one word per TypingTickMsg when the typing effect is on.
//
// Modal: Popup container for the states in the modals package (confirm
// clear, settings, help).
//
// # Themes
//
// Two palettes exist, keyed by store.Theme: light_mode and dark_mode.
// SetTheme swaps the palette and regenerates every style variable.
package ui
