package ui

import (
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// TypingTickMsg reveals the next word of every reply still being typed
type TypingTickMsg time.Time

// SpinnerTickMsg advances the loading placeholder animation
type SpinnerTickMsg time.Time

// thinkingVerbs are shown next to the spinner while a reply is pending
var thinkingVerbs = []string{
	"Thinking",
	"Searching",
	"Routing",
	"Querying",
	"Pondering",
	"Consulting",
	"Digging",
	"Looking it up",
	"Fetching",
	"Gathering",
	"Sifting",
	"Percolating",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the characters cycled by the loading placeholder
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// TypingTick returns a command that sends a TypingTickMsg after interval
func TypingTick(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = DefaultTypingInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TypingTickMsg(t)
	})
}

// SpinnerTick returns a command that sends a SpinnerTickMsg
func SpinnerTick() tea.Cmd {
	return tea.Tick(SpinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// renderSpinner renders the spinner character followed by the verb
func renderSpinner(verb string, frameIdx int) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	return spinnerStyle.Render(frame) + " " + StatusLoadingStyle.Render(verb+"...")
}

// nextWordEnd returns the byte offset just past the next word of text that
// starts at or after from. Leading whitespace is swallowed along with the
// word, so every call makes visible progress until the end is reached.
func nextWordEnd(text string, from int) int {
	if from >= len(text) {
		return len(text)
	}

	rest := text[from:]
	pos := from
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		pos += len(word)
		if strings.TrimSpace(word) != "" {
			break
		}
	}
	return pos
}

// countWords returns how many ticks nextWordEnd needs to reach the end of text
func countWords(text string) int {
	n := 0
	for pos := 0; pos < len(text); n++ {
		pos = nextWordEnd(text, pos)
	}
	return n
}
