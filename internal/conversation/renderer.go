package conversation

import "github.com/zhubert/switchboard/internal/store"

// Role says which side of the exchange an entry belongs to.
type Role string

const (
	RoleOutgoing Role = "outgoing"
	RoleIncoming Role = "incoming"
)

// Flags modify how an entry is drawn.
type Flags struct {
	Loading bool
	Error   bool
}

// Handle identifies a rendered entry so it can be updated later.
type Handle int

// NoHandle is never returned by a Renderer.
const NoHandle Handle = -1

// Renderer draws the transcript. The controller only talks to it through
// this interface, so it can be driven without a terminal.
type Renderer interface {
	// AppendMessage adds an entry at the bottom and scrolls to it.
	AppendMessage(content string, role Role, flags Flags) Handle
	// ReplaceContent sets the final text of a loading entry.
	ReplaceContent(h Handle, text string)
	// MarkError turns a loading entry into an error bubble showing msg.
	MarkError(h Handle, msg string)
	// RenderHistory replaces the transcript with the given exchanges.
	RenderHistory(records []store.MessageRecord)
}
