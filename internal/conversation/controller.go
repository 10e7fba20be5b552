// Package conversation runs the request/response cycle: it validates input,
// allows one request in flight at a time, routes it, calls the backend and
// records the result in the store and the transcript.
package conversation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/zhubert/switchboard/internal/backend"
	pserrors "github.com/zhubert/switchboard/internal/errors"
	"github.com/zhubert/switchboard/internal/logger"
	"github.com/zhubert/switchboard/internal/router"
	"github.com/zhubert/switchboard/internal/store"
)

// Sender performs one backend call.
type Sender interface {
	Send(ctx context.Context, d router.Decision) (string, error)
}

// State is the controller's observable state.
type State struct {
	CurrentUserMessage   string
	IsGeneratingResponse bool
}

// Pending is an accepted submission that has not completed yet.
type Pending struct {
	ID       uint64
	Input    string
	Decision router.Decision

	outgoing Handle
	incoming Handle
	shown    bool
	done     bool
}

// Result is the outcome of a backend call.
type Result struct {
	Reply string
	Err   error
}

// Failed reports whether the call failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Controller owns the conversation state. Its methods other than Send must be
// called from a single goroutine.
type Controller struct {
	policy   router.Policy
	sender   Sender
	store    *store.Store
	renderer Renderer
	log      *slog.Logger

	state     State
	pending   *Pending
	nextID    uint64
	lastReply string
}

// New creates a controller. A nil policy selects prefix routing.
func New(policy router.Policy, sender Sender, st *store.Store, renderer Renderer) *Controller {
	if policy == nil {
		policy = router.PrefixPolicy{}
	}
	return &Controller{
		policy:   policy,
		sender:   sender,
		store:    st,
		renderer: renderer,
		log:      logger.WithComponent("conversation"),
	}
}

// SetPolicy swaps the routing policy. A submission already accepted keeps the
// decision it was routed with. A nil policy selects prefix routing.
func (c *Controller) SetPolicy(p router.Policy) {
	if p == nil {
		p = router.PrefixPolicy{}
	}
	c.policy = p
}

// Policy returns the routing policy in use.
func (c *Controller) Policy() router.Policy {
	return c.policy
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Submit accepts input for sending. It returns false without side effects when
// the trimmed input is empty or a request is already in flight.
func (c *Controller) Submit(input string) (*Pending, bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		c.log.Debug("ignoring empty submission")
		return nil, false
	}
	if c.state.IsGeneratingResponse {
		c.log.Debug("ignoring submission while a request is in flight")
		return nil, false
	}

	c.nextID++
	c.state = State{CurrentUserMessage: text, IsGeneratingResponse: true}

	p := &Pending{
		ID:       c.nextID,
		Input:    text,
		Decision: c.policy.Route(text),
		incoming: NoHandle,
	}
	p.outgoing = c.renderer.AppendMessage(text, RoleOutgoing, Flags{})
	c.pending = p

	c.log.Debug("submission accepted", "id", p.ID, "endpoint", p.Decision.Endpoint.String())
	return p, true
}

// ShowLoading adds the loading placeholder for p. It does nothing once p has
// completed or if the placeholder is already shown.
func (c *Controller) ShowLoading(p *Pending) {
	if p == nil || p.done || p.shown {
		return
	}
	p.incoming = c.renderer.AppendMessage("", RoleIncoming, Flags{Loading: true})
	p.shown = true
}

// Send calls the backend for p. It reads only immutable fields of p and may
// run on any goroutine.
func (c *Controller) Send(ctx context.Context, p *Pending) Result {
	reply, err := c.sender.Send(ctx, p.Decision)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Reply: reply}
}

// Complete applies the result of p's backend call. On success the exchange is
// saved and shown; on failure the placeholder becomes an error bubble and
// nothing is saved. The in-flight guard is released either way. The returned
// error reports a failed store write only.
func (c *Controller) Complete(p *Pending, res Result) error {
	if p == nil || p.done {
		return nil
	}
	p.done = true
	if c.pending == p {
		c.pending = nil
		c.state = State{}
	}

	// The reply beat the render delay
	if !p.shown {
		p.incoming = c.renderer.AppendMessage("", RoleIncoming, Flags{Loading: true})
		p.shown = true
	}

	if res.Failed() {
		msg := UserMessage(res.Err)
		c.log.Warn("request failed", "id", p.ID, "error", res.Err)
		c.renderer.MarkError(p.incoming, msg)
		return nil
	}

	c.lastReply = res.Reply
	c.renderer.ReplaceContent(p.incoming, res.Reply)

	if err := c.store.AppendRecord(store.MessageRecord{UserMessage: p.Input, APIResponse: res.Reply}); err != nil {
		c.log.Error("failed to save exchange", "id", p.ID, "error", err)
		return err
	}
	return nil
}

// Replay renders the saved log. It returns the number of exchanges shown.
func (c *Controller) Replay() int {
	records := c.store.LoadLog()
	c.renderer.RenderHistory(records)
	if n := len(records); n > 0 {
		c.lastReply = records[n-1].APIResponse
	}
	return len(records)
}

// ClearHistory deletes the saved log and empties the transcript. It is
// refused while a request is in flight.
func (c *Controller) ClearHistory() error {
	if c.state.IsGeneratingResponse {
		return pserrors.RequestInFlight()
	}
	if err := c.store.ClearLog(); err != nil {
		return err
	}
	c.lastReply = ""
	c.renderer.RenderHistory(nil)
	return nil
}

// LastReply returns the most recent successful reply, if any.
func (c *Controller) LastReply() string {
	return c.lastReply
}

// Exchange runs a whole cycle synchronously. Used outside the TUI.
func (c *Controller) Exchange(ctx context.Context, input string) (Result, error) {
	if c.state.IsGeneratingResponse {
		return Result{}, pserrors.E(pserrors.Op("conversation.Exchange"), pserrors.KindBusy, "a request is still in flight")
	}
	p, ok := c.Submit(input)
	if !ok {
		return Result{}, pserrors.E(pserrors.Op("conversation.Exchange"), pserrors.KindInvalid, "input is empty")
	}
	c.ShowLoading(p)
	res := c.Send(ctx, p)
	return res, c.Complete(p, res)
}

// UserMessage returns the text shown in an error bubble for err.
func UserMessage(err error) string {
	var clientErr *backend.ClientError
	if errors.As(err, &clientErr) && clientErr.Message != "" {
		return clientErr.Message
	}
	return backend.GenericErrorMessage
}
