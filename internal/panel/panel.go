// Package panel implements the view-state machine every dashboard panel
// runs on: Idle → Loading → {Success | Empty | Error}, and back to Loading
// on the next trigger. Per-panel behavior (identifier requirement, demo
// fallback, empty classification) is configuration, not separate code paths.
//
// A Controller is confined to a single goroutine — the UI update loop.
// Fetches run elsewhere; their results come back through Resolve with the
// Ticket handed out by Trigger, and results from superseded tickets are
// dropped so the last trigger always wins.
package panel

import "pcp360/internal/validate"

// Phase enumerates the view-states a renderer can observe.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Empty
	Error
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Empty:
		return "empty"
	case Error:
		return "error"
	}
	return "unknown"
}

// State is the single value a renderer consumes. Payload is meaningful only
// for Success and Empty; Message only for Error. Demo marks a Success whose
// payload came from the fallback provider rather than the backend.
type State[T any] struct {
	Phase   Phase
	Payload T
	Message string
	Demo    bool
}

// Options configures one panel's controller.
type Options[T any] struct {
	// RequiresCode runs the material validator before any fetch; a failed
	// validation transitions straight to Error without issuing a request.
	RequiresCode bool

	// Fallback, when set, is consulted after a fetch failure. A non-nil
	// second return substitutes the payload and the panel lands in Success
	// with the error cleared. Only the pegging panel sets this.
	Fallback func(code string) (T, bool)

	// Empty classifies a successful payload as the Empty variant. Nil means
	// the panel never reports Empty.
	Empty func(T) bool
}

// Ticket identifies one issued request. The zero Ticket never resolves.
type Ticket struct {
	Seq  uint64
	Code string
}

// Controller owns one panel's view-state. Each panel instance has exactly
// one; nothing is shared across panels.
type Controller[T any] struct {
	opts  Options[T]
	seq   uint64
	state State[T]
}

// New builds a controller in the Idle phase.
func New[T any](opts Options[T]) *Controller[T] {
	return &Controller[T]{opts: opts}
}

// State returns the current view-state.
func (c *Controller[T]) State() State[T] { return c.state }

// Trigger starts a new request cycle for code (ignored unless RequiresCode).
// It synchronously moves the panel to Loading and returns the Ticket the
// caller must pass to Resolve — or moves it to Error and returns ok=false
// when local validation fails, in which case no fetch may be issued.
// Triggering supersedes any request still in flight.
func (c *Controller[T]) Trigger(code string) (Ticket, bool) {
	var cleaned string
	if c.opts.RequiresCode {
		var valid bool
		cleaned, valid = validate.CleanMaterialCode(code)
		if !valid {
			c.seq++ // invalidate any in-flight request as well
			c.state = State[T]{Phase: Error, Message: "invalid material code"}
			return Ticket{}, false
		}
	}
	c.seq++
	c.state = State[T]{Phase: Loading}
	return Ticket{Seq: c.seq, Code: cleaned}, true
}

// Resolve applies the outcome of the request identified by t. A stale or
// zero ticket is a no-op: the state already belongs to a newer trigger.
// Returns the (possibly unchanged) current state.
func (c *Controller[T]) Resolve(t Ticket, payload T, err error) State[T] {
	if t.Seq == 0 || t.Seq != c.seq {
		return c.state
	}
	if err != nil {
		if c.opts.Fallback != nil {
			if demo, ok := c.opts.Fallback(t.Code); ok {
				c.state = State[T]{Phase: Success, Payload: demo, Demo: true}
				return c.state
			}
		}
		c.state = State[T]{Phase: Error, Message: err.Error()}
		return c.state
	}
	if c.opts.Empty != nil && c.opts.Empty(payload) {
		c.state = State[T]{Phase: Empty, Payload: payload}
		return c.state
	}
	c.state = State[T]{Phase: Success, Payload: payload}
	return c.state
}
