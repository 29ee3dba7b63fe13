package prompt

import (
	"errors"
	"strings"
)

// TextSetFunc receives the field's text at the moment a button or the
// keyboard confirm closes the prompt.
type TextSetFunc func(text string)

// Request describes one prompt interaction. The modal never modifies it.
type Request struct {
	Title        string
	InitialValue string // pre-filled text; the caret starts at its end

	PrimaryLabel   string
	AlternateLabel string // ignored unless OnAlternate is set
	CancelLabel    string // empty falls back to the modal's default cancel label

	OnPrimary   TextSetFunc
	OnAlternate TextSetFunc // nil hides the alternate button
	OnCancel    TextSetFunc // nil makes cancel close without a callback

	// OnClosed runs once after the terminal handler, whichever path closed the prompt.
	OnClosed func()
}

// Sentinel errors returned by Request.Validate.
var (
	ErrNoTitle   = errors.New("prompt: title is required")
	ErrNoPrimary = errors.New("prompt: primary label and handler are required")
)

// Validate reports misconfiguration. The modal does not call it; a
// request that fails validation still renders.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrNoTitle
	}
	if strings.TrimSpace(r.PrimaryLabel) == "" || r.OnPrimary == nil {
		return ErrNoPrimary
	}
	return nil
}

// Action identifies how a prompt was closed.
type Action int

const (
	ActionNone Action = iota
	ActionPrimary
	ActionAlternate
	ActionCancel
	// ActionDismiss is a close forced from outside the three buttons
	// (esc, ctrl+c, context cancellation). It behaves like cancel
	// without a handler.
	ActionDismiss
)

func (a Action) String() string {
	switch a {
	case ActionPrimary:
		return "primary"
	case ActionAlternate:
		return "alternate"
	case ActionCancel:
		return "cancel"
	case ActionDismiss:
		return "dismiss"
	default:
		return "none"
	}
}

// State is the modal lifecycle: Created -> Shown -> Closed.
type State int

const (
	StateCreated State = iota
	StateShown
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateShown:
		return "shown"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Trigger is the input channel that closed the prompt.
type Trigger int

const (
	TriggerNone     Trigger = iota
	TriggerKeyboard         // enter on the text field
	TriggerButton           // enter/space on a focused button
	TriggerClick            // left click on a button
	TriggerEscape           // esc or ctrl+c
	TriggerProgram          // Activate, Close or an ActionMsg
)

func (t Trigger) String() string {
	switch t {
	case TriggerKeyboard:
		return "keyboard"
	case TriggerButton:
		return "button"
	case TriggerClick:
		return "click"
	case TriggerEscape:
		return "escape"
	case TriggerProgram:
		return "program"
	default:
		return "none"
	}
}

// Outcome records how a closed prompt ended.
type Outcome struct {
	Action  Action
	Trigger Trigger
	Text    string
}

// ClosedMsg is emitted once when a modal closes so the host can drop it.
type ClosedMsg struct {
	ID      string
	Outcome Outcome
}

// ActionMsg asks the modal with the given ID to close with Action.
// Messages for another modal, or arriving after close, are ignored.
type ActionMsg struct {
	ID     string
	Action Action
}
