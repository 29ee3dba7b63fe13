package prompt

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
)

// DefaultCancelLabel is used when neither the request nor WithDefaultCancelLabel sets one.
const DefaultCancelLabel = "Cancel"

const (
	defaultWidth    = 50
	minWidth        = 20
	maxSuggestions  = 3
	fieldFocusIndex = 0
)

type button struct {
	action Action
	label  string
}

// Modal is a single-line text prompt with up to three buttons.
//
// A Modal handles exactly one interaction. The first trigger that closes
// it (button press, click, enter on the field, esc, Activate) wins; the
// modal is marked closed before any callback runs, so later triggers,
// including ones raised from inside a callback, are ignored.
type Modal struct {
	id      string
	req     Request
	state   State
	outcome Outcome

	input   textinput.Model
	keys    KeyMap
	help    help.Model
	buttons []button
	focus   int // 0 = text field, i = buttons[i-1]

	width       int
	charLimit   int
	placeholder string
	cancelLabel string

	candidates []string
	matches    []string

	hits []hitRegion // screen coordinates from the last render
}

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the content width in cells.
func WithWidth(width int) Option {
	return func(m *Modal) {
		if width >= minWidth {
			m.width = width
		}
	}
}

// WithCharLimit limits the number of runes the field accepts. 0 means no limit.
func WithCharLimit(limit int) Option {
	return func(m *Modal) {
		if limit >= 0 {
			m.charLimit = limit
		}
	}
}

// WithPlaceholder sets the text shown while the field is empty.
func WithPlaceholder(placeholder string) Option {
	return func(m *Modal) {
		m.placeholder = placeholder
	}
}

// WithDefaultCancelLabel sets the cancel label used when a request has none.
func WithDefaultCancelLabel(label string) Option {
	return func(m *Modal) {
		if label != "" {
			m.cancelLabel = label
		}
	}
}

// WithSuggestions sets candidate values offered under the field.
func WithSuggestions(values []string) Option {
	return func(m *Modal) {
		m.candidates = append([]string(nil), values...)
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Modal) {
		m.keys = keys
	}
}

// WithID sets the modal's ID instead of a random one.
func WithID(id string) Option {
	return func(m *Modal) {
		if id != "" {
			m.id = id
		}
	}
}

// New creates a modal for req in the Created state. Nothing is shown
// until Show is called.
func New(req Request, opts ...Option) *Modal {
	m := &Modal{
		id:          uuid.NewString(),
		req:         req,
		state:       StateCreated,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		width:       defaultWidth,
		cancelLabel: DefaultCancelLabel,
	}
	for _, opt := range opts {
		opt(m)
	}

	ti := textinput.New()
	ti.Placeholder = m.placeholder
	ti.CharLimit = m.charLimit
	ti.SetWidth(m.width - len(ti.Prompt) - 1)
	if req.InitialValue != "" {
		ti.SetValue(req.InitialValue)
		ti.CursorEnd()
	}
	m.input = ti

	m.buttons = m.buildButtons()
	m.refreshMatches()
	return m
}

func (m *Modal) buildButtons() []button {
	buttons := []button{{action: ActionPrimary, label: m.req.PrimaryLabel}}
	if m.req.OnAlternate != nil {
		buttons = append(buttons, button{action: ActionAlternate, label: m.req.AlternateLabel})
	}
	cancel := m.req.CancelLabel
	if cancel == "" {
		cancel = m.cancelLabel
	}
	return append(buttons, button{action: ActionCancel, label: cancel})
}

// ID returns the modal's identifier, used to route ActionMsg and ClosedMsg.
func (m *Modal) ID() string { return m.id }

// State returns the lifecycle state.
func (m *Modal) State() State { return m.state }

// Outcome returns how the modal closed. It is the zero Outcome until then.
func (m *Modal) Outcome() Outcome { return m.outcome }

// Value returns the field's current text.
func (m *Modal) Value() string { return m.input.Value() }

// Position returns the caret position in the field.
func (m *Modal) Position() int { return m.input.Position() }

// Show moves the modal from Created to Shown and focuses the field.
// It is a no-op in any other state.
func (m *Modal) Show() tea.Cmd {
	if m.state != StateCreated {
		return nil
	}
	m.state = StateShown
	m.focus = fieldFocusIndex
	m.input.Focus()
	return textinput.Blink
}

// Activate closes the modal with action as if the user had chosen it.
// It returns false if the modal is not shown, or if action is
// ActionAlternate and the request has no alternate handler.
func (m *Modal) Activate(action Action) bool {
	_, ok := m.close(action, TriggerProgram)
	return ok
}

// Close dismisses the modal: no handler runs, OnClosed still fires.
// Repeated calls are no-ops.
func (m *Modal) Close() bool {
	return m.Activate(ActionDismiss)
}

// Trigger returns a command that delivers an ActionMsg for this modal.
func (m *Modal) Trigger(action Action) tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return ActionMsg{ID: id, Action: action}
	}
}

// Update routes input to the field or the buttons. Once the modal is
// closed every message is ignored.
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.state != StateShown {
		return m, nil
	}

	switch msg := msg.(type) {
	case ActionMsg:
		if msg.ID != m.id {
			return m, nil
		}
		cmd, _ := m.close(msg.Action, TriggerProgram)
		return m, cmd

	case tea.MouseClickMsg:
		return m, m.handleClick(msg)

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Modal) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		cmd, _ := m.close(ActionDismiss, TriggerEscape)
		return cmd
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % (len(m.buttons) + 1))
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + len(m.buttons)) % (len(m.buttons) + 1))
		return nil
	}

	if m.focus == fieldFocusIndex {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			cmd, _ := m.close(ActionPrimary, TriggerKeyboard)
			return cmd
		case key.Matches(msg, m.keys.Complete):
			m.acceptSuggestion()
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refreshMatches()
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Press):
		cmd, _ := m.close(m.buttons[m.focus-1].action, TriggerButton)
		return cmd
	case key.Matches(msg, m.keys.Left):
		if m.focus > 1 {
			m.setFocus(m.focus - 1)
		}
	case key.Matches(msg, m.keys.Right):
		if m.focus < len(m.buttons) {
			m.setFocus(m.focus + 1)
		}
	}
	return nil
}

// handleClick presses the button under the cursor. Clicks outside the
// modal never close it.
func (m *Modal) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	for _, h := range m.hits {
		if !h.contains(mouse.X, mouse.Y) {
			continue
		}
		if h.action == ActionNone {
			m.setFocus(fieldFocusIndex)
			return nil
		}
		cmd, _ := m.close(h.action, TriggerClick)
		return cmd
	}
	return nil
}

func (m *Modal) setFocus(i int) {
	m.focus = i
	if i == fieldFocusIndex {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

// close is the single exit path. The state flips to Closed before any
// callback runs.
func (m *Modal) close(action Action, via Trigger) (tea.Cmd, bool) {
	if m.state != StateShown {
		return nil, false
	}
	switch action {
	case ActionPrimary, ActionCancel, ActionDismiss:
	case ActionAlternate:
		if m.req.OnAlternate == nil {
			return nil, false
		}
	default:
		return nil, false
	}

	m.state = StateClosed
	m.input.Blur()
	text := m.input.Value()
	m.outcome = Outcome{Action: action, Trigger: via, Text: text}

	switch action {
	case ActionPrimary:
		invoke(m.req.OnPrimary, text)
	case ActionAlternate:
		invoke(m.req.OnAlternate, text)
	case ActionCancel:
		invoke(m.req.OnCancel, text)
	}
	if m.req.OnClosed != nil {
		m.req.OnClosed()
	}

	id, outcome := m.id, m.outcome
	return func() tea.Msg {
		return ClosedMsg{ID: id, Outcome: outcome}
	}, true
}

func invoke(fn TextSetFunc, text string) {
	if fn != nil {
		fn(text)
	}
}
