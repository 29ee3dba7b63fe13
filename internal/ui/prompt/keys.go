package prompt

import "charm.land/bubbles/v2/key"

// KeyMap defines the modal's key bindings.
type KeyMap struct {
	Confirm  key.Binding // field focused: same as pressing the primary button
	Press    key.Binding // button focused: press it
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Complete key.Binding // fill the field with the best suggestion
	Dismiss  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("enter", "press"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Complete: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "complete"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}

// fieldHelp is shown while the text field has focus.
func (k KeyMap) fieldHelp(hasSuggestions bool) []key.Binding {
	if hasSuggestions {
		return []key.Binding{k.Confirm, k.Next, k.Complete, k.Dismiss}
	}
	return []key.Binding{k.Confirm, k.Next, k.Dismiss}
}

// buttonHelp is shown while a button has focus.
func (k KeyMap) buttonHelp() []key.Binding {
	return []key.Binding{k.Press, k.Left, k.Next, k.Dismiss}
}
