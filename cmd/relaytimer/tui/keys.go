package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the relay timer TUI.
type KeyMap struct {
	Increment key.Binding
	Start     key.Binding
	Decrement key.Binding
	Stall     key.Binding
	Status    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(
			key.WithKeys("+", "i", "up"),
			key.WithHelp("+/i", "increment"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("space", "start/pause"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "d", "down"),
			key.WithHelp("-/d", "decrement"),
		),
		Stall: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "stall motor"),
		),
		Status: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "status"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Start, k.Decrement, k.Stall, k.Status, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
