package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the page.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Worker   key.Binding
	Main     key.Binding
	Click    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings. None of them is a digit or
// '-', so they never collide with typing in the number input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press"),
		),
		Worker: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "worker"),
		),
		Main: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main thread"),
		),
		Click: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "click me"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Worker, k.Main, k.Click, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Worker, k.Main, k.Click},
		{k.Next, k.Prev, k.Activate},
		{k.Help, k.Quit},
	}
}
