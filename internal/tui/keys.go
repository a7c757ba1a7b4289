package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the feed.
type keyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Activate key.Binding
	Help     key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous card"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next card"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next card"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous card"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "open alert"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "q: quit  ↑/↓ tab: move  enter/space: open  click: open  ?: toggle help"
