package tui

import "github.com/charmbracelet/bubbles/key"

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	More     key.Binding
	Close    key.Binding
	Escape   key.Binding
	Projects key.Binding
	Archive  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.More, k.Escape, k.Archive, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate, k.More},
		{k.Escape, k.Close},
		{k.Projects, k.Archive, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " ", "space"),
		key.WithHelp("enter/space", "details"),
	),
	More: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "show more/less"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close details"),
	),
	Projects: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "projects"),
	),
	Archive: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "archive"),
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
