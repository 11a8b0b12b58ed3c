package tui

import "github.com/charmbracelet/bubbles/key"

type listKeys struct {
	Add    key.Binding
	Delete key.Binding
	Up     key.Binding
	Down   key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Up, k.Down, k.Theme, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type dialogKeys struct {
	Next    key.Binding
	Prev    key.Binding
	AgeDown key.Binding
	AgeUp   key.Binding
	Toggle  key.Binding
	Submit  key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func newDialogKeys() dialogKeys {
	return dialogKeys{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		AgeDown: key.NewBinding(key.WithKeys("left", "-", "h"), key.WithHelp("←/→", "age")),
		AgeUp:   key.NewBinding(key.WithKeys("right", "+", "=", "l")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k dialogKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.AgeDown, k.Toggle, k.Submit, k.Cancel}
}

func (k dialogKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
