package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding
	Theme key.Binding
	Copy  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark mode")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Reset: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.Theme, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Press},
		{k.Theme, k.Copy, k.Reset, k.Quit},
	}
}
