package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	OpenDrawer  key.Binding
	CloseDrawer key.Binding
	ToggleDark  key.Binding
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	ClearFilter key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		OpenDrawer:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "menu")),
		CloseDrawer: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ToggleDark:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Up:          key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
		Down:        key.NewBinding(key.WithKeys("down", "ctrl+n")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		ClearFilter: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) shortHelp(drawerOpen bool) []key.Binding {
	if drawerOpen {
		return []key.Binding{k.Up, k.Select, k.CloseDrawer, k.Quit}
	}
	return []key.Binding{k.OpenDrawer, k.ToggleDark, k.Quit}
}
