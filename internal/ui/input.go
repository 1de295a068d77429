package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.ToggleDark):
		m.toggleDarkMode()
		return nil
	case key.Matches(keyMsg, m.keys.OpenDrawer):
		if m.openDrawer() {
			return m.resizeContent()
		}
		return nil
	}
	if m.drawerOpen {
		return m.handleDrawerKey(keyMsg)
	}
	if idx, ok := bottomShortcut(keyMsg); ok && m.BottomBarVisible() {
		if idx < len(m.bottomItems) {
			return m.navigateTo(m.bottomItems[idx])
		}
		return nil
	}
	return m.forward(keyMsg)
}

func (m *Model) toggleDarkMode() {
	enabled := m.store.ToggleDarkMode()
	events.Layout.DarkMode(enabled)
}

// bottomShortcut maps alt+1..alt+9 to a zero-based bottom bar index.
func bottomShortcut(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
