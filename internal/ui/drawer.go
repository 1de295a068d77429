package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/formshell/internal/logging/events"
	"github.com/atomicstack/formshell/internal/theme"
)

// openDrawer shows the drawer. It reports false when the drawer was already
// open.
func (m *Model) openDrawer() bool {
	if m.drawerOpen {
		return false
	}
	m.drawerOpen = true
	m.drawer.Select(m.path)
	events.Layout.DrawerOpen()
	return true
}

// closeDrawer hides the drawer and drops its filter. It reports false when the
// drawer was already closed.
func (m *Model) closeDrawer() bool {
	if !m.drawerOpen {
		return false
	}
	m.drawerOpen = false
	m.drawer.ClearFilter()
	events.Layout.DrawerClose()
	return true
}

// handleDrawerKey consumes every key while the drawer is open.
func (m *Model) handleDrawerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.CloseDrawer):
		if m.closeDrawer() {
			return m.resizeContent()
		}
		return nil
	case key.Matches(msg, m.keys.Up):
		if m.drawer.MoveCursorUp() {
			events.Nav.Cursor(m.drawer.Cursor)
		}
		return nil
	case key.Matches(msg, m.keys.Down):
		if m.drawer.MoveCursorDown() {
			events.Nav.Cursor(m.drawer.Cursor)
		}
		return nil
	case key.Matches(msg, m.keys.ClearFilter):
		m.drawer.ClearFilter()
		return nil
	case key.Matches(msg, m.keys.Select):
		item, ok := m.drawer.Current()
		if !ok {
			return nil
		}
		cmds := []tea.Cmd{m.navigateTo(item)}
		if m.closeDrawer() {
			if cmd := m.resizeContent(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return tea.Batch(cmds...)
	}
	switch msg.Type {
	case tea.KeyHome:
		m.drawer.MoveCursorHome()
	case tea.KeyEnd:
		m.drawer.MoveCursorEnd()
	case tea.KeyBackspace:
		if m.drawer.DeleteFilterRuneBackward() {
			events.Nav.Filter(m.drawer.Filter, len(m.drawer.Items))
		}
	case tea.KeySpace:
		if m.drawer.InsertFilterText(" ") {
			events.Nav.Filter(m.drawer.Filter, len(m.drawer.Items))
		}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		if m.drawer.InsertFilterText(string(msg.Runes)) {
			events.Nav.Filter(m.drawer.Filter, len(m.drawer.Items))
		}
	}
	return nil
}

func (m *Model) renderDrawer(width, height int) string {
	st := m.styles()
	inner := width - 1
	if m.viewport == Mobile {
		inner = width
	}
	if inner < 1 {
		inner = 1
	}
	lines := make([]string, 0, height)
	filter := m.drawer.Filter
	if filter == "" {
		lines = append(lines, st.DrawerFilter.Render(ansi.Truncate("/ type to filter", inner, "…")))
	} else {
		lines = append(lines, st.DrawerFilter.Render(ansi.Truncate("/ "+filter, inner, "…")))
	}
	rows := height - 1
	if len(m.drawer.Items) == 0 {
		lines = append(lines, st.Info.Render(ansi.Truncate("no matches", inner, "…")))
	}
	indices, _ := m.drawer.Visible(rows)
	for _, idx := range indices {
		item := m.drawer.Items[idx]
		label := ansi.Truncate(" "+theme.Icon(item.Icon)+" "+item.Title, inner, "…")
		if pad := inner - ansi.StringWidth(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		if idx == m.drawer.Cursor {
			lines = append(lines, st.DrawerSelected.Render(label))
			continue
		}
		lines = append(lines, st.DrawerItem.Render(label))
	}
	body := strings.Join(lines, "\n")
	style := st.Drawer.Width(inner)
	if m.viewport == Mobile {
		style = style.BorderRight(false)
	}
	if height > 0 {
		style = style.Height(height).MaxHeight(height)
	}
	return style.Render(body)
}
