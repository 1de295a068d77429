package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/formshell/internal/theme"
)

// modeAction returns the label of the top bar end action. It names the mode
// currently in effect.
func (m *Model) modeAction() string {
	if m.store.DarkMode() {
		return theme.Icon("dark") + " dark"
	}
	return theme.Icon("light") + " light"
}

func (m *Model) renderTopBar() string {
	st := m.styles()
	left := theme.Icon("menu") + " " + m.title
	right := m.modeAction()
	if m.width <= 0 {
		return st.TopBar.Render(st.TopBarTitle.Render(left) + "  " + st.TopBarAction.Render(right))
	}
	inner := m.width - 2
	if inner < 1 {
		inner = 1
	}
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		right = ""
		left = ansi.Truncate(left, inner, "…")
		gap = inner - ansi.StringWidth(left)
	}
	line := st.TopBarTitle.Render(left) + st.TopBarAction.Render(strings.Repeat(" ", gap)+right)
	return st.TopBar.Width(m.width).Render(line)
}

func (m *Model) renderBottomBar() string {
	st := m.styles()
	items := make([]string, 0, len(m.bottomItems))
	for i, item := range m.bottomItems {
		label := fmt.Sprintf("%d %s %s", i+1, theme.Icon(item.Icon), item.Title)
		if item.Path == m.path {
			items = append(items, st.BottomActive.Render(label))
			continue
		}
		items = append(items, st.BottomItem.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	m.help.Styles.ShortKey = *st.Help
	m.help.Styles.ShortDesc = *st.Help
	m.help.Styles.ShortSeparator = *st.Help
	helpLine := m.help.ShortHelpView(m.keys.shortHelp(m.drawerOpen))
	if m.width > 0 {
		row = ansi.Truncate(row, m.width, "…")
		helpLine = ansi.Truncate(helpLine, m.width, "…")
		return st.BottomBar.Width(m.width).Render(row) + "\n" + helpLine
	}
	return st.BottomBar.Render(row) + "\n" + helpLine
}
