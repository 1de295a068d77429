package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.renderTopBar()}
	if m.errMsg != "" {
		sections = append(sections, m.styles().Error.Render(m.errMsg))
	}
	sections = append(sections, m.renderBody())
	if m.BottomBarVisible() {
		sections = append(sections, m.renderBottomBar())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderBody() string {
	height := m.bodyHeight()
	if m.drawerOpen && m.viewport == Mobile {
		return m.renderDrawer(m.drawerColumnWidth(), height)
	}
	content := m.renderContent()
	if m.desktopDrawerVisible() {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderDrawer(m.drawerColumnWidth(), height), content)
	}
	return content
}

func (m *Model) renderContent() string {
	st := m.styles()
	body := m.content.View()
	if err := m.content.Err(); err != nil {
		body = st.Fallback.Render(fmt.Sprintf("%s failed to render\n%v\n\nopen the menu with ctrl+b to continue", m.content.Scope(), err))
	}
	style := *st.Content
	if m.width > 0 {
		w, _ := m.contentSize()
		style = style.Width(w + 2)
	}
	if h := m.bodyHeight(); h > 0 {
		style = style.Height(h).MaxHeight(h)
	}
	return style.Render(body)
}
