package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/logging/events"
)

const (
	topBarHeight    = 1
	bottomBarHeight = 2
	drawerWidth     = 24
)

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	class := Classify(m.width, m.breakpoint)
	if class != m.viewport {
		m.viewport = class
		events.Layout.Viewport(class.String(), m.width, m.height)
	}
	m.help.Width = m.width
	return m.resizeContent()
}

// desktopDrawerVisible reports whether the drawer takes a column beside the
// content rather than replacing it.
func (m *Model) desktopDrawerVisible() bool {
	return m.drawerOpen && m.viewport == Desktop
}

// drawerColumnWidth returns the width of the drawer region.
func (m *Model) drawerColumnWidth() int {
	if m.viewport == Mobile || m.width <= 0 {
		return m.width
	}
	if m.width < drawerWidth*2 {
		return m.width / 2
	}
	return drawerWidth
}

func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - topBarHeight
	if m.BottomBarVisible() {
		h -= bottomBarHeight
	}
	if m.errMsg != "" {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// contentSize returns the region available to the mounted page.
func (m *Model) contentSize() (int, int) {
	w := m.width
	if m.desktopDrawerVisible() {
		w -= m.drawerColumnWidth()
	}
	// horizontal padding of the content style
	w -= 2
	if w < 0 {
		w = 0
	}
	return w, m.bodyHeight()
}

// resizeContent tells the page about the region it owns.
func (m *Model) resizeContent() tea.Cmd {
	if m.width <= 0 || m.content == nil {
		return nil
	}
	w, h := m.contentSize()
	_, cmd := m.content.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return cmd
}
