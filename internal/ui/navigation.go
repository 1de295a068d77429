package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/logging/events"
	"github.com/atomicstack/formshell/internal/nav"
	"github.com/atomicstack/formshell/internal/ui/command"
)

// mount resolves path and wraps the page in a fresh content boundary. It
// reports whether a page was mounted.
func (m *Model) mount(path string) bool {
	if m.router == nil {
		m.errMsg = "no router configured"
		return false
	}
	page, err := m.router.Resolve(path)
	if err != nil {
		m.errMsg = err.Error()
		events.Nav.Error(path, err)
		return false
	}
	if page == nil {
		err = fmt.Errorf("route %s resolved to no page", path)
		m.errMsg = err.Error()
		events.Nav.Error(path, err)
		return false
	}
	m.errMsg = ""
	m.path = path
	m.drawer.Select(path)
	m.content = NewBoundary(ContentScope, page)
	events.Nav.Navigate(path)
	return true
}

func (m *Model) handleNavigateMsg(msg tea.Msg) tea.Cmd {
	nm, ok := msg.(NavigateMsg)
	if !ok {
		if ptr, okPtr := msg.(*NavigateMsg); okPtr && ptr != nil {
			nm = *ptr
		} else {
			return nil
		}
	}
	return m.navigate(nm.Path)
}

// navigate mounts path unless it is already mounted and healthy. A failed
// boundary is always remounted so the same route can recover.
func (m *Model) navigate(path string) tea.Cmd {
	if path == m.path && m.content != nil && m.content.Err() == nil {
		return nil
	}
	if !m.mount(path) {
		return nil
	}
	cmds := []tea.Cmd{}
	if cmd := m.content.Init(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.resizeContent(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// navigateTo queues navigation to item through the command bus.
func (m *Model) navigateTo(item nav.Item) tea.Cmd {
	path := item.Path
	return m.bus.Execute(command.Request{
		ID:      "navigate:" + path,
		Label:   item.Title,
		Handler: func() tea.Msg { return NavigateMsg{Path: path} },
	})
}
