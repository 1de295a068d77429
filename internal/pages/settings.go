package pages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/logging/events"
)

// Settings shows display preferences and lets the user flip dark mode with
// the space bar.
type Settings struct {
	deps Deps
}

// NewSettings builds the settings page.
func NewSettings(deps Deps) *Settings {
	return &Settings{deps: deps}
}

func (s *Settings) Init() tea.Cmd { return nil }

func (s *Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeySpace && s.deps.Store != nil {
		events.Layout.DarkMode(s.deps.Store.ToggleDarkMode())
	}
	return s, nil
}

func (s *Settings) View() string {
	st := s.deps.styles()
	dark, debug := false, false
	if s.deps.Store != nil {
		dark, debug = s.deps.Store.DarkMode(), s.deps.Store.Debug()
	}
	var b strings.Builder
	b.WriteString(st.Heading.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(checkbox(dark) + " Dark mode")
	b.WriteString(st.Help.Render("  (space to toggle)"))
	b.WriteString("\n")
	b.WriteString(checkbox(debug) + " Debug tools")
	b.WriteString(st.Help.Render("  (set with --debug)"))
	return b.String()
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
