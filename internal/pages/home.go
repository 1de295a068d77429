package pages

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/nav"
	"github.com/atomicstack/formshell/internal/ui"
)

// Home is the landing page.
type Home struct {
	deps  Deps
	width int
}

// NewHome builds the landing page.
func NewHome(deps Deps) *Home {
	return &Home{deps: deps}
}

func (h *Home) Init() tea.Cmd { return nil }

func (h *Home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return h, ui.Navigate(nav.PathSignup)
		}
	}
	return h, nil
}

func (h *Home) View() string {
	st := h.deps.styles()
	var b strings.Builder
	b.WriteString(st.Heading.Render("Welcome to " + h.deps.Title))
	b.WriteString("\n\n")
	b.WriteString("Press enter to open the sign-up form.\n")
	b.WriteString("Open the menu with ctrl+b, switch themes with ctrl+t.\n\n")
	if f := h.deps.Form; f != nil {
		status := "not started"
		switch {
		case f.IsTouched() && f.IsValid():
			status = st.Info.Render("complete")
		case f.IsTouched():
			status = st.Error.Render(fmt.Sprintf("%d field(s) need attention", len(f.State().Errors)))
		}
		b.WriteString(st.FieldLabel.Render("Sign-up form: "))
		b.WriteString(status)
	}
	return b.String()
}
