package pages

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/form"
	"github.com/atomicstack/formshell/internal/format/table"
	"github.com/atomicstack/formshell/internal/schema"
)

// Debug renders the live state of the shared form and offers two tools: a
// reset of the values to their unset state and a deliberate panic that
// exercises the content boundary. Touched flags are left alone.
type Debug struct {
	deps  Deps
	width int
}

// NewDebug builds the debug tools page.
func NewDebug(deps Deps) *Debug {
	return &Debug{deps: deps}
}

func (d *Debug) Init() tea.Cmd { return nil }

func (d *Debug) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "!":
			panic("debug tools: crash requested")
		case "r":
			if d.deps.Form != nil && d.deps.Schema != nil {
				d.deps.Form.SetValues(d.deps.Schema.Zero())
			}
		}
	}
	return d, nil
}

func (d *Debug) View() string {
	st := d.deps.styles()
	var b strings.Builder
	b.WriteString(st.Heading.Render("Debug Tools"))
	b.WriteString("\n\n")
	if d.deps.Form == nil {
		b.WriteString(st.Info.Render("no form mounted"))
		return b.String()
	}
	b.WriteString(st.FieldLabel.Render("form " + d.deps.Form.ID()))
	b.WriteString("\n")
	for _, line := range table.FormatWidth(stateRows(d.deps.Schema, d.deps.Form.State()), nil, d.width) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("valid=%v touched=%v\n\n", d.deps.Form.IsValid(), d.deps.Form.IsTouched()))
	b.WriteString(st.Help.Render("r clear values   ! crash this page"))
	return b.String()
}

// stateRows lists the schema fields first, then any other value keys.
func stateRows(sc *schema.Schema, s form.State) [][]string {
	fields := sc.Fields()
	rows := [][]string{{"FIELD", "VALUE", "TOUCHED", "ERRORS"}}
	seen := make(map[string]bool, len(fields))
	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		errs := "-"
		if msgs := s.Errors[name]; len(msgs) > 0 {
			errs = strings.Join(msgs, "; ")
		}
		rows = append(rows, []string{name, displayValue(sc.Control(name), s.Values[name]), fmt.Sprintf("%v", s.Touched[name]), errs})
	}
	for _, name := range fields {
		add(name)
	}
	extra := make([]string, 0)
	for name := range s.Values {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		add(name)
	}
	return rows
}

func displayValue(control string, v any) string {
	switch val := v.(type) {
	case nil:
		return "<unset>"
	case string:
		if control == schema.ControlPassword && val != "" {
			return strings.Repeat("•", len([]rune(val)))
		}
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
