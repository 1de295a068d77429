package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/form"
	"github.com/atomicstack/formshell/internal/logging/events"
	"github.com/atomicstack/formshell/internal/schema"
)

type signupField struct {
	name    string
	control string
	input   textinput.Model
}

func (f *signupField) checkbox() bool {
	return f.control == schema.ControlCheckbox
}

// Signup edits the shared form. Every keystroke that changes a control is
// bound into the form through HandleChange.
type Signup struct {
	deps      Deps
	fields    []*signupField
	focus     int
	width     int
	submitted bool
	accepted  bool
}

// NewSignup builds the sign-up page for the fields of the shared schema.
func NewSignup(deps Deps) *Signup {
	p := &Signup{deps: deps}
	values := form.Values{}
	if deps.Form != nil {
		values = deps.Form.State().Values
	}
	for _, name := range deps.Schema.Fields() {
		field := &signupField{name: name, control: deps.Schema.Control(name)}
		if !field.checkbox() {
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = fieldLabel(name)
			ti.CharLimit = 256
			ti.Cursor.SetMode(cursor.CursorStatic)
			if field.control == schema.ControlPassword {
				ti.EchoMode = textinput.EchoPassword
				ti.EchoCharacter = '•'
			}
			if s, ok := values[name].(string); ok {
				ti.SetValue(s)
			}
			field.input = ti
		}
		p.fields = append(p.fields, field)
	}
	return p
}

func (p *Signup) Init() tea.Cmd {
	return p.setFocus(0)
}

// submitIndex is the focus position of the submit button.
func (p *Signup) submitIndex() int {
	return len(p.fields)
}

func (p *Signup) setFocus(idx int) tea.Cmd {
	count := p.submitIndex() + 1
	idx = ((idx % count) + count) % count
	if p.focus < len(p.fields) && !p.fields[p.focus].checkbox() {
		p.fields[p.focus].input.Blur()
	}
	p.focus = idx
	if idx < len(p.fields) && !p.fields[idx].checkbox() {
		return p.fields[idx].input.Focus()
	}
	return nil
}

func (p *Signup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		for _, f := range p.fields {
			if !f.checkbox() {
				f.input.Width = inputWidth(msg.Width)
			}
		}
		return p, nil
	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	if p.focus < len(p.fields) && !p.fields[p.focus].checkbox() {
		var cmd tea.Cmd
		p.fields[p.focus].input, cmd = p.fields[p.focus].input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *Signup) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		return p.setFocus(p.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return p.setFocus(p.focus - 1)
	case tea.KeyEnter:
		if p.focus == p.submitIndex() {
			p.submit()
			return nil
		}
		return p.setFocus(p.focus + 1)
	}
	if p.focus == p.submitIndex() {
		return nil
	}
	field := p.fields[p.focus]
	if field.checkbox() {
		if msg.Type == tea.KeySpace {
			p.toggle(field)
		}
		return nil
	}
	before := field.input.Value()
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	if after := field.input.Value(); after != before {
		p.change(form.Control{Name: field.name, Type: field.control, Value: after})
	}
	return cmd
}

func (p *Signup) toggle(field *signupField) {
	if p.deps.Form == nil {
		return
	}
	checked, _ := p.deps.Form.State().Values[field.name].(bool)
	p.change(form.Control{Name: field.name, Type: form.ControlCheckbox, Checked: !checked})
}

func (p *Signup) change(target form.Control) {
	if p.deps.Form == nil {
		return
	}
	p.submitted = false
	p.deps.Form.HandleChange(form.ChangeEvent{Target: target})
}

// submit touches every field with its current value so hidden errors
// surface, then records whether the form is acceptable.
func (p *Signup) submit() {
	f := p.deps.Form
	if f == nil {
		return
	}
	values := f.State().Values
	for _, field := range p.fields {
		if field.checkbox() {
			checked, _ := values[field.name].(bool)
			f.HandleChange(form.ChangeEvent{Target: form.Control{Name: field.name, Type: form.ControlCheckbox, Checked: checked}})
			continue
		}
		f.HandleChange(form.ChangeEvent{Target: form.Control{Name: field.name, Type: field.control, Value: field.input.Value()}})
	}
	p.submitted = true
	p.accepted = f.IsTouched() && f.IsValid()
	events.Form.Submit(f.ID(), p.accepted)
}

func (p *Signup) View() string {
	st := p.deps.styles()
	f := p.deps.Form
	values := form.Values{}
	if f != nil {
		values = f.State().Values
	}
	var b strings.Builder
	b.WriteString(st.Heading.Render("Sign up"))
	b.WriteString("\n\n")
	for i, field := range p.fields {
		focused := i == p.focus
		marker := "  "
		if focused {
			marker = st.FieldFocused.Render("> ")
		}
		if field.checkbox() {
			checked, _ := values[field.name].(bool)
			label := checkbox(checked) + " " + fieldLabel(field.name)
			if focused {
				label = st.FieldFocused.Render(label)
			}
			b.WriteString(marker + label + "\n")
		} else {
			b.WriteString(marker + st.FieldLabel.Render(fieldLabel(field.name)) + "\n")
			b.WriteString("  " + field.input.View() + "\n")
		}
		if f != nil {
			if msg, ok := f.FieldError(field.name); ok {
				b.WriteString("  " + st.FieldError.Render(msg) + "\n")
			}
		}
	}
	b.WriteString("\n")
	button := "[ Submit ]"
	if p.focus == p.submitIndex() {
		b.WriteString(st.FieldFocused.Render("> " + button))
	} else {
		b.WriteString("  " + button)
	}
	if p.submitted {
		b.WriteString("\n\n")
		if p.accepted {
			b.WriteString(st.Info.Render("Thanks, you're signed up."))
		} else {
			b.WriteString(st.Error.Render(fmt.Sprintf("Fix %d field(s) before submitting.", len(f.State().Errors))))
		}
	}
	return b.String()
}

// Accepted reports whether the last submit found the form valid.
func (p *Signup) Accepted() bool {
	return p.submitted && p.accepted
}

func inputWidth(width int) int {
	w := width - 4
	if w < 10 {
		return 10
	}
	if w > 60 {
		return 60
	}
	return w
}
