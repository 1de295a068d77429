package form

import "github.com/atomicstack/formshell/internal/logging/events"

// ControlCheckbox is the control type whose checked state is bound instead
// of its text value.
const ControlCheckbox = "checkbox"

// Control describes the input that produced a change event.
type Control struct {
	Name    string
	Type    string
	Value   string
	Checked bool
}

// ChangeEvent carries the control whose value changed.
type ChangeEvent struct {
	Target Control
}

// HandleChange binds a control change into the form by the control's name.
// Checkbox controls contribute their checked state, every other control its
// string value. The field is marked touched and all other fields are carried
// over unchanged before the values are revalidated.
func (f *Form) HandleChange(ev ChangeEvent) {
	target := ev.Target
	var value any = target.Value
	if target.Type == ControlCheckbox {
		value = target.Checked
	}
	values := f.state.Values.clone()
	values[target.Name] = value
	touched := make(Touched, len(f.state.Touched)+1)
	for k, t := range f.state.Touched {
		touched[k] = t
	}
	touched[target.Name] = true
	f.state.Values = values
	f.state.Touched = touched
	events.Form.Change(f.id, target.Name, target.Type)
	f.revalidate()
}
