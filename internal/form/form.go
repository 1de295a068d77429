// Package form owns the state of a single form: field values, which fields
// have been touched, and the validation errors produced by a schema.
//
// Errors are never edited directly. Every change to the values mapping
// re-runs the schema over the whole mapping and replaces the errors
// wholesale. Errors for fields that have not been touched are still
// computed but are hidden from FieldHasError and FieldError until the
// field receives its first change.
package form

import (
	"errors"
	"reflect"

	"github.com/google/uuid"

	"github.com/atomicstack/formshell/internal/logging/events"
)

var (
	// ErrInvalidSchema is returned when no usable schema is supplied.
	ErrInvalidSchema = errors.New("form: schema is required and must be a structured rule set")
	// ErrInvalidInitialValues is returned when initial values are not a
	// string-keyed mapping.
	ErrInvalidInitialValues = errors.New("form: initial values must be a structured mapping")
)

// Validator evaluates a full values mapping and reports violation messages
// per field. Fields without violations must be absent from the result.
type Validator interface {
	Validate(values map[string]any) map[string][]string
}

// Values maps field names to their current value: a string, a bool, or nil
// when unset.
type Values map[string]any

// Touched records the fields that have received a change event.
type Touched map[string]bool

// Errors maps field names to their ordered violation messages.
type Errors map[string][]string

// State is the complete form state.
type State struct {
	Values  Values
	Touched Touched
	Errors  Errors
}

// Form tracks State for one form lifetime. It is not safe for concurrent
// use; callers drive it from a single UI update loop.
type Form struct {
	id     string
	schema Validator
	state  State
}

// New validates its arguments, seeds the state from initial and runs the
// first validation pass. initial may be nil, Values, map[string]any,
// map[string]string or map[string]bool.
func New(schema Validator, initial any) (*Form, error) {
	if isNil(schema) {
		return nil, ErrInvalidSchema
	}
	values, err := initialValues(initial)
	if err != nil {
		return nil, err
	}
	f := &Form{
		id:     uuid.NewString(),
		schema: schema,
		state: State{
			Values:  values,
			Touched: Touched{},
			Errors:  Errors{},
		},
	}
	events.Form.Mount(f.id, len(values))
	f.revalidate()
	return f, nil
}

// ID identifies the form in trace output.
func (f *Form) ID() string {
	return f.id
}

// State returns a copy of the current state.
func (f *Form) State() State {
	return f.state.clone()
}

// SetState replaces the state with the result of update. update receives a
// copy it may mutate freely. When the values mapping changed, errors are
// recomputed from the new values.
func (f *Form) SetState(update func(State) State) {
	if update == nil {
		return
	}
	next := update(f.state.clone()).normalized()
	changed := !reflect.DeepEqual(f.state.Values, next.Values)
	f.state = next
	if changed {
		f.revalidate()
	}
}

// SetValues merges patch into the values, revalidates and stores the result.
// Touched flags are left alone.
func (f *Form) SetValues(patch Values) {
	values := f.state.Values.clone()
	for name, value := range patch {
		values[name] = value
	}
	f.state.Values = values
	f.revalidate()
}

// FieldHasError reports whether name is touched and has at least one
// violation.
func (f *Form) FieldHasError(name string) bool {
	if !f.state.Touched[name] {
		return false
	}
	return len(f.state.Errors[name]) > 0
}

// FieldError returns the first violation message for name when
// FieldHasError is true.
func (f *Form) FieldError(name string) (string, bool) {
	if !f.FieldHasError(name) {
		return "", false
	}
	return f.state.Errors[name][0], true
}

// IsValid reports whether the error mapping is empty.
func (f *Form) IsValid() bool {
	return len(f.state.Errors) == 0
}

// IsTouched reports whether any field has been touched.
func (f *Form) IsTouched() bool {
	return len(f.state.Touched) > 0
}

func (f *Form) revalidate() {
	result := f.schema.Validate(map[string]any(f.state.Values.clone()))
	errs := make(Errors, len(result))
	for name, msgs := range result {
		if len(msgs) == 0 {
			continue
		}
		errs[name] = append([]string(nil), msgs...)
	}
	f.state.Errors = errs
	events.Form.Validate(f.id, len(errs))
}

func initialValues(initial any) (Values, error) {
	switch v := initial.(type) {
	case nil:
		return Values{}, nil
	case Values:
		return v.clone(), nil
	case map[string]any:
		return Values(v).clone(), nil
	case map[string]string:
		out := make(Values, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, nil
	case map[string]bool:
		out := make(Values, len(v))
		for k, b := range v {
			out[k] = b
		}
		return out, nil
	default:
		return nil, ErrInvalidInitialValues
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

func (s State) clone() State {
	out := State{
		Values:  s.Values.clone(),
		Touched: make(Touched, len(s.Touched)),
		Errors:  make(Errors, len(s.Errors)),
	}
	for k, t := range s.Touched {
		out.Touched[k] = t
	}
	for k, msgs := range s.Errors {
		out.Errors[k] = append([]string(nil), msgs...)
	}
	return out
}

func (s State) normalized() State {
	if s.Values == nil {
		s.Values = Values{}
	}
	if s.Touched == nil {
		s.Touched = Touched{}
	}
	if s.Errors == nil {
		s.Errors = Errors{}
	}
	return s
}
