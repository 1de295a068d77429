// Package schema holds declarative validation rule-sets for forms. A Schema
// lists fields in declaration order; every field carries an ordered list of
// rules expressed as go-playground/validator tags, each paired with the
// message reported when the rule is violated.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule is a single constraint applied to one field value.
type Rule struct {
	Tag     string `yaml:"rule"`
	Message string `yaml:"message,omitempty"`
}

// Control kinds a field can be rendered with.
const (
	ControlText     = "text"
	ControlPassword = "password"
	ControlCheckbox = "checkbox"
)

// Field binds an ordered rule list to a field name. Control names the input
// used to edit the field; empty means ControlText.
type Field struct {
	Name    string
	Control string
	Rules   []Rule
}

// Schema is an ordered, immutable rule-set.
type Schema struct {
	fields   []Field
	index    map[string]int
	validate *validator.Validate
}

// New builds a schema from the supplied fields. Later duplicates of a field
// name append their rules to the first declaration.
func New(fields ...Field) *Schema {
	s := &Schema{
		index:    make(map[string]int, len(fields)),
		validate: validator.New(),
	}
	for _, f := range fields {
		rules := append([]Rule(nil), f.Rules...)
		if idx, ok := s.index[f.Name]; ok {
			s.fields[idx].Rules = append(s.fields[idx].Rules, rules...)
			if s.fields[idx].Control == "" {
				s.fields[idx].Control = f.Control
			}
			continue
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, Field{Name: f.Name, Control: f.Control, Rules: rules})
	}
	return s
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Rules returns a copy of the rules declared for name.
func (s *Schema) Rules(name string) []Rule {
	if s == nil {
		return nil
	}
	idx, ok := s.index[name]
	if !ok {
		return nil
	}
	return append([]Rule(nil), s.fields[idx].Rules...)
}

// Control returns the control kind declared for name.
func (s *Schema) Control(name string) string {
	if s == nil {
		return ControlText
	}
	idx, ok := s.index[name]
	if !ok || s.fields[idx].Control == "" {
		return ControlText
	}
	return s.fields[idx].Control
}

// Zero returns the unset value for every field: false for checkboxes and ""
// otherwise.
func (s *Schema) Zero() map[string]any {
	out := make(map[string]any)
	if s == nil {
		return out
	}
	for _, f := range s.fields {
		if f.Control == ControlCheckbox {
			out[f.Name] = false
			continue
		}
		out[f.Name] = ""
	}
	return out
}

// Validate evaluates every rule against the full values mapping. Fields
// without violations are absent from the result.
func (s *Schema) Validate(values map[string]any) map[string][]string {
	out := make(map[string][]string)
	if s == nil {
		return out
	}
	for _, f := range s.fields {
		value := values[f.Name]
		for _, rule := range f.Rules {
			if msg, ok := s.check(f.Name, value, rule); !ok {
				out[f.Name] = append(out[f.Name], msg)
			}
		}
	}
	return out
}

func (s *Schema) check(field string, value any, rule Rule) (msg string, ok bool) {
	tag := strings.TrimSpace(rule.Tag)
	if tag == "" {
		return "", true
	}
	if isEmpty(value) && !isRequiredTag(tag) {
		return "", true
	}
	if value == nil {
		value = ""
	}
	// validator panics when a tag does not apply to the value's kind.
	defer func() {
		if r := recover(); r != nil {
			msg, ok = failure(field, tag, rule), false
		}
	}()
	err := s.validate.Var(value, tag)
	if err == nil {
		return "", true
	}
	var verrs validator.ValidationErrors
	if rule.Message == "" && errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("%s failed %s", field, verrs[0].Tag()), false
	}
	return failure(field, tag, rule), false
}

func failure(field, tag string, rule Rule) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fmt.Sprintf("%s failed %s", field, tag)
}

// checkTag reports whether the validator can apply tag to zero, the unset
// value of the field's control. Unknown tags and tags that do not fit the
// value's kind make validator panic, so the probe runs under recover.
func (s *Schema) checkTag(tag string, zero any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("schema: invalid rule %q for %T value: %v", tag, zero, r)
		}
	}()
	_ = s.validate.Var(zero, tag)
	return nil
}

func isRequiredTag(tag string) bool {
	return strings.HasPrefix(tag, "required")
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

// Default returns the built-in sign-up rule-set.
func Default() *Schema {
	return New(
		Field{Name: "email", Rules: []Rule{
			{Tag: "required", Message: "Email is required"},
			{Tag: "email", Message: "Enter a valid email address"},
		}},
		Field{Name: "name", Rules: []Rule{
			{Tag: "required", Message: "Name is required"},
			{Tag: "min=2", Message: "Name must be at least 2 characters"},
		}},
		Field{Name: "password", Control: ControlPassword, Rules: []Rule{
			{Tag: "required", Message: "Password is required"},
			{Tag: "min=8", Message: "Password must be at least 8 characters"},
		}},
		Field{Name: "subscribe", Control: ControlCheckbox},
		Field{Name: "terms", Control: ControlCheckbox, Rules: []Rule{
			{Tag: "required", Message: "You must accept the terms"},
		}},
	)
}
