package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateOmitsFieldsWithoutViolations(t *testing.T) {
	s := New(
		Field{Name: "email", Rules: []Rule{{Tag: "required", Message: "Email is required"}, {Tag: "email", Message: "Bad email"}}},
		Field{Name: "name", Rules: []Rule{{Tag: "required", Message: "Name is required"}}},
	)
	got := s.Validate(map[string]any{"email": "not-an-email", "name": "Ada"})
	want := map[string][]string{"email": {"Bad email"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}
}

func TestValidateRequiredFailsOnUnsetValue(t *testing.T) {
	s := New(Field{Name: "email", Rules: []Rule{{Tag: "required", Message: "Email is required"}, {Tag: "email", Message: "Bad email"}}})
	got := s.Validate(map[string]any{})
	want := map[string][]string{"email": {"Email is required"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}
}

func TestValidateKeepsRuleOrder(t *testing.T) {
	s := New(Field{Name: "code", Rules: []Rule{
		{Tag: "min=4", Message: "too short"},
		{Tag: "numeric", Message: "digits only"},
	}})
	got := s.Validate(map[string]any{"code": "ab"})
	want := map[string][]string{"code": {"too short", "digits only"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}
}

func TestValidateBooleanRequired(t *testing.T) {
	s := New(Field{Name: "terms", Rules: []Rule{{Tag: "required", Message: "accept"}}})
	if got := s.Validate(map[string]any{"terms": false}); len(got["terms"]) != 1 {
		t.Fatalf("expected unchecked box to fail, got %#v", got)
	}
	if got := s.Validate(map[string]any{"terms": true}); len(got) != 0 {
		t.Fatalf("expected checked box to pass, got %#v", got)
	}
}

func TestValidateDefaultMessage(t *testing.T) {
	s := New(Field{Name: "age", Rules: []Rule{{Tag: "numeric"}}})
	got := s.Validate(map[string]any{"age": "old"})
	if diff := cmp.Diff([]string{"age failed numeric"}, got["age"]); diff != "" {
		t.Fatalf("unexpected message (-want +got):\n%s", diff)
	}
}

func TestNewMergesDuplicateFields(t *testing.T) {
	s := New(
		Field{Name: "email", Rules: []Rule{{Tag: "required"}}},
		Field{Name: "name"},
		Field{Name: "email", Rules: []Rule{{Tag: "email"}}},
	)
	if diff := cmp.Diff([]string{"email", "name"}, s.Fields()); diff != "" {
		t.Fatalf("unexpected field order (-want +got):\n%s", diff)
	}
	if got := len(s.Rules("email")); got != 2 {
		t.Fatalf("expected merged rules, got %d", got)
	}
}

func TestParseKeepsDocumentOrder(t *testing.T) {
	raw := []byte(`
name:
  - rule: required
    message: Name is required
email:
  - required
  - rule: email
    message: Enter a valid email address
subscribe:
`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"name", "email", "subscribe"}, s.Fields()); diff != "" {
		t.Fatalf("unexpected field order (-want +got):\n%s", diff)
	}
	want := []Rule{{Tag: "required"}, {Tag: "email", Message: "Enter a valid email address"}}
	if diff := cmp.Diff(want, s.Rules("email")); diff != "" {
		t.Fatalf("unexpected rules (-want +got):\n%s", diff)
	}
}

func TestParseRejectsNonMapping(t *testing.T) {
	for _, raw := range []string{"- email\n- name\n", "just a string\n", ""} {
		if _, err := Parse([]byte(raw)); !errors.Is(err, ErrNotStructured) {
			t.Fatalf("expected ErrNotStructured for %q, got %v", raw, err)
		}
	}
}

func TestParseRejectsScalarRuleList(t *testing.T) {
	if _, err := Parse([]byte("email: required\n")); !errors.Is(err, ErrNotStructured) {
		t.Fatalf("expected ErrNotStructured, got %v", err)
	}
}

func TestParseRejectsUnknownTag(t *testing.T) {
	if _, err := Parse([]byte("email:\n  - no_such_rule\n")); err == nil {
		t.Fatalf("expected error for unknown validator tag")
	}
}

func TestDefaultSchemaFields(t *testing.T) {
	want := []string{"email", "name", "password", "subscribe", "terms"}
	if diff := cmp.Diff(want, Default().Fields()); diff != "" {
		t.Fatalf("unexpected default fields (-want +got):\n%s", diff)
	}
}

func TestParseControlMapping(t *testing.T) {
	raw := []byte(`
terms:
  control: checkbox
  rules:
    - rule: required
      message: You must accept the terms
secret:
  control: password
`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := s.Control("terms"); got != ControlCheckbox {
		t.Fatalf("expected checkbox control, got %q", got)
	}
	if got := s.Control("secret"); got != ControlPassword {
		t.Fatalf("expected password control, got %q", got)
	}
	if got := s.Control("missing"); got != ControlText {
		t.Fatalf("expected text control for unknown field, got %q", got)
	}
	if len(s.Rules("terms")) != 1 {
		t.Fatalf("expected one terms rule, got %#v", s.Rules("terms"))
	}
}

func TestParseRejectsUnknownControl(t *testing.T) {
	if _, err := Parse([]byte("terms:\n  control: slider\n")); err == nil {
		t.Fatalf("expected error for unknown control")
	}
}

func TestZeroUsesControlKinds(t *testing.T) {
	want := map[string]any{"email": "", "name": "", "password": "", "subscribe": false, "terms": false}
	if diff := cmp.Diff(want, Default().Zero()); diff != "" {
		t.Fatalf("unexpected zero values (-want +got):\n%s", diff)
	}
}

func TestParseRejectsTagForCheckboxKind(t *testing.T) {
	raw := []byte("terms:\n  control: checkbox\n  rules:\n    - rule: min=1\n      message: pick\n")
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected min=1 on a checkbox to be rejected")
	}
}

func TestParseAcceptsRequiredCheckbox(t *testing.T) {
	raw := []byte("terms:\n  control: checkbox\n  rules:\n    - rule: required\n      message: accept\n")
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := s.Validate(s.Zero())
	want := map[string][]string{"terms": {"accept"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}
}

func TestValidateReportsTagThatDoesNotFitValue(t *testing.T) {
	s := New(Field{Name: "terms", Control: ControlCheckbox, Rules: []Rule{{Tag: "min=1", Message: "pick"}}})
	got := s.Validate(map[string]any{"terms": true})
	want := map[string][]string{"terms": {"pick"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}

	s = New(Field{Name: "terms", Rules: []Rule{{Tag: "max=1"}}})
	got = s.Validate(map[string]any{"terms": false})
	want = map[string][]string{"terms": {"terms failed max=1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}
}
