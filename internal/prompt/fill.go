package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/formshell/internal/form"
	"github.com/atomicstack/formshell/internal/logging/events"
	"github.com/atomicstack/formshell/internal/schema"
)

// Result summarises a completed fill.
type Result struct {
	Valid bool
	State form.State
}

// Fill asks for every schema field in declaration order. Each answer is bound
// through HandleChange and rejected while the field reports an error.
func Fill(ctx context.Context, d Driver, f *form.Form, sc *schema.Schema) (Result, error) {
	if d == nil || f == nil {
		return Result{}, errors.New("prompt: driver and form are required")
	}
	values := f.State().Values
	for _, name := range sc.Fields() {
		if err := ask(ctx, d, f, name, sc.Control(name), values[name]); err != nil {
			return Result{State: f.State()}, fmt.Errorf("field %s: %w", name, err)
		}
	}
	res := Result{Valid: f.IsTouched() && f.IsValid(), State: f.State()}
	events.Form.Submit(f.ID(), res.Valid)
	summary := "Form complete."
	if !res.Valid {
		summary = fmt.Sprintf("Form has %d invalid field(s).", len(res.State.Errors))
	}
	if err := d.Info(ctx, summary); err != nil {
		return res, err
	}
	return res, nil
}

func ask(ctx context.Context, d Driver, f *form.Form, name, control string, current any) error {
	message := label(name)
	switch control {
	case schema.ControlCheckbox:
		def, _ := current.(bool)
		_, err := d.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: def,
			Validate: func(checked bool) error {
				return bind(f, form.Control{Name: name, Type: form.ControlCheckbox, Checked: checked})
			},
		})
		return err
	case schema.ControlPassword:
		_, err := d.Password(ctx, InputConfig{Message: message, Validate: textValidator(f, name, control)})
		return err
	default:
		def, _ := current.(string)
		_, err := d.Input(ctx, InputConfig{Message: message, Default: def, Validate: textValidator(f, name, control)})
		return err
	}
}

func textValidator(f *form.Form, name, control string) func(string) error {
	return func(value string) error {
		return bind(f, form.Control{Name: name, Type: control, Value: value})
	}
}

// bind applies the change and turns a visible field error into a rejection.
func bind(f *form.Form, target form.Control) error {
	f.HandleChange(form.ChangeEvent{Target: target})
	if msg, ok := f.FieldError(target.Name); ok {
		return errors.New(msg)
	}
	return nil
}

func label(name string) string {
	if name == "" {
		return "(unnamed):"
	}
	return name + ":"
}
