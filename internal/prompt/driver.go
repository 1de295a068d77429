// Package prompt fills a form through line-oriented prompts for terminals
// where the full-screen shell cannot run.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g. ctrl+c).
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a text or password prompt.
type InputConfig struct {
	Message  string
	Default  string
	Help     string
	Validate func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message  string
	Default  bool
	Help     string
	Validate func(bool) error
}

// Driver abstracts the prompt implementation so Fill can be tested without a
// terminal. Implementations keep asking until Validate accepts the answer.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Password(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns a Driver backed by survey prompts on the process
// terminal. Info messages go to out, or stdout when out is nil.
func NewSurveyDriver(out io.Writer) Driver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	prompt := &survey.Input{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}
	return d.askString(ctx, prompt, cfg.Validate)
}

func (d *surveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	prompt := &survey.Password{Message: cfg.Message, Help: cfg.Help}
	return d.askString(ctx, prompt, cfg.Validate)
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}
	opts := d.askOpts()
	if cfg.Validate != nil {
		validate := cfg.Validate
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			b, _ := ans.(bool)
			return validate(b)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// askOpts routes survey's rendering to the driver's writer when it is a
// terminal file.
func (d *surveyDriver) askOpts() []survey.AskOpt {
	fw, ok := d.out.(terminal.FileWriter)
	if !ok {
		return nil
	}
	return []survey.AskOpt{survey.WithStdio(os.Stdin, fw, os.Stderr)}
}

func (d *surveyDriver) askString(ctx context.Context, prompt survey.Prompt, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	opts := d.askOpts()
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
