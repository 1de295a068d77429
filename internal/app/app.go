package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/atomicstack/formshell/internal/form"
	"github.com/atomicstack/formshell/internal/logging/events"
	"github.com/atomicstack/formshell/internal/nav"
	"github.com/atomicstack/formshell/internal/pages"
	"github.com/atomicstack/formshell/internal/prompt"
	"github.com/atomicstack/formshell/internal/schema"
	"github.com/atomicstack/formshell/internal/state"
	"github.com/atomicstack/formshell/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Title              string
	Width              int
	Height             int
	BottomBarOnDesktop bool
	MobileBreakpoint   int
	Debug              bool
	DarkMode           bool
	SchemaPath         string
	Plain              bool
}

// Session bundles the collaborators shared by the shell and the plain-mode
// prompts.
type Session struct {
	Store  state.AppStore
	Schema *schema.Schema
	Form   *form.Form
	Router *Router
}

// NewSession loads the schema and builds the shared form and router.
func NewSession(cfg Config) (*Session, error) {
	sc, err := loadSchema(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	f, err := form.New(sc, sc.Zero())
	if err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}
	store := state.NewAppStore(cfg.DarkMode, cfg.Debug)
	deps := pages.Deps{Title: cfg.Title, Store: store, Form: f, Schema: sc}
	return &Session{
		Store:  store,
		Schema: sc,
		Form:   f,
		Router: NewPageRouter(deps, cfg.Debug),
	}, nil
}

// Model builds the layout shell for the session.
func (s *Session) Model(cfg Config) *ui.Model {
	return ui.NewModel(ui.Config{
		Title:              cfg.Title,
		Width:              cfg.Width,
		Height:             cfg.Height,
		BottomBarOnDesktop: cfg.BottomBarOnDesktop,
		Debug:              cfg.Debug,
		MobileBreakpoint:   cfg.MobileBreakpoint,
		Store:              s.Store,
		Router:             s.Router,
		Home:               nav.PathHome,
	})
}

// Run bootstraps and executes the Bubble Tea program, or the line prompts
// when the shell cannot be shown.
func Run(cfg Config) error {
	session, err := NewSession(cfg)
	if err != nil {
		return err
	}
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	reason, err := plainReason(cfg, term.IsTerminal(int(os.Stdin.Fd())), stdoutTTY)
	if err != nil {
		return err
	}
	if reason != "" {
		events.App.PlainMode(reason)
		// prompts stay on the terminal when stdout is piped
		out := os.Stdout
		if !stdoutTTY {
			out = os.Stderr
		}
		_, err := prompt.Fill(context.Background(), prompt.NewSurveyDriver(out), session.Form, session.Schema)
		if errors.Is(err, prompt.ErrAborted) {
			return nil
		}
		return err
	}
	program := tea.NewProgram(session.Model(cfg), tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ErrNoTerminal is returned when stdin is not a terminal. Both the shell and
// the line prompts read keys from it.
var ErrNoTerminal = errors.New("stdin is not a terminal; run formshell from an interactive shell")

func plainReason(cfg Config, stdinTTY, stdoutTTY bool) (string, error) {
	if !stdinTTY {
		return "", ErrNoTerminal
	}
	if cfg.Plain {
		return "requested", nil
	}
	if !stdoutTTY {
		return "stdout is not a terminal", nil
	}
	return "", nil
}

func loadSchema(path string) (*schema.Schema, error) {
	if path == "" {
		return schema.Default(), nil
	}
	sc, err := schema.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return sc, nil
}
