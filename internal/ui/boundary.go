package ui

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/logging"
	"github.com/atomicstack/formshell/internal/logging/events"
)

var boundarySeq atomic.Uint64

// boundaryFailedMsg reports a panic recovered while one of the boundary's
// commands was running.
type boundaryFailedMsg struct {
	id  uint64
	err error
}

// Boundary wraps a child model and contains panics raised by it. Once a
// failure is recorded the child is no longer consulted; the owner renders a
// fallback in its place.
type Boundary struct {
	id    uint64
	scope string
	child tea.Model
	err   error
}

// NewBoundary wraps child under the given scope name.
func NewBoundary(scope string, child tea.Model) *Boundary {
	return &Boundary{id: boundarySeq.Add(1), scope: scope, child: child}
}

// Scope returns the name the boundary reports failures under.
func (b *Boundary) Scope() string {
	return b.scope
}

// Err returns the recorded failure, if any.
func (b *Boundary) Err() error {
	return b.err
}

// Child returns the wrapped model.
func (b *Boundary) Child() tea.Model {
	return b.child
}

// Init is part of the tea.Model interface.
func (b *Boundary) Init() (cmd tea.Cmd) {
	if b.err != nil {
		return nil
	}
	b.guard(func() { cmd = b.child.Init() })
	if b.err != nil {
		return nil
	}
	return b.wrap(cmd)
}

// Update is part of the tea.Model interface.
func (b *Boundary) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if failed, ok := msg.(boundaryFailedMsg); ok {
		if failed.id == b.id && b.err == nil {
			b.fail(failed.err)
		}
		return b, nil
	}
	if b.err != nil {
		return b, nil
	}
	var (
		next tea.Model
		cmd  tea.Cmd
	)
	b.guard(func() { next, cmd = b.child.Update(msg) })
	if b.err != nil {
		return b, nil
	}
	if next != nil {
		b.child = next
	}
	return b, b.wrap(cmd)
}

// View renders the child, or an empty string once the boundary has failed.
func (b *Boundary) View() (out string) {
	if b.err != nil {
		return ""
	}
	b.guard(func() { out = b.child.View() })
	if b.err != nil {
		return ""
	}
	return out
}

func (b *Boundary) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			b.fail(panicError(r))
		}
	}()
	fn()
}

func (b *Boundary) fail(err error) {
	b.err = err
	logging.Error(fmt.Errorf("%s boundary: %w", b.scope, err))
	events.Layout.BoundaryFailure(b.scope, err)
}

// wrap makes a command report panics back to the boundary as a message.
// Batches are unpacked so their members are wrapped as well.
func (b *Boundary) wrap(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	id := b.id
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = boundaryFailedMsg{id: id, err: panicError(r)}
			}
		}()
		msg = cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			wrapped := make(tea.BatchMsg, len(batch))
			for i, inner := range batch {
				wrapped[i] = b.wrap(inner)
			}
			return wrapped
		}
		return msg
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
