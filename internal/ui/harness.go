package ui

import tea "github.com/charmbracelet/bubbletea"

// maxHarnessSteps bounds the command chain a single Send may run.
const maxHarnessSteps = 64

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Start runs the model's Init command chain.
func (h *Harness) Start() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init(), 0)
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.deliver(msg, 0)
}

func (h *Harness) deliver(msg tea.Msg, depth int) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd, depth+1)
}

func (h *Harness) processCmd(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > maxHarnessSteps {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		return
	case tea.BatchMsg:
		for _, inner := range msg {
			h.processCmd(inner, depth+1)
		}
	default:
		h.deliver(msg, depth)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
