package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/nav"
	"github.com/atomicstack/formshell/internal/state"
)

type stubPage struct {
	name    string
	keys    []string
	sizes   []tea.WindowSizeMsg
	inits   int
	panicOn string
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.panicOn != "" && msg.String() == p.panicOn {
			panic("page exploded")
		}
		p.keys = append(p.keys, msg.String())
	case tea.WindowSizeMsg:
		p.sizes = append(p.sizes, msg)
	}
	return p, nil
}

func (p *stubPage) View() string {
	return "page:" + p.name
}

func (p *stubPage) lastSize() tea.WindowSizeMsg {
	if len(p.sizes) == 0 {
		return tea.WindowSizeMsg{}
	}
	return p.sizes[len(p.sizes)-1]
}

type stubRouter struct {
	pages    map[string]*stubPage
	resolved []string
}

func newStubRouter(debug bool) *stubRouter {
	r := &stubRouter{pages: map[string]*stubPage{}}
	for _, item := range nav.SideItems(debug) {
		r.pages[item.Path] = &stubPage{name: strings.TrimPrefix(item.Path, "/")}
	}
	return r
}

func (r *stubRouter) Resolve(path string) (tea.Model, error) {
	page, ok := r.pages[path]
	if !ok {
		return nil, fmt.Errorf("unknown route %q", path)
	}
	r.resolved = append(r.resolved, path)
	return page, nil
}

func newTestModel(cfg Config) (*Model, *stubRouter) {
	router := newStubRouter(cfg.Debug)
	cfg.Router = router
	if cfg.Store == nil {
		cfg.Store = state.NewAppStore(false, cfg.Debug)
	}
	if cfg.Title == "" {
		cfg.Title = "Test Shell"
	}
	return NewModel(cfg), router
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	if strings.HasPrefix(s, "alt+") {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(strings.TrimPrefix(s, "alt+")), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
