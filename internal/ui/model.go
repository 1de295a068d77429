package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/nav"
	"github.com/atomicstack/formshell/internal/state"
	"github.com/atomicstack/formshell/internal/theme"
	"github.com/atomicstack/formshell/internal/ui/command"
	uistate "github.com/atomicstack/formshell/internal/ui/state"
)

// ContentScope names the boundary wrapped around the routed content.
const ContentScope = "Content"

type msgHandler func(tea.Msg) tea.Cmd

// Router resolves a navigation path to the page model mounted in the content
// region.
type Router interface {
	Resolve(path string) (tea.Model, error)
}

// NavigateMsg asks the shell to mount the page at Path.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command emitting a NavigateMsg for path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// Config carries the layout options.
type Config struct {
	Title              string
	Width              int
	Height             int
	BottomBarOnDesktop bool
	Debug              bool
	MobileBreakpoint   int
	Store              state.AppStore
	Router             Router
	Home               string
}

// Model implements the Bubble Tea model for the application shell.
type Model struct {
	title              string
	width              int
	height             int
	fixedWidth         bool
	fixedHeight        bool
	breakpoint         int
	viewport           ViewportClass
	bottomBarOnDesktop bool
	debug              bool

	drawerOpen  bool
	drawer      *uistate.List
	bottomItems []nav.Item

	store   state.AppStore
	router  Router
	content *Boundary
	path    string
	errMsg  string

	keys     keyMap
	help     help.Model
	bus      *command.Bus
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the shell and mounts the home page.
func NewModel(cfg Config) *Model {
	store := cfg.Store
	if store == nil {
		store = state.NewAppStore(false, cfg.Debug)
	}
	debug := cfg.Debug || store.Debug()
	m := &Model{
		title:              cfg.Title,
		breakpoint:         cfg.MobileBreakpoint,
		bottomBarOnDesktop: cfg.BottomBarOnDesktop,
		debug:              debug,
		drawer:             uistate.NewList(nav.SideItems(debug)),
		bottomItems:        nav.BottomItems(debug),
		store:              store,
		router:             cfg.Router,
		keys:               newKeyMap(),
		help:               help.New(),
		bus:                command.New(),
	}
	if m.breakpoint <= 0 {
		m.breakpoint = DefaultMobileBreakpoint
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.viewport = Classify(m.width, m.breakpoint)
	home := cfg.Home
	if home == "" {
		home = nav.PathHome
	}
	m.mount(home)
	if m.content == nil {
		m.content = NewBoundary(ContentScope, blankPage{})
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.title)}
	if cmd := m.content.Init(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.resizeContent(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.forward(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(NavigateMsg{}):       m.handleNavigateMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.content == nil {
		return nil
	}
	_, cmd := m.content.Update(msg)
	return cmd
}

// Viewport reports the current responsive classification.
func (m *Model) Viewport() ViewportClass {
	return m.viewport
}

// DrawerOpen reports whether the navigation drawer is visible.
func (m *Model) DrawerOpen() bool {
	return m.drawerOpen
}

// BottomBarVisible reports whether the bottom bar is rendered.
func (m *Model) BottomBarVisible() bool {
	return m.viewport == Mobile || m.bottomBarOnDesktop
}

// Path returns the currently mounted route.
func (m *Model) Path() string {
	return m.path
}

// Content exposes the boundary around the mounted page.
func (m *Model) Content() *Boundary {
	return m.content
}

// Title returns the window title.
func (m *Model) Title() string {
	return m.title
}

func (m *Model) styles() *theme.Styles {
	return theme.ForMode(m.store.DarkMode())
}

type blankPage struct{}

func (blankPage) Init() tea.Cmd                       { return nil }
func (blankPage) Update(tea.Msg) (tea.Model, tea.Cmd) { return blankPage{}, nil }
func (blankPage) View() string                        { return "" }
