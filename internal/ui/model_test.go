package ui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/nav"
	"github.com/atomicstack/formshell/internal/state"
)

func TestNewModelMountsHome(t *testing.T) {
	m, router := newTestModel(Config{})
	if m.Path() != nav.PathHome {
		t.Fatalf("expected home path, got %q", m.Path())
	}
	if len(router.resolved) != 1 || router.resolved[0] != nav.PathHome {
		t.Fatalf("expected single home resolve, got %v", router.resolved)
	}
	if m.Content().Scope() != ContentScope {
		t.Fatalf("expected content scope %q, got %q", ContentScope, m.Content().Scope())
	}
}

func TestInitSetsWindowTitle(t *testing.T) {
	m, _ := newTestModel(Config{Title: "Forms"})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected init command")
	}
	want := tea.SetWindowTitle("Forms")()
	found := false
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil && reflect.DeepEqual(c(), want) {
				found = true
			}
		}
	default:
		found = reflect.DeepEqual(msg, want)
	}
	if !found {
		t.Fatalf("expected window title command for %q", "Forms")
	}
}

func TestInitInitialisesContent(t *testing.T) {
	m, router := newTestModel(Config{})
	NewHarness(m).Start()
	if router.pages[nav.PathHome].inits != 1 {
		t.Fatalf("expected home page init once, got %d", router.pages[nav.PathHome].inits)
	}
}

func TestViewportClassification(t *testing.T) {
	m, _ := newTestModel(Config{})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 30})
	if m.Viewport() != Desktop {
		t.Fatalf("expected desktop at 120 columns")
	}
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 30})
	if m.Viewport() != Mobile {
		t.Fatalf("expected mobile at 60 columns")
	}
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.Viewport() != Desktop {
		t.Fatalf("expected desktop at the breakpoint")
	}
}

func TestCustomBreakpoint(t *testing.T) {
	m, _ := newTestModel(Config{MobileBreakpoint: 120})
	NewHarness(m).Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.Viewport() != Mobile {
		t.Fatalf("expected mobile below custom breakpoint")
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	m, _ := newTestModel(Config{Width: 60, Height: 20})
	if m.Viewport() != Mobile {
		t.Fatalf("expected fixed 60 columns to classify as mobile")
	}
	NewHarness(m).Send(tea.WindowSizeMsg{Width: 200, Height: 50})
	if m.Viewport() != Mobile {
		t.Fatalf("expected fixed width to win over window size")
	}
}

func TestBottomBarVisibility(t *testing.T) {
	cases := []struct {
		name    string
		width   int
		desktop bool
		want    bool
	}{
		{"desktop default", 120, false, false},
		{"desktop configured", 120, true, true},
		{"mobile default", 60, false, true},
		{"mobile configured", 60, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(Config{BottomBarOnDesktop: tc.desktop})
			NewHarness(m).Send(tea.WindowSizeMsg{Width: tc.width, Height: 24})
			if got := m.BottomBarVisible(); got != tc.want {
				t.Fatalf("expected bottom bar visible=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestToggleDarkModeFlipsStore(t *testing.T) {
	store := state.NewAppStore(false, false)
	m, _ := newTestModel(Config{Store: store})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 20})
	if !strings.Contains(h.View(), "light") {
		t.Fatalf("expected light mode label in top bar:\n%s", h.View())
	}
	h.Send(keyMsg("ctrl+t"))
	if !store.DarkMode() {
		t.Fatalf("expected dark mode after toggle")
	}
	if !strings.Contains(h.View(), "dark") {
		t.Fatalf("expected dark mode label in top bar:\n%s", h.View())
	}
	h.Send(keyMsg("ctrl+t"))
	if store.DarkMode() {
		t.Fatalf("expected light mode after second toggle")
	}
}

func TestKeysReachContentWhenDrawerClosed(t *testing.T) {
	m, router := newTestModel(Config{})
	h := NewHarness(m)
	h.Send(keyMsg("x"))
	page := router.pages[nav.PathHome]
	if len(page.keys) != 1 || page.keys[0] != "x" {
		t.Fatalf("expected key forwarded to page, got %v", page.keys)
	}
}

func TestQuitKeyReturnsQuit(t *testing.T) {
	m, _ := newTestModel(Config{})
	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestNavigateMsgMountsPage(t *testing.T) {
	m, router := newTestModel(Config{})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 20})
	h.Send(NavigateMsg{Path: nav.PathSettings})
	if m.Path() != nav.PathSettings {
		t.Fatalf("expected settings path, got %q", m.Path())
	}
	page := router.pages[nav.PathSettings]
	if page.inits != 1 {
		t.Fatalf("expected settings init, got %d", page.inits)
	}
	if page.lastSize().Width != 98 {
		t.Fatalf("expected content width 98, got %d", page.lastSize().Width)
	}
	if !strings.Contains(h.View(), "page:settings") {
		t.Fatalf("expected settings page in view:\n%s", h.View())
	}
}

func TestNavigateSamePathIsNoOp(t *testing.T) {
	m, router := newTestModel(Config{})
	NewHarness(m).Send(NavigateMsg{Path: nav.PathHome})
	if len(router.resolved) != 1 {
		t.Fatalf("expected no remount, resolved %v", router.resolved)
	}
}

func TestNavigateUnknownPathShowsError(t *testing.T) {
	m, _ := newTestModel(Config{})
	h := NewHarness(m)
	h.Send(NavigateMsg{Path: "/missing"})
	if m.Path() != nav.PathHome {
		t.Fatalf("expected to stay on home, got %q", m.Path())
	}
	if !strings.Contains(h.View(), `unknown route "/missing"`) {
		t.Fatalf("expected routing error in view:\n%s", h.View())
	}
	h.Send(NavigateMsg{Path: nav.PathSignup})
	if strings.Contains(h.View(), "unknown route") {
		t.Fatalf("expected error cleared after successful navigation")
	}
}

func TestBottomShortcutNavigates(t *testing.T) {
	m, _ := newTestModel(Config{})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	h.Send(keyMsg("alt+2"))
	if m.Path() != nav.PathSignup {
		t.Fatalf("expected alt+2 to open sign up, got %q", m.Path())
	}
	if !strings.Contains(h.View(), "2 ✎ Sign up") {
		t.Fatalf("expected bottom bar items in view:\n%s", h.View())
	}
}

func TestBottomShortcutIgnoredWhenBarHidden(t *testing.T) {
	m, router := newTestModel(Config{})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 20})
	h.Send(keyMsg("alt+2"))
	if m.Path() != nav.PathHome {
		t.Fatalf("expected to stay home, got %q", m.Path())
	}
	if keys := router.pages[nav.PathHome].keys; len(keys) != 1 || keys[0] != "alt+2" {
		t.Fatalf("expected shortcut forwarded to page, got %v", keys)
	}
}

func TestDebugEntryOnlyWhenEnabled(t *testing.T) {
	m, _ := newTestModel(Config{})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	h.Send(keyMsg("ctrl+b"))
	if strings.Contains(h.View(), nav.DebugItem.Title) {
		t.Fatalf("expected no debug entry without debug flag:\n%s", h.View())
	}

	dm, _ := newTestModel(Config{Debug: true})
	dh := NewHarness(dm)
	dh.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	dh.Send(keyMsg("ctrl+b"))
	if !strings.Contains(dh.View(), nav.DebugItem.Title) {
		t.Fatalf("expected debug entry with debug flag:\n%s", dh.View())
	}
}
