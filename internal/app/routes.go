package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/formshell/internal/nav"
	"github.com/atomicstack/formshell/internal/pages"
)

// ErrUnknownRoute is returned when no page is registered for a path.
var ErrUnknownRoute = errors.New("unknown route")

// Factory builds a fresh page model for a route.
type Factory func() tea.Model

// Router maps navigation paths to page factories.
type Router struct {
	routes map[string]Factory
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{routes: map[string]Factory{}}
}

// NewPageRouter registers the application pages. The debug page is only
// routable when debug is set.
func NewPageRouter(deps pages.Deps, debug bool) *Router {
	r := NewRouter()
	r.Handle(nav.PathHome, func() tea.Model { return pages.NewHome(deps) })
	r.Handle(nav.PathSignup, func() tea.Model { return pages.NewSignup(deps) })
	r.Handle(nav.PathSettings, func() tea.Model { return pages.NewSettings(deps) })
	if debug {
		r.Handle(nav.PathDebug, func() tea.Model { return pages.NewDebug(deps) })
	}
	return r
}

// Handle registers factory under path, replacing any previous registration.
func (r *Router) Handle(path string, factory Factory) {
	r.routes[normalizePath(path)] = factory
}

// Paths lists the registered paths in lexical order.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Resolve builds the page registered for path. Unknown paths fail with
// ErrUnknownRoute and, when one is close enough, a suggested path.
func (r *Router) Resolve(path string) (tea.Model, error) {
	key := normalizePath(path)
	if factory, ok := r.routes[key]; ok {
		return factory(), nil
	}
	if suggestion := r.suggest(key); suggestion != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownRoute, path, suggestion)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownRoute, path)
}

// suggest returns the registered path with the smallest edit distance, if
// that distance is small relative to the path length.
func (r *Router) suggest(path string) string {
	best, bestDist := "", -1
	for _, candidate := range r.Paths() {
		d := levenshtein.ComputeDistance(path, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 {
		return ""
	}
	limit := len(path) / 2
	if limit < 2 {
		limit = 2
	}
	if bestDist > limit {
		return ""
	}
	return best
}

func normalizePath(path string) string {
	p := strings.TrimSpace(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}
