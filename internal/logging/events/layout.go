package events

import "github.com/atomicstack/formshell/internal/logging"

type LayoutTracer struct{}

type NavTracer struct{}

var (
	Layout = LayoutTracer{}
	Nav    = NavTracer{}
)

func (LayoutTracer) DrawerOpen() {
	logging.Trace("layout.drawer.open", nil)
}

func (LayoutTracer) DrawerClose() {
	logging.Trace("layout.drawer.close", nil)
}

func (LayoutTracer) DarkMode(enabled bool) {
	logging.Trace("layout.dark-mode", map[string]interface{}{"enabled": enabled})
}

func (LayoutTracer) Viewport(class string, width, height int) {
	logging.Trace("layout.viewport", map[string]interface{}{
		"class":  class,
		"width":  width,
		"height": height,
	})
}

func (LayoutTracer) BoundaryFailure(scope string, err error) {
	if err == nil {
		return
	}
	logging.Trace("layout.boundary.failure", map[string]interface{}{"scope": scope, "error": err.Error()})
}

func (NavTracer) Navigate(path string) {
	logging.Trace("nav.navigate", map[string]interface{}{"path": path})
}

func (NavTracer) Filter(query string, matches int) {
	logging.Trace("nav.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (NavTracer) Cursor(cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"cursor": cursor})
}

func (NavTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.error", map[string]interface{}{"path": path, "error": err.Error()})
}
