// Package pages holds the content models mounted by the application shell.
// Every page receives the region it may draw into as a tea.WindowSizeMsg and
// reads the active theme from the shared store on each render.
package pages

import (
	"strings"

	"github.com/atomicstack/formshell/internal/form"
	"github.com/atomicstack/formshell/internal/schema"
	"github.com/atomicstack/formshell/internal/state"
	"github.com/atomicstack/formshell/internal/theme"
)

// Deps are the collaborators shared by every page.
type Deps struct {
	Title  string
	Store  state.AppStore
	Form   *form.Form
	Schema *schema.Schema
}

func (d Deps) styles() *theme.Styles {
	if d.Store == nil {
		return theme.Default()
	}
	return theme.ForMode(d.Store.DarkMode())
}

var labelCleaner = strings.NewReplacer("_", " ", "-", " ")

// fieldLabel turns a field name into a display label.
func fieldLabel(name string) string {
	label := labelCleaner.Replace(strings.TrimSpace(name))
	if label == "" {
		return "(unnamed)"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
