package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	TopBar         *lipgloss.Style
	TopBarTitle    *lipgloss.Style
	TopBarAction   *lipgloss.Style
	Drawer         *lipgloss.Style
	DrawerItem     *lipgloss.Style
	DrawerSelected *lipgloss.Style
	DrawerFilter   *lipgloss.Style
	Content        *lipgloss.Style
	BottomBar      *lipgloss.Style
	BottomItem     *lipgloss.Style
	BottomActive   *lipgloss.Style
	Help           *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Heading        *lipgloss.Style
	FieldLabel     *lipgloss.Style
	FieldFocused   *lipgloss.Style
	FieldError     *lipgloss.Style
	Fallback       *lipgloss.Style
}

type palette struct {
	fg, muted, accent, surface, raised, danger, ok lipgloss.Color
}

var (
	lightPalette = palette{
		fg:      lipgloss.Color("235"),
		muted:   lipgloss.Color("244"),
		accent:  lipgloss.Color("25"),
		surface: lipgloss.Color("255"),
		raised:  lipgloss.Color("253"),
		danger:  lipgloss.Color("160"),
		ok:      lipgloss.Color("28"),
	}
	darkPalette = palette{
		fg:      lipgloss.Color("252"),
		muted:   lipgloss.Color("243"),
		accent:  lipgloss.Color("33"),
		surface: lipgloss.Color("235"),
		raised:  lipgloss.Color("238"),
		danger:  lipgloss.Color("196"),
		ok:      lipgloss.Color("34"),
	}

	lightStyles = build(lightPalette)
	darkStyles  = build(darkPalette)
)

func build(p palette) Styles {
	return Styles{
		TopBar:         ptr(lipgloss.NewStyle().Foreground(p.fg).Background(p.raised).Padding(0, 1)),
		TopBarTitle:    ptr(lipgloss.NewStyle().Foreground(p.accent).Background(p.raised).Bold(true)),
		TopBarAction:   ptr(lipgloss.NewStyle().Foreground(p.fg).Background(p.raised)),
		Drawer:         ptr(lipgloss.NewStyle().Foreground(p.fg).BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(p.muted)),
		DrawerItem:     ptr(lipgloss.NewStyle().Foreground(p.fg)),
		DrawerSelected: ptr(lipgloss.NewStyle().Foreground(p.surface).Background(p.accent).Bold(true)),
		DrawerFilter:   ptr(lipgloss.NewStyle().Foreground(p.muted)),
		Content:        ptr(lipgloss.NewStyle().Foreground(p.fg).Padding(0, 1)),
		BottomBar:      ptr(lipgloss.NewStyle().Foreground(p.fg).Background(p.raised)),
		BottomItem:     ptr(lipgloss.NewStyle().Foreground(p.muted).Background(p.raised).Padding(0, 1)),
		BottomActive:   ptr(lipgloss.NewStyle().Foreground(p.accent).Background(p.raised).Padding(0, 1).Bold(true)),
		Help:           ptr(lipgloss.NewStyle().Foreground(p.muted)),
		Error:          ptr(lipgloss.NewStyle().Foreground(p.danger).Bold(true)),
		Info:           ptr(lipgloss.NewStyle().Foreground(p.ok)),
		Heading:        ptr(lipgloss.NewStyle().Foreground(p.accent).Bold(true)),
		FieldLabel:     ptr(lipgloss.NewStyle().Foreground(p.muted)),
		FieldFocused:   ptr(lipgloss.NewStyle().Foreground(p.accent).Bold(true)),
		FieldError:     ptr(lipgloss.NewStyle().Foreground(p.danger)),
		Fallback:       ptr(lipgloss.NewStyle().Foreground(p.danger).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.danger).Padding(0, 1)),
	}
}

// Default exposes the light style set.
func Default() *Styles {
	return &lightStyles
}

// Dark exposes the dark style set.
func Dark() *Styles {
	return &darkStyles
}

// ForMode picks the style set matching the dark-mode flag.
func ForMode(dark bool) *Styles {
	if dark {
		return Dark()
	}
	return Default()
}

var icons = map[string]string{
	"home":     "⌂",
	"form":     "✎",
	"settings": "⚙",
	"debug":    "⚑",
	"menu":     "☰",
	"dark":     "☾",
	"light":    "☀",
}

// Icon resolves an icon identifier to its glyph. Unknown identifiers render
// as a bullet.
func Icon(id string) string {
	if glyph, ok := icons[id]; ok {
		return glyph
	}
	return "•"
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
