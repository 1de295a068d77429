// Package nav holds the static navigation configuration shown in the side
// drawer and the bottom bar.
package nav

// Item is a single navigation entry.
type Item struct {
	Title string
	Path  string
	Icon  string
}

// Icon identifiers. The theme maps them to glyphs.
const (
	IconHome     = "home"
	IconForm     = "form"
	IconSettings = "settings"
	IconDebug    = "debug"
)

const (
	PathHome     = "/"
	PathSignup   = "/signup"
	PathSettings = "/settings"
	PathDebug    = "/debug"
)

// DebugItem is appended to both lists when debug tools are enabled.
var DebugItem = Item{Title: "Debug Tools", Path: PathDebug, Icon: IconDebug}

var sideItems = []Item{
	{Title: "Home", Path: PathHome, Icon: IconHome},
	{Title: "Sign up", Path: PathSignup, Icon: IconForm},
	{Title: "Settings", Path: PathSettings, Icon: IconSettings},
}

var bottomItems = []Item{
	{Title: "Home", Path: PathHome, Icon: IconHome},
	{Title: "Sign up", Path: PathSignup, Icon: IconForm},
	{Title: "Settings", Path: PathSettings, Icon: IconSettings},
}

// SideItems returns the drawer entries.
func SideItems(debug bool) []Item {
	return withDebug(sideItems, debug)
}

// BottomItems returns the bottom bar entries.
func BottomItems(debug bool) []Item {
	return withDebug(bottomItems, debug)
}

func withDebug(items []Item, debug bool) []Item {
	out := make([]Item, len(items), len(items)+1)
	copy(out, items)
	if debug {
		out = append(out, DebugItem)
	}
	return out
}

// Paths returns the paths of items in order.
func Paths(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Path
	}
	return out
}
