package ui

// ViewportClass is the responsive classification of the terminal size.
type ViewportClass int

const (
	Desktop ViewportClass = iota
	Mobile
)

// DefaultMobileBreakpoint is the width below which the shell switches to the
// mobile arrangement.
const DefaultMobileBreakpoint = 80

func (c ViewportClass) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classify maps a width to a viewport class. Unknown widths (<= 0) are
// treated as desktop.
func Classify(width, breakpoint int) ViewportClass {
	if breakpoint <= 0 {
		breakpoint = DefaultMobileBreakpoint
	}
	if width > 0 && width < breakpoint {
		return Mobile
	}
	return Desktop
}
