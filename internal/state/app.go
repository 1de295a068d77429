package state

// AppStore holds application-wide display state shared by the layout and
// the pages it hosts.
type AppStore interface {
	DarkMode() bool
	SetDarkMode(bool)
	ToggleDarkMode() bool
	Debug() bool
}

type appStore struct {
	darkMode bool
	debug    bool
}

// NewAppStore seeds the store. debug is fixed for the store lifetime.
func NewAppStore(darkMode, debug bool) AppStore {
	return &appStore{darkMode: darkMode, debug: debug}
}

func (s *appStore) DarkMode() bool {
	return s.darkMode
}

func (s *appStore) SetDarkMode(enabled bool) {
	s.darkMode = enabled
}

// ToggleDarkMode flips the flag and returns the new value.
func (s *appStore) ToggleDarkMode() bool {
	s.darkMode = !s.darkMode
	return s.darkMode
}

func (s *appStore) Debug() bool {
	return s.debug
}
