package state

import (
	"strings"

	"github.com/atomicstack/formshell/internal/nav"
)

// List tracks drawer navigation state: the full item set, the filtered view,
// the filter query and its cursor, the highlighted item and the viewport.
type List struct {
	Items          []nav.Item
	Full           []nav.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List with the cursor on the first item.
func NewList(items []nav.Item) *List {
	l := &List{LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index of the item with the given path.
func (l *List) IndexOf(path string) int {
	if path == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Path == path {
			return i
		}
	}
	trimmed := strings.TrimSuffix(path, "/")
	for i, item := range l.Items {
		if trimmed != "" && strings.TrimSuffix(item.Path, "/") == trimmed {
			return i
		}
	}
	return -1
}

// Current returns the highlighted item.
func (l *List) Current() (nav.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return nav.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// Select moves the cursor onto path when it is visible.
func (l *List) Select(path string) bool {
	idx := l.IndexOf(path)
	if idx < 0 || idx == l.Cursor {
		return false
	}
	l.Cursor = idx
	return true
}

// UpdateItems replaces the item set, keeping the filter and viewport where
// possible.
func (l *List) UpdateItems(items []nav.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
