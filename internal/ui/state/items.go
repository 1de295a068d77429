package state

import "github.com/atomicstack/formshell/internal/nav"

// CloneItems produces a shallow copy of the provided navigation items.
func CloneItems(items []nav.Item) []nav.Item {
	dup := make([]nav.Item, len(items))
	copy(dup, items)
	return dup
}
