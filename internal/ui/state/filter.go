package state

import (
	"sort"
	"strings"

	"github.com/atomicstack/formshell/internal/nav"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the query. The cursor jumps to the best match while a
// query is active and returns to its previous position once cleared.
func (l *List) SetFilter(query string, cursor int) {
	active := strings.TrimSpace(query) != ""
	wasActive := strings.TrimSpace(l.Filter) != ""
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))
	switch {
	case active && !wasActive:
		l.LastCursor = l.Cursor
	case !active && wasActive:
		l.applyFilter()
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
		return
	}
	l.applyFilter()
	if active {
		l.Cursor = BestMatchIndex(l.Items, query)
		if l.Cursor < 0 {
			l.Cursor = 0
		}
	}
}

// ClearFilter drops the query. It reports whether anything changed.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

// InsertFilterText inserts text at the filter cursor.
func (l *List) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward removes the rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *List) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

func (l *List) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterItems returns the items whose title fuzzily matches query, falling
// back to a substring match on title or path.
func FilterItems(items []nav.Item, query string) []nav.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, titles); len(ranks) > 0 {
		matched := make([]int, 0, len(ranks))
		for _, rank := range ranks {
			matched = append(matched, rank.OriginalIndex)
		}
		sort.Ints(matched)
		out := make([]nav.Item, 0, len(matched))
		for _, idx := range matched {
			out = append(out, items[idx])
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]nav.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), lower) || strings.Contains(strings.ToLower(item.Path), lower) {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex ranks exact title matches first, then title prefixes, then
// the closest fuzzy match.
func BestMatchIndex(items []nav.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Title, trimmed) || item.Path == trimmed {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Title), lower) {
			return i
		}
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return 0
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks[0].OriginalIndex
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
