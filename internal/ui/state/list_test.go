package state

import (
	"testing"

	"github.com/atomicstack/formshell/internal/nav"
)

func testItems() []nav.Item {
	return []nav.Item{
		{Title: "Home", Path: "/", Icon: nav.IconHome},
		{Title: "Sign up", Path: "/signup", Icon: nav.IconForm},
		{Title: "Settings", Path: "/settings", Icon: nav.IconSettings},
		{Title: "Debug Tools", Path: "/debug", Icon: nav.IconDebug},
	}
}

func TestNewListStartsAtFirstItem(t *testing.T) {
	l := NewList(testItems())
	item, ok := l.Current()
	if !ok || item.Path != "/" {
		t.Fatalf("expected cursor on home, got %#v (ok=%v)", item, ok)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	l := NewList(testItems())
	if !l.MoveCursorUp() || l.Cursor != 3 {
		t.Fatalf("expected wrap to last item, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", l.Cursor)
	}
	single := NewList(testItems()[:1])
	if single.MoveCursorDown() {
		t.Fatalf("expected no movement with a single item")
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := NewList(testItems())
	if !l.MoveCursorEnd() || l.Cursor != 3 {
		t.Fatalf("expected end at 3, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected home at 0, got %d", l.Cursor)
	}
	empty := NewList(nil)
	if empty.MoveCursorHome() || empty.MoveCursorEnd() {
		t.Fatalf("expected no movement on empty list")
	}
}

func TestFilterNarrowsAndRestoresCursor(t *testing.T) {
	l := NewList(testItems())
	l.Cursor = 2
	if !l.InsertFilterText("sign") {
		t.Fatalf("expected insert to succeed")
	}
	if len(l.Items) != 1 || l.Items[0].Path != "/signup" {
		t.Fatalf("expected only sign up to match, got %#v", l.Items)
	}
	if l.FilterCursorPos() != 4 {
		t.Fatalf("expected filter cursor at 4, got %d", l.FilterCursorPos())
	}
	if !l.ClearFilter() {
		t.Fatalf("expected clear to report change")
	}
	if len(l.Items) != 4 || l.Cursor != 2 {
		t.Fatalf("expected full list with restored cursor, got %d items cursor %d", len(l.Items), l.Cursor)
	}
	if l.ClearFilter() {
		t.Fatalf("expected clearing an empty filter to be a no-op")
	}
}

func TestFilterFallsBackToPath(t *testing.T) {
	got := FilterItems(testItems(), "/debug")
	if len(got) != 1 || got[0].Title != "Debug Tools" {
		t.Fatalf("expected path match, got %#v", got)
	}
}

func TestDeleteFilterRuneBackward(t *testing.T) {
	l := NewList(testItems())
	l.InsertFilterText("se")
	if !l.DeleteFilterRuneBackward() || l.Filter != "s" {
		t.Fatalf("expected filter 's', got %q", l.Filter)
	}
	l.DeleteFilterRuneBackward()
	if l.DeleteFilterRuneBackward() {
		t.Fatalf("expected no deletion on empty filter")
	}
}

func TestBestMatchPrefersPrefix(t *testing.T) {
	if idx := BestMatchIndex(testItems(), "set"); idx != 2 {
		t.Fatalf("expected settings, got %d", idx)
	}
	if idx := BestMatchIndex(testItems(), "home"); idx != 0 {
		t.Fatalf("expected exact match, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for no items, got %d", idx)
	}
}

func TestSelectAndIndexOf(t *testing.T) {
	l := NewList(testItems())
	if !l.Select("/settings") || l.Cursor != 2 {
		t.Fatalf("expected cursor on settings, got %d", l.Cursor)
	}
	if l.Select("/settings") {
		t.Fatalf("expected reselect to be a no-op")
	}
	if l.Select("/missing") {
		t.Fatalf("expected unknown path to be ignored")
	}
	if idx := l.IndexOf("/signup/"); idx != 1 {
		t.Fatalf("expected trailing slash to match, got %d", idx)
	}
}

func TestVisibleWindowFollowsCursor(t *testing.T) {
	l := NewList(testItems())
	l.MoveCursorEnd()
	idx, clipped := l.Visible(2)
	if !clipped || len(idx) != 2 || idx[0] != 2 || idx[1] != 3 {
		t.Fatalf("expected window [2 3], got %v (clipped=%v)", idx, clipped)
	}
	l.MoveCursorHome()
	idx, _ = l.Visible(2)
	if idx[0] != 0 {
		t.Fatalf("expected window to scroll back to top, got %v", idx)
	}
	all, clipped := l.Visible(0)
	if clipped || len(all) != 4 {
		t.Fatalf("expected unclipped list, got %v", all)
	}
}
