package state

// MoveCursorUp moves the highlight one entry up, wrapping to the bottom.
func (l *List) MoveCursorUp() bool {
	return l.step(-1)
}

// MoveCursorDown moves the highlight one entry down, wrapping to the top.
func (l *List) MoveCursorDown() bool {
	return l.step(1)
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	return l.jump(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	return l.jump(len(l.Items) - 1)
}

func (l *List) step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	if n == 1 {
		return false
	}
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return true
}

func (l *List) jump(target int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = target
	return old != l.Cursor
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// maxVisible rows.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+maxVisible {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}

// Visible returns the window of items starting at the viewport offset.
func (l *List) Visible(maxVisible int) ([]int, bool) {
	if maxVisible <= 0 || maxVisible >= len(l.Items) {
		idx := make([]int, len(l.Items))
		for i := range idx {
			idx[i] = i
		}
		return idx, false
	}
	l.EnsureCursorVisible(maxVisible)
	idx := make([]int, 0, maxVisible)
	for i := l.ViewportOffset; i < l.ViewportOffset+maxVisible; i++ {
		idx = append(idx, i)
	}
	return idx, true
}
