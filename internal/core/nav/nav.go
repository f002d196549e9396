// Package nav tracks the keyboard-focused row over the currently visible
// row list. Arrow moves clamp at the list bounds; there is no wraparound.
package nav

// Navigator is the focused-row state machine. The focused index is either
// -1 (nothing focused) or a position in [0, visibleCount-1].
type Navigator struct {
	enabled bool
	loading bool
	focused int
}

// New creates a Navigator. When disabled, every operation is a no-op.
func New(enabled bool) *Navigator {
	return &Navigator{enabled: enabled, focused: -1}
}

// SetLoading suspends navigation while the table is in a loading state.
func (n *Navigator) SetLoading(loading bool) { n.loading = loading }

// Focused returns the focused row index, or -1.
func (n *Navigator) Focused() int { return n.focused }

// SetFocused sets the focus directly, clamped into the visible bounds.
// Negative indices or an empty list clear focus.
func (n *Navigator) SetFocused(index, visibleCount int) {
	if !n.active() {
		return
	}
	if index < 0 || visibleCount <= 0 {
		n.focused = -1
		return
	}
	if index >= visibleCount {
		index = visibleCount - 1
	}
	n.focused = index
}

// Move shifts focus by delta (ArrowUp/-1, ArrowDown/+1, or a paging
// stride), clamped to the visible bounds. Moving with no prior focus
// focuses the first row.
func (n *Navigator) Move(delta, visibleCount int) {
	if !n.active() || visibleCount <= 0 {
		return
	}
	if n.focused < 0 {
		n.focused = 0
		return
	}
	next := n.focused + delta
	if next < 0 {
		next = 0
	}
	if next >= visibleCount {
		next = visibleCount - 1
	}
	n.focused = next
}

// Home focuses the first visible row.
func (n *Navigator) Home(visibleCount int) {
	if !n.active() || visibleCount <= 0 {
		return
	}
	n.focused = 0
}

// End focuses the last visible row.
func (n *Navigator) End(visibleCount int) {
	if !n.active() || visibleCount <= 0 {
		return
	}
	n.focused = visibleCount - 1
}

// Clamp re-fits the focus after the visible list changed size.
func (n *Navigator) Clamp(visibleCount int) {
	if n.focused < 0 {
		return
	}
	if visibleCount <= 0 {
		n.focused = -1
		return
	}
	if n.focused >= visibleCount {
		n.focused = visibleCount - 1
	}
}

// Activate reports whether Enter/Space on the focused row should trigger
// the pointer-click effect, returning the focused index.
func (n *Navigator) Activate() (int, bool) {
	if !n.active() || n.focused < 0 {
		return -1, false
	}
	return n.focused, true
}

func (n *Navigator) active() bool { return n.enabled && !n.loading }
