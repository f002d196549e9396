// Package cellrange implements rectangular cell selection: an anchor set on
// gesture begin, a focus that follows the pointer, and a frozen state that
// marks the rectangle eligible for copy highlighting. The rectangle is
// always resolved against the visible grid at query time, so column
// coordinates are display positions, not definition order.
package cellrange

// Coord addresses one cell of the visible grid: a row index into the
// visible row list and a column key.
type Coord struct {
	Row int
	Col string
}

// Flags are the derived boundary flags for one cell of the active range.
type Flags struct {
	Selected bool
	Top      bool
	Bottom   bool
	Left     bool
	Right    bool
	// Start is the anchor cell, End the focus cell.
	Start bool
	End   bool
}

// Selector is the cell-range state machine.
type Selector struct {
	enabled bool
	active  bool
	frozen  bool
	anchor  Coord
	focus   Coord
}

// New creates a Selector. When disabled, every operation is a no-op.
func New(enabled bool) *Selector {
	return &Selector{enabled: enabled}
}

// Enabled reports whether range selection is configured on.
func (s *Selector) Enabled() bool { return s.enabled }

// Begin starts a new range with anchor and focus on the same cell,
// replacing any previous range.
func (s *Selector) Begin(row int, col string) {
	if !s.enabled {
		return
	}
	s.active = true
	s.frozen = false
	s.anchor = Coord{Row: row, Col: col}
	s.focus = s.anchor
}

// Extend moves the focus cell. Called repeatedly during a pointer drag;
// it is a no-op before Begin or after End.
func (s *Selector) Extend(row int, col string) {
	if !s.active || s.frozen {
		return
	}
	s.focus = Coord{Row: row, Col: col}
}

// End freezes the range, marking it eligible for copy highlighting.
func (s *Selector) End() {
	if !s.active {
		return
	}
	s.frozen = true
}

// Clear drops any in-progress or frozen range. The engine calls this on
// every column layout change and page change, which is the documented
// invalidation policy for stale rectangles.
func (s *Selector) Clear() {
	s.active = false
	s.frozen = false
}

// Active reports whether a range (in-progress or frozen) exists.
func (s *Selector) Active() bool { return s.active }

// Frozen reports whether the range has been ended and is copy-marked.
func (s *Selector) Frozen() bool { return s.frozen }

// IsSelected reports whether the cell falls inside the closed rectangle,
// resolved against the given display-order column keys.
func (s *Selector) IsSelected(row int, col string, displayOrder []string) bool {
	return s.FlagsAt(row, col, displayOrder).Selected
}

// FlagsAt computes the boundary flags for one cell against the current
// display order. A range whose anchor or focus column is no longer visible
// resolves to nothing.
func (s *Selector) FlagsAt(row int, col string, displayOrder []string) Flags {
	if !s.active {
		return Flags{}
	}

	anchorCol := indexOf(displayOrder, s.anchor.Col)
	focusCol := indexOf(displayOrder, s.focus.Col)
	cellCol := indexOf(displayOrder, col)
	if anchorCol < 0 || focusCol < 0 || cellCol < 0 {
		return Flags{}
	}

	top, bottom := ordered(s.anchor.Row, s.focus.Row)
	left, right := ordered(anchorCol, focusCol)
	if row < top || row > bottom || cellCol < left || cellCol > right {
		return Flags{}
	}

	return Flags{
		Selected: true,
		Top:      row == top,
		Bottom:   row == bottom,
		Left:     cellCol == left,
		Right:    cellCol == right,
		Start:    row == s.anchor.Row && cellCol == anchorCol,
		End:      row == s.focus.Row && cellCol == focusCol,
	}
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
