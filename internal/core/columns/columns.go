// Package columns owns the column layout: visibility, display order, pin
// assignment, and widths. The order sequence is unified: it is never split
// by pin state. Pinned partitions are a derived view over it, which is what
// keeps pinned-left columns a contiguous prefix and pinned-right a
// contiguous suffix of the visible order, and what lets an unpinned column
// fall back to its free-flow position.
package columns

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/gridcore/internal/core/grid"
)

// Def is the layout-relevant slice of a column definition. The engine
// projects grid.Column values down to this so the manager stays
// row-type-agnostic.
type Def struct {
	Key       string
	Width     int
	MinWidth  int
	MaxWidth  int
	Resizable bool
	Pinned    grid.Pin
	Hidden    bool
}

// Layout is the snapshot handed to host observers on any layout change.
type Layout struct {
	// Order is the visible display order: pinned-left prefix, free-flow
	// middle, pinned-right suffix.
	Order  []string
	Pins   map[string]grid.Pin
	Widths map[string]int
	Hidden []string
}

const defaultWidth = 10

// Manager is the column layout state machine.
type Manager struct {
	logger  zerolog.Logger
	order   []string // unified order over all known keys, in definition order initially
	visible map[string]bool
	pins    map[string]grid.Pin
	widths  map[string]int
	defs    map[string]Def

	drag *columnDrag
}

type columnDrag struct {
	key  string
	over string
}

// NewManager builds a Manager from column definitions, preserving their
// input order as the initial display order.
func NewManager(defs []Def, logger zerolog.Logger) *Manager {
	m := &Manager{
		logger:  logger,
		visible: make(map[string]bool, len(defs)),
		pins:    make(map[string]grid.Pin, len(defs)),
		widths:  make(map[string]int, len(defs)),
		defs:    make(map[string]Def, len(defs)),
	}
	for _, def := range defs {
		if _, dup := m.defs[def.Key]; dup {
			logger.Warn().Str("key", def.Key).Msg("duplicate column key ignored")
			continue
		}
		m.order = append(m.order, def.Key)
		m.visible[def.Key] = !def.Hidden
		m.pins[def.Key] = def.Pinned
		width := def.Width
		if width <= 0 {
			width = defaultWidth
		}
		m.widths[def.Key] = clampWidth(width, def)
		m.defs[def.Key] = def
	}
	return m
}

// Known reports whether the key names a registered column.
func (m *Manager) Known(key string) bool {
	_, ok := m.defs[key]
	return ok
}

// DisplayOrder returns visible column keys: left-pinned, then free-flow,
// then right-pinned, each partition in unified order.
func (m *Manager) DisplayOrder() []string {
	out := make([]string, 0, len(m.order))
	for _, pin := range []grid.Pin{grid.PinLeft, grid.PinNone, grid.PinRight} {
		for _, key := range m.order {
			if m.visible[key] && m.pins[key] == pin {
				out = append(out, key)
			}
		}
	}
	return out
}

// VisibleCount returns the number of visible columns.
func (m *Manager) VisibleCount() int {
	n := 0
	for _, key := range m.order {
		if m.visible[key] {
			n++
		}
	}
	return n
}

// IsVisible reports whether a column is visible.
func (m *Manager) IsVisible(key string) bool { return m.visible[key] }

// ToggleVisibility flips a column's visibility. Hiding the last visible
// column is disallowed and no-ops. Returns whether the layout changed.
func (m *Manager) ToggleVisibility(key string) bool {
	if !m.Known(key) {
		m.logger.Warn().Str("key", key).Msg("visibility toggle for unknown column")
		return false
	}
	if m.visible[key] && m.VisibleCount() == 1 {
		return false
	}
	m.visible[key] = !m.visible[key]
	return true
}

// Pin assigns a column to a side, or back to the free-flow region with
// grid.PinNone. Because the unified order is untouched, unpinning restores
// the column to its previous free-flow position. Returns whether the
// layout changed.
func (m *Manager) Pin(key string, side grid.Pin) bool {
	if !m.Known(key) {
		m.logger.Warn().Str("key", key).Msg("pin request for unknown column")
		return false
	}
	if m.pins[key] == side {
		return false
	}
	m.pins[key] = side
	return true
}

// PinOf returns the column's pin side.
func (m *Manager) PinOf(key string) grid.Pin { return m.pins[key] }

// LastLeftPinned returns the boundary key of the left-pinned prefix, or ""
// when nothing is pinned left. Derived, never stored.
func (m *Manager) LastLeftPinned() string {
	last := ""
	for _, key := range m.DisplayOrder() {
		if m.pins[key] == grid.PinLeft {
			last = key
		}
	}
	return last
}

// FirstRightPinned returns the boundary key of the right-pinned suffix, or
// "" when nothing is pinned right.
func (m *Manager) FirstRightPinned() string {
	for _, key := range m.DisplayOrder() {
		if m.pins[key] == grid.PinRight {
			return key
		}
	}
	return ""
}

// Reorder moves a column to a display-order index. Drops that would cross
// a pin partition boundary are rejected as no-ops. Returns whether the
// layout changed.
func (m *Manager) Reorder(key string, toIndex int) bool {
	if !m.Known(key) {
		m.logger.Warn().Str("key", key).Msg("reorder request for unknown column")
		return false
	}

	display := m.DisplayOrder()
	if len(display) == 0 {
		return false
	}
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex >= len(display) {
		toIndex = len(display) - 1
	}
	target := display[toIndex]
	if target == key {
		return false
	}
	if m.pins[target] != m.pins[key] {
		// Cross-partition drags are rejected; pinned columns reorder
		// only among columns sharing their side.
		return false
	}

	from := indexOf(m.order, key)
	reduced := removeAt(m.order, from)
	at := indexOf(reduced, target)
	if from < indexOf(m.order, target) {
		at++ // dragging forward lands after the target
	}
	m.order = insertAt(reduced, at, key)
	return true
}

// Width returns the column's current width.
func (m *Manager) Width(key string) int { return m.widths[key] }

// Resize adjusts a column width by delta, clamped to the definition's
// min/max bounds. Non-resizable and unknown columns no-op. Returns the new
// width and whether it changed.
func (m *Manager) Resize(key string, delta int) (int, bool) {
	def, ok := m.defs[key]
	if !ok {
		m.logger.Warn().Str("key", key).Msg("resize request for unknown column")
		return 0, false
	}
	if !def.Resizable {
		return m.widths[key], false
	}
	next := clampWidth(m.widths[key]+delta, def)
	if next == m.widths[key] {
		return next, false
	}
	m.widths[key] = next
	return next, true
}

// LeftOffset returns the sticky offset for a left-pinned column: the sum of
// widths of visible left-pinned columns strictly before it. Columns not
// pinned left have offset zero.
func (m *Manager) LeftOffset(key string) int {
	if m.pins[key] != grid.PinLeft {
		return 0
	}
	offset := 0
	for _, k := range m.DisplayOrder() {
		if k == key {
			break
		}
		if m.pins[k] == grid.PinLeft {
			offset += m.widths[k]
		}
	}
	return offset
}

// RightOffset returns the sticky offset for a right-pinned column: the sum
// of widths of visible right-pinned columns strictly after it.
func (m *Manager) RightOffset(key string) int {
	if m.pins[key] != grid.PinRight {
		return 0
	}
	offset := 0
	display := m.DisplayOrder()
	for i := len(display) - 1; i >= 0; i-- {
		if display[i] == key {
			break
		}
		if m.pins[display[i]] == grid.PinRight {
			offset += m.widths[display[i]]
		}
	}
	return offset
}

// Layout returns the observer snapshot of the current layout.
func (m *Manager) Layout() Layout {
	l := Layout{
		Order:  m.DisplayOrder(),
		Pins:   make(map[string]grid.Pin, len(m.pins)),
		Widths: make(map[string]int, len(m.widths)),
	}
	for _, key := range m.order {
		l.Pins[key] = m.pins[key]
		l.Widths[key] = m.widths[key]
		if !m.visible[key] {
			l.Hidden = append(l.Hidden, key)
		}
	}
	return l
}

func clampWidth(w int, def Def) int {
	if def.MinWidth > 0 && w < def.MinWidth {
		w = def.MinWidth
	}
	if def.MaxWidth > 0 && w > def.MaxWidth {
		w = def.MaxWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

func removeAt(keys []string, i int) []string {
	out := make([]string, 0, len(keys)-1)
	out = append(out, keys[:i]...)
	return append(out, keys[i+1:]...)
}

func insertAt(keys []string, i int, key string) []string {
	if i < 0 {
		i = 0
	}
	if i > len(keys) {
		i = len(keys)
	}
	out := make([]string, 0, len(keys)+1)
	out = append(out, keys[:i]...)
	out = append(out, key)
	return append(out, keys[i:]...)
}
