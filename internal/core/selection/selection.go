// Package selection tracks row selection and the active row. Selection is
// defined over logical dataset membership (row keys), so it survives page
// navigation; the engine materializes selected rows for host callbacks.
package selection

import "github.com/colonyops/gridcore/internal/core/grid"

// Mode is the selection mode.
type Mode string

// Selection modes.
const (
	ModeNone     Mode = "none"
	ModeSingle   Mode = "single"
	ModeMultiple Mode = "multiple"
)

// Scope controls which rows SelectAll covers. The default is the full
// filtered set, so selection is consistent across pagination; page scope is
// an explicit configuration choice, never a hidden default.
type Scope string

// SelectAll scopes.
const (
	ScopeFiltered Scope = "filtered"
	ScopePage     Scope = "page"
)

// Manager owns the selection set and active-row index.
// Invariants: single mode holds at most one key; none mode holds zero.
type Manager struct {
	mode     Mode
	selected map[grid.Key]struct{}
	active   int // -1 when unset
}

// New creates a Manager in the given mode.
func New(mode Mode) *Manager {
	return &Manager{
		mode:     mode,
		selected: make(map[grid.Key]struct{}),
		active:   -1,
	}
}

// Mode returns the current selection mode.
func (m *Manager) Mode() Mode { return m.mode }

// SetMode switches modes. Any existing selection is cleared, since a
// multi-selection has no meaning in single or none mode.
func (m *Manager) SetMode(mode Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.selected = make(map[grid.Key]struct{})
}

// Toggle flips a key's membership. Single mode replaces the selection with
// the key, or clears it when the key was already selected. None mode is a
// no-op.
func (m *Manager) Toggle(key grid.Key) {
	switch m.mode {
	case ModeNone:
		return
	case ModeSingle:
		_, was := m.selected[key]
		m.selected = make(map[grid.Key]struct{})
		if !was {
			m.selected[key] = struct{}{}
		}
	case ModeMultiple:
		if _, ok := m.selected[key]; ok {
			delete(m.selected, key)
		} else {
			m.selected[key] = struct{}{}
		}
	}
}

// SelectAll sets the selection to exactly the given scope keys, or clears
// it. Only meaningful in multiple mode; other modes no-op on checked=true.
func (m *Manager) SelectAll(checked bool, scopeKeys []grid.Key) {
	if !checked {
		m.selected = make(map[grid.Key]struct{})
		return
	}
	if m.mode != ModeMultiple {
		return
	}
	m.selected = make(map[grid.Key]struct{}, len(scopeKeys))
	for _, k := range scopeKeys {
		m.selected[k] = struct{}{}
	}
}

// SetActive records the active row index, clamped into [0, visibleCount-1].
// A negative index or an empty list clears the active row.
func (m *Manager) SetActive(index, visibleCount int) {
	if index < 0 || visibleCount <= 0 {
		m.active = -1
		return
	}
	if index >= visibleCount {
		index = visibleCount - 1
	}
	m.active = index
}

// ActiveIndex returns the active row index, or -1 when unset.
func (m *Manager) ActiveIndex() int { return m.active }

// IsSelected reports whether a key is selected.
func (m *Manager) IsSelected(key grid.Key) bool {
	_, ok := m.selected[key]
	return ok
}

// Count returns the number of selected keys.
func (m *Manager) Count() int { return len(m.selected) }

// IsAllSelected reports whether every scope key is selected and the scope
// is non-empty.
func (m *Manager) IsAllSelected(scopeKeys []grid.Key) bool {
	if len(scopeKeys) == 0 {
		return false
	}
	for _, k := range scopeKeys {
		if _, ok := m.selected[k]; !ok {
			return false
		}
	}
	return true
}

// IsIndeterminate reports whether some but not all scope keys are selected.
func (m *Manager) IsIndeterminate(scopeKeys []grid.Key) bool {
	if len(scopeKeys) == 0 {
		return false
	}
	selected := 0
	for _, k := range scopeKeys {
		if _, ok := m.selected[k]; ok {
			selected++
		}
	}
	return selected > 0 && selected < len(scopeKeys)
}
