// Package rowdrag implements drag-to-reorder for rows as a three-phase
// gesture: Begin(sourceIndex), Update(targetIndex), Commit(targetIndex) or
// Abort. The manager only arbitrates the gesture; the engine materializes
// the reordered slice and hands it to the host, which re-supplies the data.
// The reorder is optimistic until then.
package rowdrag

// Manager is the row drag state machine. Indices are positions in the
// currently visible row list.
type Manager struct {
	enabled  bool
	dragging bool
	from     int
	over     int
}

// New creates a Manager. When disabled, every gesture is a no-op.
func New(enabled bool) *Manager {
	return &Manager{enabled: enabled, from: -1, over: -1}
}

// Enabled reports whether row reordering is configured on.
func (m *Manager) Enabled() bool { return m.enabled }

// Begin starts a drag from the given visible index.
func (m *Manager) Begin(index, visibleCount int) {
	if !m.enabled || index < 0 || index >= visibleCount {
		return
	}
	m.dragging = true
	m.from = index
	m.over = index
}

// Update records the current hover target. Idempotent and repeatable; out
// of range indices are clamped.
func (m *Manager) Update(index, visibleCount int) {
	if !m.dragging {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= visibleCount {
		index = visibleCount - 1
	}
	m.over = index
}

// Dragging reports whether a gesture is in progress.
func (m *Manager) Dragging() bool { return m.dragging }

// State returns the drag source and current hover target, or (-1, -1) when
// idle.
func (m *Manager) State() (from, over int) {
	if !m.dragging {
		return -1, -1
	}
	return m.from, m.over
}

// Commit ends the gesture and returns the source and target indices. ok is
// false when there was no gesture or the drop is a no-op (same position).
func (m *Manager) Commit(target, visibleCount int) (from, to int, ok bool) {
	if !m.dragging {
		return -1, -1, false
	}
	m.Update(target, visibleCount)
	from, to = m.from, m.over
	m.reset()
	if from == to {
		return from, to, false
	}
	return from, to, true
}

// Abort cancels the gesture.
func (m *Manager) Abort() {
	m.reset()
}

func (m *Manager) reset() {
	m.dragging = false
	m.from = -1
	m.over = -1
}

// Move returns a new slice with the element at from reinserted so that its
// final position is to. The input is never mutated; the host adopts the
// returned slice as the new canonical order.
func Move[T any](rows []T, from, to int) []T {
	out := make([]T, 0, len(rows))
	out = append(out, rows[:from]...)
	out = append(out, rows[from+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(out) {
		to = len(out)
	}
	out = append(out[:to], append([]T{rows[from]}, out[to:]...)...)
	return out
}
