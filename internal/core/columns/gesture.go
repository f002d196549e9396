package columns

// Column drag follows the engine's three-phase gesture protocol: Begin with
// the dragged key, Update with the hovered key (idempotent, repeatable),
// then Commit or Abort. Gesture state is ephemeral and fully reset on both
// outcomes.

// BeginDrag starts a column drag gesture. Unknown keys are ignored.
func (m *Manager) BeginDrag(key string) {
	if !m.Known(key) {
		m.logger.Warn().Str("key", key).Msg("column drag begin for unknown column")
		return
	}
	m.drag = &columnDrag{key: key}
}

// DragOver records the current hover target. Safe to call repeatedly.
func (m *Manager) DragOver(key string) {
	if m.drag == nil || !m.Known(key) {
		return
	}
	m.drag.over = key
}

// DragState returns the dragged and hovered keys, or empty strings when no
// gesture is in progress.
func (m *Manager) DragState() (dragged, over string) {
	if m.drag == nil {
		return "", ""
	}
	return m.drag.key, m.drag.over
}

// CommitDrag drops the dragged column at the target's display position and
// clears the gesture. Returns whether the layout changed.
func (m *Manager) CommitDrag(target string) bool {
	drag := m.drag
	m.drag = nil
	if drag == nil {
		return false
	}
	toIndex := indexOf(m.DisplayOrder(), target)
	if toIndex < 0 {
		return false
	}
	return m.Reorder(drag.key, toIndex)
}

// AbortDrag cancels the gesture without reordering.
func (m *Manager) AbortDrag() {
	m.drag = nil
}
