package engine

import (
	"github.com/colonyops/gridcore/internal/core/edit"
	"github.com/colonyops/gridcore/internal/core/grid"
)

// StartEdit opens an edit session on a visible cell, seeded with the
// cell's current display text. Starting on a non-editable column is a
// no-op; starting while another session is open cancels it first.
func (e *Engine[T]) StartEdit(row int, colKey string) bool {
	visible := e.visibleRows(e.compute())
	if row < 0 || row >= len(visible) {
		return false
	}
	col, ok := e.colsByKey[colKey]
	if !ok {
		e.logger.Warn().Str("column", colKey).Msg("edit request for unknown column")
		return false
	}
	spec := edit.ColumnSpec{
		Key:      col.Key,
		Editable: col.Editable,
		Kind:     col.Kind,
		Validate: col.Validate,
	}
	if !e.editor.Start(row, visible[row].Key, spec, grid.CellText(col, visible[row].Row)) {
		return false
	}
	// Only a session actually replaced orphans its in-flight commit.
	e.pendingEdit = nil
	return true
}

// StageEdit replaces the session's draft text, clearing any prior
// validation error.
func (e *Engine[T]) StageEdit(text string) { e.editor.Stage(text) }

// SaveEdit validates and commits the draft. Validation failure keeps the
// session open with the error recorded. A pending status means the host's
// commit callback deferred; settle it with ResolveEdit and the returned
// generation token.
func (e *Engine[T]) SaveEdit() (edit.CommitStatus, int) {
	st := e.editor.State()
	status, gen := e.editor.Save()
	switch status {
	case edit.StatusSaved:
		if st != nil {
			e.observer.EditCommitted(st.RowKey, st.ColumnKey, st.Pending)
		}
	case edit.StatusPending:
		if st != nil {
			snapshot := *st
			e.pendingEdit = &snapshot
		}
	}
	return status, gen
}

// ResolveEdit settles a deferred commit. Resolutions carrying a stale
// generation are discarded, so a session cancelled and reopened while a
// commit was in flight cannot be clobbered by the old result.
func (e *Engine[T]) ResolveEdit(gen int, ok bool) bool {
	applied := e.editor.Resolve(gen, ok)
	if applied && ok && e.pendingEdit != nil {
		e.observer.EditCommitted(e.pendingEdit.RowKey, e.pendingEdit.ColumnKey, e.pendingEdit.Pending)
	}
	if applied {
		e.pendingEdit = nil
	}
	return applied
}

// CancelEdit discards the session without committing.
func (e *Engine[T]) CancelEdit() {
	e.pendingEdit = nil
	e.editor.Cancel()
}

// EditState returns the open session snapshot, nil when no edit is open.
func (e *Engine[T]) EditState() *edit.State { return e.editor.State() }

// Editing reports whether an edit session is open.
func (e *Engine[T]) Editing() bool { return e.editor.Open() }
