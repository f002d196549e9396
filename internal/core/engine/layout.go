package engine

import (
	"github.com/colonyops/gridcore/internal/core/columns"
	"github.com/colonyops/gridcore/internal/core/grid"
)

// A column order change invalidates any cell range: its coordinates were
// resolved against the old display order. A width change does not.

// Layout returns the current column layout snapshot.
func (e *Engine[T]) Layout() columns.Layout { return e.layout.Layout() }

// DisplayOrder returns the visible column keys, left pins first, then the
// free region, then right pins.
func (e *Engine[T]) DisplayOrder() []string { return e.layout.DisplayOrder() }

// ToggleColumn flips a column's visibility. The last visible column cannot
// be hidden.
func (e *Engine[T]) ToggleColumn(key string) {
	if !e.layout.ToggleVisibility(key) {
		return
	}
	e.columnsMutated(true)
}

// PinColumn pins a column to a side, or unpins with grid.PinNone. An
// unpinned column resumes its unified-order position.
func (e *Engine[T]) PinColumn(key string, side grid.Pin) {
	if !e.layout.Pin(key, side) {
		return
	}
	e.columnsMutated(true)
}

// ResizeColumn adjusts a column's width by delta, clamped to its bounds.
func (e *Engine[T]) ResizeColumn(key string, delta int) {
	if _, ok := e.layout.Resize(key, delta); !ok {
		return
	}
	e.columnsMutated(false)
}

// ReorderColumn moves a visible column to a new display index in one step.
// Moves that would cross a pin partition are rejected.
func (e *Engine[T]) ReorderColumn(key string, toIndex int) {
	if !e.layout.Reorder(key, toIndex) {
		return
	}
	e.columnsMutated(true)
}

// BeginColumnDrag starts a header drag gesture on a column.
func (e *Engine[T]) BeginColumnDrag(key string) { e.layout.BeginDrag(key) }

// ColumnDragOver updates the drag's hover target column.
func (e *Engine[T]) ColumnDragOver(key string) { e.layout.DragOver(key) }

// CommitColumnDrag drops the dragged column at the hover target.
func (e *Engine[T]) CommitColumnDrag(target string) {
	if !e.layout.CommitDrag(target) {
		return
	}
	e.columnsMutated(true)
}

// AbortColumnDrag cancels the drag without touching the order.
func (e *Engine[T]) AbortColumnDrag() { e.layout.AbortDrag() }

// LeftOffset returns a left-pinned column's running offset from the left
// edge.
func (e *Engine[T]) LeftOffset(key string) int { return e.layout.LeftOffset(key) }

// RightOffset returns a right-pinned column's running offset from the
// right edge.
func (e *Engine[T]) RightOffset(key string) int { return e.layout.RightOffset(key) }

func (e *Engine[T]) columnsMutated(orderChanged bool) {
	e.visColsDirty = true
	if orderChanged {
		e.ranges.Clear()
	}
	e.pipe.Invalidate()
	e.refresh()
	e.observer.ColumnsChanged(e.layout.Layout())
}

// CellText renders the display text of one visible cell, by visible row
// index and column key.
func (e *Engine[T]) CellText(row int, colKey string) string {
	visible := e.visibleRows(e.compute())
	if row < 0 || row >= len(visible) {
		return ""
	}
	col, ok := e.colsByKey[colKey]
	if !ok {
		return ""
	}
	return grid.CellText(col, visible[row].Row)
}
