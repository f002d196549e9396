package engine

import "github.com/colonyops/gridcore/internal/core/cellrange"

// Cell range coordinates are visible row indices paired with column keys.
// The range survives until a column order change or page change drops it.

// BeginCellRange anchors a new range at a visible cell, replacing any
// existing range.
func (e *Engine[T]) BeginCellRange(row int, colKey string) {
	if row < 0 || row >= e.VisibleCount() || !e.layout.Known(colKey) {
		return
	}
	e.ranges.Begin(row, colKey)
}

// ExtendCellRange moves the range's focus corner.
func (e *Engine[T]) ExtendCellRange(row int, colKey string) {
	if row < 0 || row >= e.VisibleCount() || !e.layout.Known(colKey) {
		return
	}
	e.ranges.Extend(row, colKey)
}

// EndCellRange freezes the range at its current extent.
func (e *Engine[T]) EndCellRange() { e.ranges.End() }

// ClearCellRange drops the range.
func (e *Engine[T]) ClearCellRange() { e.ranges.Clear() }

// CellRangeActive reports whether a range exists.
func (e *Engine[T]) CellRangeActive() bool { return e.ranges.Active() }

// CellFlags resolves a visible cell's range membership and border edges
// against the current display order.
func (e *Engine[T]) CellFlags(row int, colKey string) cellrange.Flags {
	return e.ranges.FlagsAt(row, colKey, e.layout.DisplayOrder())
}
