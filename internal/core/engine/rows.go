package engine

import (
	"github.com/colonyops/gridcore/internal/core/pipeline"
	"github.com/colonyops/gridcore/internal/core/rowdrag"
)

// Row drag gestures run over visible row indices. On commit the engine
// maps the visible endpoints back to canonical positions, builds the new
// canonical order, and hands it to the observer; the host adopts it by
// calling SetRows.

// BeginRowDrag starts dragging the visible row at index.
func (e *Engine[T]) BeginRowDrag(index int) {
	e.rowDrag.Begin(index, e.VisibleCount())
}

// RowDragOver updates the drag's hover position.
func (e *Engine[T]) RowDragOver(index int) {
	e.rowDrag.Update(index, e.VisibleCount())
}

// RowDragging reports whether a row drag is in progress.
func (e *Engine[T]) RowDragging() bool { return e.rowDrag.Dragging() }

// RowDragState returns the dragged row's visible index and the current
// hover index.
func (e *Engine[T]) RowDragState() (from, over int) { return e.rowDrag.State() }

// CommitRowDrag drops the dragged row at the target visible index. When
// grouped, drops outside the dragged row's group are rejected and the
// gesture aborts. The reordered canonical rows go to the observer; the
// engine's own data is untouched until the host calls SetRows.
func (e *Engine[T]) CommitRowDrag(target int) bool {
	out := e.compute()
	visible := e.visibleRows(out)
	from, to, ok := e.rowDrag.Commit(target, len(visible))
	if !ok {
		return false
	}
	if e.group.Active() && e.groupOf(out, from) != e.groupOf(out, to) {
		e.logger.Debug().Int("from", from).Int("to", to).Msg("rejecting row drop across groups")
		return false
	}

	srcFrom := visible[from].SourceIndex
	srcTo := visible[to].SourceIndex
	reordered := rowdrag.Move(e.rows, srcFrom, srcTo)
	e.observer.RowsReordered(reordered, e.rows[srcFrom], srcFrom, srcTo)
	return true
}

// AbortRowDrag cancels the gesture without reordering.
func (e *Engine[T]) AbortRowDrag() { e.rowDrag.Abort() }

// groupOf returns the group key of a visible row index, walking the
// expanded groups of the current page.
func (e *Engine[T]) groupOf(out pipeline.Result[keyedRow[T]], index int) string {
	for _, g := range out.PagedGroups {
		if !e.group.IsExpanded(g.Key) {
			continue
		}
		if index < len(g.Rows) {
			return g.Key
		}
		index -= len(g.Rows)
	}
	return ""
}
