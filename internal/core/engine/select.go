package engine

import (
	"github.com/colonyops/gridcore/internal/core/grid"
	"github.com/colonyops/gridcore/internal/core/selection"
)

// ToggleSelect flips one row's membership by key. Single mode replaces the
// selection; toggling the selected row clears it.
func (e *Engine[T]) ToggleSelect(key grid.Key) {
	if e.sel.Mode() == selection.ModeNone {
		return
	}
	e.sel.Toggle(key)
	e.notifySelection()
}

// ToggleSelectAt flips the row at a visible index. Out-of-range indices
// no-op.
func (e *Engine[T]) ToggleSelectAt(index int) {
	visible := e.visibleRows(e.compute())
	if index < 0 || index >= len(visible) {
		return
	}
	e.ToggleSelect(visible[index].Key)
}

// SelectAll checks or unchecks the select-all box. With checked true the
// configured scope's keys become the selection; false clears the entire
// selection.
func (e *Engine[T]) SelectAll(checked bool) {
	e.sel.SelectAll(checked, e.scopeKeys(e.compute()))
	e.notifySelection()
}

// ClearSelection deselects everything.
func (e *Engine[T]) ClearSelection() {
	if e.sel.Count() == 0 {
		return
	}
	e.sel.SelectAll(false, e.filteredKeys(e.compute()))
	e.notifySelection()
}

// SetActiveRow highlights the row at a visible index. Out-of-range clears
// the active row.
func (e *Engine[T]) SetActiveRow(index int) {
	prev := e.sel.ActiveIndex()
	e.sel.SetActive(index, e.VisibleCount())
	if e.sel.ActiveIndex() != prev {
		e.observer.ActiveRowChanged(e.sel.ActiveIndex())
	}
}

// ActiveRow returns the active visible row index, -1 when none.
func (e *Engine[T]) ActiveRow() int { return e.sel.ActiveIndex() }

// IsSelected reports one key's membership.
func (e *Engine[T]) IsSelected(key grid.Key) bool { return e.sel.IsSelected(key) }

// SelectedCount returns the number of selected keys, including keys no
// longer present in the filtered set.
func (e *Engine[T]) SelectedCount() int { return e.sel.Count() }

// SelectedRows materializes the selected rows in current filtered order.
// Selected keys that fall outside the filtered set stay selected but are
// not returned.
func (e *Engine[T]) SelectedRows() []T {
	out := e.compute()
	rows := make([]T, 0, e.sel.Count())
	for _, k := range out.Filtered {
		if e.sel.IsSelected(k.Key) {
			rows = append(rows, k.Row)
		}
	}
	return rows
}

func (e *Engine[T]) notifySelection() {
	e.observer.SelectionChanged(e.SelectedRows())
}
