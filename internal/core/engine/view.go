package engine

import (
	"github.com/colonyops/gridcore/internal/core/columns"
	"github.com/colonyops/gridcore/internal/core/edit"
	"github.com/colonyops/gridcore/internal/core/grid"
)

// RowView is one visible row with its per-row render state resolved.
type RowView[T any] struct {
	Row T
	Key grid.Key
	// Index is the row's position in the visible list, the coordinate
	// space of focus, active row, and cell ranges.
	Index    int
	Selected bool
	Active   bool
	Focused  bool
}

// GroupView is one group on the current page. Collapsed groups keep their
// header visible with Rows empty.
type GroupView[T any] struct {
	Key      string
	Expanded bool
	// Count is the group's full row count on this page, shown on the
	// header even when collapsed.
	Count int
	Rows  []RowView[T]
}

// ViewState is the complete derived render state for one frame. Hosts
// read Rows when ungrouped and Groups when grouped.
type ViewState[T any] struct {
	Columns []grid.Column[T]
	Layout  columns.Layout

	Rows   []RowView[T]
	Groups []GroupView[T]

	Page          int
	TotalPages    int
	FilteredCount int

	AllSelected   bool
	Indeterminate bool
	SelectedCount int

	Edit    *edit.State
	Callout string
	Loading bool
}

// View derives the current frame. It is cheap to call repeatedly; the
// pipeline memoizes its last computation.
func (e *Engine[T]) View() ViewState[T] {
	out := e.compute()

	order := e.layout.DisplayOrder()
	cols := make([]grid.Column[T], 0, len(order))
	for _, key := range order {
		cols = append(cols, e.colsByKey[key])
	}

	scope := e.scopeKeys(out)
	vs := ViewState[T]{
		Columns:       cols,
		Layout:        e.layout.Layout(),
		Page:          out.Page,
		TotalPages:    out.TotalPages,
		FilteredCount: len(out.Filtered),
		AllSelected:   e.sel.IsAllSelected(scope),
		Indeterminate: e.sel.IsIndeterminate(scope),
		SelectedCount: e.sel.Count(),
		Edit:          e.editor.State(),
		Callout:       e.callout.Active(),
		Loading:       e.loading,
	}

	if e.group.Active() && out.PagedGroups != nil {
		index := 0
		vs.Groups = make([]GroupView[T], 0, len(out.PagedGroups))
		for _, g := range out.PagedGroups {
			gv := GroupView[T]{
				Key:      g.Key,
				Expanded: e.group.IsExpanded(g.Key),
				Count:    len(g.Rows),
			}
			if gv.Expanded {
				gv.Rows = make([]RowView[T], 0, len(g.Rows))
				for _, k := range g.Rows {
					gv.Rows = append(gv.Rows, e.rowView(k, index))
					index++
				}
			}
			vs.Groups = append(vs.Groups, gv)
		}
		return vs
	}

	vs.Rows = make([]RowView[T], 0, len(out.Paged))
	for i, k := range out.Paged {
		vs.Rows = append(vs.Rows, e.rowView(k, i))
	}
	return vs
}

func (e *Engine[T]) rowView(k keyedRow[T], index int) RowView[T] {
	return RowView[T]{
		Row:      k.Row,
		Key:      k.Key,
		Index:    index,
		Selected: e.sel.IsSelected(k.Key),
		Active:   e.sel.ActiveIndex() == index,
		Focused:  e.nav.Focused() == index,
	}
}
