package engine

import "github.com/colonyops/gridcore/internal/core/grid"

// SetSort replaces the sort state. An unknown or unsortable column logs a
// warning and leaves the current state untouched.
func (e *Engine[T]) SetSort(field string, dir grid.Direction) {
	if field != "" {
		col, ok := e.colsByKey[field]
		if !ok || !col.Sortable {
			e.logger.Warn().Str("field", field).Msg("sort request for unknown or unsortable column")
			return
		}
	}
	e.sort = grid.SortState{Key: field, Direction: dir}
	e.refresh()
	e.observer.SortChanged(e.sort)
}

// ToggleSort cycles a column through ascending, descending, and back to
// ascending. Sorting a different column starts it ascending.
func (e *Engine[T]) ToggleSort(field string) {
	dir := grid.Ascending
	if e.sort.Key == field && e.sort.Direction == grid.Ascending {
		dir = grid.Descending
	}
	e.SetSort(field, dir)
}

// ClearSort removes the sort, restoring canonical row order.
func (e *Engine[T]) ClearSort() {
	e.sort = grid.SortState{}
	e.refresh()
	e.observer.SortChanged(e.sort)
}

// SetFilter replaces the accepted values for one field. An empty value
// list removes the field's filter. Unknown or unfilterable columns log a
// warning and no-op.
func (e *Engine[T]) SetFilter(field string, values ...string) {
	col, ok := e.colsByKey[field]
	if !ok || !col.Filterable {
		e.logger.Warn().Str("field", field).Msg("filter request for unknown or unfilterable column")
		return
	}
	if e.filter.Fields == nil {
		e.filter.Fields = make(map[string][]string)
	}
	if len(values) == 0 {
		delete(e.filter.Fields, field)
	} else {
		e.filter.Fields[field] = values
	}
	e.pipe.Invalidate()
	e.refresh()
	e.observer.FilterChanged(e.filter)
}

// SetSearch replaces the free-text search term. An empty term clears it.
func (e *Engine[T]) SetSearch(term string) {
	if e.filter.Search == term {
		return
	}
	e.filter.Search = term
	e.refresh()
	e.observer.FilterChanged(e.filter)
}

// ClearFilters drops every field filter and the search term.
func (e *Engine[T]) ClearFilters() {
	e.filter = grid.FilterState{}
	e.pipe.Invalidate()
	e.refresh()
	e.observer.FilterChanged(e.filter)
}

// Filter returns the current filter state.
func (e *Engine[T]) Filter() grid.FilterState { return e.filter }

// Sort returns the current sort state.
func (e *Engine[T]) Sort() grid.SortState { return e.sort }

// GroupBy groups rows by the given column; an empty field clears
// grouping. All groups start expanded.
func (e *Engine[T]) GroupBy(field string) {
	if field != "" {
		if _, ok := e.colsByKey[field]; !ok {
			e.logger.Warn().Str("field", field).Msg("group request for unknown column")
			return
		}
	}
	e.group = grid.GroupState{Field: field}
	e.ranges.Clear()
	e.refresh()
	e.observer.GroupingChanged(field)
}

// ToggleGroup flips one group's expanded state. Collapsing removes its
// rows from the visible list; pagination is unaffected.
func (e *Engine[T]) ToggleGroup(key string) {
	if !e.group.Active() {
		return
	}
	e.group.Toggle(key)
	e.ranges.Clear()
	e.refresh()
	e.observer.GroupToggled(key, e.group.IsExpanded(key))
}

// Group returns the current grouping state.
func (e *Engine[T]) Group() grid.GroupState { return e.group }

// SetPage moves to the requested page, clamped into the valid range.
func (e *Engine[T]) SetPage(page int) {
	out := e.compute()
	if page < 1 {
		page = 1
	}
	if page > out.TotalPages {
		page = out.TotalPages
	}
	if page == e.page.Page {
		return
	}
	e.page.Page = page
	e.ranges.Clear()
	count := e.VisibleCount()
	e.nav.Clamp(count)
	e.sel.SetActive(e.sel.ActiveIndex(), count)
	e.observer.PageChanged(page, out.TotalPages)
}

// SetItemsPerPage changes the page size. The current page is kept when it
// is still in range under the new size, otherwise it resets to 1. A
// non-positive size logs a warning and no-ops.
func (e *Engine[T]) SetItemsPerPage(n int) {
	if n <= 0 {
		e.logger.Warn().Int("items_per_page", n).Msg("rejecting non-positive page size")
		return
	}
	if n == e.page.ItemsPerPage {
		return
	}
	e.page.ItemsPerPage = n
	e.ranges.Clear()
	out := e.compute()
	e.page.Page = out.Page
	count := len(e.visibleRows(out))
	e.nav.Clamp(count)
	e.sel.SetActive(e.sel.ActiveIndex(), count)
	e.observer.PageChanged(out.Page, out.TotalPages)
}

// Page returns the current page state.
func (e *Engine[T]) Page() grid.PageState { return e.page }
