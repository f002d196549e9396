// Package events defines the engine's host notification surface. Instead of
// threading optional callbacks through every call site, hosts implement
// Observer, one method per event kind, and embed Nop for the events they
// do not care about. Dispatch is synchronous: every notification runs to
// completion inside the mutation that caused it.
package events

import (
	"github.com/colonyops/gridcore/internal/core/columns"
	"github.com/colonyops/gridcore/internal/core/grid"
)

// Observer receives engine state change notifications. Implementations
// must not call back into the engine from a notification.
type Observer[T any] interface {
	// SelectionChanged delivers the materialized selected rows in current
	// filtered order, not just their keys.
	SelectionChanged(selected []T)
	// ActiveRowChanged reports the new active row index, -1 when cleared.
	ActiveRowChanged(index int)
	SortChanged(s grid.SortState)
	FilterChanged(f grid.FilterState)
	GroupingChanged(field string)
	GroupToggled(groupKey string, expanded bool)
	PageChanged(page, totalPages int)
	// ColumnsChanged fires on any reorder, pin, visibility, or resize.
	ColumnsChanged(layout columns.Layout)
	// RowsReordered hands the host the new canonical order to adopt; the
	// engine does not apply it itself.
	RowsReordered(rows []T, moved T, from, to int)
	EditCommitted(rowKey grid.Key, columnKey, value string)
}

// Nop is the no-op Observer. Hosts embed it so they only implement the
// events they need.
type Nop[T any] struct{}

func (Nop[T]) SelectionChanged([]T)                   {}
func (Nop[T]) ActiveRowChanged(int)                   {}
func (Nop[T]) SortChanged(grid.SortState)             {}
func (Nop[T]) FilterChanged(grid.FilterState)         {}
func (Nop[T]) GroupingChanged(string)                 {}
func (Nop[T]) GroupToggled(string, bool)              {}
func (Nop[T]) PageChanged(int, int)                   {}
func (Nop[T]) ColumnsChanged(columns.Layout)          {}
func (Nop[T]) RowsReordered([]T, T, int, int)         {}
func (Nop[T]) EditCommitted(grid.Key, string, string) {}

// Observers fans every event out to each member in order.
type Observers[T any] []Observer[T]

func (o Observers[T]) SelectionChanged(selected []T) {
	for _, obs := range o {
		obs.SelectionChanged(selected)
	}
}

func (o Observers[T]) ActiveRowChanged(index int) {
	for _, obs := range o {
		obs.ActiveRowChanged(index)
	}
}

func (o Observers[T]) SortChanged(s grid.SortState) {
	for _, obs := range o {
		obs.SortChanged(s)
	}
}

func (o Observers[T]) FilterChanged(f grid.FilterState) {
	for _, obs := range o {
		obs.FilterChanged(f)
	}
}

func (o Observers[T]) GroupingChanged(field string) {
	for _, obs := range o {
		obs.GroupingChanged(field)
	}
}

func (o Observers[T]) GroupToggled(groupKey string, expanded bool) {
	for _, obs := range o {
		obs.GroupToggled(groupKey, expanded)
	}
}

func (o Observers[T]) PageChanged(page, totalPages int) {
	for _, obs := range o {
		obs.PageChanged(page, totalPages)
	}
}

func (o Observers[T]) ColumnsChanged(layout columns.Layout) {
	for _, obs := range o {
		obs.ColumnsChanged(layout)
	}
}

func (o Observers[T]) RowsReordered(rows []T, moved T, from, to int) {
	for _, obs := range o {
		obs.RowsReordered(rows, moved, from, to)
	}
}

func (o Observers[T]) EditCommitted(rowKey grid.Key, columnKey, value string) {
	for _, obs := range o {
		obs.EditCommitted(rowKey, columnKey, value)
	}
}
