package events

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/gridcore/internal/core/columns"
	"github.com/colonyops/gridcore/internal/core/grid"
)

// DebugLogger returns an Observer that logs every event at debug level.
// Append it to an Observers fan-out to trace engine activity.
func DebugLogger[T any](logger zerolog.Logger) Observer[T] {
	return debugObserver[T]{logger: logger}
}

type debugObserver[T any] struct {
	Nop[T]
	logger zerolog.Logger
}

func (d debugObserver[T]) SelectionChanged(selected []T) {
	d.logger.Debug().Int("count", len(selected)).Msg("selection changed")
}

func (d debugObserver[T]) ActiveRowChanged(index int) {
	d.logger.Debug().Int("index", index).Msg("active row changed")
}

func (d debugObserver[T]) SortChanged(s grid.SortState) {
	d.logger.Debug().Str("key", s.Key).Str("direction", string(s.Direction)).Msg("sort changed")
}

func (d debugObserver[T]) FilterChanged(f grid.FilterState) {
	d.logger.Debug().Int("fields", len(f.Fields)).Str("search", f.Search).Msg("filter changed")
}

func (d debugObserver[T]) GroupingChanged(field string) {
	d.logger.Debug().Str("field", field).Msg("grouping changed")
}

func (d debugObserver[T]) GroupToggled(groupKey string, expanded bool) {
	d.logger.Debug().Str("group", groupKey).Bool("expanded", expanded).Msg("group toggled")
}

func (d debugObserver[T]) PageChanged(page, totalPages int) {
	d.logger.Debug().Int("page", page).Int("total", totalPages).Msg("page changed")
}

func (d debugObserver[T]) ColumnsChanged(layout columns.Layout) {
	d.logger.Debug().Strs("order", layout.Order).Msg("columns changed")
}

func (d debugObserver[T]) RowsReordered(_ []T, _ T, from, to int) {
	d.logger.Debug().Int("from", from).Int("to", to).Msg("rows reordered")
}

func (d debugObserver[T]) EditCommitted(rowKey grid.Key, columnKey, value string) {
	d.logger.Debug().Str("row", string(rowKey)).Str("column", columnKey).Str("value", value).Msg("edit committed")
}
