package tui

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/gridcore/internal/core/columns"
	"github.com/colonyops/gridcore/internal/core/events"
	"github.com/colonyops/gridcore/internal/core/grid"
)

// commitInfo is a committed edit waiting for the model to apply it to the
// canonical task slice.
type commitInfo struct {
	RowKey    grid.Key
	ColumnKey string
	Value     string
}

// observer collects engine notifications for the model. Notifications run
// inside engine mutations, so anything that must call back into the
// engine (adopting a reorder, applying a commit) is queued here and
// drained by the model once the gesture returns.
type observer struct {
	events.Nop[Task]

	logger zerolog.Logger
	status string

	pendingRows   []Task
	pendingCommit *commitInfo
	layoutChanged bool
}

func (o *observer) SelectionChanged(selected []Task) {
	o.status = fmt.Sprintf("%d selected", len(selected))
}

func (o *observer) SortChanged(s grid.SortState) {
	if !s.Active() {
		o.status = "sort cleared"
		return
	}
	o.status = fmt.Sprintf("sorted by %s %s", s.Key, s.Direction)
}

func (o *observer) FilterChanged(f grid.FilterState) {
	if !f.Active() {
		o.status = "filters cleared"
		return
	}
	o.status = "filter applied"
}

func (o *observer) GroupingChanged(field string) {
	if field == "" {
		o.status = "grouping off"
		return
	}
	o.status = "grouped by " + field
}

func (o *observer) PageChanged(page, totalPages int) {
	o.status = fmt.Sprintf("page %d/%d", page, totalPages)
}

func (o *observer) ColumnsChanged(layout columns.Layout) {
	o.layoutChanged = true
	o.logger.Debug().Strs("order", layout.Order).Msg("column layout changed")
}

func (o *observer) RowsReordered(rows []Task, moved Task, from, to int) {
	o.pendingRows = rows
	o.status = fmt.Sprintf("moved %q %d -> %d", moved.Title, from, to)
}

func (o *observer) EditCommitted(rowKey grid.Key, columnKey, value string) {
	o.pendingCommit = &commitInfo{RowKey: rowKey, ColumnKey: columnKey, Value: value}
	o.status = fmt.Sprintf("saved %s", columnKey)
}
