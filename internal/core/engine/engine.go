// Package engine composes the grid's state machines behind a single
// façade. The host feeds it raw rows, column definitions, and user
// gestures; the engine owns every piece of derived state and reports
// changes through an events.Observer.
//
// Every operation runs synchronously to completion inside the triggering
// gesture. There is no parallelism and no locking; the one asynchronous
// boundary is the edit commit, which is settled by generation token (see
// ResolveEdit).
package engine

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/gridcore/internal/core/callout"
	"github.com/colonyops/gridcore/internal/core/cellrange"
	"github.com/colonyops/gridcore/internal/core/columns"
	"github.com/colonyops/gridcore/internal/core/config"
	"github.com/colonyops/gridcore/internal/core/edit"
	"github.com/colonyops/gridcore/internal/core/events"
	"github.com/colonyops/gridcore/internal/core/grid"
	"github.com/colonyops/gridcore/internal/core/nav"
	"github.com/colonyops/gridcore/internal/core/pipeline"
	"github.com/colonyops/gridcore/internal/core/rowdrag"
	"github.com/colonyops/gridcore/internal/core/selection"
)

// keyedRow pairs a host row with its derived key and its position in the
// host's canonical array. The pipeline runs over keyed rows so every
// derived view knows both identities.
type keyedRow[T any] struct {
	Row         T
	Key         grid.Key
	SourceIndex int
}

// Options configures a new Engine.
type Options[T any] struct {
	Config  config.Config
	Columns []grid.Column[T]
	Rows    []T
	// Key derives row keys; nil keys rows by canonical position.
	Key grid.KeyFunc[T]
	// Observer receives change notifications; nil installs a no-op.
	Observer events.Observer[T]
	// Commit is the host's edit commit callback; nil accepts every save.
	Commit edit.CommitFunc
	Logger zerolog.Logger
}

// Engine is the headless grid state engine for rows of type T.
type Engine[T any] struct {
	logger   zerolog.Logger
	cfg      config.Config
	observer events.Observer[T]

	rows  []T
	keyed []keyedRow[T]
	keyFn grid.KeyFunc[T]

	cols      []grid.Column[T]
	colsByKey map[string]grid.Column[T]

	pipe    *pipeline.Pipeline[keyedRow[T]]
	layout  *columns.Manager
	sel     *selection.Manager
	ranges  *cellrange.Selector
	rowDrag *rowdrag.Manager
	editor  *edit.Manager
	nav     *nav.Navigator
	callout *callout.Coordinator

	sort   grid.SortState
	filter grid.FilterState
	group  grid.GroupState
	page   grid.PageState

	loading bool

	// visCols is the keyed-column projection of the visible display
	// order, rebuilt lazily after layout changes.
	visCols      []grid.Column[keyedRow[T]]
	visColsDirty bool

	// pendingEdit snapshots the staged edit while its commit is in
	// flight, so the committed event can fire when it resolves.
	pendingEdit *edit.State
}

// New creates an Engine. Column definitions get the config's glob-matched
// defaults applied before the layout manager is built.
func New[T any](opts Options[T]) *Engine[T] {
	e := &Engine[T]{
		logger:   opts.Logger,
		cfg:      opts.Config,
		observer: opts.Observer,
		keyFn:    opts.Key,
	}
	if e.observer == nil {
		e.observer = events.Nop[T]{}
	}
	if e.keyFn == nil {
		e.keyFn = grid.KeyByIndex[T]()
	}

	e.pipe = pipeline.New[keyedRow[T]](e.logger)
	e.sel = selection.New(selection.Mode(opts.Config.SelectionMode))
	e.ranges = cellrange.New(opts.Config.CellSelection)
	e.rowDrag = rowdrag.New(opts.Config.RowReorder)
	e.editor = edit.NewManager(opts.Commit, e.logger)
	e.nav = nav.New(opts.Config.KeyboardNav)
	e.callout = callout.New(opts.Config.DismissDelay())
	e.page = grid.PageState{ItemsPerPage: opts.Config.ItemsPerPage, Page: 1}

	e.setColumnDefs(opts.Columns)
	e.SetRows(opts.Rows)
	return e
}

// SetRows replaces the canonical row data. The engine never mutates the
// host's slice; it re-derives everything from the new data.
func (e *Engine[T]) SetRows(rows []T) {
	e.rows = rows
	e.keyed = make([]keyedRow[T], len(rows))
	for i, row := range rows {
		e.keyed[i] = keyedRow[T]{Row: row, Key: e.keyFn(row, i), SourceIndex: i}
	}

	// Fresh data invalidates row coordinates.
	e.ranges.Clear()
	e.rowDrag.Abort()
	e.pipe.Invalidate()
	e.refresh()
}

// SetColumns replaces the column definitions, rebuilding the layout.
func (e *Engine[T]) SetColumns(cols []grid.Column[T]) {
	e.setColumnDefs(cols)
	e.ranges.Clear()
	e.refresh()
	e.observer.ColumnsChanged(e.layout.Layout())
}

func (e *Engine[T]) setColumnDefs(cols []grid.Column[T]) {
	e.cols = make([]grid.Column[T], 0, len(cols))
	e.colsByKey = make(map[string]grid.Column[T], len(cols))
	defs := make([]columns.Def, 0, len(cols))
	for _, col := range cols {
		col = config.ApplyTo(e.cfg, col)
		if _, dup := e.colsByKey[col.Key]; dup {
			e.logger.Warn().Str("key", col.Key).Msg("duplicate column key ignored")
			continue
		}
		e.cols = append(e.cols, col)
		e.colsByKey[col.Key] = col
		defs = append(defs, columns.Def{
			Key:       col.Key,
			Width:     col.Width,
			MinWidth:  col.MinWidth,
			MaxWidth:  col.MaxWidth,
			Resizable: col.Resizable,
			Pinned:    col.Pinned,
		})
	}
	e.layout = columns.NewManager(defs, e.logger)
	e.visColsDirty = true
}

// SetLoading toggles the loading state, suspending keyboard navigation.
func (e *Engine[T]) SetLoading(loading bool) {
	e.loading = loading
	e.nav.SetLoading(loading)
}

// visibleColumns returns the keyed-column projection of the visible
// display order, for the pipeline and range queries.
func (e *Engine[T]) visibleColumns() []grid.Column[keyedRow[T]] {
	if !e.visColsDirty {
		return e.visCols
	}
	order := e.layout.DisplayOrder()
	e.visCols = make([]grid.Column[keyedRow[T]], 0, len(order))
	for _, key := range order {
		col := e.colsByKey[key]
		e.visCols = append(e.visCols, liftColumn[T](col))
	}
	e.visColsDirty = false
	return e.visCols
}

// liftColumn adapts a host column to operate on keyed rows.
func liftColumn[T any](col grid.Column[T]) grid.Column[keyedRow[T]] {
	lifted := grid.Column[keyedRow[T]]{
		Key:        col.Key,
		Label:      col.Label,
		Sortable:   col.Sortable,
		Filterable: col.Filterable,
		Resizable:  col.Resizable,
		Editable:   col.Editable,
		Align:      col.Align,
		Pinned:     col.Pinned,
		Kind:       col.Kind,
		Width:      col.Width,
		MinWidth:   col.MinWidth,
		MaxWidth:   col.MaxWidth,
	}
	if col.Value != nil {
		inner := col.Value
		lifted.Value = func(k keyedRow[T]) any { return inner(k.Row) }
	}
	if col.Format != nil {
		lifted.Format = col.Format
	}
	return lifted
}

// compute runs the pipeline over the current state.
func (e *Engine[T]) compute() pipeline.Result[keyedRow[T]] {
	return e.pipe.Compute(pipeline.Inputs[keyedRow[T]]{
		Rows:    e.keyed,
		Columns: e.visibleColumns(),
		Filters: e.filter,
		Sort:    e.sort,
		Group:   e.group,
		Page:    e.page,
	})
}

// refresh re-derives the view after a data-affecting change, folding the
// pipeline's effective page back into the engine and re-clamping the
// focused and active rows. A page reset clears any cell range.
func (e *Engine[T]) refresh() {
	out := e.compute()
	if out.Page != e.page.Page {
		e.page.Page = out.Page
		e.ranges.Clear()
		e.observer.PageChanged(out.Page, out.TotalPages)
	}
	count := len(e.visibleRows(out))
	e.nav.Clamp(count)
	e.sel.SetActive(e.sel.ActiveIndex(), count)
}

// visibleRows flattens the current page into the visible row list:
// ungrouped page rows, or the rows of expanded groups on the page.
func (e *Engine[T]) visibleRows(out pipeline.Result[keyedRow[T]]) []keyedRow[T] {
	if !e.group.Active() || out.PagedGroups == nil {
		return out.Paged
	}
	var rows []keyedRow[T]
	for _, g := range out.PagedGroups {
		if e.group.IsExpanded(g.Key) {
			rows = append(rows, g.Rows...)
		}
	}
	return rows
}

// VisibleCount returns the number of rows currently visible on the page.
func (e *Engine[T]) VisibleCount() int {
	return len(e.visibleRows(e.compute()))
}

// filteredKeys returns the keys of the full filtered set, in filtered
// order.
func (e *Engine[T]) filteredKeys(out pipeline.Result[keyedRow[T]]) []grid.Key {
	keys := make([]grid.Key, len(out.Filtered))
	for i, k := range out.Filtered {
		keys[i] = k.Key
	}
	return keys
}

// scopeKeys returns the keys select-all operates over, per the configured
// scope.
func (e *Engine[T]) scopeKeys(out pipeline.Result[keyedRow[T]]) []grid.Key {
	if e.cfg.SelectAllScope == string(selection.ScopePage) {
		visible := e.visibleRows(out)
		keys := make([]grid.Key, len(visible))
		for i, k := range visible {
			keys[i] = k.Key
		}
		return keys
	}
	return e.filteredKeys(out)
}
