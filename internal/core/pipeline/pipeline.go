// Package pipeline transforms the host's raw rows into the visible view:
// filtered, sorted, grouped, and paged, in that order. Compute is a pure
// function of its inputs; the Pipeline struct only memoizes the last result.
package pipeline

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/colonyops/gridcore/internal/core/grid"
)

// Inputs carries everything Compute needs. Columns must be the visible
// columns in display order; the global search scans exactly these.
type Inputs[T any] struct {
	Rows    []T
	Columns []grid.Column[T]
	Filters grid.FilterState
	Sort    grid.SortState
	Group   grid.GroupState
	Page    grid.PageState
}

// Group is one partition of the filtered+sorted rows sharing a group key.
type Group[T any] struct {
	Key  string
	Rows []T
}

// Result is the derived view. When grouping is active, pagination slices
// the list of groups rather than individual rows: Paged is nil and
// PagedGroups holds the groups on the current page. Ungrouped, Paged holds
// the rows on the current page and Groups/PagedGroups are nil.
type Result[T any] struct {
	Filtered    []T
	Groups      []Group[T]
	Paged       []T
	PagedGroups []Group[T]
	TotalPages  int
	// Page is the page actually in effect: the requested page when still
	// valid, otherwise reset to 1.
	Page int
}

// Pipeline computes derived views and memoizes the last computation.
type Pipeline[T any] struct {
	logger zerolog.Logger

	memoValid bool
	memoIn    Inputs[T]
	memoOut   Result[T]
}

// New creates a Pipeline logging dev-time warnings to logger.
func New[T any](logger zerolog.Logger) *Pipeline[T] {
	return &Pipeline[T]{logger: logger}
}

// Invalidate drops the memoized result.
func (p *Pipeline[T]) Invalidate() {
	p.memoValid = false
}

// Compute derives the visible view from the inputs. Referential equality of
// consecutive inputs short-circuits to the memoized result; this is a
// performance nicety, not a correctness requirement.
func (p *Pipeline[T]) Compute(in Inputs[T]) Result[T] {
	if p.memoValid && sameInputs(p.memoIn, in) {
		return p.memoOut
	}

	filtered := filterRows(in.Rows, in.Columns, in.Filters)
	sorted := p.sortRows(filtered, in.Columns, in.Sort)

	out := Result[T]{Filtered: sorted}

	grouping := in.Group.Active()
	if grouping && columnByKey(in.Columns, in.Group.Field) == nil {
		// Unknown group field is a configuration error: warn and fall
		// back to the ungrouped view.
		p.logger.Warn().Str("field", in.Group.Field).Msg("group field does not match a visible column")
		grouping = false
	}

	if grouping {
		out.Groups = partition(sorted, in.Columns, in.Group.Field)
		out.TotalPages = grid.TotalPages(len(out.Groups), in.Page.ItemsPerPage)
		out.Page = effectivePage(in.Page.Page, out.TotalPages)
		lo, hi := pageBounds(out.Page, in.Page.ItemsPerPage, len(out.Groups))
		out.PagedGroups = out.Groups[lo:hi]
	} else {
		out.TotalPages = grid.TotalPages(len(sorted), in.Page.ItemsPerPage)
		out.Page = effectivePage(in.Page.Page, out.TotalPages)
		lo, hi := pageBounds(out.Page, in.Page.ItemsPerPage, len(sorted))
		out.Paged = sorted[lo:hi]
	}

	p.memoIn = in
	p.memoOut = out
	p.memoValid = true
	return out
}

// effectivePage preserves a still-valid requested page and resets an
// invalidated one to 1.
func effectivePage(requested, totalPages int) int {
	if requested >= 1 && requested <= totalPages {
		return requested
	}
	return 1
}

func pageBounds(page, itemsPerPage, count int) (int, int) {
	if itemsPerPage <= 0 {
		return 0, count
	}
	lo := (page - 1) * itemsPerPage
	if lo > count {
		lo = count
	}
	hi := lo + itemsPerPage
	if hi > count {
		hi = count
	}
	return lo, hi
}

func filterRows[T any](rows []T, cols []grid.Column[T], filters grid.FilterState) []T {
	if !filters.Active() {
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if rowPasses(row, cols, filters) {
			out = append(out, row)
		}
	}
	return out
}

func rowPasses[T any](row T, cols []grid.Column[T], filters grid.FilterState) bool {
	for field := range filters.Fields {
		col := columnByKey(cols, field)
		if col == nil {
			// Unknown field places no restriction; the engine warns
			// before the request reaches the pipeline.
			continue
		}
		if !filters.Accepts(field, grid.CellText(*col, row)) {
			return false
		}
	}

	if filters.Search == "" {
		return true
	}
	for i := range cols {
		if filters.MatchesSearch(grid.CellText(cols[i], row)) {
			return true
		}
	}
	return false
}

// sortRows returns a stably sorted copy. Ties keep the relative order of
// the incoming sequence.
func (p *Pipeline[T]) sortRows(rows []T, cols []grid.Column[T], s grid.SortState) []T {
	out := make([]T, len(rows))
	copy(out, rows)

	if !s.Active() {
		return out
	}
	col := columnByKey(cols, s.Key)
	if col == nil {
		p.logger.Warn().Str("key", s.Key).Msg("sort key does not match a visible column")
		return out
	}

	desc := s.Direction == grid.Descending
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(rawValue(*col, out[i]), rawValue(*col, out[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func rawValue[T any](col grid.Column[T], row T) any {
	if col.Value == nil {
		return nil
	}
	return col.Value(row)
}

// partition splits the post-sort sequence into groups keyed by the group
// field's cell text, preserving first-seen order of each key.
func partition[T any](rows []T, cols []grid.Column[T], field string) []Group[T] {
	col := columnByKey(cols, field)

	var groups []Group[T]
	index := make(map[string]int)
	for _, row := range rows {
		key := ""
		if col != nil {
			key = grid.CellText(*col, row)
		}
		at, ok := index[key]
		if !ok {
			at = len(groups)
			index[key] = at
			groups = append(groups, Group[T]{Key: key})
		}
		groups[at].Rows = append(groups[at].Rows, row)
	}
	return groups
}

func columnByKey[T any](cols []grid.Column[T], key string) *grid.Column[T] {
	for i := range cols {
		if cols[i].Key == key {
			return &cols[i]
		}
	}
	return nil
}
