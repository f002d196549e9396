package grid

import "strings"

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState selects the sorted column. An empty Key means unsorted: the
// original (or grouped) order is preserved.
type SortState struct {
	Key       string
	Direction Direction
}

// Active reports whether a sort column is set.
func (s SortState) Active() bool { return s.Key != "" }

// FilterState restricts rows by per-field accepted values combined with a
// global full-text search. A row passes iff every per-field membership test
// passes AND, when Search is non-empty, at least one visible column's cell
// text contains Search (case-insensitive substring).
type FilterState struct {
	// Fields maps a column key to its accepted values. A missing or empty
	// entry places no restriction on that field.
	Fields map[string][]string
	Search string
}

// Accepts reports whether a rendered field value passes the per-field test.
func (f FilterState) Accepts(field, value string) bool {
	accepted := f.Fields[field]
	if len(accepted) == 0 {
		return true
	}
	for _, want := range accepted {
		if value == want {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether the text matches the global search string.
func (f FilterState) MatchesSearch(text string) bool {
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(f.Search))
}

// Active reports whether any per-field restriction or search is in effect.
func (f FilterState) Active() bool {
	if f.Search != "" {
		return true
	}
	for _, accepted := range f.Fields {
		if len(accepted) > 0 {
			return true
		}
	}
	return false
}

// GroupState partitions rows by a field. Group keys are the stringified
// field values, ordered by first appearance in the sorted sequence. Groups
// are expanded on first render; Expanded tracks explicit toggles only.
type GroupState struct {
	Field    string
	Expanded map[string]bool
}

// Active reports whether grouping is in effect.
func (g GroupState) Active() bool { return g.Field != "" }

// IsExpanded reports whether a group is expanded. Groups never toggled
// default to expanded.
func (g GroupState) IsExpanded(key string) bool {
	if g.Expanded == nil {
		return true
	}
	expanded, ok := g.Expanded[key]
	if !ok {
		return true
	}
	return expanded
}

// Toggle flips a group's expansion and returns the new state.
func (g *GroupState) Toggle(key string) bool {
	if g.Expanded == nil {
		g.Expanded = make(map[string]bool)
	}
	g.Expanded[key] = !g.IsExpanded(key)
	return g.Expanded[key]
}

// PageState is 1-indexed pagination state. Page is always clamped into
// [1, TotalPages(count, ItemsPerPage)] by the pipeline.
type PageState struct {
	ItemsPerPage int
	Page         int
}

// TotalPages computes the page count for a number of items. It is never
// less than one.
func TotalPages(count, itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return 1
	}
	pages := (count + itemsPerPage - 1) / itemsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}
