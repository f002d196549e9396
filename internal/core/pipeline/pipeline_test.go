package pipeline

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridcore/internal/core/grid"
)

type person struct {
	ID   int
	Name string
	Age  int
}

func personColumns() []grid.Column[person] {
	return []grid.Column[person]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(p person) any { return p.Name }},
		{Key: "age", Label: "Age", Sortable: true, Value: func(p person) any { return p.Age }},
	}
}

func samplePeople() []person {
	return []person{
		{ID: 1, Name: "Alice", Age: 25},
		{ID: 2, Name: "Bob", Age: 30},
	}
}

func names(people []person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.Name
	}
	return out
}

func TestCompute_SortByAgeDesc(t *testing.T) {
	p := New[person](zerolog.Nop())

	out := p.Compute(Inputs[person]{
		Rows:    samplePeople(),
		Columns: personColumns(),
		Sort:    grid.SortState{Key: "age", Direction: grid.Descending},
		Page:    grid.PageState{ItemsPerPage: 10, Page: 1},
	})

	assert.Equal(t, []string{"Bob", "Alice"}, names(out.Filtered))
}

func TestCompute_PageTwoOfOne(t *testing.T) {
	p := New[person](zerolog.Nop())

	out := p.Compute(Inputs[person]{
		Rows:    samplePeople(),
		Columns: personColumns(),
		Page:    grid.PageState{ItemsPerPage: 1, Page: 2},
	})

	assert.Equal(t, 2, out.TotalPages)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, []string{"Bob"}, names(out.Paged))
}

func TestCompute_FilterClampsPage(t *testing.T) {
	p := New[person](zerolog.Nop())

	out := p.Compute(Inputs[person]{
		Rows:    samplePeople(),
		Columns: personColumns(),
		Filters: grid.FilterState{Fields: map[string][]string{"name": {"Alice"}}},
		Page:    grid.PageState{ItemsPerPage: 1, Page: 2},
	})

	assert.Equal(t, []string{"Alice"}, names(out.Filtered))
	assert.Equal(t, 1, out.TotalPages)
	assert.Equal(t, 1, out.Page, "invalidated page resets to 1")
}

func TestCompute_PagePreservedWhenStillValid(t *testing.T) {
	p := New[person](zerolog.Nop())

	rows := []person{
		{1, "Alice", 25}, {2, "Bob", 30}, {3, "Carol", 35},
		{4, "Dave", 40}, {5, "Erin", 45},
	}
	out := p.Compute(Inputs[person]{
		Rows:    rows,
		Columns: personColumns(),
		Page:    grid.PageState{ItemsPerPage: 2, Page: 2},
	})

	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, []string{"Carol", "Dave"}, names(out.Paged))
}

func TestCompute_TotalPagesProperty(t *testing.T) {
	p := New[person](zerolog.Nop())

	for _, perPage := range []int{1, 2, 3, 7} {
		for n := 0; n <= 9; n++ {
			rows := make([]person, n)
			for i := range rows {
				rows[i] = person{ID: i, Name: "p", Age: i}
			}
			out := p.Compute(Inputs[person]{
				Rows:    rows,
				Columns: personColumns(),
				Page:    grid.PageState{ItemsPerPage: perPage, Page: 1},
			})
			want := (n + perPage - 1) / perPage
			if want < 1 {
				want = 1
			}
			require.Equal(t, want, out.TotalPages, "n=%d perPage=%d", n, perPage)
			require.GreaterOrEqual(t, out.Page, 1)
			require.LessOrEqual(t, out.Page, out.TotalPages)
		}
	}
}

func TestCompute_SortIsStableAndIdempotent(t *testing.T) {
	p := New[person](zerolog.Nop())

	rows := []person{
		{1, "Alice", 30}, {2, "Bob", 30}, {3, "Carol", 25}, {4, "Dave", 30},
	}
	in := Inputs[person]{
		Rows:    rows,
		Columns: personColumns(),
		Sort:    grid.SortState{Key: "age", Direction: grid.Ascending},
		Page:    grid.PageState{ItemsPerPage: 10, Page: 1},
	}

	first := p.Compute(in)
	assert.Equal(t, []string{"Carol", "Alice", "Bob", "Dave"}, names(first.Filtered),
		"equal ages keep original relative order")

	// Re-sorting the already sorted sequence with the same key/direction
	// leaves order unchanged.
	p.Invalidate()
	again := p.Compute(Inputs[person]{
		Rows:    first.Filtered,
		Columns: in.Columns,
		Sort:    in.Sort,
		Page:    in.Page,
	})
	assert.Equal(t, names(first.Filtered), names(again.Filtered))
}

func TestCompute_SearchScansVisibleColumns(t *testing.T) {
	p := New[person](zerolog.Nop())

	out := p.Compute(Inputs[person]{
		Rows:    samplePeople(),
		Columns: personColumns(),
		Filters: grid.FilterState{Search: "ali"},
		Page:    grid.PageState{ItemsPerPage: 10, Page: 1},
	})
	assert.Equal(t, []string{"Alice"}, names(out.Filtered))

	// Numeric cell text participates in search too.
	out = p.Compute(Inputs[person]{
		Rows:    samplePeople(),
		Columns: personColumns(),
		Filters: grid.FilterState{Search: "30"},
		Page:    grid.PageState{ItemsPerPage: 10, Page: 1},
	})
	assert.Equal(t, []string{"Bob"}, names(out.Filtered))
}

func TestCompute_GroupingPartitionsPostSort(t *testing.T) {
	type task struct {
		Name   string
		Status string
		Rank   int
	}
	cols := []grid.Column[task]{
		{Key: "name", Value: func(t task) any { return t.Name }},
		{Key: "status", Value: func(t task) any { return t.Status }},
		{Key: "rank", Value: func(t task) any { return t.Rank }},
	}

	tp := New[task](zerolog.Nop())
	out := tp.Compute(Inputs[task]{
		Rows: []task{
			{"a", "open", 3}, {"b", "done", 1}, {"c", "open", 2}, {"d", "done", 4},
		},
		Columns: cols,
		Sort:    grid.SortState{Key: "rank", Direction: grid.Ascending},
		Group:   grid.GroupState{Field: "status"},
		Page:    grid.PageState{ItemsPerPage: 10, Page: 1},
	})

	require.Len(t, out.Groups, 2)
	// First-seen order follows the sorted sequence: rank 1 is "done".
	assert.Equal(t, "done", out.Groups[0].Key)
	assert.Equal(t, "open", out.Groups[1].Key)
	assert.Equal(t, []string{"b", "d"}, []string{out.Groups[0].Rows[0].Name, out.Groups[0].Rows[1].Name})
}

func TestCompute_GroupedPaginationSlicesGroups(t *testing.T) {
	type task struct{ Status string }
	cols := []grid.Column[task]{{Key: "status", Value: func(t task) any { return t.Status }}}

	p := New[task](zerolog.Nop())
	out := p.Compute(Inputs[task]{
		Rows:    []task{{"a"}, {"b"}, {"c"}, {"a"}},
		Columns: cols,
		Group:   grid.GroupState{Field: "status"},
		Page:    grid.PageState{ItemsPerPage: 2, Page: 2},
	})

	assert.Equal(t, 2, out.TotalPages, "three groups paged two per page")
	require.Len(t, out.PagedGroups, 1)
	assert.Equal(t, "c", out.PagedGroups[0].Key)
}

func TestCompute_UnknownSortKeyIsNoOp(t *testing.T) {
	p := New[person](zerolog.Nop())

	out := p.Compute(Inputs[person]{
		Rows:    samplePeople(),
		Columns: personColumns(),
		Sort:    grid.SortState{Key: "nope", Direction: grid.Ascending},
		Page:    grid.PageState{ItemsPerPage: 10, Page: 1},
	})

	assert.Equal(t, []string{"Alice", "Bob"}, names(out.Filtered))
}

func TestCompute_Memoization(t *testing.T) {
	p := New[person](zerolog.Nop())

	rows := samplePeople()
	cols := personColumns()
	in := Inputs[person]{Rows: rows, Columns: cols, Page: grid.PageState{ItemsPerPage: 10, Page: 1}}

	first := p.Compute(in)
	second := p.Compute(in)
	assert.Equal(t, first, second)

	// New backing array invalidates the memo even with equal contents.
	in.Rows = samplePeople()
	third := p.Compute(in)
	assert.Equal(t, names(first.Filtered), names(third.Filtered))
}

func TestCompareValues(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"numeric less", 2, 10, -1},
		{"numeric equal across types", int64(5), 5.0, 0},
		{"times", now, now.Add(time.Hour), -1},
		{"date strings", "2026-01-02", "2026-01-10", -1},
		{"strings", "apple", "banana", -1},
		{"mixed falls back to string", "10", 9, -1},
		{"nil sorts before text", nil, "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareValues(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
