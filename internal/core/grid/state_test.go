package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		itemsPerPage int
		want         int
	}{
		{"empty set still has one page", 0, 10, 1},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"page size one", 5, 1, 5},
		{"non-positive page size", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.count, tt.itemsPerPage))
		})
	}
}

func TestFilterState_Accepts(t *testing.T) {
	f := FilterState{Fields: map[string][]string{
		"name": {"Alice", "Bob"},
	}}

	assert.True(t, f.Accepts("name", "Alice"))
	assert.False(t, f.Accepts("name", "Carol"))
	assert.True(t, f.Accepts("age", "25"), "unrestricted field accepts everything")
}

func TestFilterState_MatchesSearch(t *testing.T) {
	f := FilterState{Search: "ali"}
	assert.True(t, f.MatchesSearch("Alice"))
	assert.False(t, f.MatchesSearch("Bob"))

	assert.True(t, FilterState{}.MatchesSearch("anything"))
}

func TestGroupState_ExpandedByDefault(t *testing.T) {
	g := GroupState{Field: "role"}

	assert.True(t, g.IsExpanded("admin"))

	g.Toggle("admin")
	assert.False(t, g.IsExpanded("admin"))
	assert.True(t, g.IsExpanded("viewer"), "untouched groups stay expanded")

	g.Toggle("admin")
	assert.True(t, g.IsExpanded("admin"))
}

func TestCellText(t *testing.T) {
	type row struct{ Name string }

	col := Column[row]{Key: "name", Value: func(r row) any { return r.Name }}
	assert.Equal(t, "Alice", CellText(col, row{Name: "Alice"}))

	col.Format = func(v any) string { return "<" + v.(string) + ">" }
	assert.Equal(t, "<Alice>", CellText(col, row{Name: "Alice"}))

	assert.Equal(t, "", CellText(Column[row]{Key: "name"}, row{Name: "x"}), "nil Value renders empty")
}
