package cellrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var display = []string{"name", "age", "role"}

func TestBeginExtend_Rectangle(t *testing.T) {
	s := New(true)

	s.Begin(1, "age")
	s.Extend(3, "name")

	tests := []struct {
		name string
		row  int
		col  string
		want bool
	}{
		{"anchor cell", 1, "age", true},
		{"focus cell", 3, "name", true},
		{"interior", 2, "name", true},
		{"outside row", 0, "name", false},
		{"outside col", 2, "role", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(tt2 *testing.T) {
			assert.Equal(tt2, tt.want, s.IsSelected(tt.row, tt.col, display))
		})
	}
}

func TestFlagsAt_Boundaries(t *testing.T) {
	s := New(true)
	s.Begin(0, "name")
	s.Extend(2, "role")

	f := s.FlagsAt(0, "name", display)
	assert.True(t, f.Selected)
	assert.True(t, f.Top)
	assert.True(t, f.Left)
	assert.True(t, f.Start)
	assert.False(t, f.Bottom)
	assert.False(t, f.End)

	f = s.FlagsAt(2, "role", display)
	assert.True(t, f.Bottom)
	assert.True(t, f.Right)
	assert.True(t, f.End)

	f = s.FlagsAt(1, "age", display)
	assert.True(t, f.Selected)
	assert.False(t, f.Top || f.Bottom || f.Left || f.Right)
}

func TestRectangleFollowsDisplayOrder(t *testing.T) {
	s := New(true)
	s.Begin(0, "name")
	s.Extend(0, "role")

	// With the default order the middle column is inside the range.
	assert.True(t, s.IsSelected(0, "age", display))

	// After a reorder that moves "age" outside the name..role span, the
	// same range no longer covers it.
	reordered := []string{"age", "name", "role"}
	assert.False(t, s.IsSelected(0, "age", reordered))
}

func TestEndFreezes(t *testing.T) {
	s := New(true)
	s.Begin(0, "name")
	s.End()
	assert.True(t, s.Frozen())

	s.Extend(5, "role")
	assert.False(t, s.IsSelected(5, "role", display), "frozen range ignores Extend")

	s.Begin(1, "age")
	assert.False(t, s.Frozen(), "a new gesture replaces the frozen range")
}

func TestClearDropsRange(t *testing.T) {
	s := New(true)
	s.Begin(0, "name")
	s.Extend(2, "age")
	s.End()

	s.Clear()
	assert.False(t, s.Active())
	assert.False(t, s.IsSelected(1, "name", display))
}

func TestHiddenAnchorColumnResolvesToNothing(t *testing.T) {
	s := New(true)
	s.Begin(0, "age")
	s.Extend(2, "age")

	assert.False(t, s.IsSelected(1, "age", []string{"name", "role"}))
}

func TestDisabledSelectorIgnoresGestures(t *testing.T) {
	s := New(false)
	s.Begin(0, "name")
	s.Extend(2, "role")
	assert.False(t, s.Active())
}
