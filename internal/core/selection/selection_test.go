package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/gridcore/internal/core/grid"
)

func keys(ss ...string) []grid.Key {
	out := make([]grid.Key, len(ss))
	for i, s := range ss {
		out[i] = grid.Key(s)
	}
	return out
}

func TestToggle_MultipleMode(t *testing.T) {
	m := New(ModeMultiple)
	scope := keys("1", "2")

	m.SelectAll(true, scope)
	assert.True(t, m.IsAllSelected(scope))
	assert.False(t, m.IsIndeterminate(scope))

	m.Toggle("1")
	assert.False(t, m.IsSelected("1"))
	assert.True(t, m.IsSelected("2"))
	assert.False(t, m.IsAllSelected(scope))
	assert.True(t, m.IsIndeterminate(scope))
}

func TestToggle_SingleModeReplacesAndDeselects(t *testing.T) {
	m := New(ModeSingle)

	m.Toggle("a")
	assert.True(t, m.IsSelected("a"))

	m.Toggle("b")
	assert.True(t, m.IsSelected("b"))
	assert.False(t, m.IsSelected("a"), "single mode replaces the set")
	assert.Equal(t, 1, m.Count())

	m.Toggle("b")
	assert.Equal(t, 0, m.Count(), "toggling the selected key deselects")
}

func TestToggle_NoneModeIsNoOp(t *testing.T) {
	m := New(ModeNone)
	m.Toggle("a")
	m.SelectAll(true, keys("a", "b"))
	assert.Equal(t, 0, m.Count())
}

func TestSelectAll_RoundTrip(t *testing.T) {
	m := New(ModeMultiple)

	m.SelectAll(true, keys("1", "2", "3"))
	assert.Equal(t, 3, m.Count())

	// Intervening filter change shrinks the scope; clearing still empties
	// the whole set.
	m.SelectAll(false, nil)
	assert.Equal(t, 0, m.Count())
	assert.False(t, m.IsAllSelected(keys("1")))
}

func TestIsAllSelected_EmptyScope(t *testing.T) {
	m := New(ModeMultiple)
	assert.False(t, m.IsAllSelected(nil), "empty filtered set is never all-selected")
	assert.False(t, m.IsIndeterminate(nil))
}

func TestSetActive_Clamps(t *testing.T) {
	m := New(ModeMultiple)

	m.SetActive(10, 3)
	assert.Equal(t, 2, m.ActiveIndex())

	m.SetActive(-1, 3)
	assert.Equal(t, -1, m.ActiveIndex())

	m.SetActive(1, 0)
	assert.Equal(t, -1, m.ActiveIndex(), "empty list clears the active row")
}

func TestSetMode_ClearsSelection(t *testing.T) {
	m := New(ModeMultiple)
	m.SelectAll(true, keys("1", "2"))

	m.SetMode(ModeSingle)
	assert.Equal(t, 0, m.Count())

	m.Toggle("1")
	m.SetMode(ModeSingle) // same mode keeps state
	assert.Equal(t, 1, m.Count())
}
