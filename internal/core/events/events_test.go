package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/gridcore/internal/core/grid"
)

type recorder struct {
	Nop[string]
	selections [][]string
	pages      []int
}

func (r *recorder) SelectionChanged(selected []string) {
	r.selections = append(r.selections, selected)
}

func (r *recorder) PageChanged(page, _ int) {
	r.pages = append(r.pages, page)
}

func TestObservers_FanOut(t *testing.T) {
	a := &recorder{}
	b := &recorder{}
	multi := Observers[string]{a, b}

	multi.SelectionChanged([]string{"x"})
	multi.PageChanged(2, 5)

	assert.Len(t, a.selections, 1)
	assert.Len(t, b.selections, 1)
	assert.Equal(t, []int{2}, a.pages)
	assert.Equal(t, []int{2}, b.pages)
}

func TestNop_ImplementsObserver(t *testing.T) {
	var obs Observer[string] = Nop[string]{}

	// Every method is callable and silent.
	obs.SelectionChanged(nil)
	obs.ActiveRowChanged(-1)
	obs.SortChanged(grid.SortState{})
	obs.EditCommitted("1", "name", "v")
}

func TestDebugLogger_CoversAllEvents(t *testing.T) {
	obs := DebugLogger[string](zerolog.Nop())

	obs.SelectionChanged([]string{"a"})
	obs.SortChanged(grid.SortState{Key: "name", Direction: grid.Ascending})
	obs.RowsReordered([]string{"b", "a"}, "a", 0, 1)
	obs.EditCommitted("1", "name", "v")
}
