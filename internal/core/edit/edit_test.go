package edit

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridcore/internal/core/grid"
)

func textSpec() ColumnSpec {
	return ColumnSpec{Key: "name", Editable: true, Kind: grid.KindString}
}

func TestStart_NonEditableNoOp(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())

	ok := m.Start(0, "1", ColumnSpec{Key: "name"}, "Alice")
	assert.False(t, ok)
	assert.False(t, m.Open())
}

func TestStart_ReplacesOpenSession(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())

	require.True(t, m.Start(0, "1", textSpec(), "Alice"))
	m.Stage("Alicia")

	require.True(t, m.Start(1, "2", textSpec(), "Bob"))
	st := m.State()
	require.NotNil(t, st)
	assert.Equal(t, "Bob", st.Pending, "previous edit dropped without saving")
	assert.Equal(t, grid.Key("2"), st.RowKey)
}

func TestSave_SynchronousCommit(t *testing.T) {
	var got CommitRequest
	m := NewManager(func(req CommitRequest) CommitStatus {
		got = req
		return StatusSaved
	}, zerolog.Nop())

	m.Start(0, "1", textSpec(), "Alice")
	m.Stage("Alicia")
	status, _ := m.Save()

	assert.Equal(t, StatusSaved, status)
	assert.False(t, m.Open(), "session closes on synchronous success")
	assert.Equal(t, "Alicia", got.Value)
	assert.Equal(t, "name", got.ColumnKey)
}

func TestSave_ValidationShortCircuits(t *testing.T) {
	commits := 0
	m := NewManager(func(CommitRequest) CommitStatus {
		commits++
		return StatusSaved
	}, zerolog.Nop())

	spec := ColumnSpec{Key: "age", Editable: true, Kind: grid.KindNumber,
		Validate: func(v string) error {
			return errors.New("custom validator must not run")
		}}

	m.Start(0, "1", spec, "25")
	m.Stage("not-a-number")
	status, _ := m.Save()

	assert.Equal(t, StatusFailed, status)
	assert.Zero(t, commits)
	st := m.State()
	require.NotNil(t, st)
	assert.Contains(t, st.ValidationError, "must be a number")

	// Staging a new value clears the error.
	m.Stage("26")
	assert.Empty(t, m.State().ValidationError)
}

func TestSave_CustomValidatorRunsAfterSchema(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())

	spec := ColumnSpec{Key: "age", Editable: true, Kind: grid.KindNumber,
		Validate: func(v string) error {
			if v == "0" {
				return errors.New("must be positive")
			}
			return nil
		}}

	m.Start(0, "1", spec, "0")
	status, _ := m.Save()
	assert.Equal(t, StatusFailed, status)
	assert.Contains(t, m.State().ValidationError, "must be positive")
}

func TestSave_DateSchema(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())
	spec := ColumnSpec{Key: "due", Editable: true, Kind: grid.KindDate}

	m.Start(0, "1", spec, "2026-08-26")
	status, _ := m.Save()
	assert.Equal(t, StatusSaved, status)

	m.Start(0, "1", spec, "tomorrow")
	status, _ = m.Save()
	assert.Equal(t, StatusFailed, status)
}

func TestSave_PendingThenResolve(t *testing.T) {
	m := NewManager(func(CommitRequest) CommitStatus { return StatusPending }, zerolog.Nop())

	m.Start(0, "1", textSpec(), "Alice")
	status, gen := m.Save()
	require.Equal(t, StatusPending, status)
	assert.True(t, m.State().Saving)

	// Re-entrant save while pending no-ops with the same token.
	again, sameGen := m.Save()
	assert.Equal(t, StatusPending, again)
	assert.Equal(t, gen, sameGen)

	assert.True(t, m.Resolve(gen, true))
	assert.False(t, m.Open())
}

func TestResolve_FailureKeepsSessionOpen(t *testing.T) {
	m := NewManager(func(CommitRequest) CommitStatus { return StatusPending }, zerolog.Nop())

	m.Start(0, "1", textSpec(), "Alice")
	_, gen := m.Save()

	require.True(t, m.Resolve(gen, false))
	st := m.State()
	require.NotNil(t, st)
	assert.False(t, st.Saving)
	assert.Equal(t, "save failed", st.ValidationError)
}

func TestResolve_StaleGenerationDiscarded(t *testing.T) {
	m := NewManager(func(CommitRequest) CommitStatus { return StatusPending }, zerolog.Nop())

	m.Start(0, "1", textSpec(), "Alice")
	_, gen := m.Save()

	// User navigates away: cancel while the save is in flight.
	m.Cancel()
	assert.False(t, m.Resolve(gen, true), "late resolution is discarded")
	assert.False(t, m.Open())

	// Replacement session is untouched by the old token.
	m.Start(2, "3", textSpec(), "Carol")
	assert.False(t, m.Resolve(gen, false))
	assert.Empty(t, m.State().ValidationError)
}

func TestCancel_NoHostNotification(t *testing.T) {
	commits := 0
	m := NewManager(func(CommitRequest) CommitStatus {
		commits++
		return StatusSaved
	}, zerolog.Nop())

	m.Start(0, "1", textSpec(), "Alice")
	m.Stage("changed")
	m.Cancel()

	assert.False(t, m.Open())
	assert.Zero(t, commits)
}
