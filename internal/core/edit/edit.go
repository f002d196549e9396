// Package edit manages the single in-place cell edit session: value
// staging, validation, and commit. At most one session exists engine-wide;
// starting a new edit over an open one cancels the previous session without
// saving (last gesture wins).
//
// Commits may resolve asynchronously. A pending save carries a generation
// token; resolutions for replaced or cancelled sessions arrive with a stale
// token and are discarded.
package edit

import (
	"errors"
	"strconv"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/gridcore/internal/core/grid"
)

// CommitStatus is the host commit callback's verdict.
type CommitStatus string

// Commit outcomes. StatusPending defers the verdict: the host must call
// Resolve with the save's generation token once the commit settles.
const (
	StatusSaved   CommitStatus = "saved"
	StatusFailed  CommitStatus = "failed"
	StatusPending CommitStatus = "pending"
)

// CommitRequest describes the staged edit handed to the host.
type CommitRequest struct {
	RowIndex  int
	RowKey    grid.Key
	ColumnKey string
	Value     string
}

// CommitFunc is the host-supplied commit callback. A nil CommitFunc treats
// every save as immediately successful.
type CommitFunc func(req CommitRequest) CommitStatus

// ColumnSpec is the edit-relevant slice of a column definition.
type ColumnSpec struct {
	Key      string
	Editable bool
	Kind     grid.Kind
	Validate func(value string) error
}

// State is the session snapshot exposed to hosts.
type State struct {
	RowIndex        int
	RowKey          grid.Key
	ColumnKey       string
	Pending         string
	ValidationError string
	Saving          bool
}

const saveFailedMessage = "save failed"

// Manager owns the single edit session.
type Manager struct {
	logger  zerolog.Logger
	commit  CommitFunc
	session *State
	spec    ColumnSpec
	gen     int
}

// NewManager creates a Manager committing through fn.
func NewManager(fn CommitFunc, logger zerolog.Logger) *Manager {
	return &Manager{commit: fn, logger: logger}
}

// Open reports whether an edit session is active.
func (m *Manager) Open() bool { return m.session != nil }

// State returns a copy of the session snapshot, or nil when no session is
// open.
func (m *Manager) State() *State {
	if m.session == nil {
		return nil
	}
	s := *m.session
	return &s
}

// Start opens an edit session for a cell. Non-editable columns no-op. An
// already open session is cancelled silently; any pending save for it is
// orphaned and its late resolution will be discarded.
func (m *Manager) Start(rowIndex int, rowKey grid.Key, spec ColumnSpec, initial string) bool {
	if !spec.Editable {
		return false
	}
	m.gen++ // orphan any pending save
	m.session = &State{
		RowIndex:  rowIndex,
		RowKey:    rowKey,
		ColumnKey: spec.Key,
		Pending:   initial,
	}
	m.spec = spec
	return true
}

// Stage replaces the pending value and clears any prior validation error.
func (m *Manager) Stage(text string) {
	if m.session == nil || m.session.Saving {
		return
	}
	m.session.Pending = text
	m.session.ValidationError = ""
}

// Save validates the pending value and, on success, invokes the host
// commit. It returns the commit status and, for StatusPending, the
// generation token the host must pass back to Resolve. A Save while a
// previous save is pending no-ops and reports StatusPending with the
// existing token.
func (m *Manager) Save() (CommitStatus, int) {
	if m.session == nil {
		return StatusFailed, 0
	}
	if m.session.Saving {
		return StatusPending, m.gen
	}

	if err := m.validate(m.session.Pending); err != nil {
		m.session.ValidationError = err.Error()
		return StatusFailed, 0
	}

	req := CommitRequest{
		RowIndex:  m.session.RowIndex,
		RowKey:    m.session.RowKey,
		ColumnKey: m.session.ColumnKey,
		Value:     m.session.Pending,
	}

	status := StatusSaved
	if m.commit != nil {
		status = m.commit(req)
	}

	switch status {
	case StatusSaved:
		m.session = nil
	case StatusPending:
		m.session.Saving = true
		return StatusPending, m.gen
	default:
		m.session.ValidationError = saveFailedMessage
	}
	return status, 0
}

// Resolve settles a pending save. Stale generation tokens, from a session
// replaced or cancelled since, are discarded. Returns whether the
// resolution was applied.
func (m *Manager) Resolve(gen int, ok bool) bool {
	if gen != m.gen || m.session == nil || !m.session.Saving {
		m.logger.Debug().Int("gen", gen).Msg("discarding stale commit resolution")
		return false
	}
	if ok {
		m.session = nil
		return true
	}
	m.session.Saving = false
	m.session.ValidationError = saveFailedMessage
	return true
}

// Cancel discards the pending value and closes the session with no host
// notification. A pending save's late resolution is discarded.
func (m *Manager) Cancel() {
	if m.session == nil {
		return
	}
	m.gen++
	m.session = nil
}

// validate runs the schema check for the column kind, then the
// caller-supplied validator, short-circuiting on the first failure.
// Failures carry the column key as the field name.
func (m *Manager) validate(value string) error {
	if err := criterio.Run(m.spec.Key, value, schemaCheck(m.spec.Kind)); err != nil {
		return err
	}
	if m.spec.Validate != nil {
		return criterio.Run(m.spec.Key, value, m.spec.Validate)
	}
	return nil
}

func schemaCheck(kind grid.Kind) func(string) error {
	switch kind {
	case grid.KindNumber:
		return func(v string) error {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return errors.New("must be a number")
			}
			return nil
		}
	case grid.KindDate:
		return func(v string) error {
			for _, layout := range []string{time.RFC3339, "2006-01-02"} {
				if _, err := time.Parse(layout, v); err == nil {
					return nil
				}
			}
			return errors.New("must be a date (YYYY-MM-DD or RFC 3339)")
		}
	default:
		return func(string) error { return nil }
	}
}
