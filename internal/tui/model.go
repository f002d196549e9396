package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/gridcore/internal/core/config"
	"github.com/colonyops/gridcore/internal/core/edit"
	"github.com/colonyops/gridcore/internal/core/engine"
	"github.com/colonyops/gridcore/internal/core/grid"
	"github.com/colonyops/gridcore/pkg/memo"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeEdit
	modeRowDrag
	modeRange
)

const calloutTickInterval = 100 * time.Millisecond

// commitDelay simulates a slow backend for the async edit path.
const commitDelay = 400 * time.Millisecond

type (
	editResolvedMsg struct{ gen int }
	calloutTickMsg  struct{}
)

// Model is the demo grid TUI.
type Model struct {
	eng    *engine.Engine[Task]
	obs    *observer
	tasks  []Task
	keys   keyMap
	logger zerolog.Logger

	mode     mode
	col      int
	rangeRow int
	dragOver int
	input    textinput.Model

	filterIdx int
	grouped   bool
	loading   bool

	cells *memo.Cache[string, string]

	width  int
	height int
}

// NewModel builds the demo model over the sample dataset.
func NewModel(cfg config.Config, logger zerolog.Logger) *Model {
	m := &Model{
		tasks:  SampleTasks(),
		keys:   defaultKeyMap(),
		logger: logger,
		cells:  memo.New[string, string](),
	}
	m.obs = &observer{logger: logger}

	m.eng = engine.New(engine.Options[Task]{
		Config:   cfg,
		Columns:  TaskColumns(),
		Rows:     m.tasks,
		Key:      TaskKey,
		Observer: m.obs,
		Commit: func(edit.CommitRequest) edit.CommitStatus {
			return edit.StatusPending
		},
		Logger: logger,
	})

	m.input = textinput.New()
	m.input.CharLimit = 64
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case editResolvedMsg:
		if m.eng.ResolveEdit(msg.gen, true) {
			m.mode = modeNormal
			m.drainObserver()
		}
		return m, nil

	case calloutTickMsg:
		m.eng.TickCallout(calloutTickInterval)
		if m.eng.OpenCalloutKey() != "" {
			return m, m.calloutTick()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeRowDrag:
			return m.updateRowDrag(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inRange := m.mode == modeRange

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if inRange {
			m.extendRange(-1, 0)
		} else {
			m.eng.FocusMove(-1)
		}

	case key.Matches(msg, m.keys.Down):
		if inRange {
			m.extendRange(1, 0)
		} else {
			m.eng.FocusMove(1)
		}

	case key.Matches(msg, m.keys.Top):
		m.eng.FocusHome()

	case key.Matches(msg, m.keys.Bottom):
		m.eng.FocusEnd()

	case key.Matches(msg, m.keys.PageDown):
		m.eng.FocusPageMove(1)

	case key.Matches(msg, m.keys.PageUp):
		m.eng.FocusPageMove(-1)

	case key.Matches(msg, m.keys.Left):
		if inRange {
			m.extendRange(0, -1)
		} else {
			m.moveColCursor(-1)
		}

	case key.Matches(msg, m.keys.Right):
		if inRange {
			m.extendRange(0, 1)
		} else {
			m.moveColCursor(1)
		}

	case key.Matches(msg, m.keys.Activate):
		m.eng.Activate()

	case key.Matches(msg, m.keys.SelectAll):
		m.eng.SelectAll(!m.eng.View().AllSelected)

	case key.Matches(msg, m.keys.ClearSel):
		m.eng.ClearSelection()

	case key.Matches(msg, m.keys.PrevPage):
		m.eng.SetPage(m.eng.Page().Page - 1)

	case key.Matches(msg, m.keys.NextPage):
		m.eng.SetPage(m.eng.Page().Page + 1)

	case key.Matches(msg, m.keys.Sort):
		m.eng.ToggleSort(m.cursorColumn())

	case key.Matches(msg, m.keys.Filter):
		m.filterIdx = (m.filterIdx + 1) % len(statusCycle)
		if status := statusCycle[m.filterIdx]; status == "" {
			m.eng.SetFilter("status")
		} else {
			m.eng.SetFilter("status", status)
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.Placeholder = "search"
		m.input.SetValue(m.eng.Filter().Search)
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Group):
		m.grouped = !m.grouped
		if m.grouped {
			m.eng.GroupBy("status")
		} else {
			m.eng.GroupBy("")
		}

	case key.Matches(msg, m.keys.ToggleGrp):
		if g := m.focusedGroup(); g != "" {
			m.eng.ToggleGroup(g)
		}

	case key.Matches(msg, m.keys.HideCol):
		m.eng.ToggleColumn(m.cursorColumn())
		m.clampColCursor()

	case key.Matches(msg, m.keys.PinCol):
		m.cyclePin()

	case key.Matches(msg, m.keys.MoveColL):
		colKey := m.cursorColumn()
		m.eng.ReorderColumn(colKey, m.col-1)
		m.focusColumn(colKey)

	case key.Matches(msg, m.keys.MoveColR):
		colKey := m.cursorColumn()
		m.eng.ReorderColumn(colKey, m.col+1)
		m.focusColumn(colKey)

	case key.Matches(msg, m.keys.Narrow):
		m.eng.ResizeColumn(m.cursorColumn(), -2)

	case key.Matches(msg, m.keys.Widen):
		m.eng.ResizeColumn(m.cursorColumn(), 2)

	case key.Matches(msg, m.keys.RangeStart):
		if inRange {
			m.eng.EndCellRange()
			m.mode = modeNormal
		} else if m.eng.Focused() >= 0 {
			m.eng.BeginCellRange(m.eng.Focused(), m.cursorColumn())
			m.rangeRow = m.eng.Focused()
			m.mode = modeRange
		}

	case key.Matches(msg, m.keys.RowDrag):
		if m.eng.Focused() >= 0 {
			m.eng.BeginRowDrag(m.eng.Focused())
			m.dragOver = m.eng.Focused()
			m.mode = modeRowDrag
		}

	case key.Matches(msg, m.keys.Edit):
		if m.eng.Focused() >= 0 && m.eng.StartEdit(m.eng.Focused(), m.cursorColumn()) {
			m.mode = modeEdit
			m.input.Placeholder = ""
			m.input.SetValue(m.eng.EditState().Pending)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Callout):
		m.eng.OpenCallout(m.cursorColumn())

	case key.Matches(msg, m.keys.Loading):
		m.loading = !m.loading
		m.eng.SetLoading(m.loading)

	case key.Matches(msg, m.keys.Escape):
		switch {
		case inRange:
			m.eng.ClearCellRange()
			m.mode = modeNormal
		case m.eng.OpenCalloutKey() != "":
			m.eng.RequestCalloutDismiss()
			return m, m.calloutTick()
		case m.eng.CellRangeActive():
			m.eng.ClearCellRange()
		default:
			m.eng.ClearSelection()
		}
	}

	m.drainObserver()
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.eng.SetSearch(m.input.Value())
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.eng.StageEdit(m.input.Value())
		status, gen := m.eng.SaveEdit()
		switch status {
		case edit.StatusPending:
			m.input.Blur()
			return m, tea.Tick(commitDelay, func(time.Time) tea.Msg {
				return editResolvedMsg{gen: gen}
			})
		case edit.StatusSaved:
			m.mode = modeNormal
			m.input.Blur()
			m.drainObserver()
		}
		// Validation failure keeps the session open; the error renders
		// under the field.
		return m, nil
	case "esc":
		m.eng.CancelEdit()
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}
	if st := m.eng.EditState(); st != nil && st.Saving {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.eng.StageEdit(m.input.Value())
	return m, cmd
}

func (m *Model) updateRowDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.dragOver--
		m.eng.RowDragOver(m.dragOver)
		_, m.dragOver = m.eng.RowDragState()
	case key.Matches(msg, m.keys.Down):
		m.dragOver++
		m.eng.RowDragOver(m.dragOver)
		_, m.dragOver = m.eng.RowDragState()
	case key.Matches(msg, m.keys.Activate):
		m.eng.CommitRowDrag(m.dragOver)
		m.mode = modeNormal
		m.drainObserver()
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.eng.AbortRowDrag()
		m.mode = modeNormal
	}
	return m, nil
}

// drainObserver applies queued engine callbacks: adopted row orders and
// committed edits both funnel back in as fresh data.
func (m *Model) drainObserver() {
	if m.obs.pendingRows != nil {
		m.tasks = m.obs.pendingRows
		m.obs.pendingRows = nil
		m.eng.SetRows(m.tasks)
		m.cells.Bump()
	}
	if c := m.obs.pendingCommit; c != nil {
		m.obs.pendingCommit = nil
		m.applyCommit(*c)
	}
	if m.obs.layoutChanged {
		m.obs.layoutChanged = false
		m.cells.Bump()
	}
}

// applyCommit writes a committed edit into the canonical tasks and feeds
// the engine the new data.
func (m *Model) applyCommit(c commitInfo) {
	id, err := strconv.Atoi(string(c.RowKey))
	if err != nil {
		m.logger.Error().Str("key", string(c.RowKey)).Msg("unparseable row key in commit")
		return
	}
	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}
		switch c.ColumnKey {
		case "title":
			m.tasks[i].Title = c.Value
		case "points":
			if pts, err := strconv.ParseFloat(c.Value, 64); err == nil {
				m.tasks[i].Points = pts
			}
		}
		break
	}
	m.eng.SetRows(m.tasks)
	m.cells.Bump()
}

func (m *Model) calloutTick() tea.Cmd {
	return tea.Tick(calloutTickInterval, func(time.Time) tea.Msg {
		return calloutTickMsg{}
	})
}

// cursorColumn returns the column key under the cursor.
func (m *Model) cursorColumn() string {
	order := m.eng.DisplayOrder()
	if len(order) == 0 {
		return ""
	}
	if m.col >= len(order) {
		m.col = len(order) - 1
	}
	return order[m.col]
}

func (m *Model) moveColCursor(delta int) {
	order := m.eng.DisplayOrder()
	m.col += delta
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(order) {
		m.col = len(order) - 1
	}
}

func (m *Model) clampColCursor() {
	if order := m.eng.DisplayOrder(); m.col >= len(order) {
		m.col = len(order) - 1
	}
}

// focusColumn moves the cursor to wherever the column landed.
func (m *Model) focusColumn(target string) {
	for i, key := range m.eng.DisplayOrder() {
		if key == target {
			m.col = i
			return
		}
	}
	m.clampColCursor()
}

func (m *Model) cyclePin() {
	key := m.cursorColumn()
	switch m.eng.Layout().Pins[key] {
	case grid.PinNone:
		m.eng.PinColumn(key, grid.PinLeft)
	case grid.PinLeft:
		m.eng.PinColumn(key, grid.PinRight)
	default:
		m.eng.PinColumn(key, grid.PinNone)
	}
	m.focusColumn(key)
}

func (m *Model) extendRange(dRow, dCol int) {
	m.rangeRow += dRow
	if m.rangeRow < 0 {
		m.rangeRow = 0
	}
	if count := m.eng.VisibleCount(); m.rangeRow >= count {
		m.rangeRow = count - 1
	}
	m.moveColCursor(dCol)
	m.eng.ExtendCellRange(m.rangeRow, m.cursorColumn())
}

// focusedGroup returns the group key owning the focused row.
func (m *Model) focusedGroup() string {
	focused := m.eng.Focused()
	if focused < 0 {
		return ""
	}
	index := 0
	for _, g := range m.eng.View().Groups {
		if !g.Expanded {
			continue
		}
		if focused < index+len(g.Rows) {
			return g.Key
		}
		index += len(g.Rows)
	}
	return ""
}
