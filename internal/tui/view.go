package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/colonyops/gridcore/internal/core/engine"
	"github.com/colonyops/gridcore/internal/core/grid"
	"github.com/colonyops/gridcore/internal/core/styles"
)

const columnGap = "  "

func (m *Model) View() string {
	vs := m.eng.View()

	var b strings.Builder
	b.WriteString(m.renderHeader(vs))
	b.WriteString("\n")

	if len(vs.Groups) > 0 {
		m.renderGroups(&b, vs)
	} else {
		for _, rv := range vs.Rows {
			b.WriteString(m.renderRow(vs, rv))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(vs))

	if callout := vs.Callout; callout != "" {
		b.WriteString("\n")
		b.WriteString(m.renderCallout(callout))
	}

	if m.mode == modeSearch {
		b.WriteString("\n/" + m.input.View())
	}
	if m.mode == modeEdit && vs.Edit != nil {
		b.WriteString("\n")
		b.WriteString(m.renderEditor(vs))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(
		"j/k move · space select · s sort · f filter · / search · o group · v range · d drag · i edit · q quit"))
	return b.String()
}

func (m *Model) renderHeader(vs engine.ViewState[Task]) string {
	cells := make([]string, 0, len(vs.Columns))
	for i, col := range vs.Columns {
		label := col.Label
		if vs.Layout.Pins[col.Key] != grid.PinNone {
			label = "*" + label
		}
		if sort := m.eng.Sort(); sort.Key == col.Key {
			if sort.Direction == grid.Descending {
				label += " v"
			} else {
				label += " ^"
			}
		}
		text := pad(label, m.colWidth(vs, col.Key), col.Align)

		style := styles.HeaderStyle
		switch {
		case i == m.col:
			style = styles.HeaderDragStyle
		case m.eng.Sort().Key == col.Key:
			style = styles.HeaderSortedStyle
		case vs.Layout.Pins[col.Key] != grid.PinNone:
			style = styles.HeaderPinnedStyle
		}
		cells = append(cells, style.Render(text))
	}
	return "   " + strings.Join(cells, columnGap)
}

func (m *Model) renderGroups(b *strings.Builder, vs engine.ViewState[Task]) {
	for _, g := range vs.Groups {
		marker := "v"
		style := styles.GroupHeaderStyle
		if !g.Expanded {
			marker = ">"
			style = styles.GroupCollapsedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s (%d)", marker, g.Key, g.Count)))
		b.WriteString("\n")
		for _, rv := range g.Rows {
			b.WriteString(m.renderRow(vs, rv))
			b.WriteString("\n")
		}
	}
}

func (m *Model) renderRow(vs engine.ViewState[Task], rv engine.RowView[Task]) string {
	prefix := "   "
	if dragFrom, dragOver := m.eng.RowDragState(); dragFrom >= 0 {
		switch rv.Index {
		case dragFrom:
			prefix = " @ "
		case dragOver:
			prefix = " ^ "
		}
	} else {
		switch {
		case rv.Focused && rv.Selected:
			prefix = ">x "
		case rv.Focused:
			prefix = " > "
		case rv.Selected:
			prefix = " x "
		}
	}

	cells := make([]string, 0, len(vs.Columns))
	for _, col := range vs.Columns {
		text := m.cellText(rv, col)
		text = pad(text, m.colWidth(vs, col.Key), col.Align)

		flags := m.eng.CellFlags(rv.Index, col.Key)
		var style lipgloss.Style
		switch {
		case flags.Start:
			style = styles.RangeAnchorStyle
		case flags.Selected:
			style = styles.RangeCellStyle
		case rv.Focused:
			style = styles.RowFocusedStyle
		case rv.Selected:
			style = styles.RowSelectedStyle
		case rv.Active:
			style = styles.RowActiveStyle
		default:
			style = styles.CellStyle
		}
		cells = append(cells, style.Render(text))
	}

	line := prefix + strings.Join(cells, columnGap)
	if dragFrom, _ := m.eng.RowDragState(); dragFrom == rv.Index {
		return styles.RowDraggedStyle.Render(line)
	}
	return line
}

// cellText renders one cell through the memo cache. The cache is bumped
// whenever layout or data changes, so a hit is always current.
func (m *Model) cellText(rv engine.RowView[Task], col grid.Column[Task]) string {
	key := string(rv.Key) + "\x00" + col.Key
	return m.cells.GetOrCompute(key, func() string {
		return grid.CellText(col, rv.Row)
	})
}

func (m *Model) renderFooter(vs engine.ViewState[Task]) string {
	parts := []string{
		styles.PaginationStyle.Render(fmt.Sprintf("page %d/%d · %d rows", vs.Page, vs.TotalPages, vs.FilteredCount)),
	}
	if vs.SelectedCount > 0 {
		sel := fmt.Sprintf("%d selected", vs.SelectedCount)
		if vs.AllSelected {
			sel += " (all)"
		} else if vs.Indeterminate {
			sel += " (some)"
		}
		parts = append(parts, styles.SelectionCountStyle.Render(sel))
	}
	if vs.Loading {
		parts = append(parts, styles.LoadingStyle.Render("loading..."))
	}
	if m.obs.status != "" {
		parts = append(parts, styles.HelpStyle.Render(m.obs.status))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) renderCallout(colKey string) string {
	title := styles.CalloutTitleStyle.Render(colKey)
	body := "s sort · H hide · p pin · esc close"
	return styles.CalloutStyle.Render(title + "\n" + styles.HelpStyle.Render(body))
}

func (m *Model) renderEditor(vs engine.ViewState[Task]) string {
	field := styles.EditFieldStyle.Render(m.input.View())
	st := vs.Edit
	switch {
	case st.Saving:
		return field + "\n" + styles.LoadingStyle.Render("saving...")
	case st.ValidationError != "":
		return field + "\n" + styles.EditErrorStyle.Render(st.ValidationError)
	}
	return field
}

// colWidth resolves a column's current width from the layout, falling
// back to the label width.
func (m *Model) colWidth(vs engine.ViewState[Task], key string) int {
	if w := vs.Layout.Widths[key]; w > 0 {
		return w
	}
	return runewidth.StringWidth(key)
}

// pad truncates and aligns text into a fixed-width cell.
func pad(text string, width int, align grid.Align) string {
	text = runewidth.Truncate(text, width, "…")
	if align == grid.AlignRight {
		return runewidth.FillLeft(text, width)
	}
	if align == grid.AlignCenter {
		gap := width - runewidth.StringWidth(text)
		if gap > 0 {
			left := gap / 2
			return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
		}
		return text
	}
	return runewidth.FillRight(text, width)
}
