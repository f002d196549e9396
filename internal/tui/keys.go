package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	Left       key.Binding
	Right      key.Binding
	Activate   key.Binding
	SelectAll  key.Binding
	ClearSel   key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Sort       key.Binding
	Filter     key.Binding
	Search     key.Binding
	Group      key.Binding
	ToggleGrp  key.Binding
	HideCol    key.Binding
	PinCol     key.Binding
	MoveColL   key.Binding
	MoveColR   key.Binding
	Narrow     key.Binding
	Widen      key.Binding
	RangeStart key.Binding
	RowDrag    key.Binding
	Edit       key.Binding
	Callout    key.Binding
	Loading    key.Binding
	Escape     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		PageDown:   key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),
		PageUp:     key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
		Left:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "col left")),
		Right:      key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "col right")),
		Activate:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select row")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearSel:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear selection")),
		PrevPage:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle status filter")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Group:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "group by status")),
		ToggleGrp:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "fold group")),
		HideCol:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hide column")),
		PinCol:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin column")),
		MoveColL:   key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move col left")),
		MoveColR:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move col right")),
		Narrow:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "narrow column")),
		Widen:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "widen column")),
		RangeStart: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cell range")),
		RowDrag:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drag row")),
		Edit:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit cell")),
		Callout:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "column callout")),
		Loading:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "toggle loading")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
