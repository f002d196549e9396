package grid

import "fmt"

// Align controls horizontal cell alignment.
type Align string

// Supported alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Pin fixes a column to one edge of the viewport, exempt from horizontal
// scroll.
type Pin string

// Pin sides. PinNone leaves the column in the free-flow region.
const (
	PinNone  Pin = ""
	PinLeft  Pin = "left"
	PinRight Pin = "right"
)

// Kind declares the value shape an editable column accepts. It is used by
// the edit session's schema check; sorting infers value types dynamically.
type Kind string

// Supported column kinds.
const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
)

// Column is a field projection over the row type T with display and
// behavior flags. Columns form an ordered sequence of definitions; the
// column manager owns the mapping from definition order to display order.
type Column[T any] struct {
	Key        string
	Label      string
	Sortable   bool
	Filterable bool
	Resizable  bool
	Editable   bool
	Align      Align
	Pinned     Pin
	Kind       Kind

	Width    int
	MinWidth int
	MaxWidth int

	// Value extracts the raw cell value from a row. A nil Value renders
	// every cell of the column as empty.
	Value func(row T) any
	// Format renders a raw value to display text. Nil falls back to
	// fmt.Sprint.
	Format func(v any) string
	// Validate is the caller-supplied edit validator, run after the
	// schema check for the column's Kind.
	Validate func(value string) error
}

// CellText renders the display text for one cell. It is the text filtering
// and search operate on.
func CellText[T any](col Column[T], row T) string {
	if col.Value == nil {
		return ""
	}
	v := col.Value(row)
	if col.Format != nil {
		return col.Format(v)
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
