// Package styles provides shared lipgloss styles for the grid TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	HeaderStyle       lipgloss.Style
	HeaderSortedStyle lipgloss.Style
	HeaderPinnedStyle lipgloss.Style
	HeaderDragStyle   lipgloss.Style

	CellStyle        lipgloss.Style
	RowSelectedStyle lipgloss.Style
	RowActiveStyle   lipgloss.Style
	RowFocusedStyle  lipgloss.Style
	RowDraggedStyle  lipgloss.Style

	RangeCellStyle   lipgloss.Style
	RangeAnchorStyle lipgloss.Style

	GroupHeaderStyle    lipgloss.Style
	GroupCollapsedStyle lipgloss.Style

	PaginationStyle     lipgloss.Style
	SelectionCountStyle lipgloss.Style
	LoadingStyle        lipgloss.Style

	EditFieldStyle lipgloss.Style
	EditErrorStyle lipgloss.Style
	EditSavedStyle lipgloss.Style

	CalloutStyle      lipgloss.Style
	CalloutTitleStyle lipgloss.Style

	HelpStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	HeaderSortedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	HeaderPinnedStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	HeaderDragStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true)

	CellStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	RowActiveStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Surface)
	RowFocusedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	RowDraggedStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	RangeCellStyle = lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.Secondary)
	RangeAnchorStyle = lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.Secondary).
		Bold(true).
		Underline(true)

	GroupHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	GroupCollapsedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	PaginationStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SelectionCountStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	LoadingStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Italic(true)

	EditFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	EditErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	EditSavedStyle = lipgloss.NewStyle().
		Foreground(p.Success)

	CalloutStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Padding(0, 1)
	CalloutTitleStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
}

func init() {
	SetTheme(themes[DefaultTheme])
}
