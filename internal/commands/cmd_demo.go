package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/gridcore/internal/core/styles"
	"github.com/colonyops/gridcore/internal/tui"
)

type DemoCmd struct {
	flags *Flags
}

// NewDemoCmd creates the interactive grid demo command.
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Run executes the demo TUI. Exported for use as default command.
func (cmd *DemoCmd) Run(ctx context.Context, c *cli.Command) error {
	palette, ok := styles.GetPalette(cmd.flags.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", cmd.flags.Theme, styles.ThemeNames())
	}
	styles.SetTheme(palette)

	cfg := *cmd.flags.Config
	// The sample dataset has a meaningful manual order, so the demo turns
	// drag-to-reorder on regardless of the config default.
	cfg.RowReorder = true

	model := tui.NewModel(cfg, log.Logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
