package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/gridcore/internal/core/config"
)

type CheckCmd struct {
	flags  *Flags
	format string
}

// NewCheckCmd creates a new config check command.
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application.
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "check",
		Usage:       "Validate configuration file",
		UsageText:   "gridcore check [options]",
		Description: "Validates the configuration file, checking enum values, page sizes, and column rule glob patterns.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CheckCmd) run(_ context.Context, c *cli.Command) error {
	cfg, err := config.Load(cmd.flags.ConfigPath)

	if cmd.format == "json" {
		out := struct {
			Valid bool   `json:"valid"`
			Path  string `json:"path"`
			Error string `json:"error,omitempty"`
		}{
			Valid: err == nil,
			Path:  cmd.flags.ConfigPath,
		}
		if err != nil {
			out.Error = err.Error()
		}
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(out); encErr != nil {
			return encErr
		}
		if err != nil {
			return cli.Exit("", 1)
		}
		return nil
	}

	if err != nil {
		fmt.Fprintf(c.Root().Writer, "config invalid: %s\n", err)
		return cli.Exit("", 1)
	}

	fmt.Fprintf(c.Root().Writer, "config valid (%s)\n", cmd.flags.ConfigPath)
	fmt.Fprintf(c.Root().Writer, "  selection_mode:   %s\n", cfg.SelectionMode)
	fmt.Fprintf(c.Root().Writer, "  select_all_scope: %s\n", cfg.SelectAllScope)
	fmt.Fprintf(c.Root().Writer, "  items_per_page:   %d\n", cfg.ItemsPerPage)
	fmt.Fprintf(c.Root().Writer, "  column rules:     %d\n", len(cfg.ColumnDefaults))
	return nil
}
