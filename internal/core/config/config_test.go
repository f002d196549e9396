package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/gridcore/internal/core/grid"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "multiple", cfg.SelectionMode)
	assert.Equal(t, "filtered", cfg.SelectAllScope)
	assert.Equal(t, 10, cfg.ItemsPerPage)
	assert.Equal(t, 300, cfg.CalloutDismissMS)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	content := `
selection_mode: single
select_all_scope: page
items_per_page: 25
row_reorder: true
column_defaults:
  - pattern: "*_at"
    align: right
    width: 20
  - pattern: "id"
    pin: left
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "single", cfg.SelectionMode)
	assert.Equal(t, "page", cfg.SelectAllScope)
	assert.Equal(t, 25, cfg.ItemsPerPage)
	assert.True(t, cfg.RowReorder)
	require.Len(t, cfg.ColumnDefaults, 2)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"bad selection mode", func(c *Config) { c.SelectionMode = "some" }, true},
		{"bad scope", func(c *Config) { c.SelectAllScope = "global" }, true},
		{"zero page size", func(c *Config) { c.ItemsPerPage = 0 }, true},
		{"negative dismiss delay", func(c *Config) { c.CalloutDismissMS = -1 }, true},
		{"rule missing pattern", func(c *Config) {
			c.ColumnDefaults = []ColumnRule{{Align: "right"}}
		}, true},
		{"rule bad align", func(c *Config) {
			c.ColumnDefaults = []ColumnRule{{Pattern: "*", Align: "middle"}}
		}, true},
		{"rule bad pin", func(c *Config) {
			c.ColumnDefaults = []ColumnRule{{Pattern: "*", Pin: "top"}}
		}, true},
		{"rule inverted widths", func(c *Config) {
			c.ColumnDefaults = []ColumnRule{{Pattern: "*", MinWidth: 9, MaxWidth: 3}}
		}, true},
		{"valid rule", func(c *Config) {
			c.ColumnDefaults = []ColumnRule{{Pattern: "**", Align: "right", Pin: "left"}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v", err)
		})
	}
}

func TestRuleFor_LaterRulesOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColumnDefaults = []ColumnRule{
		{Pattern: "*", Align: "left", Width: 10},
		{Pattern: "*_at", Align: "right"},
	}

	rule, ok := cfg.RuleFor("created_at")
	require.True(t, ok)
	assert.Equal(t, "right", rule.Align)
	assert.Equal(t, 10, rule.Width, "earlier rule's width survives")

	rule, ok = cfg.RuleFor("name")
	require.True(t, ok)
	assert.Equal(t, "left", rule.Align)

	_, ok = DefaultConfig().RuleFor("name")
	assert.False(t, ok)
}

func TestApplyTo_FillsOnlyUnsetFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColumnDefaults = []ColumnRule{
		{Pattern: "id", Pin: "left", Width: 6},
		{Pattern: "*", Align: "right"},
	}

	type row struct{}
	col := grid.Column[row]{Key: "id", Align: grid.AlignCenter}
	got := ApplyTo(cfg, col)

	assert.Equal(t, grid.AlignCenter, got.Align, "explicit align wins over rule")
	assert.Equal(t, grid.PinLeft, got.Pinned)
	assert.Equal(t, 6, got.Width)
}
