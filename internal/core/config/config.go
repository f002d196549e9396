// Package config handles engine configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/gridcore/internal/core/grid"
)

// Selection modes and select-all scopes accepted by the config file. They
// mirror the selection package's enums; validation keeps them in sync.
const (
	defaultItemsPerPage   = 10
	defaultCalloutDelayMS = 300
)

// Config holds the engine configuration.
type Config struct {
	// SelectionMode is one of none, single, multiple.
	SelectionMode string `yaml:"selection_mode"`
	// SelectAllScope is filtered (default) or page. Whether select-all
	// covers the full filtered set or just the current page is a
	// deliberate configuration choice, not a hidden default.
	SelectAllScope string `yaml:"select_all_scope"`
	RowReorder     bool   `yaml:"row_reorder"`
	CellSelection  bool   `yaml:"cell_selection"`
	KeyboardNav    bool   `yaml:"keyboard_nav"`
	ItemsPerPage   int    `yaml:"items_per_page"`
	// CalloutDismissMS is the hover-intent grace period in milliseconds
	// before an open column callout dismisses.
	CalloutDismissMS int `yaml:"callout_dismiss_ms"`
	// ColumnDefaults apply to columns whose key matches the rule pattern,
	// in declaration order; later rules override earlier ones.
	ColumnDefaults []ColumnRule `yaml:"column_defaults"`
}

// ColumnRule applies layout defaults to columns matched by a glob pattern.
type ColumnRule struct {
	// Pattern matches against the column key (supports glob patterns).
	Pattern  string `yaml:"pattern"`
	Align    string `yaml:"align,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	MinWidth int    `yaml:"min_width,omitempty"`
	MaxWidth int    `yaml:"max_width,omitempty"`
	Pin      string `yaml:"pin,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SelectionMode:    "multiple",
		SelectAllScope:   "filtered",
		RowReorder:       false,
		CellSelection:    true,
		KeyboardNav:      true,
		ItemsPerPage:     defaultItemsPerPage,
		CalloutDismissMS: defaultCalloutDelayMS,
	}
}

// Load reads the config file at configPath, layered over defaults. A
// missing file is not an error; the defaults apply.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a sparse config file.
func (c *Config) applyDefaults() {
	if c.SelectionMode == "" {
		c.SelectionMode = "multiple"
	}
	if c.SelectAllScope == "" {
		c.SelectAllScope = "filtered"
	}
	if c.ItemsPerPage == 0 {
		c.ItemsPerPage = defaultItemsPerPage
	}
	if c.CalloutDismissMS == 0 {
		c.CalloutDismissMS = defaultCalloutDelayMS
	}
}

// DismissDelay returns the callout dismiss delay as a duration.
func (c Config) DismissDelay() time.Duration {
	return time.Duration(c.CalloutDismissMS) * time.Millisecond
}

// RuleFor returns the merged column rule for a key: every matching
// ColumnDefaults pattern applied in order, later rules overriding earlier
// ones. ok is false when nothing matched.
func (c Config) RuleFor(key string) (ColumnRule, bool) {
	var merged ColumnRule
	matched := false
	for _, rule := range c.ColumnDefaults {
		hit, err := doublestar.Match(rule.Pattern, key)
		if err != nil || !hit {
			continue
		}
		matched = true
		if rule.Align != "" {
			merged.Align = rule.Align
		}
		if rule.Width > 0 {
			merged.Width = rule.Width
		}
		if rule.MinWidth > 0 {
			merged.MinWidth = rule.MinWidth
		}
		if rule.MaxWidth > 0 {
			merged.MaxWidth = rule.MaxWidth
		}
		if rule.Pin != "" {
			merged.Pin = rule.Pin
		}
	}
	return merged, matched
}

// ApplyTo overlays the matching column defaults onto a column definition,
// filling only fields the definition left unset.
func ApplyTo[T any](c Config, col grid.Column[T]) grid.Column[T] {
	rule, ok := c.RuleFor(col.Key)
	if !ok {
		return col
	}
	if col.Align == "" && rule.Align != "" {
		col.Align = grid.Align(rule.Align)
	}
	if col.Width == 0 && rule.Width > 0 {
		col.Width = rule.Width
	}
	if col.MinWidth == 0 && rule.MinWidth > 0 {
		col.MinWidth = rule.MinWidth
	}
	if col.MaxWidth == 0 && rule.MaxWidth > 0 {
		col.MaxWidth = rule.MaxWidth
	}
	if col.Pinned == grid.PinNone && rule.Pin != "" {
		col.Pinned = grid.Pin(rule.Pin)
	}
	return col
}
