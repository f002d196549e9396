package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// Validate checks structural validity: enum fields, positive page size,
// and well-formed column rule patterns.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("selection_mode", c.SelectionMode, oneOf("none", "single", "multiple")),
		criterio.Run("select_all_scope", c.SelectAllScope, oneOf("filtered", "page")),
		criterio.Run("items_per_page", c.ItemsPerPage, positive),
		criterio.Run("callout_dismiss_ms", c.CalloutDismissMS, nonNegative),
		c.validateColumnRules(),
	)
}

func (c *Config) validateColumnRules() error {
	var errs criterio.FieldErrorsBuilder
	for i, rule := range c.ColumnDefaults {
		field := fmt.Sprintf("column_defaults[%d]", i)

		if rule.Pattern == "" {
			errs = errs.Append(field+".pattern", fmt.Errorf("pattern is required"))
		} else if !doublestar.ValidatePattern(rule.Pattern) {
			errs = errs.Append(field+".pattern", fmt.Errorf("invalid glob pattern: %s", rule.Pattern))
		}
		if rule.Align != "" && rule.Align != "left" && rule.Align != "center" && rule.Align != "right" {
			errs = errs.Append(field+".align", fmt.Errorf("must be left, center, or right"))
		}
		if rule.Pin != "" && rule.Pin != "left" && rule.Pin != "right" {
			errs = errs.Append(field+".pin", fmt.Errorf("must be left or right"))
		}
		if rule.MinWidth > 0 && rule.MaxWidth > 0 && rule.MinWidth > rule.MaxWidth {
			errs = errs.Append(field, fmt.Errorf("min_width exceeds max_width"))
		}
	}
	return errs.ToError()
}

func oneOf(allowed ...string) func(string) error {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of %v", allowed)
	}
}

func positive(v int) error {
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func nonNegative(v int) error {
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
