package config

import (
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox"}
)

// Validate checks field ranges and enum values.
func (c *Config) Validate() error {
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if c.Width < MinWidth || c.Width > MaxWidth {
		return fmt.Errorf("invalid width %d: must be between %d and %d", c.Width, MinWidth, MaxWidth)
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("invalid char_limit %d: must not be negative", c.CharLimit)
	}
	if c.History.MaxEntries < 1 {
		return fmt.Errorf("invalid history.max_entries %d: must be at least 1", c.History.MaxEntries)
	}
	if strings.TrimSpace(c.Labels.Cancel) == "" {
		return fmt.Errorf("labels.cancel must not be empty")
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
