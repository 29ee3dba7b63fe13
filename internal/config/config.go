package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ThemeConfig selects the color palette for the modal.
type ThemeConfig struct {
	Name    string `toml:"name"`    // preset family: "default", "dracula", "nord", "gruvbox", "none"
	Primary string `toml:"primary"` // optional override for the border/title color
	Accent  string `toml:"accent"`  // optional override for the focused button color
}

// LabelsConfig holds display strings the prompt falls back to.
type LabelsConfig struct {
	Cancel string `toml:"cancel"` // label of the cancel button when a request sets none
}

// HistoryConfig controls the per-key value history.
type HistoryConfig struct {
	Enabled    bool   `toml:"enabled"`
	MaxEntries int    `toml:"max_entries"`
	Path       string `toml:"path"` // optional: overrides ~/.tprompt/history.json
}

// Config holds the tprompt configuration
type Config struct {
	Theme     ThemeConfig   `toml:"theme"`
	Width     int           `toml:"width"`      // modal content width in cells
	CharLimit int           `toml:"char_limit"` // max runes accepted by the field
	Labels    LabelsConfig  `toml:"labels"`
	History   HistoryConfig `toml:"history"`
}

// Defaults
const (
	DefaultWidth       = 50
	DefaultCharLimit   = 256
	DefaultCancelLabel = "Cancel"
	DefaultMaxEntries  = 20

	MinWidth = 20
	MaxWidth = 120
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme:     ThemeConfig{Name: "default"},
		Width:     DefaultWidth,
		CharLimit: DefaultCharLimit,
		Labels:    LabelsConfig{Cancel: DefaultCancelLabel},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: DefaultMaxEntries,
		},
	}
}

// GetHistoryPath returns the configured history file path,
// falling back to ~/.tprompt/history.json.
func (c *Config) GetHistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tprompt", "history.json")
}

// ConfigPath returns the path to the config file.
// TPROMPT_CONFIG takes precedence over ~/.config/tprompt/config.toml.
func ConfigPath() (string, error) {
	if p := os.Getenv("TPROMPT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tprompt", "config.toml"), nil
}

// Load reads the config from ConfigPath.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config from the given path. Keys missing from the
// file keep their default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	if cfg.History.Path != "" {
		expanded, err := expandPath(cfg.History.Path)
		if err != nil {
			return Default(), fmt.Errorf("expand history.path: %w", err)
		}
		cfg.History.Path = expanded
	}

	return cfg, nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns nil if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// Encode renders the config as TOML.
func (c Config) Encode() (string, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}
