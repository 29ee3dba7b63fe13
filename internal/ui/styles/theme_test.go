package styles

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/tprompt/internal/config"
)

// Tests in this file mutate package-level theme state and must not run in parallel.

func TestInit_DefaultTheme(t *testing.T) {
	Init(config.ThemeConfig{})

	theme := Current()
	if theme.Primary != lipgloss.Color("62") {
		t.Errorf("expected default primary color 62, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("212") {
		t.Errorf("expected default accent color 212, got %v", theme.Accent)
	}
}

func TestInit_PresetTheme(t *testing.T) {
	tests := []struct {
		preset string
		want   string
	}{
		{"dracula", "#bd93f9"},
		{"nord", "#88c0d0"},
		{"gruvbox", "#83a598"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			Init(config.ThemeConfig{Name: tt.preset})
			if got := Current().Primary; got != lipgloss.Color(tt.want) {
				t.Errorf("primary for %s = %v, want %v", tt.preset, got, tt.want)
			}
			if Primary != Current().Primary {
				t.Error("package Primary not updated by Init")
			}
		})
	}

	Init(config.ThemeConfig{})
}

func TestInit_PresetWithOverride(t *testing.T) {
	Init(config.ThemeConfig{Name: "dracula", Accent: "#123456"})

	theme := Current()
	if theme.Primary != lipgloss.Color("#bd93f9") {
		t.Errorf("expected dracula primary, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("#123456") {
		t.Errorf("expected overridden accent #123456, got %v", theme.Accent)
	}

	Init(config.ThemeConfig{})
}

func TestInit_UnknownFallsBack(t *testing.T) {
	Init(config.ThemeConfig{Name: "solarized"})

	if Current().Primary != DefaultTheme.Primary {
		t.Errorf("unknown theme should fall back to default, got %v", Current().Primary)
	}
}

func TestGetPreset_CoversConfigNames(t *testing.T) {
	for _, name := range config.ValidThemeNames {
		if GetPreset(name) == nil {
			t.Errorf("GetPreset(%q) = nil, want preset for every valid config theme", name)
		}
	}
	if GetPreset("nope") != nil {
		t.Error("GetPreset(\"nope\") should be nil")
	}
}
