// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions so the prompt modal and
// any host view embedding it render with the same palette.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI. Init reassigns them from the active theme.
var (
	// Primary is the border and title color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent highlights the focused button (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success marks positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for hints and unfocused buttons (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")

	// Info is used for informational text (gray)
	Info color.Color = lipgloss.Color("244")
)

// Common styles
var (
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)
