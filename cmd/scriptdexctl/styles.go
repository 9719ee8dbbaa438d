package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output.
const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	// TitleStyle is for the root command banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary text.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// WarningStyle is for hints printed next to errors.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
