package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	target      lipgloss.Style
	currentWord lipgloss.Style
	match       lipgloss.Style
	mismatch    lipgloss.Style
	cursor      lipgloss.Style
	footer      lipgloss.Style
	placeholder lipgloss.Style
}

func colorPalette() palette {
	return palette{
		target:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		currentWord: lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		match:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		mismatch:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Italic(true),
	}
}

func plainPalette() palette {
	plain := lipgloss.NewStyle()
	return palette{
		target:      plain,
		currentWord: plain,
		match:       plain,
		mismatch:    plain,
		cursor:      plain,
		footer:      plain,
		placeholder: plain,
	}
}
