// Copyright (c) 2025 ToeiRei
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal view for Passmaster.
// This file defines the shared lipgloss styles used by the view to keep a
// consistent look and feel.
package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorWhite     = lipgloss.Color("231")
)

var (
	// General
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Title at the top of the view
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 1)

	// The generated password itself
	passwordStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 2).
			Bold(true)

	// Error messages
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Muted metadata line
	metaStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Status messages (clipboard feedback)
	statusMessageStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(colorWhite).
				Background(colorHighlight)
)

// strengthColors maps each strength label to its meter color.
var strengthColors = map[string]lipgloss.Color{
	"Very weak":   lipgloss.Color("196"),
	"Weak":        lipgloss.Color("208"),
	"Reasonable":  lipgloss.Color("220"),
	"Strong":      lipgloss.Color("40"),
	"Very strong": lipgloss.Color("48"),
}

// strengthStyle returns the style for a given strength label.
func strengthStyle(label string) lipgloss.Style {
	if c, ok := strengthColors[label]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle()
}
