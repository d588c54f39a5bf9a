// Copyright (c) 2025 ToeiRei
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// This file defines the lipgloss styling for the CLI report. Styling is
// applied only when writing to a terminal; piped output stays plain so
// the report bytes are stable for scripts.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// strengthColors maps each strength label to its display color.
var strengthColors = map[string]lipgloss.Color{
	"Very weak":   lipgloss.Color("196"), // bright red
	"Weak":        lipgloss.Color("208"), // orange
	"Reasonable":  lipgloss.Color("220"), // yellow
	"Strong":      lipgloss.Color("40"),  // green
	"Very strong": lipgloss.Color("48"),  // spring green
}

// newLabelStyler returns a function that colors a strength label when out
// is an interactive terminal and leaves it untouched otherwise.
func newLabelStyler(out io.Writer) func(string) string {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return func(label string) string {
			if c, ok := strengthColors[label]; ok {
				return lipgloss.NewStyle().Foreground(c).Render(label)
			}
			return label
		}
	}
	return func(label string) string { return label }
}
