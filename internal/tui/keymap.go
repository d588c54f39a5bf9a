// Copyright (c) 2026 Passmaster Team
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/toeirei/passmaster/internal/i18n"
)

// keyMap defines the keybindings for the interactive generator view.
type keyMap struct {
	Regenerate key.Binding
	Longer     key.Binding
	Shorter    key.Binding
	Lower      key.Binding
	Upper      key.Binding
	Digits     key.Binding
	Punct      key.Binding
	Ambig      key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

// newKeyMap builds the keybindings with localized help text.
func newKeyMap() keyMap {
	return keyMap{
		Regenerate: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", i18n.T("tui.help.regenerate")),
		),
		Longer: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", i18n.T("tui.help.longer")),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", i18n.T("tui.help.shorter")),
		),
		Lower: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", i18n.T("tui.help.lower")),
		),
		Upper: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", i18n.T("tui.help.upper")),
		),
		Digits: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", i18n.T("tui.help.digits")),
		),
		Punct: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", i18n.T("tui.help.punct")),
		),
		Ambig: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", i18n.T("tui.help.ambig")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", i18n.T("tui.help.copy")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", i18n.T("tui.help.quit")),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Longer, k.Shorter, k.Copy, k.Quit}
}

// FullHelp returns all bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.Longer, k.Shorter, k.Copy},
		{k.Lower, k.Upper, k.Digits, k.Punct},
		{k.Ambig, k.Quit},
	}
}
