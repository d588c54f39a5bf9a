// Copyright (c) 2026 Passmaster Team
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal view for Passmaster.
// This file contains the single bubbletea model: a live generator whose
// length and character classes can be adjusted from the keyboard, with
// every change producing a fresh password.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/passmaster/internal/charset"
	"github.com/toeirei/passmaster/internal/config"
	"github.com/toeirei/passmaster/internal/generator"
	"github.com/toeirei/passmaster/internal/i18n"
	"github.com/toeirei/passmaster/internal/model"
)

// Length bounds for the interactive view. The lower bound still has to
// clear the number of enabled classes at generation time.
const (
	minLength = 1
	maxLength = 128
)

// meterWidth is the character width of the strength meter bar.
const meterWidth = 32

// meterScale is the entropy (in bits) that fills the meter completely.
const meterScale = 128.0

// Model is the bubbletea model for the interactive generator.
type Model struct {
	opts     charset.Options
	length   int
	password model.GeneratedPassword
	err      error
	status   string
	keys     keyMap
	help     help.Model
	width    int
}

// New builds the model seeded from the resolved configuration and
// generates an initial password.
func New(cfg config.Config) Model {
	m := Model{
		opts: charset.Options{
			Lowercase:        !cfg.NoLower,
			Uppercase:        !cfg.NoUpper,
			Digits:           !cfg.NoDigits,
			Punctuation:      !cfg.NoPunct,
			ExcludeAmbiguous: cfg.NoAmbig,
		},
		length: cfg.Length,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	if m.length < minLength {
		m.length = minLength
	}
	m.regenerate()
	return m
}

// Run starts the interactive view and blocks until the user quits.
func Run(cfg config.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// regenerate rebuilds the pool and synthesizes a fresh password from the
// current options. Errors are kept on the model and shown in the view.
func (m *Model) regenerate() {
	m.status = ""
	pool, subsets, err := charset.Build(m.opts)
	if err != nil {
		m.err = err
		m.password = model.GeneratedPassword{}
		return
	}
	pw, err := generator.Generate(pool, subsets, m.length)
	if err != nil {
		m.err = err
		m.password = model.GeneratedPassword{}
		return
	}
	m.err = nil
	m.password = pw
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Regenerate):
			m.regenerate()
		case key.Matches(msg, m.keys.Longer):
			if m.length < maxLength {
				m.length++
			}
			m.regenerate()
		case key.Matches(msg, m.keys.Shorter):
			if m.length > minLength {
				m.length--
			}
			m.regenerate()
		case key.Matches(msg, m.keys.Lower):
			m.opts.Lowercase = !m.opts.Lowercase
			m.regenerate()
		case key.Matches(msg, m.keys.Upper):
			m.opts.Uppercase = !m.opts.Uppercase
			m.regenerate()
		case key.Matches(msg, m.keys.Digits):
			m.opts.Digits = !m.opts.Digits
			m.regenerate()
		case key.Matches(msg, m.keys.Punct):
			m.opts.Punctuation = !m.opts.Punctuation
			m.regenerate()
		case key.Matches(msg, m.keys.Ambig):
			m.opts.ExcludeAmbiguous = !m.opts.ExcludeAmbiguous
			m.regenerate()
		case key.Matches(msg, m.keys.Copy):
			if m.err == nil && m.password.Password != "" {
				if err := clipboard.WriteAll(m.password.Password); err != nil {
					m.status = i18n.T("tui.clipboard_error", err)
				} else {
					m.status = i18n.T("tui.copied")
				}
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(i18n.T("tui.error", m.err)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(passwordStyle.Render(m.password.Password))
		b.WriteString("\n\n")

		meta := fmt.Sprintf("%s  %s  %s",
			i18n.T("tui.length", m.password.Length),
			i18n.T("tui.charset_size", m.password.PoolSize),
			i18n.T("tui.entropy", m.password.EntropyBits))
		b.WriteString(metaStyle.Render(meta))
		b.WriteString("\n")

		label := generator.StrengthLabel(m.password.EntropyBits)
		b.WriteString(strengthMeter(m.password.EntropyBits))
		b.WriteString(" ")
		b.WriteString(strengthStyle(label).Render(label))
		b.WriteString("\n\n")
	}

	b.WriteString(m.classLine())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusMessageStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

// classLine renders the class toggle indicators.
func (m Model) classLine() string {
	toggles := []struct {
		on   bool
		name string
	}{
		{m.opts.Lowercase, i18n.T("class.lowercase")},
		{m.opts.Uppercase, i18n.T("class.uppercase")},
		{m.opts.Digits, i18n.T("class.digits")},
		{m.opts.Punctuation, i18n.T("class.punctuation")},
	}

	parts := make([]string, 0, len(toggles)+1)
	for _, t := range toggles {
		mark := " "
		if t.on {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", mark, t.name))
	}
	line := i18n.T("tui.classes") + ": " + strings.Join(parts, "  ")
	if m.opts.ExcludeAmbiguous {
		line += "  (" + i18n.T("tui.ambiguous_excluded") + ")"
	}
	return metaStyle.Render(line)
}

// strengthMeter renders a fixed-width bar filled in proportion to the
// entropy estimate, capped at meterScale bits.
func strengthMeter(bits float64) string {
	filled := int(bits / meterScale * meterWidth)
	if filled > meterWidth {
		filled = meterWidth
	}
	if filled < 0 {
		filled = 0
	}
	label := generator.StrengthLabel(bits)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)
	return strengthStyle(label).Render(bar)
}
