// Copyright (c) 2026 Passmaster Team
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli sets up the command-line interface for Passmaster using the
// Cobra library. It defines the root command (which generates passwords),
// the interactive and languages subcommands, and the flag surface.
//
// The flag names, defaults and the per-password report format are a
// compatibility surface and must not change shape.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/toeirei/passmaster/internal/charset"
	"github.com/toeirei/passmaster/internal/config"
	"github.com/toeirei/passmaster/internal/generator"
	"github.com/toeirei/passmaster/internal/i18n"
	"github.com/toeirei/passmaster/internal/logging"
	"github.com/toeirei/passmaster/internal/tui"
)

var version = "dev" // this will be set by the linker

var verbose bool

var appConfig config.Config

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. This is
// used for the real application as well as fresh instances in tests.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passmaster",
		Short: i18n.T("app.short"),
		Long:  i18n.T("app.long"),
		// Errors are reported by the commands themselves in the
		// reference "Error: ..." format; keep Cobra quiet.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), appConfig)
		},
	}
	cmd.Version = version

	cmd.Flags().IntP("length", "l", 16, i18n.T("flag.length"))
	cmd.Flags().IntP("number", "n", 1, i18n.T("flag.number"))
	cmd.Flags().Bool("no-lower", false, i18n.T("flag.no_lower"))
	cmd.Flags().Bool("no-upper", false, i18n.T("flag.no_upper"))
	cmd.Flags().Bool("no-digits", false, i18n.T("flag.no_digits"))
	cmd.Flags().Bool("no-punct", false, i18n.T("flag.no_punct"))
	cmd.Flags().Bool("no-ambig", false, i18n.T("flag.no_ambig"))
	cmd.Flags().Bool("show-charset", false, i18n.T("flag.show_charset"))
	cmd.Flags().BoolP("copy", "c", false, i18n.T("flag.copy"))

	cmd.PersistentFlags().String("config", "", i18n.T("flag.config"))
	cmd.PersistentFlags().String("language", "en", i18n.T("flag.language"))
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, i18n.T("flag.verbose"))

	cmd.AddCommand(newInteractiveCmd())
	cmd.AddCommand(newLanguagesCmd())

	return cmd
}

// setup loads the layered configuration and initializes i18n and logging
// before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		logging.SetDebug(true)
	}

	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	if err != nil {
		return errors.New(i18n.T("app.error_loading_config", err))
	}

	// First run without any config file: persist the resolved defaults so
	// the user has a file to edit. Skipped when --config is given.
	if explicitPath == nil && !config.UserConfigExists() {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf(i18n.T("app.warn_write_config", writeErr))
		} else {
			logging.Debugf(i18n.T("app.wrote_default_config"))
		}
	}

	i18n.SetLang(appConfig.Language)
	return nil
}

// getConfigPathFromCli returns the config file path when the user set the
// --config flag explicitly, after checking the file exists.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// runGenerate is the root command body: it derives the character pool and
// subsets once, then produces the requested batch of passwords.
//
// Any ConfigurationError prints a single "Error: ..." line and aborts the
// rest of the batch.
func runGenerate(out io.Writer, cfg config.Config) error {
	opts := charset.Options{
		Lowercase:        !cfg.NoLower,
		Uppercase:        !cfg.NoUpper,
		Digits:           !cfg.NoDigits,
		Punctuation:      !cfg.NoPunct,
		ExcludeAmbiguous: cfg.NoAmbig,
	}

	pool, subsets, err := charset.Build(opts)
	if err != nil {
		fmt.Fprintf(out, "Error: %s\n", err)
		return err
	}

	if cfg.ShowCharset {
		display := charset.Display(pool)
		fmt.Fprintf(out, "Charset: %s\n", display)
		fmt.Fprintf(out, "Charset size: %d\n", len(display))
	}

	style := newLabelStyler(out)

	var last string
	for i := 0; i < cfg.Number; i++ {
		pw, err := generator.Generate(pool, subsets, cfg.Length)
		if err != nil {
			fmt.Fprintf(out, "Error: %s\n", err)
			return err
		}
		last = pw.Password

		label := generator.StrengthLabel(pw.EntropyBits)
		fmt.Fprintf(out, "Password %d: %s\n", i+1, pw.Password)
		fmt.Fprintf(out, "  Length: %d  Charset size: %d  Est. entropy: %.1f bits (%s)\n",
			pw.Length, pw.PoolSize, pw.EntropyBits, style(label))
		fmt.Fprintln(out)
	}

	if cfg.Copy && last != "" {
		if err := clipboard.WriteAll(last); err != nil {
			logging.Warnf(i18n.T("app.warn_clipboard", err))
		} else {
			logging.Debugf(i18n.T("app.copied_clipboard"))
		}
	}

	return nil
}

// newInteractiveCmd wires the bubbletea view as a subcommand.
func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   i18n.T("interactive.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(appConfig)
		},
	}
}

// newLanguagesCmd lists the bundled interface locales.
func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: i18n.T("languages.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			locales := i18n.GetAvailableLocales()
			codes := make([]string, 0, len(locales))
			for code := range locales {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, locales[code])
			}
			return nil
		},
	}
}
