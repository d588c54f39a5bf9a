// Copyright (c) 2025 ToeiRei
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the layered Passmaster configuration: defaults,
// passmaster.yaml from the user/system config directories or the current
// directory, PASSMASTER_* environment variables, and bound command-line
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the persistent generation defaults. Flag names double as
// config keys so the file mirrors the CLI surface.
type Config struct {
	Length      int    `mapstructure:"length" yaml:"length"`
	Number      int    `mapstructure:"number" yaml:"number"`
	NoLower     bool   `mapstructure:"no-lower" yaml:"no-lower"`
	NoUpper     bool   `mapstructure:"no-upper" yaml:"no-upper"`
	NoDigits    bool   `mapstructure:"no-digits" yaml:"no-digits"`
	NoPunct     bool   `mapstructure:"no-punct" yaml:"no-punct"`
	NoAmbig     bool   `mapstructure:"no-ambig" yaml:"no-ambig"`
	ShowCharset bool   `mapstructure:"show-charset" yaml:"show-charset"`
	Copy        bool   `mapstructure:"copy" yaml:"copy"`
	Language    string `mapstructure:"language" yaml:"language"`
}

// Defaults returns the built-in defaults map used to seed viper. The
// values match the reference CLI surface: 16 characters, one password,
// every class enabled, ambiguous characters kept.
func Defaults() map[string]any {
	return map[string]any{
		"length":   16,
		"number":   1,
		"language": "en",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Passmaster")
		default: // Linux, macOS, etc.
			configDir = "/etc/passmaster"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passmaster")
	}

	return filepath.Join(configDir, "passmaster.yaml"), nil
}

// UserConfigExists reports whether a config file is already present at
// the user config path.
func UserConfigExists() bool {
	path, err := getConfigPath(false)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// LoadConfig resolves the configuration for cmd. An explicit config file
// path (from the --config flag) has the highest file precedence; flags
// bound on cmd override everything.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passmaster")
	v.SetConfigType("yaml")

	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for passmaster.yaml in current dir

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; the defaults carry the run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("passmaster")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile persists c as YAML to the user (or system) config path,
// creating the directory as needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
