// Copyright (c) 2025 ToeiRei
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the core domain types shared between the charset
// builder, the password synthesizer and the user interfaces.
package model

import "fmt"

// ConfigurationError reports a generation setup that cannot produce a
// password: no character classes enabled, every class emptied by
// ambiguity filtering, or a requested length shorter than the number of
// enabled classes. It is the only error kind the synthesis path raises.
type ConfigurationError struct {
	msg string
}

// Error returns the human-readable reason.
func (e *ConfigurationError) Error() string {
	return e.msg
}

// NewConfigurationError builds a ConfigurationError from a format string.
func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// GeneratedPassword is the result of one synthesis run. It is ephemeral:
// created per request, reported, and discarded. Nothing in Passmaster
// persists it.
type GeneratedPassword struct {
	// Password is the generated string.
	Password string
	// Length is len(Password).
	Length int
	// PoolSize is the size of the character pool the password was drawn
	// from, as used for the entropy estimate.
	PoolSize int
	// EntropyBits is the approximate entropy of the password, assuming
	// independent uniform draws from the full pool for every position.
	EntropyBits float64
}
