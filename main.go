// Copyright (c) 2026 Passmaster Team
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passmaster.
//
// Usage:
//
//	go run . [flags]
//	./passmaster [flags]
//
// This launches the Passmaster CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/passmaster/internal/cli"
)

// main is the entrypoint for the Passmaster CLI.
func main() {
	// Error reporting happens inside the CLI layer; the reference
	// behavior prints a single "Error: ..." line and nothing else.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
