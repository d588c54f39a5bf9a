// Copyright (c) 2025 ToeiRei
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package charset builds the character universe a password is drawn from.
// Given a set of enabled character classes and an optional ambiguity
// filter it produces the flattened pool of allowed characters plus the
// per-class subsets used to guarantee class coverage.
package charset

import (
	"sort"
	"strings"

	"github.com/toeirei/passmaster/internal/model"
)

// Class identifies one canonical character class.
type Class int

// The canonical classes, in the stable order they contribute to the pool.
const (
	Lowercase Class = iota
	Uppercase
	Digits
	Punctuation
)

// Canonical alphabets. These contain no internal duplicates; the pool is
// built by plain concatenation and relies on that.
const (
	lowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars       = "0123456789"
	punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// AmbiguousChars are characters that are easily confused when a password
// is read or transcribed by a human (digit zero vs. letter O and so on).
const AmbiguousChars = "Il1O0`'\".,;:"

// classOrder fixes the order in which enabled classes contribute subsets.
var classOrder = [...]Class{Lowercase, Uppercase, Digits, Punctuation}

// Alphabet returns the canonical alphabet for a class.
func (c Class) Alphabet() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Punctuation:
		return punctuationChars
	}
	return ""
}

// String returns the class name as used in flags and the TUI.
func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Punctuation:
		return "punctuation"
	}
	return "unknown"
}

// Options selects which classes participate in generation and whether
// ambiguous characters are filtered out.
type Options struct {
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Punctuation      bool
	ExcludeAmbiguous bool
}

// DefaultOptions enables every class and keeps ambiguous characters.
func DefaultOptions() Options {
	return Options{
		Lowercase:   true,
		Uppercase:   true,
		Digits:      true,
		Punctuation: true,
	}
}

// Enabled reports whether the given class is enabled in the options.
func (o Options) Enabled(c Class) bool {
	switch c {
	case Lowercase:
		return o.Lowercase
	case Uppercase:
		return o.Uppercase
	case Digits:
		return o.Digits
	case Punctuation:
		return o.Punctuation
	}
	return false
}

// Build derives the flattened pool and the per-class subsets for the
// given options. The pool is the concatenation of all enabled alphabets
// in class order and is never de-duplicated here; de-duplication is a
// display concern and must not change the selection weighting.
//
// When ambiguity filtering is on, the pool and every subset are filtered
// independently so the per-class guarantee can never pick an ambiguous
// character. Subsets emptied by filtering are dropped.
func Build(opts Options) (pool string, subsets []string, err error) {
	for _, c := range classOrder {
		if opts.Enabled(c) {
			subsets = append(subsets, c.Alphabet())
		}
	}
	if len(subsets) == 0 {
		return "", nil, model.NewConfigurationError("At least one character set must be enabled.")
	}

	pool = strings.Join(subsets, "")

	if opts.ExcludeAmbiguous {
		pool = stripAmbiguous(pool)
		filtered := subsets[:0]
		for _, s := range subsets {
			if s = stripAmbiguous(s); s != "" {
				filtered = append(filtered, s)
			}
		}
		subsets = filtered
		if len(subsets) == 0 {
			// Cannot happen with the canonical alphabets, but the
			// invariant must hold if they ever change.
			return "", nil, model.NewConfigurationError("No usable characters remain after removing ambiguous characters.")
		}
	}

	return pool, subsets, nil
}

// stripAmbiguous removes every character of AmbiguousChars from s.
func stripAmbiguous(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !strings.Contains(AmbiguousChars, string(s[i])) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Display returns the pool de-duplicated and sorted, for reporting only.
func Display(pool string) string {
	seen := make(map[byte]bool, len(pool))
	unique := make([]byte, 0, len(pool))
	for i := 0; i < len(pool); i++ {
		if !seen[pool[i]] {
			seen[pool[i]] = true
			unique = append(unique, pool[i])
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return string(unique)
}
