// Copyright (c) 2026 Passmaster Team
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/toeirei/passmaster/internal/charset"
	"github.com/toeirei/passmaster/internal/model"
)

func TestGenerateLengthAndPoolMembership(t *testing.T) {
	tests := []struct {
		name   string
		opts   charset.Options
		length int
	}{
		{"all classes", charset.DefaultOptions(), 16},
		{"digits only", charset.Options{Digits: true}, 8},
		{"letters", charset.Options{Lowercase: true, Uppercase: true}, 32},
		{"no ambiguous", charset.Options{Lowercase: true, Uppercase: true, Digits: true, Punctuation: true, ExcludeAmbiguous: true}, 20},
		{"length equals class count", charset.DefaultOptions(), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, subsets, err := charset.Build(tt.opts)
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			pw, err := Generate(pool, subsets, tt.length)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(pw.Password) != tt.length || pw.Length != tt.length {
				t.Errorf("length = %d/%d, want %d", len(pw.Password), pw.Length, tt.length)
			}
			if pw.PoolSize != len(pool) {
				t.Errorf("pool size = %d, want %d", pw.PoolSize, len(pool))
			}
			for _, ch := range pw.Password {
				if !strings.ContainsRune(pool, ch) {
					t.Errorf("password contains %q which is not in the pool", string(ch))
				}
			}
		})
	}
}

func TestGenerateClassCoverage(t *testing.T) {
	pool, subsets, err := charset.Build(charset.DefaultOptions())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	// Run multiple times to reduce flakiness from randomness.
	for i := 0; i < 50; i++ {
		pw, err := Generate(pool, subsets, 16)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for j, subset := range subsets {
			if !strings.ContainsAny(pw.Password, subset) {
				t.Errorf("password %q missing a character from subset %d", pw.Password, j)
			}
		}
	}
}

func TestGenerateExactClassCount(t *testing.T) {
	// length == number of classes: exactly one character per class.
	pool, subsets, err := charset.Build(charset.DefaultOptions())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	for i := 0; i < 25; i++ {
		pw, err := Generate(pool, subsets, 4)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for j, subset := range subsets {
			count := 0
			for _, ch := range pw.Password {
				if strings.ContainsRune(subset, ch) {
					count++
				}
			}
			if count != 1 {
				t.Errorf("password %q has %d characters from subset %d, want exactly 1", pw.Password, count, j)
			}
		}
	}
}

func TestGenerateLengthTooShort(t *testing.T) {
	pool, subsets, err := charset.Build(charset.DefaultOptions())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	_, err = Generate(pool, subsets, 3)
	if err == nil {
		t.Fatal("Generate() should fail when length < number of subsets")
	}
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error is %T, want *model.ConfigurationError", err)
	}
	want := "Length 3 too short to include at least one of each selected set (4 sets)."
	if got := err.Error(); got != want {
		t.Errorf("error message = %q, want %q", got, want)
	}
}

func TestEstimateEntropy(t *testing.T) {
	if got := EstimateEntropy(0, 16); got != 0.0 {
		t.Errorf("EstimateEntropy(0, 16) = %v, want 0.0", got)
	}
	if got := EstimateEntropy(1, 16); got != 0.0 {
		t.Errorf("EstimateEntropy(1, 16) = %v, want 0.0", got)
	}
	if got, want := EstimateEntropy(10, 8), 8*math.Log2(10); got != want {
		t.Errorf("EstimateEntropy(10, 8) = %v, want %v", got, want)
	}

	// Monotonically non-decreasing in both length and pool size.
	prev := 0.0
	for length := 1; length <= 64; length++ {
		bits := EstimateEntropy(94, length)
		if bits < prev {
			t.Fatalf("entropy decreased from %v to %v at length %d", prev, bits, length)
		}
		prev = bits
	}
	prev = 0.0
	for size := 2; size <= 94; size++ {
		bits := EstimateEntropy(size, 16)
		if bits < prev {
			t.Fatalf("entropy decreased from %v to %v at pool size %d", prev, bits, size)
		}
		prev = bits
	}
}

func TestStrengthLabelBoundaries(t *testing.T) {
	tests := []struct {
		bits float64
		want string
	}{
		{0, "Very weak"},
		{26.6, "Very weak"},
		{27.999, "Very weak"},
		{28.0, "Weak"},
		{35.999, "Weak"},
		{36.0, "Reasonable"},
		{59.999, "Reasonable"},
		{60.0, "Strong"},
		{127.999, "Strong"},
		{128.0, "Very strong"},
		{512, "Very strong"},
	}

	for _, tt := range tests {
		if got := StrengthLabel(tt.bits); got != tt.want {
			t.Errorf("StrengthLabel(%v) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestDigitsOnlyScenario(t *testing.T) {
	pool, subsets, err := charset.Build(charset.Options{Digits: true})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	pw, err := Generate(pool, subsets, 8)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if pw.PoolSize != 10 {
		t.Errorf("pool size = %d, want 10", pw.PoolSize)
	}
	for _, ch := range pw.Password {
		if ch < '0' || ch > '9' {
			t.Errorf("password %q contains non-digit %q", pw.Password, string(ch))
		}
	}
	if math.Abs(pw.EntropyBits-26.575) > 0.01 {
		t.Errorf("entropy = %v, want about 26.575", pw.EntropyBits)
	}
	if got := StrengthLabel(pw.EntropyBits); got != "Very weak" {
		t.Errorf("label = %q, want %q", got, "Very weak")
	}
}

// TestShuffleRemovesPositionalBias checks that the guaranteed per-class
// picks do not sit at fixed offsets. Without the shuffle, position 0
// would hold a lowercase character on every run.
func TestShuffleRemovesPositionalBias(t *testing.T) {
	pool, subsets, err := charset.Build(charset.DefaultOptions())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	const runs = 600
	lowerFirst := 0
	punctFirst := 0
	for i := 0; i < runs; i++ {
		pw, err := Generate(pool, subsets, 8)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		first := pw.Password[0]
		if first >= 'a' && first <= 'z' {
			lowerFirst++
		}
		if strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", first) >= 0 {
			punctFirst++
		}
	}

	// The expected lowercase rate at position 0 is roughly 26%; anything
	// close to 100% means the required picks were not shuffled.
	if lowerFirst > runs*8/10 {
		t.Errorf("position 0 was lowercase in %d/%d runs; required picks appear unshuffled", lowerFirst, runs)
	}
	// Punctuation can only lead the password if the shuffle moved it there.
	if punctFirst == 0 {
		t.Error("position 0 was never punctuation; required picks appear unshuffled")
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	pool, subsets, err := charset.Build(charset.DefaultOptions())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pw, err := Generate(pool, subsets, 16)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[pw.Password] {
			t.Errorf("duplicate password generated: %q", pw.Password)
		}
		seen[pw.Password] = true
	}
}
