// Copyright (c) 2026 Passmaster Team
// Passmaster - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package generator implements the password synthesis engine: constrained
// sampling from a character pool with a guaranteed pick per enabled class,
// followed by a uniform secure shuffle, plus the entropy estimate and the
// qualitative strength label derived from it.
package generator

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/toeirei/passmaster/internal/model"
)

// Generate synthesizes one password of the requested length from the pool
// and subsets produced by the charset builder.
//
// One character is drawn uniformly from each subset so that every enabled
// class is represented; the remaining positions are drawn uniformly, with
// replacement, from the full pool. The combined sequence is then shuffled
// with a secure Fisher-Yates pass so the guaranteed picks do not sit at
// predictable offsets. All draws, including the shuffle, use crypto/rand.
func Generate(pool string, subsets []string, length int) (model.GeneratedPassword, error) {
	if length < len(subsets) {
		return model.GeneratedPassword{}, model.NewConfigurationError(
			"Length %d too short to include at least one of each selected set (%d sets).",
			length, len(subsets))
	}

	chars := make([]byte, 0, length)

	// One guaranteed pick per class.
	for _, subset := range subsets {
		ch, err := pick(subset)
		if err != nil {
			return model.GeneratedPassword{}, err
		}
		chars = append(chars, ch)
	}

	// Fill the rest from the full pool.
	for len(chars) < length {
		ch, err := pick(pool)
		if err != nil {
			return model.GeneratedPassword{}, err
		}
		chars = append(chars, ch)
	}

	if err := shuffle(chars); err != nil {
		return model.GeneratedPassword{}, err
	}

	return model.GeneratedPassword{
		Password:    string(chars),
		Length:      length,
		PoolSize:    len(pool),
		EntropyBits: EstimateEntropy(len(pool), length),
	}, nil
}

// pick returns one character drawn uniformly from set using crypto/rand.
func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}

// shuffle performs an in-place Fisher-Yates shuffle driven by crypto/rand,
// making every permutation of data equally likely.
func shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}

// EstimateEntropy approximates password entropy in bits as
// length * log2(poolSize), or 0.0 for a pool of one or fewer characters.
//
// This is an upper bound: it assumes independent uniform draws from the
// full pool at every position and does not correct for the slightly
// reduced freedom introduced by the per-class guarantee.
func EstimateEntropy(poolSize, length int) float64 {
	if poolSize <= 1 {
		return 0.0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// StrengthLabel maps an entropy estimate to a rough qualitative label.
// Boundaries are closed below and open above: exactly 28 bits is "Weak".
func StrengthLabel(bits float64) string {
	switch {
	case bits < 28:
		return "Very weak"
	case bits < 36:
		return "Weak"
	case bits < 60:
		return "Reasonable"
	case bits < 128:
		return "Strong"
	default:
		return "Very strong"
	}
}
