// SPDX-License-Identifier: MIT
// Package: generator
//
// options.go - functional options for the generator package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand or WithSource.

package generator

import (
	"math/rand"
)

// Defaults (single source of truth).
const (
	// DefaultEntryMin and DefaultEntryMax bound every drawn entry.
	DefaultEntryMin = -9
	DefaultEntryMax = 9

	// DefaultDiagonalMin and DefaultDiagonalMax bound the replacement for a zero diagonal entry.
	DefaultDiagonalMin = 1
	DefaultDiagonalMax = 5
)

// Option customizes a Generator before it is built.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	src              Source
	entryLo, entryHi int
	diagLo, diagHi   int
}

func defaultConfig() config {
	return config{
		entryLo: DefaultEntryMin,
		entryHi: DefaultEntryMax,
		diagLo:  DefaultDiagonalMin,
		diagHi:  DefaultDiagonalMax,
	}
}

// WithSource injects an explicit Source. Panics on nil.
func WithSource(s Source) Option {
	if s == nil {
		panic("generator: WithSource(nil)")
	}
	return func(c *config) {
		c.src = s
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.src = NewRandSource(r)
	}
}

// WithSeed creates a deterministic Source with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = NewSeededSource(seed)
	}
}

// WithEntryRange overrides the closed range entries are drawn from. Panics if lo > hi.
func WithEntryRange(lo, hi int) Option {
	if lo > hi {
		panic("generator: WithEntryRange(lo>hi)")
	}
	return func(c *config) {
		c.entryLo, c.entryHi = lo, hi
	}
}

// WithDiagonalRange overrides the replacement range for zero diagonal
// entries. Panics if lo > hi or if the range contains zero, since a zero
// replacement would defeat the fix.
func WithDiagonalRange(lo, hi int) Option {
	if lo > hi {
		panic("generator: WithDiagonalRange(lo>hi)")
	}
	if lo <= 0 && hi >= 0 {
		panic("generator: WithDiagonalRange must exclude zero")
	}
	return func(c *config) {
		c.diagLo, c.diagHi = lo, hi
	}
}
