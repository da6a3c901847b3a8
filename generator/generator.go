// SPDX-License-Identifier: MIT
// Package: generator
//
// generator.go - the puzzle matrix generator.
//
// Contract:
//   - size ∈ [matrix.MinSize, matrix.MaxSize] (else ErrBadSize).
//   - A Source must be configured (else ErrNeedRandSource).
//   - Returns a fresh matrix on every call; no other side effects.
//
// Complexity:
//   - Time O(size²) draws, Space O(size²).

package generator

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
)

const methodGenerate = "Generate"

// Generator draws puzzle matrices from a configured Source.
// A Generator is not safe for concurrent use when its Source is not.
type Generator struct {
	cfg config
}

// New resolves opts into a Generator.
// Errors: ErrNeedRandSource when no Source was supplied.
func New(opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		return nil, fmt.Errorf("New: %w", ErrNeedRandSource)
	}

	return &Generator{cfg: cfg}, nil
}

// Generate is a one-shot helper: New(opts...) followed by Generate(size).
func Generate(size int, opts ...Option) (*matrix.Dense, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodGenerate, size, err)
	}

	return g.Generate(size)
}

// Generate returns a new size×(size+1) puzzle matrix.
//
// Implementation:
//   - Stage 1: validate size.
//   - Stage 2: draw every entry from the entry range, row asc, column asc.
//   - Stage 3: replace each zero diagonal entry (i, i) with a draw from the
//     diagonal range, i asc.
//
// The diagonal fix does not guarantee an invertible coefficient block.
func (g *Generator) Generate(size int) (*matrix.Dense, error) {
	if size < matrix.MinSize || size > matrix.MaxSize {
		return nil, fmt.Errorf("%s(%d): size not in [%d,%d]: %w",
			methodGenerate, size, matrix.MinSize, matrix.MaxSize, ErrBadSize)
	}

	rows := make([][]int64, size)
	for i := range rows {
		rows[i] = make([]int64, size+1)
		for j := range rows[i] {
			rows[i][j] = int64(g.cfg.src.IntRange(g.cfg.entryLo, g.cfg.entryHi))
		}
	}
	for i := 0; i < size; i++ {
		if rows[i][i] == 0 {
			rows[i][i] = int64(g.cfg.src.IntRange(g.cfg.diagLo, g.cfg.diagHi))
		}
	}

	m, err := matrix.NewFromInts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodGenerate, size, err)
	}

	return m, nil
}
