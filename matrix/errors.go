// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and
// tests check them via errors.Is. Nothing in this package panics on
// caller-supplied data.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Context is attached at the detection site with fmt.Errorf("ctx: %w", ErrX).
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> row index -> same row -> zero factor.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a matrix is not size×(size+1) with
	// size in [MinSize, MaxSize], or when input rows are ragged.
	ErrBadShape = errors.New("matrix: invalid augmented shape")

	// ErrOutOfRange indicates a (row, col) outside the matrix.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidRowIndex is returned when an operation names a row outside [0, size).
	ErrInvalidRowIndex = errors.New("matrix: invalid row index")

	// ErrSameRow is returned when Swap or AddMultiple names the same row twice.
	ErrSameRow = errors.New("matrix: operation requires two distinct rows")

	// ErrZeroFactor is returned when Scale is asked to multiply a row by zero.
	ErrZeroFactor = errors.New("matrix: cannot scale a row by zero")

	// ErrUnknownOperation is returned by Apply for a nil or foreign Operation.
	ErrUnknownOperation = errors.New("matrix: unknown operation")
)
